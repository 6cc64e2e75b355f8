package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/veldtlabs/embedgate/pkg/backend"
	"github.com/veldtlabs/embedgate/pkg/fault"
)

// statusFor maps a fault to the native REST status code. An unknown model
// alias is the caller naming a model that does not exist, which reads as a
// bad request rather than an unprocessable body.
func statusFor(err error) int {
	switch {
	case errors.Is(err, backend.ErrUnknownModel):
		return http.StatusBadRequest
	case fault.IsValidation(err):
		return http.StatusUnprocessableEntity
	case fault.IsAuth(err):
		return http.StatusForbidden
	case fault.IsRateLimit(err):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	detail := "internal server error"
	if status != http.StatusInternalServerError {
		detail = err.Error()
	}
	writeJSON(w, status, ErrorResponse{Detail: detail})
}
