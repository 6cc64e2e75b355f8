// Package fault defines the closed error taxonomy shared by every layer of
// the gateway.
//
// Each error produced inside the request path carries exactly one Kind:
//
//   - Validation: malformed input, unsupported input shape, invalid chunk
//     spec, unknown model alias
//   - Auth: missing, invalid, or expired credentials, unregistered client id
//   - RateLimit: the caller exceeded its sliding-window budget
//   - Backend: a compute failure not attributable to the input
//
// Protocol fronts perform a single explicit mapping from Kind to their wire
// status vocabulary (HTTP status codes, gRPC codes). Nothing else in the
// codebase inspects error strings.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies an error into the gateway's closed taxonomy.
type Kind int

const (
	// Unknown is the zero Kind. Errors without a Kind map to internal failures.
	Unknown Kind = iota

	// Validation marks client errors: bad input shapes, invalid chunk specs,
	// unknown model aliases.
	Validation

	// Auth marks credential failures for the active auth mode.
	Auth

	// RateLimit marks sliding-window admission rejections.
	RateLimit

	// Backend marks compute failures not attributable to the input.
	Backend
)

// String returns the lowercase name of the kind, used in logs and metrics labels.
func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Auth:
		return "auth"
	case RateLimit:
		return "rate_limit"
	case Backend:
		return "backend"
	default:
		return "unknown"
	}
}

// Error is a classified error. It wraps an optional cause and participates
// in errors.Is / errors.As chains.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the cause for errors.Is / errors.As traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a classified error with the given kind and message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Errorf creates a classified error with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a classified error around a cause. A nil cause returns nil
// so callers can wrap unconditionally.
func Wrap(kind Kind, msg string, cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

// KindOf extracts the Kind from an error chain. Errors that do not carry a
// *fault.Error report Unknown.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}

// IsValidation reports whether the error chain carries the Validation kind.
func IsValidation(err error) bool {
	return KindOf(err) == Validation
}

// IsAuth reports whether the error chain carries the Auth kind.
func IsAuth(err error) bool {
	return KindOf(err) == Auth
}

// IsRateLimit reports whether the error chain carries the RateLimit kind.
func IsRateLimit(err error) bool {
	return KindOf(err) == RateLimit
}

// IsBackend reports whether the error chain carries the Backend kind.
func IsBackend(err error) bool {
	return KindOf(err) == Backend
}
