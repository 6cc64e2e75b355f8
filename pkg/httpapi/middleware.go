package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/veldtlabs/embedgate/pkg/auth"
)

type ctxKey int

const identityKey ctxKey = iota

// IdentityFrom returns the identity stored by the resolution middleware.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

// credentialsFrom extracts the API key and bearer token headers. Both may
// be present; the resolver decides which one matters for the active mode.
func credentialsFrom(r *http.Request) auth.Credentials {
	creds := auth.Credentials{APIKey: r.Header.Get("X-API-Key")}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		creds.Bearer = strings.TrimPrefix(header, "Bearer ")
	}
	return creds
}

// withIdentity resolves the caller under the configured mode and stores
// the identity in the request context.
func (s *Server) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := s.resolver.Resolve(credentialsFrom(r))
		if err != nil {
			writeError(w, http.StatusForbidden, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, id)))
	})
}

// withMasterIdentity admits only the shared master secret, regardless of
// the configured mode. Token issuance and admin routes sit behind it.
func (s *Server) withMasterIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := s.resolver.ResolveMaster(credentialsFrom(r))
		if err != nil {
			writeError(w, http.StatusForbidden, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, id)))
	})
}

// withRateLimit applies the per-identity sliding window. It must run after
// an identity middleware.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		if !ok {
			id = auth.Anonymous
		}
		if !s.limiter.Admit(id, time.Now()) {
			if s.metrics != nil {
				s.metrics.RateLimitRejectionsTotal.WithLabelValues(string(id.Kind)).Inc()
			}
			writeJSON(w, http.StatusTooManyRequests, ErrorResponse{Detail: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
