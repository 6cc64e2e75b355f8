package grpcapi

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/veldtlabs/embedgate/pkg/auth"
)

type ctxKey int

const identityKey ctxKey = iota

// IdentityFrom returns the identity stored by the interceptors.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

// credentialsFrom reads the same credential material the REST front takes
// from headers, here carried as metadata keys "x-api-key" and
// "authorization".
func credentialsFrom(ctx context.Context) auth.Credentials {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return auth.Credentials{}
	}
	var creds auth.Credentials
	if vals := md.Get("x-api-key"); len(vals) > 0 {
		creds.APIKey = vals[0]
	}
	if vals := md.Get("authorization"); len(vals) > 0 {
		if strings.HasPrefix(vals[0], "Bearer ") {
			creds.Bearer = strings.TrimPrefix(vals[0], "Bearer ")
		}
	}
	return creds
}

// admit resolves the caller and applies the rate limit. It returns the
// admitted identity's context or a gRPC status.
func (s *Server) admit(ctx context.Context) (context.Context, error) {
	id, err := s.resolver.Resolve(credentialsFrom(ctx))
	if err != nil {
		return nil, status.Error(codes.PermissionDenied, err.Error())
	}
	if !s.limiter.Admit(id, time.Now()) {
		if s.metrics != nil {
			s.metrics.RateLimitRejectionsTotal.WithLabelValues(string(id.Kind)).Inc()
		}
		return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
	}
	return context.WithValue(ctx, identityKey, id), nil
}

// UnaryAuthInterceptor enforces identity resolution and rate limiting on
// unary calls.
func (s *Server) UnaryAuthInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	ctx, err := s.admit(ctx)
	if err != nil {
		return nil, err
	}
	return handler(ctx, req)
}

// StreamAuthInterceptor enforces identity resolution and rate limiting at
// stream open. One stream counts as one request against the window,
// however many messages it carries.
func (s *Server) StreamAuthInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx, err := s.admit(ss.Context())
	if err != nil {
		return err
	}
	return handler(srv, &identityStream{ServerStream: ss, ctx: ctx})
}

type identityStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *identityStream) Context() context.Context {
	return s.ctx
}
