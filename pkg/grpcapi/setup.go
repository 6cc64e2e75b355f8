package grpcapi

import (
	"net"

	"google.golang.org/grpc"

	"github.com/veldtlabs/embedgate/pkg/auth"
	"github.com/veldtlabs/embedgate/pkg/grpcapi/embedv1"
	"github.com/veldtlabs/embedgate/pkg/logger"
	"github.com/veldtlabs/embedgate/pkg/metrics"
	"github.com/veldtlabs/embedgate/pkg/ratelimit"
)

// Server is the gRPC front of the gateway.
type Server struct {
	cfg      Config
	resolver *auth.Resolver
	limiter  *ratelimit.Limiter
	metrics  *metrics.Metrics
	log      *logger.Logger

	grpcServer *grpc.Server
}

// NewServer builds the gRPC server with auth and rate-limit interceptors
// and registers the embedding service.
func NewServer(cfg Config, resolver *auth.Resolver, limiter *ratelimit.Limiter, svc *Service, m *metrics.Metrics, log *logger.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		resolver: resolver,
		limiter:  limiter,
		metrics:  m,
		log:      log,
	}
	s.grpcServer = grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.UnaryAuthInterceptor),
		grpc.ChainStreamInterceptor(s.StreamAuthInterceptor),
	)
	embedv1.RegisterEmbeddingServiceServer(s.grpcServer, svc)
	return s
}

// Start listens and serves in a background goroutine.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return err
	}
	s.log.Info("grpcapi: listening", nil, map[string]interface{}{
		"address": s.cfg.Address,
	})
	go func() {
		if err := s.grpcServer.Serve(lis); err != nil {
			s.log.Error("grpcapi: server stopped", err, nil)
		}
	}()
	return nil
}

// Stop drains in-flight RPCs and shuts the listener down.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}
