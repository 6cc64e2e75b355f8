package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/veldtlabs/embedgate/pkg/admission"
	"github.com/veldtlabs/embedgate/pkg/auth"
	"github.com/veldtlabs/embedgate/pkg/backend"
	"github.com/veldtlabs/embedgate/pkg/chunker"
	"github.com/veldtlabs/embedgate/pkg/embedder"
	"github.com/veldtlabs/embedgate/pkg/logger"
	"github.com/veldtlabs/embedgate/pkg/metrics"
	"github.com/veldtlabs/embedgate/pkg/ratelimit"
)

// Server is the REST front of the gateway.
type Server struct {
	cfg      Config
	resolver *auth.Resolver
	issuer   *auth.Issuer
	limiter  *ratelimit.Limiter
	pool     *admission.Controller
	service  *embedder.Service
	registry *backend.Registry
	chunks   *chunker.Chunker
	metrics  *metrics.Metrics
	log      *logger.Logger

	httpServer *http.Server
}

// NewServer wires the REST routes. metrics may be nil in tests.
func NewServer(
	cfg Config,
	resolver *auth.Resolver,
	issuer *auth.Issuer,
	limiter *ratelimit.Limiter,
	pool *admission.Controller,
	service *embedder.Service,
	registry *backend.Registry,
	chunks *chunker.Chunker,
	m *metrics.Metrics,
	log *logger.Logger,
) *Server {
	s := &Server{
		cfg:      cfg,
		resolver: resolver,
		issuer:   issuer,
		limiter:  limiter,
		pool:     pool,
		service:  service,
		registry: registry,
		chunks:   chunks,
		metrics:  m,
		log:      log,
	}
	s.httpServer = &http.Server{
		Addr:    cfg.Address,
		Handler: s.Router(),
	}
	return s
}

// Router builds the chi mux. Health and readiness bypass identity
// resolution and rate limiting; everything else sits behind them.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Group(func(r chi.Router) {
		r.Use(s.withIdentity, s.withRateLimit)
		r.Post("/embed", s.handleEmbed)
		r.Post("/embed/chunk", s.handleChunk)
		r.Post("/v1/embeddings", s.handleOpenAIEmbeddings)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.withMasterIdentity, s.withRateLimit)
		r.Post("/auth/token", s.handleIssueToken)
		r.Post("/admin/load-model", s.handleLoadModel)
		r.Post("/admin/unload-model", s.handleUnloadModel)
	})

	return r
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	s.log.Info("httpapi: listening", nil, map[string]interface{}{
		"address": s.cfg.Address,
	})
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("httpapi: server stopped", err, nil)
		}
	}()
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
