package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the Prometheus registry, the gateway's collectors, and the
// HTTP server that exposes them.
type Metrics struct {
	Server   *http.Server
	Registry *prometheus.Registry

	// RequestsTotal counts handled requests by transport, route, and
	// error kind ("" for success).
	RequestsTotal *prometheus.CounterVec

	// CacheHitsTotal and CacheMissesTotal count cache probe outcomes in
	// the embedding pipeline.
	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter

	// RateLimitRejectionsTotal counts sliding-window rejections by
	// identity kind.
	RateLimitRejectionsTotal *prometheus.CounterVec

	// BackendDuration observes the latency of backend encode batches.
	BackendDuration prometheus.Histogram
}

// NewMetrics builds the registry, registers the gateway collectors, and
// prepares the metrics HTTP server. The server is started by the fx
// lifecycle hook, not here.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		Registry: registry,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "embedgate_requests_total",
			Help: "Requests handled, by transport, route, and error kind.",
		}, []string{"transport", "route", "error_kind"}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "embedgate_cache_hits_total",
			Help: "Embedding cache probe hits.",
		}),
		CacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "embedgate_cache_misses_total",
			Help: "Embedding cache probe misses.",
		}),
		RateLimitRejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "embedgate_ratelimit_rejections_total",
			Help: "Requests rejected by the sliding-window rate limiter.",
		}, []string{"identity_kind"}),
		BackendDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "embedgate_backend_request_duration_seconds",
			Help:    "Latency of backend encode batches.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}

	wrapped.MustRegister(
		m.RequestsTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.RateLimitRejectionsTotal,
		m.BackendDuration,
	)

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	return m
}
