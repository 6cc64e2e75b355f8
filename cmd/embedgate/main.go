package main

import (
	"go.uber.org/fx"

	"github.com/veldtlabs/embedgate/pkg/admission"
	"github.com/veldtlabs/embedgate/pkg/auth"
	"github.com/veldtlabs/embedgate/pkg/backend"
	"github.com/veldtlabs/embedgate/pkg/cache"
	"github.com/veldtlabs/embedgate/pkg/chunker"
	"github.com/veldtlabs/embedgate/pkg/embedder"
	"github.com/veldtlabs/embedgate/pkg/grpcapi"
	"github.com/veldtlabs/embedgate/pkg/httpapi"
	"github.com/veldtlabs/embedgate/pkg/logger"
	"github.com/veldtlabs/embedgate/pkg/metrics"
	"github.com/veldtlabs/embedgate/pkg/ratelimit"
)

func main() {
	fx.New(
		logger.FXModule,
		metrics.FXModule,
		auth.FXModule,
		ratelimit.FXModule,
		admission.FXModule,
		chunker.FXModule,
		cache.FXModule,
		backend.FXModule,
		embedder.FXModule,
		httpapi.FXModule,
		grpcapi.FXModule,
	).Run()
}
