package grpcapi

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the gRPC server into Fx and manages its lifecycle.
var FXModule = fx.Module("grpcapi",
	fx.Provide(
		NewConfig,
		NewService,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts the gRPC listener on application start
// and drains it on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			s.Stop()
			return nil
		},
	})
}
