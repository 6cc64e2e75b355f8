package httpapi

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the REST server into Fx and manages its lifecycle.
var FXModule = fx.Module("httpapi",
	fx.Provide(
		NewConfig,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts the REST listener on application start
// and drains it on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
