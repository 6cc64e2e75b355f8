package backend

import "go.uber.org/fx"

// FXModule wires the backend into Fx.
//
// It provides:
//   - Config              (NewConfig)
//   - *Registry           (NewRegistry)
//   - Encoder             (NewInferenceProvider)
var FXModule = fx.Module("backend",
	fx.Provide(
		NewConfig,
		NewRegistry,
		func(cfg Config, registry *Registry) (Encoder, error) {
			return NewInferenceProvider(cfg, registry)
		},
	),
)
