package embedder

import "go.uber.org/fx"

// FXModule wires the embedding pipeline into Fx.
var FXModule = fx.Module("embedder",
	fx.Provide(
		NewService,
	),
)
