package admission

import "go.uber.org/fx"

// FXModule wires the admission controller into Fx. Providing a single
// *Controller keeps the slot pool shared across both protocol fronts.
var FXModule = fx.Module("admission",
	fx.Provide(
		NewConfig,
		NewController,
	),
)
