package ratelimit

import "go.uber.org/fx"

// FXModule wires the rate limiter into Fx.
//
// A single *Limiter instance is shared by both protocol fronts so an
// identity's budget is global, not per transport.
var FXModule = fx.Module("ratelimit",
	fx.Provide(
		NewConfig,
		NewLimiter,
	),
)
