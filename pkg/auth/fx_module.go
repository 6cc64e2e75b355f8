package auth

import "go.uber.org/fx"

// FXModule wires the auth system into Fx.
//
// It provides:
//   - Config     (NewConfig)
//   - *Issuer    (NewIssuer)
//   - *Resolver  (NewResolver)
var FXModule = fx.Module("auth",
	fx.Provide(
		NewConfig,
		NewIssuer,
		NewResolver,
	),
)
