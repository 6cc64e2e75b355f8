package cache

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the cache into Fx.
//
// It provides:
//   - Config   (NewConfig)
//   - Remote   (NewRedisRemote; may be nil when Redis is not configured)
//   - *Store   (NewStore)
//
// and registers a shutdown hook that closes the Redis connection pool.
var FXModule = fx.Module("cache",
	fx.Provide(
		NewConfig,
		NewRedisRemote,
		NewStore,
	),
	fx.Invoke(RegisterCacheLifecycle),
)

// RegisterCacheLifecycle closes the external store client on shutdown.
func RegisterCacheLifecycle(lc fx.Lifecycle, remote Remote) {
	closer, ok := remote.(interface{ Close() error })
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return closer.Close()
		},
	})
}
