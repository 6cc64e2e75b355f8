package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/veldtlabs/embedgate/pkg/logger"
)

// RedisRemote adapts a go-redis client to the Remote interface.
type RedisRemote struct {
	client redis.UniversalClient
}

// NewRedisRemote connects to the configured external store. It returns nil
// when no Redis address is configured or the cache is disabled; the store
// then runs on the in-process fallback alone. Connection failures at
// startup are logged and degrade the same way rather than aborting boot —
// the cache is an opportunistic capability, not a dependency.
func NewRedisRemote(cfg Config, log *logger.Logger) Remote {
	if !cfg.Enabled || cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("cache: Redis unreachable, running on in-process fallback only", err, map[string]interface{}{
			"addr": cfg.RedisAddr,
		})
		_ = client.Close()
		return nil
	}

	log.Info("cache: connected to Redis", nil, map[string]interface{}{
		"addr": cfg.RedisAddr,
	})
	return &RedisRemote{client: client}
}

// Get retrieves the raw value for key. A missing key surfaces redis.Nil.
func (r *RedisRemote) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// SetEX writes the value with a TTL in seconds.
func (r *RedisRemote) SetEX(ctx context.Context, key, value string, ttl int) error {
	return r.client.Set(ctx, key, value, time.Duration(ttl)*time.Second).Err()
}

// Close releases the underlying connection pool.
func (r *RedisRemote) Close() error {
	return r.client.Close()
}
