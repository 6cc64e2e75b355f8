package cache

import (
	"os"
	"strconv"
	"time"
)

// Defaults for the cache layer.
const (
	DefaultTTLSeconds    = 3600
	DefaultLocalCapacity = 10000
)

// Config holds cache settings.
type Config struct {
	// Enabled toggles the whole cache layer. When false, Get always misses
	// and Set is a no-op.
	Enabled bool

	// RedisAddr is the host:port of the external store. Empty disables the
	// external store; the in-process fallback still operates.
	RedisAddr string

	// RedisPassword authenticates against the external store.
	RedisPassword string

	// RedisDB selects the Redis database number.
	RedisDB int

	// TTL is the expiry applied to entries written to the external store.
	TTL time.Duration

	// LocalCapacity bounds the in-process fallback map. When the map grows
	// past this size it is cleared wholesale before the next insert.
	LocalCapacity int
}

// NewConfig reads cache settings from the environment.
//
// Variables:
//   - ENABLE_CACHE       (default true)
//   - REDIS_ADDR         (empty disables the external store)
//   - REDIS_PASSWORD
//   - REDIS_DB           (default 0)
//   - CACHE_TTL_SECONDS  (default 3600)
func NewConfig() Config {
	enabled := true
	if v := os.Getenv("ENABLE_CACHE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			enabled = b
		}
	}

	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			db = n
		}
	}

	ttl := DefaultTTLSeconds
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}

	return Config{
		Enabled:       enabled,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       db,
		TTL:           time.Duration(ttl) * time.Second,
		LocalCapacity: DefaultLocalCapacity,
	}
}
