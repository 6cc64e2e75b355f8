package admission

import (
	"os"
	"strconv"
)

// DefaultMaxInflight bounds concurrent embedding computations when no
// explicit limit is configured.
const DefaultMaxInflight = 100

// Config holds the admission pool size.
type Config struct {
	// MaxInflight is the number of embedding computations allowed to run
	// simultaneously across both protocol fronts.
	MaxInflight int
}

// NewConfig reads admission settings from the environment.
//
// Variables:
//   - MAX_INFLIGHT_REQUESTS (default 100)
func NewConfig() Config {
	maxInflight := DefaultMaxInflight
	if v := os.Getenv("MAX_INFLIGHT_REQUESTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxInflight = n
		}
	}
	return Config{MaxInflight: maxInflight}
}
