package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Default limits, matching one request per second sustained.
const (
	DefaultMaxRequests   = 60
	DefaultWindowSeconds = 60
)

// Config holds the sliding-window limits applied per identity.
type Config struct {
	// MaxRequests is the number of requests allowed inside the window.
	MaxRequests int

	// Window is the trailing interval requests are counted over.
	Window time.Duration
}

// NewConfig reads rate-limit settings from the environment.
//
// Variables:
//   - RATE_LIMIT_MAX_REQUESTS    (default 60)
//   - RATE_LIMIT_WINDOW_SECONDS  (default 60)
func NewConfig() Config {
	maxRequests := DefaultMaxRequests
	if v := os.Getenv("RATE_LIMIT_MAX_REQUESTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxRequests = n
		}
	}

	windowSeconds := DefaultWindowSeconds
	if v := os.Getenv("RATE_LIMIT_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			windowSeconds = n
		}
	}

	return Config{
		MaxRequests: maxRequests,
		Window:      time.Duration(windowSeconds) * time.Second,
	}
}
