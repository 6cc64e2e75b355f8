package ratelimit

import (
	"sync"
	"time"

	"github.com/veldtlabs/embedgate/pkg/auth"
)

// Limiter applies a sliding-window admission decision per identity.
//
// Each identity owns an ordered list of request timestamps inside the
// trailing window. On every evaluation the stale timestamps are purged,
// then the remaining count decides admission. The purge-check-append
// sequence is atomic per identity.
//
// Windows are created lazily and live for the process lifetime; the
// identity space is bounded by the client allowlist plus the master and
// anonymous principals, so there is no eviction.
type Limiter struct {
	cfg Config

	mu      sync.Mutex
	windows map[string]*window
}

// window holds the request timestamps for one identity. Its mutex makes the
// purge-check-append sequence atomic without serializing distinct identities.
type window struct {
	mu    sync.Mutex
	stamp []time.Time
}

// NewLimiter constructs a Limiter from Config.
func NewLimiter(cfg Config) *Limiter {
	return &Limiter{
		cfg:     cfg,
		windows: make(map[string]*window),
	}
}

// Admit decides whether a request from the given identity may proceed at
// time now. A rejected request does not mutate the window; a retry that
// arrives after older entries age out will succeed.
func (l *Limiter) Admit(id auth.Identity, now time.Time) bool {
	w := l.windowFor(id.RateKey())

	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := now.Add(-l.cfg.Window)

	// Purge timestamps that fell out of the trailing window.
	keep := w.stamp[:0]
	for _, ts := range w.stamp {
		if !ts.Before(cutoff) {
			keep = append(keep, ts)
		}
	}
	w.stamp = keep

	if len(w.stamp) >= l.cfg.MaxRequests {
		return false
	}

	w.stamp = append(w.stamp, now)
	return true
}

// windowFor returns the identity's window, creating it on first use.
func (l *Limiter) windowFor(key string) *window {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok {
		w = &window{}
		l.windows[key] = w
	}
	return w
}
