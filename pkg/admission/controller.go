// Package admission bounds the number of concurrent embedding computations
// across both protocol fronts with a single fixed-size slot pool.
//
// Callers acquire a slot before entering the cache-aside pipeline and hold
// it for the duration of the dispatched work. Acquire blocks when the pool
// is exhausted; backpressure is applied by queuing, never by failing fast.
// The only way to leave the queue early is caller cancellation, in which
// case no slot was taken and nothing needs releasing.
package admission

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Controller is the global concurrency gate. A single instance is shared by
// the REST and gRPC fronts.
type Controller struct {
	sem *semaphore.Weighted
}

// Ticket is a scoped acquisition of one slot. Release is idempotent so the
// slot is returned exactly once regardless of how many exit paths call it.
type Ticket struct {
	once sync.Once
	sem  *semaphore.Weighted
}

// NewController constructs a Controller from Config.
func NewController(cfg Config) *Controller {
	return &Controller{sem: semaphore.NewWeighted(int64(cfg.MaxInflight))}
}

// Acquire takes one slot, blocking until a slot frees or ctx is cancelled.
// On cancellation no slot is held and the returned ticket is nil.
func (c *Controller) Acquire(ctx context.Context) (*Ticket, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return &Ticket{sem: c.sem}, nil
}

// TryAcquire takes a slot without blocking. It exists for tests and
// diagnostics; the request path always uses Acquire.
func (c *Controller) TryAcquire() (*Ticket, bool) {
	if !c.sem.TryAcquire(1) {
		return nil, false
	}
	return &Ticket{sem: c.sem}, true
}

// Release returns the slot to the pool. Safe to call more than once; only
// the first call has an effect.
func (t *Ticket) Release() {
	if t == nil {
		return
	}
	t.once.Do(func() {
		t.sem.Release(1)
	})
}
