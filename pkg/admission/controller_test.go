package admission

import (
	"context"
	"testing"
	"time"
)

func TestAcquire_UpToCapacityImmediate(t *testing.T) {
	c := NewController(Config{MaxInflight: 3})
	ctx := context.Background()

	var tickets []*Ticket
	for i := 0; i < 3; i++ {
		ticket, err := c.Acquire(ctx)
		if err != nil {
			t.Fatalf("acquire %d: %v", i, err)
		}
		tickets = append(tickets, ticket)
	}

	if _, ok := c.TryAcquire(); ok {
		t.Fatal("pool should be exhausted after MaxInflight acquisitions")
	}

	for _, ticket := range tickets {
		ticket.Release()
	}
}

func TestAcquire_BlocksUntilRelease(t *testing.T) {
	c := NewController(Config{MaxInflight: 1})
	ctx := context.Background()

	held, err := c.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	acquired := make(chan *Ticket)
	go func() {
		ticket, err := c.Acquire(ctx)
		if err != nil {
			t.Errorf("blocked acquire failed: %v", err)
			return
		}
		acquired <- ticket
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire must suspend while the slot is held")
	case <-time.After(50 * time.Millisecond):
	}

	held.Release()

	select {
	case ticket := <-acquired:
		ticket.Release()
	case <-time.After(time.Second):
		t.Fatal("second acquire should proceed after release")
	}
}

func TestAcquire_CancelledWhileWaiting(t *testing.T) {
	c := NewController(Config{MaxInflight: 1})

	held, err := c.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error)
	go func() {
		_, err := c.Acquire(ctx)
		errc <- err
	}()

	cancel()
	if err := <-errc; err == nil {
		t.Fatal("cancelled acquire must return an error")
	}

	// The cancelled waiter took no slot; releasing the held one must
	// restore full capacity.
	held.Release()
	ticket, ok := c.TryAcquire()
	if !ok {
		t.Fatal("slot should be free after release")
	}
	ticket.Release()
}

func TestRelease_Idempotent(t *testing.T) {
	c := NewController(Config{MaxInflight: 1})

	ticket, err := c.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	ticket.Release()
	ticket.Release()
	ticket.Release()

	// A double release would have over-credited the semaphore; capacity
	// must still be exactly one.
	first, ok := c.TryAcquire()
	if !ok {
		t.Fatal("expected one free slot")
	}
	if _, ok := c.TryAcquire(); ok {
		t.Fatal("double release leaked extra capacity")
	}
	first.Release()
}

func TestRelease_NilTicketNoPanic(t *testing.T) {
	var ticket *Ticket
	ticket.Release()
}
