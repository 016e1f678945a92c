package announcer

import (
	"context"
	"sync"
)

// Receipt is the completion handle of an announcement. It settles exactly
// once: resolved after the message reached the surface, or rejected when the
// announcement was cancelled (queue clear, region removal, engine destroy) or
// delivery failed. Every coalesced caller of a debounced announcement holds
// the same receipt, so all of them observe the same outcome.
type Receipt struct {
	once sync.Once
	done chan struct{}
	err  error
}

func newReceipt() *Receipt {
	return &Receipt{done: make(chan struct{})}
}

// Done returns a channel that is closed once the receipt settles.
func (r *Receipt) Done() <-chan struct{} {
	return r.done
}

// Err returns the settlement outcome: nil after successful delivery, the
// rejection cause otherwise. Before the receipt settles it returns nil, so
// check Settled (or wait on Done) to distinguish pending from delivered.
func (r *Receipt) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// Settled reports whether the receipt has resolved or rejected, without blocking.
func (r *Receipt) Settled() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the receipt settles or ctx is done. It returns the
// settlement outcome, or the context error if that fires first.
func (r *Receipt) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// settle records the outcome and wakes all waiters. Later calls are no-ops,
// which lets cancellation paths settle indiscriminately without clobbering
// an announcement that already delivered.
func (r *Receipt) settle(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.done)
	})
}
