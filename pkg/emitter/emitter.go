package emitter

import (
	"slices"
	"sync"
)

// Token identifies a single subscription. The zero Token is never issued by
// On and is safe to pass to Off as a no-op.
type Token uint64

// Handler receives emitted values. Handlers run synchronously on the
// emitting goroutine and must not block.
type Handler[T any] func(T)

type subscription[T any] struct {
	token Token
	fn    Handler[T]
}

// Emitter fans values out to registered handlers in subscription order.
// All methods are safe for concurrent use.
type Emitter[T any] struct {
	mu     sync.RWMutex
	subs   []subscription[T]
	nextID Token
	closed bool
}

// New creates an empty emitter.
func New[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// On registers a handler and returns its subscription token.
// Nil handlers and closed emitters yield the zero token.
func (e *Emitter[T]) On(fn Handler[T]) Token {
	if fn == nil {
		return 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return 0
	}

	e.nextID++
	e.subs = append(e.subs, subscription[T]{token: e.nextID, fn: fn})
	return e.nextID
}

// Off removes the subscription identified by token. Unknown or zero tokens
// are ignored, so Off is idempotent.
func (e *Emitter[T]) Off(token Token) {
	if token == 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.subs = slices.DeleteFunc(e.subs, func(s subscription[T]) bool {
		return s.token == token
	})
}

// Emit invokes every registered handler with v, in subscription order.
// The subscriber list is snapshotted first so handlers may call On/Off
// re-entrantly; removals take effect for subsequent emissions.
func (e *Emitter[T]) Emit(v T) {
	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return
	}
	snapshot := slices.Clone(e.subs)
	e.mu.RUnlock()

	for _, sub := range snapshot {
		sub.fn(v)
	}
}

// Len reports the number of active subscriptions.
func (e *Emitter[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subs)
}

// Close drops all subscriptions and rejects future ones. It is safe to call
// multiple times.
func (e *Emitter[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	e.subs = nil
}
