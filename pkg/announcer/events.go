package announcer

import (
	"time"

	"github.com/dmitrymomot/a11ykit/pkg/emitter"
)

// EventType identifies a lifecycle notification emitted by the engine.
type EventType string

const (
	// EventAnnounced fires once per successfully delivered announcement,
	// after debounce coalescing.
	EventAnnounced EventType = "announced"

	// EventCleared fires on every Clear and ClearRegion call.
	EventCleared EventType = "cleared"

	// EventRegionCreated fires when a region is added to the registry.
	EventRegionCreated EventType = "region-created"

	// EventRegionRemoved fires when a region is removed from the registry.
	EventRegionRemoved EventType = "region-removed"
)

// Event is the payload of a lifecycle notification. SurfaceID is always set;
// Message accompanies EventAnnounced and Priority accompanies
// EventRegionCreated.
type Event struct {
	Type      EventType
	SurfaceID string
	Message   string
	Priority  Priority
	Timestamp time.Time
}

// Subscription identifies a handler registered with On. The zero
// Subscription is inert and safe to pass to Off.
type Subscription struct {
	event EventType
	token emitter.Token
}

// On registers fn for the given event type and returns its subscription.
// Handlers run synchronously on the goroutine that triggered the event, after
// the engine's internal lock is released, so they may call back into the
// engine. Unknown event types and nil handlers yield the zero Subscription.
func (e *Engine) On(event EventType, fn func(Event)) Subscription {
	em, ok := e.emitters[event]
	if !ok || fn == nil {
		return Subscription{}
	}
	return Subscription{event: event, token: em.On(fn)}
}

// Off removes exactly the subscription returned by On. It is honored for all
// future emissions and is idempotent.
func (e *Engine) Off(sub Subscription) {
	if em, ok := e.emitters[sub.event]; ok {
		em.Off(sub.token)
	}
}

// queueEvent records an event while holding the engine mutex; flushEvents
// emits it once the mutex is released.
func (e *Engine) queueEvent(ev Event) {
	e.pendingEvents = append(e.pendingEvents, ev)
}

// flushEvents emits every queued event in order. Callers must not hold the
// engine mutex: handlers run synchronously and may reenter the engine.
func (e *Engine) flushEvents() {
	e.mu.Lock()
	events := e.pendingEvents
	e.pendingEvents = nil
	e.mu.Unlock()

	for _, ev := range events {
		if em, ok := e.emitters[ev.Type]; ok {
			em.Emit(ev)
		}
	}
}
