// Package events provides a minimal named-event publish/subscribe emitter.
// Dispatch is synchronous: Emit runs every listener in the caller's
// goroutine over a snapshot of the registration list, so listeners that
// unsubscribe mid-dispatch do not affect the current emission.
package events

import (
	"fmt"
	"log/slog"
	"sync"
)

// Listener receives the payload passed to Emit.
type Listener func(payload any)

// SoftListenerCap is the per-event listener count above which registration
// logs a leak warning. Registration still succeeds.
const SoftListenerCap = 10

type registration struct {
	id   int
	fn   Listener
	once bool
}

// Emitter dispatches payloads to listeners registered per event name.
// The zero value is not usable; call New.
type Emitter struct {
	mu        sync.Mutex
	nextID    int
	listeners map[string][]registration
	logger    *slog.Logger
}

// New creates an emitter. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{
		listeners: make(map[string][]registration),
		logger:    logger,
	}
}

// On registers a listener for the named event and returns a subscription id
// usable with Off.
func (e *Emitter) On(event string, fn Listener) int {
	return e.register(event, fn, false)
}

// Once registers a listener that is removed after its first invocation.
func (e *Emitter) Once(event string, fn Listener) int {
	return e.register(event, fn, true)
}

func (e *Emitter) register(event string, fn Listener, once bool) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := e.nextID
	e.listeners[event] = append(e.listeners[event], registration{id: id, fn: fn, once: once})

	if n := len(e.listeners[event]); n > SoftListenerCap {
		e.logger.Warn("possible listener leak",
			"event", event,
			"listeners", n,
			"cap", SoftListenerCap,
		)
	}
	return id
}

// Off removes the subscription with the given id from the named event.
// Unknown ids are ignored.
func (e *Emitter) Off(event string, id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	regs := e.listeners[event]
	for i, r := range regs {
		if r.id == id {
			e.listeners[event] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of listeners registered for the event.
func (e *Emitter) ListenerCount(event string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[event])
}

// Emit invokes every listener registered for the event at the moment of the
// call. A panicking listener is logged and skipped; it never affects the
// emitter or sibling listeners. One-shot listeners are unregistered before
// dispatch so they cannot run twice even if they re-emit.
func (e *Emitter) Emit(event string, payload any) {
	e.mu.Lock()
	snapshot := append([]registration(nil), e.listeners[event]...)
	remaining := e.listeners[event][:0]
	for _, r := range e.listeners[event] {
		if !r.once {
			remaining = append(remaining, r)
		}
	}
	e.listeners[event] = remaining
	e.mu.Unlock()

	for _, r := range snapshot {
		e.invoke(event, r, payload)
	}
}

func (e *Emitter) invoke(event string, r registration, payload any) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error("listener panic",
				"event", event,
				"listener_id", r.id,
				"error", fmt.Sprint(rec),
			)
		}
	}()
	r.fn(payload)
}
