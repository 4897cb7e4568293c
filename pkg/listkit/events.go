package listkit

import "fmt"

// Event is a typed registration point for one occasion, such as "selection
// changed". Each component exposes one Event per occasion it raises.
// Handlers run synchronously in subscription order on the caller's thread.
type Event[T any] struct {
	handlers []func(T)
}

// Subscribe adds a handler and returns a func that removes it. A handler
// removed during delivery does not run if its turn has not come yet.
func (e *Event[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	e.handlers = append(e.handlers, fn)
	idx := len(e.handlers) - 1
	return func() {
		// Zero out rather than reorder so other unsubscribe funcs stay valid.
		if idx < len(e.handlers) {
			e.handlers[idx] = nil
		}
	}
}

// Len returns the number of live handlers.
func (e *Event[T]) Len() int {
	n := 0
	for _, fn := range e.handlers {
		if fn != nil {
			n++
		}
	}
	return n
}

// raise calls every handler with v. A panicking handler is logged and
// skipped so the others still run.
func (e *Event[T]) raise(name string, v T) {
	// Snapshot: handlers added during delivery wait for the next raise.
	handlers := e.handlers[:len(e.handlers):len(e.handlers)]
	for _, fn := range handlers {
		if fn == nil {
			continue
		}
		safeCall(name, func() { fn(v) })
	}
}

func safeCall(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			GetLogger().Error("event handler panicked", "event", name, "panic", fmt.Sprint(r))
		}
	}()
	fn()
}
