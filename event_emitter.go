package ewebsock

import "sync"

type callback[T any] func(T)

// EventEmitter maps events (of type K) to listener callbacks. It is a
// convenience for applications that prefer callback-style consumption
// over polling a Receiver; see NewEmitterEventHandler.
type EventEmitter[K comparable, V any] struct {
	listeners map[K][]callback[V]
	lock      sync.RWMutex
}

// NewEventEmitter creates a new EventEmitter and returns a pointer to it.
func NewEventEmitter[K comparable, V any]() *EventEmitter[K, V] {
	return &EventEmitter[K, V]{
		listeners: make(map[K][]callback[V]),
	}
}

// On registers a new listener for the given event.
func (e *EventEmitter[K, V]) On(event K, listener func(V)) {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.listeners[event] = append(e.listeners[event], listener)
}

// Emit triggers all listeners registered for the given event
// synchronously and returns once every one of them has run.
func (e *EventEmitter[K, V]) Emit(event K, data V) {
	e.lock.RLock()
	defer e.lock.RUnlock()

	listeners, found := e.listeners[event]
	if !found {
		return
	}

	for _, listener := range listeners {
		listener(data)
	}
}

// Close removes all listeners to prevent memory leaks. Emit does
// nothing after Close.
func (e *EventEmitter[K, V]) Close() {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.listeners = make(map[K][]callback[V])
}

// NewEmitterEventHandler adapts an emitter keyed by EventType into an
// EventHandler: every event is emitted under its own type and
// delivery continues until the connection ends on its own.
func NewEmitterEventHandler(emitter *EventEmitter[EventType, Event]) EventHandler {
	return func(ev Event) ControlFlow {
		emitter.Emit(ev.Type, ev)
		return ControlFlowContinue
	}
}
