package ecs

import "reflect"

// EventBus is a synchronous, type-safe publish/subscribe channel for
// decoupled communication between input handling and systems. Handlers run
// in subscription order on the publishing goroutine.
type EventBus struct {
	handlers map[reflect.Type][]any
}

// Subscribe registers a handler for events of type T
func Subscribe[T any](bus *EventBus, handler func(T)) {
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type][]any)
	}
	t := reflect.TypeFor[T]()
	bus.handlers[t] = append(bus.handlers[t], handler)
}

// Publish delivers the event to all handlers registered for type T
func Publish[T any](bus *EventBus, event T) {
	if bus.handlers == nil {
		return
	}
	for _, h := range bus.handlers[reflect.TypeFor[T]()] {
		h.(func(T))(event)
	}
}
