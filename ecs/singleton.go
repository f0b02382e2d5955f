package ecs

import "reflect"

// AddResource stores a world-level resource of type T, replacing any
// previous value, and returns a pointer to the stored copy. Use resources
// for global state that belongs to no entity: timing, input, configuration.
func AddResource[T any](w *World, value T) *T {
	stored := &value
	w.resources[reflect.TypeFor[T]()] = stored
	return stored
}

// Resource returns the world-level resource of type T, or nil if none was
// added.
func Resource[T any](w *World) *T {
	r, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return r.(*T)
}

// Singleton provides access to a single world-level resource from inside a
// system. The Scheduler initializes Singleton fields on registered systems
// automatically.
type Singleton[T any] struct {
	world *World
}

// NewSingleton creates a Singleton accessor. If an initializer is provided
// and the resource does not exist yet, it is created with that value,
// otherwise with the zero value. The resource is guaranteed to exist after
// the call.
func NewSingleton[T any](w *World, initializer ...T) *Singleton[T] {
	if Resource[T](w) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		AddResource(w, value)
	}
	return &Singleton[T]{world: w}
}

// Init initializes the Singleton with a world reference, creating the
// resource with a zero value if it does not exist. Called by the Scheduler
// during system registration.
func (s *Singleton[T]) Init(w *World) {
	s.world = w
	if Resource[T](w) == nil {
		var zero T
		AddResource(w, zero)
	}
}

// Get returns a pointer to the resource
func (s *Singleton[T]) Get() *T {
	return Resource[T](s.world)
}
