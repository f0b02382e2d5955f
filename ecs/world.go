package ecs

import (
	"reflect"
)

// World owns the entity slots and one sparse-set store per registered
// component type. It also carries world-level resources (singletons) and
// typed event queues.
type World struct {
	generations []uint32
	freeSlots   []uint32
	aliveCount  int

	stores    map[reflect.Type]componentStore
	resources map[reflect.Type]any
	bus       *EventBus
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		// slot 0 starts at generation 1 so that no live entity is ever
		// encoded as Nil
		generations: []uint32{1},
		freeSlots:   []uint32{0},
		stores:      make(map[reflect.Type]componentStore),
		resources:   make(map[reflect.Type]any),
		bus:         &EventBus{},
	}
}

// RegisterComponent registers a component type with the world. This must be
// called for each component type before it can be attached to an entity.
func RegisterComponent[T any](w *World) {
	t := reflect.TypeFor[T]()
	if _, ok := w.stores[t]; ok {
		return
	}
	w.stores[t] = newStore[T]()
}

// StoreFor returns the store for the component type. Panics if the type was
// never registered; registration errors should surface at startup, not as a
// silent miss during the frame loop.
func StoreFor[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()
	s, ok := w.stores[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return s.(*Store[T])
}

// Spawn allocates a new entity with no components attached
func (w *World) Spawn() EntityId {
	var index uint32
	if n := len(w.freeSlots); n > 0 {
		index = w.freeSlots[n-1]
		w.freeSlots = w.freeSlots[:n-1]
	} else {
		index = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
	}
	w.aliveCount++
	return NewEntityId(w.generations[index], index)
}

// Despawn removes the entity and all of its components. Stale or unknown
// handles are ignored.
func (w *World) Despawn(id EntityId) {
	if !w.Alive(id) {
		return
	}
	for _, s := range w.stores {
		s.remove(id)
	}
	index := id.Index()
	w.generations[index]++
	w.freeSlots = append(w.freeSlots, index)
	w.aliveCount--
}

// Alive reports whether the handle refers to a live entity
func (w *World) Alive(id EntityId) bool {
	index := id.Index()
	if index >= uint32(len(w.generations)) {
		return false
	}
	return w.generations[index] == id.Generation()
}

// Count returns the number of live entities
func (w *World) Count() int {
	return w.aliveCount
}

// Events returns the world's event bus
func (w *World) Events() *EventBus {
	return w.bus
}

// Add attaches (or overwrites) a component on the entity and returns a
// pointer into the store. Any later Add or Remove on the same component
// type invalidates the pointer (the dense slice may grow or swap rows), so
// re-fetch with Get after structural changes instead of holding it.
func Add[T any](w *World, id EntityId, value T) *T {
	if !w.Alive(id) {
		return nil
	}
	return StoreFor[T](w).Set(id, value)
}

// Get returns the entity's component, or nil if the entity does not have one
func Get[T any](w *World, id EntityId) *T {
	return StoreFor[T](w).Get(id)
}

// Has reports whether the entity carries the component
func Has[T any](w *World, id EntityId) bool {
	return StoreFor[T](w).Has(id)
}

// Remove detaches the component from the entity. Reports whether a component
// was actually removed.
func Remove[T any](w *World, id EntityId) bool {
	return StoreFor[T](w).remove(id)
}
