package ecs

import "iter"

// View iterates entities holding a single component type.
// Views carry no per-frame state and may be kept for the life of the world;
// the Scheduler initializes View fields on registered systems automatically.
type View[A any] struct {
	a *Store[A]
}

// NewView creates a view over the store for A
func NewView[A any](w *World) *View[A] {
	return &View[A]{a: StoreFor[A](w)}
}

// Init initializes or re-initializes the view with a world.
// Called by the Scheduler during system registration.
func (v *View[A]) Init(w *World) {
	v.a = StoreFor[A](w)
}

// Get returns the entity's component, or nil
func (v *View[A]) Get(id EntityId) *A {
	return v.a.Get(id)
}

// Iter iterates over all entities with an A component
func (v *View[A]) Iter() iter.Seq2[EntityId, *A] {
	return v.a.All()
}

// Row2 is the join result yielded by View2
type Row2[A, B any] struct {
	A *A
	B *B
}

// View2 iterates entities holding both component types. The smaller store
// drives the join.
type View2[A, B any] struct {
	a *Store[A]
	b *Store[B]
}

// NewView2 creates a view over the stores for A and B
func NewView2[A, B any](w *World) *View2[A, B] {
	return &View2[A, B]{a: StoreFor[A](w), b: StoreFor[B](w)}
}

// Init initializes or re-initializes the view with a world.
// Called by the Scheduler during system registration.
func (v *View2[A, B]) Init(w *World) {
	v.a = StoreFor[A](w)
	v.b = StoreFor[B](w)
}

// Get returns the entity's components, or (nil, nil, false) if either is
// missing
func (v *View2[A, B]) Get(id EntityId) (*A, *B, bool) {
	a := v.a.Get(id)
	if a == nil {
		return nil, nil, false
	}
	b := v.b.Get(id)
	if b == nil {
		return nil, nil, false
	}
	return a, b, true
}

// Iter iterates over all entities holding both components
func (v *View2[A, B]) Iter() iter.Seq2[EntityId, Row2[A, B]] {
	return func(yield func(EntityId, Row2[A, B]) bool) {
		if v.a.Len() <= v.b.Len() {
			for id, a := range v.a.All() {
				if b := v.b.Get(id); b != nil {
					if !yield(id, Row2[A, B]{A: a, B: b}) {
						return
					}
				}
			}
			return
		}
		for id, b := range v.b.All() {
			if a := v.a.Get(id); a != nil {
				if !yield(id, Row2[A, B]{A: a, B: b}) {
					return
				}
			}
		}
	}
}

// Row3 is the join result yielded by View3
type Row3[A, B, C any] struct {
	A *A
	B *B
	C *C
}

// View3 iterates entities holding all three component types
type View3[A, B, C any] struct {
	a *Store[A]
	b *Store[B]
	c *Store[C]
}

// NewView3 creates a view over the stores for A, B and C
func NewView3[A, B, C any](w *World) *View3[A, B, C] {
	return &View3[A, B, C]{a: StoreFor[A](w), b: StoreFor[B](w), c: StoreFor[C](w)}
}

// Init initializes or re-initializes the view with a world.
// Called by the Scheduler during system registration.
func (v *View3[A, B, C]) Init(w *World) {
	v.a = StoreFor[A](w)
	v.b = StoreFor[B](w)
	v.c = StoreFor[C](w)
}

// Iter iterates over all entities holding all three components, driven by
// the A store
func (v *View3[A, B, C]) Iter() iter.Seq2[EntityId, Row3[A, B, C]] {
	return func(yield func(EntityId, Row3[A, B, C]) bool) {
		for id, a := range v.a.All() {
			b := v.b.Get(id)
			if b == nil {
				continue
			}
			c := v.c.Get(id)
			if c == nil {
				continue
			}
			if !yield(id, Row3[A, B, C]{A: a, B: b, C: c}) {
				return
			}
		}
	}
}
