package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// componentStore is the type-erased interface the world uses to detach
// components during a despawn.
type componentStore interface {
	remove(id EntityId) bool
	Len() int
}

// Store is a sparse-set component store. Component values live in a dense
// slice for cache-friendly iteration; the sparse map takes an entity slot
// index to its dense row. Removal swaps the last row into the hole, so
// iteration order is not stable across removals.
type Store[T any] struct {
	dense  []T
	owners []EntityId
	sparse *intmap.Map[uint32, uint32]
}

func newStore[T any]() *Store[T] {
	return &Store[T]{
		sparse: intmap.New[uint32, uint32](64),
	}
}

// Set attaches the value to the entity, overwriting any previous value, and
// returns a pointer to the stored component. The pointer is invalidated by
// any later Set or remove on this store: the append below may reallocate
// the dense slice and removal swaps rows. Re-fetch with Get instead of
// holding it across structural changes.
func (s *Store[T]) Set(id EntityId, value T) *T {
	if row, ok := s.row(id); ok {
		s.dense[row] = value
		return &s.dense[row]
	}
	row := uint32(len(s.dense))
	s.dense = append(s.dense, value)
	s.owners = append(s.owners, id)
	s.sparse.Put(id.Index(), row)
	return &s.dense[row]
}

// Get returns a pointer to the entity's component, or nil
func (s *Store[T]) Get(id EntityId) *T {
	row, ok := s.row(id)
	if !ok {
		return nil
	}
	return &s.dense[row]
}

// Has reports whether the entity has a component in this store
func (s *Store[T]) Has(id EntityId) bool {
	_, ok := s.row(id)
	return ok
}

// Len returns the number of stored components
func (s *Store[T]) Len() int {
	return len(s.dense)
}

// All iterates over every (entity, component) pair in dense order
func (s *Store[T]) All() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for row := range s.dense {
			if !yield(s.owners[row], &s.dense[row]) {
				return
			}
		}
	}
}

// row resolves the dense row for the handle. The owner check rejects stale
// generations that still share a slot index with a live entity.
func (s *Store[T]) row(id EntityId) (uint32, bool) {
	row, ok := s.sparse.Get(id.Index())
	if !ok || s.owners[row] != id {
		return 0, false
	}
	return row, true
}

func (s *Store[T]) remove(id EntityId) bool {
	row, ok := s.row(id)
	if !ok {
		return false
	}

	last := uint32(len(s.dense) - 1)
	if row != last {
		s.dense[row] = s.dense[last]
		s.owners[row] = s.owners[last]
		s.sparse.Put(s.owners[row].Index(), row)
	}

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.owners = s.owners[:last]
	s.sparse.Del(id.Index())
	return true
}
