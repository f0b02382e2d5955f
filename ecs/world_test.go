package ecs_test

import (
	"fmt"
	"testing"

	"github.com/plus3/playpark/ecs"
	"github.com/stretchr/testify/assert"
)

// Test EntityId encoding/decoding
func TestEntityIdEncoding(t *testing.T) {
	generation := uint32(12345)
	index := uint32(67890)

	entityId := ecs.NewEntityId(generation, index)

	assert.Equal(t, generation, entityId.Generation())
	assert.Equal(t, index, entityId.Index())
}

func TestEntityIdEdgeCases(t *testing.T) {
	tests := []struct {
		generation uint32
		index      uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("generation=%d,index=%d", tt.generation, tt.index), func(t *testing.T) {
			entityId := ecs.NewEntityId(tt.generation, tt.index)
			assert.Equal(t, tt.generation, entityId.Generation())
			assert.Equal(t, tt.index, entityId.Index())
		})
	}
}

func TestSpawnEntity(t *testing.T) {
	w := newTestWorld()

	id := w.Spawn()
	assert.True(t, w.Alive(id))
	assert.NotEqual(t, ecs.Nil, id)
	assert.Equal(t, 1, w.Count())
}

func TestNilIsNeverAlive(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 100; i++ {
		assert.NotEqual(t, ecs.Nil, w.Spawn())
	}
	assert.False(t, w.Alive(ecs.Nil))
}

func TestAddGetComponent(t *testing.T) {
	w := newTestWorld()

	id := w.Spawn()
	ecs.Add(w, id, Position{X: 3.0, Y: 4.0})
	ecs.Add(w, id, Name("Test Entity"))

	pos := ecs.Get[Position](w, id)
	assert.NotNil(t, pos)
	assert.Equal(t, float32(3.0), pos.X)
	assert.Equal(t, float32(4.0), pos.Y)

	name := ecs.Get[Name](w, id)
	assert.NotNil(t, name)
	assert.Equal(t, Name("Test Entity"), *name)

	// Component the entity never had
	assert.Nil(t, ecs.Get[Velocity](w, id))
	assert.False(t, ecs.Has[Velocity](w, id))
}

func TestDespawnEntity(t *testing.T) {
	w := newTestWorld()

	id := w.Spawn()
	ecs.Add(w, id, Position{X: 1.0, Y: 1.0})
	ecs.Add(w, id, Health{Current: 100, Max: 100})

	assert.NotNil(t, ecs.Get[Position](w, id))

	w.Despawn(id)

	assert.False(t, w.Alive(id))
	assert.Nil(t, ecs.Get[Position](w, id))
	assert.Nil(t, ecs.Get[Health](w, id))
	assert.Equal(t, 0, w.Count())
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	w := newTestWorld()

	old := w.Spawn()
	ecs.Add(w, old, Position{X: 1.0, Y: 1.0})
	w.Despawn(old)

	// The slot is reused with a bumped generation
	reused := w.Spawn()
	assert.Equal(t, old.Index(), reused.Index())
	assert.NotEqual(t, old.Generation(), reused.Generation())
	ecs.Add(w, reused, Position{X: 9.0, Y: 9.0})

	// The stale handle must not alias the new entity's component
	assert.False(t, w.Alive(old))
	assert.Nil(t, ecs.Get[Position](w, old))
	assert.NotNil(t, ecs.Get[Position](w, reused))
}

func TestDespawnIgnoresStaleHandle(t *testing.T) {
	w := newTestWorld()

	old := w.Spawn()
	w.Despawn(old)
	reused := w.Spawn()
	ecs.Add(w, reused, Name("survivor"))

	// Despawning through the stale handle must not kill the new entity
	w.Despawn(old)
	assert.True(t, w.Alive(reused))
	assert.NotNil(t, ecs.Get[Name](w, reused))
}

func TestRemoveComponent(t *testing.T) {
	w := newTestWorld()

	id := w.Spawn()
	ecs.Add(w, id, Position{X: 1.0, Y: 2.0})
	ecs.Add(w, id, Velocity{DX: 0.5, DY: 0.5})

	assert.True(t, ecs.Remove[Velocity](w, id))
	assert.False(t, ecs.Has[Velocity](w, id))
	assert.True(t, ecs.Has[Position](w, id))

	// Second removal is a no-op
	assert.False(t, ecs.Remove[Velocity](w, id))
}

func TestStoreSwapRemoveKeepsOthersReachable(t *testing.T) {
	w := newTestWorld()

	ids := make([]ecs.EntityId, 5)
	for i := range ids {
		ids[i] = w.Spawn()
		ecs.Add(w, ids[i], Position{X: float32(i), Y: float32(i)})
	}

	// Removing from the middle swaps the last row into the hole
	assert.True(t, ecs.Remove[Position](w, ids[1]))

	store := ecs.StoreFor[Position](w)
	assert.Equal(t, 4, store.Len())
	for i, id := range ids {
		if i == 1 {
			assert.Nil(t, store.Get(id))
			continue
		}
		pos := store.Get(id)
		assert.NotNil(t, pos)
		assert.Equal(t, float32(i), pos.X)
	}
}

func TestHeldComponentPointerInvalidatedByGrowth(t *testing.T) {
	w := newTestWorld()

	first := w.Spawn()
	held := ecs.Add(w, first, Position{X: 1})

	// grow the dense slice well past any initial capacity
	for i := 0; i < 64; i++ {
		ecs.Add(w, w.Spawn(), Position{X: float32(i + 2)})
	}

	// the held pointer refers to a stale copy of the row now; writes
	// through it never reach the live component
	held.X = 99
	assert.Equal(t, float32(1), ecs.Get[Position](w, first).X)

	// re-fetching after the structural changes yields the live row
	ecs.Get[Position](w, first).X = 5
	assert.Equal(t, float32(5), ecs.Get[Position](w, first).X)
}

func TestUnregisteredComponentPanics(t *testing.T) {
	w := ecs.NewWorld()

	type unregistered struct{}
	assert.Panics(t, func() {
		ecs.StoreFor[unregistered](w)
	})
}

func TestResources(t *testing.T) {
	w := newTestWorld()

	type clock struct{ Elapsed float32 }

	assert.Nil(t, ecs.Resource[clock](w))

	ecs.AddResource(w, clock{Elapsed: 1.5})
	c := ecs.Resource[clock](w)
	assert.NotNil(t, c)
	assert.Equal(t, float32(1.5), c.Elapsed)

	// Mutation through the pointer persists
	c.Elapsed = 3.0
	assert.Equal(t, float32(3.0), ecs.Resource[clock](w).Elapsed)
}

func TestSingletonCreatesResource(t *testing.T) {
	w := newTestWorld()

	type settings struct{ Volume int }

	s := ecs.NewSingleton(w, settings{Volume: 7})
	assert.Equal(t, 7, s.Get().Volume)

	// A second accessor shares the same resource
	other := ecs.NewSingleton[settings](w)
	assert.Equal(t, 7, other.Get().Volume)
}
