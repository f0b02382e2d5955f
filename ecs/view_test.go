package ecs_test

import (
	"testing"

	"github.com/plus3/playpark/ecs"
	"github.com/stretchr/testify/assert"
)

func TestViewIter(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 3; i++ {
		id := w.Spawn()
		ecs.Add(w, id, Position{X: float32(i), Y: 0})
	}

	view := ecs.NewView[Position](w)

	seen := 0
	for id, pos := range view.Iter() {
		assert.True(t, w.Alive(id))
		assert.NotNil(t, pos)
		seen++
	}
	assert.Equal(t, 3, seen)
}

func TestView2IterOnlyJoinedEntities(t *testing.T) {
	w := newTestWorld()

	both := w.Spawn()
	ecs.Add(w, both, Position{X: 1, Y: 1})
	ecs.Add(w, both, Velocity{DX: 2, DY: 2})

	posOnly := w.Spawn()
	ecs.Add(w, posOnly, Position{X: 5, Y: 5})

	velOnly := w.Spawn()
	ecs.Add(w, velOnly, Velocity{DX: 9, DY: 9})

	view := ecs.NewView2[Position, Velocity](w)

	seen := make(map[ecs.EntityId]bool)
	for id, row := range view.Iter() {
		assert.NotNil(t, row.A)
		assert.NotNil(t, row.B)
		seen[id] = true
	}

	assert.True(t, seen[both])
	assert.False(t, seen[posOnly])
	assert.False(t, seen[velOnly])
}

func TestView2MutationThroughPointers(t *testing.T) {
	w := newTestWorld()

	id := w.Spawn()
	ecs.Add(w, id, Position{X: 0, Y: 0})
	ecs.Add(w, id, Velocity{DX: 1, DY: 2})

	view := ecs.NewView2[Position, Velocity](w)
	for _, row := range view.Iter() {
		row.A.X += row.B.DX
		row.A.Y += row.B.DY
	}

	pos := ecs.Get[Position](w, id)
	assert.Equal(t, float32(1), pos.X)
	assert.Equal(t, float32(2), pos.Y)
}

func TestView2Get(t *testing.T) {
	w := newTestWorld()

	id := w.Spawn()
	ecs.Add(w, id, Position{X: 3, Y: 4})

	view := ecs.NewView2[Position, Velocity](w)
	_, _, ok := view.Get(id)
	assert.False(t, ok)

	ecs.Add(w, id, Velocity{DX: 1, DY: 1})
	a, b, ok := view.Get(id)
	assert.True(t, ok)
	assert.Equal(t, float32(3), a.X)
	assert.Equal(t, float32(1), b.DX)
}

func TestView3Iter(t *testing.T) {
	w := newTestWorld()

	full := w.Spawn()
	ecs.Add(w, full, Position{X: 1, Y: 1})
	ecs.Add(w, full, Velocity{DX: 1, DY: 1})
	ecs.Add(w, full, Health{Current: 10, Max: 10})

	partial := w.Spawn()
	ecs.Add(w, partial, Position{X: 2, Y: 2})
	ecs.Add(w, partial, Velocity{DX: 2, DY: 2})

	view := ecs.NewView3[Position, Velocity, Health](w)

	count := 0
	for id, row := range view.Iter() {
		assert.Equal(t, full, id)
		assert.Equal(t, 10, row.C.Current)
		count++
	}
	assert.Equal(t, 1, count)
}

func TestViewIterEarlyBreak(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 10; i++ {
		id := w.Spawn()
		ecs.Add(w, id, Position{X: float32(i)})
	}

	view := ecs.NewView[Position](w)
	seen := 0
	for range view.Iter() {
		seen++
		if seen == 4 {
			break
		}
	}
	assert.Equal(t, 4, seen)
}
