package ecs_test

import (
	"testing"

	"github.com/plus3/playpark/ecs"
	"github.com/stretchr/testify/assert"
)

type movementSystem struct {
	Moving ecs.View2[Position, Velocity]

	executions int
}

func (m *movementSystem) Execute(frame *ecs.Frame) {
	m.executions++
	for _, row := range m.Moving.Iter() {
		row.A.X += row.B.DX * frame.DeltaTime
		row.A.Y += row.B.DY * frame.DeltaTime
	}
}

type reaperSystem struct {
	Wounded ecs.View[Health]
}

func (r *reaperSystem) Execute(frame *ecs.Frame) {
	for id, h := range r.Wounded.Iter() {
		if h.Current <= 0 {
			frame.Commands.Despawn(id)
		}
	}
}

func TestSchedulerInitializesViewFields(t *testing.T) {
	w := newTestWorld()
	scheduler := ecs.NewScheduler(w)

	// Registration must initialize the zero-valued view field
	sys := &movementSystem{}
	scheduler.Register(sys)

	id := w.Spawn()
	ecs.Add(w, id, Position{X: 0, Y: 0})
	ecs.Add(w, id, Velocity{DX: 10, DY: 0})

	scheduler.Once(0.5)

	pos := ecs.Get[Position](w, id)
	assert.Equal(t, float32(5), pos.X)
	assert.Equal(t, 1, sys.executions)
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	w := newTestWorld()
	scheduler := ecs.NewScheduler(w)

	var order []string
	scheduler.Register(systemFunc(func(*ecs.Frame) { order = append(order, "first") }))
	scheduler.Register(systemFunc(func(*ecs.Frame) { order = append(order, "second") }))
	scheduler.Register(systemFunc(func(*ecs.Frame) { order = append(order, "third") }))

	scheduler.Once(0.016)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestSchedulerDeferredDespawn(t *testing.T) {
	w := newTestWorld()
	scheduler := ecs.NewScheduler(w)
	scheduler.Register(&reaperSystem{})

	dead := w.Spawn()
	ecs.Add(w, dead, Health{Current: 0, Max: 10})
	alive := w.Spawn()
	ecs.Add(w, alive, Health{Current: 5, Max: 10})

	scheduler.Once(0.016)

	assert.False(t, w.Alive(dead))
	assert.True(t, w.Alive(alive))
}

func TestSchedulerStats(t *testing.T) {
	w := newTestWorld()
	scheduler := ecs.NewScheduler(w)
	scheduler.Register(&movementSystem{})
	scheduler.Register(&reaperSystem{})

	for i := 0; i < 3; i++ {
		scheduler.Once(0.016)
	}

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, "movementSystem", stats.Systems[0].Name)
	assert.Equal(t, int64(3), stats.Systems[0].ExecutionCount)
	assert.GreaterOrEqual(t, stats.Systems[0].MaxDuration, stats.Systems[0].MinDuration)
}

// systemFunc adapts a bare function to the System interface for tests.
type systemFunc func(*ecs.Frame)

func (f systemFunc) Execute(frame *ecs.Frame) {
	f(frame)
}
