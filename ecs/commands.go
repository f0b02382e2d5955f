package ecs

// Commands buffers structural changes requested during system execution and
// applies them when the frame's systems have all run. This keeps the stores
// structurally stable while views iterate them.
type Commands struct {
	structural []func(*World)
	defers     []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Despawn queues an entity despawn
func (c *Commands) Despawn(id EntityId) {
	c.structural = append(c.structural, func(w *World) {
		w.Despawn(id)
	})
}

// Spawn queues fn with a freshly spawned entity. The callback attaches
// whatever components the new entity needs.
func (c *Commands) Spawn(fn func(w *World, id EntityId)) {
	c.structural = append(c.structural, func(w *World) {
		fn(w, w.Spawn())
	})
}

// Defer queues a plain function to run after all structural changes
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// AddComponent queues a component attachment
func AddComponent[T any](c *Commands, id EntityId, value T) {
	c.structural = append(c.structural, func(w *World) {
		Add(w, id, value)
	})
}

// RemoveComponent queues a component detachment
func RemoveComponent[T any](c *Commands, id EntityId) {
	c.structural = append(c.structural, func(w *World) {
		Remove[T](w, id)
	})
}

// Flush applies all buffered commands to the world in submission order,
// then runs the deferred functions, resetting the buffer state.
func (c *Commands) Flush(w *World) {
	for _, fn := range c.structural {
		fn(w)
	}
	for _, fn := range c.defers {
		fn()
	}
	c.structural = c.structural[:0]
	c.defers = c.defers[:0]
}
