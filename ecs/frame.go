package ecs

// Frame carries the per-tick state handed to each system.
type Frame struct {
	DeltaTime float32
	Commands  *Commands
	World     *World
}

func newFrame(dt float32, w *World) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     w,
	}
}

// System represents a behavior that operates on entities with specific
// components. User-defined systems implement this interface and can include
// View and Singleton fields, which the Scheduler initializes on
// registration, as well as custom state fields that persist between frames.
type System interface {
	Execute(frame *Frame)
}
