package scene

import (
	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/playpark/ecs"
	"github.com/plus3/playpark/logger"
)

// BehaviourSystem runs every enabled behaviour slot, in binding order per
// entity. Behaviours mutate components directly; structural changes go
// through the frame's command buffer.
type BehaviourSystem struct {
	Behaviours ecs.View[Behaviours]
}

func (s *BehaviourSystem) Execute(frame *ecs.Frame) {
	for id, bs := range s.Behaviours.Iter() {
		ctx := BehaviourContext{
			World:     frame.World,
			Entity:    id,
			DeltaTime: frame.DeltaTime,
			Commands:  frame.Commands,
		}
		for _, slot := range bs.Slots {
			if slot.Enabled {
				slot.Behaviour.Update(&ctx)
			}
		}
	}
}

// TransformSystem resolves every transform's world matrix once per frame,
// parents before children. It runs after behaviours so the frame renders
// what they just moved.
type TransformSystem struct {
	epoch uint64
}

func (s *TransformSystem) Execute(frame *ecs.Frame) {
	s.epoch++
	ResolveTransforms(frame.World, s.epoch)
}

// RenderSystem clears the framebuffer and draws every entity holding a
// Transform and a Renderer, viewed through the ActiveCamera entity. Draws
// are sorted by layer, shader and material before playback.
type RenderSystem struct {
	Renderables ecs.View2[Transform, Renderer]
	Cameras     ecs.View[Camera]
	Active      ecs.Singleton[ActiveCamera]

	ClearColor mgl32.Vec4

	queue     DrawQueue
	warnedCam bool

	// stats of the most recent frame, read by the overlay
	LastStats DrawStats
}

func (s *RenderSystem) Execute(frame *ecs.Frame) {
	gl.ClearColor(s.ClearColor.X(), s.ClearColor.Y(), s.ClearColor.Z(), s.ClearColor.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	cam := s.Cameras.Get(s.Active.Get().Entity)
	if cam == nil {
		if !s.warnedCam {
			logger.Log("scene", "no active camera, skipping render")
			s.warnedCam = true
		}
		s.LastStats = DrawStats{}
		return
	}
	s.warnedCam = false

	s.queue.Reset()
	for _, row := range s.Renderables.Iter() {
		s.queue.Push(row.B, row.A.World(), row.A.NormalMatrix())
	}
	s.queue.Sort()

	s.LastStats = s.queue.Execute(NewFrameUniforms(cam))
}
