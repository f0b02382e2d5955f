package behaviours

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/playpark/ecs"
	"github.com/plus3/playpark/scene"
)

// SimpleMove rotates the selected entity from the keyboard: Q/E yaw it,
// the arrow keys pitch and roll it. With Relative set the rotations apply
// about the entity's own axes, otherwise about the world axes.
type SimpleMove struct {
	Input    InputSource
	Relative bool

	// DegreesPerSecond is the rotation rate, 90 if zero
	DegreesPerSecond float32
}

func (s *SimpleMove) Update(ctx *scene.BehaviourContext) {
	if s.Input == nil || s.Input.WantCaptureKeyboard() {
		return
	}

	tr := ecs.Get[scene.Transform](ctx.World, ctx.Entity)
	if tr == nil {
		return
	}

	rate := s.DegreesPerSecond
	if rate == 0 {
		rate = 90
	}
	deg := rate * ctx.DeltaTime

	rotate := tr.RotateWorld
	if s.Relative {
		rotate = tr.Rotate
	}

	if s.Input.KeyDown(glfw.KeyQ) {
		rotate(deg, mgl32.Vec3{0, 0, 1})
	}
	if s.Input.KeyDown(glfw.KeyE) {
		rotate(-deg, mgl32.Vec3{0, 0, 1})
	}
	if s.Input.KeyDown(glfw.KeyUp) {
		rotate(deg, mgl32.Vec3{1, 0, 0})
	}
	if s.Input.KeyDown(glfw.KeyDown) {
		rotate(-deg, mgl32.Vec3{1, 0, 0})
	}
	if s.Input.KeyDown(glfw.KeyLeft) {
		rotate(deg, mgl32.Vec3{0, 1, 0})
	}
	if s.Input.KeyDown(glfw.KeyRight) {
		rotate(-deg, mgl32.Vec3{0, 1, 0})
	}
}
