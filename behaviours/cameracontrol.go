package behaviours

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/playpark/ecs"
	"github.com/plus3/playpark/scene"
)

// CameraControl flies the camera entity: holding the right mouse button
// turns the view with the cursor, WASD moves in the view plane and
// space/left-control move straight up and down. The world is Z-up.
type CameraControl struct {
	Input InputSource

	MoveSpeed float32
	LookSpeed float32

	yaw     float32
	pitch   float32
	tracked bool
}

// NewCameraControl creates a camera controller with the default speeds
func NewCameraControl(input InputSource) *CameraControl {
	return &CameraControl{
		Input:     input,
		MoveSpeed: 5,
		LookSpeed: 0.2,
	}
}

const maxPitch = 89

func (c *CameraControl) Update(ctx *scene.BehaviourContext) {
	cam := ecs.Get[scene.Camera](ctx.World, ctx.Entity)
	if cam == nil || c.Input == nil {
		return
	}

	// adopt whatever orientation the camera was authored with
	if !c.tracked {
		c.yaw = mgl32.RadToDeg(math32.Atan2(cam.Forward.Y(), cam.Forward.X()))
		c.pitch = mgl32.RadToDeg(math32.Asin(clamp(cam.Forward.Z(), -1, 1)))
		c.tracked = true
	}

	if c.Input.MouseDown(glfw.MouseButtonRight) && !c.Input.WantCaptureMouse() {
		dx, dy := c.Input.CursorDelta()
		c.yaw -= dx * c.LookSpeed
		c.pitch = clamp(c.pitch-dy*c.LookSpeed, -maxPitch, maxPitch)
	}

	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)
	cam.Forward = mgl32.Vec3{
		math32.Cos(pitch) * math32.Cos(yaw),
		math32.Cos(pitch) * math32.Sin(yaw),
		math32.Sin(pitch),
	}
	cam.Up = mgl32.Vec3{0, 0, 1}

	if c.Input.WantCaptureKeyboard() {
		return
	}

	var move mgl32.Vec3
	right := cam.Forward.Cross(cam.Up).Normalize()
	if c.Input.KeyDown(glfw.KeyW) {
		move = move.Add(cam.Forward)
	}
	if c.Input.KeyDown(glfw.KeyS) {
		move = move.Sub(cam.Forward)
	}
	if c.Input.KeyDown(glfw.KeyD) {
		move = move.Add(right)
	}
	if c.Input.KeyDown(glfw.KeyA) {
		move = move.Sub(right)
	}
	if c.Input.KeyDown(glfw.KeySpace) {
		move = move.Add(mgl32.Vec3{0, 0, 1})
	}
	if c.Input.KeyDown(glfw.KeyLeftControl) {
		move = move.Sub(mgl32.Vec3{0, 0, 1})
	}

	if move.LenSqr() > 0 {
		cam.Position = cam.Position.Add(move.Normalize().Mul(c.MoveSpeed * ctx.DeltaTime))
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
