package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/playpark/ecs"
)

// Camera projects the scene. It can switch between a perspective and an
// orthographic projection at runtime; the orthographic frustum height is
// chosen so objects near the focus plane keep roughly the same size on
// screen.
type Camera struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3
	Up       mgl32.Vec3

	FovDegrees  float32
	OrthoHeight float32
	Near        float32
	Far         float32

	aspect float32
	ortho  bool
}

// NewCamera creates a camera at the origin looking down -Z with sensible
// clip planes
func NewCamera() Camera {
	return Camera{
		Forward:     mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		FovDegrees:  60,
		OrthoHeight: 3,
		Near:        0.01,
		Far:         1000,
		aspect:      1,
	}
}

// LookAt aims the camera at target from its current position
func (c *Camera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.LenSqr() == 0 {
		return
	}
	c.Forward = dir.Normalize()
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward), c.Up)
}

// Projection returns the camera-to-clip matrix for the current mode
func (c *Camera) Projection() mgl32.Mat4 {
	if c.ortho {
		halfH := c.OrthoHeight
		halfW := halfH * c.aspect
		return mgl32.Ortho(-halfW, halfW, -halfH, halfH, c.Near, c.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovDegrees), c.aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// IsOrtho reports whether the camera is in orthographic mode
func (c *Camera) IsOrtho() bool {
	return c.ortho
}

// ToggleOrtho switches between perspective and orthographic projection
func (c *Camera) ToggleOrtho() {
	c.ortho = !c.ortho
}

// Resize updates the aspect ratio after a framebuffer size change.
// Degenerate sizes (a minimised window) are ignored so the last good aspect
// survives.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
}

// ActiveCamera is a world resource naming the entity whose Camera and
// Transform drive rendering.
type ActiveCamera struct {
	Entity ecs.EntityId
}
