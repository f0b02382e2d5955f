package scene_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/playpark/scene"
)

func TestCameraLookAt(t *testing.T) {
	cam := scene.NewCamera()
	cam.Position = mgl32.Vec3{0, 3, 3}
	cam.Up = mgl32.Vec3{0, 0, 1}
	cam.LookAt(mgl32.Vec3{0, 0, 0})

	assert.InDelta(t, 1.0, cam.Forward.Len(), 1e-5)
	assert.Less(t, cam.Forward.Y(), float32(0))
	assert.Less(t, cam.Forward.Z(), float32(0))

	// looking at the current position is ignored
	forward := cam.Forward
	cam.LookAt(cam.Position)
	assert.Equal(t, forward, cam.Forward)
}

func TestCameraToggleOrthoChangesProjection(t *testing.T) {
	cam := scene.NewCamera()
	cam.Resize(800, 600)

	persp := cam.Projection()
	assert.False(t, cam.IsOrtho())

	cam.ToggleOrtho()
	assert.True(t, cam.IsOrtho())
	ortho := cam.Projection()
	assert.NotEqual(t, persp, ortho)

	// orthographic projection has no perspective divide
	assert.Equal(t, float32(0), ortho.At(3, 2))
	assert.Equal(t, float32(1), ortho.At(3, 3))

	cam.ToggleOrtho()
	assert.False(t, cam.IsOrtho())
	assert.Equal(t, persp, cam.Projection())
}

func TestCameraResize(t *testing.T) {
	cam := scene.NewCamera()
	cam.ToggleOrtho()

	cam.Resize(200, 100)
	wide := cam.Projection()

	// a minimised window must not poison the aspect ratio
	cam.Resize(0, 0)
	assert.Equal(t, wide, cam.Projection())

	cam.Resize(100, 100)
	assert.NotEqual(t, wide, cam.Projection())
}

func TestCameraViewProjectionComposes(t *testing.T) {
	cam := scene.NewCamera()
	cam.Position = mgl32.Vec3{1, 2, 3}
	cam.Up = mgl32.Vec3{0, 0, 1}
	cam.LookAt(mgl32.Vec3{0, 0, 0})
	cam.Resize(800, 600)

	assert.Equal(t, cam.Projection().Mul4(cam.View()), cam.ViewProjection())
}

func TestCameraOrthoHeightScalesFrustum(t *testing.T) {
	cam := scene.NewCamera()
	cam.Resize(100, 100)
	cam.ToggleOrtho()
	cam.OrthoHeight = 3

	// a point at the frustum edge lands on the clip boundary
	p := cam.Projection().Mul4x1(mgl32.Vec4{0, 3, -1, 1})
	assert.InDelta(t, 1.0, p.Y(), 1e-5)
}
