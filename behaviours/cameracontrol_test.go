package behaviours_test

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/playpark/behaviours"
	"github.com/plus3/playpark/ecs"
	"github.com/plus3/playpark/scene"
)

func spawnCamera(w *ecs.World) (ecs.EntityId, *scene.Camera) {
	id := w.Spawn()
	cam := ecs.Add(w, id, scene.NewCamera())
	cam.Forward = mgl32.Vec3{1, 0, 0}
	cam.Up = mgl32.Vec3{0, 0, 1}
	return id, cam
}

func TestCameraControlMovesForward(t *testing.T) {
	w := newBehaviourWorld()
	id, cam := spawnCamera(w)

	input := newFakeInput()
	input.keys[glfw.KeyW] = true

	ctrl := behaviours.NewCameraControl(input)
	ctrl.MoveSpeed = 2
	stepBehaviour(w, id, ctrl, 0.5)

	assert.InDelta(t, 1.0, cam.Position.X(), 1e-4)
	assert.InDelta(t, 0.0, cam.Position.Y(), 1e-4)
}

func TestCameraControlStrafeIsPerpendicular(t *testing.T) {
	w := newBehaviourWorld()
	id, cam := spawnCamera(w)

	input := newFakeInput()
	input.keys[glfw.KeyD] = true

	ctrl := behaviours.NewCameraControl(input)
	ctrl.MoveSpeed = 1
	stepBehaviour(w, id, ctrl, 1.0)

	// forward (1,0,0) with Z up strafes along -Y
	assert.InDelta(t, 0.0, cam.Position.X(), 1e-4)
	assert.InDelta(t, -1.0, cam.Position.Y(), 1e-4)
	assert.InDelta(t, 0.0, cam.Position.Z(), 1e-4)
}

func TestCameraControlVerticalMovementIgnoresLook(t *testing.T) {
	w := newBehaviourWorld()
	id, cam := spawnCamera(w)

	input := newFakeInput()
	input.keys[glfw.KeySpace] = true

	ctrl := behaviours.NewCameraControl(input)
	ctrl.MoveSpeed = 3
	stepBehaviour(w, id, ctrl, 1.0)

	assert.Equal(t, mgl32.Vec3{0, 0, 3}, cam.Position)
}

func TestCameraControlLookRequiresRightMouse(t *testing.T) {
	w := newBehaviourWorld()
	id, cam := spawnCamera(w)

	input := newFakeInput()
	input.dx = 100

	ctrl := behaviours.NewCameraControl(input)
	stepBehaviour(w, id, ctrl, 0.016)
	before := cam.Forward

	input.buttons[glfw.MouseButtonRight] = true
	stepBehaviour(w, id, ctrl, 0.016)

	assert.Equal(t, before, mgl32.Vec3{1, 0, 0})
	assert.NotEqual(t, before, cam.Forward)
	assert.InDelta(t, 1.0, cam.Forward.Len(), 1e-4)
}

func TestCameraControlPitchClamps(t *testing.T) {
	w := newBehaviourWorld()
	id, cam := spawnCamera(w)

	input := newFakeInput()
	input.buttons[glfw.MouseButtonRight] = true
	input.dy = -10000

	ctrl := behaviours.NewCameraControl(input)
	for i := 0; i < 10; i++ {
		stepBehaviour(w, id, ctrl, 0.016)
	}

	// never looks exactly straight up, so the strafe axis stays defined
	assert.Less(t, cam.Forward.Z(), float32(1))
	assert.Greater(t, cam.Forward.Cross(cam.Up).Len(), float32(0))
}

func TestCameraControlRespectsOverlayCapture(t *testing.T) {
	w := newBehaviourWorld()
	id, cam := spawnCamera(w)

	input := newFakeInput()
	input.keys[glfw.KeyW] = true
	input.buttons[glfw.MouseButtonRight] = true
	input.dx = 50
	input.captureKeyboard = true
	input.captureMouse = true

	ctrl := behaviours.NewCameraControl(input)
	stepBehaviour(w, id, ctrl, 1.0)

	assert.Equal(t, mgl32.Vec3{0, 0, 0}, cam.Position)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, cam.Forward)
}
