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

func newBehaviourWorld() *ecs.World {
	w := ecs.NewWorld()
	ecs.RegisterComponent[scene.Transform](w)
	ecs.RegisterComponent[scene.Camera](w)
	ecs.RegisterComponent[scene.Behaviours](w)
	return w
}

// fakeInput scripts input state for behaviour tests
type fakeInput struct {
	keys    map[glfw.Key]bool
	buttons map[glfw.MouseButton]bool
	dx, dy  float32

	captureKeyboard bool
	captureMouse    bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		keys:    make(map[glfw.Key]bool),
		buttons: make(map[glfw.MouseButton]bool),
	}
}

func (f *fakeInput) KeyDown(key glfw.Key) bool              { return f.keys[key] }
func (f *fakeInput) MouseDown(button glfw.MouseButton) bool { return f.buttons[button] }
func (f *fakeInput) CursorDelta() (float32, float32)        { return f.dx, f.dy }
func (f *fakeInput) WantCaptureKeyboard() bool              { return f.captureKeyboard }
func (f *fakeInput) WantCaptureMouse() bool                 { return f.captureMouse }

func stepBehaviour(w *ecs.World, id ecs.EntityId, b scene.Behaviour, dt float32) {
	ctx := &scene.BehaviourContext{World: w, Entity: id, DeltaTime: dt}
	b.Update(ctx)
}

func TestFollowPathMovesTowardWaypoint(t *testing.T) {
	w := newBehaviourWorld()
	id := w.Spawn()
	tr := ecs.Add(w, id, scene.NewTransform())

	path := behaviours.NewFollowPath(2, mgl32.Vec3{10, 0, 0})

	stepBehaviour(w, id, path, 0.5)

	// speed 2 for half a second covers one unit
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, tr.LocalPosition())
}

func TestFollowPathAdvancesAndWraps(t *testing.T) {
	w := newBehaviourWorld()
	id := w.Spawn()
	tr := ecs.Add(w, id, scene.NewTransform())

	path := behaviours.NewFollowPath(1,
		mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{1, 1, 0},
		mgl32.Vec3{0, 1, 0},
		mgl32.Vec3{0, 0, 0},
	)

	// walk the full square in unit steps
	for i := 0; i < 4; i++ {
		stepBehaviour(w, id, path, 1.0)
	}

	assert.Equal(t, mgl32.Vec3{0, 0, 0}, tr.LocalPosition())
	assert.Equal(t, 0, path.Target())
}

func TestFollowPathCrossesCornerInOneStep(t *testing.T) {
	w := newBehaviourWorld()
	id := w.Spawn()
	tr := ecs.Add(w, id, scene.NewTransform())

	path := behaviours.NewFollowPath(1,
		mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{1, 1, 0},
	)

	// 1.5 units of travel: one to the corner, half a unit beyond it
	stepBehaviour(w, id, path, 1.5)

	p := tr.LocalPosition()
	assert.InDelta(t, 1.0, p.X(), 1e-5)
	assert.InDelta(t, 0.5, p.Y(), 1e-5)
	assert.Equal(t, 1, path.Target())
}

func TestFollowPathConstantSpeedAcrossFrameRates(t *testing.T) {
	w := newBehaviourWorld()

	coarse := w.Spawn()
	coarseTr := ecs.Add(w, coarse, scene.NewTransform())
	fine := w.Spawn()
	fineTr := ecs.Add(w, fine, scene.NewTransform())

	square := []mgl32.Vec3{{2, 0, 0}, {2, 2, 0}, {0, 2, 0}, {0, 0, 0}}

	coarsePath := behaviours.NewFollowPath(1, square...)
	finePath := behaviours.NewFollowPath(1, square...)

	stepBehaviour(w, coarse, coarsePath, 3.0)
	for i := 0; i < 300; i++ {
		stepBehaviour(w, fine, finePath, 0.01)
	}

	cp, fp := coarseTr.LocalPosition(), fineTr.LocalPosition()
	assert.InDelta(t, cp.X(), fp.X(), 1e-2)
	assert.InDelta(t, cp.Y(), fp.Y(), 1e-2)
}

func TestFollowPathEmptyAndDegenerate(t *testing.T) {
	w := newBehaviourWorld()
	id := w.Spawn()
	tr := ecs.Add(w, id, scene.NewTransform())
	tr.SetLocalPosition(3, 3, 3)

	// no waypoints
	empty := behaviours.NewFollowPath(1)
	stepBehaviour(w, id, empty, 1.0)
	assert.Equal(t, mgl32.Vec3{3, 3, 3}, tr.LocalPosition())

	// a single waypoint equal to the position must not spin forever
	stuck := behaviours.NewFollowPath(1, mgl32.Vec3{3, 3, 3})
	stepBehaviour(w, id, stuck, 1.0)
	assert.Equal(t, mgl32.Vec3{3, 3, 3}, tr.LocalPosition())
}
