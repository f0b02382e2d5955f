package scene_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/playpark/ecs"
	"github.com/plus3/playpark/scene"
)

func newSceneWorld() *ecs.World {
	w := ecs.NewWorld()
	ecs.RegisterComponent[scene.Transform](w)
	ecs.RegisterComponent[scene.Renderer](w)
	ecs.RegisterComponent[scene.Behaviours](w)
	ecs.RegisterComponent[scene.Camera](w)
	return w
}

// fakeShader records uniform uploads in call order
type fakeShader struct {
	handle uint32
	binds  int
	calls  []string
}

func (f *fakeShader) Bind()          { f.binds++ }
func (f *fakeShader) Handle() uint32 { return f.handle }

func (f *fakeShader) SetInt(name string, value int32) {
	f.calls = append(f.calls, fmt.Sprintf("int %s=%d", name, value))
}

func (f *fakeShader) SetFloat(name string, value float32) {
	f.calls = append(f.calls, fmt.Sprintf("float %s=%g", name, value))
}

func (f *fakeShader) SetVec3(name string, value mgl32.Vec3) {
	f.calls = append(f.calls, "vec3 "+name)
}

func (f *fakeShader) SetMat3(name string, value mgl32.Mat3) {
	f.calls = append(f.calls, "mat3 "+name)
}

func (f *fakeShader) SetMat4(name string, value mgl32.Mat4) {
	f.calls = append(f.calls, "mat4 "+name)
}

// fakeTexture records which unit it was bound to
type fakeTexture struct {
	slot uint32
}

func (f *fakeTexture) Bind(slot uint32) { f.slot = slot }

// fakeMesh appends its label to a shared draw order
type fakeMesh struct {
	label string
	order *[]string
}

func (f *fakeMesh) Draw() { *f.order = append(*f.order, f.label) }
