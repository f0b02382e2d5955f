package scene

import (
	"slices"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/playpark/gfx"
)

// UniformSink receives uniform uploads. *gfx.Shader satisfies it; tests
// substitute a recorder.
type UniformSink interface {
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec3(name string, value mgl32.Vec3)
	SetMat3(name string, value mgl32.Mat3)
	SetMat4(name string, value mgl32.Mat4)
}

// ShaderProgram is the part of *gfx.Shader the scene needs: a bindable
// program that accepts uniforms and has a stable handle for draw sorting.
type ShaderProgram interface {
	UniformSink
	Bind()
	Handle() uint32
}

var materialIds atomic.Uint64

// Material couples a shader with the uniform and texture values a draw
// needs. Each material gets a process-unique id at creation, giving the
// draw queue a stable tiebreaker between materials sharing a shader.
type Material struct {
	id          uint64
	shader      ShaderProgram
	renderLayer int

	ints     map[string]int32
	floats   map[string]float32
	vec3s    map[string]mgl32.Vec3
	mat3s    map[string]mgl32.Mat3
	textures map[string]gfx.TextureBinder
}

// NewMaterial creates a material around the shader at render layer 0
func NewMaterial(shader ShaderProgram) *Material {
	return &Material{
		id:       materialIds.Add(1),
		shader:   shader,
		ints:     make(map[string]int32),
		floats:   make(map[string]float32),
		vec3s:    make(map[string]mgl32.Vec3),
		mat3s:    make(map[string]mgl32.Mat3),
		textures: make(map[string]gfx.TextureBinder),
	}
}

// Id returns the material's process-unique creation id
func (m *Material) Id() uint64 {
	return m.id
}

// Shader returns the material's shader
func (m *Material) Shader() ShaderProgram {
	return m.shader
}

// RenderLayer returns the material's draw ordering layer
func (m *Material) RenderLayer() int {
	return m.renderLayer
}

// SetRenderLayer assigns the draw ordering layer. Higher layers draw later;
// the skybox uses a high layer so it fills only the far plane.
func (m *Material) SetRenderLayer(layer int) {
	m.renderLayer = layer
}

// SetInt stages an int uniform value
func (m *Material) SetInt(name string, value int32) {
	m.ints[name] = value
}

// SetFloat stages a float uniform value
func (m *Material) SetFloat(name string, value float32) {
	m.floats[name] = value
}

// GetFloat returns a staged float uniform value, or zero if unset
func (m *Material) GetFloat(name string) float32 {
	return m.floats[name]
}

// SetVec3 stages a vec3 uniform value
func (m *Material) SetVec3(name string, value mgl32.Vec3) {
	m.vec3s[name] = value
}

// SetMat3 stages a mat3 uniform value
func (m *Material) SetMat3(name string, value mgl32.Mat3) {
	m.mat3s[name] = value
}

// SetTexture stages a texture under a sampler uniform name. Texture units
// are assigned at apply time.
func (m *Material) SetTexture(name string, texture gfx.TextureBinder) {
	m.textures[name] = texture
}

// Apply binds the shader, binds each texture to a unit and uploads every
// staged uniform. Values go out in sorted name order within each kind, so
// repeated frames issue an identical GL call sequence.
func (m *Material) Apply() {
	m.shader.Bind()
	for i, name := range sortedKeys(m.textures) {
		m.textures[name].Bind(uint32(i))
		m.shader.SetInt(name, int32(i))
	}
	m.ApplyUniforms(m.shader)
}

// ApplyUniforms uploads the staged non-texture uniforms to the sink
func (m *Material) ApplyUniforms(sink UniformSink) {
	for _, name := range sortedKeys(m.ints) {
		sink.SetInt(name, m.ints[name])
	}
	for _, name := range sortedKeys(m.floats) {
		sink.SetFloat(name, m.floats[name])
	}
	for _, name := range sortedKeys(m.vec3s) {
		sink.SetVec3(name, m.vec3s[name])
	}
	for _, name := range sortedKeys(m.mat3s) {
		sink.SetMat3(name, m.mat3s[name])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
