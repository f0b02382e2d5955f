package scene

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Drawable issues the GL draw for a baked mesh. *gfx.VertexArrayObject
// satisfies it.
type Drawable interface {
	Draw()
}

// Renderer makes an entity visible: a baked mesh drawn with a material.
// The entity must also carry a Transform.
type Renderer struct {
	Mesh     Drawable
	Material *Material
}

// FrameUniforms holds the per-frame values uploaded once per shader bind
type FrameUniforms struct {
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	ViewProjection mgl32.Mat4
	SkyboxMatrix   mgl32.Mat4
	CameraPos      mgl32.Vec3
}

// NewFrameUniforms derives the frame uniforms from the camera. The skybox
// matrix drops the view translation so the dome never parallaxes.
func NewFrameUniforms(cam *Camera) FrameUniforms {
	view := cam.View()
	proj := cam.Projection()
	return FrameUniforms{
		View:           view,
		Projection:     proj,
		ViewProjection: cam.ViewProjection(),
		SkyboxMatrix:   proj.Mul4(view.Mat3().Mat4()),
		CameraPos:      cam.Position,
	}
}

// Upload sends the frame uniforms to the sink. Shaders that do not declare
// one of the names simply ignore it.
func (f *FrameUniforms) Upload(sink UniformSink) {
	sink.SetMat4("u_View", f.View)
	sink.SetMat4("u_ViewProjection", f.ViewProjection)
	sink.SetMat4("u_SkyboxMatrix", f.SkyboxMatrix)
	sink.SetVec3("u_CamPos", f.CameraPos)
}

// DrawStats counts the GL work one Execute pass issued
type DrawStats struct {
	Calls           int
	ShaderBinds     int
	MaterialApplies int
}

type drawCall struct {
	layer    int
	shader   uint32
	material uint64

	mat    *Material
	mesh   Drawable
	model  mgl32.Mat4
	normal mgl32.Mat3
}

// DrawQueue collects one frame's draw calls, orders them to minimise state
// changes and plays them back. The backing slice is reused across frames.
type DrawQueue struct {
	calls []drawCall
}

// Reset empties the queue, keeping its capacity
func (q *DrawQueue) Reset() {
	q.calls = q.calls[:0]
}

// Len returns the number of queued draw calls
func (q *DrawQueue) Len() int {
	return len(q.calls)
}

// Push queues one draw. Renderers with no material are skipped.
func (q *DrawQueue) Push(r *Renderer, model mgl32.Mat4, normal mgl32.Mat3) {
	if r.Material == nil {
		return
	}
	q.calls = append(q.calls, drawCall{
		layer:    r.Material.RenderLayer(),
		shader:   r.Material.Shader().Handle(),
		material: r.Material.Id(),
		mat:      r.Material,
		mesh:     r.Mesh,
		model:    model,
		normal:   normal,
	})
}

// Sort orders the queue by render layer, then shader handle, then material
// id. The sort is stable, so equal keys keep submission order and repeated
// frames replay identically.
func (q *DrawQueue) Sort() {
	slices.SortStableFunc(q.calls, func(a, b drawCall) int {
		if a.layer != b.layer {
			return a.layer - b.layer
		}
		if a.shader != b.shader {
			if a.shader < b.shader {
				return -1
			}
			return 1
		}
		switch {
		case a.material < b.material:
			return -1
		case a.material > b.material:
			return 1
		}
		return 0
	})
}

// Execute plays the sorted queue back. The shader is rebound and the frame
// uniforms re-uploaded only when the shader changes; the material is
// re-applied only when the material changes; the model matrices go out per
// call.
func (q *DrawQueue) Execute(frame FrameUniforms) DrawStats {
	var stats DrawStats
	var boundShader ShaderProgram
	var appliedMaterial *Material

	for i := range q.calls {
		c := &q.calls[i]

		if shader := c.mat.Shader(); shader != boundShader {
			boundShader = shader
			boundShader.Bind()
			frame.Upload(boundShader)
			stats.ShaderBinds++
			appliedMaterial = nil
		}
		if c.mat != appliedMaterial {
			c.mat.Apply()
			stats.MaterialApplies++
			appliedMaterial = c.mat
		}

		boundShader.SetMat4("u_Model", c.model)
		boundShader.SetMat3("u_NormalMatrix", c.normal)
		boundShader.SetMat4("u_ModelViewProjection", frame.ViewProjection.Mul4(c.model))

		if c.mesh != nil {
			c.mesh.Draw()
		}
		stats.Calls++
	}

	return stats
}
