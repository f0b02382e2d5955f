package gfx

import "github.com/go-gl/gl/v4.5-core/gl"

// Vertex attribute locations, fixed across every shader in the demo.
const (
	attribPosition = 0
	attribNormal   = 1
	attribUV       = 2
	attribColor    = 3
)

// VertexArrayObject owns a baked mesh on the GPU: the vertex and index
// buffers plus the attribute layout binding them to the shaders.
type VertexArrayObject struct {
	handle uint32
	vertex *VertexBuffer
	index  *IndexBuffer
}

// Bake uploads the mesh data and records the attribute layout in a new VAO
func Bake(mesh *MeshData) *VertexArrayObject {
	vao := &VertexArrayObject{
		vertex: NewVertexBuffer(mesh.Interleave()),
		index:  NewIndexBuffer(mesh.Indices),
	}

	gl.GenVertexArrays(1, &vao.handle)
	gl.BindVertexArray(vao.handle)
	vao.vertex.Bind()
	vao.index.Bind()

	stride := int32(VertexFloats * 4)
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(attribNormal)
	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(attribUV)
	gl.VertexAttribPointerWithOffset(attribUV, 2, gl.FLOAT, false, stride, 24)
	gl.EnableVertexAttribArray(attribColor)
	gl.VertexAttribPointerWithOffset(attribColor, 4, gl.FLOAT, false, stride, 32)

	gl.BindVertexArray(0)
	return vao
}

// Draw issues the indexed draw call for the whole mesh
func (vao *VertexArrayObject) Draw() {
	gl.BindVertexArray(vao.handle)
	gl.DrawElementsWithOffset(gl.TRIANGLES, vao.index.Count(), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy releases the VAO and its buffers
func (vao *VertexArrayObject) Destroy() {
	gl.DeleteVertexArrays(1, &vao.handle)
	vao.handle = 0
	vao.vertex.Destroy()
	vao.index.Destroy()
}
