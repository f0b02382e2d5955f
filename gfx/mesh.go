package gfx

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the interleaved vertex layout shared by every mesh in the demo:
// position, normal, texture coordinate, colour.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
	Color    mgl32.Vec4
}

// VertexFloats is the number of float32 components per vertex
const VertexFloats = 12

// MeshData is a CPU-side indexed triangle mesh. It carries no GL state so
// loaders and factories can be exercised without a context.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// Interleave flattens the vertices into the buffer layout the VAO expects
func (m *MeshData) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*VertexFloats)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
			v.UV.X(), v.UV.Y(),
			v.Color.X(), v.Color.Y(), v.Color.Z(), v.Color.W(),
		)
	}
	return out
}

// TriangleCount returns the number of triangles described by the index list
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}
