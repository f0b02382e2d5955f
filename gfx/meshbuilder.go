package gfx

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MeshBuilder accumulates vertices and triangles into a MeshData. The
// factory functions below append procedural geometry to a builder; Mesh
// returns the result for baking.
type MeshBuilder struct {
	mesh MeshData
}

// NewMeshBuilder creates an empty builder
func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{}
}

// AddVertex appends a vertex and returns its index
func (b *MeshBuilder) AddVertex(v Vertex) uint32 {
	b.mesh.Vertices = append(b.mesh.Vertices, v)
	return uint32(len(b.mesh.Vertices) - 1)
}

// AddTriangle appends a triangle by vertex indices, counter-clockwise
// winding facing outward
func (b *MeshBuilder) AddTriangle(i0, i1, i2 uint32) {
	b.mesh.Indices = append(b.mesh.Indices, i0, i1, i2)
}

// Mesh returns the accumulated mesh data
func (b *MeshBuilder) Mesh() *MeshData {
	return &b.mesh
}

// InvertFaces flips the winding of every triangle and negates the normals,
// turning an outward-facing mesh inside out. Used for the skybox dome,
// which is viewed from within.
func (b *MeshBuilder) InvertFaces() {
	for i := 0; i+2 < len(b.mesh.Indices); i += 3 {
		b.mesh.Indices[i+1], b.mesh.Indices[i+2] = b.mesh.Indices[i+2], b.mesh.Indices[i+1]
	}
	for i := range b.mesh.Vertices {
		b.mesh.Vertices[i].Normal = b.mesh.Vertices[i].Normal.Mul(-1)
	}
}

// AddIcoSphere appends an icosphere with two subdivision passes, the
// resolution the skybox dome needs
func (b *MeshBuilder) AddIcoSphere(center mgl32.Vec3, radius float32) {
	b.AddIcoSphereV(center, radius, 2)
}

// AddIcoSphereV appends an icosphere with the given number of subdivision
// passes
func (b *MeshBuilder) AddIcoSphereV(center mgl32.Vec3, radius float32, subdivisions int) {
	t := (1.0 + math32.Sqrt(5.0)) / 2.0

	positions := []mgl32.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range positions {
		positions[i] = positions[i].Normalize()
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	// midpoint cache so shared edges reuse the same vertex
	midpoints := make(map[[2]int]int)
	midpoint := func(a, c int) int {
		key := [2]int{min(a, c), max(a, c)}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		mid := positions[a].Add(positions[c]).Mul(0.5).Normalize()
		positions = append(positions, mid)
		idx := len(positions) - 1
		midpoints[key] = idx
		return idx
	}

	for pass := 0; pass < subdivisions; pass++ {
		next := make([][3]int, 0, len(faces)*4)
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				[3]int{f[0], ab, ca},
				[3]int{f[1], bc, ab},
				[3]int{f[2], ca, bc},
				[3]int{ab, bc, ca})
		}
		faces = next
	}

	base := uint32(len(b.mesh.Vertices))
	for _, p := range positions {
		// equirectangular uv from the unit direction
		u := 0.5 + math32.Atan2(p.Z(), p.X())/(2*math32.Pi)
		v := 0.5 - math32.Asin(p.Y())/math32.Pi

		b.AddVertex(Vertex{
			Position: center.Add(p.Mul(radius)),
			Normal:   p,
			UV:       mgl32.Vec2{u, v},
			Color:    mgl32.Vec4{1, 1, 1, 1},
		})
	}
	for _, f := range faces {
		b.AddTriangle(base+uint32(f[0]), base+uint32(f[1]), base+uint32(f[2]))
	}
}

// AddCube appends an axis-aligned cube with per-face normals
func (b *MeshBuilder) AddCube(center mgl32.Vec3, halfExtents mgl32.Vec3) {
	type face struct {
		normal mgl32.Vec3
		right  mgl32.Vec3
		up     mgl32.Vec3
	}
	faces := []face{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}

	uvs := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		n := mulComponents(f.normal, halfExtents)
		r := mulComponents(f.right, halfExtents)
		u := mulComponents(f.up, halfExtents)

		corners := [4]mgl32.Vec3{
			center.Add(n).Sub(r).Sub(u),
			center.Add(n).Add(r).Sub(u),
			center.Add(n).Add(r).Add(u),
			center.Add(n).Sub(r).Add(u),
		}

		base := uint32(len(b.mesh.Vertices))
		for i, c := range corners {
			b.AddVertex(Vertex{
				Position: c,
				Normal:   f.normal,
				UV:       uvs[i],
				Color:    mgl32.Vec4{1, 1, 1, 1},
			})
		}
		b.AddTriangle(base, base+1, base+2)
		b.AddTriangle(base, base+2, base+3)
	}
}

func mulComponents(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}
