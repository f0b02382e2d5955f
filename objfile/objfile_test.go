package objfile_test

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/playpark/objfile"
)

const triangleObj = `
# a single triangle
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

func TestParseTriangle(t *testing.T) {
	mesh, err := objfile.Parse(strings.NewReader(triangleObj))
	assert.NoError(t, err)

	assert.Len(t, mesh.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, mesh.Indices)

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, mesh.Vertices[1].Position)
	assert.Equal(t, mgl32.Vec2{1, 0}, mesh.Vertices[1].UV)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, mesh.Vertices[1].Normal)
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, mesh.Vertices[1].Color)
}

func TestParseQuadTriangulates(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	mesh, err := objfile.Parse(strings.NewReader(src))
	assert.NoError(t, err)

	// quad fans into two triangles sharing corners 1 and 3
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, mesh.Indices)
	assert.Equal(t, 2, mesh.TriangleCount())
}

func TestParseDeduplicatesCorners(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`
	mesh, err := objfile.Parse(strings.NewReader(src))
	assert.NoError(t, err)

	// corners 1 and 3 are shared between the faces
	assert.Len(t, mesh.Vertices, 4)
	assert.Len(t, mesh.Indices, 6)
}

func TestParseNegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	mesh, err := objfile.Parse(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, mesh.Vertices[0].Position)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, mesh.Vertices[2].Position)
}

func TestParseMissingUVAndNormal(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`
	mesh, err := objfile.Parse(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, mgl32.Vec2{0, 0}, mesh.Vertices[0].UV)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, mesh.Vertices[0].Normal)
}

func TestParseSkipsUnknownDirectives(t *testing.T) {
	src := `
mtllib playground.mtl
o Ground
v 0 0 0
v 1 0 0
v 0 1 0
usemtl grass
s off
f 1 2 3
`
	mesh, err := objfile.Parse(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, 1, mesh.TriangleCount())
}

func TestParseErrorsNameTheLine(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad float", "v 0 zero 0", "line 1"},
		{"out of range", "v 0 0 0\nf 1 2 3", "line 2"},
		{"too few corners", "v 0 0 0\nv 1 0 0\nf 1 2", "line 3"},
		{"bad reference", "v 0 0 0\nf 1/a 1 1", "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := objfile.Parse(strings.NewReader(tt.src))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := objfile.Load("does/not/exist.obj")
	assert.Error(t, err)
}
