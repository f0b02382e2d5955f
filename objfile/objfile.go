// Package objfile loads the subset of the Wavefront OBJ format the demo's
// model assets use: v/vt/vn records and triangular or fan-triangulated
// faces. Materials, groups and smoothing directives are skipped.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/playpark/gfx"
)

// Load reads and parses an OBJ file
func Load(path string) (*gfx.MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objfile: %w", err)
	}
	defer f.Close()

	mesh, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("objfile: %s: %w", path, err)
	}
	return mesh, nil
}

// Parse reads OBJ text and returns an indexed mesh. Vertices referenced
// with the same position/uv/normal triple are de-duplicated.
func Parse(r io.Reader) (*gfx.MeshData, error) {
	p := &parser{
		dedupe: make(map[[3]int]uint32),
		mesh:   &gfx.MeshData{},
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		var err error
		switch fields[0] {
		case "v":
			err = p.vertex(fields[1:])
		case "vt":
			err = p.texCoord(fields[1:])
		case "vn":
			err = p.normal(fields[1:])
		case "f":
			err = p.face(fields[1:])
		default:
			// mtllib, usemtl, o, g, s and friends
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return p.mesh, nil
}

type parser struct {
	positions []mgl32.Vec3
	uvs       []mgl32.Vec2
	normals   []mgl32.Vec3

	dedupe map[[3]int]uint32
	mesh   *gfx.MeshData
}

func parseFloats(fields []string, out []float32) error {
	if len(fields) < len(out) {
		return fmt.Errorf("expected %d components, got %d", len(out), len(fields))
	}
	for i := range out {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return err
		}
		out[i] = float32(v)
	}
	return nil
}

func (p *parser) vertex(fields []string) error {
	var v [3]float32
	if err := parseFloats(fields, v[:]); err != nil {
		return fmt.Errorf("v: %w", err)
	}
	p.positions = append(p.positions, mgl32.Vec3(v))
	return nil
}

func (p *parser) texCoord(fields []string) error {
	var v [2]float32
	if err := parseFloats(fields, v[:]); err != nil {
		return fmt.Errorf("vt: %w", err)
	}
	p.uvs = append(p.uvs, mgl32.Vec2(v))
	return nil
}

func (p *parser) normal(fields []string) error {
	var v [3]float32
	if err := parseFloats(fields, v[:]); err != nil {
		return fmt.Errorf("vn: %w", err)
	}
	p.normals = append(p.normals, mgl32.Vec3(v))
	return nil
}

func (p *parser) face(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("f: face needs at least 3 vertices, got %d", len(fields))
	}

	corners := make([]uint32, len(fields))
	for i, field := range fields {
		idx, err := p.corner(field)
		if err != nil {
			return fmt.Errorf("f: %w", err)
		}
		corners[i] = idx
	}

	// triangulate as a fan around the first corner
	for i := 1; i+1 < len(corners); i++ {
		p.mesh.Indices = append(p.mesh.Indices, corners[0], corners[i], corners[i+1])
	}
	return nil
}

// corner resolves one "v", "v/vt", "v//vn" or "v/vt/vn" face reference to
// a mesh vertex index, de-duplicating repeated triples.
func (p *parser) corner(field string) (uint32, error) {
	parts := strings.Split(field, "/")
	if len(parts) > 3 {
		return 0, fmt.Errorf("bad vertex reference %q", field)
	}

	var refs [3]int
	for i, part := range parts {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("bad vertex reference %q", field)
		}
		refs[i] = n
	}

	pos, err := resolveIndex(refs[0], len(p.positions), "position")
	if err != nil {
		return 0, err
	}

	uv := -1
	if refs[1] != 0 {
		if uv, err = resolveIndex(refs[1], len(p.uvs), "texture coordinate"); err != nil {
			return 0, err
		}
	}

	norm := -1
	if refs[2] != 0 {
		if norm, err = resolveIndex(refs[2], len(p.normals), "normal"); err != nil {
			return 0, err
		}
	}

	key := [3]int{pos, uv, norm}
	if idx, ok := p.dedupe[key]; ok {
		return idx, nil
	}

	v := gfx.Vertex{
		Position: p.positions[pos],
		Color:    mgl32.Vec4{1, 1, 1, 1},
	}
	if uv >= 0 {
		v.UV = p.uvs[uv]
	}
	if norm >= 0 {
		v.Normal = p.normals[norm]
	}

	idx := uint32(len(p.mesh.Vertices))
	p.mesh.Vertices = append(p.mesh.Vertices, v)
	p.dedupe[key] = idx
	return idx, nil
}

// resolveIndex converts a one-based (or negative, relative-to-end) OBJ
// index to a zero-based slice index.
func resolveIndex(ref int, length int, what string) (int, error) {
	idx := ref - 1
	if ref < 0 {
		idx = length + ref
	}
	if idx < 0 || idx >= length {
		return 0, fmt.Errorf("%s index %d out of range (have %d)", what, ref, length)
	}
	return idx, nil
}
