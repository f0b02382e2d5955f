package gfx

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// TextureCubeMap is a GL cube map texture built from a single image laid
// out as a 4x3 horizontal cross:
//
//	    [+Y]
//	[-X][+Z][+X][-Z]
//	    [-Y]
type TextureCubeMap struct {
	handle uint32
}

// cube map faces in GL enumeration order, with their cell in the cross
var crossCells = []struct {
	target uint32
	col    int
	row    int
}{
	{gl.TEXTURE_CUBE_MAP_POSITIVE_X, 2, 1},
	{gl.TEXTURE_CUBE_MAP_NEGATIVE_X, 0, 1},
	{gl.TEXTURE_CUBE_MAP_POSITIVE_Y, 1, 0},
	{gl.TEXTURE_CUBE_MAP_NEGATIVE_Y, 1, 2},
	{gl.TEXTURE_CUBE_MAP_POSITIVE_Z, 1, 1},
	{gl.TEXTURE_CUBE_MAP_NEGATIVE_Z, 3, 1},
}

// LoadTextureCubeMap decodes a cross-layout image file and uploads its six
// faces
func LoadTextureCubeMap(path string) (*TextureCubeMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cubemap: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cubemap: %s: %w", path, err)
	}

	return NewTextureCubeMap(toRGBA(img))
}

// NewTextureCubeMap slices the cross-layout image into faces and uploads
// them
func NewTextureCubeMap(rgba *image.RGBA) (*TextureCubeMap, error) {
	bounds := rgba.Bounds()
	if bounds.Dx()%4 != 0 || bounds.Dy()%3 != 0 || bounds.Dx()/4 != bounds.Dy()/3 {
		return nil, fmt.Errorf("cubemap: image %dx%d is not a 4x3 cross of square faces", bounds.Dx(), bounds.Dy())
	}
	face := bounds.Dx() / 4

	t := &TextureCubeMap{}
	gl.GenTextures(1, &t.handle)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, t.handle)

	for _, cell := range crossCells {
		sub := image.NewRGBA(image.Rect(0, 0, face, face))
		origin := image.Pt(bounds.Min.X+cell.col*face, bounds.Min.Y+cell.row*face)
		draw.Draw(sub, sub.Bounds(), rgba, origin, draw.Src)

		gl.TexImage2D(cell.target, 0,
			gl.RGBA8, int32(face), int32(face), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(sub.Pix))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	return t, nil
}

// Bind binds the cube map to the given texture unit
func (t *TextureCubeMap) Bind(slot uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, t.handle)
}

// Destroy releases the GL texture
func (t *TextureCubeMap) Destroy() {
	gl.DeleteTextures(1, &t.handle)
	t.handle = 0
}
