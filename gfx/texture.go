package gfx

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// TextureBinder is anything a material can bind to a texture unit
type TextureBinder interface {
	Bind(slot uint32)
}

// Texture2D is a 2D GL texture with mipmaps
type Texture2D struct {
	handle uint32
	width  int32
	height int32
}

// LoadTexture2D decodes the image file (PNG, JPEG or BMP) and uploads it
func LoadTexture2D(path string) (*Texture2D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}

	return NewTexture2D(flipRGBA(toRGBA(img))), nil
}

// NewTexture2D uploads the image as a mipmapped, repeating texture
func NewTexture2D(rgba *image.RGBA) *Texture2D {
	t := &Texture2D{
		width:  int32(rgba.Rect.Dx()),
		height: int32(rgba.Rect.Dy()),
	}

	gl.GenTextures(1, &t.handle)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA8, t.width, t.height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t
}

// SolidColorTexture creates a 1x1 texture of the given colour. Used as the
// fallback when a texture asset is missing and for the cleared placeholder.
func SolidColorTexture(r, g, b uint8) *Texture2D {
	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	rgba.Pix[0] = r
	rgba.Pix[1] = g
	rgba.Pix[2] = b
	rgba.Pix[3] = 0xff
	return NewTexture2D(rgba)
}

// Bind binds the texture to the given texture unit
func (t *Texture2D) Bind(slot uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
}

// Handle returns the GL texture name
func (t *Texture2D) Handle() uint32 {
	return t.handle
}

// Destroy releases the GL texture
func (t *Texture2D) Destroy() {
	gl.DeleteTextures(1, &t.handle)
	t.handle = 0
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// flipRGBA mirrors the image vertically. Image files store the top row
// first; GL texture coordinates start at the bottom.
func flipRGBA(rgba *image.RGBA) *image.RGBA {
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	flipped := image.NewRGBA(image.Rect(0, 0, w, h))
	stride := rgba.Stride
	for y := 0; y < h; y++ {
		src := rgba.Pix[y*stride : y*stride+w*4]
		dst := flipped.Pix[(h-1-y)*flipped.Stride:]
		copy(dst, src)
	}
	return flipped
}
