package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/playpark/gfx"
	"github.com/plus3/playpark/logger"
	"github.com/plus3/playpark/objfile"
)

// assetLoader loads models and textures relative to the asset directory,
// substituting placeholders for anything missing so the scene still comes
// up with a partial asset set.
type assetLoader struct {
	dir string

	meshes   map[string]*gfx.VertexArrayObject
	fallback *gfx.VertexArrayObject
}

func newAssetLoader(dir string) *assetLoader {
	return &assetLoader{
		dir:    dir,
		meshes: make(map[string]*gfx.VertexArrayObject),
	}
}

// Mesh loads and bakes an OBJ model, caching by name so shared models (the
// balloons, the trees) bake only once. A model that fails to load is
// replaced with a unit cube.
func (a *assetLoader) Mesh(name string) *gfx.VertexArrayObject {
	if vao, ok := a.meshes[name]; ok {
		return vao
	}

	mesh, err := objfile.Load(filepath.Join(a.dir, "models", name))
	if err != nil {
		logger.Logf("assets", "%v, substituting cube", err)
		vao := a.fallbackMesh()
		a.meshes[name] = vao
		return vao
	}

	vao := gfx.Bake(mesh)
	a.meshes[name] = vao
	logger.Logf("assets", "loaded %s (%d triangles)", name, mesh.TriangleCount())
	return vao
}

func (a *assetLoader) fallbackMesh() *gfx.VertexArrayObject {
	if a.fallback == nil {
		b := gfx.NewMeshBuilder()
		b.AddCube(mgl32.Vec3{}, mgl32.Vec3{0.5, 0.5, 0.5})
		a.fallback = gfx.Bake(b.Mesh())
	}
	return a.fallback
}

// Texture loads a 2D texture, or a flat placeholder color if the file is
// missing or unreadable
func (a *assetLoader) Texture(name string) gfx.TextureBinder {
	tex, err := gfx.LoadTexture2D(filepath.Join(a.dir, "images", name))
	if err != nil {
		logger.Logf("assets", "%v, substituting solid color", err)
		return a.SolidTexture(0xc8, 0x50, 0xc8)
	}
	return tex
}

// SolidTexture returns a single-color texture for neutral secondary maps
func (a *assetLoader) SolidTexture(r, g, b uint8) gfx.TextureBinder {
	return gfx.SolidColorTexture(r, g, b)
}

// CubeMap loads a cube map from a 4x3 cross image. Failure is an error
// rather than a placeholder; the skybox without an environment is worse
// than no skybox.
func (a *assetLoader) CubeMap(name string) (*gfx.TextureCubeMap, error) {
	cm, err := gfx.LoadTextureCubeMap(filepath.Join(a.dir, "images", name))
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return cm, nil
}

// Shader compiles a program from the shader directory
func (a *assetLoader) Shader(vertexName, fragmentName string) (*gfx.Shader, error) {
	return gfx.NewShaderFromFiles(
		filepath.Join(a.dir, "shaders", vertexName),
		filepath.Join(a.dir, "shaders", fragmentName),
	)
}
