// Package gfx wraps the OpenGL objects the demo needs: shader programs,
// textures, vertex/index buffers and vertex array objects. Everything here
// must run on the main thread with a current GL context.
package gfx

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a linked GL program with a uniform location cache. Programs are
// identified by their GL handle, which the draw queue uses as a sort key.
type Shader struct {
	handle   uint32
	uniforms map[string]int32
}

// NewShaderFromFiles compiles the vertex and fragment stages from the given
// source files and links them into a program.
func NewShaderFromFiles(vertexPath, fragmentPath string) (*Shader, error) {
	vertexSrc, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}
	fragmentSrc, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}
	return NewShader(string(vertexSrc), string(fragmentSrc))
}

// NewShader compiles and links a program from vertex and fragment sources.
func NewShader(vertexSrc, fragmentSrc string) (*Shader, error) {
	vertex, err := compileStage(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("shader: vertex stage: %w", err)
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileStage(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("shader: fragment stage: %w", err)
	}
	defer gl.DeleteShader(fragment)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex)
	gl.AttachShader(handle, fragment)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteProgram(handle)
		return nil, fmt.Errorf("shader: link: %s", programInfoLog(handle))
	}

	return &Shader{
		handle:   handle,
		uniforms: make(map[string]int32),
	}, nil
}

func compileStage(source string, stage uint32) (uint32, error) {
	handle := gl.CreateShader(stage)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteShader(handle)
		return 0, fmt.Errorf("%s", shaderInfoLog(handle))
	}

	return handle, nil
}

func shaderInfoLog(handle uint32) string {
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength)+1)
	gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func programInfoLog(handle uint32) string {
	var logLength int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength)+1)
	gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

// Handle returns the GL program name
func (s *Shader) Handle() uint32 {
	return s.handle
}

// Bind makes this the active program
func (s *Shader) Bind() {
	gl.UseProgram(s.handle)
}

// Destroy releases the GL program
func (s *Shader) Destroy() {
	gl.DeleteProgram(s.handle)
	s.handle = 0
}

// location looks up a uniform location, caching the result. Unknown names
// cache as -1, which GL ignores on upload.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.handle, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// SetInt uploads an int uniform. The program must be bound.
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

// SetFloat uploads a float uniform. The program must be bound.
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

// SetVec3 uploads a vec3 uniform. The program must be bound.
func (s *Shader) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &value[0])
}

// SetMat3 uploads a mat3 uniform. The program must be bound.
func (s *Shader) SetMat3(name string, value mgl32.Mat3) {
	gl.UniformMatrix3fv(s.location(name), 1, false, &value[0])
}

// SetMat4 uploads a mat4 uniform. The program must be bound.
func (s *Shader) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &value[0])
}
