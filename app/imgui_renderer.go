package app

import (
	"fmt"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/plus3/playpark/gfx"
)

const overlayVertexShader = `#version 410
uniform mat4 u_Projection;
layout(location = 0) in vec2 inPosition;
layout(location = 1) in vec2 inUV;
layout(location = 2) in vec4 inColor;
out vec2 fragUV;
out vec4 fragColor;
void main() {
	fragUV = inUV;
	fragColor = inColor;
	gl_Position = u_Projection * vec4(inPosition.xy, 0, 1);
}
`

const overlayFragmentShader = `#version 410
uniform sampler2D s_Texture;
in vec2 fragUV;
in vec4 fragColor;
out vec4 outColor;
void main() {
	outColor = fragColor * texture(s_Texture, fragUV.st);
}
`

// imguiRenderer turns imgui draw data into GL draws. It keeps its own
// shader and buffers and restores whatever GL state the scene renderer left
// behind.
type imguiRenderer struct {
	io     imgui.IO
	shader *gfx.Shader

	vbo         uint32
	ebo         uint32
	fontTexture uint32
}

func newImguiRenderer(io imgui.IO) (*imguiRenderer, error) {
	shader, err := gfx.NewShader(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}

	rnd := &imguiRenderer{
		io:     io,
		shader: shader,
	}
	gl.GenBuffers(1, &rnd.vbo)
	gl.GenBuffers(1, &rnd.ebo)
	rnd.createFontTexture()

	return rnd, nil
}

func (rnd *imguiRenderer) createFontTexture() {
	image := rnd.io.Fonts().TextureDataRGBA32()

	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)

	gl.GenTextures(1, &rnd.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, rnd.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(image.Width), int32(image.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, image.Pixels)

	rnd.io.Fonts().SetTextureID(imgui.TextureID(rnd.fontTexture))
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
}

func (rnd *imguiRenderer) destroy() {
	if rnd.vbo != 0 {
		gl.DeleteBuffers(1, &rnd.vbo)
		rnd.vbo = 0
	}
	if rnd.ebo != 0 {
		gl.DeleteBuffers(1, &rnd.ebo)
		rnd.ebo = 0
	}
	if rnd.fontTexture != 0 {
		gl.DeleteTextures(1, &rnd.fontTexture)
		rnd.io.Fonts().SetTextureID(0)
		rnd.fontTexture = 0
	}
	rnd.shader.Destroy()
}

// render draws the frame's imgui draw data on top of the scene
func (rnd *imguiRenderer) render(drawData imgui.DrawData, scaleX, scaleY float32, fbWidth, fbHeight int) {
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{X: scaleX, Y: scaleY})

	st := storeGLState()
	defer st.restoreGLState()

	// alpha blending, no depth or culling, scissor clipping
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	// orthographic projection over the window, origin top-left
	displayWidth := float32(fbWidth) / scaleX
	displayHeight := float32(fbHeight) / scaleY
	projection := mgl32.Mat4{
		2.0 / displayWidth, 0, 0, 0,
		0, -2.0 / displayHeight, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}

	rnd.shader.Bind()
	rnd.shader.SetMat4("u_Projection", projection)
	rnd.shader.SetInt("s_Texture", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	// a throwaway VAO per frame, VAOs are not shared between contexts
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	defer gl.DeleteVertexArrays(1, &vao)

	vertexSize, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vbo)
	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, int32(vertexSize), uintptr(posOffset))
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, int32(vertexSize), uintptr(uvOffset))
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(colOffset))

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		var indexBufferOffset uintptr

		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rnd.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				clipRect := cmd.ClipRect()
				gl.Scissor(int32(clipRect.X), int32(fbHeight)-int32(clipRect.W),
					int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, indexBufferOffset)
			}
			indexBufferOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}
}

// glState stores the GL state the overlay touches, for restoration after
// the overlay draw
type glState struct {
	lastActiveTexture      int32
	lastProgram            int32
	lastTexture            int32
	lastArrayBuffer        int32
	lastElementArrayBuffer int32
	lastVertexArray        int32
	lastPolygonMode        [2]int32
	lastViewport           [4]int32
	lastScissorBox         [4]int32
	lastBlendSrcRgb        int32
	lastBlendDstRgb        int32
	lastBlendSrcAlpha      int32
	lastBlendDstAlpha      int32
	lastBlendEquationRgb   int32
	lastBlendEquationAlpha int32
	lastEnableBlend        bool
	lastEnableCullFace     bool
	lastEnableDepthTest    bool
	lastEnableScissorTest  bool
}

func storeGLState() *glState {
	st := &glState{}
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &st.lastActiveTexture)
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &st.lastProgram)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &st.lastTexture)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &st.lastArrayBuffer)
	gl.GetIntegerv(gl.ELEMENT_ARRAY_BUFFER_BINDING, &st.lastElementArrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &st.lastVertexArray)
	gl.GetIntegerv(gl.POLYGON_MODE, &st.lastPolygonMode[0])
	gl.GetIntegerv(gl.VIEWPORT, &st.lastViewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &st.lastScissorBox[0])
	gl.GetIntegerv(gl.BLEND_SRC_RGB, &st.lastBlendSrcRgb)
	gl.GetIntegerv(gl.BLEND_DST_RGB, &st.lastBlendDstRgb)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &st.lastBlendSrcAlpha)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &st.lastBlendDstAlpha)
	gl.GetIntegerv(gl.BLEND_EQUATION_RGB, &st.lastBlendEquationRgb)
	gl.GetIntegerv(gl.BLEND_EQUATION_ALPHA, &st.lastBlendEquationAlpha)
	st.lastEnableBlend = gl.IsEnabled(gl.BLEND)
	st.lastEnableCullFace = gl.IsEnabled(gl.CULL_FACE)
	st.lastEnableDepthTest = gl.IsEnabled(gl.DEPTH_TEST)
	st.lastEnableScissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return st
}

func (st *glState) restoreGLState() {
	gl.UseProgram(uint32(st.lastProgram))
	gl.BindTexture(gl.TEXTURE_2D, uint32(st.lastTexture))
	gl.ActiveTexture(uint32(st.lastActiveTexture))
	gl.BindVertexArray(uint32(st.lastVertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(st.lastArrayBuffer))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(st.lastElementArrayBuffer))
	gl.BlendEquationSeparate(uint32(st.lastBlendEquationRgb), uint32(st.lastBlendEquationAlpha))
	gl.BlendFuncSeparate(uint32(st.lastBlendSrcRgb), uint32(st.lastBlendDstRgb),
		uint32(st.lastBlendSrcAlpha), uint32(st.lastBlendDstAlpha))
	if st.lastEnableBlend {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}
	if st.lastEnableCullFace {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
	if st.lastEnableDepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if st.lastEnableScissorTest {
		gl.Enable(gl.SCISSOR_TEST)
	} else {
		gl.Disable(gl.SCISSOR_TEST)
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(st.lastPolygonMode[0]))
	gl.Viewport(st.lastViewport[0], st.lastViewport[1], st.lastViewport[2], st.lastViewport[3])
	gl.Scissor(st.lastScissorBox[0], st.lastScissorBox[1], st.lastScissorBox[2], st.lastScissorBox[3])
}
