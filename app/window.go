// Package app owns the application shell around the scene: the GLFW window
// and GL context, frame timing, input routing and the Dear ImGui debug
// overlay. Everything in this package must run on the main thread.
package app

import (
	"fmt"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/plus3/playpark/gfx"
	"github.com/plus3/playpark/logger"
)

// Window wraps the GLFW window and its GL context
type Window struct {
	glfw *glfw.Window

	width  int
	height int

	resizeHooks []func(width, height int)
}

// NewWindow initialises GLFW, opens a window and makes its 4.5 core context
// current. Call Destroy when done; it terminates GLFW.
func NewWindow(title string, width, height int, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("window: gl init: %w", err)
	}

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	logger.Logf("window", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf("window", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf("window", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gfx.EnableDebugOutput()
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	w := &Window{
		glfw:   win,
		width:  width,
		height: height,
	}

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, fbWidth, fbHeight int) {
		w.width, w.height = fbWidth, fbHeight
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		for _, hook := range w.resizeHooks {
			hook(fbWidth, fbHeight)
		}
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width, w.height = fbWidth, fbHeight
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	return w, nil
}

// OnResize registers a hook run on every framebuffer size change. The hook
// also runs immediately with the current size.
func (w *Window) OnResize(hook func(width, height int)) {
	w.resizeHooks = append(w.resizeHooks, hook)
	hook(w.width, w.height)
}

// Size returns the current framebuffer size
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// Handle returns the underlying GLFW window
func (w *Window) Handle() *glfw.Window {
	return w.glfw
}

// ShouldClose reports whether the user asked to close the window
func (w *Window) ShouldClose() bool {
	return w.glfw.ShouldClose()
}

// BeginFrame polls window events
func (w *Window) BeginFrame() {
	glfw.PollEvents()
}

// EndFrame presents the finished frame
func (w *Window) EndFrame() {
	w.glfw.SwapBuffers()
}

// Destroy closes the window and terminates GLFW
func (w *Window) Destroy() {
	w.glfw.Destroy()
	glfw.Terminate()
}
