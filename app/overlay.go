package app

import (
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/plus3/playpark/ecs"
)

// Overlay owns the Dear ImGui context, its GLFW glue and its GL renderer.
// BeginFrame and Render bracket the scheduler tick so overlay windows can
// be built from inside systems.
type Overlay struct {
	context  *imgui.Context
	platform *imguiPlatform
	renderer *imguiRenderer
	window   *Window

	// Visible toggles the whole overlay without tearing it down
	Visible bool
}

// NewOverlay creates the imgui context and hooks it up to the window
func NewOverlay(window *Window) (*Overlay, error) {
	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")

	renderer, err := newImguiRenderer(io)
	if err != nil {
		context.Destroy()
		return nil, err
	}

	return &Overlay{
		context:  context,
		platform: newImguiPlatform(window.Handle(), io),
		renderer: renderer,
		window:   window,
		Visible:  true,
	}, nil
}

// BeginFrame starts a new imgui frame. Must run before the scheduler tick.
func (o *Overlay) BeginFrame(dt float32) {
	o.platform.newFrame(dt)
	imgui.NewFrame()
}

// Render finishes the imgui frame and draws it over the scene. Must run
// after the scheduler tick, before the buffer swap.
func (o *Overlay) Render() {
	imgui.Render()
	if !o.Visible {
		return
	}

	scaleX, scaleY := o.platform.displayScale()
	fbWidth, fbHeight := o.window.Size()
	o.renderer.render(imgui.RenderedDrawData(), scaleX, scaleY, fbWidth, fbHeight)
}

// Destroy releases the imgui context and its GL objects
func (o *Overlay) Destroy() {
	o.renderer.destroy()
	o.context.Destroy()
}

// OverlayWindow is a component holding an overlay window's builder closure.
// The OverlaySystem wraps the closure in Begin/End with the given title;
// clearing Open hides the window until something sets it again.
type OverlayWindow struct {
	Title  string
	Open   bool
	Render func()
}

// UICapture is a singleton mirroring imgui's input capture state. The
// input-driven behaviours consult it through app.Input.
type UICapture struct {
	WantCaptureKeyboard bool
	WantCaptureMouse    bool
}

// OverlaySystem updates the capture singleton and defers every open
// window's builder to the end of the frame, after all scene systems have
// run.
type OverlaySystem struct {
	Windows ecs.View[OverlayWindow]
	Capture ecs.Singleton[UICapture]

	// Enabled mirrors the overlay's visibility; when false no windows
	// are built and nothing captures input
	Enabled *bool
}

func (s *OverlaySystem) Execute(frame *ecs.Frame) {
	capture := s.Capture.Get()
	if s.Enabled != nil && !*s.Enabled {
		capture.WantCaptureKeyboard = false
		capture.WantCaptureMouse = false
		return
	}

	capture.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	capture.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()

	for _, window := range s.Windows.Iter() {
		if !window.Open || window.Render == nil {
			continue
		}
		w := window
		frame.Commands.Defer(func() {
			if imgui.BeginV(w.Title, &w.Open, 0) {
				w.Render()
			}
			imgui.End()
		})
	}
}
