package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// imguiPlatform feeds GLFW input and display state into the imgui IO. Key
// and character events arrive through callbacks; mouse state is polled each
// frame.
type imguiPlatform struct {
	window *glfw.Window
	io     imgui.IO
}

func newImguiPlatform(window *glfw.Window, io imgui.IO) *imguiPlatform {
	p := &imguiPlatform{
		window: window,
		io:     io,
	}
	p.setKeyMapping()
	p.installCallbacks()
	return p
}

func (p *imguiPlatform) setKeyMapping() {
	keys := map[int]int{
		imgui.KeyTab:        int(glfw.KeyTab),
		imgui.KeyLeftArrow:  int(glfw.KeyLeft),
		imgui.KeyRightArrow: int(glfw.KeyRight),
		imgui.KeyUpArrow:    int(glfw.KeyUp),
		imgui.KeyDownArrow:  int(glfw.KeyDown),
		imgui.KeyPageUp:     int(glfw.KeyPageUp),
		imgui.KeyPageDown:   int(glfw.KeyPageDown),
		imgui.KeyHome:       int(glfw.KeyHome),
		imgui.KeyEnd:        int(glfw.KeyEnd),
		imgui.KeyInsert:     int(glfw.KeyInsert),
		imgui.KeyDelete:     int(glfw.KeyDelete),
		imgui.KeyBackspace:  int(glfw.KeyBackspace),
		imgui.KeySpace:      int(glfw.KeySpace),
		imgui.KeyEnter:      int(glfw.KeyEnter),
		imgui.KeyEscape:     int(glfw.KeyEscape),
		imgui.KeyA:          int(glfw.KeyA),
		imgui.KeyC:          int(glfw.KeyC),
		imgui.KeyV:          int(glfw.KeyV),
		imgui.KeyX:          int(glfw.KeyX),
		imgui.KeyY:          int(glfw.KeyY),
		imgui.KeyZ:          int(glfw.KeyZ),
	}
	for imguiKey, nativeKey := range keys {
		p.io.KeyMap(imguiKey, nativeKey)
	}
}

func (p *imguiPlatform) installCallbacks() {
	p.window.SetCharCallback(func(_ *glfw.Window, char rune) {
		p.io.AddInputCharacters(string(char))
	})
	p.window.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		p.io.AddMouseWheelDelta(float32(x), float32(y))
	})
	p.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			p.io.KeyPress(int(key))
		case glfw.Release:
			p.io.KeyRelease(int(key))
		}

		// modifier flags from the callback are unreliable across
		// platforms, derive them from the key state instead
		p.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
		p.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
		p.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
		p.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
	})
}

// newFrame pushes display size, delta time and mouse state into imgui
// ahead of imgui.NewFrame
func (p *imguiPlatform) newFrame(dt float32) {
	winWidth, winHeight := p.window.GetSize()
	p.io.SetDisplaySize(imgui.Vec2{X: float32(winWidth), Y: float32(winHeight)})

	// imgui requires a strictly positive delta
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	p.io.SetDeltaTime(dt)

	x, y := p.window.GetCursorPos()
	p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []glfw.MouseButton{glfw.MouseButtonLeft, glfw.MouseButtonRight, glfw.MouseButtonMiddle} {
		p.io.SetMouseButtonDown(i, p.window.GetMouseButton(button) == glfw.Press)
	}
}

// displayScale returns the framebuffer-to-window scale, needed to place
// clip rectangles correctly on high-dpi displays
func (p *imguiPlatform) displayScale() (float32, float32) {
	winWidth, winHeight := p.window.GetSize()
	fbWidth, fbHeight := p.window.GetFramebufferSize()
	if winWidth <= 0 || winHeight <= 0 {
		return 1, 1
	}
	return float32(fbWidth) / float32(winWidth), float32(fbHeight) / float32(winHeight)
}
