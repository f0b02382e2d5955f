package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// Input answers the input queries behaviours make: key and mouse button
// state, per-frame cursor movement and whether the overlay has claimed a
// device. BeginFrame must run once per frame before the scheduler.
type Input struct {
	window *glfw.Window

	cursorX, cursorY float32
	deltaX, deltaY   float32
	tracked          bool
}

// NewInput creates an input reader for the window
func NewInput(window *Window) *Input {
	return &Input{window: window.Handle()}
}

// BeginFrame samples the cursor and computes its movement since the
// previous frame
func (in *Input) BeginFrame() {
	x, y := in.window.GetCursorPos()
	cx, cy := float32(x), float32(y)

	if in.tracked {
		in.deltaX = cx - in.cursorX
		in.deltaY = cy - in.cursorY
	} else {
		in.tracked = true
	}
	in.cursorX, in.cursorY = cx, cy
}

// KeyDown reports whether the key is held
func (in *Input) KeyDown(key glfw.Key) bool {
	return in.window.GetKey(key) == glfw.Press
}

// MouseDown reports whether the mouse button is held
func (in *Input) MouseDown(button glfw.MouseButton) bool {
	return in.window.GetMouseButton(button) == glfw.Press
}

// CursorDelta returns the cursor movement measured by the last BeginFrame
func (in *Input) CursorDelta() (float32, float32) {
	return in.deltaX, in.deltaY
}

// CursorPos returns the cursor position in window coordinates
func (in *Input) CursorPos() (float32, float32) {
	return in.cursorX, in.cursorY
}

// WantCaptureKeyboard reports whether the overlay claims the keyboard
func (in *Input) WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

// WantCaptureMouse reports whether the overlay claims the mouse
func (in *Input) WantCaptureMouse() bool {
	return imgui.CurrentIO().WantCaptureMouse()
}

type keyWatch struct {
	key     glfw.Key
	held    bool
	onPress func()
}

// KeyWatcher invokes callbacks on key press edges, not while a key is held.
// The poll function abstracts the key source so tests can script it.
type KeyWatcher struct {
	poll    func(glfw.Key) bool
	blocked func() bool
	watches []*keyWatch
}

// NewKeyWatcher creates a watcher polling keys through poll. If blocked is
// not nil and returns true, press edges are swallowed; the overlay passes
// its keyboard capture state here.
func NewKeyWatcher(poll func(glfw.Key) bool, blocked func() bool) *KeyWatcher {
	return &KeyWatcher{poll: poll, blocked: blocked}
}

// Watch registers a callback for the key's press edge
func (kw *KeyWatcher) Watch(key glfw.Key, onPress func()) {
	kw.watches = append(kw.watches, &keyWatch{key: key, onPress: onPress})
}

// Update polls all watched keys once, firing callbacks for keys that went
// down since the previous update
func (kw *KeyWatcher) Update() {
	swallow := kw.blocked != nil && kw.blocked()
	for _, w := range kw.watches {
		down := kw.poll(w.key)
		if down && !w.held && !swallow {
			w.onPress()
		}
		w.held = down
	}
}
