// Package behaviours holds the per-entity update hooks the playground
// scene binds: waypoint following for the balloons, keyboard-driven object
// rotation and the orbiting debug camera.
package behaviours

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputSource answers input queries for the input-driven behaviours.
// *app.Input satisfies it; tests substitute a scripted fake.
type InputSource interface {
	KeyDown(key glfw.Key) bool
	MouseDown(button glfw.MouseButton) bool

	// CursorDelta returns the cursor movement since the previous frame
	CursorDelta() (float32, float32)

	// WantCaptureKeyboard and WantCaptureMouse report whether the debug
	// overlay currently claims the device
	WantCaptureKeyboard() bool
	WantCaptureMouse() bool
}
