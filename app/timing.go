package app

import (
	"time"
)

// maxDelta caps the frame delta so a debugger pause or window drag does not
// teleport everything on the next frame
const maxDelta = float32(1.0)

// fpsWindow is the number of frame samples kept for the overlay's plot
const fpsWindow = 128

// FrameTimer produces the per-frame delta time and keeps a rolling window
// of frame rate samples for the overlay.
type FrameTimer struct {
	last    time.Time
	started bool

	samples [fpsWindow]float32
	next    int
	filled  int
}

// NewFrameTimer creates a timer. The first Tick returns zero.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{}
}

// Tick advances the timer to now and returns the elapsed time since the
// previous tick, in seconds, capped at one second.
func (t *FrameTimer) Tick(now time.Time) float32 {
	if !t.started {
		t.started = true
		t.last = now
		return 0
	}

	dt := float32(now.Sub(t.last).Seconds())
	t.last = now

	if dt > maxDelta {
		dt = maxDelta
	}
	if dt < 0 {
		dt = 0
	}

	if dt > 0 {
		t.samples[t.next] = 1.0 / dt
		t.next = (t.next + 1) % fpsWindow
		if t.filled < fpsWindow {
			t.filled++
		}
	}

	return dt
}

// Samples returns the recorded frame rates, oldest first. The slice is
// freshly allocated and at most 128 entries long.
func (t *FrameTimer) Samples() []float32 {
	out := make([]float32, 0, t.filled)
	start := 0
	if t.filled == fpsWindow {
		start = t.next
	}
	for i := 0; i < t.filled; i++ {
		out = append(out, t.samples[(start+i)%fpsWindow])
	}
	return out
}

// Stats returns the minimum, maximum and mean of the recorded frame rates.
// All zero before the first full frame.
func (t *FrameTimer) Stats() (min, max, avg float32) {
	if t.filled == 0 {
		return 0, 0, 0
	}

	min = t.samples[0]
	if t.filled == fpsWindow {
		min = t.samples[t.next]
	}
	var sum float32
	for i := 0; i < t.filled; i++ {
		s := t.samples[i]
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
		sum += s
	}
	return min, max, sum / float32(t.filled)
}
