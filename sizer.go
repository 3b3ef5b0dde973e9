package gallows

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sizer observes a container width and applies it to a Drawing as a square
// canvas size, debouncing rapid changes: after a width change it waits for the
// theme's debounce interval (default 50ms) of quiet before recomputing, so a
// burst of resize events collapses into a single geometry regeneration using
// the last reported width.
//
// Pump Update once per frame from the game loop. The debounce is a
// cancellation-by-replacement deadline, not a timer goroutine; everything runs
// on the loop's goroutine.
type Sizer struct {
	drawing *Drawing
	measure func() int

	interval time.Duration
	last     int       // last width reported by measure
	pending  int       // width awaiting the quiet window, -1 when none
	deadline time.Time // when the pending width may be applied

	// Hooks overridable in tests.
	now   func() time.Time
	apply func(int)

	disposed bool
}

// NewSizer creates a Sizer driving the given Drawing. measure reports the
// container width in pixels; nil defaults to the window width. The initial
// measurement is applied immediately, not debounced, so a freshly mounted
// drawing is sized on its first frame.
func NewSizer(d *Drawing, measure func() int) *Sizer {
	if measure == nil {
		measure = windowWidth
	}
	s := &Sizer{
		drawing:  d,
		measure:  measure,
		interval: d.Theme().Debounce,
		pending:  -1,
		now:      time.Now,
	}
	s.apply = d.SetSize

	s.last = s.measure()
	s.apply(s.last)
	return s
}

// windowWidth reports the game window's client width.
func windowWidth() int {
	w, _ := ebiten.WindowSize()
	return w
}

// Update re-measures the container width. A changed width (re)arms the quiet
// window; an unchanged width that has been quiet for the full interval is
// applied to the Drawing. Applying a width equal to the current canvas size is
// a no-op end to end.
func (s *Sizer) Update() {
	if s.disposed {
		return
	}
	w := s.measure()
	if w != s.last {
		s.last = w
		s.pending = w
		s.deadline = s.now().Add(s.interval)
		return
	}
	if s.pending >= 0 && !s.now().Before(s.deadline) {
		s.apply(s.pending)
		s.pending = -1
	}
}

// Flush applies any pending width immediately, skipping the quiet window.
func (s *Sizer) Flush() {
	if s.disposed || s.pending < 0 {
		return
	}
	s.apply(s.pending)
	s.pending = -1
}

// Pending returns true while a width change is waiting out the quiet window.
func (s *Sizer) Pending() bool {
	return s.pending >= 0
}

// Dispose detaches the Sizer. Any pending width is dropped and later Update
// calls do nothing.
func (s *Sizer) Dispose() {
	s.disposed = true
	s.pending = -1
	s.drawing = nil
	s.measure = nil
	s.apply = nil
}
