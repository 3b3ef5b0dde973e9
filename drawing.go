package gallows

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Drawing is the gallows-scene component. It owns a persistent square Canvas,
// tracks how many parts of the reveal sequence have been stroked onto it, and
// reacts to two inputs: the incorrect-guess count and the container size.
//
// Guess-count increases stroke only the newly revealed parts on top of what is
// already there. A guess-count decrease signals a new game and clears the
// canvas before redrawing. A size change clears the canvas, regenerates the
// geometry at the new scale, and redraws the parts for the current count.
//
// A Drawing is single-threaded: all methods must be called from the same
// goroutine that runs the game loop.
type Drawing struct {
	canvas *Canvas
	theme  Theme

	// parts is regenerated only when size changes, never on guess-count
	// changes.
	parts []Part

	size        int
	drawnCount  int
	prevGuesses int

	disposed bool
}

// Option configures a Drawing at construction.
type Option func(*Drawing)

// WithTheme sets the drawing's theme.
func WithTheme(t Theme) Option {
	return func(d *Drawing) {
		d.theme = t
	}
}

// NewDrawing creates a Drawing with no size. It draws nothing until SetSize
// (or a Sizer) gives it a measured container width. Guess counts set before
// the first SetSize are remembered and drawn once a size arrives.
func NewDrawing(opts ...Option) *Drawing {
	d := &Drawing{theme: DefaultTheme()}
	for _, opt := range opts {
		opt(d)
	}
	d.canvas = NewCanvas(0, d.theme)
	return d
}

// SetIncorrectGuesses updates the incorrect-guess count. Counts are clamped to
// [0, PartCount]. An increase strokes only the parts in the newly revealed
// range; a decrease clears the canvas and redraws from the start; an unchanged
// count draws nothing.
func (d *Drawing) SetIncorrectGuesses(n int) {
	if globalDebug {
		debugCheckDisposed(d, "SetIncorrectGuesses")
	}
	if d.disposed {
		return
	}
	if n < 0 {
		n = 0
	}
	if n > PartCount {
		n = PartCount
	}

	if n < d.prevGuesses {
		// New game: wipe and start over.
		d.canvas.Clear()
		d.drawnCount = 0
	}
	d.forwardDraw(n)
	d.prevGuesses = n
}

// SetSize resizes the square canvas to the given pixel width. An unchanged
// size is a no-op end to end. Otherwise the canvas is cleared, the geometry is
// regenerated at the new scale, and the parts for the current guess count are
// redrawn.
func (d *Drawing) SetSize(px int) {
	if globalDebug {
		debugCheckDisposed(d, "SetSize")
	}
	if d.disposed {
		return
	}
	if px < 0 {
		px = 0
	}
	if px == d.size {
		return
	}

	d.size = px
	d.canvas.Resize(px)
	d.parts = GenerateParts(float64(px))
	d.drawnCount = 0
	d.forwardDraw(d.prevGuesses)
}

// forwardDraw strokes parts [drawnCount, to) in order, restoring the figure
// line width before each one so a part's own width (the frame uses a heavier
// stroke) never leaks into the next.
func (d *Drawing) forwardDraw(to int) {
	if to > len(d.parts) {
		to = len(d.parts)
	}
	if to <= d.drawnCount {
		return
	}
	from := d.drawnCount
	for i := from; i < to; i++ {
		d.canvas.SetLineWidth(d.theme.FigureLineWidth)
		d.parts[i].Draw(d.canvas)
	}
	d.drawnCount = to
	if globalDebug {
		debugLogRedraw(d.size, from, to, from == 0)
	}
}

// SetTheme replaces the drawing's theme and re-strokes the currently visible
// parts with the new colors and weights. The geometry is not regenerated.
func (d *Drawing) SetTheme(t Theme) {
	if globalDebug {
		debugCheckDisposed(d, "SetTheme")
	}
	if d.disposed {
		return
	}
	d.theme = t
	d.canvas.SetStrokeColor(t.Stroke)
	d.canvas.background = t.Background
	d.canvas.frameWidth = t.FrameLineWidth

	visible := d.drawnCount
	d.canvas.Clear()
	d.drawnCount = 0
	d.forwardDraw(visible)
}

// Theme returns the drawing's current theme.
func (d *Drawing) Theme() Theme {
	return d.theme
}

// IncorrectGuesses returns the most recently applied guess count (clamped).
func (d *Drawing) IncorrectGuesses() int {
	return d.prevGuesses
}

// DrawnParts returns how many parts are currently visible on the canvas.
func (d *Drawing) DrawnParts() int {
	return d.drawnCount
}

// Size returns the canvas edge length in pixels, 0 before the first SetSize.
func (d *Drawing) Size() int {
	return d.size
}

// Image returns the canvas image for direct composition, or nil while the
// drawing is unsized or disposed.
func (d *Drawing) Image() *ebiten.Image {
	if d.canvas == nil {
		return nil
	}
	return d.canvas.Image()
}

// Draw blits the canvas onto screen with the given options. A no-op while the
// drawing is unsized or disposed.
func (d *Drawing) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	img := d.Image()
	if img == nil {
		return
	}
	if op == nil {
		op = &ebiten.DrawImageOptions{}
	}
	screen.DrawImage(img, op)
}

// Dispose releases the canvas. The Drawing must not be used after Dispose;
// all mutating methods become no-ops (and panic in debug mode).
func (d *Drawing) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.canvas.Dispose()
	d.parts = nil
	d.size = 0
	d.drawnCount = 0
	d.prevGuesses = 0
}

// IsDisposed returns true if this drawing has been disposed.
func (d *Drawing) IsDisposed() bool {
	return d.disposed
}
