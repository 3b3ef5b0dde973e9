package gallows

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the persistent drawing surface a Drawing strokes onto. Strokes
// accumulate across renders until Clear is called. The surface is square and
// exclusively owned by one Drawing; it is NOT recycled between frames.
//
// A Canvas of size 0 is degenerate: it allocates no image and all operations
// on it are no-ops. This keeps an unmounted or unmeasured Drawing safe to use.
type Canvas struct {
	image *ebiten.Image
	size  int

	stroke     Color
	background Color
	frameWidth float64
	lineWidth  float64 // current stroke weight, set per part
}

// NewCanvas creates a square canvas of the given size styled by the theme.
// Sizes <= 0 produce a degenerate canvas with no backing image.
func NewCanvas(size int, theme Theme) *Canvas {
	c := &Canvas{
		stroke:     theme.Stroke,
		background: theme.Background,
		frameWidth: theme.FrameLineWidth,
		lineWidth:  theme.FigureLineWidth,
	}
	c.allocate(size)
	return c
}

func (c *Canvas) allocate(size int) {
	if size <= 0 {
		c.image = nil
		c.size = 0
		return
	}
	c.image = ebiten.NewImage(size, size)
	c.size = size
	c.fillBackground()
}

func (c *Canvas) fillBackground() {
	if c.image == nil {
		return
	}
	if c.background.A > 0 {
		c.image.Fill(c.background.toRGBA())
	} else {
		c.image.Clear()
	}
}

// Image returns the underlying *ebiten.Image, or nil for a degenerate canvas.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Size returns the canvas edge length in pixels.
func (c *Canvas) Size() int {
	return c.size
}

// Clear erases all accumulated strokes, restoring the background fill.
func (c *Canvas) Clear() {
	c.fillBackground()
}

// Resize deallocates the old image and creates a new, cleared one at the given
// size. Previously accumulated strokes are lost.
func (c *Canvas) Resize(size int) {
	if c.image != nil {
		c.image.Deallocate()
	}
	c.allocate(size)
}

// SetLineWidth sets the stroke weight used by subsequent stroke calls.
func (c *Canvas) SetLineWidth(w float64) {
	c.lineWidth = w
}

// LineWidth returns the current stroke weight.
func (c *Canvas) LineWidth() float64 {
	return c.lineWidth
}

// FrameWidth returns the theme's frame stroke weight. Frame parts set their
// line width to this before stroking.
func (c *Canvas) FrameWidth() float64 {
	return c.frameWidth
}

// SetStrokeColor sets the color used by subsequent stroke calls.
func (c *Canvas) SetStrokeColor(col Color) {
	c.stroke = col
}

// StrokeLine strokes a straight line segment at the current line width.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64) {
	if c.image == nil {
		return
	}
	vector.StrokeLine(c.image,
		float32(x0), float32(y0), float32(x1), float32(y1),
		float32(c.lineWidth), c.stroke.toRGBA(), true)
}

// StrokeCircle strokes a circle outline at the current line width.
func (c *Canvas) StrokeCircle(cx, cy, r float64) {
	if c.image == nil {
		return
	}
	vector.StrokeCircle(c.image,
		float32(cx), float32(cy), float32(r),
		float32(c.lineWidth), c.stroke.toRGBA(), true)
}

// Dispose deallocates the underlying image. The Canvas should not be used
// after calling Dispose; all operations become no-ops.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
	c.size = 0
}
