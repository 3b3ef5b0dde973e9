package gallows

import "math"

// Part is one stage of the reveal sequence: a named, self-contained drawing
// operation that strokes a single line or circle onto a Canvas. Parts carry no
// state of their own; the coordinates are baked in by GenerateParts.
type Part struct {
	Name PartName
	Draw func(*Canvas)
}

// Fractional layout of the scene within the square canvas. The frame occupies
// the left and top edges; the figure hangs from the beam at figureX.
const (
	baseY        = 0.95       // platform height
	platformX0   = 0.10       // platform left end
	platformX1   = 0.40       // platform right end
	postX        = 0.25       // upright position
	topY         = 0.05       // beam height
	figureX      = 0.70       // horizontal position of the hanging figure
	ropeFrac     = 0.10       // rope length = size/10
	headFrac     = 1.0 / 16.0 // head radius = size/16
	bodyFrac     = 0.50       // body height = size/2
	shoulderFrac = 0.25       // arm attachment point down the body
)

// GenerateParts returns the ordered reveal sequence for a square canvas of the
// given size: platform, post, beam, rope, head, body, left arm, right arm,
// left leg, right leg. Pure and deterministic; a fresh slice per call. A size
// of 0 (or below) yields degenerate zero-length geometry that strokes nothing.
//
// Regenerate only when the size changes. Guess-count changes reuse the
// previously generated sequence.
func GenerateParts(size float64) []Part {
	if size < 0 {
		size = 0
	}

	ropeLen := size * ropeFrac
	headR := size * headFrac
	bodyTop := size*topY + ropeLen + 2*headR
	bodyLen := size * bodyFrac
	bodyBot := bodyTop + bodyLen
	limb := bodyLen / 3
	shoulderY := bodyTop + bodyLen*shoulderFrac

	// Limbs angle 45 degrees outward and down.
	reach := limb * math.Sqrt2 / 2

	return []Part{
		{PartPlatform, func(c *Canvas) {
			c.SetLineWidth(c.FrameWidth())
			c.StrokeLine(size*platformX0, size*baseY, size*platformX1, size*baseY)
		}},
		{PartPost, func(c *Canvas) {
			c.SetLineWidth(c.FrameWidth())
			c.StrokeLine(size*postX, size*baseY, size*postX, size*topY)
		}},
		{PartBeam, func(c *Canvas) {
			c.SetLineWidth(c.FrameWidth())
			c.StrokeLine(size*postX, size*topY, size*figureX, size*topY)
		}},
		{PartRope, func(c *Canvas) {
			c.StrokeLine(size*figureX, size*topY, size*figureX, size*topY+ropeLen)
		}},
		{PartHead, func(c *Canvas) {
			c.StrokeCircle(size*figureX, size*topY+ropeLen+headR, headR)
		}},
		{PartBody, func(c *Canvas) {
			c.StrokeLine(size*figureX, bodyTop, size*figureX, bodyBot)
		}},
		{PartLeftArm, func(c *Canvas) {
			c.StrokeLine(size*figureX, shoulderY, size*figureX-reach, shoulderY+reach)
		}},
		{PartRightArm, func(c *Canvas) {
			c.StrokeLine(size*figureX, shoulderY, size*figureX+reach, shoulderY+reach)
		}},
		{PartLeftLeg, func(c *Canvas) {
			c.StrokeLine(size*figureX, bodyBot, size*figureX-reach, bodyBot+reach)
		}},
		{PartRightLeg, func(c *Canvas) {
			c.StrokeLine(size*figureX, bodyBot, size*figureX+reach, bodyBot+reach)
		}},
	}
}
