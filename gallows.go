package gallows

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// PartCount is the number of parts in the reveal sequence. One part becomes
// visible per incorrect guess; guess counts above PartCount are clamped.
const PartCount = 10

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to the canvas.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default stroke color.
var ColorBlack = Color{0, 0, 0, 1}

// ColorWhite is fully opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ParseColor parses a hex color string ("#rgb" or "#rrggbb") into a fully
// opaque Color.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// toRGBA converts a Color to a premultiplied colorRGBA for image fills.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image fills and strokes.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PartName identifies one stage of the reveal sequence.
type PartName uint8

const (
	PartPlatform PartName = iota // horizontal base at the bottom of the frame
	PartPost                     // vertical upright rising from the platform
	PartBeam                     // horizontal beam from the post to above the figure
	PartRope                     // short drop from the beam to the head
	PartHead                     // circle below the rope
	PartBody                     // vertical torso below the head
	PartLeftArm                  // angled down-left from the upper body
	PartRightArm                 // angled down-right from the upper body
	PartLeftLeg                  // angled down-left from the bottom of the body
	PartRightLeg                 // angled down-right from the bottom of the body
)

// String returns the part's name as used in logs and the catalog.
func (p PartName) String() string {
	switch p {
	case PartPlatform:
		return "platform"
	case PartPost:
		return "post"
	case PartBeam:
		return "beam"
	case PartRope:
		return "rope"
	case PartHead:
		return "head"
	case PartBody:
		return "body"
	case PartLeftArm:
		return "leftArm"
	case PartRightArm:
		return "rightArm"
	case PartLeftLeg:
		return "leftLeg"
	case PartRightLeg:
		return "rightLeg"
	default:
		return "unknown"
	}
}
