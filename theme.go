package gallows

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Default stroke weights and debounce interval. The frame (platform, post,
// beam) is stroked heavier than the figure.
const (
	DefaultFrameLineWidth  = 10.0
	DefaultFigureLineWidth = 2.0
	DefaultDebounce        = 50 * time.Millisecond
)

// Theme controls the visual appearance of a Drawing and the resize debounce
// interval of a Sizer. The zero value is not usable; start from DefaultTheme.
type Theme struct {
	// Background is the canvas fill used by Clear. A fully transparent
	// background leaves the canvas transparent.
	Background Color

	// Stroke is the color used for all part strokes.
	Stroke Color

	// FrameLineWidth is the stroke weight of the platform, post, and beam.
	FrameLineWidth float64

	// FigureLineWidth is the default stroke weight, restored before every
	// part is drawn so frame-weight strokes never leak into the figure.
	FigureLineWidth float64

	// Debounce is the quiet window a Sizer waits for after the last width
	// change before recomputing geometry.
	Debounce time.Duration
}

// DefaultTheme returns black strokes on a transparent background with the
// default stroke weights and debounce interval.
func DefaultTheme() Theme {
	return Theme{
		Stroke:          ColorBlack,
		FrameLineWidth:  DefaultFrameLineWidth,
		FigureLineWidth: DefaultFigureLineWidth,
		Debounce:        DefaultDebounce,
	}
}

// themeFile is the on-disk TOML representation of a Theme. Colors are hex
// strings; the debounce is in milliseconds.
type themeFile struct {
	Background      string  `toml:"background"`
	Stroke          string  `toml:"stroke"`
	FrameLineWidth  float64 `toml:"frame_line_width"`
	FigureLineWidth float64 `toml:"figure_line_width"`
	DebounceMS      int     `toml:"debounce_ms"`
}

// LoadTheme parses a TOML theme document. Absent keys keep their DefaultTheme
// values; unknown keys are an error.
func LoadTheme(data []byte) (Theme, error) {
	var f themeFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Theme{}, fmt.Errorf("parse theme: unknown key %q", undecoded[0].String())
	}

	t := DefaultTheme()
	if f.Background != "" {
		c, err := ParseColor(f.Background)
		if err != nil {
			return Theme{}, fmt.Errorf("parse theme: background: %w", err)
		}
		t.Background = c
	}
	if f.Stroke != "" {
		c, err := ParseColor(f.Stroke)
		if err != nil {
			return Theme{}, fmt.Errorf("parse theme: stroke: %w", err)
		}
		t.Stroke = c
	}
	if f.FrameLineWidth > 0 {
		t.FrameLineWidth = f.FrameLineWidth
	}
	if f.FigureLineWidth > 0 {
		t.FigureLineWidth = f.FigureLineWidth
	}
	if f.DebounceMS > 0 {
		t.Debounce = time.Duration(f.DebounceMS) * time.Millisecond
	}
	return t, nil
}

// LoadThemeFile reads and parses a TOML theme file.
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}
	return LoadTheme(data)
}
