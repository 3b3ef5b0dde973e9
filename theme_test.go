package gallows

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	if theme.Stroke != ColorBlack {
		t.Errorf("Stroke = %+v, want black", theme.Stroke)
	}
	if theme.Background.A != 0 {
		t.Errorf("Background.A = %v, want 0 (transparent)", theme.Background.A)
	}
	if theme.FrameLineWidth != DefaultFrameLineWidth {
		t.Errorf("FrameLineWidth = %v, want %v", theme.FrameLineWidth, DefaultFrameLineWidth)
	}
	if theme.FigureLineWidth != DefaultFigureLineWidth {
		t.Errorf("FigureLineWidth = %v, want %v", theme.FigureLineWidth, DefaultFigureLineWidth)
	}
	if theme.Debounce != DefaultDebounce {
		t.Errorf("Debounce = %v, want %v", theme.Debounce, DefaultDebounce)
	}
}

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme([]byte(`
background = "#1a1a23"
stroke = "#e8e8f0"
frame_line_width = 8
figure_line_width = 3
debounce_ms = 100
`))
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}

	if theme.Background.A != 1 {
		t.Errorf("Background.A = %v, want 1", theme.Background.A)
	}
	if theme.Stroke.A != 1 {
		t.Errorf("Stroke.A = %v, want 1", theme.Stroke.A)
	}
	if theme.Stroke.R < 0.9 {
		t.Errorf("Stroke.R = %v, want near 1 for #e8e8f0", theme.Stroke.R)
	}
	if theme.FrameLineWidth != 8 {
		t.Errorf("FrameLineWidth = %v, want 8", theme.FrameLineWidth)
	}
	if theme.FigureLineWidth != 3 {
		t.Errorf("FigureLineWidth = %v, want 3", theme.FigureLineWidth)
	}
	if theme.Debounce != 100*time.Millisecond {
		t.Errorf("Debounce = %v, want 100ms", theme.Debounce)
	}
}

func TestLoadThemePartialKeepsDefaults(t *testing.T) {
	theme, err := LoadTheme([]byte(`stroke = "#ff0000"`))
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}

	if theme.Stroke.R < 0.99 || theme.Stroke.G > 0.01 {
		t.Errorf("Stroke = %+v, want red", theme.Stroke)
	}
	if theme.FrameLineWidth != DefaultFrameLineWidth {
		t.Errorf("FrameLineWidth = %v, want default %v", theme.FrameLineWidth, DefaultFrameLineWidth)
	}
	if theme.Debounce != DefaultDebounce {
		t.Errorf("Debounce = %v, want default %v", theme.Debounce, DefaultDebounce)
	}
}

func TestLoadThemeUnknownKey(t *testing.T) {
	_, err := LoadTheme([]byte(`line_width = 4`))
	if err == nil {
		t.Error("LoadTheme should reject unknown keys")
	}
}

func TestLoadThemeBadColor(t *testing.T) {
	_, err := LoadTheme([]byte(`stroke = "not-a-color"`))
	if err == nil {
		t.Error("LoadTheme should reject malformed colors")
	}

	_, err = LoadTheme([]byte(`background = "#zzzzzz"`))
	if err == nil {
		t.Error("LoadTheme should reject malformed background colors")
	}
}

func TestLoadThemeBadTOML(t *testing.T) {
	_, err := LoadTheme([]byte(`stroke = [`))
	if err == nil {
		t.Error("LoadTheme should reject malformed TOML")
	}
}

func TestLoadThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(`stroke = "#00ff00"`), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadThemeFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFile: %v", err)
	}
	if theme.Stroke.G < 0.99 {
		t.Errorf("Stroke = %+v, want green", theme.Stroke)
	}
}

func TestLoadThemeFileMissing(t *testing.T) {
	_, err := LoadThemeFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("LoadThemeFile should fail for a missing file")
	}
}
