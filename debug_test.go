package gallows

import (
	"fmt"
	"strings"
	"testing"
)

func TestDebugDisposedDrawingPanics(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)

	d := NewDrawing()
	d.SetSize(100)
	d.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on SetIncorrectGuesses with disposed drawing, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message %q should mention disposed", msg)
		}
	}()
	d.SetIncorrectGuesses(3)
}

func TestReleaseModeDisposedDrawingNoops(t *testing.T) {
	d := NewDrawing()
	d.SetSize(100)
	d.Dispose()

	// Without debug mode, use after Dispose is silently ignored.
	d.SetIncorrectGuesses(3)
	d.SetSize(200)
	if d.DrawnParts() != 0 {
		t.Errorf("DrawnParts = %d, want 0", d.DrawnParts())
	}
}

func TestDebugRedrawLogging(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)

	d := NewDrawing()
	defer d.Dispose()

	// Exercises the logging path; output goes to stderr.
	d.SetSize(100)
	d.SetIncorrectGuesses(4)
	d.SetIncorrectGuesses(7)
	d.SetIncorrectGuesses(0)
}
