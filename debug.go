package gallows

import (
	"fmt"
	"os"
)

// globalDebug gates the redraw log and disposed-use checks. Package-level
// because parts and canvases have no back-pointer to a Drawing; gallows is
// single-threaded so a plain bool is enough.
var globalDebug bool

// SetDebug enables or disables debug mode. When enabled, every redraw logs
// its part range to stderr, and using a disposed Drawing panics instead of
// silently doing nothing.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugLogRedraw prints one line per forward-draw to stderr.
func debugLogRedraw(size, from, to int, full bool) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[gallows] redraw: parts %d..%d | size %d | full=%v\n",
		from, to, size, full)
}

// debugCheckDisposed panics with a descriptive message when a disposed Drawing
// is used. Only called in debug mode; release mode callers no-op instead.
func debugCheckDisposed(d *Drawing, op string) {
	if d.disposed {
		panic(fmt.Sprintf("gallows debug: %s on disposed Drawing", op))
	}
}
