package cmd

import (
	"io"
	"os"

	"github.com/corey/minigrep/internal/app"
)

// isTerminal returns true if w is a file connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// resolveColor determines whether to highlight matches.
// colorMode is "auto", "always", or "never"; noColor is the --no-color flag.
func resolveColor(colorMode string, noColor bool, out io.Writer) bool {
	if noColor {
		return false
	}
	switch colorMode {
	case app.ColorAlways:
		return true
	case app.ColorNever:
		return false
	default: // auto
		return isTerminal(out)
	}
}
