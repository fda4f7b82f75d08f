package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether colored output should be written to f.
// NO_COLOR disables color, FORCE_COLOR enables it even off a terminal.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
