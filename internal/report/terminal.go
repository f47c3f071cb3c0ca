// ABOUTME: Terminal detection for choosing styled or plain output
// ABOUTME: Non-file writers and redirected streams are treated as plain

package report

import (
	"io"
	"os"

	"golang.org/x/term"
)

const defaultWidth = 80

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width of w, or 0 when w is not a terminal.
func Width(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// ForWriter returns a Printer configured for w.
func ForWriter(w io.Writer) *Printer {
	return NewPrinter(IsTerminal(w), Width(w))
}
