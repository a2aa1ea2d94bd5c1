package report

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// WidthFunc returns the current output width in columns.
type WidthFunc func() int

// TerminalWidth returns the width of stdout, or DefaultWidth when stdout is
// not a terminal.
func TerminalWidth() int {
	return fileWidth(os.Stdout)
}

func fileWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// FixedWidth returns a WidthFunc that always reports n columns.
func FixedWidth(n int) WidthFunc {
	return func() int { return n }
}
