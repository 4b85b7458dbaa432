// Package term answers the two questions a progress bar has about its
// output: is it interactive, and how wide is it.
//
// The probes live in their own package so the core never hard-codes a
// detection mechanism; bars take the interactivity signal as an injected
// value and tests never need a real terminal.
package term

import (
	"os"

	xterm "golang.org/x/term"
)

// defaultWidth is the fallback when the width cannot be determined, e.g.
// when output is a pipe.
const defaultWidth = 80

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}

// Interactive reports whether stdout is attached to a terminal. It is the
// default interactivity signal for new bars.
func Interactive() bool {
	return IsTerminal(os.Stdout)
}

// Width returns the column count of the terminal behind f, or
// defaultWidth when f is not a terminal.
func Width(f *os.File) int {
	w, _, err := xterm.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
