// Package output measures the terminal that records are written to.
package output

import (
	"os"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
)

// FallbackWidth is used when no terminal size can be read.
const FallbackWidth = 80

// TerminalWidth returns the column count of stdout, honouring COLUMNS.
func TerminalWidth() (int, bool) {
	if raw, ok := os.LookupEnv("COLUMNS"); ok {
		if width, err := strconv.Atoi(raw); err == nil && width > 0 {
			return width, true
		}
	}

	if width, ok := systemTerminalWidth(); ok {
		return width, true
	}

	return 0, false
}

// WidthOrFallback returns TerminalWidth or FallbackWidth.
func WidthOrFallback() int {
	if width, ok := TerminalWidth(); ok {
		return width
	}

	return FallbackWidth
}

// VisibleWidth returns the display width of s ignoring ANSI sequences.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(pterm.RemoveColorFromString(s))
}

// Truncate shortens s to fit width display columns, ending with an
// ellipsis when cut. A string that has to be cut loses its colours.
func Truncate(s string, width int) string {
	if width <= 0 || VisibleWidth(s) <= width {
		return s
	}

	return runewidth.Truncate(pterm.RemoveColorFromString(s), width, "…")
}

// Fill returns how many times char fits in width display columns.
func Fill(char string, width int) int {
	w := runewidth.StringWidth(char)
	if w == 0 || width <= 0 {
		return 0
	}

	return width / w
}
