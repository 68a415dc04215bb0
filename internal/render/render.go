// Package render turns composed log records into console output. Terminal
// renders ANSI sequences through pterm; Console renders %c templates with
// CSS arguments for JavaScript consoles.
package render

import "strings"

// TextRenderer is the platform contract shared by Terminal and Console.
type TextRenderer interface {
	// Decorate applies styles to text, resolving [[highlight]] markers.
	Decorate(text string, styles []string) Line
	// PrintLine writes one record with a single output call.
	PrintLine(line Line)
	// Literal applies styles to text without interpreting markers.
	Literal(text string, styles []string) Line
	// PrintDivider writes a divider line on its own.
	PrintDivider(text string, styles []string)
	// Flatten returns the string form of line for String().
	Flatten(line Line) string
}

// Line is a decorated piece of output. Text carries the platform rendering
// (ANSI or a %c template), Args the CSS directives for each %c, and Plain
// the visible text.
type Line struct {
	Text  string
	Args  []string
	Plain string
	set   bool
}

// IsEmpty reports whether the line carries nothing to print.
func (l Line) IsEmpty() bool {
	return !l.set && l.Text == "" && len(l.Args) == 0
}

// Join appends other after l separated by sep. Empty lines are skipped so
// no stray separators appear.
func (l Line) Join(sep string, other Line) Line {
	if other.IsEmpty() {
		return l
	}
	if l.IsEmpty() {
		return other
	}

	args := make([]string, 0, len(l.Args)+len(other.Args))
	args = append(args, l.Args...)
	args = append(args, other.Args...)

	return Line{
		Text:  l.Text + sep + other.Text,
		Args:  args,
		Plain: l.Plain + sep + other.Plain,
		set:   true,
	}
}

// Blank is a present but empty line, used for zero-length dividers.
func Blank() Line {
	return Line{set: true}
}

// Repeat builds the divider text for char repeated length times. Lengths
// below one and empty characters produce an empty string.
func Repeat(char string, length int) string {
	if length <= 0 || char == "" {
		return ""
	}

	return strings.Repeat(char, length)
}
