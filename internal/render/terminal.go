package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/kedare/conlog/internal/style"
)

// Terminal renders ANSI output through pterm.
type Terminal struct {
	out   io.Writer
	color bool
}

// NewTerminal creates a terminal renderer writing to out. When color is
// false every style is ignored and text is written as is.
func NewTerminal(out io.Writer, color bool) *Terminal {
	return &Terminal{out: out, color: color}
}

// Decorate applies styles in list order, each wrapping the previous result.
func (t *Terminal) Decorate(text string, styles []string) Line {
	if text == "" {
		return Line{}
	}

	plain := StripHighlights(text)
	if !t.color {
		return Line{Text: plain, Plain: plain, set: true}
	}

	var b strings.Builder
	for _, part := range SplitHighlights(text) {
		if part.Highlight {
			b.WriteString(style.Highlight(part.Text))
			continue
		}
		b.WriteString(part.Text)
	}

	return Line{Text: t.apply(b.String(), styles), Plain: plain, set: true}
}

// PrintLine writes line followed by a newline.
func (t *Terminal) PrintLine(line Line) {
	fmt.Fprintln(t.out, line.Text)
}

// PrintDivider writes a styled divider. Markers are not interpreted.
func (t *Terminal) PrintDivider(text string, styles []string) {
	t.PrintLine(t.Literal(text, styles))
}

// Literal decorates text without highlight processing.
func (t *Terminal) Literal(text string, styles []string) Line {
	if text == "" || !t.color {
		return Line{Text: text, Plain: text, set: true}
	}

	return Line{Text: t.apply(text, styles), Plain: text, set: true}
}

// Flatten returns the ANSI text.
func (t *Terminal) Flatten(line Line) string {
	return line.Text
}

func (t *Terminal) apply(text string, styles []string) string {
	for _, name := range styles {
		fn, ok := style.Terminal(name)
		if !ok {
			continue
		}
		text = fn(text)
	}

	return text
}
