package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/kedare/conlog/internal/style"
)

// Sink receives one console call per record.
type Sink interface {
	Log(format string, args ...any)
}

// WriterSink prints console calls as text: the %c template followed by the
// quoted CSS arguments. It stands in for a devtools console off the web.
type WriterSink struct {
	W io.Writer
}

// Log writes the call.
func (s WriterSink) Log(format string, args ...any) {
	if len(args) == 0 {
		fmt.Fprintln(s.W, format)
		return
	}
	fmt.Fprintf(s.W, "%s %q\n", format, args)
}

// Console renders %c templates for JavaScript consoles.
type Console struct {
	sink Sink
}

// NewConsole creates a console renderer. A nil sink selects the platform
// default.
func NewConsole(sink Sink) *Console {
	if sink == nil {
		sink = DefaultSink()
	}

	return &Console{sink: sink}
}

// Decorate emits one %c segment per highlight run. Unmapped styles are
// skipped; a segment without any declaration gets an empty CSS argument.
func (c *Console) Decorate(text string, styles []string) Line {
	if text == "" {
		return Line{}
	}

	css := declarations(styles)
	line := Line{set: true}
	var tmpl, plain strings.Builder
	for _, part := range SplitHighlights(text) {
		rule := css
		if part.Highlight {
			rule = joinRules(css, style.HighlightCSS)
		}
		tmpl.WriteString("%c")
		tmpl.WriteString(escape(part.Text))
		plain.WriteString(part.Text)
		line.Args = append(line.Args, rule)
	}
	line.Text = tmpl.String()
	line.Plain = plain.String()

	return line
}

// PrintLine performs a single console call for the whole record.
func (c *Console) PrintLine(line Line) {
	args := make([]any, len(line.Args))
	for i, a := range line.Args {
		args[i] = a
	}
	c.sink.Log(line.Text, args...)
}

// PrintDivider writes a styled divider line.
func (c *Console) PrintDivider(text string, styles []string) {
	c.PrintLine(c.Literal(text, styles))
}

// Literal decorates text without highlight processing.
func (c *Console) Literal(text string, styles []string) Line {
	if text == "" {
		return Blank()
	}

	return Line{
		Text:  "%c" + escape(text),
		Args:  []string{declarations(styles)},
		Plain: text,
		set:   true,
	}
}

// Flatten returns the visible text; CSS cannot be represented in a string.
func (c *Console) Flatten(line Line) string {
	return line.Plain
}

// declarations maps styles to CSS. The list is walked backwards so that,
// as on a terminal, the first style wins when two set the same property.
func declarations(styles []string) string {
	rules := make([]string, 0, len(styles))
	for i := len(styles) - 1; i >= 0; i-- {
		if css, ok := style.CSS(styles[i]); ok {
			rules = append(rules, css)
		}
	}

	return strings.Join(rules, "; ")
}

func joinRules(a, b string) string {
	if a == "" {
		return b
	}

	return a + "; " + b
}

func escape(text string) string {
	return strings.ReplaceAll(text, "%", "%%")
}

// SinkWriter adapts a sink to io.Writer, one console call per line.
func SinkWriter(sink Sink) io.Writer {
	return sinkWriter{sink: sink}
}

type sinkWriter struct {
	sink Sink
}

func (w sinkWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.sink.Log(escape(line))
	}

	return len(p), nil
}
