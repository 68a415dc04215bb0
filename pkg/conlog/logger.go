// Package conlog builds formatted console log lines from a chain of
// calls:
//
//	conlog.Info().Prefix("INFO", "bold").Text("server listening on", port).Print()
//
// Every chain method returns a new Logger, so a shared base can be
// branched freely. Records render as ANSI text on terminals and as %c
// templates with CSS arguments in JavaScript consoles. Text and detail may
// contain [[highlight]] markers.
package conlog

import (
	"strings"
	"time"

	"github.com/kedare/conlog/internal/render"
)

// Kind distinguishes plain records from stream records.
type Kind int

const (
	KindNormal Kind = iota
	KindStream
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindStream {
		return "stream"
	}

	return "normal"
}

// Styles passed to Text set the text styles instead of being printed.
type Styles []string

// Logger is an immutable log record.
type Logger struct {
	f   *Factory
	typ string

	kind Kind

	prefix       string
	prefixStyles []string
	text         string
	textStyles   []string
	detail       string
	detailStyles []string

	defaultStyles []string

	data    any
	hasData bool

	displayTime bool

	prepend *Divider
	append  *Divider
	single  *Divider

	invalid bool
}

// Snapshot is a plain copy of a record's fields.
type Snapshot struct {
	Type        string
	Kind        Kind
	Prefix      string
	Text        string
	Detail      string
	Data        any
	DisplayTime bool
	Styles      []string
	Valid       bool
}

func (l Logger) factory() *Factory {
	if l.f == nil {
		return Default()
	}

	return l.f
}

// Prefix sets the leading label.
func (l Logger) Prefix(text string, styles ...string) Logger {
	l.prefix = text
	l.prefixStyles = clone(styles)

	return l
}

// Text sets the message. Arguments are joined with single spaces; nil
// prints as "null". Styles arguments select the text styles.
func (l Logger) Text(args ...any) Logger {
	parts := make([]string, 0, len(args))
	var styles []string
	styled := false
	for _, arg := range args {
		if s, ok := arg.(Styles); ok {
			styles = append(styles, s...)
			styled = true
			continue
		}
		parts = append(parts, stringify(arg))
	}

	l.text = strings.Join(parts, " ")
	if styled {
		l.textStyles = styles
		if l.textStyles == nil {
			l.textStyles = []string{}
		}
	} else {
		l.textStyles = nil
	}

	return l
}

// Detail sets text shown on its own line below the message.
func (l Logger) Detail(text string, styles ...string) Logger {
	l.detail = text
	l.detailStyles = clone(styles)

	return l
}

// Data attaches a value printed as indented JSON below the message.
func (l Logger) Data(value any) Logger {
	l.data = value
	l.hasData = value != nil

	return l
}

// Time toggles the leading time of day. Without argument it is shown.
func (l Logger) Time(show ...bool) Logger {
	l.displayTime = first(show, true)

	return l
}

// Styles sets the default text styles.
func (l Logger) Styles(names ...string) Logger {
	l.defaultStyles = clone(names)

	return l
}

// PrependDivider prints a divider line before the record.
func (l Logger) PrependDivider(d ...Divider) Logger {
	l.prepend = pickDivider(d)

	return l
}

// AppendDivider prints a divider line after the record.
func (l Logger) AppendDivider(d ...Divider) Logger {
	l.append = pickDivider(d)

	return l
}

// Divider makes the record print only a divider line.
func (l Logger) Divider(d ...Divider) Logger {
	l.single = pickDivider(d)

	return l
}

// Valid gates rendering. A record marked invalid prints nothing.
func (l Logger) Valid(ok ...bool) Logger {
	l.invalid = !first(ok, true)

	return l
}

// Print writes the record. ok, when given, replaces the stored validity
// for this call only.
func (l Logger) Print(ok ...bool) {
	valid := first(ok, !l.invalid)
	if !valid {
		return
	}

	r := l.factory().renderer
	if l.single != nil {
		r.PrintDivider(l.single.Text(), l.single.Styles)
		return
	}

	if l.prepend != nil {
		r.PrintDivider(l.prepend.Text(), l.prepend.Styles)
	}
	if main := l.mainLine(r); !main.IsEmpty() {
		r.PrintLine(main)
	}
	if l.append != nil {
		r.PrintDivider(l.append.Text(), l.append.Styles)
	}
}

// String composes the record without printing it.
func (l Logger) String() string {
	if l.invalid {
		return ""
	}

	r := l.factory().renderer
	lines := l.lines(r)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = r.Flatten(line)
	}

	return strings.Join(out, "\n")
}

// ToObject returns a snapshot of the record's fields.
func (l Logger) ToObject() Snapshot {
	return Snapshot{
		Type:        l.typ,
		Kind:        l.kind,
		Prefix:      l.prefix,
		Text:        l.text,
		Detail:      l.detail,
		Data:        l.data,
		DisplayTime: l.displayTime,
		Styles:      clone(l.effectiveTextStyles()),
		Valid:       !l.invalid,
	}
}

// Type returns the type name the logger was created for.
func (l Logger) Type() string {
	return l.typ
}

// ToStream returns a stream controller starting from this record. A
// non-empty prefix replaces the record's prefix.
func (l Logger) ToStream(prefix string, styles ...string) *Stream {
	rec := l
	rec.kind = KindStream
	if prefix != "" {
		rec = rec.Prefix(prefix, styles...)
	}

	return newStream(rec)
}

func (l Logger) lines(r render.TextRenderer) []render.Line {
	if l.single != nil {
		return []render.Line{r.Literal(l.single.Text(), l.single.Styles)}
	}

	var lines []render.Line
	if l.prepend != nil {
		lines = append(lines, r.Literal(l.prepend.Text(), l.prepend.Styles))
	}
	if main := l.mainLine(r); !main.IsEmpty() {
		lines = append(lines, main)
	}
	if l.append != nil {
		lines = append(lines, r.Literal(l.append.Text(), l.append.Styles))
	}

	return lines
}

func (l Logger) mainLine(r render.TextRenderer) render.Line {
	var line render.Line
	if l.displayTime {
		line = line.Join(" ", r.Literal(l.factory().now().Format(time.TimeOnly), []string{"gray"}))
	}
	if l.prefix != "" {
		line = line.Join(" ", r.Decorate(l.prefix, l.prefixStyles))
	}
	if l.text != "" {
		line = line.Join(" ", r.Decorate(l.text, l.effectiveTextStyles()))
	}
	if l.detail != "" {
		line = line.Join("\n", r.Decorate(l.detail, l.detailStyles))
	}
	if l.hasData {
		line = line.Join("\n", r.Literal(serialize(l.data), nil))
	}

	return line
}

func (l Logger) effectiveTextStyles() []string {
	if l.textStyles != nil {
		return l.textStyles
	}

	return l.defaultStyles
}

func first(values []bool, fallback bool) bool {
	if len(values) == 0 {
		return fallback
	}

	return values[0]
}
