package conlog

import (
	"github.com/kedare/conlog/internal/output"
	"github.com/kedare/conlog/internal/render"
)

// DefaultDividerLength is used when a divider is built without a length.
const DefaultDividerLength = 40

// DefaultDivider is a gray line of 40 dashes.
var DefaultDivider = Divider{Char: "-", Length: DefaultDividerLength, Styles: []string{"gray"}}

// Divider describes a separator line. A Length of zero or less, or an
// empty Char, renders an empty line.
type Divider struct {
	Char   string
	Length int
	Styles []string

	fill bool
}

// NewDivider builds a gray divider of char. Without a length it is
// DefaultDividerLength long.
func NewDivider(char string, length ...int) Divider {
	d := DefaultDivider.WithChar(char)
	if len(length) > 0 {
		d = d.WithLength(length[0])
	}

	return d
}

// WithChar returns a copy using char; the length is kept.
func (d Divider) WithChar(char string) Divider {
	d.Char = char
	d.Styles = clone(d.Styles)

	return d
}

// WithLength returns a copy with an explicit length.
func (d Divider) WithLength(length int) Divider {
	d.Length = length
	d.fill = false
	d.Styles = clone(d.Styles)

	return d
}

// WithStyles returns a copy with styles.
func (d Divider) WithStyles(styles ...string) Divider {
	d.Styles = clone(styles)

	return d
}

// WithFullWidth returns a copy that spans the terminal width.
func (d Divider) WithFullWidth() Divider {
	d.fill = true
	d.Styles = clone(d.Styles)

	return d
}

// Text returns the unstyled divider line.
func (d Divider) Text() string {
	if d.fill {
		return render.Repeat(d.Char, output.Fill(d.Char, output.WidthOrFallback()))
	}

	return render.Repeat(d.Char, d.Length)
}

func pickDivider(d []Divider) *Divider {
	chosen := DefaultDivider
	if len(d) > 0 {
		chosen = d[0]
	}
	chosen.Styles = clone(chosen.Styles)

	return &chosen
}
