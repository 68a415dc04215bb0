package render

import "regexp"

var highlightPattern = regexp.MustCompile(`\[\[(.*?)\]\]`)

// Part is a run of text that is either plain or highlighted.
type Part struct {
	Text      string
	Highlight bool
}

// SplitHighlights cuts text at [[...]] markers. The brackets are dropped;
// unmatched brackets remain in the plain parts.
func SplitHighlights(text string) []Part {
	matches := highlightPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Part{{Text: text}}
	}

	parts := make([]Part, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			parts = append(parts, Part{Text: text[last:m[0]]})
		}
		if m[3] > m[2] {
			parts = append(parts, Part{Text: text[m[2]:m[3]], Highlight: true})
		}
		last = m[1]
	}
	if last < len(text) {
		parts = append(parts, Part{Text: text[last:]})
	}

	return parts
}

// StripHighlights returns text with the [[ ]] markers removed.
func StripHighlights(text string) string {
	return highlightPattern.ReplaceAllString(text, "$1")
}
