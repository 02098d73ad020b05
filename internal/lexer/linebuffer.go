package lexer

import "strings"

// LineBuffer holds the source lines so that diagnostics can show the
// offending source text without re-reading the file. The lexer builds one
// from the whole source and exposes it through Lines, which is how the
// parser's TokenSource contract reaches it.
type LineBuffer struct {
	lines []string
}

// NewLineBuffer builds a LineBuffer pre-populated from the full source
// text, which is the common case: the lexer is handed the whole file or
// string up front.
func NewLineBuffer(source string) *LineBuffer {
	return &LineBuffer{lines: strings.Split(source, "\n")}
}

// Line returns the 1-indexed source line, or "" if it is out of range.
func (b *LineBuffer) Line(n int) string {
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return b.lines[n-1]
}

// Count returns the number of accumulated lines.
func (b *LineBuffer) Count() int {
	return len(b.lines)
}

// All returns every accumulated line, oldest first.
func (b *LineBuffer) All() []string {
	return b.lines
}
