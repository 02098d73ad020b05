// Package loc implements the source-location span used throughout the
// lexer, parser and AST. Every token and every AST node other than the
// empty placeholders carries one of these.
package loc

import "fmt"

// Position is a single point in a source file.
type Position struct {
	Line   int
	Column int
}

// Location is a closed span [Start, End] within a named source file: End
// is the position of the span's last character. The zero value is the "unknown" location: File == "" and Start/End are
// both the zero Position.
type Location struct {
	File  string
	Start Position
	End   Position
}

// Unknown is the default/unknown location. Merge and PointAfter treat it
// as an identity element so that merging with it never panics.
var Unknown = Location{}

// IsUnknown reports whether loc is the default/unknown location.
func (l Location) IsUnknown() bool {
	return l.File == "" && l.Start == Position{} && l.End == Position{}
}

func (l Location) String() string {
	if l.IsUnknown() {
		return "<unknown location>"
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", l.File, l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}

// before reports whether a comes strictly before b.
func before(a, b Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

// Merge returns the smallest span covering both a and b: the earliest
// start and the latest end. Merging with an unknown location returns the
// other one unchanged, so callers never need to special-case it.
func Merge(a, b Location) Location {
	if a.IsUnknown() {
		return b
	}
	if b.IsUnknown() {
		return a
	}
	result := Location{File: a.File}
	if a.File == "" {
		result.File = b.File
	}
	if before(b.Start, a.Start) {
		result.Start = b.Start
	} else {
		result.Start = a.Start
	}
	if before(a.End, b.End) {
		result.End = b.End
	} else {
		result.End = a.End
	}
	return result
}

// PointAfter returns a zero-width location that begins and ends one
// column after the end of l. It is used to anchor diagnostics that
// describe something missing right after a token (e.g. a missing `;`).
func PointAfter(l Location) Location {
	if l.IsUnknown() {
		return Unknown
	}
	p := Position{Line: l.End.Line, Column: l.End.Column + 1}
	return Location{File: l.File, Start: p, End: p}
}

// PointAt returns a zero-width location at l's start.
func PointAt(l Location) Location {
	if l.IsUnknown() {
		return Unknown
	}
	return Location{File: l.File, Start: l.Start, End: l.Start}
}
