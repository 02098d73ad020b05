// Package diagnostics holds the error taxonomy produced by the parser:
// located ParserError values raised while matching the grammar, and the
// SimpleError fallback used when the top-level driver recovers from a
// non-grammar failure.
package diagnostics

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/vult-lang/vultparse/internal/loc"
)

// ParserError is the common diagnostic case: a location plus a human
// message, built from one of the fixed templates in §7 of the design.
type ParserError struct {
	Loc     loc.Location
	Message string
}

func (e *ParserError) Error() string {
	if e.Loc.IsUnknown() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Loc, e.Message)
}

// NewParserError builds a ParserError anchored at l with a formatted
// message.
func NewParserError(l loc.Location, format string, args ...interface{}) *ParserError {
	return &ParserError{Loc: l, Message: fmt.Sprintf(format, args...)}
}

// SimpleError is the fallback produced when a non-ParserError failure
// escapes the top-level driver; it always carries the literal message
// "Failed to parse the file" per §7.
type SimpleError struct {
	Message string
}

func (e *SimpleError) Error() string { return e.Message }

// Failed builds the SimpleError the top-level driver returns when
// recover() catches something other than a ParserError.
func Failed() *SimpleError {
	return &SimpleError{Message: "Failed to parse the file"}
}

// List aggregates errors newest-first, per §3.2, and renders as a single
// error via *multierror.Error, giving callers that just want an `error`
// a readable, newline-joined summary without giving up the underlying
// ordered slice.
type List struct {
	errs []error
}

// Append records e as the newest error, pushing it to the front of the
// list.
func (l *List) Append(e error) {
	l.errs = append([]error{e}, l.errs...)
}

// Len reports how many errors have been appended.
func (l *List) Len() int { return len(l.errs) }

// Slice returns the accumulated errors newest-first, matching how the
// list is stored.
func (l *List) Slice() []error {
	out := make([]error, len(l.errs))
	copy(out, l.errs)
	return out
}

// Reversed returns the accumulated errors oldest-first, given that the
// list is stored newest-first (see the token stream's error log).
func (l *List) Reversed() []error {
	out := make([]error, len(l.errs))
	for i, e := range l.errs {
		out[len(l.errs)-1-i] = e
	}
	return out
}

// AsError collapses the list into a single *multierror.Error, or nil if
// the list is empty.
func (l *List) AsError() error {
	if len(l.errs) == 0 {
		return nil
	}
	me := &multierror.Error{Errors: l.Reversed()}
	return me
}
