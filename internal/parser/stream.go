package parser

import (
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/vult-lang/vultparse/internal/diagnostics"
	"github.com/vult-lang/vultparse/internal/lexer"
	"github.com/vult-lang/vultparse/internal/loc"
	"github.com/vult-lang/vultparse/internal/token"
)

// TokenSource is the external lexer contract the stream is built over:
// a single NextToken method returning a valid token or an EOF-kinded
// sentinel forever after, plus the line-accumulation buffer used to
// recover source text for diagnostics.
type TokenSource interface {
	NextToken() token.Token
	Lines() *lexer.LineBuffer
}

// Stream is a one-token-lookahead buffer over a TokenSource. It owns the
// error log accumulated during parsing; statement-level recovery drains
// it via append, and the top-level driver reverses it into source order.
//
// A Stream is uniquely owned and mutated in place; it must not be shared
// across goroutines.
type Stream struct {
	source TokenSource
	peeked token.Token
	prev   token.Token

	hasErrors bool
	errors    diagnostics.List

	log       hclog.Logger
	sessionID uuid.UUID
}

// NewStream builds a Stream over source, priming the lookahead buffer
// with the first token per the "peeked holds the first real token"
// invariant.
func NewStream(source TokenSource) *Stream {
	s := &Stream{
		source:    source,
		log:       hclog.NewNullLogger(),
		sessionID: uuid.New(),
	}
	s.peeked = source.NextToken()
	s.prev = s.peeked
	return s
}

// SetLogger overrides the stream's structured logger; by default a
// Stream logs nothing.
func (s *Stream) SetLogger(l hclog.Logger) { s.log = l }

// SessionID identifies this parse for log correlation across a run.
func (s *Stream) SessionID() uuid.UUID { return s.sessionID }

// Lines returns the accumulated source-line table.
func (s *Stream) Lines() *lexer.LineBuffer { return s.source.Lines() }

// HasErrors reports whether any error has been appended.
func (s *Stream) HasErrors() bool { return s.hasErrors }

// Errors returns the accumulated error log, oldest first.
func (s *Stream) Errors() []error { return s.errors.Reversed() }

// AppendError records e and marks the stream as having errors.
func (s *Stream) AppendError(e error) {
	s.hasErrors = true
	s.errors.Append(e)
	s.log.Debug("parser error", "session", s.sessionID, "error", e)
}

// PeekKind returns the current token's kind without consuming it.
func (s *Stream) PeekKind() token.Kind { return s.peeked.Kind }

// Peek returns the current lookahead token without consuming it.
func (s *Stream) Peek() token.Token { return s.peeked }

// Prev returns the most recently consumed token.
func (s *Stream) Prev() token.Token { return s.prev }

// Advance unconditionally consumes the current token, refilling the
// lookahead buffer from the source. Past EOF, peeked keeps returning an
// EOF token at the last known location.
func (s *Stream) Advance() token.Token {
	consumed := s.peeked
	s.prev = consumed
	if consumed.Kind == token.EOF {
		s.peeked = consumed
		return consumed
	}
	s.peeked = s.source.NextToken()
	return consumed
}

// Consume requires the current token to have kind k; on a match it
// advances past it. On mismatch it raises a ParserError anchored at the
// point immediately after prev, per §4.1.
func (s *Stream) Consume(k token.Kind) token.Token {
	if s.peeked.Kind == k {
		return s.Advance()
	}
	where := loc.PointAfter(s.prev.Loc)
	if s.peeked.Kind == token.EOF {
		panic(diagnostics.NewParserError(where, "Expecting a %s but the file ended", token.HumanName(k)))
	}
	panic(diagnostics.NewParserError(where, "Expecting a %s but got %s", token.HumanName(k), s.peeked.Display()))
}

// Expect validates that the current token has kind k without consuming
// it; on mismatch it raises the same diagnostic as Consume.
func (s *Stream) Expect(k token.Kind) {
	if s.peeked.Kind == k {
		return
	}
	where := loc.PointAfter(s.prev.Loc)
	if s.peeked.Kind == token.EOF {
		panic(diagnostics.NewParserError(where, "Expecting a %s but the file ended", token.HumanName(k)))
	}
	panic(diagnostics.NewParserError(where, "Expecting a %s but got %s", token.HumanName(k), s.peeked.Display()))
}

// OptConsume advances past the current token iff it has kind k, and
// reports whether it did.
func (s *Stream) OptConsume(k token.Kind) bool {
	if s.peeked.Kind == k {
		s.Advance()
		return true
	}
	return false
}
