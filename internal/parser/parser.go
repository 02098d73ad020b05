// Package parser implements the Vult parser core: a token stream with
// one-token lookahead, a Pratt expression parser, and a recursive-
// descent statement parser with panic-mode error recovery.
package parser

import (
	"github.com/vult-lang/vultparse/internal/diagnostics"
	"github.com/vult-lang/vultparse/internal/loc"
	"github.com/vult-lang/vultparse/internal/token"
)

// Parser drives both the expression and statement grammars over a
// shared Stream. Mutually recursive parses (statement bodies embedding
// expressions, expressions embedding statement sequences) are modeled as
// methods on this one type rather than free functions, so they always
// see the same cursor.
type Parser struct {
	s *Stream
}

// New builds a Parser reading tokens from source.
func New(source TokenSource) *Parser {
	return &Parser{s: NewStream(source)}
}

// Stream exposes the underlying token stream, e.g. so a caller can read
// Errors()/HasErrors() after a parse.
func (p *Parser) Stream() *Stream { return p.s }

func (p *Parser) cur() token.Token    { return p.s.Peek() }
func (p *Parser) curKind() token.Kind { return p.s.PeekKind() }

// notExpecting raises the "Not expecting to find X" diagnostic anchored
// just past the offending token's location, per §4.3.1.
func notExpecting(tok token.Token) {
	panic(diagnostics.NewParserError(loc.PointAfter(tok.Loc), "Not expecting to find %s", tok.Display()))
}
