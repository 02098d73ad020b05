package parser

import (
	"github.com/vult-lang/vultparse/internal/ast"
	"github.com/vult-lang/vultparse/internal/diagnostics"
	"github.com/vult-lang/vultparse/internal/lexer"
	"github.com/vult-lang/vultparse/internal/token"
)

// Results is the parser_results record of §3.6: either the parsed
// top-level statements or the accumulated diagnostics, plus the source
// line table and file name needed to render them.
type Results struct {
	Statements []ast.Stmt
	Errors     []error
	Lines      *lexer.LineBuffer
	File       string
}

// OK reports whether parsing produced a usable AST with no errors.
func (r *Results) OK() bool { return r.Errors == nil }

// ParseBuffer implements the top-level driver of §4.7: repeatedly parse
// a statement list until EOF, collecting the blocks. Any panic that
// escapes the loop — a ParserError (e.g. from an unterminated `{` block)
// or anything else — becomes the single SimpleError "Failed to parse the
// file" and discards any partial AST, matching the propagation policy in
// §7.
func ParseBuffer(source TokenSource, file string) (results *Results) {
	p := New(source)
	results = &Results{Lines: p.s.Lines(), File: file}

	defer func() {
		// parseStatementRecovering records most ParserErrors itself; any
		// panic reaching here — a ParserError or any other — is treated
		// per §7's policy and discards whatever partial AST had been built.
		if r := recover(); r != nil {
			results.Statements = nil
			results.Errors = []error{diagnostics.Failed()}
		}
	}()

	var stmts []ast.Stmt
	for p.curKind() != token.EOF {
		block := p.parseStmtList()
		stmts = append(stmts, block)
	}

	if p.s.HasErrors() {
		results.Statements = nil
		results.Errors = p.s.Errors()
		return results
	}
	results.Statements = stmts
	return results
}

// ParseExpr parses a single expression to EOF-tolerant completion; it
// does not require the input to be fully consumed.
func ParseExpr(source TokenSource) ast.Expr {
	p := New(source)
	return p.ParseExpression(0)
}

// ParseStmt parses exactly one statement, with recovery.
func ParseStmt(source TokenSource) ast.Stmt {
	p := New(source)
	return p.parseStatementRecovering()
}

// ParseStmtList parses a block or a single statement, per §4.4.6.
func ParseStmtList(source TokenSource) ast.Stmt {
	p := New(source)
	return p.parseStmtList()
}
