// Package vultparse is the public face of the Vult parser core: a
// handful of entry points (§6.2) over the internal lexer and parser.
package vultparse

import (
	"io"
	"os"

	"github.com/vult-lang/vultparse/internal/ast"
	"github.com/vult-lang/vultparse/internal/dump"
	"github.com/vult-lang/vultparse/internal/lexer"
	"github.com/vult-lang/vultparse/internal/parser"
)

// liveFile is the synthetic filename used for in-memory source, per
// §6.2's "live.vult".
const liveFile = "live.vult"

// Results mirrors the parser_results record of §3.6.
type Results struct {
	// Statements holds the parsed top-level blocks on success; nil on
	// failure.
	Statements []ast.Stmt
	// Errors holds the accumulated diagnostics, oldest first, on
	// failure; nil on success.
	Errors []error
	// Lines is the accumulated source-line table.
	Lines *lexer.LineBuffer
	// File is the filename (or "live.vult" for in-memory source) this
	// result was parsed from.
	File string
}

// OK reports whether parsing succeeded with no errors.
func (r *Results) OK() bool { return r.Errors == nil }

func fromInternal(r *parser.Results) *Results {
	return &Results{Statements: r.Statements, Errors: r.Errors, Lines: r.Lines, File: r.File}
}

// ParseExp parses a single expression from text.
func ParseExp(text string) ast.Expr {
	lx := lexer.New(liveFile, text)
	return parser.ParseExpr(lx)
}

// ParseStmt parses one statement from text.
func ParseStmt(text string) ast.Stmt {
	lx := lexer.New(liveFile, text)
	return parser.ParseStmt(lx)
}

// ParseStmtList parses a block or a single statement from text.
func ParseStmtList(text string) ast.Stmt {
	lx := lexer.New(liveFile, text)
	return parser.ParseStmtList(lx)
}

// ParseString parses a whole program from in-memory text, attributing
// diagnostics to the synthetic filename "live.vult".
func ParseString(text string) *Results {
	lx := lexer.New(liveFile, text)
	return fromInternal(parser.ParseBuffer(lx, liveFile))
}

// ParseFile opens filename, parses its full contents, and guarantees the
// handle is released on every exit path — including an open or read
// failure, whose underlying error is stored as the single entry of
// Results.Errors rather than returned separately, so callers only ever
// need to branch on Results.OK.
func ParseFile(filename string) *Results {
	f, err := os.Open(filename)
	if err != nil {
		return &Results{Errors: []error{err}, File: filename}
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return &Results{Errors: []error{err}, File: filename}
	}

	lx := lexer.New(filename, string(content))
	return fromInternal(parser.ParseBuffer(lx, filename))
}

// ParseDumpExp parses a single expression and renders it back via the
// (external) pretty-printer, returning the printed text.
func ParseDumpExp(text string) string {
	return dump.Expr(ParseExp(text))
}

// ParseDumpStmtList parses a block or single statement and renders it
// back via the (external) pretty-printer.
func ParseDumpStmtList(text string) string {
	return dump.Stmt(ParseStmtList(text))
}
