// Package token defines the lexical token kinds produced by the lexer
// and consumed by the parser.
package token

import (
	"fmt"

	"github.com/vult-lang/vultparse/internal/loc"
)

// Kind is the closed set of token discriminants the parser understands.
type Kind string

const (
	ID    Kind = "ID"
	INT   Kind = "INT"
	REAL  Kind = "REAL"
	TRUE  Kind = "TRUE"
	FALSE Kind = "FALSE"
	OP    Kind = "OP"

	COLON Kind = "COLON"
	COMMA Kind = "COMMA"
	SEMI  Kind = "SEMI"

	LPAREN Kind = "LPAREN"
	RPAREN Kind = "RPAREN"
	LBRAC  Kind = "LBRAC"
	RBRAC  Kind = "RBRAC"
	LSEQ   Kind = "LSEQ"
	RSEQ   Kind = "RSEQ"
	LARR   Kind = "LARR"
	RARR   Kind = "RARR"

	EQUAL Kind = "EQUAL"
	AT    Kind = "AT"

	IF    Kind = "IF"
	THEN  Kind = "THEN"
	ELSE  Kind = "ELSE"
	FUN   Kind = "FUN"
	AND   Kind = "AND"
	VAL   Kind = "VAL"
	MEM   Kind = "MEM"
	RET   Kind = "RET"
	WHILE Kind = "WHILE"
	TYPE  Kind = "TYPE"
	TABLE Kind = "TABLE"

	EOF Kind = "EOF"
)

// humanNames gives every kind a fixed, stable human-readable spelling for
// diagnostic messages. OP has no entry and falls back to its kind name.
var humanNames = map[Kind]string{
	ID:     "identifier",
	INT:    "integer literal",
	REAL:   "real literal",
	TRUE:   "true",
	FALSE:  "false",
	COLON:  ":",
	COMMA:  ",",
	SEMI:   ";",
	LPAREN: "(",
	RPAREN: ")",
	LBRAC:  "{",
	RBRAC:  "}",
	LSEQ:   "{|",
	RSEQ:   "|}",
	LARR:   "[|",
	RARR:   "|]",
	EQUAL:  "=",
	AT:     "@",
	IF:     "if",
	THEN:   "then",
	ELSE:   "else",
	FUN:    "fun",
	AND:    "and",
	VAL:    "val",
	MEM:    "mem",
	RET:    "return",
	WHILE:  "while",
	TYPE:   "type",
	TABLE:  "table",
	EOF:    "end of file",
}

// HumanName returns the stable display spelling used in diagnostics.
func HumanName(k Kind) string {
	if s, ok := humanNames[k]; ok {
		return s
	}
	return string(k)
}

// Token is a single lexeme: its kind, raw text, and source span.
type Token struct {
	Kind  Kind
	Value string
	Loc   loc.Location
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Loc)
}

// Display renders the token the way diagnostics expect to see it: the
// human name of its kind, falling back to the raw lexeme for operators
// and identifiers so "Expecting a X but got Y" reads naturally.
func (t Token) Display() string {
	switch t.Kind {
	case OP, ID, INT, REAL:
		return t.Value
	default:
		return HumanName(t.Kind)
	}
}

// EOFAt builds the sentinel EOF token the stream returns indefinitely
// past the end of input.
func EOFAt(l loc.Location) Token {
	return Token{Kind: EOF, Value: "", Loc: l}
}
