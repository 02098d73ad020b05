// Package ast defines the expression and statement trees the parser
// produces. Both Expr and Stmt are closed sum types, modeled the
// idiomatic Go way as an interface with a handful of concrete struct
// implementations; callers switch on the concrete type to pattern-match.
package ast

import (
	"github.com/vult-lang/vultparse/internal/loc"
)

// Expr is the interface shared by every expression node. Every case
// except Empty carries a non-unknown location once built by the parser.
type Expr interface {
	exprNode()
	Loc() loc.Location
}

// Identifier is an ordered, non-empty sequence of name segments obtained
// by splitting a raw identifier lexeme on '.'. Dotted names are kept as
// given; no resolution happens here.
type Identifier struct {
	Segments []string
}

// String rejoins the identifier's segments with '.'.
func (id Identifier) String() string {
	out := ""
	for i, s := range id.Segments {
		if i > 0 {
			out += "."
		}
		out += s
	}
	return out
}

// SplitIdentifier builds an Identifier from a raw dotted lexeme.
func SplitIdentifier(raw string) Identifier {
	segs := []string{}
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '.' {
			segs = append(segs, raw[start:i])
			start = i + 1
		}
	}
	segs = append(segs, raw[start:])
	return Identifier{Segments: segs}
}

type base struct{ L loc.Location }

func (b base) Loc() loc.Location { return b.L }

// Unit is the `()` literal.
type Unit struct {
	base
}

func (*Unit) exprNode() {}

// NewUnit builds a Unit expression at l.
func NewUnit(l loc.Location) *Unit { return &Unit{base{l}} }

// Int is an integer literal.
type Int struct {
	base
	Value int64
}

func (*Int) exprNode() {}

// NewInt builds an Int expression.
func NewInt(v int64, l loc.Location) *Int { return &Int{base{l}, v} }

// Real is a floating literal.
type Real struct {
	base
	Value float64
}

func (*Real) exprNode() {}

// NewReal builds a Real expression.
func NewReal(v float64, l loc.Location) *Real { return &Real{base{l}, v} }

// Bool is a boolean literal.
type Bool struct {
	base
	Value bool
}

func (*Bool) exprNode() {}

// NewBool builds a Bool expression.
func NewBool(v bool, l loc.Location) *Bool { return &Bool{base{l}, v} }

// Id is an identifier reference, optionally ascribed with a type
// expression (`x : real`).
type Id struct {
	base
	Name Identifier
	Type Expr // optional, nil if absent
}

func (*Id) exprNode() {}

// NewId builds an Id expression. typ may be nil.
func NewId(name Identifier, typ Expr, l loc.Location) *Id { return &Id{base{l}, name, typ} }

// UnOp is a prefix unary operator application.
type UnOp struct {
	base
	Op      string
	Operand Expr
}

func (*UnOp) exprNode() {}

// NewUnOp builds a UnOp expression.
func NewUnOp(op string, operand Expr, l loc.Location) *UnOp { return &UnOp{base{l}, op, operand} }

// BinOp is an infix binary operator application.
type BinOp struct {
	base
	Op          string
	Left, Right Expr
}

func (*BinOp) exprNode() {}

// NewBinOp builds a BinOp expression.
func NewBinOp(op string, left, right Expr, l loc.Location) *BinOp {
	return &BinOp{base{l}, op, left, right}
}

// Call is a function call, optionally qualified by an instance name
// (`self.foo(...)`-style dispatch), carrying a fixed attribute list.
type Call struct {
	base
	Instance   *Identifier // optional
	Name       Identifier
	Args       []Expr
	Attributes []Attribute
}

func (*Call) exprNode() {}

// NewCall builds a Call expression.
func NewCall(instance *Identifier, name Identifier, args []Expr, attrs []Attribute, l loc.Location) *Call {
	return &Call{base{l}, instance, name, args, attrs}
}

// IfExpr is a conditional expression: `if cond then a else b`.
type IfExpr struct {
	base
	Cond, Then, Else Expr
}

func (*IfExpr) exprNode() {}

// NewIfExpr builds an IfExpr expression.
func NewIfExpr(cond, then, els Expr, l loc.Location) *IfExpr {
	return &IfExpr{base{l}, cond, then, els}
}

// Group is a parenthesized expression, kept distinct from its inner
// expression so source-faithful round-tripping stays possible.
type Group struct {
	base
	Inner Expr
}

func (*Group) exprNode() {}

// NewGroup builds a Group expression.
func NewGroup(inner Expr, l loc.Location) *Group { return &Group{base{l}, inner} }

// Tuple is an ordered list of at least two elements assembled from
// comma-separated expressions; no Tuple is ever nested directly inside
// another (see the comma flattening rule in the expression parser).
type Tuple struct {
	base
	Elements []Expr
}

func (*Tuple) exprNode() {}

// NewTuple builds a Tuple expression. Elements must have length >= 2.
func NewTuple(elements []Expr, l loc.Location) *Tuple { return &Tuple{base{l}, elements} }

// Seq is an expression-embedded statement sequence (`{| ... |}`),
// optionally named by an instance.
type Seq struct {
	base
	Instance *Identifier // optional
	Stmts    []Stmt
}

func (*Seq) exprNode() {}

// NewSeq builds a Seq expression.
func NewSeq(instance *Identifier, stmts []Stmt, l loc.Location) *Seq {
	return &Seq{base{l}, instance, stmts}
}

// Typed is a value expression ascribed with a type via the infix `:`.
type Typed struct {
	base
	Value Expr
	Type  Expr
}

func (*Typed) exprNode() {}

// NewTyped builds a Typed expression.
func NewTyped(value, typ Expr, l loc.Location) *Typed { return &Typed{base{l}, value, typ} }

// EmptyExpr is the empty expression placeholder; it carries no location.
// The parser never builds one (error recovery substitutes EmptyStmt).
type EmptyExpr struct{}

func (*EmptyExpr) exprNode()         {}
func (*EmptyExpr) Loc() loc.Location { return loc.Unknown }

var emptyExpr = &EmptyExpr{}

// NewEmptyExpr returns the shared EmptyExpr sentinel.
func NewEmptyExpr() *EmptyExpr { return emptyExpr }
