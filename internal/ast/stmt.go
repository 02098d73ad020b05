package ast

import (
	"github.com/vult-lang/vultparse/internal/loc"
)

// Attribute is drawn from a fixed set of function attributes. The set
// holds only JoinFunction, the one attribute the parser produces.
type Attribute int

const (
	// JoinFunction marks a function introduced with `and` rather than
	// `fun`, tagging it for the downstream code generator.
	JoinFunction Attribute = iota
)

// ValDecl is a single `val name : type` member inside a `type { ... }`
// declaration.
type ValDecl struct {
	Name Identifier
	Type Expr
	L    loc.Location
}

// Loc returns the declaration's source span.
func (v ValDecl) Loc() loc.Location { return v.L }

// NamedId is either a bare SimpleId or a NamedId ascribed with a type,
// used for function parameter lists and type parameter lists.
type NamedId interface {
	namedIdNode()
	Loc() loc.Location
	Name() Identifier
}

// SimpleId is an unascribed named-id: just a name.
type SimpleId struct {
	Ident Identifier
	L     loc.Location
}

func (*SimpleId) namedIdNode()        {}
func (s *SimpleId) Loc() loc.Location { return s.L }
func (s *SimpleId) Name() Identifier  { return s.Ident }

// TypedId is a named-id ascribed with a type expression.
type TypedId struct {
	Ident Identifier
	Type  Expr
	L     loc.Location
}

func (*TypedId) namedIdNode()        {}
func (t *TypedId) Loc() loc.Location { return t.L }
func (t *TypedId) Name() Identifier  { return t.Ident }

// Stmt is the interface shared by every statement node.
type Stmt interface {
	stmtNode()
	Loc() loc.Location
}

type stmtBase struct{ L loc.Location }

func (b stmtBase) Loc() loc.Location { return b.L }

// Val is a `val lhs [= rhs];` declaration. Rhs is nil when absent. The
// parser performs no lvalue check on Lhs; that is left to later passes.
type Val struct {
	stmtBase
	Lhs Expr
	Rhs Expr // optional
}

func (*Val) stmtNode() {}

// NewVal builds a Val statement. rhs may be nil.
func NewVal(lhs, rhs Expr, l loc.Location) *Val { return &Val{stmtBase{l}, lhs, rhs} }

// Mem is a `mem lhs [@ init] [= rhs];` declaration.
type Mem struct {
	stmtBase
	Lhs  Expr
	Init Expr // optional
	Rhs  Expr // optional
}

func (*Mem) stmtNode() {}

// NewMem builds a Mem statement. init and rhs may be nil.
func NewMem(lhs, init, rhs Expr, l loc.Location) *Mem { return &Mem{stmtBase{l}, lhs, init, rhs} }

// Table is a `table name = [| e1, e2, ... |];` declaration.
type Table struct {
	stmtBase
	Name     Identifier
	Elements []Expr
}

func (*Table) stmtNode() {}

// NewTable builds a Table statement.
func NewTable(name Identifier, elements []Expr, l loc.Location) *Table {
	return &Table{stmtBase{l}, name, elements}
}

// Return is a `return exp;` statement.
type Return struct {
	stmtBase
	Value Expr
}

func (*Return) stmtNode() {}

// NewReturn builds a Return statement.
func NewReturn(value Expr, l loc.Location) *Return { return &Return{stmtBase{l}, value} }

// Bind is the fallback statement form: `lhs = rhs;` or the
// expression-statement form `e;` (represented with Lhs as a Unit for
// discard).
type Bind struct {
	stmtBase
	Lhs Expr
	Rhs Expr
}

func (*Bind) stmtNode() {}

// NewBind builds a Bind statement.
func NewBind(lhs, rhs Expr, l loc.Location) *Bind { return &Bind{stmtBase{l}, lhs, rhs} }

// If is an `if (cond) then [else else]` statement.
type If struct {
	stmtBase
	Cond Expr
	Then Stmt
	Else Stmt // optional
}

func (*If) stmtNode() {}

// NewIf builds an If statement. els may be nil.
func NewIf(cond Expr, then, els Stmt, l loc.Location) *If { return &If{stmtBase{l}, cond, then, els} }

// Fun is a function definition, introduced by `fun` or `and`.
type Fun struct {
	stmtBase
	Name       Identifier
	Params     []NamedId
	Body       Stmt
	ReturnType Expr // optional
	Attributes []Attribute
}

func (*Fun) stmtNode() {}

// NewFun builds a Fun statement. returnType may be nil.
func NewFun(name Identifier, params []NamedId, body Stmt, returnType Expr, attrs []Attribute, l loc.Location) *Fun {
	return &Fun{stmtBase{l}, name, params, body, returnType, attrs}
}

// While is a `while (cond) body` statement.
type While struct {
	stmtBase
	Cond Expr
	Body Stmt
}

func (*While) stmtNode() {}

// NewWhile builds a While statement.
func NewWhile(cond Expr, body Stmt, l loc.Location) *While { return &While{stmtBase{l}, cond, body} }

// Type is a `type Name(params) { val x : T; ... }` declaration.
type Type struct {
	stmtBase
	Name    Identifier
	Params  []NamedId
	Members []ValDecl
}

func (*Type) stmtNode() {}

// NewType builds a Type statement.
func NewType(name Identifier, params []NamedId, members []ValDecl, l loc.Location) *Type {
	return &Type{stmtBase{l}, name, params, members}
}

// AliasType is a `type Name(params) : aliased;` declaration.
type AliasType struct {
	stmtBase
	Name    Identifier
	Params  []NamedId
	Aliased Expr
}

func (*AliasType) stmtNode() {}

// NewAliasType builds an AliasType statement.
func NewAliasType(name Identifier, params []NamedId, aliased Expr, l loc.Location) *AliasType {
	return &AliasType{stmtBase{l}, name, params, aliased}
}

// Block is a statement list, optionally named by an instance, produced
// both for `{ ... }` bodies and for the single-statement wrapping form.
type Block struct {
	stmtBase
	Instance *Identifier // optional
	Stmts    []Stmt
}

func (*Block) stmtNode() {}

// NewBlock builds a Block statement.
func NewBlock(instance *Identifier, stmts []Stmt, l loc.Location) *Block {
	return &Block{stmtBase{l}, instance, stmts}
}

// EmptyStmt is produced only by panic-mode error recovery in place of a
// statement that failed to parse. It carries no location.
type EmptyStmt struct{}

func (*EmptyStmt) stmtNode()         {}
func (*EmptyStmt) Loc() loc.Location { return loc.Unknown }

var emptyStmt = &EmptyStmt{}

// NewEmptyStmt returns the shared EmptyStmt sentinel.
func NewEmptyStmt() *EmptyStmt { return emptyStmt }
