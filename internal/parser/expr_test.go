package parser_test

import (
	"testing"

	"github.com/vult-lang/vultparse/internal/ast"
	"github.com/vult-lang/vultparse/internal/lexer"
	"github.com/vult-lang/vultparse/internal/parser"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	lx := lexer.New("t.vult", src)
	return parser.ParseExpr(lx)
}

func binOp(e ast.Expr) (*ast.BinOp, bool) {
	b, ok := e.(*ast.BinOp)
	return b, ok
}

func TestOperatorPrecedence(t *testing.T) {
	// a + b * c -> BinOp("+", a, BinOp("*", b, c))
	e := parseExpr(t, "a + b * c")
	plus, ok := binOp(e)
	if !ok || plus.Op != "+" {
		t.Fatalf("top-level op = %#v, want + BinOp", e)
	}
	mul, ok := binOp(plus.Right)
	if !ok || mul.Op != "*" {
		t.Fatalf("right of + = %#v, want * BinOp", plus.Right)
	}

	// a * b + c -> BinOp("+", BinOp("*", a, b), c)
	e2 := parseExpr(t, "a * b + c")
	plus2, ok := binOp(e2)
	if !ok || plus2.Op != "+" {
		t.Fatalf("top-level op = %#v, want + BinOp", e2)
	}
	mul2, ok := binOp(plus2.Left)
	if !ok || mul2.Op != "*" {
		t.Fatalf("left of + = %#v, want * BinOp", plus2.Left)
	}

	// -a * b -> BinOp("*", UnOp("-", a), b)
	e3 := parseExpr(t, "-a * b")
	mul3, ok := binOp(e3)
	if !ok || mul3.Op != "*" {
		t.Fatalf("top-level op = %#v, want * BinOp", e3)
	}
	un, ok := mul3.Left.(*ast.UnOp)
	if !ok || un.Op != "-" {
		t.Fatalf("left of * = %#v, want UnOp(-)", mul3.Left)
	}

	// a == b && c == d -> BinOp("&&", BinOp("==",a,b), BinOp("==",c,d))
	e4 := parseExpr(t, "a == b && c == d")
	and, ok := binOp(e4)
	if !ok || and.Op != "&&" {
		t.Fatalf("top-level op = %#v, want && BinOp", e4)
	}
	if l, ok := binOp(and.Left); !ok || l.Op != "==" {
		t.Fatalf("left of && = %#v, want == BinOp", and.Left)
	}
	if r, ok := binOp(and.Right); !ok || r.Op != "==" {
		t.Fatalf("right of && = %#v, want == BinOp", and.Right)
	}
}

func TestTupleFlattening(t *testing.T) {
	e := parseExpr(t, "e1, e2, e3")
	tup, ok := e.(*ast.Tuple)
	if !ok {
		t.Fatalf("got %#v, want *ast.Tuple", e)
	}
	if len(tup.Elements) != 3 {
		t.Fatalf("len(Elements) = %d, want 3", len(tup.Elements))
	}
	for _, el := range tup.Elements {
		if _, nested := el.(*ast.Tuple); nested {
			t.Error("found a Tuple nested directly inside another Tuple")
		}
	}
}

func TestTypeColonPrecedenceDoesNotSwallowComma(t *testing.T) {
	// x : real, y : bool  should parse as a Tuple of two type-annotated
	// identifiers, not a single identifier whose type is a tuple.
	e := parseExpr(t, "x : real, y : bool")
	tup, ok := e.(*ast.Tuple)
	if !ok {
		t.Fatalf("got %#v, want *ast.Tuple", e)
	}
	if len(tup.Elements) != 2 {
		t.Fatalf("len(Elements) = %d, want 2", len(tup.Elements))
	}
	if id, ok := tup.Elements[0].(*ast.Id); !ok || id.Type == nil {
		t.Errorf("element 0 = %#v, want *ast.Id with a Type", tup.Elements[0])
	}
}

func TestCallVsIdentifier(t *testing.T) {
	call := parseExpr(t, "f(1, 2)")
	c, ok := call.(*ast.Call)
	if !ok {
		t.Fatalf("got %#v, want *ast.Call", call)
	}
	if c.Name.String() != "f" || len(c.Args) != 2 {
		t.Errorf("got name=%s args=%d, want f/2", c.Name, len(c.Args))
	}

	bare := parseExpr(t, "f")
	id, ok := bare.(*ast.Id)
	if !ok || id.Name.String() != "f" {
		t.Fatalf("got %#v, want *ast.Id(f)", bare)
	}

	empty := parseExpr(t, "f()")
	c2, ok := empty.(*ast.Call)
	if !ok || len(c2.Args) != 0 {
		t.Fatalf("got %#v, want *ast.Call with no args", empty)
	}
}

func TestDottedIdentifier(t *testing.T) {
	e := parseExpr(t, "a.b.c")
	id, ok := e.(*ast.Id)
	if !ok {
		t.Fatalf("got %#v, want *ast.Id", e)
	}
	want := []string{"a", "b", "c"}
	if len(id.Name.Segments) != len(want) {
		t.Fatalf("segments = %v, want %v", id.Name.Segments, want)
	}
	for i := range want {
		if id.Name.Segments[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, id.Name.Segments[i], want[i])
		}
	}
}

func TestLocationCoverage(t *testing.T) {
	e := parseExpr(t, "a + b * (c - 1)")
	var walk func(ast.Expr)
	walk = func(e ast.Expr) {
		if _, empty := e.(*ast.EmptyExpr); empty {
			return
		}
		l := e.Loc()
		if l.IsUnknown() {
			t.Errorf("node %#v has unknown location", e)
		}
		if l.File == "" {
			t.Errorf("node %#v has empty file name", e)
		}
		switch n := e.(type) {
		case *ast.BinOp:
			walk(n.Left)
			walk(n.Right)
		case *ast.UnOp:
			walk(n.Operand)
		case *ast.Group:
			walk(n.Inner)
		}
	}
	walk(e)
}
