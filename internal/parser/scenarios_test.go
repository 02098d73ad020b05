package parser_test

import (
	"testing"

	"github.com/vult-lang/vultparse/internal/ast"
	"github.com/vult-lang/vultparse/internal/lexer"
	"github.com/vult-lang/vultparse/internal/parser"
)

// TestScenarioS1 covers a typed function definition with a return type
// and a binary-operator body.
func TestScenarioS1(t *testing.T) {
	lx := lexer.New("t.vult", "fun add(x:real, y:real) : real { return x + y; }")
	res := parser.ParseBuffer(lx, "t.vult")
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Statements) != 1 {
		t.Fatalf("len(Statements) = %d, want 1", len(res.Statements))
	}
	block, ok := res.Statements[0].(*ast.Block)
	if !ok || len(block.Stmts) != 1 {
		t.Fatalf("top-level block = %#v", res.Statements[0])
	}
	fn, ok := block.Stmts[0].(*ast.Fun)
	if !ok {
		t.Fatalf("got %#v, want *ast.Fun", block.Stmts[0])
	}
	if fn.Name.String() != "add" || len(fn.Params) != 2 {
		t.Fatalf("name=%s params=%d, want add/2", fn.Name, len(fn.Params))
	}
	if fn.ReturnType == nil {
		t.Fatal("ReturnType is nil, want PId(\"real\")")
	}
	body, ok := fn.Body.(*ast.Block)
	if !ok || len(body.Stmts) != 1 {
		t.Fatalf("Body = %#v", fn.Body)
	}
	ret, ok := body.Stmts[0].(*ast.Return)
	if !ok {
		t.Fatalf("got %#v, want *ast.Return", body.Stmts[0])
	}
	if _, ok := ret.Value.(*ast.BinOp); !ok {
		t.Fatalf("Return.Value = %#v, want *ast.BinOp", ret.Value)
	}
}

// TestScenarioS2 covers a tuple-destructuring val declaration.
func TestScenarioS2(t *testing.T) {
	lx := lexer.New("t.vult", "val a,b = 1,2;")
	res := parser.ParseBuffer(lx, "t.vult")
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	val := res.Statements[0].(*ast.Block).Stmts[0].(*ast.Val)
	lhs, ok := val.Lhs.(*ast.Tuple)
	if !ok || len(lhs.Elements) != 2 {
		t.Fatalf("Lhs = %#v, want Tuple of 2", val.Lhs)
	}
	rhs, ok := val.Rhs.(*ast.Tuple)
	if !ok || len(rhs.Elements) != 2 {
		t.Fatalf("Rhs = %#v, want Tuple of 2", val.Rhs)
	}
}

// TestScenarioS3 covers an if/else statement with block bodies.
func TestScenarioS3(t *testing.T) {
	lx := lexer.New("t.vult", "if (x>0) { y = 1; } else y = 2;")
	res := parser.ParseBuffer(lx, "t.vult")
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	ifStmt := res.Statements[0].(*ast.Block).Stmts[0].(*ast.If)
	if _, ok := ifStmt.Cond.(*ast.BinOp); !ok {
		t.Fatalf("Cond = %#v, want *ast.BinOp", ifStmt.Cond)
	}
	thenBlock, ok := ifStmt.Then.(*ast.Block)
	if !ok || len(thenBlock.Stmts) != 1 {
		t.Fatalf("Then = %#v", ifStmt.Then)
	}
	if ifStmt.Else == nil {
		t.Fatal("Else is nil, want a block")
	}
}

// TestScenarioS4 covers a record type declaration.
func TestScenarioS4(t *testing.T) {
	lx := lexer.New("t.vult", "type V(n:int) { val x : real; val y : real; }")
	res := parser.ParseBuffer(lx, "t.vult")
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	ty := res.Statements[0].(*ast.Block).Stmts[0].(*ast.Type)
	if ty.Name.String() != "V" || len(ty.Params) != 1 {
		t.Fatalf("name=%s params=%d, want V/1", ty.Name, len(ty.Params))
	}
	if len(ty.Members) != 2 || ty.Members[0].Name.String() != "x" || ty.Members[1].Name.String() != "y" {
		t.Fatalf("Members = %#v", ty.Members)
	}
}

// TestScenarioS5 covers a file with multiple consecutive errors that
// still reaches EOF, with a well-formed statement surviving afterward.
func TestScenarioS5(t *testing.T) {
	lx := lexer.New("t.vult", "val x = ;;;;; val y = 1;")
	res := parser.ParseBuffer(lx, "t.vult")
	if res.OK() {
		t.Fatal("expected an Error outcome")
	}
	if len(res.Errors) == 0 {
		t.Fatal("expected at least one recorded error")
	}
}

// TestScenarioS6 covers a table literal declaration.
func TestScenarioS6(t *testing.T) {
	lx := lexer.New("t.vult", "table t = [| 1.0, 2.0, 3.0 |];")
	res := parser.ParseBuffer(lx, "t.vult")
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	tbl := res.Statements[0].(*ast.Block).Stmts[0].(*ast.Table)
	if tbl.Name.String() != "t" || len(tbl.Elements) != 3 {
		t.Fatalf("name=%s elements=%d, want t/3", tbl.Name, len(tbl.Elements))
	}
	for i, e := range tbl.Elements {
		if _, ok := e.(*ast.Real); !ok {
			t.Errorf("element %d = %#v, want *ast.Real", i, e)
		}
	}
}
