// Package dump renders the AST back to a compact textual form. It plays
// the role of the pretty-printer the parser core treats as an external
// collaborator: the "dump" entry points, the pipeline's DumpStage and the
// binding-statement diagnostic in §4.4.2 depend on it.
package dump

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vult-lang/vultparse/internal/ast"
)

// Expr renders e as a single-line, source-like string.
func Expr(e ast.Expr) string {
	switch n := e.(type) {
	case nil:
		return ""
	case *ast.Unit:
		return "()"
	case *ast.Int:
		return strconv.FormatInt(n.Value, 10)
	case *ast.Real:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *ast.Bool:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.Id:
		if n.Type != nil {
			return n.Name.String() + " : " + Expr(n.Type)
		}
		return n.Name.String()
	case *ast.UnOp:
		return n.Op + Expr(n.Operand)
	case *ast.BinOp:
		return Expr(n.Left) + " " + n.Op + " " + Expr(n.Right)
	case *ast.Call:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = Expr(a)
		}
		prefix := ""
		if n.Instance != nil {
			prefix = n.Instance.String() + "."
		}
		return fmt.Sprintf("%s%s(%s)", prefix, n.Name, strings.Join(parts, ", "))
	case *ast.IfExpr:
		return "if " + Expr(n.Cond) + " then " + Expr(n.Then) + " else " + Expr(n.Else)
	case *ast.Group:
		return "(" + Expr(n.Inner) + ")"
	case *ast.Tuple:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = Expr(el)
		}
		return strings.Join(parts, ", ")
	case *ast.Seq:
		return "{| " + StmtList(n.Stmts) + " |}"
	case *ast.Typed:
		return Expr(n.Value) + " : " + Expr(n.Type)
	case *ast.EmptyExpr:
		return "<empty>"
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

// Stmt renders one statement.
func Stmt(s ast.Stmt) string {
	switch n := s.(type) {
	case nil:
		return ""
	case *ast.Val:
		if n.Rhs != nil {
			return "val " + Expr(n.Lhs) + " = " + Expr(n.Rhs) + ";"
		}
		return "val " + Expr(n.Lhs) + ";"
	case *ast.Mem:
		out := "mem " + Expr(n.Lhs)
		if n.Init != nil {
			out += " @ " + Expr(n.Init)
		}
		if n.Rhs != nil {
			out += " = " + Expr(n.Rhs)
		}
		return out + ";"
	case *ast.Table:
		parts := make([]string, len(n.Elements))
		for i, e := range n.Elements {
			parts[i] = Expr(e)
		}
		return fmt.Sprintf("table %s = [| %s |];", n.Name, strings.Join(parts, ", "))
	case *ast.Return:
		return "return " + Expr(n.Value) + ";"
	case *ast.Bind:
		if _, ok := n.Lhs.(*ast.Unit); ok {
			return Expr(n.Rhs) + ";"
		}
		return Expr(n.Lhs) + " = " + Expr(n.Rhs) + ";"
	case *ast.If:
		out := "if (" + Expr(n.Cond) + ") " + Stmt(n.Then)
		if n.Else != nil {
			out += " else " + Stmt(n.Else)
		}
		return out
	case *ast.Fun:
		kw := "fun"
		for _, a := range n.Attributes {
			if a == ast.JoinFunction {
				kw = "and"
			}
		}
		return fmt.Sprintf("%s %s(%s) %s", kw, n.Name, namedIdList(n.Params), Stmt(n.Body))
	case *ast.While:
		return "while (" + Expr(n.Cond) + ") " + Stmt(n.Body)
	case *ast.Type:
		var members []string
		for _, m := range n.Members {
			members = append(members, fmt.Sprintf("val %s : %s;", m.Name, Expr(m.Type)))
		}
		return fmt.Sprintf("type %s(%s) { %s }", n.Name, namedIdList(n.Params), strings.Join(members, " "))
	case *ast.AliasType:
		return fmt.Sprintf("type %s(%s) : %s;", n.Name, namedIdList(n.Params), Expr(n.Aliased))
	case *ast.Block:
		return "{ " + StmtList(n.Stmts) + " }"
	case *ast.EmptyStmt:
		return "<empty>"
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

// StmtList renders a sequence of statements separated by spaces.
func StmtList(stmts []ast.Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = Stmt(s)
	}
	return strings.Join(parts, " ")
}

func namedIdList(ids []ast.NamedId) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		switch n := id.(type) {
		case *ast.TypedId:
			parts[i] = n.Ident.String() + " : " + Expr(n.Type)
		case *ast.SimpleId:
			parts[i] = n.Ident.String()
		}
	}
	return strings.Join(parts, ", ")
}
