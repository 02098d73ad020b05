package lexer_test

import (
	"testing"

	"github.com/vult-lang/vultparse/internal/lexer"
	"github.com/vult-lang/vultparse/internal/token"
)

func kinds(src string) []token.Kind {
	lx := lexer.New("t.vult", src)
	var out []token.Kind
	for {
		tok := lx.NextToken()
		out = append(out, tok.Kind)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func TestKeywordsAndDelimiters(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"empty", "", []token.Kind{token.EOF}},
		{"val semi", "val x = 1;", []token.Kind{token.VAL, token.ID, token.EQUAL, token.INT, token.SEMI, token.EOF}},
		{"seq delims", "{| x |}", []token.Kind{token.LSEQ, token.ID, token.RSEQ, token.EOF}},
		{"table delims", "[| 1, 2 |]", []token.Kind{token.LARR, token.INT, token.COMMA, token.INT, token.RARR, token.EOF}},
		{"block braces", "{ x }", []token.Kind{token.LBRAC, token.ID, token.RBRAC, token.EOF}},
		{"comparisons", "a >= b <= c == d != e", []token.Kind{
			token.ID, token.OP, token.ID, token.OP, token.ID, token.OP, token.ID, token.OP, token.ID, token.EOF}},
		{"and or", "a && b || c", []token.Kind{token.ID, token.OP, token.ID, token.OP, token.ID, token.EOF}},
		{"keywords", "if then else fun and while return type table true false",
			[]token.Kind{token.IF, token.THEN, token.ELSE, token.FUN, token.AND, token.WHILE, token.RET, token.TYPE, token.TABLE, token.TRUE, token.FALSE, token.EOF}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := kinds(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("kind count = %d, want %d (%v)", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("kind[%d] = %s, want %s", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx := lexer.New("t.vult", "")
	first := lx.NextToken()
	second := lx.NextToken()
	if first.Kind != token.EOF || second.Kind != token.EOF {
		t.Fatalf("expected two EOF tokens, got %v then %v", first.Kind, second.Kind)
	}
}

func TestDottedIdentifierIsOneToken(t *testing.T) {
	lx := lexer.New("t.vult", "a.b.c")
	tok := lx.NextToken()
	if tok.Kind != token.ID || tok.Value != "a.b.c" {
		t.Fatalf("got %s(%q), want ID(\"a.b.c\")", tok.Kind, tok.Value)
	}
}

func TestRealVsIntLiteral(t *testing.T) {
	lx := lexer.New("t.vult", "1 1.5 1e3")
	want := []token.Kind{token.INT, token.REAL, token.REAL}
	for i, w := range want {
		tok := lx.NextToken()
		if tok.Kind != w {
			t.Errorf("token %d: got %s, want %s", i, tok.Kind, w)
		}
	}
}

func TestParseIntAndParseFloat(t *testing.T) {
	if got := lexer.ParseInt("42"); got != 42 {
		t.Errorf("ParseInt(42) = %d", got)
	}
	if got := lexer.ParseFloat("1.5"); got != 1.5 {
		t.Errorf("ParseFloat(1.5) = %v", got)
	}
}

func TestLineBuffer(t *testing.T) {
	lx := lexer.New("t.vult", "one\ntwo\nthree")
	lb := lx.Lines()
	if lb.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", lb.Count())
	}
	if lb.Line(2) != "two" {
		t.Errorf("Line(2) = %q, want %q", lb.Line(2), "two")
	}
	if lb.Line(0) != "" || lb.Line(4) != "" {
		t.Error("out-of-range Line() should return empty string")
	}
}
