package parser

import "github.com/vult-lang/vultparse/internal/token"

// Left binding powers, per §4.2. Unary minus is parsed with right
// binding power unaryRBP (higher than any binary operator) so that
// `-a*b` groups as `(-a)*b`. Type-ascription colons invoke
// expression(typeAscriptionRBP) on their right so an ascription never
// swallows a following comma.
const (
	lbpColon   = 10
	lbpComma   = 20
	lbpOrAnd   = 30
	lbpCompare = 40
	lbpAddSub  = 50
	lbpMulDiv  = 60

	unaryRBP          = 70
	typeAscriptionRBP = 20
	exprListRBP       = 20
)

var operatorLBP = map[string]int{
	"||": lbpOrAnd, "&&": lbpOrAnd,
	"==": lbpCompare, "!=": lbpCompare, ">": lbpCompare, "<": lbpCompare, ">=": lbpCompare, "<=": lbpCompare,
	"+": lbpAddSub, "-": lbpAddSub,
	"*": lbpMulDiv, "/": lbpMulDiv, "%": lbpMulDiv,
}

// lbp returns the left binding power of tok, keyed jointly on kind and,
// for OP tokens, the operator lexeme. Anything not listed binds at 0,
// which stops the Pratt loop.
func lbp(tok token.Token) int {
	switch tok.Kind {
	case token.COLON:
		return lbpColon
	case token.COMMA:
		return lbpComma
	case token.OP:
		return operatorLBP[tok.Value]
	default:
		return 0
	}
}
