package parser

import (
	"github.com/vult-lang/vultparse/internal/ast"
	"github.com/vult-lang/vultparse/internal/diagnostics"
	"github.com/vult-lang/vultparse/internal/lexer"
	"github.com/vult-lang/vultparse/internal/loc"
	"github.com/vult-lang/vultparse/internal/token"
)

// ParseExpression is the Pratt driver from §4.3: take the current
// token, dispatch its nud, then repeatedly fold in led handlers while
// their left binding power exceeds rbp.
func (p *Parser) ParseExpression(rbp int) ast.Expr {
	tok := p.s.Advance()
	left := p.nud(tok)

	for rbp < lbp(p.cur()) {
		tok = p.s.Advance()
		left = p.led(tok, left)
	}
	return left
}

// nud dispatches the "null denotation" (prefix) handler for tok, per
// §4.3.1.
func (p *Parser) nud(tok token.Token) ast.Expr {
	switch tok.Kind {
	case token.OP:
		if tok.Value == "-" {
			operand := p.ParseExpression(unaryRBP)
			return ast.NewUnOp("-", operand, loc.Merge(tok.Loc, operand.Loc()))
		}
		notExpecting(tok)
	case token.ID:
		name := ast.SplitIdentifier(tok.Value)
		if p.curKind() == token.LPAREN {
			return p.parseCall(nil, name, tok.Loc)
		}
		if p.curKind() == token.COLON {
			p.s.Advance()
			typ := p.ParseExpression(typeAscriptionRBP)
			return ast.NewId(name, typ, loc.Merge(tok.Loc, typ.Loc()))
		}
		return ast.NewId(name, nil, tok.Loc)
	case token.LPAREN:
		if p.curKind() == token.RPAREN {
			end := p.s.Advance()
			return ast.NewUnit(loc.Merge(tok.Loc, end.Loc))
		}
		inner := p.ParseExpression(0)
		end := p.s.Consume(token.RPAREN)
		return ast.NewGroup(inner, loc.Merge(tok.Loc, end.Loc))
	case token.INT:
		return ast.NewInt(lexer.ParseInt(tok.Value), tok.Loc)
	case token.REAL:
		return ast.NewReal(lexer.ParseFloat(tok.Value), tok.Loc)
	case token.TRUE:
		return ast.NewBool(true, tok.Loc)
	case token.FALSE:
		return ast.NewBool(false, tok.Loc)
	case token.IF:
		cond := p.ParseExpression(0)
		p.s.Consume(token.THEN)
		then := p.ParseExpression(0)
		p.s.Consume(token.ELSE)
		els := p.ParseExpression(0)
		return ast.NewIfExpr(cond, then, els, loc.Merge(tok.Loc, els.Loc()))
	case token.LSEQ:
		stmts := p.parseSeqBody()
		endTok := p.s.Consume(token.RSEQ)
		return ast.NewSeq(nil, stmts, loc.Merge(tok.Loc, endTok.Loc))
	}
	notExpecting(tok)
	panic("unreachable")
}

// parseSeqBody parses the statement list of an embedded `{| ... |}`
// sequence, per §4.3.5: on EOF before RSEQ the standard "Expecting RSEQ"
// error fires via Expect/Consume.
func (p *Parser) parseSeqBody() []ast.Stmt {
	var stmts []ast.Stmt
	for p.curKind() != token.RSEQ {
		if p.curKind() == token.EOF {
			p.s.Consume(token.RSEQ)
		}
		stmts = append(stmts, p.parseStatementRecovering())
	}
	return stmts
}

// led dispatches the "left denotation" (infix) handler for tok, per
// §4.3.2. Any led-eligible kind not handled here is an internal error:
// the lbp table never assigns a nonzero binding power to a kind this
// switch doesn't cover.
func (p *Parser) led(tok token.Token, left ast.Expr) ast.Expr {
	switch tok.Kind {
	case token.OP:
		right := p.ParseExpression(lbp(tok))
		return ast.NewBinOp(tok.Value, left, right, loc.Merge(left.Loc(), right.Loc()))
	case token.COMMA:
		return p.parseTupleComma(left)
	case token.COLON:
		right := p.ParseExpression(typeAscriptionRBP)
		return ast.NewTyped(left, right, loc.Merge(left.Loc(), right.Loc()))
	case token.LPAREN:
		// Only reachable if a future lbp entry ever routes LPAREN through
		// led; today calls are only built from nud's ID lookahead.
		panic(diagnostics.NewParserError(loc.PointAfter(tok.Loc), "internal error: unexpected led dispatch for %s", tok.Display()))
	default:
		panic(diagnostics.NewParserError(loc.PointAfter(tok.Loc), "internal error: unexpected led dispatch for %s", tok.Display()))
	}
}

// parseTupleComma implements the comma-flattening rule of §4.3.4: the
// right side binds at exprListRBP, which stops at the next comma, so
// `a,b,c` folds left as `(a,b),c`; the result is flattened so no Tuple
// is ever nested directly inside another.
func (p *Parser) parseTupleComma(left ast.Expr) ast.Expr {
	right := p.ParseExpression(exprListRBP)

	var elements []ast.Expr
	if lt, ok := left.(*ast.Tuple); ok {
		elements = append(elements, lt.Elements...)
	} else {
		elements = append(elements, left)
	}
	if rt, ok := right.(*ast.Tuple); ok {
		elements = append(elements, rt.Elements...)
	} else {
		elements = append(elements, right)
	}
	return ast.NewTuple(elements, left.Loc())
}

// parseCall parses call syntax after an identifier has already been
// read, per §4.3.3: `ident(args...)`.
func (p *Parser) parseCall(instance *ast.Identifier, name ast.Identifier, start loc.Location) ast.Expr {
	p.s.Advance() // consume LPAREN
	var args []ast.Expr
	if p.curKind() != token.RPAREN {
		args = p.parseExpressionList()
	}
	end := p.s.Consume(token.RPAREN)
	return ast.NewCall(instance, name, args, nil, loc.Merge(start, end.Loc))
}

// parseExpressionList implements §4.3.6: repeatedly parse
// expression(exprListRBP), separated by commas, accepting at least one
// expression. Binding at exprListRBP rather than 0 keeps a bare comma
// from being swallowed as a tuple.
func (p *Parser) parseExpressionList() []ast.Expr {
	exprs := []ast.Expr{p.ParseExpression(exprListRBP)}
	for p.s.OptConsume(token.COMMA) {
		exprs = append(exprs, p.ParseExpression(exprListRBP))
	}
	return exprs
}
