package parser

import (
	"github.com/vult-lang/vultparse/internal/ast"
	"github.com/vult-lang/vultparse/internal/diagnostics"
	"github.com/vult-lang/vultparse/internal/dump"
	"github.com/vult-lang/vultparse/internal/loc"
	"github.com/vult-lang/vultparse/internal/token"
)

// parseStatementRecovering implements the error-recovery discipline of
// §4.6: parse one statement; if it panics with a ParserError, record it,
// synchronize to the next statement boundary, and substitute StmtEmpty.
// A non-ParserError panic is not ours to handle and is re-raised so the
// top-level driver can turn it into a SimpleError.
func (p *Parser) parseStatementRecovering() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*diagnostics.ParserError)
			if !ok {
				panic(r)
			}
			p.s.AppendError(pe)
			p.moveToNextStatement()
			stmt = ast.NewEmptyStmt()
		}
	}()
	return p.parseStatement()
}

// parseStatement dispatches on the current token kind per the table in
// §4.4. It may panic with a *diagnostics.ParserError; callers that want
// recovery should go through parseStatementRecovering instead.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.curKind() {
	case token.VAL:
		return p.parseVal()
	case token.MEM:
		return p.parseMem()
	case token.RET:
		return p.parseReturn()
	case token.IF:
		return p.parseIfStmt()
	case token.FUN, token.AND:
		return p.parseFun()
	case token.WHILE:
		return p.parseWhile()
	case token.TYPE:
		return p.parseTypeDecl()
	case token.TABLE:
		return p.parseTable()
	default:
		return p.parseBind()
	}
}

// parseVal implements §4.4.1: `val <exp> [ = <exp> ] ;`.
func (p *Parser) parseVal() ast.Stmt {
	start := p.s.Advance() // consume 'val'
	lhs := p.ParseExpression(0)

	var rhs ast.Expr
	if p.s.OptConsume(token.EQUAL) {
		rhs = p.ParseExpression(0)
	}
	end := p.s.Consume(token.SEMI)
	return ast.NewVal(lhs, rhs, loc.Merge(start.Loc, end.Loc))
}

// parseMem implements §4.4.1: `mem <exp> [ @ <exp> ] [ = <exp> ] ;`.
func (p *Parser) parseMem() ast.Stmt {
	start := p.s.Advance() // consume 'mem'
	lhs := p.ParseExpression(0)

	var init ast.Expr
	if p.s.OptConsume(token.AT) {
		init = p.ParseExpression(0)
	}

	var rhs ast.Expr
	if p.s.OptConsume(token.EQUAL) {
		rhs = p.ParseExpression(0)
	}
	end := p.s.Consume(token.SEMI)
	return ast.NewMem(lhs, init, rhs, loc.Merge(start.Loc, end.Loc))
}

// parseReturn implements `return <exp> ;`.
func (p *Parser) parseReturn() ast.Stmt {
	start := p.s.Advance() // consume 'return'
	value := p.ParseExpression(0)
	end := p.s.Consume(token.SEMI)
	return ast.NewReturn(value, loc.Merge(start.Loc, end.Loc))
}

// parseBind implements the fallback statement form of §4.4.2: either a
// full binding `e1 = e2;`, or an expression statement `e1;` represented
// with a discarded (Unit) left-hand side. Anything else raises a
// diagnostic that echoes a dump of e1, matching the source's message.
func (p *Parser) parseBind() ast.Stmt {
	e1 := p.ParseExpression(0)

	switch p.curKind() {
	case token.EQUAL:
		p.s.Advance()
		e2 := p.ParseExpression(0)
		end := p.s.Consume(token.SEMI)
		return ast.NewBind(e1, e2, loc.Merge(e1.Loc(), end.Loc))
	case token.SEMI:
		end := p.s.Advance()
		return ast.NewBind(ast.NewUnit(e1.Loc()), e1, loc.Merge(e1.Loc(), end.Loc))
	default:
		where := loc.PointAfter(p.s.Prev().Loc)
		tok := p.cur()
		if tok.Kind == token.EOF {
			panic(diagnostics.NewParserError(where,
				"Expecting a = while trying to parse a binding (%s) but the file ended", dump.Expr(e1)))
		}
		panic(diagnostics.NewParserError(where,
			"Expecting a = while trying to parse a binding (%s) but got %s", dump.Expr(e1), tok.Display()))
	}
}

// parseIfStmt implements §4.4.3: `if ( <exp> ) <stmtList> [ else <stmtList> ]`.
func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.s.Advance() // consume 'if'
	p.s.Consume(token.LPAREN)
	cond := p.ParseExpression(0)
	p.s.Consume(token.RPAREN)
	then := p.parseStmtList()

	var els ast.Stmt
	end := then.Loc()
	if p.s.OptConsume(token.ELSE) {
		els = p.parseStmtList()
		end = els.Loc()
	}
	return ast.NewIf(cond, then, els, loc.Merge(start.Loc, end))
}

// parseWhile implements §4.4.3: `while ( <exp> ) <stmtList>`.
func (p *Parser) parseWhile() ast.Stmt {
	start := p.s.Advance() // consume 'while'
	p.s.Consume(token.LPAREN)
	cond := p.ParseExpression(0)
	p.s.Consume(token.RPAREN)
	body := p.parseStmtList()
	return ast.NewWhile(cond, body, loc.Merge(start.Loc, body.Loc()))
}

// parseFun implements §4.4.4. The entry kind is FUN or AND; AND sets the
// JoinFunction attribute. Per §4.4.4 the statement's span starts at the
// identifier token, not the 'fun'/'and' keyword.
func (p *Parser) parseFun() ast.Stmt {
	entry := p.s.Advance() // consume 'fun' or 'and'
	var attrs []ast.Attribute
	if entry.Kind == token.AND {
		attrs = append(attrs, ast.JoinFunction)
	}

	nameTok := p.s.Consume(token.ID)
	name := ast.SplitIdentifier(nameTok.Value)

	p.s.Consume(token.LPAREN)
	var params []ast.NamedId
	if p.curKind() == token.ID {
		params = p.parseNamedIdList()
	}
	p.s.Consume(token.RPAREN)

	var returnType ast.Expr
	if p.s.OptConsume(token.COLON) {
		returnType = p.ParseExpression(0)
	}

	body := p.parseStmtList()
	return ast.NewFun(name, params, body, returnType, attrs, loc.Merge(nameTok.Loc, body.Loc()))
}

// parseTypeDecl implements §4.4.5.
func (p *Parser) parseTypeDecl() ast.Stmt {
	start := p.s.Advance() // consume 'type'
	nameTok := p.s.Consume(token.ID)
	name := ast.SplitIdentifier(nameTok.Value)

	var params []ast.NamedId
	if p.s.OptConsume(token.LPAREN) {
		if p.curKind() == token.ID {
			params = p.parseNamedIdList()
		}
		p.s.Consume(token.RPAREN)
	}

	switch p.curKind() {
	case token.COLON:
		p.s.Advance()
		aliased := p.ParseExpression(10)
		end := aliased.Loc()
		if tok, ok := p.trySemi(); ok {
			end = tok.Loc
		}
		return ast.NewAliasType(name, params, aliased, loc.Merge(start.Loc, end))
	case token.LBRAC:
		p.s.Advance()
		var members []ast.ValDecl
		for p.curKind() != token.RBRAC {
			members = append(members, p.parseValDecl())
			p.s.Consume(token.SEMI)
		}
		end := p.s.Consume(token.RBRAC)
		return ast.NewType(name, params, members, loc.Merge(start.Loc, end.Loc))
	default:
		tok := p.cur()
		panic(diagnostics.NewParserError(loc.PointAfter(p.s.Prev().Loc),
			"Expecting a %s (alias target) or a %s (record body) but got %s",
			token.HumanName(token.COLON), token.HumanName(token.LBRAC), tok.Display()))
	}
}

// trySemi opportunistically consumes a trailing SEMI, reporting whether
// it did; the alias-type production allows but does not require one.
func (p *Parser) trySemi() (token.Token, bool) {
	if p.curKind() == token.SEMI {
		return p.s.Advance(), true
	}
	return token.Token{}, false
}

// parseValDecl implements the `val <id> : <type-exp>` production used
// inside `type { ... }` bodies.
func (p *Parser) parseValDecl() ast.ValDecl {
	start := p.s.Consume(token.VAL)
	nameTok := p.s.Consume(token.ID)
	name := ast.SplitIdentifier(nameTok.Value)
	p.s.Consume(token.COLON)
	typ := p.ParseExpression(10)
	return ast.ValDecl{Name: name, Type: typ, L: loc.Merge(start.Loc, typ.Loc())}
}

// parseTable implements §4.4.7: `table <id> = [| <expList> |] ;`.
func (p *Parser) parseTable() ast.Stmt {
	start := p.s.Advance() // consume 'table'
	nameTok := p.s.Consume(token.ID)
	name := ast.SplitIdentifier(nameTok.Value)
	p.s.Consume(token.EQUAL)
	p.s.Consume(token.LARR)
	elements := p.parseExpressionList()
	p.s.Consume(token.RARR)
	end := p.s.Consume(token.SEMI)
	return ast.NewTable(name, elements, loc.Merge(start.Loc, end.Loc))
}

// parseStmtList implements §4.4.6. If the current kind is LBRAC, parse a
// brace-delimited block; otherwise parse exactly one statement and wrap
// it, which is how single-statement bodies like `if (x) return y;` work.
func (p *Parser) parseStmtList() ast.Stmt {
	if p.curKind() == token.LBRAC {
		start := p.s.Advance()
		var stmts []ast.Stmt
		for p.curKind() != token.RBRAC {
			if p.curKind() == token.EOF {
				p.s.Consume(token.RBRAC)
			}
			stmts = append(stmts, p.parseStatementRecovering())
		}
		end := p.s.Advance()
		return ast.NewBlock(nil, stmts, loc.Merge(start.Loc, end.Loc))
	}
	s := p.parseStatementRecovering()
	return ast.NewBlock(nil, []ast.Stmt{s}, s.Loc())
}

// parseNamedId implements §4.5: require ID, and if followed by COLON,
// parse a type annotation bound at exprListRBP.
func (p *Parser) parseNamedId() ast.NamedId {
	idTok := p.s.Consume(token.ID)
	name := ast.SplitIdentifier(idTok.Value)
	if p.s.OptConsume(token.COLON) {
		typ := p.ParseExpression(exprListRBP)
		return &ast.TypedId{Ident: name, Type: typ, L: loc.Merge(idTok.Loc, typ.Loc())}
	}
	return &ast.SimpleId{Ident: name, L: idTok.Loc}
}

// parseNamedIdList implements §4.5: a comma-separated sequence of
// namedId. Callers only invoke this when the current token is ID.
func (p *Parser) parseNamedIdList() []ast.NamedId {
	ids := []ast.NamedId{p.parseNamedId()}
	for p.s.OptConsume(token.COMMA) {
		ids = append(ids, p.parseNamedId())
	}
	return ids
}

// moveToNextStatement implements the panic-mode synchronization of §4.6.
func (p *Parser) moveToNextStatement() {
	for {
		switch p.curKind() {
		case token.SEMI:
			p.s.Advance()
			return
		case token.EOF:
			return
		case token.FUN, token.VAL, token.IF, token.RET:
			return
		case token.RBRAC:
			p.s.Advance()
			return
		default:
			p.s.Advance()
		}
	}
}
