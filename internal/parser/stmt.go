package parser

import (
	"github.com/asthra-lang/asthra-frontend/internal/ast"
	"github.com/asthra-lang/asthra-frontend/internal/token"
)

// parseBlock parses `{ stmt* }`.
func (p *Parser) parseBlock() *ast.Block {
	start := p.current.Pos
	p.expect(token.LBrace, "expected '{' to open block")

	var stmts []ast.Node
	for !p.check(token.RBrace) && !p.isAtEnd() {
		if s := p.parseStatement(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RBrace, "expected '}' to close block")
	return ast.NewBlock(token.Span{Start: start, End: p.previous.Pos}, stmts)
}

// parseCondition parses an expression with struct-literal parsing suppressed,
// so `if Point { x: 1 }` reads as "if Point" followed by a block, never as a
// struct-literal condition.
func (p *Parser) parseCondition() ast.Node {
	prev := p.inConditionContext
	p.inConditionContext = true
	defer func() { p.inConditionContext = prev }()
	return p.parseExpression()
}

// parseStatement dispatches on the leading token; on a fatal error it
// synchronizes to the next statement boundary and returns nil.
func (p *Parser) parseStatement() (result ast.Node) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(declSyncSignal); ok {
				p.synchronizeStmt()
				result = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.check(token.Let):
		return p.parseLetStmt()
	case p.check(token.Return):
		return p.parseReturnStmt()
	case p.check(token.If):
		return p.parseIfOrIfLet()
	case p.check(token.For):
		return p.parseForStmt()
	case p.check(token.Match):
		return p.parseMatchStmt()
	case p.check(token.SpawnWithHandle):
		return p.parseSpawnWithHandleStmt()
	case p.check(token.Spawn):
		return p.parseSpawnStmt()
	case p.check(token.Break):
		return p.parseBreakStmt()
	case p.check(token.Continue):
		return p.parseContinueStmt()
	case p.check(token.Unsafe):
		return p.parseUnsafeStmt()
	default:
		return p.parseExprOrAssignmentStmt()
	}
}

func (p *Parser) parseLetStmt() ast.Node {
	start := p.current.Pos
	p.advance() // 'let'
	mutable := p.match(token.Mut)
	name := p.expectIdentName("expected variable name")
	p.expect(token.Colon, "expected ':' — a type annotation is required on 'let'")
	typ := p.parseType()

	var init ast.Node
	if p.match(token.Assign) {
		init = p.parseExpression()
	}
	p.expect(token.Semicolon, "expected ';' after 'let' statement")
	return ast.NewLetStmt(token.Span{Start: start, End: p.previous.Pos}, mutable, name, typ, init)
}

func (p *Parser) parseReturnStmt() ast.Node {
	start := p.current.Pos
	p.advance() // 'return'
	var value ast.Node
	if !p.check(token.Semicolon) {
		value = p.parseExpression()
	}
	p.expect(token.Semicolon, "expected ';' after 'return' statement")
	return ast.NewReturnStmt(token.Span{Start: start, End: p.previous.Pos}, value)
}

// parseIfOrIfLet dispatches between `if Expr Block ...` and
// `if let Pattern = Expr Block ...` by lookahead on 'let'.
func (p *Parser) parseIfOrIfLet() ast.Node {
	start := p.current.Pos
	p.advance() // 'if'

	if p.check(token.Let) {
		p.advance()
		pattern := p.parsePattern()
		p.expect(token.Assign, "expected '=' in 'if let'")
		value := p.parseCondition()
		then := p.parseBlock()
		var els *ast.Block
		if p.match(token.Else) {
			els = p.parseBlock()
		}
		return ast.NewIfLetStmt(token.Span{Start: start, End: p.previous.Pos}, pattern, value, then, els)
	}

	cond := p.parseCondition()
	then := p.parseBlock()

	var els ast.Node
	if p.match(token.Else) {
		if p.check(token.If) {
			els = p.parseIfOrIfLet()
		} else {
			els = p.parseBlock()
		}
	}
	return ast.NewIfStmt(token.Span{Start: start, End: p.previous.Pos}, cond, then, els)
}

func (p *Parser) parseForStmt() ast.Node {
	start := p.current.Pos
	p.advance() // 'for'
	binding := p.expectIdentName("expected loop variable name")
	p.expect(token.In, "expected 'in' after 'for' binding")
	iter := p.parseCondition()
	body := p.parseBlock()
	return ast.NewForStmt(token.Span{Start: start, End: p.previous.Pos}, binding, iter, body)
}

func (p *Parser) parseMatchStmt() ast.Node {
	start := p.current.Pos
	p.advance() // 'match'
	subject := p.parseCondition()
	p.expect(token.LBrace, "expected '{' to open match body")

	var arms []*ast.MatchArm
	for !p.check(token.RBrace) && !p.isAtEnd() {
		arms = append(arms, p.parseMatchArm())
	}
	p.expect(token.RBrace, "expected '}' to close match body")
	return ast.NewMatchStmt(token.Span{Start: start, End: p.previous.Pos}, subject, arms)
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	start := p.current.Pos
	pattern := p.parsePattern()
	p.expect(token.FatArrow, "expected '=>' after match pattern")
	body := p.parseBlock()
	p.match(token.Comma)
	return ast.NewMatchArm(token.Span{Start: start, End: p.previous.Pos}, pattern, body)
}

func (p *Parser) parseSpawnStmt() ast.Node {
	start := p.current.Pos
	p.advance() // 'spawn'
	call := p.parseExpression()
	p.expect(token.Semicolon, "expected ';' after 'spawn' statement")
	return ast.NewSpawnStmt(token.Span{Start: start, End: p.previous.Pos}, call)
}

func (p *Parser) parseSpawnWithHandleStmt() ast.Node {
	start := p.current.Pos
	p.advance() // 'spawn_with_handle'
	name := p.expectIdentName("expected handle name")
	p.expect(token.Assign, "expected '=' in 'spawn_with_handle'")
	call := p.parseExpression()
	p.expect(token.Semicolon, "expected ';' after 'spawn_with_handle' statement")
	return ast.NewSpawnWithHandleStmt(token.Span{Start: start, End: p.previous.Pos}, name, call)
}

func (p *Parser) parseBreakStmt() ast.Node {
	start := p.current.Pos
	p.advance()
	p.expect(token.Semicolon, "expected ';' after 'break'")
	return ast.NewBreakStmt(token.Span{Start: start, End: p.previous.Pos})
}

func (p *Parser) parseContinueStmt() ast.Node {
	start := p.current.Pos
	p.advance()
	p.expect(token.Semicolon, "expected ';' after 'continue'")
	return ast.NewContinueStmt(token.Span{Start: start, End: p.previous.Pos})
}

func (p *Parser) parseUnsafeStmt() ast.Node {
	start := p.current.Pos
	p.advance() // 'unsafe'
	body := p.parseBlock()
	return ast.NewUnsafeBlock(token.Span{Start: start, End: p.previous.Pos}, body)
}

// parseExprOrAssignmentStmt parses an expression statement or, when followed
// by '=', an assignment statement over that expression as the target place.
func (p *Parser) parseExprOrAssignmentStmt() ast.Node {
	start := p.current.Pos
	expr := p.parseExpression()

	if p.match(token.Assign) {
		value := p.parseExpression()
		p.expect(token.Semicolon, "expected ';' after assignment")
		return ast.NewAssignmentStmt(token.Span{Start: start, End: p.previous.Pos}, expr, value)
	}

	p.expect(token.Semicolon, "expected ';' after expression statement")
	return ast.NewExprStmt(token.Span{Start: start, End: p.previous.Pos}, expr)
}
