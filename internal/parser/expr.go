package parser

import (
	"github.com/asthra-lang/asthra-frontend/internal/ast"
	"github.com/asthra-lang/asthra-frontend/internal/diag"
	"github.com/asthra-lang/asthra-frontend/internal/token"
)

// parseExpression is the entry point for the full expression grammar,
// Pratt-style precedence climbing starting at the loosest level.
func (p *Parser) parseExpression() ast.Node {
	return p.parseBinary(PrecOr)
}

// parseBinary climbs the ten binary levels (PrecOr through PrecFactor) of the
// precedence ladder from precedence.go, left-associative at every level.
func (p *Parser) parseBinary(min Precedence) ast.Node {
	left := p.parseUnary()

	for {
		prec := precedenceOf(p.current.Kind)
		if prec < min || prec == PrecNone {
			return left
		}
		op := p.current.Kind
		start := left.Pos()
		p.advance()
		right := p.parseBinary(prec + 1)
		left = ast.NewBinaryExpr(token.Span{Start: start, End: p.previous.Pos}, op, left, right)
	}
}

// parseUnary handles the prefix operators `- ! ~ * &` and `sizeof(Type)`.
func (p *Parser) parseUnary() ast.Node {
	start := p.current.Pos
	switch p.current.Kind {
	case token.Minus, token.Bang, token.Tilde, token.Star, token.Amp:
		op := p.current.Kind
		p.advance()
		operand := p.parseUnary()
		return ast.NewUnaryExpr(token.Span{Start: start, End: p.previous.Pos}, op, operand)

	case token.Sizeof:
		p.advance()
		p.expect(token.LParen, "expected '(' after 'sizeof'")
		typ := p.parseType()
		p.expect(token.RParen, "expected ')' to close 'sizeof'")
		return ast.NewSizeofExpr(token.Span{Start: start, End: p.previous.Pos}, typ)

	default:
		return p.parsePostfix()
	}
}

// parsePostfix handles call, index, slice, field access and `.len`, left to
// right. A `::` here is reported as invalid; associated-function calls are
// parsed in parseIdentLed and `await` in parsePrimary.
func (p *Parser) parsePostfix() ast.Node {
	expr := p.parsePrimary()

	for {
		start := expr.Pos()
		switch {
		case p.check(token.LParen):
			p.advance()
			args := p.parseArgList()
			p.expect(token.RParen, "expected ')' to close call arguments")
			expr = ast.NewCallExpr(token.Span{Start: start, End: p.previous.Pos}, expr, args)

		case p.check(token.Dot):
			p.advance()
			if p.checkIdentNamed("len") {
				p.advance()
				expr = ast.NewSliceLengthAccessExpr(token.Span{Start: start, End: p.previous.Pos}, expr)
				continue
			}
			field := p.expectIdentName("expected field name after '.'")
			expr = ast.NewFieldAccessExpr(token.Span{Start: start, End: p.previous.Pos}, expr, field)

		case p.check(token.ColonColon):
			p.diags.Errorf(p.current.Pos, "invalid-postfix-coloncolon", "Invalid postfix '::' usage; use '.' for enum variants")
			p.advance()
			p.expectIdentName("expected identifier after '::'")

		case p.check(token.LBracket):
			expr = p.parseIndexOrSlice(expr, start)

		default:
			return expr
		}
	}
}

func (p *Parser) parseArgList() []ast.Node {
	var args []ast.Node
	if p.check(token.RParen) {
		return args
	}
	args = append(args, p.parseExpression())
	for p.match(token.Comma) {
		args = append(args, p.parseExpression())
	}
	return args
}

func (p *Parser) parseIndexOrSlice(target ast.Node, start token.Position) ast.Node {
	p.advance() // '['

	var low ast.Node
	if !p.check(token.Colon) {
		low = p.parseExpression()
	}
	if p.match(token.Colon) {
		var high ast.Node
		if !p.check(token.RBracket) {
			high = p.parseExpression()
		}
		p.expect(token.RBracket, "expected ']' to close slice expression")
		return ast.NewSliceExpr(token.Span{Start: start, End: p.previous.Pos}, target, low, high)
	}
	p.expect(token.RBracket, "expected ']' to close index expression")
	return ast.NewIndexAccessExpr(token.Span{Start: start, End: p.previous.Pos}, target, low)
}

// parsePrimary handles literals, identifiers (with the generic-argument
// backtracking attempt, associated-function calls, and enum-constructor
// heuristic), parenthesized grouping/tuple literals, array literals, and
// `unsafe{}` as an expression.
func (p *Parser) parsePrimary() ast.Node {
	start := p.current.Pos

	switch p.current.Kind {
	case token.Integer:
		v := p.current.IntValue
		p.advance()
		return ast.NewIntegerLiteral(token.Span{Start: start, End: p.previous.Pos}, v)

	case token.Float:
		v := p.current.FloatValue
		p.advance()
		return ast.NewFloatLiteral(token.Span{Start: start, End: p.previous.Pos}, v)

	case token.String:
		v := p.current.StringValue
		p.advance()
		return ast.NewStringLiteral(token.Span{Start: start, End: p.previous.Pos}, v)

	case token.Char:
		v := p.current.CharValue
		p.advance()
		return ast.NewCharLiteral(token.Span{Start: start, End: p.previous.Pos}, v)

	case token.True:
		p.advance()
		return ast.NewBoolLiteral(token.Span{Start: start, End: p.previous.Pos}, true)

	case token.False:
		p.advance()
		return ast.NewBoolLiteral(token.Span{Start: start, End: p.previous.Pos}, false)

	case token.Unsafe:
		p.advance()
		body := p.parseBlock()
		return ast.NewUnsafeBlock(token.Span{Start: start, End: p.previous.Pos}, body)

	case token.Await:
		p.advance()
		operand := p.parsePostfix()
		return ast.NewAwaitExpr(token.Span{Start: start, End: p.previous.Pos}, operand)

	case token.LBracket:
		return p.parseArrayLiteral(start)

	case token.LParen:
		return p.parseParenOrTuple(start)

	case token.Ident:
		return p.parseIdentLed(start)

	default:
		p.errorf("expected-expression", "expected an expression")
		panic(declSyncSignal{})
	}
}

// parseIdentLed parses every primary-expression form that begins with an
// identifier: a bare reference, a struct literal, an associated-function
// call (`Type::fn(...)`), an enum-constructor reference (`Type.Variant`,
// the uppercase heuristic from spec.md §4.2.5, §9), or a generic-typed
// reference (`Type<Args>.Variant(...)`) resolved via bounded backtracking.
func (p *Parser) parseIdentLed(start token.Position) ast.Node {
	name := p.current.Name
	p.advance()

	if p.check(token.Lt) {
		if variant, ok := p.tryParseGenericEnumConstructor(start, name); ok {
			return variant
		}
	}

	switch {
	case p.check(token.ColonColon) && p.peek().Kind == token.Ident:
		p.advance() // '::'
		funcName := p.current.Name
		nextAfterName := p.peek()
		if nextAfterName.Kind != token.LParen {
			p.diags.Errorf(start, "invalid-postfix-coloncolon", "Invalid postfix '::' usage; use '.' for enum variants")
			p.advance() // the identifier following '::'
			return ast.NewIdentifierExpr(token.Span{Start: start, End: p.previous.Pos}, name)
		}
		p.advance() // the function-name identifier
		p.advance() // '('
		args := p.parseArgList()
		p.expect(token.RParen, "expected ')' to close call arguments")
		return ast.NewAssociatedFuncCallExpr(token.Span{Start: start, End: p.previous.Pos}, name, funcName, args)

	case p.check(token.ColonColon):
		p.diags.Errorf(start, "invalid-postfix-coloncolon", "Invalid postfix '::' usage; use '.' for enum variants")
		p.advance()
		return ast.NewIdentifierExpr(token.Span{Start: start, End: p.previous.Pos}, name)

	case p.check(token.Dot) && p.peek().Kind == token.Ident && isUpperFirst(p.peek().Name):
		p.advance() // '.'
		variantName := p.current.Name
		p.advance()
		var args []ast.Node
		if p.match(token.LParen) {
			args = p.parseArgList()
			p.expect(token.RParen, "expected ')' to close variant arguments")
		}
		return ast.NewEnumVariantExpr(token.Span{Start: start, End: p.previous.Pos}, name, variantName, args)

	case p.check(token.LBrace) && p.structLiteralAllowedHere():
		return p.parseStructLiteral(start, name)

	default:
		return ast.NewIdentifierExpr(token.Span{Start: start, End: p.previous.Pos}, name)
	}
}

// tryParseGenericEnumConstructor attempts `IDENT < TypeArgs > . Variant(...)`
// — the one place this parser backtracks (spec.md §4.2.5, §9). On failure it
// restores the pre-attempt position and returns ok=false so the caller falls
// through to treating '<' as the less-than operator.
func (p *Parser) tryParseGenericEnumConstructor(start token.Position, typeName string) (ast.Node, bool) {
	cp := p.mark()

	// Diagnostics raised while probing go to a scratch sink: dropped if the
	// attempt fails, replayed into the real sink if it succeeds.
	realDiags := p.diags
	p.diags = diag.NewSink(false, 0)

	ok := func() (result bool) {
		defer func() {
			if r := recover(); r != nil {
				if _, isSync := r.(declSyncSignal); isSync {
					result = false
					return
				}
				panic(r)
			}
		}()
		p.advance() // '<'
		p.parseTypeArgList()
		if !p.check(token.Gt) {
			return false
		}
		p.advance() // '>'
		if !p.check(token.Dot) {
			return false
		}
		p.advance()
		if !p.check(token.Ident) || !isUpperFirst(p.current.Name) {
			return false
		}
		return true
	}()

	probeDiags := p.diags.Diagnostics()
	p.diags = realDiags
	if !ok {
		p.reset(cp)
		return nil, false
	}
	for _, d := range probeDiags {
		p.diags.Report(d)
	}

	variantName := p.current.Name
	p.advance()
	var args []ast.Node
	if p.match(token.LParen) {
		args = p.parseArgList()
		p.expect(token.RParen, "expected ')' to close variant arguments")
	}
	return ast.NewEnumVariantExpr(token.Span{Start: start, End: p.previous.Pos}, typeName, variantName, args), true
}

// structLiteralAllowedHere guards against misreading the condition block of
// `if`, `if let`, `for`, and `match` as a struct literal, matching the
// teacher's own disambiguation of brace-led blocks in conditions.
func (p *Parser) structLiteralAllowedHere() bool {
	return !p.inConditionContext
}

func (p *Parser) parseStructLiteral(start token.Position, typeName string) ast.Node {
	p.advance() // '{'
	var fields []*ast.StructLiteralField
	if !p.check(token.RBrace) {
		fields = append(fields, p.parseStructLiteralField())
		for p.match(token.Comma) {
			if p.check(token.RBrace) {
				break
			}
			fields = append(fields, p.parseStructLiteralField())
		}
	}
	p.expect(token.RBrace, "expected '}' to close struct literal")
	return ast.NewStructLiteralExpr(token.Span{Start: start, End: p.previous.Pos}, typeName, fields)
}

func (p *Parser) parseStructLiteralField() *ast.StructLiteralField {
	start := p.current.Pos
	name := p.expectIdentName("expected field name")
	p.expect(token.Colon, "expected ':' after struct literal field name")
	value := p.parseExpression()
	return ast.NewStructLiteralField(token.Span{Start: start, End: p.previous.Pos}, name, value)
}

// parseParenOrTuple disambiguates `(Expr)` grouping from `(e, e, ...)` tuple
// literals and `()` unit by element count.
func (p *Parser) parseParenOrTuple(start token.Position) ast.Node {
	p.advance() // '('
	if p.check(token.RParen) {
		p.advance()
		return ast.NewUnitLiteral(token.Span{Start: start, End: p.previous.Pos})
	}

	first := p.parseExpression()
	if !p.check(token.Comma) {
		p.expect(token.RParen, "expected ')' to close grouped expression")
		return first
	}

	elems := []ast.Node{first}
	for p.match(token.Comma) {
		if p.check(token.RParen) {
			break
		}
		elems = append(elems, p.parseExpression())
	}
	p.expect(token.RParen, "expected ')' to close tuple literal")
	if len(elems) < 2 {
		p.diags.Errorf(start, "tuple-literal-arity-one", "a tuple literal requires two or more elements")
	}
	return ast.NewTupleLiteralExpr(token.Span{Start: start, End: p.previous.Pos}, elems)
}

// parseArrayLiteral covers the three surface forms: `[none]`,
// `[e, e, ...]`, and `[value ; count]`.
func (p *Parser) parseArrayLiteral(start token.Position) ast.Node {
	p.advance() // '['

	if p.check(token.None) {
		p.advance()
		p.expect(token.RBracket, "expected ']' after 'none'")
		return ast.NewArrayLiteralEmpty(token.Span{Start: start, End: p.previous.Pos})
	}

	first := p.parseExpression()

	if p.match(token.Semicolon) {
		count := p.parseConstExpr()
		p.expect(token.RBracket, "expected ']' to close repeated array literal")
		return ast.NewArrayLiteralRepeated(token.Span{Start: start, End: p.previous.Pos}, first, count)
	}

	elems := []ast.Node{first}
	for p.match(token.Comma) {
		if p.check(token.RBracket) {
			break
		}
		elems = append(elems, p.parseExpression())
	}
	p.expect(token.RBracket, "expected ']' to close array literal")
	return ast.NewArrayLiteralElements(token.Span{Start: start, End: p.previous.Pos}, elems)
}

// parseConstExpr parses the restricted const-expression grammar: literals,
// identifiers, sizeof(Type), and +-*/% with unary -/~ over the same,
// required in array sizes and const declarations (spec.md §4.2.1, §4.2.5).
func (p *Parser) parseConstExpr() ast.Node {
	start := p.current.Pos
	inner := p.parseConstBinary(PrecTerm)
	return ast.NewConstExpr(token.Span{Start: start, End: p.previous.Pos}, inner)
}

func (p *Parser) parseConstBinary(min Precedence) ast.Node {
	left := p.parseConstUnary()
	for {
		prec := precedenceOf(p.current.Kind)
		if prec < min || prec == PrecNone || prec > PrecFactor {
			return left
		}
		op := p.current.Kind
		start := left.Pos()
		p.advance()
		right := p.parseConstBinary(prec + 1)
		left = ast.NewBinaryExpr(token.Span{Start: start, End: p.previous.Pos}, op, left, right)
	}
}

func (p *Parser) parseConstUnary() ast.Node {
	start := p.current.Pos
	switch p.current.Kind {
	case token.Minus, token.Tilde:
		op := p.current.Kind
		p.advance()
		operand := p.parseConstUnary()
		return ast.NewUnaryExpr(token.Span{Start: start, End: p.previous.Pos}, op, operand)

	case token.Sizeof:
		p.advance()
		p.expect(token.LParen, "expected '(' after 'sizeof'")
		typ := p.parseType()
		p.expect(token.RParen, "expected ')' to close 'sizeof'")
		return ast.NewSizeofExpr(token.Span{Start: start, End: p.previous.Pos}, typ)

	case token.Integer:
		v := p.current.IntValue
		p.advance()
		return ast.NewIntegerLiteral(token.Span{Start: start, End: p.previous.Pos}, v)

	case token.Float:
		v := p.current.FloatValue
		p.advance()
		return ast.NewFloatLiteral(token.Span{Start: start, End: p.previous.Pos}, v)

	case token.Ident:
		name := p.current.Name
		p.advance()
		return ast.NewIdentifierExpr(token.Span{Start: start, End: p.previous.Pos}, name)

	case token.LParen:
		p.advance()
		inner := p.parseConstBinary(PrecTerm)
		p.expect(token.RParen, "expected ')' to close parenthesized const expression")
		return inner

	default:
		p.errorf("expected-const-expression", "expected a constant expression")
		panic(declSyncSignal{})
	}
}
