package parser

import (
	"github.com/asthra-lang/asthra-frontend/internal/ast"
	"github.com/asthra-lang/asthra-frontend/internal/token"
)

// parsePattern parses a match-arm or `if let`/`let`-destructuring pattern:
// wildcard, identifier, literal, tuple, struct, or enum. `::` between a type
// name and a variant is rejected; only `.` is accepted (spec.md §4.2.5).
func (p *Parser) parsePattern() ast.Node {
	start := p.current.Pos

	switch {
	case p.checkIdentNamed("_"):
		p.advance()
		return ast.NewWildcardPattern(token.Span{Start: start, End: p.previous.Pos})

	case p.check(token.Integer):
		v := p.current.IntValue
		p.advance()
		lit := ast.NewIntegerLiteral(token.Span{Start: start, End: p.previous.Pos}, v)
		return ast.NewLiteralPattern(token.Span{Start: start, End: p.previous.Pos}, lit)

	case p.check(token.True), p.check(token.False):
		v := p.check(token.True)
		p.advance()
		lit := ast.NewBoolLiteral(token.Span{Start: start, End: p.previous.Pos}, v)
		return ast.NewLiteralPattern(token.Span{Start: start, End: p.previous.Pos}, lit)

	case p.check(token.String):
		v := p.current.StringValue
		p.advance()
		lit := ast.NewStringLiteral(token.Span{Start: start, End: p.previous.Pos}, v)
		return ast.NewLiteralPattern(token.Span{Start: start, End: p.previous.Pos}, lit)

	case p.check(token.Char):
		v := p.current.CharValue
		p.advance()
		lit := ast.NewCharLiteral(token.Span{Start: start, End: p.previous.Pos}, v)
		return ast.NewLiteralPattern(token.Span{Start: start, End: p.previous.Pos}, lit)

	case p.check(token.LParen):
		return p.parseTuplePattern(start)

	case p.check(token.Ident):
		return p.parseIdentLedPattern(start)

	default:
		p.errorf("expected-pattern", "expected a pattern")
		panic(declSyncSignal{})
	}
}

func (p *Parser) parseTuplePattern(start token.Position) ast.Node {
	p.advance() // '('
	var elems []ast.Node
	elems = append(elems, p.parsePattern())
	for p.match(token.Comma) {
		elems = append(elems, p.parsePattern())
	}
	p.expect(token.RParen, "expected ')' to close tuple pattern")
	if len(elems) < 2 {
		p.diags.Errorf(start, "tuple-pattern-arity-one", "a tuple pattern requires two or more elements")
	}
	return ast.NewTuplePattern(token.Span{Start: start, End: p.previous.Pos}, elems)
}

// parseIdentLedPattern handles a bare binding name, a struct pattern
// (`Name { field: pattern, ... }`), or an enum pattern
// (`Name.Variant`, `Name.Variant(p, ...)`); `Name::Variant` is rejected.
func (p *Parser) parseIdentLedPattern(start token.Position) ast.Node {
	name := p.current.Name
	p.advance()

	switch {
	case p.check(token.ColonColon):
		p.diags.Errorf(p.current.Pos, "invalid-pattern-coloncolon", "Invalid postfix '::' usage; use '.' for enum variants")
		p.advance()
		p.expectIdentName("expected variant name after '::'")
		return ast.NewIdentifierPattern(token.Span{Start: start, End: p.previous.Pos}, name)

	case p.check(token.Dot):
		p.advance()
		variantName := p.expectIdentName("expected variant name after '.'")
		var elems []ast.Node
		if p.match(token.LParen) {
			elems = append(elems, p.parsePattern())
			for p.match(token.Comma) {
				elems = append(elems, p.parsePattern())
			}
			p.expect(token.RParen, "expected ')' to close enum pattern arguments")
		}
		return ast.NewEnumPattern(token.Span{Start: start, End: p.previous.Pos}, name, variantName, elems)

	case p.check(token.LBrace):
		p.advance()
		var fields []*ast.FieldPattern
		if !p.check(token.RBrace) {
			fields = append(fields, p.parseFieldPattern())
			for p.match(token.Comma) {
				if p.check(token.RBrace) {
					break
				}
				fields = append(fields, p.parseFieldPattern())
			}
		}
		p.expect(token.RBrace, "expected '}' to close struct pattern")
		return ast.NewStructPattern(token.Span{Start: start, End: p.previous.Pos}, name, fields)

	default:
		return ast.NewIdentifierPattern(token.Span{Start: start, End: p.previous.Pos}, name)
	}
}

func (p *Parser) parseFieldPattern() *ast.FieldPattern {
	start := p.current.Pos
	name := p.expectIdentName("expected field name")
	p.expect(token.Colon, "expected ':' after field name")
	pat := p.parsePattern()
	return ast.NewFieldPattern(token.Span{Start: start, End: p.previous.Pos}, name, pat)
}
