package parser

import (
	"github.com/asthra-lang/asthra-frontend/internal/ast"
	"github.com/asthra-lang/asthra-frontend/internal/token"
)

var builtinTypeNames = map[token.Kind]string{
	token.IntType:    "int",
	token.FloatType:  "float",
	token.BoolType:   "bool",
	token.StringType: "string",
	token.Usize:      "usize",
	token.Isize:      "isize",
	token.U8:         "u8",
	token.U16:        "u16",
	token.U32:        "u32",
	token.U64:        "u64",
	token.I8:         "i8",
	token.I16:        "i16",
	token.I32:        "i32",
	token.I64:        "i64",
	token.U128:       "u128",
	token.I128:       "i128",
	token.F32:        "f32",
	token.F64:        "f64",
}

// parseType parses a type in declared-type position (after `:` or `->`),
// where there is no IDENT-vs-comparison ambiguity: a `<` here always opens a
// type-argument list.
func (p *Parser) parseType() ast.Node {
	start := p.current.Pos

	if name, ok := builtinTypeNames[p.current.Kind]; ok {
		p.advance()
		return ast.NewBaseType(token.Span{Start: start, End: p.previous.Pos}, name)
	}

	switch p.current.Kind {
	case token.Void:
		p.advance()
		return ast.NewVoidType(token.Span{Start: start, End: p.previous.Pos})

	case token.LBracket:
		return p.parseSliceOrArrayType(start)

	case token.Star:
		return p.parsePtrType(start)

	case token.LParen:
		return p.parseTupleType(start)

	case token.ResultType:
		p.advance()
		p.expect(token.Lt, "expected '<' after 'Result'")
		ok := p.parseType()
		p.expect(token.Comma, "expected ',' between Result's Ok and Err types")
		errType := p.parseType()
		p.expect(token.Gt, "expected '>' to close Result<...>")
		return ast.NewResultType(token.Span{Start: start, End: p.previous.Pos}, ok, errType)

	case token.OptionType:
		p.advance()
		p.expect(token.Lt, "expected '<' after 'Option'")
		elem := p.parseType()
		p.expect(token.Gt, "expected '>' to close Option<...>")
		return ast.NewOptionType(token.Span{Start: start, End: p.previous.Pos}, elem)

	case token.TaskHandleType:
		p.advance()
		p.expect(token.Lt, "expected '<' after 'TaskHandle'")
		elem := p.parseType()
		p.expect(token.Gt, "expected '>' to close TaskHandle<...>")
		return ast.NewTaskHandleType(token.Span{Start: start, End: p.previous.Pos}, elem)

	case token.Ident:
		name := p.current.Name
		p.advance()
		var typeArgs []ast.Node
		if p.check(token.Lt) {
			p.advance()
			typeArgs = p.parseTypeArgList()
			p.expect(token.Gt, "expected '>' to close type-argument list")
		}
		return ast.NewStructType(token.Span{Start: start, End: p.previous.Pos}, name, typeArgs)

	default:
		p.errorf("expected-type", "expected a type")
		panic(declSyncSignal{})
	}
}

func (p *Parser) parseTypeArgList() []ast.Node {
	var args []ast.Node
	args = append(args, p.parseType())
	for p.match(token.Comma) {
		args = append(args, p.parseType())
	}
	return args
}

// parseSliceOrArrayType parses `[]Type` or `[size]Type`.
func (p *Parser) parseSliceOrArrayType(start token.Position) ast.Node {
	p.advance() // '['
	if p.check(token.RBracket) {
		p.advance()
		elem := p.parseType()
		return ast.NewSliceType(token.Span{Start: start, End: p.previous.Pos}, elem)
	}
	size := p.parseConstExpr()
	p.expect(token.RBracket, "expected ']' after array size")
	elem := p.parseType()
	return ast.NewArrayType(token.Span{Start: start, End: p.previous.Pos}, size, elem)
}

// parsePtrType parses `*const T` or `*mut T`.
func (p *Parser) parsePtrType(start token.Position) ast.Node {
	p.advance() // '*'
	var mutability ast.PtrMutability
	switch {
	case p.match(token.Const):
		mutability = ast.PtrConst
	case p.match(token.Mut):
		mutability = ast.PtrMut
	default:
		p.errorf("expected-ptr-mutability", "expected 'const' or 'mut' after '*' in a pointer type")
		panic(declSyncSignal{})
	}
	elem := p.parseType()
	return ast.NewPtrType(token.Span{Start: start, End: p.previous.Pos}, mutability, elem)
}

// parseTupleType parses `(T, T, ...)`, requiring at least two elements; a
// single parenthesized type is rejected as a malformed tuple since this
// position never means "grouping" the way an expression does.
func (p *Parser) parseTupleType(start token.Position) ast.Node {
	p.advance() // '('
	var elems []ast.Node
	elems = append(elems, p.parseType())
	for p.match(token.Comma) {
		elems = append(elems, p.parseType())
	}
	p.expect(token.RParen, "expected ')' to close tuple type")
	if len(elems) < 2 {
		p.diags.Errorf(start, "tuple-arity-one", "a tuple type requires two or more elements")
	}
	return ast.NewTupleType(token.Span{Start: start, End: p.previous.Pos}, elems)
}
