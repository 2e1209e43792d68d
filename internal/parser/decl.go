package parser

import (
	"unicode"

	"github.com/asthra-lang/asthra-frontend/internal/ast"
	"github.com/asthra-lang/asthra-frontend/internal/token"
)

// parseAnnotations consumes zero or more `#[name]` / `#[name(arg, ...)]`
// entries preceding a declaration.
func (p *Parser) parseAnnotations() []*ast.Annotation {
	var out []*ast.Annotation
	for p.check(token.Hash) {
		out = append(out, p.parseAnnotation())
	}
	return out
}

func (p *Parser) parseAnnotation() *ast.Annotation {
	start := p.current.Pos
	p.advance() // '#'
	p.expect(token.LBracket, "expected '[' after '#'")
	name := p.expectIdentName("expected annotation name")

	var args []string
	if p.match(token.LParen) {
		if !p.check(token.RParen) {
			args = append(args, p.expectIdentName("expected annotation argument"))
			for p.match(token.Comma) {
				args = append(args, p.expectIdentName("expected annotation argument"))
			}
		}
		p.expect(token.RParen, "expected ')' to close annotation arguments")
	}
	p.expect(token.RBracket, "expected ']' to close annotation")

	return ast.NewAnnotation(token.Span{Start: start, End: p.previous.Pos}, name, args)
}

// parseTypeParams parses an optional `<T, U, ...>` type-parameter list on a
// struct or enum declaration, returning nil when absent.
func (p *Parser) parseTypeParams() []string {
	if !p.check(token.Lt) {
		return nil
	}
	p.advance()
	var names []string
	names = append(names, p.expectIdentName("expected type parameter name"))
	for p.match(token.Comma) {
		names = append(names, p.expectIdentName("expected type parameter name"))
	}
	p.expect(token.Gt, "expected '>' to close type-parameter list")
	return names
}

// parseParams parses a function/method parameter list body (without the
// enclosing parens), handling the `none` absence marker. mut on a parameter
// is a fatal constraint error.
func (p *Parser) parseParams() ([]*ast.ParamDecl, *ast.NoneMarker) {
	if p.check(token.None) {
		start := p.current.Pos
		p.advance()
		return nil, ast.NewNoneMarker(token.Span{Start: start, End: p.previous.Pos})
	}

	var params []*ast.ParamDecl
	params = append(params, p.parseOneParam())
	for p.match(token.Comma) {
		params = append(params, p.parseOneParam())
	}
	return params, nil
}

func (p *Parser) parseOneParam() *ast.ParamDecl {
	start := p.current.Pos
	if p.check(token.Mut) {
		p.diags.Errorf(p.current.Pos, "mut-param-rejected", "parameters are never mutable; remove 'mut'")
		p.advance()
	}
	name := p.expectIdentName("expected parameter name")
	p.expect(token.Colon, "expected ':' before parameter type")
	ownership := p.tryParseOwnershipAnnotation()
	typ := p.parseType()
	param := ast.NewParamDecl(token.Span{Start: start, End: p.previous.Pos}, name, typ)
	param.Ownership = ownership
	return param
}

var ownershipKeywords = map[string]ast.OwnershipTransfer{
	"transfer_full": ast.TransferFull,
	"transfer_none": ast.TransferNone,
	"borrowed":      ast.TransferBorrowed,
}

// tryParseOwnershipAnnotation parses a leading `transfer_full`/`transfer_none`
// /`borrowed` bare-identifier marker. It is tried before every parameter
// type (functions, methods and externs alike) and before an extern return
// type. It is not a `#[...]` annotation; it precedes the type it tags directly.
func (p *Parser) tryParseOwnershipAnnotation() *ast.OwnershipAnnotation {
	if p.current.Kind != token.Ident {
		return nil
	}
	transfer, ok := ownershipKeywords[p.current.Name]
	if !ok {
		return nil
	}
	start := p.current.Pos
	p.advance()

	if p.current.Kind == token.Ident {
		if _, conflict := ownershipKeywords[p.current.Name]; conflict {
			p.diags.Errorf(p.current.Pos, "conflicting-ownership-annotation", "a parameter or return type may carry only one ownership transfer annotation")
		}
	}

	return ast.NewOwnershipAnnotation(token.Span{Start: start, End: p.previous.Pos}, transfer)
}

// parseFunctionDecl parses `fn IDENT ( params ) -> Type Block`.
func (p *Parser) parseFunctionDecl(annotations []*ast.Annotation, vis ast.Visibility) *ast.FunctionDecl {
	start := p.current.Pos
	p.advance() // 'fn'
	name := p.expectIdentName("expected function name")
	p.expect(token.LParen, "expected '(' after function name")
	params, noneMarker := p.parseParams()
	p.expect(token.RParen, "expected ')' to close parameter list")
	p.expect(token.Arrow, "expected '->' before return type")
	ret := p.parseType()
	body := p.parseBlock()

	decl := ast.NewFunctionDecl(token.Span{Start: start, End: p.previous.Pos}, vis, name, params, ret, body)
	decl.Annotations.Annotations = annotations
	decl.NoneMarker = noneMarker
	return decl
}

// parseImplBlock parses `impl TypeName { methods }`.
func (p *Parser) parseImplBlock(annotations []*ast.Annotation) *ast.ImplBlock {
	start := p.current.Pos
	p.advance() // 'impl'
	typeName := p.expectIdentName("expected type name after 'impl'")
	p.expect(token.LBrace, "expected '{' to open impl body")

	var methods []*ast.MethodDecl
	for !p.check(token.RBrace) && !p.isAtEnd() {
		methods = append(methods, p.parseMethodDecl())
	}
	p.expect(token.RBrace, "expected '}' to close impl body")

	decl := ast.NewImplBlock(token.Span{Start: start, End: p.previous.Pos}, typeName, methods)
	decl.Annotations.Annotations = annotations
	return decl
}

// parseMethodDecl parses a method inside an impl block. The first parameter
// may be the bare identifier `self`, making it an instance method; `mut
// self` is a fatal error.
func (p *Parser) parseMethodDecl() *ast.MethodDecl {
	annotations := p.parseAnnotations()
	start := p.current.Pos
	vis := p.parseVisibility()
	p.expect(token.Fn, "expected 'fn'")
	name := p.expectIdentName("expected method name")
	p.expect(token.LParen, "expected '(' after method name")

	isInstance := false
	var params []*ast.ParamDecl
	var noneMarker *ast.NoneMarker
	if p.check(token.Mut) && p.peek().Kind == token.SelfKw {
		p.diags.Errorf(p.current.Pos, "mut-self-rejected", "'self' is never 'mut self'")
		p.advance() // mut
		p.advance() // self
		isInstance = true
		if p.match(token.Comma) {
			params, noneMarker = p.parseParams()
		}
	} else if p.check(token.SelfKw) {
		p.advance()
		isInstance = true
		if p.match(token.Comma) {
			params, noneMarker = p.parseParams()
		}
	} else {
		params, noneMarker = p.parseParams()
	}

	p.expect(token.RParen, "expected ')' to close parameter list")
	p.expect(token.Arrow, "expected '->' before return type")
	ret := p.parseType()
	body := p.parseBlock()

	decl := ast.NewMethodDecl(token.Span{Start: start, End: p.previous.Pos}, vis, name, isInstance, params, ret, body)
	decl.Annotations.Annotations = annotations
	decl.NoneMarker = noneMarker
	return decl
}

// parseStructDecl parses `struct IDENT TypeParams? { fields }`.
func (p *Parser) parseStructDecl(annotations []*ast.Annotation, vis ast.Visibility) *ast.StructDecl {
	start := p.current.Pos
	p.advance() // 'struct'
	name := p.expectIdentName("expected struct name")
	typeParams := p.parseTypeParams()
	p.expect(token.LBrace, "expected '{' to open struct body")

	var fields []*ast.StructField
	var noneMarker *ast.NoneMarker
	switch {
	case p.check(token.None):
		noneStart := p.current.Pos
		p.advance()
		noneMarker = ast.NewNoneMarker(token.Span{Start: noneStart, End: p.previous.Pos})
	case p.check(token.RBrace):
		p.diags.Errorf(start, "empty-struct-without-none", "an empty struct body must use the 'none' marker")
	default:
		fields = append(fields, p.parseStructField())
		for p.match(token.Comma) {
			if p.check(token.RBrace) {
				break
			}
			fields = append(fields, p.parseStructField())
		}
	}
	p.expect(token.RBrace, "expected '}' to close struct body")

	decl := ast.NewStructDecl(token.Span{Start: start, End: p.previous.Pos}, vis, name, typeParams, fields)
	decl.Annotations.Annotations = annotations
	decl.NoneMarker = noneMarker
	return decl
}

func (p *Parser) parseStructField() *ast.StructField {
	start := p.current.Pos
	vis := ast.VisibilityUnset
	if p.check(token.Pub) {
		vis = ast.VisibilityPub
		p.advance()
	} else if p.check(token.Priv) {
		vis = ast.VisibilityPriv
		p.advance()
	}
	if p.check(token.Mut) {
		p.diags.Errorf(p.current.Pos, "mut-field-rejected", "struct fields are never mutable")
		p.advance()
	}
	name := p.expectIdentName("expected field name")
	p.expect(token.Colon, "expected ':' before field type")
	typ := p.parseType()
	return ast.NewStructField(token.Span{Start: start, End: p.previous.Pos}, vis, name, typ)
}

// parseEnumDecl parses `enum IDENT TypeParams? { variants }`.
func (p *Parser) parseEnumDecl(annotations []*ast.Annotation, vis ast.Visibility) *ast.EnumDecl {
	start := p.current.Pos
	p.advance() // 'enum'
	name := p.expectIdentName("expected enum name")
	typeParams := p.parseTypeParams()
	p.expect(token.LBrace, "expected '{' to open enum body")

	var variants []*ast.EnumVariantDecl
	var noneMarker *ast.NoneMarker
	switch {
	case p.check(token.None):
		noneStart := p.current.Pos
		p.advance()
		noneMarker = ast.NewNoneMarker(token.Span{Start: noneStart, End: p.previous.Pos})
	case p.check(token.RBrace):
		p.diags.Errorf(start, "empty-enum-without-none", "an empty enum body must use the 'none' marker")
	default:
		variants = append(variants, p.parseEnumVariant())
		for p.match(token.Comma) {
			if p.check(token.RBrace) {
				break
			}
			variants = append(variants, p.parseEnumVariant())
		}
	}
	p.expect(token.RBrace, "expected '}' to close enum body")

	decl := ast.NewEnumDecl(token.Span{Start: start, End: p.previous.Pos}, vis, name, typeParams, variants)
	decl.Annotations.Annotations = annotations
	decl.NoneMarker = noneMarker
	return decl
}

func (p *Parser) parseEnumVariant() *ast.EnumVariantDecl {
	start := p.current.Pos
	name := p.expectIdentName("expected variant name")
	var types []ast.Node
	if p.match(token.LParen) {
		types = append(types, p.parseType())
		for p.match(token.Comma) {
			types = append(types, p.parseType())
		}
		p.expect(token.RParen, "expected ')' to close variant payload")
	}
	return ast.NewEnumVariantDecl(token.Span{Start: start, End: p.previous.Pos}, name, types)
}

// parseExternDecl parses `extern ("LIB")? fn IDENT ( params ) -> Type ;`.
func (p *Parser) parseExternDecl(annotations []*ast.Annotation, vis ast.Visibility) *ast.ExternDecl {
	start := p.current.Pos
	p.advance() // 'extern'

	var library string
	if p.check(token.String) {
		library = p.current.StringValue
		p.advance()
	}

	p.expect(token.Fn, "expected 'fn' in extern declaration")
	name := p.expectIdentName("expected extern function name")
	p.expect(token.LParen, "expected '(' after extern function name")
	params, noneMarker := p.parseExternParams()
	p.expect(token.RParen, "expected ')' to close parameter list")
	p.expect(token.Arrow, "expected '->' before return type")
	retOwnership := p.tryParseOwnershipAnnotation()
	ret := p.parseType()
	p.expect(token.Semicolon, "expected ';' after extern declaration")

	decl := ast.NewExternDecl(token.Span{Start: start, End: p.previous.Pos}, vis, library, name, params, ret)
	decl.ReturnOwnership = retOwnership
	decl.Annotations.Annotations = annotations
	decl.NoneMarker = noneMarker
	return decl
}

func (p *Parser) parseExternParams() ([]*ast.ParamDecl, *ast.NoneMarker) {
	if p.check(token.None) {
		start := p.current.Pos
		p.advance()
		return nil, ast.NewNoneMarker(token.Span{Start: start, End: p.previous.Pos})
	}
	var params []*ast.ParamDecl
	params = append(params, p.parseOneParam())
	for p.match(token.Comma) {
		params = append(params, p.parseOneParam())
	}
	return params, nil
}

// parseConstDecl parses `const IDENT : Type = Expr ;` using the restricted
// const-expression grammar.
func (p *Parser) parseConstDecl(annotations []*ast.Annotation, vis ast.Visibility) *ast.ConstDecl {
	start := p.current.Pos
	p.advance() // 'const'
	name := p.expectIdentName("expected const name")
	p.expect(token.Colon, "expected ':' before const type annotation")
	typ := p.parseType()
	p.expect(token.Assign, "expected '=' in const declaration")
	value := p.parseConstExpr()
	p.expect(token.Semicolon, "expected ';' after const declaration")

	decl := ast.NewConstDecl(token.Span{Start: start, End: p.previous.Pos}, vis, name, typ, value)
	decl.Annotations.Annotations = annotations
	return decl
}

// isUpperFirst reports whether s begins with an uppercase ASCII letter, the
// heuristic that disambiguates enum-constructor `.` from field access
// (spec.md §4.2.5, §9): downstream semantic analysis must still confirm that
// a chosen enum-constructor path actually names an enum.
func isUpperFirst(s string) bool {
	if s == "" {
		return false
	}
	r := rune(s[0])
	return unicode.IsUpper(r) && r <= unicode.MaxASCII
}
