// Package parser implements a recursive-descent parser with Pratt-style
// precedence climbing for expressions, consuming tokens from a lexer and
// building an AST. The only backtracking it performs is the bounded,
// explicit-checkpoint attempt to read a generic type-argument list
// (spec.md §4.2.5, §9); every other ambiguity is resolved by local
// lookahead or a fixed heuristic.
package parser

import (
	"fmt"

	"github.com/asthra-lang/asthra-frontend/internal/ast"
	"github.com/asthra-lang/asthra-frontend/internal/diag"
	"github.com/asthra-lang/asthra-frontend/internal/lexer"
	"github.com/asthra-lang/asthra-frontend/internal/token"
)

// Parser converts a token stream into an AST, recording structured
// diagnostics along the way instead of returning a Go error per call.
type Parser struct {
	lex *lexer.Lexer

	current  token.Token
	peeked   *token.Token // non-nil when a lookahead token has been buffered
	previous token.Token

	diags *diag.Sink

	// Strict mirrors diag.Sink.Strict for callers that only have a Parser
	// handle. The parser itself never reads it: strict unwinding comes from
	// the sink, whose Report panics with diag.StopParsing.
	Strict bool

	// inConditionContext is true while parsing the condition expression of
	// if/if-let/for/match, where a leading `{` must close the condition
	// rather than open a struct literal.
	inConditionContext bool
}

// New creates a Parser reading from lex, reporting into diags.
func New(lex *lexer.Lexer, diags *diag.Sink) *Parser {
	p := &Parser{lex: lex, diags: diags, Strict: diags.Strict}
	p.advance()
	return p
}

// ParseProgram parses a complete source file: a package declaration, then
// imports, then top-level declarations until EOF (spec.md §4.2.1). It always
// returns a non-nil *ast.Program; on error the program is partial and the
// diagnostics sink holds at least one diagnostic.
func (p *Parser) ParseProgram() (prog *ast.Program, err error) {
	start := p.current.Pos
	var pkg *ast.PackageDecl
	var imports []*ast.ImportDecl
	var decls []ast.Node

	defer func() {
		if r := recover(); r != nil {
			switch sig := r.(type) {
			case diag.StopParsing:
				err = sig
			case declSyncSignal:
				// A malformed package or import line; its diagnostic is recorded.
			default:
				panic(r)
			}
			prog = ast.NewProgram(token.Span{Start: start, End: p.previous.Pos}, pkg, imports, decls)
		}
	}()

	pkg = p.parsePackageDecl()

	for p.check(token.Import) {
		imports = append(imports, p.parseImportDecl())
	}

	for !p.isAtEnd() {
		if d := p.parseTopLevelDecl(); d != nil {
			decls = append(decls, d)
		}
	}

	end := p.previous.Pos
	return ast.NewProgram(token.Span{Start: start, End: end}, pkg, imports, decls), nil
}

// parsePackageDecl parses `package IDENT ;`.
func (p *Parser) parsePackageDecl() *ast.PackageDecl {
	start := p.current.Pos
	p.expect(token.Package, "expected 'package'")
	name := p.expectIdentName("expected package name")
	p.expect(token.Semicolon, "expected ';'")
	return ast.NewPackageDecl(token.Span{Start: start, End: p.previous.Pos}, name)
}

// parseImportDecl parses `import STRING (as IDENT)? ;` and validates the
// path shape per spec.md §4.2.1.
func (p *Parser) parseImportDecl() *ast.ImportDecl {
	start := p.current.Pos
	p.advance() // 'import'

	if !p.check(token.String) {
		p.errorf("expected-import-path", "expected import path (string literal)")
		p.synchronizeStmt()
		return ast.NewImportDecl(token.Span{Start: start, End: p.previous.Pos}, "", "")
	}
	path := p.current.StringValue
	pathPos := p.current.Pos
	p.advance()

	var alias string
	if p.check(token.As) {
		p.advance()
		alias = p.expectIdentName("expected alias name after 'as'")
	}
	p.expect(token.Semicolon, "expected ';'")

	p.validateImportPath(path, pathPos)

	return ast.NewImportDecl(token.Span{Start: start, End: p.previous.Pos}, path, alias)
}

func (p *Parser) validateImportPath(path string, pos token.Position) {
	if path == "" {
		p.diags.Errorf(pos, "invalid-import-path:empty", "import path must not be empty")
		return
	}
	for _, r := range path {
		if r == ' ' || r == '\t' || r == '\n' {
			p.diags.Errorf(pos, "invalid-import-path:whitespace", "import path %q must not contain whitespace", path)
			return
		}
	}
	if hasPrefix(path, "internal/") || containsSegment(path, "internal") {
		p.diags.Errorf(pos, "invalid-import-path:internal-access-denied", "import path %q denies access to an internal/ package", path)
		return
	}
	if hasPrefix(path, "stdlib/") || hasPrefix(path, "./") || hasPrefix(path, "../") {
		return
	}
	if isQualifiedImportPath(path) {
		return
	}
	p.diags.Errorf(pos, "invalid-import-path:malformed", "import path %q matches no recognised form", path)
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func containsSegment(path, segment string) bool {
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			if path[start:i] == segment {
				return true
			}
			start = i + 1
		}
	}
	return false
}

// isQualifiedImportPath reports whether path looks like `host/user/repo/...`
// — at least three non-empty slash-separated segments.
func isQualifiedImportPath(path string) bool {
	segments := 0
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			if i > start {
				segments++
			} else if i < len(path) {
				return false // empty segment (e.g. leading or doubled slash)
			}
			start = i + 1
		}
	}
	return segments >= 3
}

// parseTopLevelDecl parses one of fn/struct/enum/extern/const/impl, each
// requiring an explicit visibility modifier except impl. On a fatal error it
// synchronizes to the next declaration boundary and returns nil.
func (p *Parser) parseTopLevelDecl() (result ast.Node) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(declSyncSignal); ok {
				p.synchronizeDecl()
				result = nil
				return
			}
			panic(r)
		}
	}()

	annotations := p.parseAnnotations()

	if p.check(token.Impl) {
		return p.parseImplBlock(annotations)
	}

	vis := p.parseVisibility()

	switch {
	case p.check(token.Fn):
		return p.parseFunctionDecl(annotations, vis)
	case p.check(token.Struct):
		return p.parseStructDecl(annotations, vis)
	case p.check(token.Enum):
		return p.parseEnumDecl(annotations, vis)
	case p.check(token.Extern):
		return p.parseExternDecl(annotations, vis)
	case p.check(token.Const):
		return p.parseConstDecl(annotations, vis)
	case p.checkIdentNamed("type"):
		p.errorf("type-alias-not-implemented", "type aliases are not yet implemented")
		panic(declSyncSignal{})
	default:
		p.errorf("expected-declaration", "expected a declaration (fn, struct, enum, extern, const, impl)")
		panic(declSyncSignal{})
	}
}

// declSyncSignal unwinds parseTopLevelDecl to its synchronization point; it
// is never reported as an error itself; the error was already recorded by
// errorf/diags.Errorf before panicking.
type declSyncSignal struct{}

// parseVisibility requires 'pub' or 'priv', reporting expected-visibility and
// continuing with VisibilityUnset when absent so the caller can still parse
// the rest of the declaration shape for partial-AST recovery.
func (p *Parser) parseVisibility() ast.Visibility {
	switch {
	case p.check(token.Pub):
		p.advance()
		return ast.VisibilityPub
	case p.check(token.Priv):
		p.advance()
		return ast.VisibilityPriv
	default:
		p.errorf("expected-visibility", "expected visibility modifier ('pub' or 'priv')")
		return ast.VisibilityUnset
	}
}

func (p *Parser) checkIdentNamed(name string) bool {
	return p.current.Kind == token.Ident && p.current.Name == name
}

// --- token stream plumbing ---

func (p *Parser) advance() {
	p.previous = p.current
	if p.peeked != nil {
		p.current = *p.peeked
		p.peeked = nil
		return
	}
	p.current = p.nextToken()
}

func (p *Parser) peek() token.Token {
	if p.peeked == nil {
		tok := p.nextToken()
		p.peeked = &tok
	}
	return *p.peeked
}

func (p *Parser) nextToken() token.Token {
	tok, err := p.lex.NextToken()
	if err != nil {
		p.diags.Errorf(tok.Pos, "lex-error", "%s", err.Error())
	}
	return tok
}

func (p *Parser) check(k token.Kind) bool {
	return p.current.Kind == k
}

func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of kind k or reports message and panics with
// declSyncSignal to unwind to the nearest recovery point.
func (p *Parser) expect(k token.Kind, message string) token.Token {
	if p.check(k) {
		tok := p.current
		p.advance()
		return tok
	}
	p.errorf(syntaxKindFor(k), "%s", message)
	panic(declSyncSignal{})
}

// expectIdentName consumes an identifier and returns its name, or reports
// message and panics.
func (p *Parser) expectIdentName(message string) string {
	if p.check(token.Ident) {
		name := p.current.Name
		p.advance()
		return name
	}
	p.errorf("expected-identifier", "%s", message)
	panic(declSyncSignal{})
}

func (p *Parser) isAtEnd() bool {
	return p.current.Kind == token.EOF
}

func (p *Parser) errorf(kind, format string, args ...any) {
	p.diags.Errorf(p.current.Pos, kind, format, args...)
}

// syntaxKindFor produces a stable diagnostic kind string for a missing
// expected token from the kind's canonical spelling, e.g. "expected-;" for
// token.Semicolon.
func syntaxKindFor(k token.Kind) string {
	return fmt.Sprintf("expected-%s", k.String())
}

// synchronizeDecl advances past tokens until a top-level declaration
// boundary (spec.md §4.2.8): pub, priv, impl, fn, struct, enum, extern,
// const, or EOF.
func (p *Parser) synchronizeDecl() {
	for !p.isAtEnd() {
		switch p.current.Kind {
		case token.Pub, token.Priv, token.Impl, token.Fn, token.Struct,
			token.Enum, token.Extern, token.Const:
			return
		}
		p.advance()
	}
}

// synchronizeStmt advances past tokens until a statement boundary: a ';' is
// consumed so the caller resumes just after it, while a '}' is left in place
// for the enclosing block to close.
func (p *Parser) synchronizeStmt() {
	for !p.isAtEnd() {
		if p.current.Kind == token.Semicolon {
			p.advance()
			return
		}
		if p.current.Kind == token.RBrace {
			return
		}
		p.advance()
	}
}
