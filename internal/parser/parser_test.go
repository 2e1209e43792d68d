package parser

import (
	"strings"
	"testing"

	"github.com/asthra-lang/asthra-frontend/internal/ast"
	"github.com/asthra-lang/asthra-frontend/internal/diag"
	"github.com/asthra-lang/asthra-frontend/internal/lexer"
)

func parse(t *testing.T, source string) (*ast.Program, *diag.Sink) {
	t.Helper()
	lex := lexer.New(source, "t.asthra")
	sink := diag.NewSink(false, 0)
	p := New(lex, sink)
	prog, _ := p.ParseProgram()
	return prog, sink
}

func diagsContain(sink *diag.Sink, substr string) bool {
	for _, d := range sink.Diagnostics() {
		if strings.Contains(d.Message, substr) || strings.Contains(d.Kind, substr) {
			return true
		}
	}
	return false
}

func TestParseProgram_ValidMainFunction(t *testing.T) {
	prog, sink := parse(t, `package test; pub fn main(none) -> i32 { return 42; }`)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	if len(prog.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Declarations))
	}
	fn, ok := prog.Declarations[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected *ast.FunctionDecl, got %T", prog.Declarations[0])
	}
	if fn.Name != "main" {
		t.Errorf("expected name 'main', got %q", fn.Name)
	}
	if fn.Params != nil {
		t.Errorf("expected nil params for 'none', got %v", fn.Params)
	}
	if fn.NoneMarker == nil {
		t.Error("expected a NoneMarker node for 'none', not just a nil Params slice")
	}
	retType, ok := fn.ReturnType.(*ast.BaseType)
	if !ok || retType.Name != "i32" {
		t.Fatalf("expected return type i32, got %#v", fn.ReturnType)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fn.Body.Statements))
	}
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", fn.Body.Statements[0])
	}
	lit, ok := ret.Value.(*ast.IntegerLiteral)
	if !ok || lit.Value != 42 {
		t.Fatalf("expected integer literal 42, got %#v", ret.Value)
	}
}

func TestParseProgram_MissingSemicolon(t *testing.T) {
	_, sink := parse(t, `package main; pub fn main(none) -> void { log("Missing semicolon") return (); }`)
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	if !diagsContain(sink, "expected ';'") {
		t.Errorf("expected a diagnostic containing \"expected ';'\", got %v", sink.Diagnostics())
	}
}

func TestParseProgram_MissingVisibility(t *testing.T) {
	_, sink := parse(t, `package test; fn helper(none) -> void { return (); } pub fn main(none) -> void { helper(); return (); }`)
	if !diagsContain(sink, "expected visibility modifier") {
		t.Errorf("expected a diagnostic containing \"expected visibility modifier\", got %v", sink.Diagnostics())
	}
}

func TestParseProgram_MissingLetTypeAnnotation(t *testing.T) {
	_, sink := parse(t, `package test; pub fn main(none) -> i32 { let x = 42; return x; }`)
	if !diagsContain(sink, "type annotation") {
		t.Errorf("expected a diagnostic containing \"type annotation\", got %v", sink.Diagnostics())
	}
}

func TestParseProgram_EnumDoubleColonRejected(t *testing.T) {
	_, sink := parse(t, `package test; pub enum Status { Active, Inactive } pub fn main(none) -> i32 { let s: Status = Status::Active; return 0; }`)
	if !diagsContain(sink, "Invalid postfix '::' usage") {
		t.Errorf("expected a diagnostic containing \"Invalid postfix '::' usage\", got %v", sink.Diagnostics())
	}
}

func TestParseProgram_InternalImportDenied(t *testing.T) {
	_, sink := parse(t, `package test; import "internal/secret"; pub fn main(none) -> i32 { return 0; }`)
	if !diagsContain(sink, "internal-access-denied") {
		t.Errorf("expected a diagnostic identifying internal/ access-denied, got %v", sink.Diagnostics())
	}
}

func TestParseProgram_ArrayLiteralAndIndexAccess(t *testing.T) {
	prog, sink := parse(t, `package test; pub fn main(none) -> i32 { let arr: [3]i32 = [1, 2, 3]; return arr[2]; }`)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	let := fn.Body.Statements[0].(*ast.LetStmt)
	arr, ok := let.Init.(*ast.ArrayLiteralExpr)
	if !ok || arr.LiteralKind != ast.ArrayLiteralElements || len(arr.Elements) != 3 {
		t.Fatalf("expected a 3-element array literal, got %#v", let.Init)
	}
	ret := fn.Body.Statements[1].(*ast.ReturnStmt)
	idx, ok := ret.Value.(*ast.IndexAccessExpr)
	if !ok {
		t.Fatalf("expected *ast.IndexAccessExpr, got %T", ret.Value)
	}
	ident, ok := idx.Target.(*ast.IdentifierExpr)
	if !ok || ident.Name != "arr" {
		t.Fatalf("expected identifier 'arr', got %#v", idx.Target)
	}
	lit, ok := idx.Index.(*ast.IntegerLiteral)
	if !ok || lit.Value != 2 {
		t.Fatalf("expected integer literal 2, got %#v", idx.Index)
	}
}

func TestParseProgram_GenericEnumConstructor(t *testing.T) {
	src := `package test; pub enum Option<T> { Some(T), None } pub fn main(none) -> i32 { let o: Option<i32> = Option<i32>.Some(42); return 0; }`
	prog, sink := parse(t, src)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	fn := prog.Declarations[1].(*ast.FunctionDecl)
	let := fn.Body.Statements[0].(*ast.LetStmt)

	declType, ok := let.Type.(*ast.StructType)
	if !ok || declType.Name != "Option" || len(declType.TypeArgs) != 1 {
		t.Fatalf("expected Option<i32> struct type, got %#v", let.Type)
	}

	variant, ok := let.Init.(*ast.EnumVariantExpr)
	if !ok {
		t.Fatalf("expected *ast.EnumVariantExpr, got %#v", let.Init)
	}
	if variant.TypeName != "Option" || variant.VariantName != "Some" {
		t.Fatalf("expected Option.Some, got %s.%s", variant.TypeName, variant.VariantName)
	}
	if len(variant.Args) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(variant.Args))
	}
}

func TestParseExpression_PrecedenceRespected(t *testing.T) {
	// 1 + 2 * 3 must bind as 1 + (2 * 3), not (1 + 2) * 3.
	prog, sink := parse(t, `package test; pub fn main(none) -> i32 { return 1 + 2 * 3; }`)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	ret := fn.Body.Statements[0].(*ast.ReturnStmt)
	bin, ok := ret.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected top-level *ast.BinaryExpr, got %#v", ret.Value)
	}
	left, ok := bin.Left.(*ast.IntegerLiteral)
	if !ok || left.Value != 1 {
		t.Fatalf("expected left operand 1, got %#v", bin.Left)
	}
	right, ok := bin.Right.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected right operand to be the nested multiplication, got %#v", bin.Right)
	}
	rl, _ := right.Left.(*ast.IntegerLiteral)
	rr, _ := right.Right.(*ast.IntegerLiteral)
	if rl == nil || rl.Value != 2 || rr == nil || rr.Value != 3 {
		t.Fatalf("expected nested 2 * 3, got %#v", right)
	}
}

func TestParseExpression_LessThanFallsBackAfterFailedGenericAttempt(t *testing.T) {
	// "a < b" must be read as a comparison: the generic attempt fails because
	// there is no closing '>' followed by a valid continuation.
	prog, sink := parse(t, `package test; pub fn main(none) -> bool { return a < b; }`)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	ret := fn.Body.Statements[0].(*ast.ReturnStmt)
	bin, ok := ret.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpr, got %#v", ret.Value)
	}
	left, _ := bin.Left.(*ast.IdentifierExpr)
	right, _ := bin.Right.(*ast.IdentifierExpr)
	if left == nil || left.Name != "a" || right == nil || right.Name != "b" {
		t.Fatalf("expected 'a < b' as a comparison, got %#v", bin)
	}
}

func TestParseDecl_MutSelfRejected(t *testing.T) {
	_, sink := parse(t, `package test; pub struct Counter { value: i32 } impl Counter { pub fn bump(mut self) -> void { return (); } }`)
	if !diagsContain(sink, "mut-self-rejected") {
		t.Errorf("expected a mut-self-rejected diagnostic, got %v", sink.Diagnostics())
	}
}

func TestParseDecl_NoneMarkerIsARealNode(t *testing.T) {
	src := `package test; pub struct Empty { none } pub enum Nothing { none } pub extern fn noop(none) -> void;`
	prog, sink := parse(t, src)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}

	structDecl := prog.Declarations[0].(*ast.StructDecl)
	if structDecl.Fields != nil || structDecl.NoneMarker == nil {
		t.Fatalf("expected a NoneMarker with nil Fields on an empty struct, got %#v", structDecl)
	}

	enumDecl := prog.Declarations[1].(*ast.EnumDecl)
	if enumDecl.Variants != nil || enumDecl.NoneMarker == nil {
		t.Fatalf("expected a NoneMarker with nil Variants on an empty enum, got %#v", enumDecl)
	}

	externDecl := prog.Declarations[2].(*ast.ExternDecl)
	if externDecl.Params != nil || externDecl.NoneMarker == nil {
		t.Fatalf("expected a NoneMarker with nil Params on a none-arity extern fn, got %#v", externDecl)
	}
}

func TestParseDecl_EmptyStructRequiresNoneMarker(t *testing.T) {
	_, sink := parse(t, `package test; pub struct Empty { }`)
	if !diagsContain(sink, "empty-struct-without-none") {
		t.Errorf("expected empty-struct-without-none diagnostic, got %v", sink.Diagnostics())
	}
}

func TestParseDecl_ExternWithOwnershipAnnotations(t *testing.T) {
	prog, sink := parse(t, `package test; pub extern "libc" fn malloc(size: usize) -> transfer_full *mut void;`)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	decl, ok := prog.Declarations[0].(*ast.ExternDecl)
	if !ok {
		t.Fatalf("expected *ast.ExternDecl, got %T", prog.Declarations[0])
	}
	if decl.Library != "libc" || decl.Name != "malloc" {
		t.Fatalf("expected malloc from libc, got %#v", decl)
	}
	if decl.ReturnOwnership == nil || decl.ReturnOwnership.Transfer != ast.TransferFull {
		t.Fatalf("expected transfer_full return ownership, got %#v", decl.ReturnOwnership)
	}
}

func TestParseDecl_TupleTypeArityOneRejected(t *testing.T) {
	_, sink := parse(t, `package test; pub fn main(none) -> (i32) { return 0; }`)
	if !diagsContain(sink, "tuple-arity-one") {
		t.Errorf("expected tuple-arity-one diagnostic, got %v", sink.Diagnostics())
	}
}

func TestParseExpression_TupleLiteralArityOneRejected(t *testing.T) {
	_, sink := parse(t, `package test; pub fn main(none) -> i32 { let t: (i32, i32) = (1,); return 0; }`)
	if !diagsContain(sink, "tuple-literal-arity-one") {
		t.Errorf("expected tuple-literal-arity-one diagnostic, got %v", sink.Diagnostics())
	}
}

func TestParsePattern_EnumDoubleColonRejected(t *testing.T) {
	src := `package test; pub enum Status { Active, Inactive } pub fn main(none) -> i32 { match Status::Active { Status::Active => { return 1; } } return 0; }`
	_, sink := parse(t, src)
	if !diagsContain(sink, "invalid-pattern-coloncolon") {
		t.Errorf("expected invalid-pattern-coloncolon diagnostic, got %v", sink.Diagnostics())
	}
}
