package ast

import "github.com/asthra-lang/asthra-frontend/internal/token"

// Block is a brace-delimited statement sequence, used as a function body,
// impl-method body, loop/if/match body, and unsafe-block body.
type Block struct {
	base
	Statements []Node
}

func NewBlock(span token.Span, stmts []Node) *Block {
	return &Block{base: newBase(KindBlock, span), Statements: stmts}
}

// ExprStmt wraps an expression used in statement position, terminated by ';'.
type ExprStmt struct {
	base
	Expr Node
}

func NewExprStmt(span token.Span, expr Node) *ExprStmt {
	return &ExprStmt{base: newBase(KindExprStmt, span), Expr: expr}
}

// LetStmt is `let (mut)? IDENT : Type ( = Expr )? ;`. The type annotation is
// mandatory; Init is nil when there is no initializer.
type LetStmt struct {
	base
	Mutable bool
	Name    string
	Type    Node
	Init    Node // nil when absent
}

func NewLetStmt(span token.Span, mutable bool, name string, typ, init Node) *LetStmt {
	return &LetStmt{base: newBase(KindLetStmt, span), Mutable: mutable, Name: name, Type: typ, Init: init}
}

// ReturnStmt is `return Expr? ;`. Value is nil only for a bare `return;`;
// `return ();` is represented with Value set to a UnitLiteral.
type ReturnStmt struct {
	base
	Value Node
}

func NewReturnStmt(span token.Span, value Node) *ReturnStmt {
	return &ReturnStmt{base: newBase(KindReturnStmt, span), Value: value}
}

// IfStmt is `if Expr Block (else (Block | IfStmt))?`. Else is nil, a *Block,
// or a nested *IfStmt for an "else if" chain.
type IfStmt struct {
	base
	Cond Node
	Then *Block
	Else Node
}

func NewIfStmt(span token.Span, cond Node, then *Block, els Node) *IfStmt {
	return &IfStmt{base: newBase(KindIfStmt, span), Cond: cond, Then: then, Else: els}
}

// IfLetStmt is `if let Pattern = Expr Block (else Block)?`.
type IfLetStmt struct {
	base
	Pattern Node
	Value   Node
	Then    *Block
	Else    *Block // nil when absent
}

func NewIfLetStmt(span token.Span, pattern, value Node, then, els *Block) *IfLetStmt {
	return &IfLetStmt{base: newBase(KindIfLetStmt, span), Pattern: pattern, Value: value, Then: then, Else: els}
}

// ForStmt is `for IDENT in Expr Block`.
type ForStmt struct {
	base
	Binding string
	Iter    Node
	Body    *Block
}

func NewForStmt(span token.Span, binding string, iter Node, body *Block) *ForStmt {
	return &ForStmt{base: newBase(KindForStmt, span), Binding: binding, Iter: iter, Body: body}
}

// MatchArm is `Pattern => Block` inside a match statement.
type MatchArm struct {
	base
	Pattern Node
	Body    *Block
}

func NewMatchArm(span token.Span, pattern Node, body *Block) *MatchArm {
	return &MatchArm{base: newBase(KindMatchArm, span), Pattern: pattern, Body: body}
}

// MatchStmt is `match Expr { Arm+ }`.
type MatchStmt struct {
	base
	Subject Node
	Arms    []*MatchArm
}

func NewMatchStmt(span token.Span, subject Node, arms []*MatchArm) *MatchStmt {
	return &MatchStmt{base: newBase(KindMatchStmt, span), Subject: subject, Arms: arms}
}

// SpawnStmt is `spawn call-expr ;`, a fire-and-forget task launch. Only the
// surface syntax is parsed; execution semantics are a downstream concern.
type SpawnStmt struct {
	base
	Call Node
}

func NewSpawnStmt(span token.Span, call Node) *SpawnStmt {
	return &SpawnStmt{base: newBase(KindSpawnStmt, span), Call: call}
}

// SpawnWithHandleStmt is `spawn_with_handle IDENT = call-expr ;`, binding a
// task handle to a name.
type SpawnWithHandleStmt struct {
	base
	HandleName string
	Call       Node
}

func NewSpawnWithHandleStmt(span token.Span, handleName string, call Node) *SpawnWithHandleStmt {
	return &SpawnWithHandleStmt{base: newBase(KindSpawnWithHandleStmt, span), HandleName: handleName, Call: call}
}

// BreakStmt is `break ;`.
type BreakStmt struct{ base }

func NewBreakStmt(span token.Span) *BreakStmt {
	return &BreakStmt{base: newBase(KindBreakStmt, span)}
}

// ContinueStmt is `continue ;`.
type ContinueStmt struct{ base }

func NewContinueStmt(span token.Span) *ContinueStmt {
	return &ContinueStmt{base: newBase(KindContinueStmt, span)}
}

// UnsafeBlock is `unsafe { ... }`, valid as both a statement and an
// expression; only its Body differs structurally from a plain Block.
type UnsafeBlock struct {
	base
	Body *Block
}

func NewUnsafeBlock(span token.Span, body *Block) *UnsafeBlock {
	return &UnsafeBlock{base: newBase(KindUnsafeBlock, span), Body: body}
}

// AssignmentStmt is `Target = Expr ;` over a previously `mut`-bound place.
type AssignmentStmt struct {
	base
	Target Node
	Value  Node
}

func NewAssignmentStmt(span token.Span, target, value Node) *AssignmentStmt {
	return &AssignmentStmt{base: newBase(KindAssignmentStmt, span), Target: target, Value: value}
}
