package ast

import "github.com/asthra-lang/asthra-frontend/internal/token"

// WildcardPattern is `_`, matching anything without binding a name.
type WildcardPattern struct{ base }

func NewWildcardPattern(span token.Span) *WildcardPattern {
	return &WildcardPattern{base: newBase(KindWildcardPattern, span)}
}

// IdentifierPattern binds the matched value to a fresh name, shadowing any
// outer binding of the same name.
type IdentifierPattern struct {
	base
	Name string
}

func NewIdentifierPattern(span token.Span, name string) *IdentifierPattern {
	return &IdentifierPattern{base: newBase(KindIdentifierPattern, span), Name: name}
}

// LiteralPattern matches an exact integer, bool, string, or char literal.
type LiteralPattern struct {
	base
	Literal Node // *IntegerLiteral | *BoolLiteral | *StringLiteral | *CharLiteral
}

func NewLiteralPattern(span token.Span, literal Node) *LiteralPattern {
	return &LiteralPattern{base: newBase(KindLiteralPattern, span), Literal: literal}
}

// TuplePattern is `( p, p, ... )` with at least two elements.
type TuplePattern struct {
	base
	Elements []Node
}

func NewTuplePattern(span token.Span, elements []Node) *TuplePattern {
	return &TuplePattern{base: newBase(KindTuplePattern, span), Elements: elements}
}

// FieldPattern is one `name: pattern` entry inside a StructPattern.
type FieldPattern struct {
	base
	Name    string
	Pattern Node
}

func NewFieldPattern(span token.Span, name string, pattern Node) *FieldPattern {
	return &FieldPattern{base: newBase(KindFieldPattern, span), Name: name, Pattern: pattern}
}

// StructPattern is `Name { field: p, field: p, ... }`.
type StructPattern struct {
	base
	TypeName string
	Fields   []*FieldPattern
}

func NewStructPattern(span token.Span, typeName string, fields []*FieldPattern) *StructPattern {
	return &StructPattern{base: newBase(KindStructPattern, span), TypeName: typeName, Fields: fields}
}

// EnumPattern is `EnumName.Variant`, `EnumName.Variant(p)`, or
// `EnumName.Variant(p, p, ...)`. Using `::` here is a fatal parse error.
type EnumPattern struct {
	base
	TypeName    string
	VariantName string
	Elements    []Node // empty for a unit-variant pattern
}

func NewEnumPattern(span token.Span, typeName, variantName string, elements []Node) *EnumPattern {
	return &EnumPattern{base: newBase(KindEnumPattern, span), TypeName: typeName, VariantName: variantName, Elements: elements}
}
