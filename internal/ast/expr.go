package ast

import "github.com/asthra-lang/asthra-frontend/internal/token"

// BinaryExpr is `Left Op Right` at any of the ten binary precedence levels
// (spec.md §4.2.5). Op is the operator token kind (e.g. token.Plus).
type BinaryExpr struct {
	base
	Op    token.Kind
	Left  Node
	Right Node
}

func NewBinaryExpr(span token.Span, op token.Kind, left, right Node) *BinaryExpr {
	return &BinaryExpr{base: newBase(KindBinaryExpr, span), Op: op, Left: left, Right: right}
}

// UnaryExpr is a prefix operator: `- ! ~ * &` or `sizeof(T)`. For sizeof,
// Operand is nil and SizeofType holds the operand type instead.
type UnaryExpr struct {
	base
	Op         token.Kind
	Operand    Node
	SizeofType Node // non-nil only when Op names the sizeof form
}

func NewUnaryExpr(span token.Span, op token.Kind, operand Node) *UnaryExpr {
	return &UnaryExpr{base: newBase(KindUnaryExpr, span), Op: op, Operand: operand}
}

func NewSizeofExpr(span token.Span, typ Node) *UnaryExpr {
	return &UnaryExpr{base: newBase(KindUnaryExpr, span), Op: token.Sizeof, SizeofType: typ}
}

// CallExpr is `Callee ( args )`, a postfix-level call on a plain expression
// (function call or instance method dot-call).
type CallExpr struct {
	base
	Callee Node
	Args   []Node
}

func NewCallExpr(span token.Span, callee Node, args []Node) *CallExpr {
	return &CallExpr{base: newBase(KindCallExpr, span), Callee: callee, Args: args}
}

// AssociatedFuncCallExpr is `TypeName::fn_name ( args )`, calling an
// associated function (no `self` receiver) rather than an instance method.
type AssociatedFuncCallExpr struct {
	base
	TypeName string
	FuncName string
	Args     []Node
}

func NewAssociatedFuncCallExpr(span token.Span, typeName, funcName string, args []Node) *AssociatedFuncCallExpr {
	return &AssociatedFuncCallExpr{base: newBase(KindAssociatedFuncCallExpr, span), TypeName: typeName, FuncName: funcName, Args: args}
}

// FieldAccessExpr is `Target . Field`, used both for struct field reads and
// for the uppercase-heuristic fallback when `.` is not followed by a
// capitalized identifier (spec.md §4.2.5).
type FieldAccessExpr struct {
	base
	Target Node
	Field  string
}

func NewFieldAccessExpr(span token.Span, target Node, field string) *FieldAccessExpr {
	return &FieldAccessExpr{base: newBase(KindFieldAccessExpr, span), Target: target, Field: field}
}

// IndexAccessExpr is `Target [ Index ]`.
type IndexAccessExpr struct {
	base
	Target Node
	Index  Node
}

func NewIndexAccessExpr(span token.Span, target, index Node) *IndexAccessExpr {
	return &IndexAccessExpr{base: newBase(KindIndexAccessExpr, span), Target: target, Index: index}
}

// SliceExpr is `Target [ Low : High ]` with either bound optionally absent
// (`[s:]`, `[:e]`, `[:]`).
type SliceExpr struct {
	base
	Target Node
	Low    Node // nil when absent
	High   Node // nil when absent
}

func NewSliceExpr(span token.Span, target, low, high Node) *SliceExpr {
	return &SliceExpr{base: newBase(KindSliceExpr, span), Target: target, Low: low, High: high}
}

// SliceLengthAccessExpr is `Target . len`.
type SliceLengthAccessExpr struct {
	base
	Target Node
}

func NewSliceLengthAccessExpr(span token.Span, target Node) *SliceLengthAccessExpr {
	return &SliceLengthAccessExpr{base: newBase(KindSliceLengthAccessExpr, span), Target: target}
}

// AwaitExpr is `await Expr`, postfix-level; the parser only records the
// shape, leaving handle type-checking to a downstream pass.
type AwaitExpr struct {
	base
	Operand Node
}

func NewAwaitExpr(span token.Span, operand Node) *AwaitExpr {
	return &AwaitExpr{base: newBase(KindAwaitExpr, span), Operand: operand}
}

// StructLiteralField is one `name: value` entry of a struct literal.
type StructLiteralField struct {
	base
	Name  string
	Value Node
}

func NewStructLiteralField(span token.Span, name string, value Node) *StructLiteralField {
	return &StructLiteralField{base: newBase(KindStructLiteralField, span), Name: name, Value: value}
}

// StructLiteralExpr is `TypeName { field: value, ... }`.
type StructLiteralExpr struct {
	base
	TypeName string
	Fields   []*StructLiteralField
}

func NewStructLiteralExpr(span token.Span, typeName string, fields []*StructLiteralField) *StructLiteralExpr {
	return &StructLiteralExpr{base: newBase(KindStructLiteralExpr, span), TypeName: typeName, Fields: fields}
}

// ArrayLiteralKind distinguishes the three surface forms from spec.md
// §4.2.5: explicit empty, comma-separated elements, and repeated-value.
type ArrayLiteralKind int

const (
	ArrayLiteralEmpty ArrayLiteralKind = iota
	ArrayLiteralElements
	ArrayLiteralRepeated
)

// ArrayLiteralExpr covers `[none]`, `[e, e, ...]`, and `[value ; count]`.
// Elements holds the comma-separated form; RepeatedValue/RepeatedCount hold
// the repeated form's operands, both of which must be const-expressions.
type ArrayLiteralExpr struct {
	base
	LiteralKind   ArrayLiteralKind
	Elements      []Node
	RepeatedValue Node
	RepeatedCount Node
}

func NewArrayLiteralEmpty(span token.Span) *ArrayLiteralExpr {
	return &ArrayLiteralExpr{base: newBase(KindArrayLiteralExpr, span), LiteralKind: ArrayLiteralEmpty}
}

func NewArrayLiteralElements(span token.Span, elements []Node) *ArrayLiteralExpr {
	return &ArrayLiteralExpr{base: newBase(KindArrayLiteralExpr, span), LiteralKind: ArrayLiteralElements, Elements: elements}
}

func NewArrayLiteralRepeated(span token.Span, value, count Node) *ArrayLiteralExpr {
	return &ArrayLiteralExpr{base: newBase(KindArrayLiteralExpr, span), LiteralKind: ArrayLiteralRepeated, RepeatedValue: value, RepeatedCount: count}
}

// TupleLiteralExpr is `( e, e, ... )` with at least two elements; a single
// parenthesized expression is a grouping and never produces this node.
type TupleLiteralExpr struct {
	base
	Elements []Node
}

func NewTupleLiteralExpr(span token.Span, elements []Node) *TupleLiteralExpr {
	return &TupleLiteralExpr{base: newBase(KindTupleLiteralExpr, span), Elements: elements}
}

// EnumVariantExpr is `TypeName . VariantName` with an optional argument
// list: `TypeName.Variant`, `TypeName.Variant(x)`, or
// `TypeName.Variant(x, y, ...)`. Args holds the argument expressions in
// source order, one entry each; a multi-argument form is not wrapped in a
// TupleLiteralExpr.
type EnumVariantExpr struct {
	base
	TypeName    string
	VariantName string
	Args        []Node // empty for a unit variant reference
}

func NewEnumVariantExpr(span token.Span, typeName, variantName string, args []Node) *EnumVariantExpr {
	return &EnumVariantExpr{base: newBase(KindEnumVariantExpr, span), TypeName: typeName, VariantName: variantName, Args: args}
}

// ConstExpr wraps an expression parsed under the restricted const grammar
// (literals, identifiers, sizeof, and +-*/% and unary -/~ over the same).
// Anything else is accepted syntactically and flagged downstream.
type ConstExpr struct {
	base
	Expr Node
}

func NewConstExpr(span token.Span, expr Node) *ConstExpr {
	return &ConstExpr{base: newBase(KindConstExpr, span), Expr: expr}
}

// IdentifierExpr is a bare name reference.
type IdentifierExpr struct {
	base
	Name string
}

func NewIdentifierExpr(span token.Span, name string) *IdentifierExpr {
	return &IdentifierExpr{base: newBase(KindIdentifierExpr, span), Name: name}
}

// IntegerLiteral carries a 64-bit signed value.
type IntegerLiteral struct {
	base
	Value int64
}

func NewIntegerLiteral(span token.Span, value int64) *IntegerLiteral {
	return &IntegerLiteral{base: newBase(KindIntegerLiteral, span), Value: value}
}

// FloatLiteral carries a 64-bit IEEE value.
type FloatLiteral struct {
	base
	Value float64
}

func NewFloatLiteral(span token.Span, value float64) *FloatLiteral {
	return &FloatLiteral{base: newBase(KindFloatLiteral, span), Value: value}
}

// StringLiteral carries the already-decoded string value (escapes resolved
// by the lexer, except in the raw multi-line form).
type StringLiteral struct {
	base
	Value string
}

func NewStringLiteral(span token.Span, value string) *StringLiteral {
	return &StringLiteral{base: newBase(KindStringLiteral, span), Value: value}
}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	base
	Value bool
}

func NewBoolLiteral(span token.Span, value bool) *BoolLiteral {
	return &BoolLiteral{base: newBase(KindBoolLiteral, span), Value: value}
}

// CharLiteral carries one decoded Unicode scalar.
type CharLiteral struct {
	base
	Value rune
}

func NewCharLiteral(span token.Span, value rune) *CharLiteral {
	return &CharLiteral{base: newBase(KindCharLiteral, span), Value: value}
}

// UnitLiteral is the empty-parens unit value `()`, distinct from the `none`
// absence marker and from `void`.
type UnitLiteral struct{ base }

func NewUnitLiteral(span token.Span) *UnitLiteral {
	return &UnitLiteral{base: newBase(KindUnitLiteral, span)}
}
