package ast

import "github.com/asthra-lang/asthra-frontend/internal/token"

// BaseType is a built-in scalar type name: int, float, bool, string, usize,
// isize, u8..u128, i8..i128, f32, f64. User-defined type names are
// StructType, with or without type arguments.
type BaseType struct {
	base
	Name string
}

func NewBaseType(span token.Span, name string) *BaseType {
	return &BaseType{base: newBase(KindBaseType, span), Name: name}
}

// VoidType is the `void` return-type-only marker.
type VoidType struct{ base }

func NewVoidType(span token.Span) *VoidType {
	return &VoidType{base: newBase(KindVoidType, span)}
}

// NoneMarker is the `none` structural-absence keyword, valid only in
// parameter lists, empty struct/enum bodies, and empty array literals.
type NoneMarker struct{ base }

func NewNoneMarker(span token.Span) *NoneMarker {
	return &NoneMarker{base: newBase(KindNoneMarker, span)}
}

// SliceType is `[]Type`.
type SliceType struct {
	base
	Elem Node
}

func NewSliceType(span token.Span, elem Node) *SliceType {
	return &SliceType{base: newBase(KindSliceType, span), Elem: elem}
}

// ArrayType is `[size]Type`. Size is a const-expression.
type ArrayType struct {
	base
	Size Node
	Elem Node
}

func NewArrayType(span token.Span, size, elem Node) *ArrayType {
	return &ArrayType{base: newBase(KindArrayType, span), Size: size, Elem: elem}
}

// PtrMutability distinguishes `*mut T` from `*const T`.
type PtrMutability int

const (
	PtrConst PtrMutability = iota
	PtrMut
)

// PtrType is `*const T` or `*mut T`.
type PtrType struct {
	base
	Mutability PtrMutability
	Elem       Node
}

func NewPtrType(span token.Span, mutability PtrMutability, elem Node) *PtrType {
	return &PtrType{base: newBase(KindPtrType, span), Mutability: mutability, Elem: elem}
}

// StructType is a named type reference with optional type arguments, e.g.
// `Pair<i32>` or a bare `Pair`.
type StructType struct {
	base
	Name     string
	TypeArgs []Node // empty when no <...> was given
}

func NewStructType(span token.Span, name string, typeArgs []Node) *StructType {
	return &StructType{base: newBase(KindStructType, span), Name: name, TypeArgs: typeArgs}
}

// EnumType is an enum type reference with optional type arguments, mirroring
// StructType's shape but kept distinct so the AST records which declaration
// kind introduced the name (disambiguated fully by a later symbol pass).
type EnumType struct {
	base
	Name     string
	TypeArgs []Node
}

func NewEnumType(span token.Span, name string, typeArgs []Node) *EnumType {
	return &EnumType{base: newBase(KindEnumType, span), Name: name, TypeArgs: typeArgs}
}

// TupleType is `(T, T, ...)` with at least two elements.
type TupleType struct {
	base
	Elements []Node
}

func NewTupleType(span token.Span, elements []Node) *TupleType {
	return &TupleType{base: newBase(KindTupleType, span), Elements: elements}
}

// ResultType is `Result<Ok, Err>`.
type ResultType struct {
	base
	Ok  Node
	Err Node
}

func NewResultType(span token.Span, ok, err Node) *ResultType {
	return &ResultType{base: newBase(KindResultType, span), Ok: ok, Err: err}
}

// OptionType is `Option<T>`.
type OptionType struct {
	base
	Elem Node
}

func NewOptionType(span token.Span, elem Node) *OptionType {
	return &OptionType{base: newBase(KindOptionType, span), Elem: elem}
}

// TaskHandleType is `TaskHandle<T>`, the result of spawn_with_handle.
type TaskHandleType struct {
	base
	Elem Node
}

func NewTaskHandleType(span token.Span, elem Node) *TaskHandleType {
	return &TaskHandleType{base: newBase(KindTaskHandleType, span), Elem: elem}
}
