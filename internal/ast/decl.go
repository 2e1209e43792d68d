package ast

import "github.com/asthra-lang/asthra-frontend/internal/token"

// Visibility is the mandatory pub/priv tag on every top-level declaration
// except impl blocks (spec.md §4.2.1).
type Visibility int

const (
	VisibilityUnset Visibility = iota
	VisibilityPub
	VisibilityPriv
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPub:
		return "pub"
	case VisibilityPriv:
		return "priv"
	default:
		return "unset"
	}
}

// Program is the root of every parsed source file: one package declaration,
// zero-or-more imports, then zero-or-more top-level declarations.
type Program struct {
	base
	Package      *PackageDecl
	Imports      []*ImportDecl
	Declarations []Node // FunctionDecl | StructDecl | EnumDecl | ExternDecl | ImplBlock | ConstDecl
}

func NewProgram(span token.Span, pkg *PackageDecl, imports []*ImportDecl, decls []Node) *Program {
	return &Program{base: newBase(KindProgram, span), Package: pkg, Imports: imports, Declarations: decls}
}

// PackageDecl is `package IDENT ;`.
type PackageDecl struct {
	base
	Name string
}

func NewPackageDecl(span token.Span, name string) *PackageDecl {
	return &PackageDecl{base: newBase(KindPackageDecl, span), Name: name}
}

// ImportDecl is `import STRING (as IDENT)? ;`.
type ImportDecl struct {
	base
	Path  string
	Alias string // empty when no "as" clause
}

func NewImportDecl(span token.Span, path, alias string) *ImportDecl {
	return &ImportDecl{base: newBase(KindImportDecl, span), Path: path, Alias: alias}
}

// Annotations is embedded by any declaration that may carry a `#[name(...)]`
// list (spec.md §4.2.7).
type Annotations struct {
	Annotations []*Annotation
}

// ParamDecl is one `IDENT : Type` entry in a parameter list. Params are
// never mutable; FFI ownership annotations attach via Ownership.
type ParamDecl struct {
	base
	Name      string
	Type      Node
	Ownership *OwnershipAnnotation // nil unless the type carries a transfer annotation
}

func NewParamDecl(span token.Span, name string, typ Node) *ParamDecl {
	return &ParamDecl{base: newBase(KindParamDecl, span), Name: name, Type: typ}
}

// FunctionDecl is `fn IDENT ( params ) -> Type Block`. Params is nil when the
// source used the `none` absence marker; Visibility is always set by the
// parser (or the parse fails) since every top-level form but impl requires it.
type FunctionDecl struct {
	base
	Annotations
	Visibility Visibility
	Name       string
	Params     []*ParamDecl // nil means `none`
	NoneMarker *NoneMarker  // set when Params is nil because the source wrote `none`
	ReturnType Node
	Body       *Block
}

func NewFunctionDecl(span token.Span, vis Visibility, name string, params []*ParamDecl, ret Node, body *Block) *FunctionDecl {
	return &FunctionDecl{base: newBase(KindFunctionDecl, span), Visibility: vis, Name: name, Params: params, ReturnType: ret, Body: body}
}

// MethodDecl is a function declared inside an impl block. IsInstance is true
// when the first parameter was the bare identifier `self`, making this an
// instance method (dot-call) rather than an associated function (`::`-call).
type MethodDecl struct {
	base
	Annotations
	Visibility Visibility
	Name       string
	IsInstance bool
	Params     []*ParamDecl // excludes self; nil means `none`
	NoneMarker *NoneMarker  // set when Params is nil because the source wrote `none`
	ReturnType Node
	Body       *Block
}

func NewMethodDecl(span token.Span, vis Visibility, name string, isInstance bool, params []*ParamDecl, ret Node, body *Block) *MethodDecl {
	return &MethodDecl{base: newBase(KindMethodDecl, span), Visibility: vis, Name: name, IsInstance: isInstance, Params: params, ReturnType: ret, Body: body}
}

// ImplBlock is `impl TypeName { methods }`. It carries no outer visibility;
// each MethodDecl inside has its own.
type ImplBlock struct {
	base
	Annotations
	TypeName string
	Methods  []*MethodDecl
}

func NewImplBlock(span token.Span, typeName string, methods []*MethodDecl) *ImplBlock {
	return &ImplBlock{base: newBase(KindImplBlock, span), TypeName: typeName, Methods: methods}
}

// StructField is `Visibility? IDENT : Type`, comma-separated from its
// siblings; a semicolon between fields is a fatal parse error.
type StructField struct {
	base
	Visibility Visibility // VisibilityUnset when omitted; fields may be unannotated
	Name       string
	Type       Node
}

func NewStructField(span token.Span, vis Visibility, name string, typ Node) *StructField {
	return &StructField{base: newBase(KindStructField, span), Visibility: vis, Name: name, Type: typ}
}

// StructDecl is `struct IDENT TypeParams? { fields }`. Fields is nil when the
// body was the `none` absence marker.
type StructDecl struct {
	base
	Annotations
	Visibility Visibility
	Name       string
	TypeParams []string
	Fields     []*StructField // nil means `none`
	NoneMarker *NoneMarker    // set when Fields is nil because the source wrote `none`
}

func NewStructDecl(span token.Span, vis Visibility, name string, typeParams []string, fields []*StructField) *StructDecl {
	return &StructDecl{base: newBase(KindStructDecl, span), Visibility: vis, Name: name, TypeParams: typeParams, Fields: fields}
}

// EnumVariantDecl is `IDENT` (unit variant) or `IDENT ( Type (, Type)* )`
// (payload-carrying variant).
type EnumVariantDecl struct {
	base
	Name  string
	Types []Node // empty for a unit variant
}

func NewEnumVariantDecl(span token.Span, name string, types []Node) *EnumVariantDecl {
	return &EnumVariantDecl{base: newBase(KindEnumVariantDecl, span), Name: name, Types: types}
}

// EnumDecl is `enum IDENT TypeParams? { variants }`. Variants is nil when the
// body was the `none` absence marker.
type EnumDecl struct {
	base
	Annotations
	Visibility Visibility
	Name       string
	TypeParams []string
	Variants   []*EnumVariantDecl // nil means `none`
	NoneMarker *NoneMarker        // set when Variants is nil because the source wrote `none`
}

func NewEnumDecl(span token.Span, vis Visibility, name string, typeParams []string, variants []*EnumVariantDecl) *EnumDecl {
	return &EnumDecl{base: newBase(KindEnumDecl, span), Visibility: vis, Name: name, TypeParams: typeParams, Variants: variants}
}

// ExternDecl is `extern ("LIB")? fn IDENT ( params ) -> Type ;`. ReturnOwnership
// is the optional transfer annotation on the return position.
type ExternDecl struct {
	base
	Annotations
	Visibility      Visibility
	Library         string // empty when no "LIB" string was given
	Name            string
	Params          []*ParamDecl
	NoneMarker      *NoneMarker // set when Params is nil because the source wrote `none`
	ReturnType      Node
	ReturnOwnership *OwnershipAnnotation
}

func NewExternDecl(span token.Span, vis Visibility, library, name string, params []*ParamDecl, ret Node) *ExternDecl {
	return &ExternDecl{base: newBase(KindExternDecl, span), Visibility: vis, Library: library, Name: name, Params: params, ReturnType: ret}
}

// ConstDecl is a top-level `const IDENT : Type = Expr ;` using the
// restricted const-expression grammar (spec.md §4.2.5).
type ConstDecl struct {
	base
	Annotations
	Visibility Visibility
	Name       string
	Type       Node
	Value      Node
}

func NewConstDecl(span token.Span, vis Visibility, name string, typ, value Node) *ConstDecl {
	return &ConstDecl{base: newBase(KindConstDecl, span), Visibility: vis, Name: name, Type: typ, Value: value}
}
