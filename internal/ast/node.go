// Package ast defines the Abstract Syntax Tree produced by the parser: typed
// node variants with stable identity, a uniform child-traversal contract,
// deep cloning, and safe destruction.
package ast

import "github.com/asthra-lang/asthra-frontend/internal/token"

// Kind identifies which concrete node variant a Node is. Every Node's
// underlying type has exactly one corresponding Kind, checked by Children,
// Clone, and Destroy through a single type switch rather than a Visitor
// interface per node kind.
type Kind int

const (
	KindInvalid Kind = iota

	// Program structure
	KindProgram
	KindPackageDecl
	KindImportDecl

	// Declarations
	KindFunctionDecl
	KindParamDecl
	KindStructDecl
	KindStructField
	KindEnumDecl
	KindEnumVariantDecl
	KindExternDecl
	KindImplBlock
	KindMethodDecl
	KindConstDecl

	// Statements
	KindBlock
	KindExprStmt
	KindLetStmt
	KindReturnStmt
	KindIfStmt
	KindIfLetStmt
	KindForStmt
	KindMatchStmt
	KindMatchArm
	KindSpawnStmt
	KindSpawnWithHandleStmt
	KindBreakStmt
	KindContinueStmt
	KindUnsafeBlock
	KindAssignmentStmt

	// Expressions
	KindBinaryExpr
	KindUnaryExpr
	KindCallExpr
	KindAssociatedFuncCallExpr
	KindFieldAccessExpr
	KindIndexAccessExpr
	KindSliceExpr
	KindSliceLengthAccessExpr
	KindAwaitExpr
	KindStructLiteralExpr
	KindStructLiteralField
	KindArrayLiteralExpr
	KindTupleLiteralExpr
	KindEnumVariantExpr
	KindConstExpr
	KindIdentifierExpr

	// Literals
	KindIntegerLiteral
	KindFloatLiteral
	KindStringLiteral
	KindBoolLiteral
	KindCharLiteral
	KindUnitLiteral

	// Types
	KindBaseType
	KindSliceType
	KindArrayType
	KindPtrType
	KindStructType
	KindEnumType
	KindTupleType
	KindResultType
	KindOptionType
	KindTaskHandleType
	KindVoidType
	KindNoneMarker

	// Patterns
	KindWildcardPattern
	KindIdentifierPattern
	KindLiteralPattern
	KindTuplePattern
	KindStructPattern
	KindFieldPattern
	KindEnumPattern

	// Annotations
	KindAnnotation
	KindOwnershipAnnotation
)

var kindNames = [...]string{
	KindInvalid:                "Invalid",
	KindProgram:                "Program",
	KindPackageDecl:            "PackageDecl",
	KindImportDecl:             "ImportDecl",
	KindFunctionDecl:           "FunctionDecl",
	KindParamDecl:              "ParamDecl",
	KindStructDecl:             "StructDecl",
	KindStructField:            "StructField",
	KindEnumDecl:               "EnumDecl",
	KindEnumVariantDecl:        "EnumVariantDecl",
	KindExternDecl:             "ExternDecl",
	KindImplBlock:              "ImplBlock",
	KindMethodDecl:             "MethodDecl",
	KindConstDecl:              "ConstDecl",
	KindBlock:                  "Block",
	KindExprStmt:               "ExprStmt",
	KindLetStmt:                "LetStmt",
	KindReturnStmt:             "ReturnStmt",
	KindIfStmt:                 "IfStmt",
	KindIfLetStmt:              "IfLetStmt",
	KindForStmt:                "ForStmt",
	KindMatchStmt:              "MatchStmt",
	KindMatchArm:               "MatchArm",
	KindSpawnStmt:              "SpawnStmt",
	KindSpawnWithHandleStmt:    "SpawnWithHandleStmt",
	KindBreakStmt:              "BreakStmt",
	KindContinueStmt:           "ContinueStmt",
	KindUnsafeBlock:            "UnsafeBlock",
	KindAssignmentStmt:         "AssignmentStmt",
	KindBinaryExpr:             "BinaryExpr",
	KindUnaryExpr:              "UnaryExpr",
	KindCallExpr:               "CallExpr",
	KindAssociatedFuncCallExpr: "AssociatedFuncCallExpr",
	KindFieldAccessExpr:        "FieldAccessExpr",
	KindIndexAccessExpr:        "IndexAccessExpr",
	KindSliceExpr:              "SliceExpr",
	KindSliceLengthAccessExpr:  "SliceLengthAccessExpr",
	KindAwaitExpr:              "AwaitExpr",
	KindStructLiteralExpr:      "StructLiteralExpr",
	KindStructLiteralField:     "StructLiteralField",
	KindArrayLiteralExpr:       "ArrayLiteralExpr",
	KindTupleLiteralExpr:       "TupleLiteralExpr",
	KindEnumVariantExpr:        "EnumVariantExpr",
	KindConstExpr:              "ConstExpr",
	KindIdentifierExpr:         "IdentifierExpr",
	KindIntegerLiteral:         "IntegerLiteral",
	KindFloatLiteral:           "FloatLiteral",
	KindStringLiteral:          "StringLiteral",
	KindBoolLiteral:            "BoolLiteral",
	KindCharLiteral:            "CharLiteral",
	KindUnitLiteral:            "UnitLiteral",
	KindBaseType:               "BaseType",
	KindSliceType:              "SliceType",
	KindArrayType:              "ArrayType",
	KindPtrType:                "PtrType",
	KindStructType:             "StructType",
	KindEnumType:               "EnumType",
	KindTupleType:              "TupleType",
	KindResultType:             "ResultType",
	KindOptionType:             "OptionType",
	KindTaskHandleType:         "TaskHandleType",
	KindVoidType:               "VoidType",
	KindNoneMarker:             "NoneMarker",
	KindWildcardPattern:        "WildcardPattern",
	KindIdentifierPattern:      "IdentifierPattern",
	KindLiteralPattern:         "LiteralPattern",
	KindTuplePattern:           "TuplePattern",
	KindStructPattern:          "StructPattern",
	KindFieldPattern:           "FieldPattern",
	KindEnumPattern:            "EnumPattern",
	KindAnnotation:             "Annotation",
	KindOwnershipAnnotation:    "OwnershipAnnotation",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Node is implemented by every AST node variant. Pos/End report the
// node's source span; Kind identifies the concrete type for Children,
// Clone, Destroy, and the pretty printer.
type Node interface {
	NodeKind() Kind
	Pos() token.Position
	End() token.Position
}

// base is embedded by every concrete node type. It carries the span set at
// construction (never mutated afterward) and the type-info decoration slot,
// which is opaque to the parser: semantic passes fill it in later without
// restructuring the tree.
type base struct {
	Kind Kind
	Span token.Span

	// TypeInfo is an opaque, borrow-compatible annotation slot. The parser
	// never sets it. Clone shares the value by default (see clone.go) since
	// this AST does not know how to deep-copy whatever a later pass puts here.
	TypeInfo any
}

func (b *base) NodeKind() Kind      { return b.Kind }
func (b *base) Pos() token.Position { return b.Span.Start }
func (b *base) End() token.Position { return b.Span.End }

func newBase(kind Kind, span token.Span) base {
	return base{Kind: kind, Span: span}
}
