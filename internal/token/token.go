package token

// Kind identifies the lexical category of a Token.
type Kind int

const (
	// Structural

	EOF Kind = iota
	Invalid

	// Literals

	Integer
	Float
	String
	Char
	True
	False

	// Identifier

	Ident

	// Keywords

	Package
	Import
	As
	Pub
	Priv
	Fn
	Struct
	Enum
	Extern
	Let
	Const
	Mut
	If
	Else
	For
	In
	Return
	Break
	Continue
	Match
	Spawn
	Unsafe
	Sizeof
	Impl
	SelfKw
	SpawnWithHandle
	Await

	// Type keywords

	IntType
	FloatType
	BoolType
	StringType
	Void
	None
	Usize
	Isize
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	U128
	I128
	F32
	F64
	ResultType
	OptionType
	TaskHandleType
	NeverType

	// Operators and punctuation

	Plus
	Minus
	Star
	Slash
	Percent
	Amp
	Pipe
	Caret
	Tilde
	Shl
	Shr
	AmpAmp
	PipePipe
	Bang
	EqEq
	NotEq
	Lt
	LtEq
	Gt
	GtEq
	Assign
	Arrow    // ->
	FatArrow // =>
	Dot
	ColonColon
	Colon
	Semicolon
	Comma
	Ellipsis
	Hash
	At
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
)

// keywords maps exact-match keyword spellings to their Kind. Lookup is by
// length+bytes equality, matching spec.md's "fixed at construction" table.
var keywords = map[string]Kind{
	"package":           Package,
	"import":            Import,
	"as":                As,
	"pub":               Pub,
	"priv":              Priv,
	"fn":                Fn,
	"struct":            Struct,
	"enum":              Enum,
	"extern":            Extern,
	"let":               Let,
	"const":             Const,
	"mut":               Mut,
	"if":                If,
	"else":              Else,
	"for":               For,
	"in":                In,
	"return":            Return,
	"break":             Break,
	"continue":          Continue,
	"match":             Match,
	"spawn":             Spawn,
	"unsafe":            Unsafe,
	"sizeof":            Sizeof,
	"impl":              Impl,
	"self":              SelfKw,
	"true":              True,
	"false":             False,
	"spawn_with_handle": SpawnWithHandle,
	"await":             Await,

	"int":        IntType,
	"float":      FloatType,
	"bool":       BoolType,
	"string":     StringType,
	"void":       Void,
	"none":       None,
	"usize":      Usize,
	"isize":      Isize,
	"u8":         U8,
	"u16":        U16,
	"u32":        U32,
	"u64":        U64,
	"i8":         I8,
	"i16":        I16,
	"i32":        I32,
	"i64":        I64,
	"u128":       U128,
	"i128":       I128,
	"f32":        F32,
	"f64":        F64,
	"Result":     ResultType,
	"Option":     OptionType,
	"TaskHandle": TaskHandleType,
	"Never":      NeverType,
}

// LookupKeyword returns the keyword Kind for text, or Ident if it is not a
// reserved word.
func LookupKeyword(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Ident
}

// Token is a value-copyable tagged union: a Kind plus whatever payload that
// kind carries. Only the field(s) matching Kind are meaningful; the rest are
// zero. Deep-cloning a Token is a plain value copy since Go strings are
// immutable and already safe to share.
type Token struct {
	Kind Kind
	Pos  Position

	// Lexeme is the raw source text, used for error messages and for
	// non-literal punctuation/keywords where the text is self-describing.
	Lexeme string

	// Literal payloads. Exactly one is meaningful, selected by Kind.
	IntValue    int64
	FloatValue  float64
	StringValue string
	CharValue   rune
	Name        string // Ident payload; never empty for Kind == Ident
}

// Clone returns an independent copy of t. Because every field is either a
// value type or an immutable Go string, this is a plain copy — provided for
// symmetry with the AST's deep-clone contract and so callers don't need to
// know that strings don't need duplicating in Go.
func (t Token) Clone() Token {
	return t
}

// String renders "KIND(lexeme) at position" for diagnostics and debugging.
func (t Token) String() string {
	return t.Kind.String() + "(" + t.Lexeme + ") at " + t.Pos.String()
}

// IsKeyword reports whether k is one of the reserved keyword kinds (the
// control/declaration keywords, not the type keywords).
func (k Kind) IsKeyword() bool {
	return k >= Package && k <= Await
}

// IsTypeKeyword reports whether k is one of the built-in type keywords.
func (k Kind) IsTypeKeyword() bool {
	return k >= IntType && k <= NeverType
}

// IsLiteral reports whether k carries a literal payload.
func (k Kind) IsLiteral() bool {
	return k >= Integer && k <= False
}
