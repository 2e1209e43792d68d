package token

var kindNames = map[Kind]string{
	EOF:     "EOF",
	Invalid: "INVALID",

	Integer: "INTEGER",
	Float:   "FLOAT",
	String:  "STRING",
	Char:    "CHAR",
	True:    "TRUE",
	False:   "FALSE",

	Ident: "IDENT",

	Package:         "package",
	Import:          "import",
	As:              "as",
	Pub:             "pub",
	Priv:            "priv",
	Fn:              "fn",
	Struct:          "struct",
	Enum:            "enum",
	Extern:          "extern",
	Let:             "let",
	Const:           "const",
	Mut:             "mut",
	If:              "if",
	Else:            "else",
	For:             "for",
	In:              "in",
	Return:          "return",
	Break:           "break",
	Continue:        "continue",
	Match:           "match",
	Spawn:           "spawn",
	Unsafe:          "unsafe",
	Sizeof:          "sizeof",
	Impl:            "impl",
	SelfKw:          "self",
	SpawnWithHandle: "spawn_with_handle",
	Await:           "await",

	IntType:        "int",
	FloatType:      "float",
	BoolType:       "bool",
	StringType:     "string",
	Void:           "void",
	None:           "none",
	Usize:          "usize",
	Isize:          "isize",
	U8:             "u8",
	U16:            "u16",
	U32:            "u32",
	U64:            "u64",
	I8:             "i8",
	I16:            "i16",
	I32:            "i32",
	I64:            "i64",
	U128:           "u128",
	I128:           "i128",
	F32:            "f32",
	F64:            "f64",
	ResultType:     "Result",
	OptionType:     "Option",
	TaskHandleType: "TaskHandle",
	NeverType:      "Never",

	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	Amp:        "&",
	Pipe:       "|",
	Caret:      "^",
	Tilde:      "~",
	Shl:        "<<",
	Shr:        ">>",
	AmpAmp:     "&&",
	PipePipe:   "||",
	Bang:       "!",
	EqEq:       "==",
	NotEq:      "!=",
	Lt:         "<",
	LtEq:       "<=",
	Gt:         ">",
	GtEq:       ">=",
	Assign:     "=",
	Arrow:      "->",
	FatArrow:   "=>",
	Dot:        ".",
	ColonColon: "::",
	Colon:      ":",
	Semicolon:  ";",
	Comma:      ",",
	Ellipsis:   "...",
	Hash:       "#",
	At:         "@",
	LParen:     "(",
	RParen:     ")",
	LBracket:   "[",
	RBracket:   "]",
	LBrace:     "{",
	RBrace:     "}",
}

// String returns the canonical spelling of k, used in diagnostics and in
// the lexer round-trip property (spec.md §8).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}
