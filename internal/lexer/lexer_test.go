package lexer

import (
	"testing"

	"github.com/asthra-lang/asthra-frontend/internal/token"
)

func TestLexer_Keywords(t *testing.T) {
	source := "package import pub priv fn struct enum extern let const mut if else for in return break continue match spawn unsafe sizeof impl self spawn_with_handle await"
	l := New(source, "test.asthra")

	expected := []token.Kind{
		token.Package, token.Import, token.Pub, token.Priv, token.Fn, token.Struct,
		token.Enum, token.Extern, token.Let, token.Const, token.Mut, token.If,
		token.Else, token.For, token.In, token.Return, token.Break, token.Continue,
		token.Match, token.Spawn, token.Unsafe, token.Sizeof, token.Impl, token.SelfKw,
		token.SpawnWithHandle, token.Await, token.EOF,
	}

	for i, want := range expected {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.Kind != want {
			t.Errorf("token %d: expected %v, got %v", i, want, tok.Kind)
		}
	}
}

func TestLexer_TypeKeywords(t *testing.T) {
	source := "int float bool string void none usize isize u8 i32 u128 i128 f32 f64 Result Option TaskHandle Never"
	l := New(source, "test.asthra")

	expected := []token.Kind{
		token.IntType, token.FloatType, token.BoolType, token.StringType, token.Void,
		token.None, token.Usize, token.Isize, token.U8, token.I32, token.U128,
		token.I128, token.F32, token.F64, token.ResultType, token.OptionType,
		token.TaskHandleType, token.NeverType, token.EOF,
	}

	for i, want := range expected {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.Kind != want {
			t.Errorf("token %d: expected %v, got %v", i, want, tok.Kind)
		}
	}
}

func TestLexer_Identifiers(t *testing.T) {
	source := "foo bar_baz _temp myVar123"
	l := New(source, "test.asthra")

	expected := []string{"foo", "bar_baz", "_temp", "myVar123"}

	for i, name := range expected {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.Kind != token.Ident {
			t.Errorf("token %d: expected Ident, got %v", i, tok.Kind)
		}
		if tok.Name != name {
			t.Errorf("token %d: expected name %q, got %q", i, name, tok.Name)
		}
	}
}

func TestLexer_IntegerLiterals(t *testing.T) {
	tests := []struct {
		source string
		want   int64
	}{
		{"42", 42},
		{"0", 0},
		{"0x1A", 0x1A},
		{"0xff", 0xff},
		{"0o17", 0o17},
		{"0b1010", 0b1010},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			l := New(tt.source, "test.asthra")
			tok, err := l.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Kind != token.Integer {
				t.Fatalf("expected Integer, got %v", tok.Kind)
			}
			if tok.IntValue != tt.want {
				t.Errorf("expected %d, got %d", tt.want, tok.IntValue)
			}
		})
	}
}

func TestLexer_FloatLiterals(t *testing.T) {
	tests := []struct {
		source string
		want   float64
	}{
		{"3.14", 3.14},
		{"1.0e10", 1.0e10},
		{"2.5e-3", 2.5e-3},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			l := New(tt.source, "test.asthra")
			tok, err := l.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Kind != token.Float {
				t.Fatalf("expected Float, got %v", tok.Kind)
			}
			if tok.FloatValue != tt.want {
				t.Errorf("expected %v, got %v", tt.want, tok.FloatValue)
			}
		})
	}
}

func TestLexer_IntegerThenDot_IsNotAFloat(t *testing.T) {
	// "42.field" must lex as Integer, Dot, Ident, not a malformed float.
	l := New("42.field", "test.asthra")

	tok, err := l.NextToken()
	if err != nil || tok.Kind != token.Integer || tok.IntValue != 42 {
		t.Fatalf("expected Integer(42), got %v err=%v", tok, err)
	}
	tok, err = l.NextToken()
	if err != nil || tok.Kind != token.Dot {
		t.Fatalf("expected Dot, got %v err=%v", tok, err)
	}
	tok, err = l.NextToken()
	if err != nil || tok.Kind != token.Ident || tok.Name != "field" {
		t.Fatalf("expected Ident(field), got %v err=%v", tok, err)
	}
}

func TestLexer_StringLiterals(t *testing.T) {
	source := `"hello" "line\nbreak" "quote\"inside" "unicode \u{48}\u{49}"`
	l := New(source, "test.asthra")

	expected := []string{"hello", "line\nbreak", "quote\"inside", "unicode HI"}

	for i, want := range expected {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.Kind != token.String {
			t.Errorf("token %d: expected String, got %v", i, tok.Kind)
		}
		if tok.StringValue != want {
			t.Errorf("token %d: expected %q, got %q", i, want, tok.StringValue)
		}
	}
}

func TestLexer_MultiLineStrings(t *testing.T) {
	source := "\"\"\"line one\nline two\"\"\""
	l := New(source, "test.asthra")

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.String {
		t.Fatalf("expected String, got %v", tok.Kind)
	}
	want := "line one\nline two"
	if tok.StringValue != want {
		t.Errorf("expected %q, got %q", want, tok.StringValue)
	}
}

func TestLexer_RawMultiLineStrings(t *testing.T) {
	source := `r"""C:\no\escapes\here"""`
	l := New(source, "test.asthra")

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.String {
		t.Fatalf("expected String, got %v", tok.Kind)
	}
	want := `C:\no\escapes\here`
	if tok.StringValue != want {
		t.Errorf("expected %q, got %q", want, tok.StringValue)
	}
}

func TestLexer_CharLiterals(t *testing.T) {
	tests := []struct {
		source string
		want   rune
	}{
		{`'a'`, 'a'},
		{`'\n'`, '\n'},
		{`'\''`, '\''},
		{`'\0'`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			l := New(tt.source, "test.asthra")
			tok, err := l.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Kind != token.Char {
				t.Fatalf("expected Char, got %v", tok.Kind)
			}
			if tok.CharValue != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tok.CharValue)
			}
		})
	}
}

func TestLexer_Operators(t *testing.T) {
	source := "+ - * / % & | ^ ~ << >> && || ! == != < <= > >= = -> => . :: : ; , ... # @"
	l := New(source, "test.asthra")

	expected := []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Amp, token.Pipe, token.Caret, token.Tilde, token.Shl, token.Shr,
		token.AmpAmp, token.PipePipe, token.Bang, token.EqEq, token.NotEq,
		token.Lt, token.LtEq, token.Gt, token.GtEq, token.Assign, token.Arrow,
		token.FatArrow, token.Dot, token.ColonColon, token.Colon, token.Semicolon,
		token.Comma, token.Ellipsis, token.Hash, token.At, token.EOF,
	}

	for i, want := range expected {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.Kind != want {
			t.Errorf("token %d: expected %v, got %v", i, want, tok.Kind)
		}
	}
}

func TestLexer_Comments(t *testing.T) {
	source := "foo // a line comment\nbar /* a\nblock comment */ baz"
	l := New(source, "test.asthra")

	expected := []string{"foo", "bar", "baz"}
	for i, name := range expected {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.Name != name {
			t.Errorf("token %d: expected %q, got %q", i, name, tok.Name)
		}
	}
}

func TestLexer_PositionTracking(t *testing.T) {
	source := "foo\nbar baz"
	l := New(source, "test.asthra")

	tok, _ := l.NextToken() // foo, line 1 col 1
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Errorf("foo: expected 1:1, got %d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	tok, _ = l.NextToken() // bar, line 2 col 1
	if tok.Pos.Line != 2 || tok.Pos.Column != 1 {
		t.Errorf("bar: expected 2:1, got %d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	tok, _ = l.NextToken() // baz, line 2 col 5
	if tok.Pos.Line != 2 || tok.Pos.Column != 5 {
		t.Errorf("baz: expected 2:5, got %d:%d", tok.Pos.Line, tok.Pos.Column)
	}
}

func TestLexer_MarkReset(t *testing.T) {
	source := "Option < i32 >"
	l := New(source, "test.asthra")

	l.NextToken() // Option
	mark := l.Mark()

	tok, _ := l.NextToken()
	if tok.Kind != token.Lt {
		t.Fatalf("expected Lt, got %v", tok.Kind)
	}
	l.NextToken() // i32
	l.NextToken() // >

	l.Reset(mark)
	tok, _ = l.NextToken()
	if tok.Kind != token.Lt {
		t.Fatalf("after reset: expected Lt again, got %v", tok.Kind)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	l := New(`"oops`, "test.asthra")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}
}

func TestLexer_InvalidCharacter(t *testing.T) {
	l := New("$", "test.asthra")
	tok, err := l.NextToken()
	if err == nil {
		t.Fatal("expected error for invalid character")
	}
	if tok.Kind != token.Invalid {
		t.Errorf("expected Invalid kind, got %v", tok.Kind)
	}
}

func TestLexer_RoundTrip_Lexemes(t *testing.T) {
	// Every non-literal token's Lexeme must equal its canonical Kind spelling
	// (spec.md §8 round-trip property).
	source := "pub fn struct -> :: ..."
	l := New(source, "test.asthra")
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind == token.EOF {
			break
		}
		if tok.Lexeme != tok.Kind.String() {
			t.Errorf("lexeme %q does not match canonical spelling %q", tok.Lexeme, tok.Kind.String())
		}
	}
}
