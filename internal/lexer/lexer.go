// Package lexer turns Asthra source bytes into a stream of token.Token
// values, tracking source positions and recognizing keywords, literals,
// operators, and punctuation. It is strictly single-threaded: a Lexer owns
// only its source buffer (borrowed, never freed by the lexer) and whatever
// payload bytes belong to the token it most recently produced.
package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/asthra-lang/asthra-frontend/internal/token"
)

// Lexer scans a borrowed source buffer into tokens on demand.
type Lexer struct {
	source   string
	filename string

	start     int // byte offset of the token currently being scanned
	current   int // byte offset of the next unexamined byte
	line      int // 1-based current line
	lineStart int // byte offset where the current line began
}

// New creates a Lexer over source, reporting positions against filename.
func New(source, filename string) *Lexer {
	return &Lexer{
		source:   source,
		filename: filename,
		line:     1,
	}
}

// State is an opaque snapshot of lexer progress. Because the lexer is a
// pure function of (source, start, current, line, lineStart), restoring a
// State makes NextToken deterministic again — this is the only backtracking
// mechanism the parser needs (spec.md §4.2.5, §9).
type State struct {
	start, current, line, lineStart int
}

// Mark captures the lexer's current position.
func (l *Lexer) Mark() State {
	return State{l.start, l.current, l.line, l.lineStart}
}

// Reset rewinds the lexer to a previously captured State.
func (l *Lexer) Reset(s State) {
	l.start, l.current, l.line, l.lineStart = s.start, s.current, s.line, s.lineStart
}

// NextToken scans and returns the next token, skipping whitespace and
// comments first. On a malformed literal it returns a token.Invalid token
// together with a descriptive error; the lexer never panics and callers may
// keep calling NextToken to recover further tokens.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespaceAndComments()
	l.start = l.current

	if l.isAtEnd() {
		return l.makeToken(token.EOF, ""), nil
	}

	ch, _ := l.advance()

	// Raw multi-line string: r"""...""". Checked before identifiers, which
	// would otherwise claim the leading 'r'.
	if ch == 'r' && l.peek() == '"' && l.peekAt(1) == '"' && l.peekAt(2) == '"' {
		l.advance()
		l.advance()
		l.advance()
		return l.scanTripleQuoted(true)
	}
	if isIdentStart(ch) {
		return l.scanIdentifier(), nil
	}
	if isDigit(ch) {
		return l.scanNumber()
	}

	switch ch {
	case '(':
		return l.makeToken(token.LParen, "("), nil
	case ')':
		return l.makeToken(token.RParen, ")"), nil
	case '{':
		return l.makeToken(token.LBrace, "{"), nil
	case '}':
		return l.makeToken(token.RBrace, "}"), nil
	case '[':
		return l.makeToken(token.LBracket, "["), nil
	case ']':
		return l.makeToken(token.RBracket, "]"), nil
	case ';':
		return l.makeToken(token.Semicolon, ";"), nil
	case ',':
		return l.makeToken(token.Comma, ","), nil
	case '~':
		return l.makeToken(token.Tilde, "~"), nil
	case '#':
		return l.makeToken(token.Hash, "#"), nil
	case '@':
		return l.makeToken(token.At, "@"), nil

	case '+':
		return l.makeToken(token.Plus, "+"), nil
	case '-':
		if l.match('>') {
			return l.makeToken(token.Arrow, "->"), nil
		}
		return l.makeToken(token.Minus, "-"), nil
	case '*':
		return l.makeToken(token.Star, "*"), nil
	case '/':
		return l.makeToken(token.Slash, "/"), nil
	case '%':
		return l.makeToken(token.Percent, "%"), nil

	case '&':
		if l.match('&') {
			return l.makeToken(token.AmpAmp, "&&"), nil
		}
		return l.makeToken(token.Amp, "&"), nil
	case '|':
		if l.match('|') {
			return l.makeToken(token.PipePipe, "||"), nil
		}
		return l.makeToken(token.Pipe, "|"), nil
	case '^':
		return l.makeToken(token.Caret, "^"), nil

	case '=':
		if l.match('=') {
			return l.makeToken(token.EqEq, "=="), nil
		}
		if l.match('>') {
			return l.makeToken(token.FatArrow, "=>"), nil
		}
		return l.makeToken(token.Assign, "="), nil
	case '!':
		if l.match('=') {
			return l.makeToken(token.NotEq, "!="), nil
		}
		return l.makeToken(token.Bang, "!"), nil

	case '<':
		if l.match('<') {
			return l.makeToken(token.Shl, "<<"), nil
		}
		if l.match('=') {
			return l.makeToken(token.LtEq, "<="), nil
		}
		return l.makeToken(token.Lt, "<"), nil
	case '>':
		if l.match('>') {
			return l.makeToken(token.Shr, ">>"), nil
		}
		if l.match('=') {
			return l.makeToken(token.GtEq, ">="), nil
		}
		return l.makeToken(token.Gt, ">"), nil

	case ':':
		if l.match(':') {
			return l.makeToken(token.ColonColon, "::"), nil
		}
		return l.makeToken(token.Colon, ":"), nil

	case '.':
		if l.peek() == '.' && l.peekAt(1) == '.' {
			l.advance()
			l.advance()
			return l.makeToken(token.Ellipsis, "..."), nil
		}
		return l.makeToken(token.Dot, "."), nil

	case '"':
		return l.scanString()

	case '\'':
		return l.scanChar()

	default:
		return l.makeToken(token.Invalid, string(ch)),
			l.errorf("unexpected character %q", ch)
	}
}

func (l *Lexer) advance() (rune, int) {
	if l.isAtEnd() {
		return 0, 0
	}
	ch, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	return ch, size
}

func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

// peekAt returns the rune n runes ahead of current without consuming
// anything. n is small (0-2) so a linear scan from current is cheap.
func (l *Lexer) peekAt(n int) rune {
	offset := l.current
	var ch rune
	for i := 0; i <= n; i++ {
		if offset >= len(l.source) {
			return 0
		}
		var size int
		ch, size = utf8.DecodeRuneInString(l.source[offset:])
		offset += size
	}
	return ch
}

func (l *Lexer) match(expected rune) bool {
	if l.isAtEnd() {
		return false
	}
	ch, size := utf8.DecodeRuneInString(l.source[l.current:])
	if ch != expected {
		return false
	}
	l.current += size
	return true
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		if l.isAtEnd() {
			return
		}
		switch ch := l.peek(); ch {
		case ' ', '\r', '\t':
			l.advance()
		case '\n':
			l.advance()
			l.line++
			l.lineStart = l.current
		case '/':
			if l.peekAt(1) == '/' {
				for !l.isAtEnd() && l.peek() != '\n' {
					l.advance()
				}
			} else if l.peekAt(1) == '*' {
				l.advance()
				l.advance()
				for !l.isAtEnd() {
					if l.peek() == '*' && l.peekAt(1) == '/' {
						l.advance()
						l.advance()
						break
					}
					if l.peek() == '\n' {
						l.line++
						l.advance()
						l.lineStart = l.current
						continue
					}
					l.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanIdentifier() token.Token {
	for !l.isAtEnd() {
		ch := l.peek()
		if isIdentPart(ch) {
			l.advance()
		} else {
			break
		}
	}
	text := l.source[l.start:l.current]
	kind := token.LookupKeyword(text)
	tok := l.makeToken(kind, text)
	if kind == token.Ident {
		tok.Name = text
	}
	return tok
}

func (l *Lexer) makeToken(kind token.Kind, lexeme string) token.Token {
	return token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Pos:    l.currentPos(),
	}
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Filename: l.filename,
		Line:     l.line,
		Column:   utf8.RuneCountInString(l.source[l.lineStart:l.start]) + 1,
		Offset:   l.start,
	}
}

func (l *Lexer) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", l.currentPos().String(), fmt.Sprintf(format, args...))
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
