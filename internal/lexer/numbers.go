package lexer

import (
	"strconv"

	"github.com/asthra-lang/asthra-frontend/internal/token"
)

// scanNumber scans decimal, hex (0x), octal (0o), and binary (0b) integers,
// and decimal floats with an optional exponent. l.current already points
// just past the first digit.
func (l *Lexer) scanNumber() (token.Token, error) {
	if l.source[l.start] == '0' && !l.isAtEnd() {
		switch l.peek() {
		case 'x', 'X':
			l.advance()
			return l.scanRadixInt(16, isHexDigit)
		case 'o', 'O':
			l.advance()
			return l.scanRadixInt(8, isOctalDigit)
		case 'b', 'B':
			l.advance()
			return l.scanRadixInt(2, isBinaryDigit)
		}
	}

	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}

	isFloat := false
	if !l.isAtEnd() && l.peek() == '.' && isDigit(l.peekAt(1)) {
		isFloat = true
		l.advance()
		for !l.isAtEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	if !l.isAtEnd() && (l.peek() == 'e' || l.peek() == 'E') {
		saved := l.current
		l.advance()
		if !l.isAtEnd() && (l.peek() == '+' || l.peek() == '-') {
			l.advance()
		}
		if l.isAtEnd() || !isDigit(l.peek()) {
			l.current = saved
		} else {
			isFloat = true
			for !l.isAtEnd() && isDigit(l.peek()) {
				l.advance()
			}
		}
	}

	text := l.source[l.start:l.current]
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return l.makeToken(token.Invalid, text), l.errorf("invalid float literal %q", text)
		}
		tok := l.makeToken(token.Float, text)
		tok.FloatValue = v
		return tok, nil
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return l.makeToken(token.Invalid, text), l.errorf("integer literal %q out of range", text)
	}
	tok := l.makeToken(token.Integer, text)
	tok.IntValue = v
	return tok, nil
}

func (l *Lexer) scanRadixInt(radix int, valid func(rune) bool) (token.Token, error) {
	digitsStart := l.current
	for !l.isAtEnd() && valid(l.peek()) {
		l.advance()
	}
	if l.current == digitsStart {
		text := l.source[l.start:l.current]
		return l.makeToken(token.Invalid, text), l.errorf("malformed numeric literal %q", text)
	}

	text := l.source[l.start:l.current]
	v, err := strconv.ParseInt(l.source[digitsStart:l.current], radix, 64)
	if err != nil {
		return l.makeToken(token.Invalid, text), l.errorf("integer literal %q out of range", text)
	}
	tok := l.makeToken(token.Integer, text)
	tok.IntValue = v
	return tok, nil
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isOctalDigit(ch rune) bool {
	return ch >= '0' && ch <= '7'
}

func isBinaryDigit(ch rune) bool {
	return ch == '0' || ch == '1'
}
