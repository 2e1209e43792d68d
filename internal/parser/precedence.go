package parser

import "github.com/asthra-lang/asthra-frontend/internal/token"

// Precedence is a binary operator's binding strength; higher binds tighter.
// The twelve levels follow spec.md §4.2.5, all left-associative — the
// language has no right-associative binary operator and no assignment
// expression (assignment is statement-only, see stmt.go).
type Precedence int

const (
	PrecNone Precedence = iota
	PrecOr         // ||
	PrecAnd        // &&
	PrecBitOr      // |
	PrecBitXor     // ^
	PrecBitAnd     // &
	PrecEquality   // == !=
	PrecComparison // < <= > >=
	PrecShift      // << >>
	PrecTerm       // + -
	PrecFactor     // * / %
	PrecUnary      // prefix - ! ~ * & , sizeof
	PrecPostfix    // call, index, slice, field, .len, ::, await
)

func precedenceOf(kind token.Kind) Precedence {
	switch kind {
	case token.PipePipe:
		return PrecOr
	case token.AmpAmp:
		return PrecAnd
	case token.Pipe:
		return PrecBitOr
	case token.Caret:
		return PrecBitXor
	case token.Amp:
		return PrecBitAnd
	case token.EqEq, token.NotEq:
		return PrecEquality
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return PrecComparison
	case token.Shl, token.Shr:
		return PrecShift
	case token.Plus, token.Minus:
		return PrecTerm
	case token.Star, token.Slash, token.Percent:
		return PrecFactor
	default:
		return PrecNone
	}
}
