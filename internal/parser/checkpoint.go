package parser

import (
	"github.com/asthra-lang/asthra-frontend/internal/lexer"
	"github.com/asthra-lang/asthra-frontend/internal/token"
)

// checkpoint is an opaque snapshot of parser progress, wrapping the lexer's
// own State alongside the parser's one-token lookahead buffer. Restoring a
// checkpoint makes the parser's next token identical to what it would have
// produced had the attempt never happened — the only backtracking mechanism
// this parser uses (spec.md §4.2.5, §9).
type checkpoint struct {
	lexState lexer.State
	current  token.Token
	peeked   *token.Token
	previous token.Token
}

func (p *Parser) mark() checkpoint {
	return checkpoint{
		lexState: p.lex.Mark(),
		current:  p.current,
		peeked:   p.peeked,
		previous: p.previous,
	}
}

func (p *Parser) reset(c checkpoint) {
	p.lex.Reset(c.lexState)
	p.current = c.current
	p.peeked = c.peeked
	p.previous = c.previous
}
