// Package parser builds expression trees from token sequences by
// recursive descent.
//
// Malformed input is reported as a typed ParseError; the parser never
// panics and never returns a partial tree alongside an error.
package parser

import (
	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
)

type parser struct {
	toks []lexer.Token
	pos  int
}

func newParser(toks []lexer.Token) *parser {
	return &parser{toks: toks}
}

// cur returns the current token without consuming it. ok is false when
// the sequence is exhausted.
func (p *parser) cur() (lexer.Token, bool) {
	if p.pos >= len(p.toks) {
		return lexer.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) nextToken() {
	p.pos++
}

// endPos is the position reported for end-of-input errors: just past
// the last token, or 0 for an empty sequence.
func (p *parser) endPos() int {
	if len(p.toks) == 0 {
		return 0
	}
	last := p.toks[len(p.toks)-1]
	return last.Pos() + len(last.Value)
}

// Parse parses a single expression from the front of toks. It returns
// the expression and the number of tokens consumed.
func Parse(toks []lexer.Token) (ast.Expr, int, error) {
	p := newParser(toks)
	expr, err := parseExpression(p)
	if err != nil {
		return nil, 0, err
	}
	return expr, p.pos, nil
}

// ParseAll parses toks as one complete expression. Leftover tokens
// after the expression are an error.
func ParseAll(toks []lexer.Token) (ast.Expr, error) {
	p := newParser(toks)
	expr, err := parseExpression(p)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.cur(); ok {
		return nil, &TrailingTokenError{Col: tok.Pos(), Token: tok.Value}
	}
	return expr, nil
}
