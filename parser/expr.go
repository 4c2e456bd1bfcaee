package parser

import (
	"strconv"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
)

// parseExpression is the grammar entry point. Precedence, low to high:
// additive, multiplicative, unary, primary.
func parseExpression(p *parser) (ast.Expr, error) {
	return parseAdditive(p)
}

func parseAdditive(p *parser) (ast.Expr, error) {
	left, err := parseMultiplicative(p)
	if err != nil {
		return nil, err
	}
	// Left-associative: 10-3-2 is (10-3)-2.
	for {
		tok, ok := p.cur()
		if !ok || !tok.Type.IsOneOf(lexer.TokPlus, lexer.TokDash) {
			return left, nil
		}
		p.nextToken()
		right, err := parseMultiplicative(p)
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Left: left, Op: tok.Type, Right: right}
	}
}

func parseMultiplicative(p *parser) (ast.Expr, error) {
	left, err := parseUnary(p)
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.cur()
		if !ok || !tok.Type.IsOneOf(lexer.TokMultiply, lexer.TokSlash) {
			return left, nil
		}
		p.nextToken()
		right, err := parseUnary(p)
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Left: left, Op: tok.Type, Right: right}
	}
}

// parseUnary handles prefix + and -, recursing into itself so that
// chains like --5 nest.
func parseUnary(p *parser) (ast.Expr, error) {
	tok, ok := p.cur()
	if !ok {
		return nil, &EndOfInputError{Col: p.endPos()}
	}
	if !tok.Type.IsOneOf(lexer.TokPlus, lexer.TokDash) {
		return parsePrimary(p)
	}
	p.nextToken()
	right, err := parseUnary(p)
	if err != nil {
		return nil, err
	}
	return ast.UnaryExpr{Op: tok.Type, Right: right}, nil
}

// parsePrimary handles parenthesized expressions and number literals.
// Any other token must convert as a float literal, so malformed
// numerals such as "1.2.3" are caught here rather than in the lexer.
func parsePrimary(p *parser) (ast.Expr, error) {
	tok, ok := p.cur()
	if !ok {
		return nil, &EndOfInputError{Col: p.endPos()}
	}
	if tok.Type == lexer.TokParenLeft {
		p.nextToken()
		expr, err := parseExpression(p)
		if err != nil {
			return nil, err
		}
		closing, ok := p.cur()
		if !ok {
			return nil, &BracketError{Col: tok.Pos()}
		}
		if closing.Type != lexer.TokParenRight {
			return nil, &BracketError{Col: closing.Pos(), Got: closing.Value}
		}
		p.nextToken()
		return expr, nil
	}
	number, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return nil, &NumberError{Col: tok.Pos(), Text: tok.Value}
	}
	p.nextToken()
	return ast.NumberExpr{Value: number}, nil
}
