// Package arith parses infix arithmetic expressions, folds constant
// subtrees and hands the result back as a host-agnostic tagged record.
//
// The pipeline is lexer -> parser -> simplify -> value. Every stage is
// a pure function of its input: no shared state, no I/O, safe for any
// number of concurrent callers.
package arith

import (
	"fmt"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
	"go.creack.net/arith/parser"
	"go.creack.net/arith/simplify"
	"go.creack.net/arith/value"
)

// Parse parses expression, folds constant subtrees and returns the
// result as a tagged record tree. Malformed input yields a
// parser.ParseError and no partial result.
func Parse(expression string) (value.Value, error) {
	expr, err := ParseExpr(expression)
	if err != nil {
		return nil, err
	}
	return value.FromExpr(simplify.Simplify(expr)), nil
}

// ParseExpr parses expression into its tree form without folding or
// serializing, for hosts that consume the typed representation
// directly.
func ParseExpr(expression string) (ast.Expr, error) {
	return parser.ParseAll(lexer.Tokenize(expression))
}

// Eval parses expression and folds it down to a single number. The
// grammar has no identifiers, so every parseable expression folds
// fully.
func Eval(expression string) (float64, error) {
	expr, err := ParseExpr(expression)
	if err != nil {
		return 0, err
	}
	n, ok := simplify.Simplify(expr).(ast.NumberExpr)
	if !ok {
		return 0, fmt.Errorf("expression %q did not fold to a number", expression)
	}
	return n.Value, nil
}
