// Package simplify implements constant folding over expression trees.
package simplify

import (
	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
)

// Simplify rewrites e bottom-up, replacing every subtree whose
// operands are all literal numbers with the computed literal. It is
// pure and total: it never fails and never mutates its input,
// non-foldable nodes are rebuilt around their simplified children.
// Division by zero follows float64 semantics and folds to an infinity
// or NaN.
//
// This is a local constant-folding pass only: no algebraic identities,
// no reassociation.
func Simplify(e ast.Expr) ast.Expr {
	switch e := e.(type) {
	case ast.UnaryExpr:
		right := Simplify(e.Right)
		n, ok := right.(ast.NumberExpr)
		if !ok {
			return ast.UnaryExpr{Op: e.Op, Right: right}
		}
		if e.Op == lexer.TokDash {
			return ast.NumberExpr{Value: -n.Value}
		}
		return n
	case ast.BinaryExpr:
		left, right := Simplify(e.Left), Simplify(e.Right)
		l, lok := left.(ast.NumberExpr)
		r, rok := right.(ast.NumberExpr)
		if !lok || !rok {
			return ast.BinaryExpr{Left: left, Op: e.Op, Right: right}
		}
		switch e.Op {
		case lexer.TokPlus:
			return ast.NumberExpr{Value: l.Value + r.Value}
		case lexer.TokDash:
			return ast.NumberExpr{Value: l.Value - r.Value}
		case lexer.TokMultiply:
			return ast.NumberExpr{Value: l.Value * r.Value}
		case lexer.TokSlash:
			return ast.NumberExpr{Value: l.Value / r.Value}
		}
		return ast.BinaryExpr{Left: left, Op: e.Op, Right: right}
	default:
		return e
	}
}
