package ast

import (
	"fmt"
	"strconv"

	"go.creack.net/arith/lexer"
)

// NumberExpr is a literal number.
type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// UnaryExpr is a prefix + or - applied to an expression.
type UnaryExpr struct {
	Op    lexer.TokenType // TokPlus or TokDash.
	Right Expr
}

func (UnaryExpr) expr() {}

func (u UnaryExpr) Dump() string {
	return fmt.Sprintf("%s%s", u.Op, u.Right.Dump())
}

// BinaryExpr is an infix operator applied to two expressions.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.TokenType // TokPlus, TokDash, TokMultiply or TokSlash.
	Right Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Op, b.Right.Dump())
}
