// Package value converts expression trees into a host-agnostic tagged
// record form, the only representation meant to cross the library
// boundary.
package value

import (
	"encoding/json"

	"go.creack.net/arith/ast"
)

// Value is a tagged record describing one tree node. The "type" field
// is one of "Number", "Unary" or "Binary"; the remaining fields depend
// on it:
//
//	Number: value (float64)
//	Unary:  op (string), expr (Value)
//	Binary: op (string), left (Value), right (Value)
type Value map[string]any

// FromExpr maps each node of e one-to-one to its tagged record
// equivalent, recursing into children. It is pure and total.
func FromExpr(e ast.Expr) Value {
	switch e := e.(type) {
	case ast.NumberExpr:
		return Value{"type": "Number", "value": e.Value}
	case ast.UnaryExpr:
		return Value{"type": "Unary", "op": e.Op.String(), "expr": FromExpr(e.Right)}
	case ast.BinaryExpr:
		return Value{"type": "Binary", "op": e.Op.String(), "left": FromExpr(e.Left), "right": FromExpr(e.Right)}
	}
	return nil
}

// String renders the value as JSON. Non-finite numbers (1/0 folds to
// +Inf) have no JSON encoding; for those the marshal error text is
// returned instead.
func (v Value) String() string {
	buf, err := json.Marshal(map[string]any(v))
	if err != nil {
		return err.Error()
	}
	return string(buf)
}
