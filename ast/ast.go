// Package ast defines the tree representation of parsed arithmetic
// expressions.
package ast

// Expr is implemented by all expression nodes. The tree is strictly
// hierarchical: every node exclusively owns its children, nothing is
// shared or mutated after construction.
type Expr interface {
	Dump() string
	expr()
}
