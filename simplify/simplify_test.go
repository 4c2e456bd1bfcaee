package simplify_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
	"go.creack.net/arith/parser"
	"go.creack.net/arith/simplify"
)

func parse(t *testing.T, input string) ast.Expr {
	t.Helper()
	expr, err := parser.ParseAll(lexer.Tokenize(input))
	require.NoError(t, err)
	return expr
}

func TestSimplifyFolds(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "literal", input: "42", want: 42},
		{name: "addition", input: "1+2", want: 3},
		{name: "precedence", input: "2+3*4", want: 14},
		{name: "grouping", input: "(2+3)*4", want: 20},
		{name: "left assoc", input: "10-3-2", want: 5},
		{name: "unary minus", input: "-5", want: -5},
		{name: "unary plus", input: "+5", want: 5},
		{name: "unary chain", input: "--5", want: 5},
		{name: "mixed unary chain", input: "-+-5", want: 5},
		{name: "division", input: "8/4/2", want: 1},
		{name: "decimal", input: "1.5*2", want: 3},
		{name: "negative zero", input: "-0", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			folded := simplify.Simplify(parse(t, tc.input))
			n, ok := folded.(ast.NumberExpr)
			require.True(t, ok, "expected NumberExpr, got %s", folded.Dump())
			assert.Equal(t, tc.want, n.Value)
		})
	}
}

// Division by zero folds with float64 semantics rather than failing.
func TestSimplifyDivisionByZero(t *testing.T) {
	n, ok := simplify.Simplify(parse(t, "1/0")).(ast.NumberExpr)
	require.True(t, ok)
	assert.True(t, math.IsInf(n.Value, 1), "1/0 should fold to +Inf, got %v", n.Value)

	n, ok = simplify.Simplify(parse(t, "-1/0")).(ast.NumberExpr)
	require.True(t, ok)
	assert.True(t, math.IsInf(n.Value, -1), "-1/0 should fold to -Inf, got %v", n.Value)

	n, ok = simplify.Simplify(parse(t, "0/0")).(ast.NumberExpr)
	require.True(t, ok)
	assert.True(t, math.IsNaN(n.Value), "0/0 should fold to NaN, got %v", n.Value)
}

func TestSimplifyIdempotent(t *testing.T) {
	for _, input := range []string{"42", "1+2*3", "(2+3)*4", "--5", "10-3-2", "1/0"} {
		once := simplify.Simplify(parse(t, input))
		twice := simplify.Simplify(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

// Simplify builds replacement nodes, it does not rewrite its input.
func TestSimplifyLeavesInputIntact(t *testing.T) {
	expr := parse(t, "1+2")
	_ = simplify.Simplify(expr)

	b, ok := expr.(ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.NumberExpr{Value: 1}, b.Left)
	assert.Equal(t, lexer.TokPlus, b.Op)
	assert.Equal(t, ast.NumberExpr{Value: 2}, b.Right)
}
