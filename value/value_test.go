package value_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
	"go.creack.net/arith/value"
)

func TestFromExprNumber(t *testing.T) {
	v := value.FromExpr(ast.NumberExpr{Value: 42})
	assert.Equal(t, value.Value{"type": "Number", "value": 42.0}, v)
}

func TestFromExprUnary(t *testing.T) {
	v := value.FromExpr(ast.UnaryExpr{Op: lexer.TokDash, Right: ast.NumberExpr{Value: 5}})
	assert.Equal(t, value.Value{
		"type": "Unary",
		"op":   "-",
		"expr": value.Value{"type": "Number", "value": 5.0},
	}, v)
}

func TestFromExprBinary(t *testing.T) {
	expr := ast.BinaryExpr{
		Left:  ast.NumberExpr{Value: 2},
		Op:    lexer.TokMultiply,
		Right: ast.BinaryExpr{Left: ast.NumberExpr{Value: 3}, Op: lexer.TokPlus, Right: ast.NumberExpr{Value: 4}},
	}
	v := value.FromExpr(expr)
	assert.Equal(t, value.Value{
		"type": "Binary",
		"op":   "*",
		"left": value.Value{"type": "Number", "value": 2.0},
		"right": value.Value{
			"type":  "Binary",
			"op":    "+",
			"left":  value.Value{"type": "Number", "value": 3.0},
			"right": value.Value{"type": "Number", "value": 4.0},
		},
	}, v)
}

func TestValueJSON(t *testing.T) {
	v := value.FromExpr(ast.BinaryExpr{
		Left:  ast.NumberExpr{Value: 1},
		Op:    lexer.TokSlash,
		Right: ast.NumberExpr{Value: 2},
	})

	buf, err := json.Marshal(v)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf, &decoded))
	assert.Equal(t, "Binary", decoded["type"])
	assert.Equal(t, "/", decoded["op"])
	assert.JSONEq(t, string(buf), v.String())
}
