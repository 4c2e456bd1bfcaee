package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokEOF TokenType = iota

	// Literals.
	TokNumber

	// Operators.
	TokPlus
	TokDash
	TokMultiply
	TokSlash

	// Grouping.
	TokParenLeft
	TokParenRight

	// Any other character, kept as a single-character token so the
	// parser can reject it with a position.
	TokSymbol

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation.
var tokenTypeStrings = map[TokenType]string{
	TokEOF: "EOF",

	TokNumber: "NUMBER",

	TokPlus:     "+",
	TokDash:     "-",
	TokMultiply: "*",
	TokSlash:    "/",

	TokParenLeft:  "(",
	TokParenRight: ")",

	TokSymbol: "SYMBOL",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical unit of an arithmetic expression: either
// a maximal run of digit/decimal-point characters or a single
// non-whitespace character.
type Token struct {
	Type  TokenType
	Value string

	pos int
}

// Pos returns the byte offset of the start of the token in the input.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	if t.Type == TokEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}
