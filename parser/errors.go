package parser

import "strconv"

// ParseError is an error with position information. Every error
// resulting from malformed input implements ParseError.
type ParseError interface {
	error
	// Pos returns the byte offset in the input of the token that
	// caused the error.
	Pos() int
}

// NumberError indicates a token that does not form a valid floating
// point literal where one was required, e.g. "1.2.3" or a lone ".".
type NumberError struct {
	// Col is the position of the token.
	Col int
	// Text is the offending token.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int { return err.Col }

// EndOfInputError indicates that the parser needed another token, an
// operand or a closing parenthesis, but the input was exhausted.
type EndOfInputError struct {
	// Col is the position just past the last token.
	Col int
}

func (err *EndOfInputError) Error() string {
	return errpos(err.Col, "unexpected end of input")
}

func (err *EndOfInputError) Pos() int { return err.Col }

// BracketError indicates an opening parenthesis with no matching ")"
// at the expected position.
type BracketError struct {
	// Col is the position of the open parenthesis when the input
	// ended, or of the token found in place of ")".
	Col int
	// Got is the token found where ")" was required, empty when the
	// input ended first.
	Got string
}

func (err *BracketError) Error() string {
	if err.Got == "" {
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	}
	return errpos(err.Col, "expected ) but got "+strconv.Quote(err.Got))
}

func (err *BracketError) Pos() int { return err.Col }

// TrailingTokenError indicates leftover tokens after a complete
// expression, e.g. "1 2" or "1)".
type TrailingTokenError struct {
	// Col is the position of the first leftover token.
	Col int
	// Token is the first leftover token.
	Token string
}

func (err *TrailingTokenError) Error() string {
	return errpos(err.Col, "unexpected trailing token "+strconv.Quote(err.Token))
}

func (err *TrailingTokenError) Pos() int { return err.Col }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ ParseError = (*NumberError)(nil)
	_ ParseError = (*EndOfInputError)(nil)
	_ ParseError = (*BracketError)(nil)
	_ ParseError = (*TrailingTokenError)(nil)
)
