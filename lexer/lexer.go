// Package lexer provides a simple lexical analyzer for infix
// arithmetic expressions.
//
// Lexing is total: it never fails, for any input. Numbers are scanned
// as maximal runs of digit and decimal-point characters without
// checking well-formedness; the parser rejects malformed numerals when
// it converts them.
package lexer

import (
	"strings"
	"unicode/utf8"
)

// eof marks the end of the input. It is out of band: a literal NUL
// byte in the input is a regular character and lexes as TokSymbol.
const eof rune = -1

type Lexer struct {
	input string

	curToken Token

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken scans and returns the next token. Once the input is
// exhausted, it returns TokEOF forever.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Value: "", pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Tokenize runs a lexer over the whole input and returns the flat
// token sequence, without the trailing EOF token. It never fails:
// characters outside the grammar come out as TokSymbol tokens.
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emit(tt TokenType) stateFn {
	l.curToken = l.thisToken(tt)
	return nil
}

func (l *Lexer) ignore() {
	l.start = l.pos
}
