package lexer

import "strings"

const digits = "0123456789"
const whitespace = " \t\n\r\v\f"

type stateFn func(*Lexer) stateFn

func lexText(l *Lexer) stateFn {
	if l.atEOF {
		return l.emit(TokEOF)
	}

	// List of runes that just advance one and emit a token.
	singles := map[rune]TokenType{
		'+': TokPlus,
		'-': TokDash,
		'*': TokMultiply,
		'/': TokSlash,
		'(': TokParenLeft,
		')': TokParenRight,
	}

	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case strings.ContainsRune(whitespace, r):
		l.acceptRun(whitespace)
		l.ignore()
		return lexText
	case r >= '0' && r <= '9', r == '.':
		return lexNumber
	default:
		l.next()
		if tok, ok := singles[r]; ok {
			return l.emit(tok)
		}
		return l.emit(TokSymbol)
	}
}

// lexNumber accumulates a maximal run of digit and decimal-point
// characters. "1.2.3" is a single number token here, rejected later by
// the parser.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits + ".")
	return l.emit(TokNumber)
}
