package lexer

import (
	"fmt"
)

type ErrorKind int

const (
	STRING_TOO_SHORT ErrorKind = iota
	INVALID_SYMBOL
	IDENTIFIER_OR_CONSTANT_EXPECTED
	UNCLOSED_PARENTHESIS
	UNFINISHED_STATEMENT
)

func (ek ErrorKind) String() string {
	switch ek {
	case STRING_TOO_SHORT:
		return "STRING_IS_TOO_SHORT"
	case INVALID_SYMBOL:
		return "INVALID_SYMBOL"
	case IDENTIFIER_OR_CONSTANT_EXPECTED:
		return "IDENTIFIER_OR_CONSTANT_EXPECTED"
	case UNCLOSED_PARENTHESIS:
		return "UNCLOSED_PARENTHESIS"
	case UNFINISHED_STATEMENT:
		return "UNFINISHED_STATEMENT"
	default:
		panic(fmt.Sprintf("ErrorKind.String(): received illegal error kind: %d", ek))
	}
}

// LexError is the only error the lexical grammar produces. Pos is a byte
// offset into the source.
type LexError struct {
	Cause ErrorKind
	Pos   int
}

func newLexError(cause ErrorKind, pos int) *LexError {
	return &LexError{
		Cause: cause,
		Pos:   pos,
	}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at pos %d", e.Cause, e.Pos)
}

func (e *LexError) GetMessage() string {
	return e.Error()
}

func (e *LexError) GetPos() int {
	return e.Pos
}
