package lexer

import (
	"fmt"
)

type TokenKind int

const (
	WHITESPACE TokenKind = iota

	IDENT
	CONST

	ASSIGN // =

	LPAREN // (
	RPAREN // )

	IF
	WHILE
	END

	OPERATOR // < > + - * /
)

func (tk TokenKind) String() string {
	switch tk {
	case WHITESPACE:
		return "WHITESPACE"
	case IDENT:
		return "IDENT"
	case CONST:
		return "CONST"
	case ASSIGN:
		return "ASSIGN"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case IF:
		return "IF"
	case WHILE:
		return "WHILE"
	case END:
		return "END"
	case OPERATOR:
		return "OPERATOR"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

type OperatorType int

const (
	UNDEFINED OperatorType = iota
	PLUS
	MINUS
	MULTIPLICATION
	DIVISION
	LESS
	GREATER
)

func (ot OperatorType) String() string {
	switch ot {
	case UNDEFINED:
		return "UNDEFINED"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MULTIPLICATION:
		return "MULTIPLICATION"
	case DIVISION:
		return "DIVISION"
	case LESS:
		return "LESS"
	case GREATER:
		return "GREATER"
	default:
		panic(fmt.Sprintf("OperatorType.String(): received illegal operator type: %d", ot))
	}
}

// Token is a classified byte range of the source. Tokens never copy the
// text they cover; use Text to slice it out of the source.
type Token struct {
	Begin int
	Len   int
	Kind  TokenKind
}

func (t Token) End() int {
	return t.Begin + t.Len
}

func (t Token) Text(src string) string {
	return src[t.Begin:t.End()]
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%d..%d]", t.Kind, t.Begin, t.End())
}

// OperatorTypeOf maps an OPERATOR token to its semantic type. Every other
// token maps to UNDEFINED.
func OperatorTypeOf(t Token, src string) OperatorType {
	if t.Kind != OPERATOR || t.Len != 1 {
		return UNDEFINED
	}

	switch src[t.Begin] {
	case '+':
		return PLUS
	case '-':
		return MINUS
	case '*':
		return MULTIPLICATION
	case '/':
		return DIVISION
	case '<':
		return LESS
	case '>':
		return GREATER
	}

	return UNDEFINED
}
