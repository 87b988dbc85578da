package lexer

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, lexer Lexer, src string) ([]Token, int, error) {
	t.Helper()
	tokens := make([]Token, 0)
	pos, err := lexer(&tokens, 0, src)
	return tokens, pos, err
}

func requireLexError(t *testing.T, err error, cause ErrorKind, pos int) {
	t.Helper()
	require.Error(t, err)
	lexErr, ok := err.(*LexError)
	require.True(t, ok, "unexpected error type %T", err)
	assert.Equal(t, cause, lexErr.Cause, "cause")
	assert.Equal(t, pos, lexErr.Pos, "pos")
}

func TestLiteral(t *testing.T) {
	tokens, pos, err := run(t, KeywordWhile, "while x")
	require.NoError(t, err)
	assert.Equal(t, 5, pos)
	assert.Equal(t, []Token{{Begin: 0, Len: 5, Kind: WHILE}}, tokens)

	tokens, _, err = run(t, Literal(WHILE, "while"), "wh")
	requireLexError(t, err, STRING_TOO_SHORT, 2)
	assert.Empty(t, tokens)

	_, _, err = run(t, Literal(WHILE, "while"), "white")
	requireLexError(t, err, INVALID_SYMBOL, 3)
}

func TestAnyChar(t *testing.T) {
	_, _, err := run(t, Operator, "")
	requireLexError(t, err, STRING_TOO_SHORT, 0)

	_, _, err = run(t, Operator, "a")
	requireLexError(t, err, INVALID_SYMBOL, 0)

	tokens, pos, err := run(t, Operator, "*b")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, []Token{{Begin: 0, Len: 1, Kind: OPERATOR}}, tokens)
}

func TestSymbols(t *testing.T) {
	tokens, pos, err := run(t, Identifier, "abc1")
	require.NoError(t, err)
	assert.Equal(t, 3, pos)
	assert.Equal(t, []Token{{Begin: 0, Len: 3, Kind: IDENT}}, tokens)

	tokens, pos, err = run(t, Constant, "0042+")
	require.NoError(t, err)
	assert.Equal(t, 4, pos)
	assert.Equal(t, []Token{{Begin: 0, Len: 4, Kind: CONST}}, tokens)

	_, _, err = run(t, Constant, "x")
	requireLexError(t, err, INVALID_SYMBOL, 0)
}

func TestSequenceRollsBack(t *testing.T) {
	tokens, _, err := run(t, Sequence(Identifier, Assign), "ab+")
	requireLexError(t, err, INVALID_SYMBOL, 2)
	assert.Empty(t, tokens, spew.Sdump(tokens))
}

func TestAlternative(t *testing.T) {
	lexer := Alternative(Sequence(Identifier, Assign), Identifier)
	tokens, pos, err := run(t, lexer, "ab")
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
	assert.Equal(t, []Token{{Begin: 0, Len: 2, Kind: IDENT}}, tokens, spew.Sdump(tokens))

	_, _, err = run(t, Alternative(Constant, Operator), "x")
	requireLexError(t, err, INVALID_SYMBOL, 0)

	_, _, err = run(t, Alternative(), "x")
	requireLexError(t, err, INVALID_SYMBOL, 0)
}

func TestMany(t *testing.T) {
	tokens, pos, err := run(t, Whitespace, " \t\n x")
	require.NoError(t, err)
	assert.Equal(t, 4, pos)
	assert.Equal(t, []Token{{Begin: 0, Len: 4, Kind: WHITESPACE}}, tokens)

	_, _, err = run(t, Whitespace, "x")
	requireLexError(t, err, INVALID_SYMBOL, 0)

	tokens, pos, err = run(t, Many(Operator, 0), "x")
	require.NoError(t, err)
	assert.Equal(t, 0, pos)
	assert.Empty(t, tokens)

	tokens, pos, err = run(t, Many(Operator, AtLeastOne), "+-x")
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
	assert.Len(t, tokens, 2)
}

func TestKeywords(t *testing.T) {
	_, _, err := run(t, KeywordIf, "iffy")
	requireLexError(t, err, INVALID_SYMBOL, 2)

	_, _, err = run(t, Identifier, "if")
	requireLexError(t, err, INVALID_SYMBOL, 0)

	tokens, pos, err := run(t, Identifier, "iffy")
	require.NoError(t, err)
	assert.Equal(t, 4, pos)
	assert.Equal(t, []Token{{Begin: 0, Len: 4, Kind: IDENT}}, tokens)

	tokens, pos, err = run(t, KeywordIf, "if(x)")
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
	assert.Equal(t, []Token{{Begin: 0, Len: 2, Kind: IF}}, tokens)
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("x = a+1")
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Begin: 0, Len: 1, Kind: IDENT},
		{Begin: 1, Len: 1, Kind: WHITESPACE},
		{Begin: 2, Len: 1, Kind: ASSIGN},
		{Begin: 3, Len: 1, Kind: WHITESPACE},
		{Begin: 4, Len: 1, Kind: IDENT},
		{Begin: 5, Len: 1, Kind: OPERATOR},
		{Begin: 6, Len: 1, Kind: CONST},
	}, tokens, spew.Sdump(tokens))
}

func TestTokenizeScopes(t *testing.T) {
	src := "while x > 0 if (x) x = 0 end end"
	tokens, err := Tokenize(src)
	require.NoError(t, err)

	kinds := make([]TokenKind, 0)
	for _, token := range tokens {
		if token.Kind != WHITESPACE {
			kinds = append(kinds, token.Kind)
		}
	}
	assert.Equal(t, []TokenKind{
		WHILE, IDENT, OPERATOR, CONST,
		IF, LPAREN, IDENT, RPAREN,
		IDENT, ASSIGN, CONST,
		END, END,
	}, kinds)

	last := tokens[len(tokens)-1]
	assert.Equal(t, "end", last.Text(src))
}

func TestTokenizeAccepts(t *testing.T) {
	tests := []string{
		"x=y",
		"  x = y  \n",
		"x = ((a))",
		"x = ( a + b ) * c",
		"iffy = 1",
		"if(x) y = 1 end",
		"while x > 0 x = 4 if x > 1 x = 0 end end",
		"x = 1 y = 2\nz = x * y",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := Tokenize(src)
			assert.NoError(t, err)
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		src   string
		cause ErrorKind
		pos   int
	}{
		{"x=", IDENTIFIER_OR_CONSTANT_EXPECTED, 2},
		{"x=_", IDENTIFIER_OR_CONSTANT_EXPECTED, 2},
		{"x = 1 +", IDENTIFIER_OR_CONSTANT_EXPECTED, 7},
		{"x = end", IDENTIFIER_OR_CONSTANT_EXPECTED, 4},
		{"x=(1", UNCLOSED_PARENTHESIS, 4},
		{"x = ((1 + 2)", UNCLOSED_PARENTHESIS, 12},
		{"if x > 0 x = 2", UNFINISHED_STATEMENT, 14},
		{"if x > 0", UNFINISHED_STATEMENT, 8},
		{"while x x = 1 if y", UNFINISHED_STATEMENT, 18},
		{"", STRING_TOO_SHORT, 0},
		{"  ", STRING_TOO_SHORT, 2},
		{"white", STRING_TOO_SHORT, 5},
		{"x = 1 )", INVALID_SYMBOL, 6},
		{"x = (1 + 2))", INVALID_SYMBOL, 11},
		{"x = 1 end", INVALID_SYMBOL, 6},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, err := Tokenize(tt.src)
			requireLexError(t, err, tt.cause, tt.pos)
			assert.Nil(t, tokens)
		})
	}
}

func TestOperatorTypeOf(t *testing.T) {
	src := "+-*/<>x"
	want := []OperatorType{PLUS, MINUS, MULTIPLICATION, DIVISION, LESS, GREATER}
	for i, ot := range want {
		assert.Equal(t, ot, OperatorTypeOf(Token{Begin: i, Len: 1, Kind: OPERATOR}, src))
	}
	assert.Equal(t, UNDEFINED, OperatorTypeOf(Token{Begin: 6, Len: 1, Kind: IDENT}, src))
}

func TestTokenScanner(t *testing.T) {
	tokens, err := Tokenize("x = y")
	require.NoError(t, err)

	scanner := NewTokenScanner(tokens)
	require.True(t, scanner.HasTokens())
	assert.Equal(t, IDENT, scanner.Read().Kind)
	assert.Equal(t, ASSIGN, scanner.Peek().Kind)
	assert.Equal(t, ASSIGN, scanner.Read().Kind)
	scanner.Unread()
	assert.Equal(t, ASSIGN, scanner.Read().Kind)
	assert.Equal(t, IDENT, scanner.Read().Kind)
	assert.False(t, scanner.HasTokens())
}

func TestLexErrorMessage(t *testing.T) {
	_, err := Tokenize("x=")
	require.Error(t, err)
	assert.Equal(t, "IDENTIFIER_OR_CONSTANT_EXPECTED at pos 2", err.Error())
}
