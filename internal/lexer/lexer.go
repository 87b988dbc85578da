package lexer

var keywords = map[string]TokenKind{
	"if":    IF,
	"while": WHILE,
	"end":   END,
}

// Keywords lists the reserved words of the language.
func Keywords() []string {
	return []string{"if", "while", "end"}
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

var (
	Constant   = Symbols(CONST, isDigit)
	Whitespace = Many(AnyChar(WHITESPACE, " \t\r\n"), AtLeastOne|Merge)
	Operator   = AnyChar(OPERATOR, "<>+-*/")

	Open   = Symbol(LPAREN, '(')
	Close  = Symbol(RPAREN, ')')
	Assign = Symbol(ASSIGN, '=')

	KeywordIf    = keyword(IF, "if")
	KeywordWhile = keyword(WHILE, "while")
	KeywordEnd   = keyword(END, "end")

	optionalWhitespace = Optional(Whitespace)
	operand            = Alternative(Identifier, Constant)
	opener             = Alternative(KeywordIf, KeywordWhile)
)

// keyword matches word only when it is not the prefix of a longer name.
func keyword(kind TokenKind, word string) Lexer {
	literal := Literal(kind, word)
	return func(output *[]Token, pos int, src string) (int, error) {
		size := len(*output)
		next, err := literal(output, pos, src)
		if err != nil {
			return pos, err
		}
		if next < len(src) && isAlpha(src[next]) {
			truncate(output, size)
			return pos, newLexError(INVALID_SYMBOL, next)
		}

		return next, nil
	}
}

var identifierRun = Symbols(IDENT, isAlpha)

// Identifier matches a run of letters that is not a keyword.
func Identifier(output *[]Token, pos int, src string) (int, error) {
	size := len(*output)
	next, err := identifierRun(output, pos, src)
	if err != nil {
		return pos, err
	}
	if _, reserved := keywords[src[pos:next]]; reserved {
		truncate(output, size)
		return pos, newLexError(INVALID_SYMBOL, pos)
	}

	return next, nil
}

// Expression recognizes operands joined by operators, with balanced
// parentheses around any operand or group of operands.
func Expression(output *[]Token, pos int, src string) (int, error) {
	size := len(*output)
	depth := 0

	for {
		for {
			next, err := Open(output, pos, src)
			if err != nil {
				break
			}
			depth++
			pos, _ = optionalWhitespace(output, next, src)
		}

		next, err := operand(output, pos, src)
		if err != nil {
			truncate(output, size)
			return pos, newLexError(IDENTIFIER_OR_CONSTANT_EXPECTED, pos)
		}
		pos, _ = optionalWhitespace(output, next, src)

		for depth > 0 {
			next, err := Close(output, pos, src)
			if err != nil {
				break
			}
			depth--
			pos, _ = optionalWhitespace(output, next, src)
		}

		next, err = Operator(output, pos, src)
		if err != nil {
			break
		}
		pos, _ = optionalWhitespace(output, next, src)
	}

	if depth > 0 {
		truncate(output, size)
		return pos, newLexError(UNCLOSED_PARENTHESIS, pos)
	}

	return pos, nil
}

var assignmentTail = Sequence(optionalWhitespace, Assign, optionalWhitespace, Expression)

// Statement recognizes one assignment together with every if/while scope
// opened in front of it, and keeps consuming statements until each opened
// scope is closed by its own end.
func Statement(output *[]Token, pos int, src string) (int, error) {
	size := len(*output)
	open := 0

	for {
		for {
			next, err := opener(output, pos, src)
			if err != nil {
				break
			}
			open++

			pos, _ = optionalWhitespace(output, next, src)
			pos, err = Expression(output, pos, src)
			if err != nil {
				truncate(output, size)
				return pos, err
			}
		}

		next, err := Identifier(output, pos, src)
		if err != nil {
			truncate(output, size)
			if open > 0 {
				return pos, newLexError(UNFINISHED_STATEMENT, pos)
			}
			return pos, err
		}

		pos, err = assignmentTail(output, next, src)
		if err != nil {
			truncate(output, size)
			return pos, err
		}
		pos, _ = optionalWhitespace(output, pos, src)

		for open > 0 {
			next, err := KeywordEnd(output, pos, src)
			if err != nil {
				break
			}
			open--
			pos, _ = optionalWhitespace(output, next, src)
		}

		if open == 0 {
			return pos, nil
		}
	}
}

// Program recognizes one or more statements covering the whole source.
func Program(output *[]Token, pos int, src string) (int, error) {
	size := len(*output)
	pos, _ = optionalWhitespace(output, pos, src)

	for {
		next, err := Statement(output, pos, src)
		if err != nil {
			truncate(output, size)
			return pos, err
		}

		pos, _ = optionalWhitespace(output, next, src)
		if pos >= len(src) {
			return pos, nil
		}
	}
}

// Tokenize runs the full lexical grammar over src.
func Tokenize(src string) ([]Token, error) {
	tokens := make([]Token, 0)
	if _, err := Program(&tokens, 0, src); err != nil {
		return nil, err
	}

	return tokens, nil
}
