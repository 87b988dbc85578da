package lexer

type TokenScanner interface {
	Read() Token
	Peek() Token
	Unread()
	HasTokens() bool
}

// SimpleTokenScanner walks a token list, skipping whitespace.
type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	sanitized := make([]Token, 0, len(tokens))
	for _, token := range tokens {
		if token.Kind == WHITESPACE {
			continue
		}
		sanitized = append(sanitized, token)
	}

	return &SimpleTokenScanner{
		tokens: sanitized,
	}
}

func (s *SimpleTokenScanner) Read() Token {
	token := s.tokens[s.pos]
	s.pos++

	return token
}

func (s *SimpleTokenScanner) Peek() Token {
	return s.tokens[s.pos]
}

func (s *SimpleTokenScanner) Unread() {
	s.pos--
}

func (s *SimpleTokenScanner) HasTokens() bool {
	return s.pos < len(s.tokens)
}
