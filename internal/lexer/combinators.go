package lexer

import (
	"strings"
)

// Lexer recognizes a prefix of src starting at pos, appends the tokens it
// recognized to output and returns the offset right after them. A Lexer that
// fails leaves output exactly as it found it.
type Lexer func(output *[]Token, pos int, src string) (int, error)

type RepeatFlags uint8

const (
	// AtLeastOne makes zero successful repetitions a failure.
	AtLeastOne RepeatFlags = 1 << iota
	// Merge coalesces the tokens of all repetitions into a single token.
	Merge
)

func truncate(output *[]Token, size int) {
	*output = (*output)[:size]
}

// Literal matches text exactly.
func Literal(kind TokenKind, text string) Lexer {
	return func(output *[]Token, pos int, src string) (int, error) {
		for i := 0; i < len(text); i++ {
			if pos+i >= len(src) {
				return pos, newLexError(STRING_TOO_SHORT, pos+i)
			}
			if src[pos+i] != text[i] {
				return pos, newLexError(INVALID_SYMBOL, pos+i)
			}
		}

		*output = append(*output, Token{Begin: pos, Len: len(text), Kind: kind})
		return pos + len(text), nil
	}
}

// AnyChar matches exactly one character out of chars.
func AnyChar(kind TokenKind, chars string) Lexer {
	return func(output *[]Token, pos int, src string) (int, error) {
		if pos >= len(src) {
			return pos, newLexError(STRING_TOO_SHORT, pos)
		}
		if strings.IndexByte(chars, src[pos]) < 0 {
			return pos, newLexError(INVALID_SYMBOL, pos)
		}

		*output = append(*output, Token{Begin: pos, Len: 1, Kind: kind})
		return pos + 1, nil
	}
}

func Symbol(kind TokenKind, ch byte) Lexer {
	return AnyChar(kind, string(ch))
}

// Symbols matches the longest non-empty run of characters accepted by good.
func Symbols(kind TokenKind, good func(byte) bool) Lexer {
	return func(output *[]Token, pos int, src string) (int, error) {
		if pos >= len(src) {
			return pos, newLexError(STRING_TOO_SHORT, pos)
		}
		if !good(src[pos]) {
			return pos, newLexError(INVALID_SYMBOL, pos)
		}

		end := pos
		for end < len(src) && good(src[end]) {
			end++
		}

		*output = append(*output, Token{Begin: pos, Len: end - pos, Kind: kind})
		return end, nil
	}
}

func Sequence(lexers ...Lexer) Lexer {
	return func(output *[]Token, pos int, src string) (int, error) {
		size := len(*output)
		curr := pos
		for _, lexer := range lexers {
			next, err := lexer(output, curr, src)
			if err != nil {
				truncate(output, size)
				return pos, err
			}
			curr = next
		}

		return curr, nil
	}
}

// Alternative returns the result of the first lexer that succeeds, or the
// error of the last one tried.
func Alternative(lexers ...Lexer) Lexer {
	return func(output *[]Token, pos int, src string) (int, error) {
		size := len(*output)
		var lastErr error = newLexError(INVALID_SYMBOL, pos)
		for _, lexer := range lexers {
			truncate(output, size)
			next, err := lexer(output, pos, src)
			if err == nil {
				return next, nil
			}
			lastErr = err
		}

		truncate(output, size)
		return pos, lastErr
	}
}

func Optional(lexer Lexer) Lexer {
	return func(output *[]Token, pos int, src string) (int, error) {
		size := len(*output)
		next, err := lexer(output, pos, src)
		if err != nil {
			truncate(output, size)
			return pos, nil
		}

		return next, nil
	}
}

// Many applies lexer until it fails or stops making progress.
func Many(lexer Lexer, flags RepeatFlags) Lexer {
	return func(output *[]Token, pos int, src string) (int, error) {
		size := len(*output)
		curr := pos
		count := 0

		for {
			attempt := len(*output)
			next, err := lexer(output, curr, src)
			if err != nil {
				truncate(output, attempt)
				if count == 0 && flags&AtLeastOne != 0 {
					return pos, err
				}
				break
			}
			if next == curr {
				break
			}

			curr = next
			count++
		}

		if flags&Merge != 0 && len(*output)-size > 1 {
			first := (*output)[size]
			last := (*output)[len(*output)-1]
			first.Len = last.End() - first.Begin
			truncate(output, size)
			*output = append(*output, first)
		}

		return curr, nil
	}
}
