package compiler_errors

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SourceError is a positioned error resolved against the source it came from.
type SourceError struct {
	Message string
	Hint    string

	FileName string
	Pos      int
	Line     int
	Column   int
}

func (e *SourceError) GetMessage() string {
	msg := fmt.Sprintf("%s:%d:%d: %s", e.FileName, e.Line, e.Column, e.Message)
	if e.Hint != "" {
		msg += fmt.Sprintf(" (did you mean '%s'?)", e.Hint)
	}

	return msg
}

func (e *SourceError) GetFileName() string {
	return e.FileName
}

func (e *SourceError) GetLine() int {
	return e.Line
}

func (e *SourceError) GetColumn() int {
	return e.Column
}

func (e *SourceError) GetPos() int {
	return e.Pos
}

// Locate resolves err against src. When a word next to the error position
// looks like a misspelled keyword, the result carries that keyword as a hint.
func Locate(fileName, src string, err PositionedError, keywords ...string) *SourceError {
	pos := err.GetPos()
	line, column := LineColumn(src, pos)

	return &SourceError{
		Message: err.GetMessage(),
		Hint:    keywordHint(src, pos, keywords),

		FileName: fileName,
		Pos:      pos,
		Line:     line,
		Column:   column,
	}
}

// LineColumn converts a byte offset into a 1-based line and column.
func LineColumn(src string, pos int) (int, int) {
	if pos > len(src) {
		pos = len(src)
	}

	before := src[:pos]
	line := strings.Count(before, "\n") + 1
	column := pos - strings.LastIndexByte(before, '\n')

	return line, column
}

func isWordChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// nearbyWords returns the word under pos and the word right before it.
func nearbyWords(src string, pos int) []string {
	words := make([]string, 0, 2)

	if pos < len(src) && isWordChar(src[pos]) {
		start, end := pos, pos
		for start > 0 && isWordChar(src[start-1]) {
			start--
		}
		for end < len(src) && isWordChar(src[end]) {
			end++
		}
		words = append(words, src[start:end])
		pos = start
	}

	end := pos
	for end > 0 && !isWordChar(src[end-1]) {
		end--
	}
	start := end
	for start > 0 && isWordChar(src[start-1]) {
		start--
	}
	if start < end {
		words = append(words, src[start:end])
	}

	return words
}

func keywordHint(src string, pos int, keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}

	for _, word := range nearbyWords(src, pos) {
		if len(word) < 2 || slices.Contains(keywords, word) {
			continue
		}

		ranks := fuzzy.RankFindNormalizedFold(word, keywords)
		sort.Sort(ranks)
		if len(ranks) > 0 && ranks[0].Distance <= 2 {
			return ranks[0].Target
		}

		lower := strings.ToLower(word)
		for _, keyword := range keywords {
			if fuzzy.LevenshteinDistance(lower, keyword) == 1 {
				return keyword
			}
		}
	}

	return ""
}
