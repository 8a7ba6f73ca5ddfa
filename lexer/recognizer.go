// SPDX-License-Identifier: MIT
package lexer

// REF: https://github.com/alecthomas/chroma/blob/master/regexp.go

import (
	"fmt"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"gitlab.com/fisherprime/uir/types"
)

type (
	// Recognizer reports the length, (in runes) of the span it matches at pos.
	//
	// A zero length denotes no match; an error is treated as no match by the Scanner.
	Recognizer func(src []rune, pos int) (n int, err error)

	// ValidationFunction type for functions that validate rune identities
	ValidationFunction func(rune) bool

	// Rule pairs a Recognizer with the Category of its matches.
	Rule struct {
		Recognizer Recognizer
		Category   Category
	}
)

const (
	// wordBoundary rejects matches followed by a word rune.
	wordBoundary = `(?![A-Za-z0-9_])`

	// notAfterDigit rejects numbers starting inside a digit run.
	notAfterDigit = `(?<![0-9])`
)

// Improves on performance compared to ORs.
//
// Reduces function cost improving probalility of inlining.
var (
	whitespace = [utf8.RuneSelf]bool{
		' ':  true,
		'\t': true,
		'\r': true,
		'\n': true,
		'\v': true,
		'\f': true,
	}

	wordRunes = func() (table [utf8.RuneSelf]bool) {
		for r := '0'; r <= '9'; r++ {
			table[r] = true
		}
		for r := 'a'; r <= 'z'; r++ {
			table[r], table[r-'a'+'A'] = true, true
		}
		table['_'] = true

		return
	}()
)

// Words recognizes any of the words when not followed by a word rune.
//
// A leading `.` is accepted to allow for directive words.
func Words(words types.WordList) Recognizer {
	maxLen := words.MaxLen()

	return func(src []rune, pos int) (n int, err error) {
		end := pos
		if src[end] == '.' {
			end++
		}
		// A run longer than maxLen can't match.
		for end < len(src) && end-pos <= maxLen && isWord(src[end]) {
			end++
		}

		// The words are ASCII, a rune per byte.
		if length := end - pos; length <= maxLen && words.Contains(string(src[pos:end])) {
			n = length
		}

		return
	}
}

// Pattern recognizes matches of a regexp2 expression anchored at the cursor.
//
// Panics on an invalid expression, patterns are expected to be static.
func Pattern(expr string) Recognizer {
	re := regexp2.MustCompile(`\G(?:`+expr+`)`, regexp2.None)

	return func(src []rune, pos int) (n int, err error) {
		match, err := re.FindRunesMatchStartingAt(src, pos)
		if err != nil {
			err = fmt.Errorf("pattern %q: %w", expr, err)
			return
		}

		if match != nil && match.Index == pos {
			n = match.Length
		}

		return
	}
}

// Run recognizes one or more runes satisfying fn.
func Run(fn ValidationFunction) Recognizer {
	return func(src []rune, pos int) (n int, err error) {
		for pos+n < len(src) && fn(src[pos+n]) {
			n++
		}

		return
	}
}

// isWhitespace return true for whitespace, newline & carrier return.
func isWhitespace(r rune) bool { return r < utf8.RuneSelf && whitespace[r] }

// isWord return true for an ASCII alphanumeric or `_`.
func isWord(r rune) bool { return r < utf8.RuneSelf && wordRunes[r] }
