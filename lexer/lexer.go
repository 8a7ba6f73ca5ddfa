// SPDX-License-Identifier: MIT
package lexer

// REF: https://github.com/sh4t/sql-parser
// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// Scanner splits IR source text into Tokens.
	//
	// A Scanner makes a single pass over its source; scan again with a new Scanner.
	Scanner struct {
		debug  bool
		logger logrus.FieldLogger
		table  *Table

		// source is the input text.
		source string

		// runes holds the decoded source, invalid bytes decode to utf8.RuneError.
		runes []rune
		// offsets holds the byte position of each rune & the source length.
		offsets []int

		// cursor is the rune index of the next Token.
		cursor int
	}
)

// New creates a new scanner for the input string
func New(source string, opts ...Option) *Scanner {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Validate()

	s := &Scanner{
		debug:  cfg.Debug,
		logger: cfg.Logger,
		table:  TableFor(cfg.Vocabulary),
		source: source,

		runes:   make([]rune, 0, len(source)),
		offsets: make([]int, 0, len(source)+1),
	}

	// Ranging over a string yields a rune per invalid byte, keeping both slices aligned.
	for index, r := range source {
		s.runes = append(s.runes, r)
		s.offsets = append(s.offsets, index)
	}
	s.offsets = append(s.offsets, len(source))

	return s
}

// Offset obtains the byte position of the next Token.
func (s *Scanner) Offset() int { return s.offsets[s.cursor] }

// Table obtains the rule Table in use.
func (s *Scanner) Table() *Table { return s.table }

// Next scans the Token at the cursor, ok is false at the end of the source.
func (s *Scanner) Next() (tok Token, ok bool) {
	if s.cursor >= len(s.runes) {
		return
	}

	n, category := s.match()
	start, end := s.offsets[s.cursor], s.offsets[s.cursor+n]
	s.cursor += n

	tok, ok = Token{Val: s.source[start:end], Category: category, Pos: start}, true
	if s.debug {
		// Debug operation makes this operation un-inlinable.
		s.logger.Debug("lexer Emit: ", spew.Sdump(tok))
	}

	return
}

// Tokens scans the remaining source.
func (s *Scanner) Tokens() (list []Token) {
	for {
		tok, ok := s.Next()
		if !ok {
			return
		}
		list = append(list, tok)
	}
}

// match finds the first Rule matching at the cursor.
//
// Input matching no Rule yields a single rune of Text.
func (s *Scanner) match() (n int, category Category) {
	remaining := len(s.runes) - s.cursor

	for _, rule := range s.table.rules {
		length, err := rule.Recognizer(s.runes, s.cursor)
		if err != nil {
			s.logger.Warnf("lexer match at %d: %v", s.offsets[s.cursor], err)
			continue
		}

		if length > 0 && length <= remaining {
			return length, rule.Category
		}
	}

	return 1, Text
}
