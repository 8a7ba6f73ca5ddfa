// SPDX-License-Identifier: MIT
package uir

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"

	"gitlab.com/fisherprime/uir/lexer"
)

type (
	// ChromaLexer adapts the Scanner to the chroma.Lexer interface.
	ChromaLexer struct {
		config *chroma.Config
		opts   []lexer.Option
	}
)

var chromaTypes = map[lexer.Category]chroma.TokenType{
	lexer.Text:               chroma.Text,
	lexer.Whitespace:         chroma.TextWhitespace,
	lexer.Comment:            chroma.CommentSingle,
	lexer.KeywordDeclaration: chroma.KeywordDeclaration,
	lexer.KeywordType:        chroma.KeywordType,
	lexer.KeywordConstant:    chroma.KeywordConstant,
	lexer.OperatorWord:       chroma.OperatorWord,
	lexer.GlobalIdentifier:   chroma.NameVariableGlobal,
	lexer.LocalIdentifier:    chroma.NameVariable,
	lexer.NumberFloat:        chroma.LiteralNumberFloat,
	lexer.NumberInteger:      chroma.LiteralNumberInteger,
	lexer.Punctuation:        chroma.Punctuation,
	lexer.MetaLiteral:        chroma.CommentPreproc,
}

func init() {
	lexers.Register(Chroma())
}

// Chroma creates a ChromaLexer, the options configure its Scanners.
func Chroma(opts ...lexer.Option) *ChromaLexer {
	info := Info()

	return &ChromaLexer{
		config: &chroma.Config{
			Name:      info.Name,
			Aliases:   info.Aliases,
			Filenames: info.Filenames,
			MimeTypes: info.MimeTypes,
		},
		opts: opts,
	}
}

// ChromaType obtains the chroma.TokenType used to style a Category.
func ChromaType(c lexer.Category) chroma.TokenType {
	if t, ok := chromaTypes[c]; ok {
		return t
	}

	return chroma.Text
}

// Config implements the chroma.Lexer interface.
func (c *ChromaLexer) Config() *chroma.Config { return c.config }

// Tokenise implements the chroma.Lexer interface, Tokens are scanned lazily.
func (c *ChromaLexer) Tokenise(_ *chroma.TokeniseOptions, text string) (chroma.Iterator, error) {
	s := lexer.New(text, c.opts...)

	return func() chroma.Token {
		tok, ok := s.Next()
		if !ok {
			return chroma.EOF
		}

		return chroma.Token{Type: ChromaType(tok.Category), Value: tok.Val}
	}, nil
}
