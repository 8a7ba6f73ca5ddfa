// SPDX-License-Identifier: MIT

// Package uir highlights Mu intermediate representation, (`.uir`) source text.
package uir

import (
	"path/filepath"

	"gitlab.com/fisherprime/uir/lexer"
)

type (
	// Metadata identifies the tokenizer to a documentation pipeline.
	Metadata struct {
		// Name is the display name.
		Name string
		// Aliases select the tokenizer by name.
		Aliases []string
		// Filenames are globs of files the tokenizer claims.
		Filenames []string
		// MimeTypes are the declared media types.
		MimeTypes []string
	}
)

const (
	// Name is the tokenizer's display name.
	Name = "Mirovm Intermediate Representation"

	// Alias is the short name used to request the tokenizer.
	Alias = "uir"

	// FilenameGlob matches IR source files.
	FilenameGlob = "*.uir"

	// MimeType is the media type of IR source files.
	MimeType = "text/x-uir"
)

// Info obtains the tokenizer's Metadata.
func Info() Metadata {
	return Metadata{
		Name:      Name,
		Aliases:   []string{Alias},
		Filenames: []string{FilenameGlob},
		MimeTypes: []string{MimeType},
	}
}

// Claims reports whether the filename matches one of the Metadata's Filenames.
func (m Metadata) Claims(filename string) bool {
	base := filepath.Base(filename)
	for _, glob := range m.Filenames {
		if ok, _ := filepath.Match(glob, base); ok {
			return true
		}
	}

	return false
}

// NewScanner creates a lexer.Scanner for the source.
func NewScanner(source string, opts ...lexer.Option) *lexer.Scanner { return lexer.New(source, opts...) }

// Tokenize splits the source into Tokens.
//
// Concatenating the Tokens' values reproduces the source.
func Tokenize(source string, opts ...lexer.Option) []lexer.Token {
	return lexer.New(source, opts...).Tokens()
}
