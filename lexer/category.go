// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// Category identifies the highlighting class of a Token.
	Category int

	// Token holds the category, text & position of a scanned span.
	Token struct {
		Val      string   // The exact source text of this Token
		Category Category // The class of this Token
		Pos      int      // The starting position, (in bytes) of this Token
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_                  Category = iota // Consume 0 to start actual numbering at 1.
	Text                               // Input matching no rule.
	Whitespace                         // Runs of spaces, tabs & newlines.
	Comment                            // `//` up to the end of the line.
	KeywordDeclaration                 // `.typedef`, `.funcdef`, ...
	KeywordType                        // `int`, `ref`, `struct`, ...
	KeywordConstant                    // `NULL`.
	OperatorWord                       // Instructions & modifier words.
	GlobalIdentifier                   // `@name`.
	LocalIdentifier                    // `%name`.
	NumberFloat                        // `3.14d`, `nanf`, `-inff`.
	NumberInteger                      // `42`, `0x1A`, `-07`.
	Punctuation                        // `= < > ( ) { } : ;` & `->`.
	MetaLiteral                        // `#DEFAULT`.
)

var categoryNames = [...]string{
	Text:               "Text",
	Whitespace:         "Whitespace",
	Comment:            "Comment",
	KeywordDeclaration: "KeywordDeclaration",
	KeywordType:        "KeywordType",
	KeywordConstant:    "KeywordConstant",
	OperatorWord:       "OperatorWord",
	GlobalIdentifier:   "GlobalIdentifier",
	LocalIdentifier:    "LocalIdentifier",
	NumberFloat:        "NumberFloat",
	NumberInteger:      "NumberInteger",
	Punctuation:        "Punctuation",
	MetaLiteral:        "MetaLiteral",
}

// String is the `fmt.Stringer` interface implementation for Category.
func (c Category) String() string {
	if c > 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}

	return fmt.Sprintf("Category(%d)", int(c))
}

// End obtains the position, (in bytes) following the Token.
func (t Token) End() int { return t.Pos + len(t.Val) }
