// SPDX-License-Identifier: MIT
package lexer

import (
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/uir/types"
)

type (
	// Table is an ordered list of Rules; the first Rule matching at the cursor wins.
	//
	// Tables are built once & shared read-only by all Scanners.
	Table struct {
		vocabulary Vocabulary
		rules      []Rule
		words      map[Category]types.WordList
	}
)

// Structural patterns, (regexp2 syntax).
const (
	commentPattern     = `//[^\n]*`
	globalIDPattern    = `@[A-Za-z0-9_\-.]+`
	localIDPattern     = `%[A-Za-z0-9_\-.]+`
	floatPattern       = notAfterDigit + `(?:[0-9]+\.[0-9]+(?:[eE][+-]?[0-9]+)?|nan|[+-]?inf)[fd]` + wordBoundary
	integerPattern     = notAfterDigit + `[+-]?(?:0[xX][0-9a-fA-F]+|0[0-7]*|[1-9][0-9]*)` + wordBoundary
	punctuationPattern = `->|[=<>(){}:;]`
	metaPattern        = `#[A-Z_]+`
)

var constantWords = types.NewWordList("NULL")

var tables = map[Vocabulary]*Table{
	Current: newTable(Current, currentFamilies),
	Legacy:  newTable(Legacy, legacyFamilies),
}

func newTable(v Vocabulary, f families) *Table {
	operators := f.instructions.Merge(f.modifiers)

	return &Table{
		vocabulary: v,
		rules: []Rule{
			{Pattern(commentPattern), Comment},
			{Words(f.declarations), KeywordDeclaration},
			{Words(f.types), KeywordType},
			{Words(operators), OperatorWord},
			{Pattern(globalIDPattern), GlobalIdentifier},
			{Pattern(localIDPattern), LocalIdentifier},
			{Pattern(floatPattern), NumberFloat},
			{Pattern(integerPattern), NumberInteger},
			{Words(constantWords), KeywordConstant},
			{Pattern(punctuationPattern), Punctuation},
			{Pattern(metaPattern), MetaLiteral},
			{Run(isWhitespace), Whitespace},
		},
		words: map[Category]types.WordList{
			KeywordDeclaration: f.declarations,
			KeywordType:        f.types,
			OperatorWord:       operators,
			KeywordConstant:    constantWords,
		},
	}
}

// TableFor obtains the rule Table of a Vocabulary, falling back to the Current Table.
func TableFor(v Vocabulary) *Table {
	if t, ok := tables[v]; ok {
		return t
	}

	return tables[Current]
}

// Vocabulary obtains the Vocabulary the Table was built from.
func (t *Table) Vocabulary() Vocabulary { return t.vocabulary }

// Rules lists the Table's Rules in precedence order.
func (t *Table) Rules() []Rule { return slices.Clone(t.rules) }

// Words lists the literal words recognized for a Category, (sorted).
//
// Structural categories have no words.
func (t *Table) Words(c Category) []string { return slices.Clone(t.words[c]) }
