// SPDX-License-Identifier: MIT
package types

import (
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// WordList is a sorted, duplicate free `[]string`.
	WordList []string
)

// NewWordList creates a WordList from the values.
func NewWordList(values ...string) (wl WordList) {
	wl.UniqueAppend(values...)
	return
}

// ParseWordList creates a WordList from whitespace separated words.
func ParseWordList(src string) WordList { return NewWordList(strings.Fields(src)...) }

// UniqueAppend to `WordList`, retaining the sort order.
func (wl *WordList) UniqueAppend(values ...string) {
	if len(values) < 1 {
		return
	}

	*wl = append(*wl, values...)
	slices.Sort(*wl)
	*wl = slices.Compact(*wl)
}

// Merge creates a WordList holding the words of the current & other lists.
func (wl WordList) Merge(others ...WordList) (merged WordList) {
	merged = slices.Clone(wl)
	for index := range others {
		merged.UniqueAppend(others[index]...)
	}

	return
}

// Locate for `WordList`.
func (wl WordList) Locate(val string) (resl int) {
	resl = -1

	if index, found := slices.BinarySearch(wl, val); found {
		resl = index
	}

	return
}

// Contains reports the presence of val in the `WordList`.
func (wl WordList) Contains(val string) bool { return wl.Locate(val) > -1 }

// MaxLen obtains the length, (in bytes) of the longest word.
func (wl WordList) MaxLen() (max int) {
	for index := range wl {
		if l := len(wl[index]); l > max {
			max = l
		}
	}

	return
}

// String is the `fmt.Stringer` interface implementation for `WordList`.
func (wl WordList) String() string { return "[" + strings.Join(wl, ",") + "]" }
