// Package lexicon holds the lists of words a player is allowed to look for.
package lexicon

import (
	"github.com/samber/lo"
)

type Lexicon interface {
	Name() string
	HasWord(word string) bool
}

// A WordList is an ordered list of words. Words are expected to be in
// uppercase already; membership is exact string equality.
type WordList struct {
	name  string
	words []string
}

func NewWordList(name string, words []string) *WordList {
	return &WordList{name: name, words: words}
}

func (wl *WordList) Name() string {
	return wl.name
}

func (wl *WordList) HasWord(word string) bool {
	return IsValidWord(wl.words, word)
}

// Words returns the words in list order. Duplicates are kept.
func (wl *WordList) Words() []string {
	return wl.words
}

func (wl *WordList) Len() int {
	return len(wl.words)
}

// IsValidWord returns true if and only if word is an element of wordlist.
func IsValidWord(wordlist []string, word string) bool {
	return lo.Contains(wordlist, word)
}
