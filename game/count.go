package game

import (
	"fmt"

	"github.com/domino14/wordgrid/board"
)

// CountWordsOnBoard returns how many of words appear on b. A word listed
// twice counts twice. The first board error stops the count.
func CountWordsOnBoard(b board.Board, words []string) (int, error) {
	num := 0
	for _, word := range words {
		found, err := b.ContainsWord(word)
		if err != nil {
			return 0, fmt.Errorf("checking %q: %w", word, err)
		}
		if found {
			num++
		}
	}
	return num, nil
}
