// Package scoring turns found words into points. Longer words earn more
// per letter.
package scoring

import "unicode/utf8"

// Multiplier is the number of points every letter of a word of the given
// length is worth.
func Multiplier(length int) int {
	switch {
	case length < 3:
		return 0
	case length <= 6:
		return 1
	case length <= 9:
		return 2
	default:
		return 3
	}
}

// WordScore returns the point value the word earns.
func WordScore(word string) int {
	n := utf8.RuneCountInString(word)
	return n * Multiplier(n)
}
