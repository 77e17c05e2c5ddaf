package board

import (
	"fmt"
	"strings"
)

// A Location is where a word starts on the board, and which way it reads.
type Location struct {
	Row       int
	Col       int
	Direction BoardDirection
}

func (l Location) String() string {
	return fmt.Sprintf("row %d, col %d %v", l.Row, l.Col, l.Direction)
}

// ContainsWordInRow returns true if one or more of the rows of the board
// contains word.
func (b Board) ContainsWordInRow(word string) (bool, error) {
	_, found, err := b.findInRows(word)
	return found, err
}

// FindWordInRow is like FindWord but never looks at the columns.
func (b Board) FindWordInRow(word string) (Location, bool, error) {
	return b.findInRows(word)
}

// ContainsWordInColumn returns true if one or more of the columns of the
// board contains word. Columns can't be read off a ragged board.
func (b Board) ContainsWordInColumn(word string) (bool, error) {
	_, found, err := b.findInColumns(word)
	return found, err
}

// ContainsWord returns true if word appears in a row or a column of the
// board. Rows are checked first, so a ragged board can still match words
// that lie in a row.
func (b Board) ContainsWord(word string) (bool, error) {
	_, found, err := b.FindWord(word)
	return found, err
}

// FindWord returns the first place word was found. Rows are scanned before
// columns, each in index order.
func (b Board) FindWord(word string) (Location, bool, error) {
	loc, found, err := b.findInRows(word)
	if err != nil || found {
		return loc, found, err
	}
	return b.findInColumns(word)
}

func (b Board) checkSearchable(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	if len(b) == 0 {
		return ErrEmptyBoard
	}
	return nil
}

func (b Board) findInRows(word string) (Location, bool, error) {
	if err := b.checkSearchable(word); err != nil {
		return Location{}, false, err
	}
	for ri := range b {
		s, err := b.RowString(ri)
		if err != nil {
			return Location{}, false, err
		}
		if idx := strings.Index(s, word); idx != -1 {
			return Location{Row: ri, Col: runeOffset(s, idx), Direction: HorizontalDirection}, true, nil
		}
	}
	return Location{}, false, nil
}

func (b Board) findInColumns(word string) (Location, bool, error) {
	if err := b.checkSearchable(word); err != nil {
		return Location{}, false, err
	}
	if b.IsRagged() {
		return Location{}, false, ErrRaggedBoard
	}
	for ci := 0; ci < b.Width(); ci++ {
		s, err := b.ColumnString(ci)
		if err != nil {
			return Location{}, false, err
		}
		if idx := strings.Index(s, word); idx != -1 {
			return Location{Row: runeOffset(s, idx), Col: ci, Direction: VerticalDirection}, true, nil
		}
	}
	return Location{}, false, nil
}

// runeOffset converts a byte index into s to a cell index.
func runeOffset(s string, byteIdx int) int {
	return len([]rune(s[:byteIdx]))
}
