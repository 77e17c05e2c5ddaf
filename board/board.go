// Package board holds a word-search board: a grid of single letters that
// can be read back a row or a column at a time.
package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrRaggedBoard     = errors.New("board rows have unequal lengths")
	ErrEmptyBoard      = errors.New("board has no rows")
	ErrEmptyWord       = errors.New("word cannot be empty")
)

type BoardDirection uint8

func (bd BoardDirection) String() string {
	if bd == HorizontalDirection {
		return "(horizontal)"
	} else if bd == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

const (
	HorizontalDirection BoardDirection = iota
	VerticalDirection
)

// A Board is an ordered sequence of rows. Each cell holds one letter.
// Rows are allowed to have different lengths, but columns can only be
// read off a rectangular board.
type Board [][]rune

// MakeBoard turns an array of strings into a Board. Every rune of every
// string becomes one cell.
func MakeBoard(desc []string) Board {
	b := make(Board, len(desc))
	for i, s := range desc {
		b[i] = []rune(s)
	}
	return b
}

func (b Board) NumRows() int {
	return len(b)
}

// Width is the length of the first row. Columns are indexed from 0 up to,
// but not including, Width.
func (b Board) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// IsRagged returns true if any row differs in length from the first row.
func (b Board) IsRagged() bool {
	w := b.Width()
	for _, row := range b {
		if len(row) != w {
			return true
		}
	}
	return false
}

// Validate makes sure the board has at least one row and that no row is
// empty. It does not care about raggedness.
func (b Board) Validate() error {
	if len(b) == 0 {
		return ErrEmptyBoard
	}
	for i, row := range b {
		if len(row) == 0 {
			return fmt.Errorf("row %d has no cells: %w", i, ErrEmptyBoard)
		}
	}
	return nil
}

// RowString returns the letters of the row with index rowIndex as a
// single string.
func (b Board) RowString(rowIndex int) (string, error) {
	if rowIndex < 0 || rowIndex >= len(b) {
		return "", fmt.Errorf("row %d of %d: %w", rowIndex, len(b), ErrIndexOutOfRange)
	}
	return string(b[rowIndex]), nil
}

// ColumnString returns the letter at columnIndex from every row, top to
// bottom, as a single string.
func (b Board) ColumnString(columnIndex int) (string, error) {
	w := b.Width()
	if columnIndex < 0 || columnIndex >= w {
		return "", fmt.Errorf("column %d of %d: %w", columnIndex, w, ErrIndexOutOfRange)
	}
	var sb strings.Builder
	for ri, row := range b {
		if columnIndex >= len(row) {
			return "", fmt.Errorf("column %d missing from row %d: %w", columnIndex, ri, ErrRaggedBoard)
		}
		sb.WriteRune(row[columnIndex])
	}
	return sb.String(), nil
}

// String renders the board one row per line.
func (b Board) String() string {
	rows := make([]string, len(b))
	for i, row := range b {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}

// ToDisplayText renders the board with row and column coordinates, like
// a crossword board display.
func (b Board) ToDisplayText() string {
	var sb strings.Builder
	w := 0
	for _, row := range b {
		if len(row) > w {
			w = len(row)
		}
	}
	sb.WriteString("   ")
	for c := 0; c < w; c++ {
		sb.WriteString(fmt.Sprintf("%-2d", c%100))
	}
	sb.WriteString("\n")
	for i, row := range b {
		sb.WriteString(fmt.Sprintf("%2d|", i))
		for _, letter := range row {
			sb.WriteRune(letter)
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
