package gridio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/domino14/wordgrid/board"
)

var errNoWords = errors.New("puzzle has no words")

// A Puzzle bundles a board and the words hidden in it. On disk it looks
// like:
//
//	name: school
//	board:
//	  - ANTT
//	  - XSOB
//	words: [ANT, BOX, SOB, TO]
type Puzzle struct {
	Name  string   `yaml:"name"`
	Rows  []string `yaml:"board"`
	Words []string `yaml:"words"`
}

// Board turns the puzzle's rows into a board.
func (p *Puzzle) Board() (board.Board, error) {
	b := board.MakeBoard(p.Rows)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func ReadPuzzle(r io.Reader) (*Puzzle, error) {
	p := &Puzzle{}
	if err := yaml.NewDecoder(r).Decode(p); err != nil {
		return nil, err
	}
	for i := range p.Rows {
		p.Rows[i] = strings.TrimSpace(p.Rows[i])
	}
	if _, err := p.Board(); err != nil {
		return nil, err
	}
	if len(p.Words) == 0 {
		return nil, errNoWords
	}
	return p, nil
}

// ReadPuzzleFile reads a YAML puzzle. A puzzle with no name is named
// after its file.
func ReadPuzzleFile(filename string) (*Puzzle, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := ReadPuzzle(f)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle %v: %w", filename, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return p, nil
}
