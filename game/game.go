// Package game scores a player's word finds against a single board and
// word list.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordgrid/board"
	"github.com/domino14/wordgrid/lexicon"
	"github.com/domino14/wordgrid/scoring"
)

var (
	ErrNotInLexicon = errors.New("word is not on the word list")
	ErrNotOnBoard   = errors.New("word is not on the board")
	ErrAlreadyFound = errors.New("word was already found")
)

// A Lister is a lexicon that can enumerate its words. It is needed to know
// when a game is over.
type Lister interface {
	lexicon.Lexicon
	Words() []string
}

// Game wraps one board, one word list and the player looking for words.
// A word only scores the first time it is found.
type Game struct {
	board  board.Board
	lex    Lister
	player *Player
	found  []string
	seen   map[string]bool
}

func NewGame(b board.Board, lex Lister, player *Player) *Game {
	return &Game{
		board:  b,
		lex:    lex,
		player: player,
		seen:   make(map[string]bool),
	}
}

func (g *Game) Board() board.Board {
	return g.board
}

func (g *Game) Lexicon() Lister {
	return g.lex
}

func (g *Game) Player() *Player {
	return g.player
}

// Found returns the words scored so far, in the order they were found.
func (g *Game) Found() []string {
	return g.found
}

// Play tries to score word for the player. It returns the points earned.
func (g *Game) Play(word string) (int, error) {
	if !g.lex.HasWord(word) {
		return 0, fmt.Errorf("%s: %w", word, ErrNotInLexicon)
	}
	if g.seen[word] {
		return 0, fmt.Errorf("%s: %w", word, ErrAlreadyFound)
	}
	_, onBoard, err := g.FindWord(word)
	if err != nil {
		return 0, err
	}
	if !onBoard {
		return 0, fmt.Errorf("%s: %w", word, ErrNotOnBoard)
	}
	UpdateScore(g.player, word)
	g.seen[word] = true
	g.found = append(g.found, word)
	log.Info().Str("player", g.player.Nickname).Str("word", word).
		Int("found", len(g.found)).Msg("word found")
	return scoring.WordScore(word), nil
}

// FindWord looks for word on the game board. Only rows are searched on a
// ragged board, since its columns can't be read.
func (g *Game) FindWord(word string) (board.Location, bool, error) {
	if g.board.IsRagged() {
		return g.board.FindWordInRow(word)
	}
	return g.board.FindWord(word)
}

func (g *Game) onBoard(word string) (bool, error) {
	_, found, err := g.FindWord(word)
	return found, err
}

// Count returns how many of the listed words are on the board, counting
// duplicates each time, the way CountWordsOnBoard does.
func (g *Game) Count() (int, error) {
	n := 0
	for _, w := range g.lex.Words() {
		found, err := g.onBoard(w)
		if err != nil {
			return 0, fmt.Errorf("checking %q: %w", w, err)
		}
		if found {
			n++
		}
	}
	return n, nil
}

// Remaining returns the distinct words of the list that are on the board
// but have not been found yet.
func (g *Game) Remaining() ([]string, error) {
	var err error
	rem := lo.Filter(lo.Uniq(g.lex.Words()), func(w string, _ int) bool {
		if err != nil || w == "" || g.seen[w] {
			return false
		}
		var onBoard bool
		onBoard, err = g.onBoard(w)
		return onBoard
	})
	if err != nil {
		return nil, err
	}
	return rem, nil
}

// IsOver is true once every listed word on the board has been found.
func (g *Game) IsOver() (bool, error) {
	rem, err := g.Remaining()
	if err != nil {
		return false, err
	}
	return len(rem) == 0, nil
}

// ToDisplayText renders the board followed by the player and progress.
func (g *Game) ToDisplayText() (string, error) {
	total := len(g.found)
	rem, err := g.Remaining()
	if err != nil {
		return "", err
	}
	total += len(rem)
	return fmt.Sprintf("%s\n%s\nfound %d of %d words (list: %s)\n",
		g.board.ToDisplayText(), g.player, len(g.found), total, g.lex.Name()), nil
}
