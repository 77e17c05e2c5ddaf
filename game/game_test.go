package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordgrid/board"
	"github.com/domino14/wordgrid/lexicon"
)

func TestUpdateScore(t *testing.T) {
	is := is.New(t)
	p := &Player{Nickname: "Jonathan", Points: 4}
	UpdateScore(p, "ANT")
	is.Equal(p.Points, 7)
	UpdateScore(p, "TO")
	is.Equal(p.Points, 7)
	UpdateScore(p, "DRUDGERY")
	is.Equal(p.Points, 23)
	is.Equal(p.String(), "Jonathan: 23")
}

func TestCountWordsOnBoard(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard(board.AnttBoard)
	n, err := CountWordsOnBoard(b, []string{"ANT", "BOX", "SOB", "TO"})
	is.NoErr(err)
	is.Equal(n, 3)

	// duplicates are counted each time
	n, err = CountWordsOnBoard(b, []string{"ANT", "ANT", "BOX"})
	is.NoErr(err)
	is.Equal(n, 2)

	n, err = CountWordsOnBoard(b, nil)
	is.NoErr(err)
	is.Equal(n, 0)

	_, err = CountWordsOnBoard(board.MakeBoard(board.RaggedBoard), []string{"BCG", "BA"})
	is.True(errors.Is(err, board.ErrRaggedBoard))
}

func TestGamePlay(t *testing.T) {
	is := is.New(t)
	wl := lexicon.NewWordList("school", []string{"TRAILING", "DRUDGERY", "MARKET", "PLANET", "DATE", "QUIZ"})
	g := NewGame(board.MakeBoard(board.SchoolBoard), wl, NewPlayer("cesar"))

	pts, err := g.Play("TRAILING")
	is.NoErr(err)
	is.Equal(pts, 16)
	is.Equal(g.Player().Points, 16)

	_, err = g.Play("TRAILING")
	is.True(errors.Is(err, ErrAlreadyFound))
	is.Equal(g.Player().Points, 16)

	_, err = g.Play("QUIZ")
	is.True(errors.Is(err, ErrNotOnBoard))

	_, err = g.Play("SDGK")
	is.True(errors.Is(err, ErrNotInLexicon))

	pts, err = g.Play("PLANET")
	is.NoErr(err)
	is.Equal(pts, 6)
	is.Equal(g.Found(), []string{"TRAILING", "PLANET"})

	rem, err := g.Remaining()
	is.NoErr(err)
	is.Equal(rem, []string{"DRUDGERY", "MARKET", "DATE"})

	over, err := g.IsOver()
	is.NoErr(err)
	is.True(!over)

	for _, w := range []string{"DRUDGERY", "MARKET", "DATE"} {
		_, err = g.Play(w)
		is.NoErr(err)
	}
	over, err = g.IsOver()
	is.NoErr(err)
	is.True(over)
	is.Equal(g.Player().Points, 16+6+16+6+4)
}

func TestGameRaggedBoard(t *testing.T) {
	is := is.New(t)
	// BA reads down column 0, which a ragged board doesn't have.
	wl := lexicon.NewWordList("ragged", []string{"BCG", "ABC", "ZZZ", "BA"})
	g := NewGame(board.MakeBoard(board.RaggedBoard), wl, NewPlayer("Jonathan"))

	txt, err := g.ToDisplayText()
	is.NoErr(err)
	is.True(strings.Contains(txt, "found 0 of 2 words (list: ragged)"))

	n, err := g.Count()
	is.NoErr(err)
	is.Equal(n, 2)

	pts, err := g.Play("BCG")
	is.NoErr(err)
	is.Equal(pts, 3)
	is.Equal(g.Found(), []string{"BCG"})

	_, err = g.Play("BA")
	is.True(errors.Is(err, ErrNotOnBoard))
	_, err = g.Play("ZZZ")
	is.True(errors.Is(err, ErrNotOnBoard))

	rem, err := g.Remaining()
	is.NoErr(err)
	is.Equal(rem, []string{"ABC"})
	over, err := g.IsOver()
	is.NoErr(err)
	is.True(!over)

	loc, found, err := g.FindWord("ABC")
	is.NoErr(err)
	is.True(found)
	is.Equal(loc, board.Location{Row: 1, Col: 0, Direction: board.HorizontalDirection})

	_, err = g.Play("ABC")
	is.NoErr(err)
	over, err = g.IsOver()
	is.NoErr(err)
	is.True(over)
	is.Equal(g.Player().Points, 6)

	txt, err = g.ToDisplayText()
	is.NoErr(err)
	is.True(strings.Contains(txt, "found 2 of 2 words"))
}
