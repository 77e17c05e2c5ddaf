package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordgrid/scoring"
)

// A Player is someone looking for words. Points is a running total; it is
// never reset here.
type Player struct {
	Nickname string
	Points   int
}

func NewPlayer(nickname string) *Player {
	return &Player{Nickname: nickname}
}

// UpdateScore adds the point value word earns to the player's score.
// Callers scoring the same player from several goroutines must serialize
// these calls.
func UpdateScore(p *Player, word string) {
	pts := scoring.WordScore(word)
	p.Points += pts
	log.Debug().Str("player", p.Nickname).Str("word", word).Int("pts", pts).
		Int("total", p.Points).Msg("updated score")
}

func (p *Player) String() string {
	return fmt.Sprintf("%s: %d", p.Nickname, p.Points)
}
