// Package view turns a stored session into the JSON the browser renders.
package view

import (
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/game"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

type Game struct {
	ID             string       `json:"id"`
	Board          entity.Board `json:"board"`
	Step           int          `json:"step"`
	ViewingHistory bool         `json:"viewing_history"`
	NextPlayer     string       `json:"next_player"`
	Status         string       `json:"status"`
	StatusText     string       `json:"status_text"`
	Winner         string       `json:"winner,omitempty"`
	WinningLine    []int        `json:"winning_line,omitempty"`
	Applied        bool         `json:"applied"`
	Moves          []game.Move  `json:"moves"`
}

func FromSession(session *usecase.Session) *Game {
	g := session.Game

	result := &Game{
		ID:             session.ID,
		Board:          g.Current(),
		Step:           g.Step(),
		ViewingHistory: g.ViewingHistory(),
		NextPlayer:     g.NextPlayer().String(),
		Status:         string(g.Status()),
		StatusText:     g.StatusText(),
		Applied:        session.Applied,
		Moves:          g.Moves(),
	}

	if winner := g.Winner(); winner.HasWinner() {
		result.Winner = winner.Symbol.String()
		result.WinningLine = winner.Line[:]
	}

	return result
}
