// Package game keeps the move history of a single tic-tac-toe board and lets
// the player step back to any earlier position.
package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const (
	labelGameStart = "Go to game start"
	labelMove      = "Go to move #: %d"
)

// Game owns the history of a session. It is not safe for concurrent use.
type Game struct {
	history        []entity.Board
	currentStep    int
	viewingHistory bool
}

// Move is one entry of the history list.
type Move struct {
	Step     int          `json:"step"`
	Label    string       `json:"label"`
	Board    entity.Board `json:"board"`
	Selected bool         `json:"selected"`
}

func New() *Game {
	return &Game{
		history: []entity.Board{{}},
	}
}

// PlayMove - puts the mark of the player to move into the cell of the board at the current step.
// Anything after the current step is discarded. Returns false and leaves the game untouched
// when the cell is out of range or occupied, or when the board already has a winner.
func (that *Game) PlayMove(cell int) bool {
	if !entity.IsValidCell(cell) {
		return false
	}

	current := that.Current()
	if tictactoe.DetectWinner(current).HasWinner() || !current[cell].IsEmpty() {
		return false
	}

	next := current.With(cell, that.NextPlayer())

	that.history = append(that.history[:that.currentStep+1:that.currentStep+1], next)
	that.currentStep = len(that.history) - 1
	that.viewingHistory = false

	return true
}

// JumpTo - moves the current step to an existing snapshot. History is kept until the next move.
// The viewing flag is set even when the step is the live head.
func (that *Game) JumpTo(step int) bool {
	if step < 0 || step >= len(that.history) {
		return false
	}

	that.currentStep = step
	that.viewingHistory = true

	return true
}

func (that *Game) Current() entity.Board {
	return that.history[that.currentStep]
}

func (that *Game) Step() int {
	return that.currentStep
}

func (that *Game) Len() int {
	return len(that.history)
}

// History - returns a copy of every snapshot, starting with the empty board.
func (that *Game) History() []entity.Board {
	history := make([]entity.Board, len(that.history))
	copy(history, that.history)

	return history
}

func (that *Game) ViewingHistory() bool {
	return that.viewingHistory
}

func (that *Game) IsLiveHead() bool {
	return that.currentStep == len(that.history)-1
}

// NextPlayer - X moves on even steps, O on odd ones.
func (that *Game) NextPlayer() entity.Cell {
	return playerAt(that.currentStep)
}

func (that *Game) Winner() entity.WinResult {
	return tictactoe.DetectWinner(that.Current())
}

func (that *Game) Status() tictactoe.Outcome {
	return tictactoe.DetermineOutcome(that.Current())
}

// StatusText - the line shown above the board.
func (that *Game) StatusText() string {
	if winner := that.Winner(); winner.HasWinner() {
		return "Winner: " + winner.Symbol.String()
	}

	if that.Current().IsFull() {
		return "Game Drawn"
	}

	return "Next player: " + that.NextPlayer().String()
}

// Moves - one entry per snapshot for the history list.
func (that *Game) Moves() []Move {
	moves := make([]Move, 0, len(that.history))
	for step, board := range that.history {
		moves = append(moves, Move{
			Step:     step,
			Label:    MoveLabel(step),
			Board:    board,
			Selected: that.viewingHistory && step == that.currentStep,
		})
	}

	return moves
}

func MoveLabel(step int) string {
	if step == 0 {
		return labelGameStart
	}

	return fmt.Sprintf(labelMove, step)
}

func playerAt(step int) entity.Cell {
	if step%2 == 0 {
		return entity.X
	}

	return entity.O
}
