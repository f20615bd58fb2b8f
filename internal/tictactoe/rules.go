package tictactoe

import "github.com/rocketscienceinc/tictactoe-history/internal/entity"

type Outcome string

const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeWon     Outcome = "won"
	OutcomeDrawn   Outcome = "drawn"
)

// WinCombos - rows, columns and diagonals, in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// DetectWinner - returns the first line holding three equal marks, or entity.NoWinner.
func DetectWinner(board entity.Board) entity.WinResult {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if !a.IsEmpty() && a == b && a == c {
			return entity.WinResult{Symbol: a, Line: combo}
		}
	}

	return entity.NoWinner
}

// DetermineOutcome - a board without a winner is drawn once every cell is filled.
func DetermineOutcome(board entity.Board) Outcome {
	if DetectWinner(board).HasWinner() {
		return OutcomeWon
	}

	if board.IsFull() {
		return OutcomeDrawn
	}

	return OutcomeOngoing
}
