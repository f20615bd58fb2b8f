package entity

// WinResult describes the outcome of a winner check. A zero value means no winner.
type WinResult struct {
	Symbol Cell   `json:"symbol"`
	Line   [3]int `json:"line"`
}

var NoWinner = WinResult{}

func (that WinResult) HasWinner() bool {
	return !that.Symbol.IsEmpty()
}

// Contains - reports whether the cell is part of the winning line.
func (that WinResult) Contains(index int) bool {
	if !that.HasWinner() {
		return false
	}

	for _, cell := range that.Line {
		if cell == index {
			return true
		}
	}

	return false
}
