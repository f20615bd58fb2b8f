package entity

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Board is a 3x3 grid stored row by row, cell i is at row i/3 and column i%3.
// It is a value type, so every assignment is a snapshot.
type Board [BoardSize]Cell

func IsValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}

func Row(index int) int {
	return index / BoardSide
}

func Column(index int) int {
	return index % BoardSide
}

func (that Board) IsEmpty() bool {
	for _, cell := range that {
		if !cell.IsEmpty() {
			return false
		}
	}

	return true
}

// IsFull - reports whether no empty cell is left.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

// Filled - counts the occupied cells.
func (that Board) Filled() int {
	filled := 0
	for _, cell := range that {
		if !cell.IsEmpty() {
			filled++
		}
	}

	return filled
}

// With - returns a copy of the board with one cell set, the receiver is left untouched.
func (that Board) With(index int, cell Cell) Board {
	that[index] = cell
	return that
}
