package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

var ErrInvalidMark = errors.New("invalid cell mark")

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (that Cell) String() string {
	switch that {
	case X:
		return PlayerX
	case O:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (that Cell) IsEmpty() bool {
	return that == Empty
}

// Opponent - returns the other player's mark, Empty stays Empty.
func (that Cell) Opponent() Cell {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseCell - converts "X", "O" or "" into a Cell.
func ParseCell(mark string) (Cell, error) {
	switch mark {
	case PlayerX:
		return X, nil
	case PlayerO:
		return O, nil
	case EmptyCell:
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}
}

func (that Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Cell) UnmarshalJSON(data []byte) error {
	var mark string
	if err := json.Unmarshal(data, &mark); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMark, string(data))
	}

	cell, err := ParseCell(mark)
	if err != nil {
		return err
	}

	*that = cell

	return nil
}
