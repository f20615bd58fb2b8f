package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

var (
	errEmptyHistory = errors.New("history is empty")
	errDirtyStart   = errors.New("first snapshot is not empty")
	errMoveAfterWin = errors.New("move played after the game was won")
)

type dbGame struct {
	History        []entity.Board `json:"history"`
	CurrentStep    int            `json:"current_step"`
	ViewingHistory bool           `json:"viewing_history"`
}

func (that *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(dbGame{
		History:        that.history,
		CurrentStep:    that.currentStep,
		ViewingHistory: that.viewingHistory,
	})
}

// UnmarshalJSON - decodes a stored game and rejects one that could not have been played.
func (that *Game) UnmarshalJSON(data []byte) error {
	var stored dbGame
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrCorruptGame, err)
	}

	if err := validate(stored); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrCorruptGame, err)
	}

	that.history = stored.History
	that.currentStep = stored.CurrentStep
	that.viewingHistory = stored.ViewingHistory

	return nil
}

func validate(stored dbGame) error {
	if len(stored.History) == 0 {
		return errEmptyHistory
	}

	if !stored.History[0].IsEmpty() {
		return errDirtyStart
	}

	if stored.CurrentStep < 0 || stored.CurrentStep >= len(stored.History) {
		return fmt.Errorf("step %d is out of range [0, %d]", stored.CurrentStep, len(stored.History)-1)
	}

	for step := 1; step < len(stored.History); step++ {
		if err := validateMove(stored.History[step-1], stored.History[step], step); err != nil {
			return fmt.Errorf("snapshot %d: %w", step, err)
		}
	}

	return nil
}

// validateMove - the snapshot at step must add exactly one mark of the player who moved at step-1.
func validateMove(previous, next entity.Board, step int) error {
	if tictactoe.DetectWinner(previous).HasWinner() {
		return errMoveAfterWin
	}

	changed := 0
	for cell := range next {
		if previous[cell] == next[cell] {
			continue
		}

		if !previous[cell].IsEmpty() {
			return fmt.Errorf("cell %d was overwritten", cell)
		}

		if mover := playerAt(step - 1); next[cell] != mover {
			return fmt.Errorf("cell %d holds %q, expected %q", cell, next[cell], mover)
		}

		changed++
	}

	if changed != 1 {
		return fmt.Errorf("%d cells changed, expected 1", changed)
	}

	return nil
}
