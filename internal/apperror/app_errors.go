package apperror

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrEmptyGameID  = errors.New("game id is empty")
	ErrCorruptGame  = errors.New("stored game is corrupt")
)
