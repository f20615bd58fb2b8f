package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/game"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, id string, game *game.Game) error
	GetByID(ctx context.Context, id string) (*game.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// Session is a stored game together with its id.
type Session struct {
	ID   string
	Game *game.Game

	// Applied is false when the last move or jump was ignored.
	Applied bool
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*Session, error) {
	session := &Session{
		ID:      uuid.NewString(),
		Game:    game.New(),
		Applied: true,
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, session.ID, session.Game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "game_id", session.ID)

	return session, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*Session, error) {
	existingGame, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Session{ID: id, Game: existingGame, Applied: true}, nil
}

// PlayMove - plays the cell on the stored game, the game is saved only if the move was accepted.
func (that *GameManager) PlayMove(ctx context.Context, id string, cell int) (*Session, error) {
	return that.apply(ctx, id, "PlayMove", func(g *game.Game) bool {
		return g.PlayMove(cell)
	})
}

// JumpTo - moves the stored game to an earlier step.
func (that *GameManager) JumpTo(ctx context.Context, id string, step int) (*Session, error) {
	return that.apply(ctx, id, "JumpTo", func(g *game.Game) bool {
		return g.JumpTo(step)
	})
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if id == "" {
		return apperror.ErrEmptyGameID
	}

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Debug("game deleted", "game_id", id)

	return nil
}

func (that *GameManager) apply(ctx context.Context, id, method string, change func(*game.Game) bool) (*Session, error) {
	log := that.logger.With("method", method, "game_id", id)

	existingGame, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !change(existingGame) {
		log.Debug("ignored", "step", existingGame.Step())
		return &Session{ID: id, Game: existingGame, Applied: false}, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, id, existingGame); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("applied", "step", existingGame.Step(), "status", existingGame.Status())

	return &Session{ID: id, Game: existingGame, Applied: true}, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*game.Game, error) {
	if id == "" {
		return nil, apperror.ErrEmptyGameID
	}

	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}
