package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/game"
)

const gameKeyPrefix = "game:"

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, id string, game *game.Game) error
	GetByID(ctx context.Context, id string) (*game.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - stores games as JSON, each write resets the expiry. A zero ttl keeps games forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, id string, game *game.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(id), gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*game.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	existingGame := &game.Game{}
	if err = json.Unmarshal(response, existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return existingGame, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	if err := that.client.Del(ctx, gameKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	return nil
}

func gameKey(id string) string {
	return gameKeyPrefix + id
}
