package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/repository"
	"github.com/rocketscienceinc/tictactoe-history/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-history/transport/rest"
	"github.com/rocketscienceinc/tictactoe-history/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return ErrAddrNotFound
	}

	redisClient, err := storage.New(ctx, storage.RedisOptions{
		Addr:     conf.Redis.GetRedisAddr(),
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisClient.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisClient, conf.SessionTTL)
	gameManager := usecase.NewGameManager(logger, gameRepo)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.New(logger, gameManager).Start(ctx, conf.HTTPPort, conf.ShutdownTimeout)
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsErrCh <- websocket.New(logger, gameManager).Start(ctx, conf.SocketPort, conf.ShutdownTimeout)
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	case err = <-wsErrCh:
		if err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
	}

	cancel()

	return nil
}
