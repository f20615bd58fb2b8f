package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

const handlerTimeout = 10 * time.Second

type uGame interface {
	NewGame(ctx context.Context) (*usecase.Session, error)
	GetGame(ctx context.Context, id string) (*usecase.Session, error)
	PlayMove(ctx context.Context, id string, cell int) (*usecase.Session, error)
	JumpTo(ctx context.Context, id string, step int) (*usecase.Session, error)
	DeleteGame(ctx context.Context, id string) error
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	router chi.Router
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
		router: chi.NewRouter(),
	}

	server.router.Use(chimw.RequestID)
	server.router.Use(chimw.Recoverer)
	server.router.Use(chimw.Timeout(handlerTimeout))

	server.router.Get("/ping", pingHandler)

	server.router.Route("/games", func(r chi.Router) {
		r.Post("/", server.handleNewGame)
		r.Get("/{id}", server.handleGetGame)
		r.Delete("/{id}", server.handleDeleteGame)
		r.Post("/{id}/moves", server.handlePlayMove)
		r.Post("/{id}/jump", server.handleJumpTo)
	})

	return server
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves HTTP until the context is canceled.
func (that *Server) Start(ctx context.Context, port string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down http server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
