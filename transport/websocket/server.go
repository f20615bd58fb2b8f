package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

const writeWait = 10 * time.Second

type uGame interface {
	NewGame(ctx context.Context) (*usecase.Session, error)
	GetGame(ctx context.Context, id string) (*usecase.Session, error)
	PlayMove(ctx context.Context, id string, cell int) (*usecase.Session, error)
	JumpTo(ctx context.Context, id string, step int) (*usecase.Session, error)
}

type handlerFunc func(ctx context.Context, payload *RequestPayload) (*usecase.Session, error)

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		actionNewGame:   server.handleNewGame,
		actionGameState: server.handleGameState,
		actionGameTurn:  server.handleGameTurn,
		actionGameJump:  server.handleGameJump,
	}

	return server
}

func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConn(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server, it stops when the context is canceled.
func (that *Server) Start(ctx context.Context, port string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveConn(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConn", "remote", r.RemoteAddr)

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	// unblocks ReadMessage on shutdown
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	log.Info("WebSocket connection established")

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client until the connection fails.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, reqBody, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			if err = that.sendError(conn, actionError, "malformed message"); err != nil {
				return err
			}
			continue
		}

		if err = that.processMessage(ctx, conn, &message); err != nil {
			return err
		}
	}
}

func (that *Server) processMessage(ctx context.Context, conn *websocket.Conn, message *Message) error {
	log := that.logger.With("method", "processMessage", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Error("unknown action")
		return that.sendError(conn, actionError, "unknown action: "+message.Action)
	}

	var payload RequestPayload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return that.sendError(conn, message.Action, "invalid payload")
		}
	}

	session, err := handler(ctx, &payload)
	if err != nil {
		log.Error("error processing message", "error", err)
		return that.sendError(conn, message.Action, errorText(err))
	}

	return that.sendGame(conn, message.Action, session)
}
