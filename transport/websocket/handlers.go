package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-history/transport/view"
)

var (
	errCellRequired = errors.New("cell is required")
	errStepRequired = errors.New("step is required")
)

func (that *Server) handleNewGame(ctx context.Context, _ *RequestPayload) (*usecase.Session, error) {
	session, err := that.uGame.NewGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return session, nil
}

func (that *Server) handleGameState(ctx context.Context, payload *RequestPayload) (*usecase.Session, error) {
	session, err := that.uGame.GetGame(ctx, payload.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return session, nil
}

func (that *Server) handleGameTurn(ctx context.Context, payload *RequestPayload) (*usecase.Session, error) {
	if payload.Cell == nil {
		return nil, errCellRequired
	}

	session, err := that.uGame.PlayMove(ctx, payload.ID, *payload.Cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return session, nil
}

func (that *Server) handleGameJump(ctx context.Context, payload *RequestPayload) (*usecase.Session, error) {
	if payload.Step == nil {
		return nil, errStepRequired
	}

	session, err := that.uGame.JumpTo(ctx, payload.ID, *payload.Step)
	if err != nil {
		return nil, fmt.Errorf("failed to jump: %w", err)
	}

	return session, nil
}

func (that *Server) sendGame(conn *websocket.Conn, action string, session *usecase.Session) error {
	return that.sendMessage(conn, action, ResponsePayload{Game: view.FromSession(session)})
}

func (that *Server) sendError(conn *websocket.Conn, action, text string) error {
	return that.sendMessage(conn, action, ResponsePayload{Error: text})
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// errorText - hides storage failures from the client.
func errorText(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return apperror.ErrGameNotFound.Error()
	case errors.Is(err, apperror.ErrEmptyGameID):
		return apperror.ErrEmptyGameID.Error()
	case errors.Is(err, errCellRequired), errors.Is(err, errStepRequired):
		return err.Error()
	default:
		return "internal error"
	}
}
