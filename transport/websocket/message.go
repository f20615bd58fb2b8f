package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-history/transport/view"
)

const (
	actionNewGame   = "game:new"
	actionGameState = "game:state"
	actionGameTurn  = "game:turn"
	actionGameJump  = "game:jump"
	actionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	ID   string `json:"id"`
	Cell *int   `json:"cell,omitempty"`
	Step *int   `json:"step,omitempty"`
}

type ResponsePayload struct {
	Game  *view.Game `json:"game,omitempty"`
	Error string     `json:"error,omitempty"`
}
