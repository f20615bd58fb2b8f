package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/game"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

type mockGameUseCase struct {
	mock.Mock
}

func (that *mockGameUseCase) NewGame(ctx context.Context) (*usecase.Session, error) {
	args := that.Called(ctx)
	session, _ := args.Get(0).(*usecase.Session)
	return session, args.Error(1)
}

func (that *mockGameUseCase) GetGame(ctx context.Context, id string) (*usecase.Session, error) {
	args := that.Called(ctx, id)
	session, _ := args.Get(0).(*usecase.Session)
	return session, args.Error(1)
}

func (that *mockGameUseCase) PlayMove(ctx context.Context, id string, cell int) (*usecase.Session, error) {
	args := that.Called(ctx, id, cell)
	session, _ := args.Get(0).(*usecase.Session)
	return session, args.Error(1)
}

func (that *mockGameUseCase) JumpTo(ctx context.Context, id string, step int) (*usecase.Session, error) {
	args := that.Called(ctx, id, step)
	session, _ := args.Get(0).(*usecase.Session)
	return session, args.Error(1)
}

func dial(t *testing.T) (*websocket.Conn, *mockGameUseCase) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	uGame := &mockGameUseCase{}
	server := New(slog.New(slog.NewTextHandler(io.Discard, nil)), uGame)

	httpServer := httptest.NewServer(server.Handler(ctx))
	t.Cleanup(httpServer.Close)

	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })

	return conn, uGame
}

func exchange(t *testing.T, conn *websocket.Conn, request string) (Message, ResponsePayload) {
	t.Helper()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(request)))

	var response Message
	require.NoError(t, conn.ReadJSON(&response))

	var payload ResponsePayload
	require.NoError(t, json.Unmarshal(response.Payload, &payload))

	return response, payload
}

func TestServer_NewGame(t *testing.T) {
	// Given: a connected client
	conn, uGame := dial(t)
	uGame.On("NewGame", mock.Anything).
		Return(&usecase.Session{ID: "g1", Game: game.New(), Applied: true}, nil).
		Once()

	// When: asking for a new game
	response, payload := exchange(t, conn, `{"action": "game:new"}`)

	// Then: the game comes back under the same action
	assert.Equal(t, actionNewGame, response.Action)
	require.NotNil(t, payload.Game)
	assert.Equal(t, "g1", payload.Game.ID)
	assert.Empty(t, payload.Error)
}

func TestServer_GameTurn(t *testing.T) {
	t.Run("Plays the move", func(t *testing.T) {
		conn, uGame := dial(t)
		played := game.New()
		require.True(t, played.PlayMove(2))
		uGame.On("PlayMove", mock.Anything, "g1", 2).
			Return(&usecase.Session{ID: "g1", Game: played, Applied: true}, nil).
			Once()

		response, payload := exchange(t, conn, `{"action": "game:turn", "payload": {"id": "g1", "cell": 2}}`)

		assert.Equal(t, actionGameTurn, response.Action)
		require.NotNil(t, payload.Game)
		assert.Equal(t, 1, payload.Game.Step)
		assert.Equal(t, "X", payload.Game.Board[2].String())
	})

	t.Run("Requires a cell", func(t *testing.T) {
		conn, _ := dial(t)

		_, payload := exchange(t, conn, `{"action": "game:turn", "payload": {"id": "g1"}}`)

		assert.Equal(t, "cell is required", payload.Error)
	})

	t.Run("Reports an unknown game", func(t *testing.T) {
		conn, uGame := dial(t)
		uGame.On("PlayMove", mock.Anything, "missing", 0).
			Return(nil, apperror.ErrGameNotFound).
			Once()

		_, payload := exchange(t, conn, `{"action": "game:turn", "payload": {"id": "missing", "cell": 0}}`)

		assert.Equal(t, apperror.ErrGameNotFound.Error(), payload.Error)
		assert.Nil(t, payload.Game)
	})
}

func TestServer_GameJump(t *testing.T) {
	conn, uGame := dial(t)
	jumped := game.New()
	require.True(t, jumped.PlayMove(0))
	require.True(t, jumped.JumpTo(0))
	uGame.On("JumpTo", mock.Anything, "g1", 0).
		Return(&usecase.Session{ID: "g1", Game: jumped, Applied: true}, nil).
		Once()

	_, payload := exchange(t, conn, `{"action": "game:jump", "payload": {"id": "g1", "step": 0}}`)

	require.NotNil(t, payload.Game)
	assert.True(t, payload.Game.ViewingHistory)
	assert.Equal(t, 0, payload.Game.Step)
}

func TestServer_UnknownAction(t *testing.T) {
	conn, _ := dial(t)

	response, payload := exchange(t, conn, `{"action": "game:leave"}`)

	assert.Equal(t, actionError, response.Action)
	assert.Contains(t, payload.Error, "game:leave")
}

func TestServer_MalformedMessage(t *testing.T) {
	// Given: a connected client
	conn, uGame := dial(t)

	// When: sending garbage
	response, payload := exchange(t, conn, `{"action":`)

	// Then: an error is returned and the connection stays usable
	assert.Equal(t, actionError, response.Action)
	assert.Equal(t, "malformed message", payload.Error)

	uGame.On("GetGame", mock.Anything, "g1").
		Return(&usecase.Session{ID: "g1", Game: game.New(), Applied: true}, nil).
		Once()

	_, payload = exchange(t, conn, `{"action": "game:state", "payload": {"id": "g1"}}`)
	require.NotNil(t, payload.Game)
}
