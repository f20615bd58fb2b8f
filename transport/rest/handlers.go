package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/transport/view"
)

type moveRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Step *int `json:"step"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	session, err := that.uGame.NewGame(r.Context())
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, view.FromSession(session))
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	session, err := that.uGame.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, view.FromSession(session))
}

func (that *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) handlePlayMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	session, err := that.uGame.PlayMove(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, view.FromSession(session))
}

func (that *Server) handleJumpTo(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Step == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "step is required"})
		return
	}

	session, err := that.uGame.JumpTo(r.Context(), chi.URLParam(r, "id"), *req.Step)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, view.FromSession(session))
}

func (that *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrGameNotFound.Error()})
	case errors.Is(err, apperror.ErrEmptyGameID):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrEmptyGameID.Error()})
	default:
		that.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimw.GetReqID(r.Context()),
			"error", err,
		)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
