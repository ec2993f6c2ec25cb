package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write ping response", "error", err)
	}
}

func (that *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.CreateGame(r.Context())
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusCreated, CreateGameResponse{
		ID:  game.ID,
		URI: that.rootAddress + game.ID,
	})
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetGame(r.Context(), mux.Vars(r)["gameId"])
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, that.gameResponse(game))
}

func (that *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gameUseCase.DeleteGame(r.Context(), mux.Vars(r)["gameId"]); err != nil {
		that.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) handleMakeMove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	pitNumber, err := strconv.Atoi(vars["pitId"])
	if err != nil {
		that.respondError(w, apperror.NewInvalidMove(apperror.ReasonOutOfRange))
		return
	}

	game, err := that.gameUseCase.MakeMove(r.Context(), vars["gameId"], pitNumber)
	if err != nil {
		that.respondError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, that.gameResponse(game))
}

func (that *Server) gameResponse(game entity.GameSnapshot) GameResponse {
	return GameResponse{
		ID:        game.ID,
		URL:       that.rootAddress + game.ID,
		Status:    game.Board,
		GameState: game.Description,
	}
}

func (that *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *Server) respondError(w http.ResponseWriter, err error) {
	code := statusCode(err)

	message := err.Error()

	var moveErr *apperror.InvalidMoveError
	switch {
	case errors.As(err, &moveErr):
		message = moveErr.Error()
	case errors.Is(err, apperror.ErrInvalidGameID):
		message = apperror.ErrInvalidGameID.Error()
	case errors.Is(err, apperror.ErrGameNotFound):
		message = apperror.ErrGameNotFound.Error()
	case code == http.StatusInternalServerError:
		that.logger.Error("request failed", "error", err)
		message = http.StatusText(code)
	}

	that.respondJSON(w, code, ErrorResponse{HTTPCode: code, Message: message})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove), errors.Is(err, apperror.ErrInvalidGameID):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
