package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

func (that *Server) handleNewGame(ctx context.Context, _ Payload) (entity.GameSnapshot, error) {
	return that.gameUseCase.CreateGame(ctx)
}

func (that *Server) handleGameState(ctx context.Context, payload Payload) (entity.GameSnapshot, error) {
	return that.gameUseCase.GetGame(ctx, payload.GameID)
}

func (that *Server) handleGameMove(ctx context.Context, payload Payload) (entity.GameSnapshot, error) {
	return that.gameUseCase.MakeMove(ctx, payload.GameID, payload.Pit)
}

// errorMessage - the client-facing text for err. Internal failures stay opaque.
func errorMessage(err error) string {
	var moveErr *apperror.InvalidMoveError

	switch {
	case errors.As(err, &moveErr):
		return moveErr.Error()
	case errors.Is(err, apperror.ErrInvalidGameID):
		return apperror.ErrInvalidGameID.Error()
	case errors.Is(err, apperror.ErrGameNotFound):
		return apperror.ErrGameNotFound.Error()
	default:
		return "internal error"
	}
}
