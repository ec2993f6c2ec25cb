package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

type GameUseCase interface {
	CreateGame(ctx context.Context) (entity.GameSnapshot, error)
	GetGame(ctx context.Context, gameID string) (entity.GameSnapshot, error)
	MakeMove(ctx context.Context, gameID string, pitNumber int) (entity.GameSnapshot, error)
	DeleteGame(ctx context.Context, gameID string) error
}

type gameService interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error
}

type moveProcessor interface {
	MakeMove(game *entity.Game, pitNumber int) error
}

type gameUseCase struct {
	logger *slog.Logger

	gameService   gameService
	moveProcessor moveProcessor

	locker *gameLocker
}

func NewGameUseCase(logger *slog.Logger, gameService gameService, moveProcessor moveProcessor) GameUseCase {
	return &gameUseCase{
		logger:        logger.With("component", "usecase"),
		gameService:   gameService,
		moveProcessor: moveProcessor,
		locker:        newGameLocker(),
	}
}

func (that *gameUseCase) CreateGame(ctx context.Context) (entity.GameSnapshot, error) {
	game, err := that.gameService.CreateGame(ctx)
	if err != nil {
		return entity.GameSnapshot{}, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game.Snapshot(), nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (entity.GameSnapshot, error) {
	if err := validateGameID(gameID); err != nil {
		return entity.GameSnapshot{}, err
	}

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return entity.GameSnapshot{}, fmt.Errorf("failed to get game: %w", err)
	}

	return game.Snapshot(), nil
}

// MakeMove - loads the game, applies the move and stores the result. Moves on
// the same game are serialized. Nothing is written when the move changed nothing.
func (that *gameUseCase) MakeMove(ctx context.Context, gameID string, pitNumber int) (entity.GameSnapshot, error) {
	log := that.logger.With("method", "MakeMove", "gameID", gameID)

	if err := validateGameID(gameID); err != nil {
		return entity.GameSnapshot{}, err
	}

	unlock := that.locker.Lock(gameID)
	defer unlock()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return entity.GameSnapshot{}, fmt.Errorf("failed to get game: %w", err)
	}

	before := game.Snapshot()

	if err = that.moveProcessor.MakeMove(game, pitNumber); err != nil {
		log.Debug("move rejected", "pit", pitNumber, "error", err)
		return entity.GameSnapshot{}, fmt.Errorf("failed to make move: %w", err)
	}

	after := game.Snapshot()
	if after == before {
		return after, nil
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return entity.GameSnapshot{}, fmt.Errorf("failed to save game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "status", game.Status)
	}

	return after, nil
}

// DeleteGame - removes a game from the registry. It waits for an in-flight
// move on the same game to finish.
func (that *gameUseCase) DeleteGame(ctx context.Context, gameID string) error {
	if err := validateGameID(gameID); err != nil {
		return err
	}

	unlock := that.locker.Lock(gameID)
	defer unlock()

	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", gameID)

	return nil
}

// validateGameID - accepts only the canonical lowercase hyphenated form, the
// one used as the registry key.
func validateGameID(gameID string) error {
	id, err := uuid.Parse(gameID)
	if err != nil || id.String() != gameID {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidGameID, gameID)
	}

	return nil
}
