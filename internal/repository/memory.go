package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

type memGame struct {
	mu    sync.RWMutex
	games map[string]gameRecord
}

// NewMemoryGameRepository - an in-process registry. Games are copied in and
// out, so callers never share a board.
func NewMemoryGameRepository() GameRepository {
	return &memGame{
		games: make(map[string]gameRecord),
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = newGameRecord(game)

	return nil
}

func (that *memGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	record, ok := that.games[id]
	that.mu.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	game, err := record.toGame()
	if err != nil {
		return nil, fmt.Errorf("failed to restore game %s: %w", id, err)
	}

	return game, nil
}

func (that *memGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}
