package repository

import "github.com/rocketscienceinc/kalah-backend/internal/entity"

// gameRecord - the stored form of a game. Stones carry no identity, so slot
// counts describe the board completely.
type gameRecord struct {
	ID     string               `json:"id"`
	Status entity.Status        `json:"status"`
	Board  entity.BoardSnapshot `json:"board"`
}

func newGameRecord(game *entity.Game) gameRecord {
	return gameRecord{
		ID:     game.ID,
		Status: game.Status,
		Board:  game.Board().Snapshot(),
	}
}

func (that gameRecord) toGame() (*entity.Game, error) {
	return entity.RestoreGame(that.ID, that.Status, that.Board)
}
