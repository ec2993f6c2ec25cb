package rest

import "github.com/rocketscienceinc/kalah-backend/internal/entity"

type CreateGameResponse struct {
	ID  string `json:"id"`
	URI string `json:"uri"`
}

type GameResponse struct {
	ID        string               `json:"id"`
	URL       string               `json:"url"`
	Status    entity.BoardSnapshot `json:"status"`
	GameState string               `json:"gameState"`
}

type ErrorResponse struct {
	HTTPCode int    `json:"httpCode"`
	Message  string `json:"message"`
}
