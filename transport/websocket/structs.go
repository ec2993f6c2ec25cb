package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

const (
	actionGameNew   = "game:new"
	actionGameState = "game:state"
	actionGameMove  = "game:move"
	actionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	GameID string `json:"game_id,omitempty"`
	Pit    int    `json:"pit,omitempty"`
}

type ResponsePayload struct {
	Game  *entity.GameSnapshot `json:"game,omitempty"`
	Error string               `json:"error,omitempty"`
}
