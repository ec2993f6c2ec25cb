package entity

import (
	"errors"
	"fmt"
)

type Status string

const (
	StatusPlayer1Turn Status = "PLAYER_1_TURN"
	StatusPlayer2Turn Status = "PLAYER_2_TURN"
	StatusPlayer1Win  Status = "PLAYER_1_WIN"
	StatusPlayer2Win  Status = "PLAYER_2_WIN"
	StatusDraw        Status = "DRAW"
)

var ErrUnknownStatus = errors.New("unknown game status")

func (that Status) Description() string {
	switch that {
	case StatusPlayer1Turn:
		return "Player one turn"
	case StatusPlayer2Turn:
		return "Player two turn"
	case StatusPlayer1Win:
		return "Player one victory"
	case StatusPlayer2Win:
		return "Player two victory"
	case StatusDraw:
		return "Game resulted in a draw"
	default:
		return string(that)
	}
}

func (that Status) IsTerminal() bool {
	return that == StatusPlayer1Win || that == StatusPlayer2Win || that == StatusDraw
}

func (that Status) Validate() error {
	switch that {
	case StatusPlayer1Turn, StatusPlayer2Turn, StatusPlayer1Win, StatusPlayer2Win, StatusDraw:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStatus, that)
	}
}

// TurnOf - the status value meaning it is player's turn.
func TurnOf(player PlayerID) Status {
	if player == Player1 {
		return StatusPlayer1Turn
	}
	return StatusPlayer2Turn
}

type Game struct {
	ID     string
	Status Status

	player1 *Player
	player2 *Player
	board   *Board
}

func NewGame(id string, initialStones int) *Game {
	return &Game{
		ID:      id,
		Status:  StatusPlayer1Turn,
		player1: NewPlayer(Player1),
		player2: NewPlayer(Player2),
		board:   NewBoard(initialStones),
	}
}

// RestoreGame - rebuilds a game from its stored id, status and slot counts.
func RestoreGame(id string, status Status, counts [BoardSize]int) (*Game, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	board, err := RestoreBoard(counts)
	if err != nil {
		return nil, fmt.Errorf("failed to restore board: %w", err)
	}

	return &Game{
		ID:      id,
		Status:  status,
		player1: NewPlayer(Player1),
		player2: NewPlayer(Player2),
		board:   board,
	}, nil
}

func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) Player(id PlayerID) *Player {
	if id == Player1 {
		return that.player1
	}
	return that.player2
}

// Mover - the player whose turn it is, false once the game is over.
func (that *Game) Mover() (*Player, bool) {
	switch that.Status {
	case StatusPlayer1Turn:
		return that.player1, true
	case StatusPlayer2Turn:
		return that.player2, true
	default:
		return nil, false
	}
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

func (that *Game) Snapshot() GameSnapshot {
	return GameSnapshot{
		ID:          that.ID,
		Status:      that.Status,
		Description: that.Status.Description(),
		Board:       that.board.Snapshot(),
	}
}

type GameSnapshot struct {
	ID          string        `json:"id"`
	Status      Status        `json:"status"`
	Description string        `json:"description"`
	Board       BoardSnapshot `json:"board"`
}
