package entity

import "fmt"

type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

func (that PlayerID) Opponent() PlayerID {
	if that == Player1 {
		return Player2
	}
	return Player1
}

func (that PlayerID) String() string {
	switch that {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	default:
		return fmt.Sprintf("player(%d)", int(that))
	}
}

type Player struct {
	ID   PlayerID
	hand *Hand
}

func NewPlayer(id PlayerID) *Player {
	return &Player{
		ID:   id,
		hand: NewHand(),
	}
}

// Hand - returns the player's sowing buffer.
func (that *Player) Hand() *Hand {
	return that.hand
}
