package apperror

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidGameID = errors.New("game id must be a valid GUID")
	ErrGameNotFound  = errors.New("game not found")
)

type Reason string

const (
	ReasonKalahSelected Reason = "kalah selected"
	ReasonNotOwner      Reason = "not owner"
	ReasonEmptyPit      Reason = "empty pit"
	ReasonOutOfRange    Reason = "pit out of range"
)

var messages = map[Reason]string{
	ReasonKalahSelected: "you cannot start your turn at a kalah",
	ReasonNotOwner:      "that pit does not belong to you",
	ReasonEmptyPit:      "please choose a pit which is not empty",
	ReasonOutOfRange:    "pit number must be between 1 and 14",
}

// InvalidMoveError - a rejected move. It matches ErrInvalidMove with errors.Is.
type InvalidMoveError struct {
	Reason Reason
}

func NewInvalidMove(reason Reason) *InvalidMoveError {
	return &InvalidMoveError{Reason: reason}
}

func (that *InvalidMoveError) Error() string {
	if message, ok := messages[that.Reason]; ok {
		return message
	}
	return string(that.Reason)
}

func (that *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}
