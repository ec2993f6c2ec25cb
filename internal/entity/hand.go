package entity

import "errors"

var ErrEmptyHand = errors.New("hand is empty")

// Hand - a FIFO buffer of stones picked up from a pit and sown one at a time.
type Hand struct {
	stones []Stone
}

func NewHand() *Hand {
	return &Hand{}
}

func (that *Hand) Add(stones []Stone) {
	that.stones = append(that.stones, stones...)
}

// TakeOne - removes the oldest stone. ErrEmptyHand signals a broken sowing invariant.
func (that *Hand) TakeOne() (Stone, error) {
	if len(that.stones) == 0 {
		return Stone{}, ErrEmptyHand
	}

	stone := that.stones[0]
	that.stones = that.stones[1:]

	return stone, nil
}

func (that *Hand) IsEmpty() bool {
	return len(that.stones) == 0
}

func (that *Hand) Len() int {
	return len(that.stones)
}
