package entity

// Component - a slot on the board: either a Pit or a Kalah.
type Component interface {
	Owner() PlayerID
	Count() int
	AddStone(stone Stone)
}

// store - owner and stones shared by pits and kalahs.
type store struct {
	owner  PlayerID
	stones []Stone
}

func (that *store) Owner() PlayerID {
	return that.owner
}

func (that *store) Count() int {
	return len(that.stones)
}

func (that *store) AddStone(stone Stone) {
	that.stones = append(that.stones, stone)
}

// Pit - a playable container. Stones leave a pit only all at once.
type Pit struct {
	store
}

func NewPit(owner PlayerID, stones int) *Pit {
	return &Pit{store{owner: owner, stones: newStones(stones)}}
}

// ExtractAll - empties the pit and returns what it held. An already empty pit
// yields a nil slice and a zero count.
func (that *Pit) ExtractAll() ([]Stone, int) {
	stones := that.stones
	that.stones = nil

	return stones, len(stones)
}

func (that *Pit) IsEmpty() bool {
	return len(that.stones) == 0
}

// Kalah - a scoring store. It has no extraction operation.
type Kalah struct {
	store
}

func NewKalah(owner PlayerID, stones int) *Kalah {
	return &Kalah{store{owner: owner, stones: newStones(stones)}}
}

func (that *Kalah) AddStones(stones []Stone) {
	that.stones = append(that.stones, stones...)
}
