package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

const (
	PitsPerSide = 6
	BoardSize   = 2 * (PitsPerSide + 1)

	Player1KalahIndex = PitsPerSide
	Player2KalahIndex = BoardSize - 1

	DefaultInitialStones = 6
)

var ErrInvalidBoard = errors.New("invalid board")

// Board - 14 components laid out as two mirrored sides:
//
//	(13) 12 11 10  9  8  7
//	      0  1  2  3  4  5 (6)
type Board struct {
	components [BoardSize]Component
}

func NewBoard(initialStones int) *Board {
	var counts [BoardSize]int
	for i := range counts {
		if !IsKalahIndex(i) {
			counts[i] = initialStones
		}
	}

	return newBoard(counts)
}

// RestoreBoard - rebuilds a board from per-slot stone counts.
func RestoreBoard(counts [BoardSize]int) (*Board, error) {
	for i, count := range counts {
		if count < 0 {
			return nil, fmt.Errorf("%w: negative count %d at slot %d", ErrInvalidBoard, count, i+1)
		}
	}

	return newBoard(counts), nil
}

func newBoard(counts [BoardSize]int) *Board {
	board := &Board{}
	for i, count := range counts {
		owner := OwnerOf(i)
		if IsKalahIndex(i) {
			board.components[i] = NewKalah(owner, count)
		} else {
			board.components[i] = NewPit(owner, count)
		}
	}

	return board
}

func IsKalahIndex(index int) bool {
	return index == Player1KalahIndex || index == Player2KalahIndex
}

func OwnerOf(index int) PlayerID {
	if index <= Player1KalahIndex {
		return Player1
	}
	return Player2
}

func KalahIndex(player PlayerID) int {
	if player == Player1 {
		return Player1KalahIndex
	}
	return Player2KalahIndex
}

// OppositeIndex - the pit facing index across the board. Only valid for pits.
func OppositeIndex(index int) int {
	return BoardSize - 2 - index
}

// PitIndices - the board indices of the player's six pits, left to right.
func PitIndices(player PlayerID) []int {
	first := 0
	if player == Player2 {
		first = Player1KalahIndex + 1
	}

	indices := make([]int, PitsPerSide)
	for i := range indices {
		indices[i] = first + i
	}

	return indices
}

func (that *Board) Components() []Component {
	return that.components[:]
}

func (that *Board) Component(index int) Component {
	return that.components[index]
}

// Pit - returns the pit at index, false if the slot is a kalah.
func (that *Board) Pit(index int) (*Pit, bool) {
	pit, ok := that.components[index].(*Pit)
	return pit, ok
}

func (that *Board) Kalah(player PlayerID) *Kalah {
	return that.components[KalahIndex(player)].(*Kalah) //nolint: forcetypeassert // layout is fixed
}

// PitStones - the number of stones left across the player's pits.
func (that *Board) PitStones(player PlayerID) int {
	total := 0
	for _, index := range PitIndices(player) {
		total += that.components[index].Count()
	}

	return total
}

func (that *Board) TotalStones() int {
	total := 0
	for _, component := range that.components {
		total += component.Count()
	}

	return total
}

func (that *Board) Snapshot() BoardSnapshot {
	var snapshot BoardSnapshot
	for i, component := range that.components {
		snapshot[i] = component.Count()
	}

	return snapshot
}

// BoardSnapshot - stone counts per slot, zero based. It is presented to
// clients keyed by the 1-based slot number.
type BoardSnapshot [BoardSize]int

// Slot - the count at a 1-based slot number.
func (that BoardSnapshot) Slot(number int) int {
	return that[number-1]
}

// MarshalJSON - writes {"1": n, ..., "14": n} keeping slot order.
func (that BoardSnapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, count := range that {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(i + 1))
		buf.WriteString(`":`)
		buf.WriteString(strconv.Itoa(count))
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (that *BoardSnapshot) UnmarshalJSON(data []byte) error {
	var slots map[string]int
	if err := json.Unmarshal(data, &slots); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	if len(slots) != BoardSize {
		return fmt.Errorf("%w: expected %d slots, got %d", ErrInvalidBoard, BoardSize, len(slots))
	}

	for key, count := range slots {
		number, err := strconv.Atoi(key)
		if err != nil || number < 1 || number > BoardSize {
			return fmt.Errorf("%w: unknown slot %q", ErrInvalidBoard, key)
		}
		that[number-1] = count
	}

	return nil
}
