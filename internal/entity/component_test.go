package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPit(t *testing.T) {
	t.Run("ExtractAll empties the pit", func(t *testing.T) {
		// Given: a pit with 6 stones
		pit := NewPit(Player1, 6)

		// When: extracting its stones
		stones, count := pit.ExtractAll()

		// Then: all 6 are returned and the pit is empty
		assert.Len(t, stones, 6)
		assert.Equal(t, 6, count)
		assert.True(t, pit.IsEmpty())
		assert.Zero(t, pit.Count())
	})

	t.Run("ExtractAll on an empty pit returns nothing", func(t *testing.T) {
		// Given: an empty pit
		pit := NewPit(Player2, 0)

		// When: extracting its stones
		stones, count := pit.ExtractAll()

		// Then: no stones come back
		assert.Empty(t, stones)
		assert.Zero(t, count)
	})

	t.Run("AddStone appends one stone", func(t *testing.T) {
		pit := NewPit(Player1, 0)

		pit.AddStone(Stone{})

		assert.Equal(t, 1, pit.Count())
		assert.False(t, pit.IsEmpty())
		assert.Equal(t, Player1, pit.Owner())
	})
}

func TestKalah(t *testing.T) {
	// Given: an empty kalah
	kalah := NewKalah(Player2, 0)

	// When: adding a single stone and a batch
	kalah.AddStone(Stone{})
	kalah.AddStones(newStones(4))

	// Then: all stones accumulate
	assert.Equal(t, 5, kalah.Count())
	assert.Equal(t, Player2, kalah.Owner())

	// And: a kalah cannot be used as a pit
	var component Component = kalah
	_, isPit := component.(*Pit)
	require.False(t, isPit)
}

func TestHand(t *testing.T) {
	t.Run("Add and TakeOne", func(t *testing.T) {
		// Given: a hand holding 3 stones
		hand := NewHand()
		hand.Add(newStones(3))
		require.Equal(t, 3, hand.Len())

		// When: taking them one by one
		for i := 0; i < 3; i++ {
			_, err := hand.TakeOne()
			require.NoError(t, err)
		}

		// Then: the hand is empty
		assert.True(t, hand.IsEmpty())
	})

	t.Run("TakeOne on an empty hand fails", func(t *testing.T) {
		// Given: an empty hand
		hand := NewHand()

		// When: taking a stone
		_, err := hand.TakeOne()

		// Then: ErrEmptyHand is returned
		assert.ErrorIs(t, err, ErrEmptyHand)
	})
}

func TestPlayerID(t *testing.T) {
	assert.Equal(t, Player2, Player1.Opponent())
	assert.Equal(t, Player1, Player2.Opponent())
	assert.Equal(t, "player 1", Player1.String())
	assert.Equal(t, "player 2", Player2.String())
}
