package scheduler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashmd/flashmd/internal/deck"
	"github.com/flashmd/flashmd/internal/progress"
)

func TestPicker_Pick(t *testing.T) {
	cards := []deck.Card{
		{ID: "1", Question: "Q1"},
		{ID: "2", Question: "Q2"},
		{ID: "3", Question: "Q3"},
	}

	t.Run("empty deck", func(t *testing.T) {
		picker := NewPicker(rand.New(rand.NewSource(1)))

		_, err := picker.Pick(nil, progress.Ledger{}, "")
		assert.ErrorIs(t, err, ErrEmptyDeck)
	})

	t.Run("single card repeats even when it was the previous card", func(t *testing.T) {
		picker := NewPicker(rand.New(rand.NewSource(1)))
		single := []deck.Card{{ID: "only"}}

		for i := 0; i < 10; i++ {
			card, err := picker.Pick(single, progress.Ledger{}, "only")
			require.NoError(t, err)
			assert.Equal(t, "only", card.ID)
		}
	})

	t.Run("avoids immediate repeats almost always", func(t *testing.T) {
		picker := NewPicker(rand.New(rand.NewSource(42)))
		ledger := progress.Ledger{}

		previousID := ""
		repeats := 0
		const trials = 500
		for i := 0; i < trials; i++ {
			card, err := picker.Pick(cards, ledger, previousID)
			require.NoError(t, err)
			if card.ID == previousID {
				repeats++
			}
			previousID = card.ID
		}
		// The 5-attempt cap makes repeats possible but rare: for three
		// equally weighted cards the chance is (1/3)^5 per pick.
		assert.Less(t, repeats, trials/20)
	})

	t.Run("draws every card eventually", func(t *testing.T) {
		picker := NewPicker(rand.New(rand.NewSource(7)))
		ledger := progress.Ledger{
			// A heavy history keeps this card at the floor weight.
			"1": {Correct: 30, Incorrect: 0},
		}

		seen := map[string]bool{}
		previousID := ""
		for i := 0; i < 1000; i++ {
			card, err := picker.Pick(cards, ledger, previousID)
			require.NoError(t, err)
			seen[card.ID] = true
			previousID = card.ID
		}
		assert.Len(t, seen, len(cards), "every card keeps a nonzero draw weight")
	})

	t.Run("unseen cards dominate heavily practiced ones", func(t *testing.T) {
		picker := NewPicker(rand.New(rand.NewSource(11)))
		ledger := progress.Ledger{
			"1": {Correct: 25, Incorrect: 0},
			"2": {Correct: 25, Incorrect: 0},
			// "3" never seen: weight 10 vs 1 and 1.
		}

		unseenDraws := 0
		const trials = 600
		for i := 0; i < trials; i++ {
			card, err := picker.Pick(cards, ledger, "")
			require.NoError(t, err)
			if card.ID == "3" {
				unseenDraws++
			}
		}
		assert.Greater(t, unseenDraws, trials/2)
	})

	t.Run("nil rng falls back to a seeded source", func(t *testing.T) {
		picker := NewPicker(nil)

		card, err := picker.Pick(cards, progress.Ledger{}, "")
		require.NoError(t, err)
		assert.NotEmpty(t, card.ID)
	})
}
