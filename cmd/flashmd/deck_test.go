package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashmd/flashmd/internal/deck"
	"github.com/flashmd/flashmd/internal/testutil"
)

func TestNewDeckListCommand(t *testing.T) {
	deckPath := testutil.WriteDeck(t, t.TempDir(), testutil.SampleDeck)

	output, err := executeCommand(newDeckListCommand(), deckPath)
	require.NoError(t, err)

	assert.Contains(t, output, "Deck with 2 cards")
	assert.Contains(t, output, "Question 1")
	assert.Contains(t, output, "Question 2")
}

func TestNewDeckValidateCommand(t *testing.T) {
	t.Run("valid deck", func(t *testing.T) {
		deckPath := testutil.WriteDeck(t, t.TempDir(), testutil.SampleDeck)

		output, err := executeCommand(newDeckValidateCommand(), deckPath)
		require.NoError(t, err)
		assert.Contains(t, output, "OK: 2 cards")
	})

	t.Run("duplicate labels are warned about", func(t *testing.T) {
		deckPath := testutil.WriteDeck(t, t.TempDir(),
			"**Question 1**\nFirst?\n\n**Question 1**\nSecond?\n")

		output, err := executeCommand(newDeckValidateCommand(), deckPath)
		require.NoError(t, err)
		assert.Contains(t, output, "OK: 2 cards")
		assert.Contains(t, output, `question label "1" appears more than once`)
	})

	t.Run("deck without questions fails", func(t *testing.T) {
		deckPath := testutil.WriteDeck(t, t.TempDir(), "# Nothing here\n")

		_, err := executeCommand(newDeckValidateCommand(), deckPath)
		assert.ErrorIs(t, err, deck.ErrNoQuestionsFound)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := executeCommand(newDeckValidateCommand(), "does-not-exist.md")
		assert.Error(t, err)
	})
}
