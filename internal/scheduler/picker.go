package scheduler

import (
	"errors"
	"math/rand"
	"time"

	"github.com/flashmd/flashmd/internal/deck"
	"github.com/flashmd/flashmd/internal/progress"
)

// ErrEmptyDeck is returned when a pick is requested from a deck with no cards.
var ErrEmptyDeck = errors.New("no cards to pick from")

// maxPickAttempts bounds the anti-repeat redraws. After this many draws the
// last candidate is accepted even if it repeats the previous card.
const maxPickAttempts = 5

// Picker draws cards by weighted random sampling with replacement.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a picker. A nil rng falls back to a time-seeded source;
// tests inject a seeded one for deterministic draws.
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{rng: rng}
}

// Pick draws one card using the current weights. When more than one card
// exists, a draw matching previousID is rejected and redrawn up to
// maxPickAttempts total draws, then accepted as-is. previousID is empty when
// no card has been shown yet, which skips the repeat check. A single-card
// deck also skips the check since repetition is unavoidable.
func (p *Picker) Pick(cards []deck.Card, ledger progress.Ledger, previousID string) (deck.Card, error) {
	if len(cards) == 0 {
		return deck.Card{}, ErrEmptyDeck
	}

	candidate := p.draw(cards, ledger)
	if len(cards) == 1 || previousID == "" {
		return candidate, nil
	}

	for attempts := 1; candidate.ID == previousID && attempts < maxPickAttempts; attempts++ {
		candidate = p.draw(cards, ledger)
	}
	return candidate, nil
}

// draw performs one weighted sample over the whole deck.
func (p *Picker) draw(cards []deck.Card, ledger progress.Ledger) deck.Card {
	total := 0
	weights := make([]int, len(cards))
	for i, card := range cards {
		weights[i] = Weight(card, ledger)
		total += weights[i]
	}

	n := p.rng.Intn(total)
	for i, weight := range weights {
		n -= weight
		if n < 0 {
			return cards[i]
		}
	}
	// Unreachable: weights are all >= 1.
	return cards[len(cards)-1]
}
