// Package scheduler decides which card to show next, biased by grading history.
package scheduler

import (
	"math"

	"github.com/flashmd/flashmd/internal/deck"
	"github.com/flashmd/flashmd/internal/progress"
)

const (
	// unseenWeight prioritizes cards with no history above everything else.
	unseenWeight = 10
	// baseWeight is the starting weight for seen cards before the error and
	// confidence adjustments.
	baseWeight = 5
	// confidenceSlope controls how quickly weight decays as attempts accumulate.
	confidenceSlope = 0.15
)

// Weight computes the draw weight for a card given its grading history.
// Unseen cards get the highest weight, net-wrong cards stay elevated, and
// growing attempt totals damp the weight toward the floor of 1. The result
// is always >= 1 so no card becomes unreachable.
func Weight(card deck.Card, ledger progress.Ledger) int {
	stats := ledger.StatsFor(card.ID)
	if !stats.Seen() {
		return unseenWeight
	}

	netErrors := stats.Incorrect - stats.Correct
	confidence := 1.0 / (1.0 + float64(stats.Attempts())*confidenceSlope)
	adjusted := float64(baseWeight+netErrors) * confidence

	weight := int(math.Floor(adjusted))
	if weight < 1 {
		return 1
	}
	return weight
}
