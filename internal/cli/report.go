package cli

import (
	"fmt"
	"io"

	"github.com/flashmd/flashmd/internal/deck"
	"github.com/flashmd/flashmd/internal/progress"
	"github.com/flashmd/flashmd/internal/scheduler"
)

// WriteDeckReport lists every card of a deck in document order.
func WriteDeckReport(w io.Writer, d deck.Deck) {
	fmt.Fprintf(w, "Deck with %d cards\n", d.Size())
	fmt.Fprintln(w)
	for _, card := range d.Cards() {
		fmt.Fprintf(w, "Question %s\n", card.ID)
		fmt.Fprintf(w, "  Q: %s\n", firstLine(card.Question))
		fmt.Fprintf(w, "  A: %s\n", firstLine(card.Answer))
	}

	duplicates := d.DuplicateIDs()
	if len(duplicates) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Warning: duplicate question labels share progress history: %v\n", duplicates)
	}
}

// WriteStatsReport shows grading counters and the current draw weight per card.
func WriteStatsReport(w io.Writer, d deck.Deck, ledger progress.Ledger) {
	fmt.Fprintln(w, "Deck Statistics")
	fmt.Fprintln(w, "===============")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-20s  %8s  %8s  %8s  %6s\n", "Question", "Correct", "Wrong", "Seen", "Weight")
	fmt.Fprintf(w, "%-20s  %8s  %8s  %8s  %6s\n", "--------", "-------", "-----", "----", "------")

	for _, card := range d.Cards() {
		stats := ledger.StatsFor(card.ID)
		fmt.Fprintf(w, "%-20s  %8d  %8d  %8d  %6d\n",
			card.ID,
			stats.Correct,
			stats.Incorrect,
			stats.Attempts(),
			scheduler.Weight(card, ledger),
		)
	}
}

// firstLine truncates multi-line card text for one-line listings.
func firstLine(text string) string {
	for i, r := range text {
		if r == '\n' {
			return text[:i] + " ..."
		}
	}
	return text
}
