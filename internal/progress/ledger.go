// Package progress tracks per-card correct/incorrect history and persists it as JSON.
package progress

// Stats holds the grading counters for a single card.
type Stats struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// Attempts returns the total number of grading events.
func (s Stats) Attempts() int {
	return s.Correct + s.Incorrect
}

// Seen reports whether the card has been graded at least once.
func (s Stats) Seen() bool {
	return s.Correct > 0 || s.Incorrect > 0
}

// Ledger maps a card ID to its grading history.
// An absent key means the card has never been seen.
type Ledger map[string]Stats

// StatsFor returns the history for a card, defaulting to zero counters.
func (l Ledger) StatsFor(cardID string) Stats {
	return l[cardID]
}

// Record increments the matching counter for a card, creating its entry on
// the first grading event. Counters only ever grow within a session.
func (l Ledger) Record(cardID string, correct bool) {
	stats := l[cardID]
	if correct {
		stats.Correct++
	} else {
		stats.Incorrect++
	}
	l[cardID] = stats
}
