package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/flashmd/flashmd/internal/deck"
	"github.com/flashmd/flashmd/internal/progress"
	"github.com/flashmd/flashmd/internal/scheduler"
)

// StatsSnapshot is the YAML document written by `stats export`.
type StatsSnapshot struct {
	DeckPath    string      `yaml:"deck_path"`
	GeneratedAt time.Time   `yaml:"generated_at"`
	CardCount   int         `yaml:"card_count"`
	Cards       []CardStats `yaml:"cards"`
}

type CardStats struct {
	ID        string `yaml:"id"`
	Correct   int    `yaml:"correct"`
	Incorrect int    `yaml:"incorrect"`
	Weight    int    `yaml:"weight"`
}

// NewStatsSnapshot collects per-card statistics for export.
func NewStatsSnapshot(deckPath string, d deck.Deck, ledger progress.Ledger) StatsSnapshot {
	snapshot := StatsSnapshot{
		DeckPath:    deckPath,
		GeneratedAt: time.Now(),
		CardCount:   d.Size(),
	}
	for _, card := range d.Cards() {
		stats := ledger.StatsFor(card.ID)
		snapshot.Cards = append(snapshot.Cards, CardStats{
			ID:        card.ID,
			Correct:   stats.Correct,
			Incorrect: stats.Incorrect,
			Weight:    scheduler.Weight(card, ledger),
		})
	}
	return snapshot
}

// WriteStatsSnapshot writes the snapshot as YAML to the given path.
func WriteStatsSnapshot(path string, snapshot StatsSnapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return yaml.NewEncoder(file).Encode(snapshot)
}
