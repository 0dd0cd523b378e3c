// Package session ties a parsed deck, its progress ledger, and the card
// scheduler into the single-threaded study session contract.
package session

import (
	"context"
	"fmt"
	"os"

	"github.com/flashmd/flashmd/internal/deck"
	"github.com/flashmd/flashmd/internal/progress"
	"github.com/flashmd/flashmd/internal/scheduler"
)

// Outcome is the grading result for a shown card.
type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
)

// ReviewRecorder receives a copy of each grading event. Recording is
// best-effort observability; the ledger update always happens first.
type ReviewRecorder interface {
	RecordReview(ctx context.Context, cardID string, correct bool) error
}

// Session owns the deck and ledger for one loaded document. The only state
// carried between Next calls is the previously returned card ID.
type Session struct {
	deckPath         string
	progressFilename string
	deck             deck.Deck
	ledger           progress.Ledger
	store            *progress.Store
	picker           *scheduler.Picker
	recorder         ReviewRecorder
	previousID       string
}

// Option configures a session.
type Option func(*Session)

// WithPicker replaces the default time-seeded picker, mainly for tests.
func WithPicker(picker *scheduler.Picker) Option {
	return func(s *Session) {
		s.picker = picker
	}
}

// WithRecorder attaches a review recorder for grading events.
func WithRecorder(recorder ReviewRecorder) Option {
	return func(s *Session) {
		s.recorder = recorder
	}
}

// WithProgressFilename overrides the progress file name next to the deck.
func WithProgressFilename(filename string) Option {
	return func(s *Session) {
		s.progressFilename = filename
	}
}

// New reads and parses the deck at deckPath and loads its progress ledger.
// A deck without any question markers fails; a missing or corrupt progress
// file starts a fresh ledger.
func New(deckPath string, options ...Option) (*Session, error) {
	s := &Session{
		deckPath: deckPath,
		picker:   scheduler.NewPicker(nil),
	}
	for _, option := range options {
		option(s)
	}

	contents, err := os.ReadFile(deckPath)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", deckPath, err)
	}
	cards, err := deck.Parse(string(contents))
	if err != nil {
		return nil, fmt.Errorf("deck.Parse(%s) > %w", deckPath, err)
	}
	s.deck = deck.NewDeck(cards)

	s.store = progress.NewStore(progress.PathForDeck(deckPath, s.progressFilename))
	s.ledger = s.store.Load()
	return s, nil
}

// DeckPath returns the path of the loaded deck.
func (s *Session) DeckPath() string {
	return s.deckPath
}

// Deck returns the loaded deck.
func (s *Session) Deck() deck.Deck {
	return s.deck
}

// Cards returns the ordered card snapshot.
func (s *Session) Cards() []deck.Card {
	return s.deck.Cards()
}

// StatsFor returns the grading counters for a card, defaulting to zero/zero.
func (s *Session) StatsFor(cardID string) progress.Stats {
	return s.ledger.StatsFor(cardID)
}

// Next draws the next card to show, avoiding an immediate repeat of the
// previously returned card where possible.
func (s *Session) Next() (deck.Card, error) {
	card, err := s.picker.Pick(s.deck.Cards(), s.ledger, s.previousID)
	if err != nil {
		return deck.Card{}, err
	}
	s.previousID = card.ID
	return card, nil
}

// Grade records a grading outcome for a card, persists the full ledger, and
// forwards the event to the recorder when one is attached.
func (s *Session) Grade(ctx context.Context, cardID string, outcome Outcome) error {
	correct := outcome == OutcomeCorrect
	s.ledger.Record(cardID, correct)
	if err := s.store.Save(s.ledger); err != nil {
		return fmt.Errorf("store.Save(%s) > %w", s.store.Path(), err)
	}

	if s.recorder != nil {
		if err := s.recorder.RecordReview(ctx, cardID, correct); err != nil {
			return fmt.Errorf("recorder.RecordReview(%s) > %w", cardID, err)
		}
	}
	return nil
}
