package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFilename is the progress file name, stored next to the deck.
const DefaultFilename = ".flashmd_progress.json"

// fileDocument is the on-disk shape of the progress file.
type fileDocument struct {
	Questions Ledger `json:"questions"`
}

// PathForDeck returns the progress file path for a deck, in the deck's directory.
func PathForDeck(deckPath, filename string) string {
	if filename == "" {
		filename = DefaultFilename
	}
	return filepath.Join(filepath.Dir(deckPath), filename)
}

// Store reads and writes a ledger at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the given progress file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the progress file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the ledger from disk. A missing, unreadable, or malformed file
// yields an empty ledger so that a broken progress file never blocks a session.
func (s *Store) Load() Ledger {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		return Ledger{}
	}

	var document fileDocument
	if err := json.Unmarshal(contents, &document); err != nil {
		return Ledger{}
	}
	if document.Questions == nil {
		return Ledger{}
	}
	return document.Questions
}

// Save writes the full ledger back to disk.
func (s *Store) Save(ledger Ledger) error {
	contents, err := json.MarshalIndent(fileDocument{Questions: ledger}, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent() > %w", err)
	}
	if err := os.WriteFile(s.path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}
