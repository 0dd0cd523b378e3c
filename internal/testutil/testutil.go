// Package testutil provides shared test helpers for creating deck and config fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleDeck is a minimal two-card deck used across tests.
const SampleDeck = `# Sample deck

**Question 1**
What is 2+2?
**Answer:**
4

**Question 2**
What is the capital of France?
**Answer:**
Paris
`

// WriteDeck writes a deck file into dir and returns its path.
func WriteDeck(t *testing.T, dir, contents string) string {
	t.Helper()

	path := filepath.Join(dir, "deck.md")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// SetupTestConfig creates a minimal config file for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := fmt.Sprintf(`decks:
  last_path: ""
  progress_filename: %s
history:
  database_path: ""
`, ".flashmd_progress.json")

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath
}
