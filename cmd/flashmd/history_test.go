package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flashmd/flashmd/internal/testutil"
)

func TestNewHistoryRecentCommand_Disabled(t *testing.T) {
	setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir()))

	_, err := executeCommand(newHistoryRecentCommand())
	assert.ErrorContains(t, err, "review history is disabled")
}
