package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

// setConfigFile points the package-level --config flag value at a fixture and
// restores it after the test.
func setConfigFile(t *testing.T, path string) {
	t.Helper()

	previous := configFile
	configFile = path
	t.Cleanup(func() {
		configFile = previous
	})
}

// writeFile writes a small test fixture.
func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0644)
}

// executeCommand runs a command with captured output.
func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(output)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return output.String(), err
}
