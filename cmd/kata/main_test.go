package main

import (
	"bytes"
	"testing"
	"time"

	"kata/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupWorkspace points the CLI globals at a fresh temp workspace.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	t.Setenv("KATA_DB_PATH", "")
	t.Setenv("KATA_DEBUG", "")

	logger = zap.NewNop()
	ws := t.TempDir()
	workspace = ws
	configPath = ""
	cfg = nil
	timeout = 30 * time.Second
	treeOrder = ""
	batchOp, batchFile, batchWorkers = "last", "", 0

	t.Cleanup(func() {
		workspace = ""
		cfg = nil
	})
	return ws
}

// useConfig installs c as the loaded config for the current test.
func useConfig(t *testing.T, mutate func(c *config.Config)) {
	t.Helper()
	c := config.DefaultConfig()
	mutate(c)
	cfg = c
}

// run invokes a RunE function with a throwaway command and returns its stdout.
func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	err := fn(cmd, args)
	return buf.String(), err
}
