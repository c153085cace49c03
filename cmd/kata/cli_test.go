package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kata/internal/collections"
	"kata/internal/config"
	"kata/internal/digits"
	"kata/internal/logging"
	"kata/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitsCommands(t *testing.T) {
	setupWorkspace(t)

	tests := []struct {
		name string
		op   digits.Op
		in   string
		want string
	}{
		{"last", digits.OpLast, "123", "3"},
		{"last negative", digits.OpLast, "-456", "6"},
		{"first", digits.OpFirst, "-456", "4"},
		{"reverse", digits.OpReverse, "-456", "-654"},
		{"reverse trailing zeros", digits.OpReverse, "100", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, runDigitOp(tt.op), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestDigitsRejectsText(t *testing.T) {
	setupWorkspace(t)

	_, err := run(t, runDigitOp(digits.OpFirst), "Hi There 123")
	require.Error(t, err)
	assert.ErrorIs(t, err, digits.ErrInvalidInput)
}

func TestDigitsMax(t *testing.T) {
	setupWorkspace(t)

	out, err := run(t, runDigitsMax, "-1", "-2", "-3")
	require.NoError(t, err)
	assert.Equal(t, "-1", strings.TrimSpace(out))

	_, err = run(t, runDigitsMax)
	assert.ErrorIs(t, err, digits.ErrMissingInput)

	_, err = run(t, runDigitsMax, "1", "x")
	assert.ErrorIs(t, err, digits.ErrInvalidInput)
}

func TestDigitsBatch(t *testing.T) {
	ws := setupWorkspace(t)

	batchOp = "reverse"
	out, err := run(t, runDigitsBatch, "123", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "123\t321")
	assert.Contains(t, out, "100\t1")

	inputs := filepath.Join(ws, "inputs.txt")
	require.NoError(t, os.WriteFile(inputs, []byte("9\n\nbad\n-12\n"), 0644))
	batchOp, batchFile = "first", inputs
	out, err = run(t, runDigitsBatch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 inputs failed")
	assert.Contains(t, out, "9\t9")
	assert.Contains(t, out, "bad\terror:")
	assert.Contains(t, out, "-12\t1")
}

func TestDigitsJSONOutput(t *testing.T) {
	setupWorkspace(t)
	useConfig(t, func(c *config.Config) { c.Output.Format = "json" })

	out, err := run(t, runDigitOp(digits.OpReverse), "123")
	require.NoError(t, err)

	var got digitResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, digitResult{Op: "reverse", Input: "123", Result: 321}, got)
}

func TestStackCommands(t *testing.T) {
	setupWorkspace(t)

	_, err := run(t, runStackPush, "jobs", "1", "2")
	require.NoError(t, err)

	out, err := run(t, runStackShow, "jobs")
	require.NoError(t, err)
	assert.Equal(t, "2\n1", strings.TrimSpace(out))

	out, err = run(t, runStackPeek, "jobs")
	require.NoError(t, err)
	assert.Equal(t, "2", strings.TrimSpace(out))

	out, err = run(t, runStackPop, "jobs")
	require.NoError(t, err)
	assert.Equal(t, "2", strings.TrimSpace(out))

	out, err = run(t, runStackPop, "jobs")
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(out))

	for i := 0; i < 2; i++ {
		_, err = run(t, runStackPop, "jobs")
		require.Error(t, err)
		assert.ErrorIs(t, err, collections.ErrEmpty)
	}

	out, err = run(t, runStackShow, "jobs")
	require.NoError(t, err)
	assert.Equal(t, "(empty)", strings.TrimSpace(out))
}

func TestQueueCommands(t *testing.T) {
	setupWorkspace(t)

	_, err := run(t, runQueueEnqueue, "inbox", "a", "b")
	require.NoError(t, err)
	_, err = run(t, runQueueEnqueue, "inbox", "c")
	require.NoError(t, err)

	out, err := run(t, runQueuePeek, "inbox")
	require.NoError(t, err)
	assert.Equal(t, "a", strings.TrimSpace(out))

	var got []string
	for i := 0; i < 3; i++ {
		out, err := run(t, runQueueDequeue, "inbox")
		require.NoError(t, err)
		got = append(got, strings.TrimSpace(out))
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)

	_, err = run(t, runQueueDequeue, "inbox")
	assert.ErrorIs(t, err, collections.ErrEmpty)
}

func TestListDropAndKindMismatch(t *testing.T) {
	setupWorkspace(t)

	_, err := run(t, runStackPush, "s", "x")
	require.NoError(t, err)
	_, err = run(t, runQueueEnqueue, "q", "y", "z")
	require.NoError(t, err)

	_, err = run(t, runQueueEnqueue, "s", "nope")
	assert.ErrorIs(t, err, store.ErrKindMismatch)

	out, err := run(t, runList)
	require.NoError(t, err)
	assert.Equal(t, "q\tqueue\t2\ns\tstack\t1", strings.TrimSpace(out))

	_, err = run(t, runDrop, "s")
	require.NoError(t, err)
	_, err = run(t, runDrop, "s")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListEmpty(t *testing.T) {
	setupWorkspace(t)

	out, err := run(t, runList)
	require.NoError(t, err)
	assert.Contains(t, out, "No containers stored")
}

func TestSamples(t *testing.T) {
	setupWorkspace(t)

	out, err := run(t, runSamples)
	require.NoError(t, err)
	assert.Contains(t, out, "list:  [1 2 3]")
	assert.Contains(t, out, "tuple: [1 2 3]")
	assert.Contains(t, out, "set:   [1 2 3]")
	assert.Contains(t, out, "dict:  map[a:1 b:2]")
}

func TestConfigInitAndShow(t *testing.T) {
	ws := setupWorkspace(t)

	out, err := run(t, runConfigInit)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(ws, ".kata", "config.yaml"))

	out, err = run(t, runConfigShow)
	require.NoError(t, err)
	assert.Contains(t, out, "name: kata")
	assert.Contains(t, out, "workers: 4")
}

func TestRootCommandEndToEnd(t *testing.T) {
	ws := setupWorkspace(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"--workspace", ws, "stack", "push", "e2e", "first", "second"})
	require.NoError(t, rootCmd.Execute())
	assert.NotEmpty(t, requestID)

	buf.Reset()
	rootCmd.SetArgs([]string{"--workspace", ws, "stack", "pop", "e2e"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "second", strings.TrimSpace(buf.String()))

	_, err := os.Stat(filepath.Join(ws, ".kata", "state.db"))
	assert.NoError(t, err)
}

func TestMutationAuditFollowsCommit(t *testing.T) {
	ws := setupWorkspace(t)
	require.NoError(t, logging.Initialize(ws, config.LoggingConfig{Level: "info", Format: "json", DebugMode: true}))
	t.Cleanup(func() {
		_ = logging.Initialize(ws, config.LoggingConfig{Level: "info", Format: "text"})
	})

	_, err := run(t, runQueueEnqueue, "jobs", "a")
	require.NoError(t, err)
	_, err = run(t, runStackPush, "jobs", "b")
	require.ErrorIs(t, err, store.ErrKindMismatch)
	logging.CloseAll()

	audit, err := os.ReadFile(filepath.Join(ws, ".kata", "logs", "audit.jsonl"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(audit)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"event":"enqueue"`)
	assert.Contains(t, lines[0], `"success":true`)
	assert.Contains(t, lines[1], `"event":"push"`)
	assert.Contains(t, lines[1], `"success":false`)
}
