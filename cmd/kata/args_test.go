package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionalNegatives(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "single negative",
			args: []string{"digits", "last", "-456"},
			want: []string{"digits", "last", "--", "-456"},
		},
		{
			name: "persistent flag before command",
			args: []string{"--workspace", "/w", "digits", "max", "-1", "-2", "-3"},
			want: []string{"--workspace", "/w", "digits", "max", "--", "-1", "-2", "-3"},
		},
		{
			name: "trailing flag moves ahead",
			args: []string{"digits", "last", "-456", "-v"},
			want: []string{"digits", "last", "-v", "--", "-456"},
		},
		{
			name: "flag value kept with its flag",
			args: []string{"digits", "batch", "3", "-45", "--op", "first"},
			want: []string{"digits", "batch", "3", "--op", "first", "--", "-45"},
		},
		{
			name: "negative flag value untouched",
			args: []string{"digits", "batch", "--workers", "-1", "5"},
			want: []string{"digits", "batch", "--workers", "-1", "5"},
		},
		{
			name: "explicit terminator untouched",
			args: []string{"digits", "reverse", "--", "-456"},
			want: []string{"digits", "reverse", "--", "-456"},
		},
		{
			name: "stack items",
			args: []string{"stack", "push", "nums", "-1", "2"},
			want: []string{"stack", "push", "nums", "--", "-1", "2"},
		},
		{
			name: "no negatives",
			args: []string{"digits", "last", "42"},
			want: []string{"digits", "last", "42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := positionalNegatives(rootCmd, tt.args)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("positionalNegatives() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRootCommandNegativeNumbers(t *testing.T) {
	ws := setupWorkspace(t)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"digits", "last", "-456"}, "6"},
		{[]string{"digits", "first", "-456"}, "4"},
		{[]string{"digits", "reverse", "-456"}, "-654"},
		{[]string{"digits", "max", "-1", "-2", "-3"}, "-1"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			buf.Reset()
			args := append([]string{"--workspace", ws}, tt.args...)
			rootCmd.SetArgs(positionalNegatives(rootCmd, args))
			require.NoError(t, rootCmd.Execute())
			assert.Equal(t, tt.want, strings.TrimSpace(buf.String()))
		})
	}
}
