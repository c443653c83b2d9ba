package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "build",
			args: []string{"build", "internet", "interview"},
			want: "(inter(net)(view))\n",
		},
		{
			name: "build empty",
			args: []string{"build"},
			want: "()\n",
		},
		{
			name: "lookup found",
			args: []string{"lookup", "high", "high"},
			want: "true\n",
		},
		{
			name: "lookup prefix is not a word",
			args: []string{"lookup", "hig", "high"},
			want: "false\n",
		},
		{
			name: "prefix",
			args: []string{"prefix", "hig", "high"},
			want: "true\n",
		},
		{
			name: "words with prefix",
			args: []string{"words", "-prefix", "w", "world", "all", "web"},
			want: "web\nworld\n",
		},
		{
			name: "parse",
			args: []string{"parse", "(w(eb)(orld))"},
			want: "web\nworld\n(w(eb)(orld))\n",
		},
		{
			name: "subsetsum",
			args: []string{"subsetsum", "-method", "top-down", "9", "3", "34", "4", "12", "5", "2"},
			want: "[4 5]\n",
		},
		{
			name: "subsetsum unreachable",
			args: []string{"subsetsum", "30", "3", "34", "4", "12", "5", "2"},
			want: "no subset\n",
		},
		{
			name: "version",
			args: []string{"-version"},
			want: "trie v0.1.0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_WordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# sample\nalgorithm\nall\n"), 0o644))

	got, err := runCLI(t, "-words-file", path, "build", "web")
	require.NoError(t, err)
	assert.Equal(t, "((al(gorithm)(l))(web))\n", got)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{name: "no command", args: nil, wantUsage: true},
		{name: "unknown command", args: []string{"delete"}, wantUsage: true},
		{name: "lookup without query", args: []string{"lookup"}, wantUsage: true},
		{name: "subsetsum bad number", args: []string{"subsetsum", "x"}, wantUsage: true},
		{name: "invalid word", args: []string{"build", "Hello"}},
		{name: "invalid canonical form", args: []string{"parse", "((b)(a))"}},
		{name: "unknown solver", args: []string{"subsetsum", "-method", "greedy", "1", "1"}},
		{name: "subsetsum total overflow", args: []string{"subsetsum", "1", "9223372036854775807", "1"}},
		{name: "missing words file", args: []string{"-words-file", "/nonexistent/words.txt", "build"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantUsage, errors.Is(err, errUsage))
		})
	}
}
