package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func entriesFor(paths ...string) []FileEntry {
	entries := make([]FileEntry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, FileEntry{RelPath: p})
	}
	return entries
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		patterns []string
		want     []string
	}{
		{
			name:     "no patterns keeps everything",
			paths:    []string{"a.txt", ".git/config"},
			patterns: nil,
			want:     []string{"a.txt", ".git/config"},
		},
		{
			name:     "literal component removes whole subtree",
			paths:    []string{"a.txt", ".git/config", ".git/hooks/pre-commit", "src/.git/HEAD"},
			patterns: []string{".git"},
			want:     []string{"a.txt"},
		},
		{
			name:     "star wildcard against base name",
			paths:    []string{"mod.py", "mod.pyc", "pkg/mod.pyc"},
			patterns: []string{"*.pyc"},
			want:     []string{"mod.py"},
		},
		{
			name:     "question mark matches one character",
			paths:    []string{"a1.log", "a12.log", "b.txt"},
			patterns: []string{"a?.log"},
			want:     []string{"a12.log", "b.txt"},
		},
		{
			name:     "directory wildcard",
			paths:    []string{"build-dev/out.txt", "build-prod/out.txt", "src/main.go"},
			patterns: []string{"build-*"},
			want:     []string{"src/main.go"},
		},
		{
			name:     "wildcards do not cross segment boundaries",
			paths:    []string{"src/cache/data.bin"},
			patterns: []string{"src*bin"},
			want:     []string{"src/cache/data.bin"},
		},
		{
			name:     "unmatched pattern is silently ignored",
			paths:    []string{"a.txt"},
			patterns: []string{"*.nothing", "__pycache__"},
			want:     []string{"a.txt"},
		},
		{
			name:     "multiple patterns combine with OR",
			paths:    []string{"a.txt", "b.pyc", "__pycache__/c.py"},
			patterns: []string{"*.pyc", "__pycache__"},
			want:     []string{"a.txt"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Filter(entriesFor(tc.paths...), tc.patterns, zap.NewNop())
			assert.Equal(t, tc.want, relPaths(got))
		})
	}
}

func TestValidatePatterns(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidatePatterns(nil))
	require.NoError(t, ValidatePatterns([]string{"*.pyc", ".git", "a?b", "[ab]*"}))

	err := ValidatePatterns([]string{"*.ok", "[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[unclosed")
}
