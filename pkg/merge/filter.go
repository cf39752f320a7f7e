package merge

import (
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"
)

// ValidatePatterns rejects malformed glob patterns before any filesystem work
// happens. path.Match reports bad patterns lazily, and treating a typo as
// "matches nothing" would silently merge files the user meant to exclude.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if _, err := path.Match(p, "probe"); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
	}
	return nil
}

// Filter returns the entries whose base name and path components all fail to
// match every exclusion pattern. A pattern matches a file when it matches the
// file's base name or any single directory component of its relative path, so
// excluding ".git" drops the whole .git subtree at any depth. Patterns that
// match nothing are not an error.
func Filter(entries []FileEntry, patterns []string, logger *zap.Logger) []FileEntry {
	if len(patterns) == 0 {
		return entries
	}

	kept := entries[:0:0]
	for _, entry := range entries {
		if pat, excluded := matchesAny(entry.RelPath, patterns); excluded {
			logger.Debug("Excluding file",
				zap.String("path", entry.RelPath),
				zap.String("pattern", pat))
			continue
		}
		kept = append(kept, entry)
	}

	logger.Debug("Applied exclusion patterns",
		zap.Int("patterns", len(patterns)),
		zap.Int("kept", len(kept)),
		zap.Int("excluded", len(entries)-len(kept)))
	return kept
}

// matchesAny tests each pattern independently against every segment of the
// relative path. Segments are matched one at a time on purpose: collapsing
// the path into a single expression would let wildcards leak across
// directory boundaries.
func matchesAny(relPath string, patterns []string) (string, bool) {
	segments := strings.Split(relPath, "/")
	for _, pattern := range patterns {
		for _, segment := range segments {
			if ok, _ := path.Match(pattern, segment); ok {
				return pattern, true
			}
		}
	}
	return "", false
}
