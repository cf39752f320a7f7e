package merge

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// separator is the banner line between merged files.
var separator = strings.Repeat("=", 80)

// Merge writes every entry to the output file in order, wrapping each file's
// content in a banner that records its relative path. The output file is
// created fresh, its parent directories first if needed. Files that cannot be
// read, or whose bytes are not valid UTF-8, are skipped with a warning and
// recorded on the Result; they contribute nothing to the output. Only output
// side failures are fatal.
func Merge(entries []FileEntry, output string, logger *zap.Logger) (Result, error) {
	var result Result

	if dir := filepath.Dir(output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, fmt.Errorf("%w: %s: %v", ErrOutputWrite, output, err)
		}
	}

	outFile, err := os.Create(output)
	if err != nil {
		return result, fmt.Errorf("%w: %s: %v", ErrOutputWrite, output, err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil {
			logger.Error("Failed to close output file", zap.String("file", output), zap.Error(cerr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	for _, entry := range entries {
		content, readErr := os.ReadFile(entry.AbsPath)
		if readErr != nil {
			result.skip(entry.RelPath, fmt.Sprintf("read failed: %v", readErr), logger)
			continue
		}
		if !utf8.Valid(content) {
			result.skip(entry.RelPath, "not valid UTF-8 text, file may be binary", logger)
			continue
		}

		n, werr := writeBanneredFile(writer, entry.RelPath, string(content))
		if werr != nil {
			return result, fmt.Errorf("%w: %s: %v", ErrOutputWrite, output, werr)
		}
		result.Merged++
		result.BytesWritten += int64(n)
	}

	if err := writer.Flush(); err != nil {
		return result, fmt.Errorf("%w: %s: %v", ErrOutputWrite, output, err)
	}
	return result, nil
}

// writeBanneredFile emits one file's banner block and content. Layout:
// a separator line, the relative path, another separator, a blank line, the
// content terminated by a newline, a blank line, a closing separator, and a
// blank line before the next file.
func writeBanneredFile(w *bufio.Writer, relPath, content string) (int, error) {
	var sb strings.Builder
	sb.WriteString(separator + "\n")
	sb.WriteString("// File: " + relPath + "\n")
	sb.WriteString(separator + "\n\n")
	sb.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(separator + "\n\n")
	return w.WriteString(sb.String())
}

func (r *Result) skip(relPath, reason string, logger *zap.Logger) {
	r.Skipped = append(r.Skipped, SkipReason{Path: relPath, Reason: reason})
	logger.Warn("Skipping file", zap.String("path", relPath), zap.String("reason", reason))
}

// Summarize logs the run outcome: counts, bytes written, and one line per
// skipped file so problem files can be located without rerunning.
func (r Result) Summarize(output string, logger *zap.Logger) {
	logger.Info("Merge completed",
		zap.String("output", output),
		zap.Int("filesMerged", r.Merged),
		zap.Int("filesSkipped", len(r.Skipped)),
		zap.String("bytesWritten", humanize.Bytes(uint64(r.BytesWritten))))

	for _, s := range r.Skipped {
		logger.Warn("Skipped file", zap.String("path", s.Path), zap.String("reason", s.Reason))
	}
}
