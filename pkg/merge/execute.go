package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Run executes the whole pipeline: walk the input root, drop excluded files,
// sort, and merge into the output file. The returned Result carries per-file
// skip information; a non-nil error means the run failed before or during
// output and nothing useful was produced.
func Run(args Arguments, logger *zap.Logger) (Result, error) {
	start := time.Now()
	logger.Debug("Starting merge run",
		zap.String("inputDir", args.InputDir),
		zap.String("output", args.Output),
		zap.String("sort", string(args.Sort)),
		zap.Bool("reverse", args.Reverse),
		zap.Strings("excludes", args.Excludes))

	if err := ValidatePatterns(args.Excludes); err != nil {
		return Result{}, err
	}

	absOutput, err := filepath.Abs(args.Output)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrOutputWrite, args.Output, err)
	}

	entries, err := Walk(args.InputDir, absOutput, logger)
	if err != nil {
		return Result{}, err
	}

	entries = Filter(entries, args.Excludes, logger)
	Sort(entries, args.Sort, args.Reverse)

	result, err := Merge(entries, absOutput, logger)
	if err != nil {
		return result, err
	}

	if args.Tree != "" {
		tree := RenderTree(filepath.Base(filepath.Clean(args.InputDir)), entries)
		if err := writeTreeFile(args.Tree, tree); err != nil {
			return result, err
		}
		logger.Debug("Wrote tree listing", zap.String("file", args.Tree))
	}

	result.Summarize(args.Output, logger)
	logger.Debug("Merge run finished", zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

func writeTreeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}
	return nil
}
