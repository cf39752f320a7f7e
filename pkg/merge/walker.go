package merge

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Walk traverses the directory rooted at root and collects every regular file
// into a FileEntry. Symbolic links are neither followed nor listed, so cyclic
// link structures cannot trap the walk. Entries that fail to stat are logged
// and skipped rather than aborting the traversal.
//
// skipAbs, when non-empty, names one absolute path to leave out of the
// results. The caller passes the output file here so that a rerun with the
// output living under the input root does not merge the previous output into
// itself.
func Walk(root, skipAbs string, logger *zap.Logger) ([]FileEntry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInputNotFound, root)
	}

	var entries []FileEntry
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if skipAbs != "" && path == skipAbs {
			logger.Debug("Skipping output file found inside input root", zap.String("path", path))
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			logger.Warn("Failed to stat file during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			logger.Warn("Unable to determine relative path", zap.String("path", path), zap.Error(err))
			return nil
		}

		entries = append(entries, FileEntry{
			AbsPath:    path,
			RelPath:    filepath.ToSlash(relPath),
			Size:       fi.Size(),
			CreatedAt:  creationTime(fi),
			ModifiedAt: fi.ModTime(),
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to traverse %s: %w", root, walkErr)
	}

	logger.Debug("Completed file traversal", zap.String("root", absRoot), zap.Int("files", len(entries)))
	return entries, nil
}
