package merge

import (
	"fmt"
	"time"
)

// Arguments holds the configuration options for a merge run.
type Arguments struct {
	InputDir string   // Root directory to scan for files.
	Output   string   // Destination path for the merged output file.
	Tree     string   // Optional destination path for a directory tree listing.
	Sort     SortKey  // Ordering applied to the collected files.
	Reverse  bool     // If true, the fully resolved order is reversed.
	Excludes []string // Glob patterns removing files from the run.
}

// FileEntry describes one file discovered under the input root.
// Entries are built once by the walker and never mutated afterwards.
type FileEntry struct {
	AbsPath    string    // Absolute path on disk.
	RelPath    string    // Path relative to the input root, forward-slash separated.
	Size       int64     // Size in bytes at discovery time.
	CreatedAt  time.Time // Creation (ctime) timestamp.
	ModifiedAt time.Time // Last-modification timestamp.
}

// SortKey selects the comparator used to order files before merging.
type SortKey string

const (
	SortByName         SortKey = "name"
	SortByCreationTime SortKey = "creation_time"
	SortByModTime      SortKey = "modification_time"
	SortBySize         SortKey = "size"
)

// ParseSortKey validates a sort key supplied on the command line.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortByName, SortByCreationTime, SortByModTime, SortBySize:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q (valid: name, creation_time, modification_time, size)", s)
}

// SkipReason records one file that was dropped during the merge stage.
type SkipReason struct {
	Path   string // Relative path of the skipped file.
	Reason string // Human-readable explanation.
}

// Result accumulates the outcome of a merge run.
type Result struct {
	Merged       int          // Number of files written to the output.
	BytesWritten int64        // Total bytes written to the output file.
	Skipped      []SkipReason // Files dropped with their reasons, in processing order.
}
