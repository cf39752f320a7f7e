package merge

import "errors"

// Fatal error classes. Anything wrapping one of these aborts the run with a
// non-zero exit; per-file read and decode failures never become errors, they
// are recorded on the Result instead.
var (
	// ErrInputNotFound indicates the input root is missing or not a directory.
	ErrInputNotFound = errors.New("input directory not found")

	// ErrOutputWrite indicates the output file (or its parent directory)
	// could not be created.
	ErrOutputWrite = errors.New("cannot write output file")
)
