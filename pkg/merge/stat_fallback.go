//go:build !linux

package merge

import (
	"io/fs"
	"time"
)

// creationTime falls back to the modification time on platforms where the
// stat structure does not carry a ctime field we can reach portably.
func creationTime(fi fs.FileInfo) time.Time {
	return fi.ModTime()
}
