//go:build linux

package merge

import (
	"io/fs"
	"syscall"
	"time"
)

// creationTime extracts the ctime from the platform stat structure. This
// mirrors what os.path.getctime reports on unix: the inode change time, which
// is the closest thing to a creation timestamp these filesystems expose.
func creationTime(fi fs.FileInfo) time.Time {
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	}
	return fi.ModTime()
}
