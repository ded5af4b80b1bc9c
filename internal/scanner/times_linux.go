//go:build linux

package scanner

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts change, modification and access times from the raw
// stat data. Linux has no birth time in struct stat; the inode change time
// stands in for creation, matching what the platform actually reports.
func statTimes(info os.FileInfo) (ctime, mtime, atime time.Time) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		ctime = time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
		atime = time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec))
	} else {
		ctime = info.ModTime()
		atime = info.ModTime()
	}
	return ctime, info.ModTime(), atime
}
