//go:build !linux

package scanner

import (
	"os"
	"time"
)

// statTimes falls back to the modification time for all three fields on
// platforms without a portable way to read change/access times from
// os.FileInfo.
func statTimes(info os.FileInfo) (ctime, mtime, atime time.Time) {
	mtime = info.ModTime()
	return mtime, mtime, mtime
}
