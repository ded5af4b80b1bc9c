package scanner

import (
	"fmt"
	"os"
)

// TimestampFormat is the fixed local-time layout used for every exported
// timestamp field.
const TimestampFormat = "2006-01-02 15:04:05"

// Stat returns the size and the formatted creation, modification and access
// times of the entry at path. On failure it returns zero-value sentinels
// together with the cause; callers log it and keep going.
func Stat(path string) (size int64, created, modified, accessed string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, "", "", "", fmt.Errorf("stat %s: %w", path, err)
	}

	ctime, mtime, atime := statTimes(info)
	return info.Size(),
		ctime.Format(TimestampFormat),
		mtime.Format(TimestampFormat),
		atime.Format(TimestampFormat),
		nil
}
