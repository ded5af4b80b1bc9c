package scanner

import (
	"fmt"
	"strings"
)

// Kind distinguishes the two entry types produced by a scan.
type Kind string

const (
	KindFile   Kind = "File"
	KindFolder Kind = "Folder"
)

// HashMode selects which content digests are computed per file.
type HashMode string

const (
	HashNone HashMode = "none"
	HashSHA1 HashMode = "sha1"
	HashMD5  HashMode = "md5"
	HashBoth HashMode = "both"
)

// ParseHashMode validates a hash mode string, case-insensitively.
func ParseHashMode(mode string) (HashMode, error) {
	switch HashMode(strings.ToLower(strings.TrimSpace(mode))) {
	case HashNone:
		return HashNone, nil
	case HashSHA1:
		return HashSHA1, nil
	case HashMD5:
		return HashMD5, nil
	case HashBoth:
		return HashBoth, nil
	default:
		return "", fmt.Errorf("unknown hash mode %q (expected none, sha1, md5 or both)", mode)
	}
}

// WantSHA1 reports whether the mode requires a SHA-1 digest.
func (hm HashMode) WantSHA1() bool {
	return hm == HashSHA1 || hm == HashBoth
}

// WantMD5 reports whether the mode requires an MD5 digest.
func (hm HashMode) WantMD5() bool {
	return hm == HashMD5 || hm == HashBoth
}

// Record describes a single file or folder visited during a scan.
// Hash fields stay empty for folders, for files when the mode does not
// request the algorithm, and for files whose content could not be read.
// Timestamps are pre-formatted local-time strings; empty when stat failed.
type Record struct {
	Kind     Kind
	FullPath string
	Name     string
	Size     int64
	SHA1     string
	MD5      string
	Created  string
	Modified string
	Accessed string
}

// Result pairs a record with the cause of its partial failure, if any.
// A nil Err means every requested field was captured; a non-nil Err means
// the record carries empty/zero sentinels for the fields that failed but
// the scan continued past it.
type Result struct {
	Record Record
	Err    error
}

// RecordStore is the ordered, write-once sequence of results for one run.
// It is built by exactly one collector and read-only once handed to the
// exporters.
type RecordStore struct {
	results []Result
}

func (rs *RecordStore) append(res Result) {
	rs.results = append(rs.results, res)
}

// Len returns the number of collected entries.
func (rs *RecordStore) Len() int {
	return len(rs.results)
}

// Records returns the collected records in walk order.
func (rs *RecordStore) Records() []Record {
	records := make([]Record, len(rs.results))
	for i, res := range rs.results {
		records[i] = res.Record
	}
	return records
}

// Failures returns the results that completed partially.
func (rs *RecordStore) Failures() []Result {
	var failed []Result
	for _, res := range rs.results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}
