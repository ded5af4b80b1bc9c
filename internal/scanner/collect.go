package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwantia/dirscan/pkg/log"
)

const (
	phaseCollecting = "Collecting data..."
	phaseCollected  = "Collection complete."
)

// Collector walks a directory tree and builds the record store for one run.
// Hashing and stat failures on single entries are reported and folded into
// partial results; a directory that cannot be listed at all aborts the run.
type Collector struct {
	mode     HashMode
	log      log.LoggerService
	progress ProgressFunc

	done int
}

// NewCollector creates a collector for the given hash mode. The progress
// function may be nil.
func NewCollector(mode HashMode, logger log.LoggerService, progress ProgressFunc) *Collector {
	return &Collector{
		mode:     mode,
		log:      logger,
		progress: progress,
	}
}

// Collect walks root depth-first and returns the ordered record store.
// Within each directory all files come first (lexicographic), then all
// subfolders (lexicographic), then recursion descends into each subfolder
// in order before moving to the parent's next sibling.
func (c *Collector) Collect(root string) (*RecordStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", root)
	}

	total, err := c.countItems(root)
	if err != nil {
		return nil, err
	}

	throttle := NewThrottle(total, c.progress)
	throttle.Start(phaseCollecting)

	store := &RecordStore{results: make([]Result, 0, total)}
	c.done = 0
	if err := c.walkDir(filepath.Clean(root), throttle, store); err != nil {
		return nil, err
	}

	throttle.Finish(phaseCollected)
	return store, nil
}

// countItems pre-walks the tree so progress fractions are meaningful from
// the first real update. Counts every file and every directory below root,
// excluding root itself.
func (c *Collector) countItems(root string) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, fmt.Errorf("read directory %s: %w", root, err)
	}

	total := len(entries)
	for _, entry := range entries {
		if entry.IsDir() {
			sub, err := c.countItems(filepath.Join(root, entry.Name()))
			if err != nil {
				return 0, err
			}
			total += sub
		}
	}
	return total, nil
}

func (c *Collector) walkDir(dir string, throttle *Throttle, store *RecordStore) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}

	// os.ReadDir returns entries sorted by name; partitioning preserves
	// the lexicographic order within each group.
	var files, dirs []os.DirEntry
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry)
		} else {
			files = append(files, entry)
		}
	}

	for _, entry := range files {
		path := filepath.Join(dir, entry.Name())
		store.append(c.fileResult(path, entry.Name()))
		c.done++
		throttle.Tick(c.done, phaseCollecting)
	}

	for _, entry := range dirs {
		path := filepath.Join(dir, entry.Name())
		store.append(c.folderResult(path, entry.Name()))
		c.done++
		throttle.Tick(c.done, phaseCollecting)
	}

	for _, entry := range dirs {
		if err := c.walkDir(filepath.Join(dir, entry.Name()), throttle, store); err != nil {
			return err
		}
	}

	return nil
}

// fileResult hashes and stats one file. Any per-file failure leaves the
// affected fields empty, records the first cause and never stops the walk.
func (c *Collector) fileResult(path, name string) Result {
	record := Record{
		Kind:     KindFile,
		FullPath: path,
		Name:     name,
	}
	var firstErr error

	if c.mode.WantSHA1() {
		digest, err := HashFile(path, AlgorithmSHA1)
		if err != nil {
			c.log.Error("Failed to hash file %s: %v", path, err)
			firstErr = err
		}
		record.SHA1 = digest
	}

	if c.mode.WantMD5() {
		digest, err := HashFile(path, AlgorithmMD5)
		if err != nil {
			c.log.Error("Failed to hash file %s: %v", path, err)
			if firstErr == nil {
				firstErr = err
			}
		}
		record.MD5 = digest
	}

	size, created, modified, accessed, err := Stat(path)
	if err != nil {
		c.log.Error("Failed to read metadata for %s: %v", path, err)
		if firstErr == nil {
			firstErr = err
		}
	}
	record.Size = size
	record.Created = created
	record.Modified = modified
	record.Accessed = accessed

	return Result{Record: record, Err: firstErr}
}

// folderResult stats one directory entry. Folders are never hashed; their
// size is whatever the filesystem reports for the directory entry itself.
func (c *Collector) folderResult(path, name string) Result {
	record := Record{
		Kind:     KindFolder,
		FullPath: path,
		Name:     name,
	}

	size, created, modified, accessed, err := Stat(path)
	if err != nil {
		c.log.Error("Failed to read metadata for %s: %v", path, err)
	}
	record.Size = size
	record.Created = created
	record.Modified = modified
	record.Accessed = accessed

	return Result{Record: record, Err: err}
}
