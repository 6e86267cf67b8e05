package data

import (
	"os"
	"sync"
	"time"

	"awattar-dashboard/internal/model"
)

// cacheEntry remembers the dataset together with the file identity it was
// parsed from.
type cacheEntry struct {
	dataset model.Dataset
	modTime time.Time
	size    int64
}

// DatasetCache memoizes LoadAwattarJSON per file path so that the pipeline
// can re-run on every request without touching the disk again.
//
// Invalidation is explicit: either the file changes on disk (mtime or size)
// or someone calls Clear. There is no TTL; the dump is static between
// deliberate re-downloads.
type DatasetCache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
}

func NewDatasetCache() *DatasetCache {
	return &DatasetCache{store: make(map[string]*cacheEntry)}
}

// Load returns the dataset for path, reading and parsing the file only when
// it is not cached yet or has changed since the last read.
func (c *DatasetCache) Load(path string) (model.Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	entry, ok := c.store[path]
	c.mu.RUnlock()
	if ok && entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() {
		return entry.dataset, nil
	}

	ds, err := LoadAwattarJSON(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.store[path] = &cacheEntry{
		dataset: ds,
		modTime: info.ModTime(),
		size:    info.Size(),
	}
	c.mu.Unlock()

	return ds, nil
}

// Clear drops all cached datasets. The next Load re-reads from disk.
func (c *DatasetCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*cacheEntry)
}

// Len reports how many files are currently cached.
func (c *DatasetCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}
