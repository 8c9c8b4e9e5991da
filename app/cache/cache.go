// Package cache holds query results keyed by snapshot fingerprint and
// canonical query state, evicting least-recently-used entries once a byte
// budget is exceeded. Entries reference jobs from the immutable snapshot,
// so the accounted size is the reference overhead plus a per-job estimate
// rather than a deep copy.
package cache

import (
	"fmt"
	"sync"

	"jobsdb/app/interfaces"
)

// DefaultMaxSize is the cache budget used when settings do not override it.
const DefaultMaxSize = 50 * 1024 * 1024

// Stats reports cache usage for the frontend indicator.
type Stats struct {
	TotalEntries int     `json:"totalEntries"`
	TotalSize    int64   `json:"totalSize"`
	MaxSize      int64   `json:"maxSize"`
	UsagePercent float64 `json:"usagePercent"`
	Hits         int64   `json:"hits"`
	Misses       int64   `json:"misses"`
}

type entry struct {
	jobs []*interfaces.Job
	size int64
}

// Cache is a size-bounded LRU of query result subsets.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	lru     *lruList
	total   int64
	max     int64
	hits    int64
	misses  int64
	logger  interfaces.Logger
}

// New creates a cache with the given byte budget. Non-positive budgets
// fall back to DefaultMaxSize.
func New(maxBytes int64) *Cache {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxSize
	}
	return &Cache{
		entries: make(map[string]*entry),
		lru:     newLRUList(),
		max:     maxBytes,
	}
}

// SetLogger attaches a logger for eviction diagnostics. Safe to leave unset.
func (c *Cache) SetLogger(l interfaces.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

// Get returns the cached subset for key, marking it most recently used.
func (c *Cache) Get(key string) ([]*interfaces.Job, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.lru.moveToFront(key)
	return e.jobs, true
}

// Store inserts or replaces the subset for key, evicting old entries
// until the budget holds. An entry larger than the whole budget is not
// stored at all.
func (c *Cache) Store(key string, jobs []*interfaces.Job) {
	size := estimateSize(jobs)
	if size > c.max {
		c.log("debug", fmt.Sprintf("cache: result for %s too large to cache (%d bytes)", key, size))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[key]; ok {
		c.total -= old.size
		c.lru.remove(key)
	}
	c.entries[key] = &entry{jobs: jobs, size: size}
	c.lru.addToFront(key)
	c.total += size

	for c.total > c.max && c.lru.size() > 1 {
		oldest := c.lru.removeOldest()
		if oldest == "" {
			break
		}
		if e, ok := c.entries[oldest]; ok {
			c.total -= e.size
			delete(c.entries, oldest)
			c.log("debug", fmt.Sprintf("cache: evicted %s (%d bytes)", oldest, e.size))
		}
	}
}

// Clear drops every entry. Called on snapshot reload and when caching is
// disabled in settings.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
	c.lru = newLRUList()
	c.total = 0
}

// GetStats returns a consistent view of current usage.
func (c *Cache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	usage := 0.0
	if c.max > 0 {
		usage = float64(c.total) / float64(c.max) * 100
	}
	return Stats{
		TotalEntries: len(c.entries),
		TotalSize:    c.total,
		MaxSize:      c.max,
		UsagePercent: usage,
		Hits:         c.hits,
		Misses:       c.misses,
	}
}

func (c *Cache) log(level, msg string) {
	if c.logger != nil {
		c.logger.Log(level, msg)
	}
}

// jobOverhead approximates the fixed per-reference cost of holding a job
// in a cached subset.
const jobOverhead = 64

func estimateSize(jobs []*interfaces.Job) int64 {
	size := int64(len(jobs)) * jobOverhead
	for _, j := range jobs {
		size += int64(len(j.Name) + len(j.Creator) + len(j.Description))
	}
	return size
}
