package cache

import (
	"fmt"
	"testing"

	"jobsdb/app/interfaces"
)

func cachedJobs(n int) []*interfaces.Job {
	out := make([]*interfaces.Job, n)
	for i := range out {
		out[i] = &interfaces.Job{
			ID:      fmt.Sprintf("%d", i),
			Name:    fmt.Sprintf("Job %d", i),
			Creator: "tester",
		}
	}
	return out
}

func TestCacheStoreAndGet(t *testing.T) {
	c := New(0)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("empty cache returned a hit")
	}

	jobs := cachedJobs(3)
	c.Store("k1", jobs)
	got, ok := c.Get("k1")
	if !ok {
		t.Fatal("stored entry not found")
	}
	if len(got) != 3 || got[0] != jobs[0] {
		t.Error("cached subset differs from what was stored")
	}

	stats := c.GetStats()
	if stats.TotalEntries != 1 {
		t.Errorf("entries = %d, want 1", stats.TotalEntries)
	}
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 1/1", stats.Hits, stats.Misses)
	}
}

func TestCacheReplaceSameKey(t *testing.T) {
	c := New(0)
	c.Store("k", cachedJobs(10))
	sizeBefore := c.GetStats().TotalSize

	smaller := cachedJobs(2)
	c.Store("k", smaller)

	stats := c.GetStats()
	if stats.TotalEntries != 1 {
		t.Fatalf("entries = %d, want 1 after replace", stats.TotalEntries)
	}
	if stats.TotalSize >= sizeBefore {
		t.Errorf("size did not shrink: %d -> %d", sizeBefore, stats.TotalSize)
	}
	got, _ := c.Get("k")
	if len(got) != 2 {
		t.Errorf("replaced entry has %d jobs, want 2", len(got))
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	// Budget fits two of the three entries.
	one := estimateSize(cachedJobs(50))
	budget := 2*one + one/2
	c := New(budget)

	c.Store("a", cachedJobs(50))
	c.Store("b", cachedJobs(50))
	// Touch "a" so "b" is the eviction candidate.
	if _, ok := c.Get("a"); !ok {
		t.Fatal("entry a missing before eviction")
	}
	c.Store("c", cachedJobs(50))

	if _, ok := c.Get("b"); ok {
		t.Error("least recently used entry survived")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("new entry was evicted")
	}
}

func TestCacheRejectsOversizedEntry(t *testing.T) {
	c := New(128)
	c.Store("huge", cachedJobs(1000))
	if _, ok := c.Get("huge"); ok {
		t.Error("entry larger than the whole budget was stored")
	}
	if c.GetStats().TotalSize != 0 {
		t.Error("oversized store changed accounted size")
	}
}

func TestCacheClear(t *testing.T) {
	c := New(0)
	c.Store("a", cachedJobs(5))
	c.Store("b", cachedJobs(5))
	c.Clear()

	stats := c.GetStats()
	if stats.TotalEntries != 0 || stats.TotalSize != 0 {
		t.Errorf("after clear: %d entries, %d bytes", stats.TotalEntries, stats.TotalSize)
	}
	if _, ok := c.Get("a"); ok {
		t.Error("cleared entry still retrievable")
	}
}
