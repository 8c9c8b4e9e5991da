// Package query implements the catalog's data pipeline: filtering,
// sorting, pagination and random sampling over an immutable job
// snapshot. Every function here is pure over its inputs; the only shared
// state is the optional result cache, which holds filtered+sorted
// subsets so page navigation does not recompute them.
package query

import (
	"fmt"

	"jobsdb/app/cache"
	"jobsdb/app/interfaces"
)

// Pipeline executes queries against a snapshot. It holds no per-query
// state; a single Pipeline may serve concurrent readers of the same
// snapshot.
type Pipeline struct {
	cache  *cache.Cache // nil disables caching
	logger interfaces.Logger
}

// NewPipeline creates a pipeline. Both arguments may be nil.
func NewPipeline(c *cache.Cache, logger interfaces.Logger) *Pipeline {
	return &Pipeline{cache: c, logger: logger}
}

// Run produces the visible page for one query state: filter, then sort,
// then paginate. The filtered+sorted subset is cached per snapshot
// fingerprint and state; a hit skips straight to pagination.
func (p *Pipeline) Run(snap *Snapshot, req QueryRequest) *QueryResult {
	if snap == nil {
		return &QueryResult{Jobs: []*Job{}, EffectivePage: 1, TotalPages: 1}
	}

	ordered, cached := p.orderedSubset(snap, req.Filter, req.Sort)
	pageJobs, info := Paginate(ordered, req.Page.PageSize, req.Page.Page)

	return &QueryResult{
		Jobs:          pageJobs,
		EffectivePage: info.EffectivePage,
		TotalPages:    info.TotalPages,
		MatchingCount: len(ordered),
		TotalCount:    snap.TotalCount(),
		Cached:        cached,
	}
}

// RunSample produces a random selection from the filtered subset.
// Sampling output is never cached, but the filter half still benefits
// from a cached subset when the same filter state was queried before
// under any sort.
func (p *Pipeline) RunSample(snap *Snapshot, f FilterState, n int) *QueryResult {
	if snap == nil {
		return &QueryResult{Jobs: []*Job{}, EffectivePage: 1, TotalPages: 1}
	}

	subset, cached := p.orderedSubset(snap, f, SortState{})
	sampled := Sample(subset, n)

	return &QueryResult{
		Jobs:          sampled,
		EffectivePage: 1,
		TotalPages:    1,
		MatchingCount: len(subset),
		TotalCount:    snap.TotalCount(),
		Cached:        cached,
	}
}

// OrderedSubset returns the full filtered and sorted subset for callers
// that consume every matching row, such as export and clipboard copy.
// The result is shared with the cache; callers must not mutate it.
func (p *Pipeline) OrderedSubset(snap *Snapshot, f FilterState, s SortState) []*Job {
	if snap == nil {
		return []*Job{}
	}
	subset, _ := p.orderedSubset(snap, f, s)
	return subset
}

// orderedSubset returns the filtered and sorted subset for the given
// state, consulting the cache first. The empty SortState falls through
// Order as an identity pass, so filter-only callers share the contract.
func (p *Pipeline) orderedSubset(snap *Snapshot, f FilterState, s SortState) ([]*Job, bool) {
	key := ""
	if p.cache != nil {
		key = BuildQueryKey(snap.Fingerprint, f, s)
		if jobs, ok := p.cache.Get(key); ok {
			p.log("debug", fmt.Sprintf("query: cache hit for %s (%d jobs)", key, len(jobs)))
			return jobs, true
		}
	}

	ordered := Order(Filter(snap.Jobs, f), s)

	if p.cache != nil {
		p.cache.Store(key, ordered)
		p.log("debug", fmt.Sprintf("query: cached %s (%d jobs)", key, len(ordered)))
	}
	return ordered, false
}

func (p *Pipeline) log(level, msg string) {
	if p.logger != nil {
		p.logger.Log(level, msg)
	}
}
