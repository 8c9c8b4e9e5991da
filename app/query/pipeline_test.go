package query

import (
	"testing"

	"jobsdb/app/cache"
	"jobsdb/app/interfaces"
)

func testSnapshot(jobs []*Job) *Snapshot {
	return &Snapshot{
		Jobs:        jobs,
		Fingerprint: "test-fingerprint",
	}
}

func TestPipelineRun(t *testing.T) {
	p := NewPipeline(nil, nil)
	snap := testSnapshot(testJobs())

	res := p.Run(snap, QueryRequest{
		Filter: FilterState{VerificationTypes: []string{"None"}},
		Sort:   SortState{Field: interfaces.SortByName},
		Page:   PageRequest{Page: 1, PageSize: 2},
	})

	if res.MatchingCount != 3 {
		t.Fatalf("matching = %d, want 3", res.MatchingCount)
	}
	if res.TotalCount != 5 {
		t.Errorf("total = %d, want 5", res.TotalCount)
	}
	if res.TotalPages != 2 || res.EffectivePage != 1 {
		t.Errorf("pages = %d/%d, want 1/2", res.EffectivePage, res.TotalPages)
	}
	if !equalIDs(ids(res.Jobs), "4", "5") {
		t.Errorf("page 1 = %v, want [4 5] (Desert Run, Mystery Mode)", ids(res.Jobs))
	}

	res = p.Run(snap, QueryRequest{
		Filter: FilterState{VerificationTypes: []string{"None"}},
		Sort:   SortState{Field: interfaces.SortByName},
		Page:   PageRequest{Page: 2, PageSize: 2},
	})
	if !equalIDs(ids(res.Jobs), "2") {
		t.Errorf("page 2 = %v, want [2] (Sky High)", ids(res.Jobs))
	}
}

func TestPipelineNilSnapshot(t *testing.T) {
	p := NewPipeline(nil, nil)
	res := p.Run(nil, QueryRequest{})
	if len(res.Jobs) != 0 || res.EffectivePage != 1 || res.TotalPages != 1 {
		t.Errorf("nil snapshot result = %+v", res)
	}
	res = p.RunSample(nil, FilterState{}, 5)
	if len(res.Jobs) != 0 {
		t.Errorf("nil snapshot sample = %+v", res)
	}
}

func TestPipelineCachesOrderedSubset(t *testing.T) {
	p := NewPipeline(cache.New(0), nil)
	snap := testSnapshot(testJobs())
	req := QueryRequest{
		Filter: FilterState{JobTypes: []string{"Race", "Stunt Race"}},
		Sort:   SortState{Field: interfaces.SortByName},
		Page:   PageRequest{Page: 1, PageSize: 1},
	}

	first := p.Run(snap, req)
	if first.Cached {
		t.Fatal("first run reported a cache hit")
	}

	// Same state, different page: the subset is reused.
	req.Page.Page = 2
	second := p.Run(snap, req)
	if !second.Cached {
		t.Fatal("page navigation missed the cache")
	}
	if second.EffectivePage != 2 {
		t.Errorf("effective page = %d, want 2", second.EffectivePage)
	}

	// Logically equal state with selections in another order also hits.
	req.Filter.JobTypes = []string{"Stunt Race", "Race"}
	third := p.Run(snap, req)
	if !third.Cached {
		t.Error("reordered selection set missed the cache")
	}

	// A different sort direction is a different subset.
	req.Sort.Descending = true
	fourth := p.Run(snap, req)
	if fourth.Cached {
		t.Error("different sort state hit the cache")
	}
}

func TestPipelineSampleSharesFilterCache(t *testing.T) {
	p := NewPipeline(cache.New(0), nil)
	snap := testSnapshot(testJobs())
	f := FilterState{VerificationTypes: []string{"None"}}

	first := p.RunSample(snap, f, 2)
	if first.Cached {
		t.Fatal("first sample reported a cache hit")
	}
	if len(first.Jobs) != 2 || first.MatchingCount != 3 {
		t.Fatalf("sample = %d of %d, want 2 of 3", len(first.Jobs), first.MatchingCount)
	}

	second := p.RunSample(snap, f, 2)
	if !second.Cached {
		t.Error("second sample missed the filter cache")
	}
}

// A small end-to-end check over one pair of records: type selection,
// case-insensitive name sort, page clamping and a bucket filter.
func TestPipelineTwoRecordScenario(t *testing.T) {
	p := NewPipeline(nil, nil)
	snap := testSnapshot([]*Job{
		job("1", "Alpha", "x", "Race", "30", "None", "August 08, 2015", "Unknown", ""),
		job("2", "beta", "y", "Parkour", "16", "None", "August 08, 2020", "Unknown", ""),
	})

	res := p.Run(snap, QueryRequest{Filter: FilterState{JobTypes: []string{"Race"}}})
	if !equalIDs(ids(res.Jobs), "1") {
		t.Errorf("type filter = %v, want [1]", ids(res.Jobs))
	}

	res = p.Run(snap, QueryRequest{Sort: SortState{Field: interfaces.SortByName}})
	if !equalIDs(ids(res.Jobs), "1", "2") {
		t.Errorf("name sort = %v, want Alpha before beta", ids(res.Jobs))
	}

	res = p.Run(snap, QueryRequest{Page: PageRequest{Page: 2, PageSize: 1}})
	if !equalIDs(ids(res.Jobs), "2") || res.EffectivePage != 2 || res.TotalPages != 2 {
		t.Errorf("page 2 of 2 = %v (page %d/%d)", ids(res.Jobs), res.EffectivePage, res.TotalPages)
	}

	res = p.Run(snap, QueryRequest{Filter: FilterState{PlayerBuckets: []string{interfaces.BucketSixteenPlus}}})
	if !equalIDs(ids(res.Jobs), "2") {
		t.Errorf("bucket filter = %v, want [2]", ids(res.Jobs))
	}
}

func TestBuildQueryKey(t *testing.T) {
	base := FilterState{JobTypes: []string{"Race", "Parkour"}, Search: "loop"}
	s := SortState{Field: interfaces.SortByName}

	k1 := BuildQueryKey("fp1", base, s)
	k2 := BuildQueryKey("fp1", FilterState{JobTypes: []string{"Parkour", "Race"}, Search: "loop"}, s)
	if k1 != k2 {
		t.Error("selection order changed the key")
	}

	if BuildQueryKey("fp2", base, s) == k1 {
		t.Error("different fingerprints shared a key")
	}
	if BuildQueryKey("fp1", base, SortState{Field: interfaces.SortByName, Descending: true}) == k1 {
		t.Error("different sort direction shared a key")
	}

	withRange := base
	withRange.CreationYears = &YearRange{Min: 2015, Max: 2017}
	if BuildQueryKey("fp1", withRange, s) == k1 {
		t.Error("active year range shared a key with the unrestricted state")
	}
}
