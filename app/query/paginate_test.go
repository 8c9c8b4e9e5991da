package query

import (
	"fmt"
	"testing"
)

func manyJobs(n int) []*Job {
	out := make([]*Job, n)
	for i := range out {
		out[i] = job(fmt.Sprintf("%d", i), fmt.Sprintf("Job %03d", i), "x", "Race", "30", "None", "Unknown", "Unknown", "")
	}
	return out
}

func TestPaginate(t *testing.T) {
	jobs := manyJobs(25)

	tests := []struct {
		name          string
		pageSize      int
		page          int
		wantLen       int
		wantFirst     string
		wantEffective int
		wantTotal     int
	}{
		{name: "first page", pageSize: 10, page: 1, wantLen: 10, wantFirst: "0", wantEffective: 1, wantTotal: 3},
		{name: "middle page", pageSize: 10, page: 2, wantLen: 10, wantFirst: "10", wantEffective: 2, wantTotal: 3},
		{name: "short last page", pageSize: 10, page: 3, wantLen: 5, wantFirst: "20", wantEffective: 3, wantTotal: 3},
		{name: "page beyond end clamps to last", pageSize: 10, page: 99, wantLen: 5, wantFirst: "20", wantEffective: 3, wantTotal: 3},
		{name: "zero page clamps to first", pageSize: 10, page: 0, wantLen: 10, wantFirst: "0", wantEffective: 1, wantTotal: 3},
		{name: "negative page clamps to first", pageSize: 10, page: -4, wantLen: 10, wantFirst: "0", wantEffective: 1, wantTotal: 3},
		{name: "exact multiple has no ghost page", pageSize: 5, page: 5, wantLen: 5, wantFirst: "20", wantEffective: 5, wantTotal: 5},
		{name: "non-positive size falls back to default", pageSize: 0, page: 1, wantLen: 25, wantFirst: "0", wantEffective: 1, wantTotal: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, info := Paginate(jobs, tt.pageSize, tt.page)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].ID != tt.wantFirst {
				t.Errorf("first id = %s, want %s", got[0].ID, tt.wantFirst)
			}
			if info.EffectivePage != tt.wantEffective {
				t.Errorf("effective page = %d, want %d", info.EffectivePage, tt.wantEffective)
			}
			if info.TotalPages != tt.wantTotal {
				t.Errorf("total pages = %d, want %d", info.TotalPages, tt.wantTotal)
			}
		})
	}
}

func TestPaginateEmptySubset(t *testing.T) {
	got, info := Paginate(nil, 10, 3)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if info.EffectivePage != 1 || info.TotalPages != 1 {
		t.Errorf("info = %+v, want page 1 of 1", info)
	}
}

// Walking all pages in order visits every job exactly once.
func TestPaginateCoversSubset(t *testing.T) {
	jobs := manyJobs(23)
	seen := make(map[string]int)
	_, info := Paginate(jobs, 7, 1)
	for page := 1; page <= info.TotalPages; page++ {
		pageJobs, _ := Paginate(jobs, 7, page)
		for _, j := range pageJobs {
			seen[j.ID]++
		}
	}
	if len(seen) != len(jobs) {
		t.Fatalf("saw %d distinct jobs, want %d", len(seen), len(jobs))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("job %s seen %d times", id, n)
		}
	}
}

func TestPageInfoNeighbours(t *testing.T) {
	info := PageInfo{EffectivePage: 1, TotalPages: 4}
	if got := info.PrevPage(); got != 1 {
		t.Errorf("PrevPage at first = %d, want 1", got)
	}
	if got := info.NextPage(); got != 2 {
		t.Errorf("NextPage = %d, want 2", got)
	}
	info.EffectivePage = 4
	if got := info.NextPage(); got != 4 {
		t.Errorf("NextPage at last = %d, want 4", got)
	}
	if got := info.PrevPage(); got != 3 {
		t.Errorf("PrevPage = %d, want 3", got)
	}
}
