package query

import (
	"sort"
	"strings"
	"time"

	"jobsdb/app/interfaces"
)

// Order returns the jobs sorted by the requested field and direction. The
// sort is stable: equal keys keep their input relative order. The input
// slice is never reordered; callers may hold it as part of an immutable
// snapshot.
func Order(jobs []*Job, s SortState) []*Job {
	cmp := comparatorFor(s.Field)
	if cmp == nil {
		// Unrecognized field: identity pass-through in input order.
		out := make([]*Job, len(jobs))
		copy(out, jobs)
		return out
	}

	out := make([]*Job, len(jobs))
	copy(out, jobs)

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		// Absent-date placement is direction-invariant: the sentinels
		// decide ordering before the direction flip is applied.
		if c == absentAfter {
			return false
		}
		if c == absentBefore {
			return true
		}
		if c == 0 {
			return false
		}
		if s.Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// comparatorFor maps a sort field identifier to its comparison function,
// or nil for unknown fields. Comparators return <0, 0 or >0 like
// strings.Compare; direction is applied by the caller, except for absent
// dates which are handled inside compareTimes so they stay last in both
// directions.
func comparatorFor(field string) func(a, b *Job) int {
	switch field {
	case interfaces.SortByName:
		return func(a, b *Job) int { return compareFold(a.Name, b.Name) }
	case interfaces.SortByCreator:
		return func(a, b *Job) int { return compareFold(a.Creator, b.Creator) }
	case interfaces.SortByType:
		return compareType
	case interfaces.SortByCreated:
		return func(a, b *Job) int { return compareTimes(a.CreatedAt, b.CreatedAt) }
	case interfaces.SortByUpdated:
		return func(a, b *Job) int { return compareTimes(a.UpdatedAt, b.UpdatedAt) }
	case interfaces.SortByScraped:
		return func(a, b *Job) int { return compareTimes(a.ScrapedTime, b.ScrapedTime) }
	default:
		return nil
	}
}

// compareFold compares two strings case-insensitively.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareType orders by the derived type rank, breaking ties (same rank,
// including two unknown types) by case-insensitive name.
func compareType(a, b *Job) int {
	if a.TypeRank != b.TypeRank {
		if a.TypeRank < b.TypeRank {
			return -1
		}
		return 1
	}
	return compareFold(a.Name, b.Name)
}

// Sentinels returned by compareTimes when at least one side is absent.
// Order recognizes them and places absent values last without consulting
// the sort direction.
const (
	absentAfter  = 1 << 30
	absentBefore = -absentAfter
)

// compareTimes orders present times chronologically. Absent times sort
// after all present times regardless of direction.
func compareTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return absentAfter
	case b == nil:
		return absentBefore
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}
