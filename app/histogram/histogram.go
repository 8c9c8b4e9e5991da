// Package histogram aggregates a job subset into per-year counts for the
// sidebar charts next to the year-range sliders.
package histogram

import (
	"sort"

	"jobsdb/app/interfaces"
)

// YearBucket is one bar: a year and how many jobs fall in it.
type YearBucket struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// Histogram holds the per-year distribution of a subset. Jobs whose year
// could not be derived are counted separately; they are invisible to the
// sliders but the count keeps the display honest.
type Histogram struct {
	Buckets []YearBucket `json:"buckets"`
	Unknown int          `json:"unknown"`
	Total   int          `json:"total"`
}

// Dimension selects which derived year the histogram is built over.
type Dimension int

const (
	ByCreationYear Dimension = iota
	ByUpdateYear
)

// Build aggregates jobs into year buckets, ordered by year ascending.
func Build(jobs []*interfaces.Job, dim Dimension) *Histogram {
	counts := make(map[int]int)
	unknown := 0

	for _, j := range jobs {
		year := j.CreationYear
		if dim == ByUpdateYear {
			year = j.UpdateYear
		}
		if year == nil {
			unknown++
			continue
		}
		counts[*year]++
	}

	buckets := make([]YearBucket, 0, len(counts))
	for year, count := range counts {
		buckets = append(buckets, YearBucket{Year: year, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Year < buckets[j].Year })

	return &Histogram{Buckets: buckets, Unknown: unknown, Total: len(jobs)}
}
