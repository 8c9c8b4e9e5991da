// Package normalize derives typed, sortable fields from the free-text
// fields of scraped job records. Every parser here degrades to absence on
// malformed input; scraped data is messy and absence is the only failure
// signal the rest of the pipeline understands.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"jobsdb/app/interfaces"
)

const (
	// jobDateLayout matches the human-readable dates on the source site,
	// e.g. "August 08, 2015".
	jobDateLayout = "January 02, 2006"

	// scrapedAtLayout matches the machine timestamp written by the scraper.
	scrapedAtLayout = "2006-01-02 15:04:05"
)

// DefaultTypeOrder is the preferred display ordering for curated job
// types. Types not listed here rank after all listed ones.
var DefaultTypeOrder = []string{
	"GP", "Street", "Race", "Stunt Race", "Banger Race", "Off Road",
	"Deathmatch", "King of the Hill", "Last Team Standing", "Parkour", "Other",
}

// ParseJobDate parses a "Month DD, YYYY" date string.
func ParseJobDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(jobDateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExtractYear pulls the year token out of a "Month DD, YYYY" string. It
// tolerates strings the full date parser rejects as long as a ", YYYY"
// tail is present.
func ExtractYear(raw string) (int, bool) {
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return 0, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return year, true
}

// ParseScrapedAt parses the scraper's "YYYY-MM-DD HH:MM:SS" timestamp.
func ParseScrapedAt(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(scrapedAtLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TypeRank returns the position of jobType in order, or len(order) when
// the type is unknown. Unknown types therefore sort after every known
// type while staying mutually comparable; ties among unknowns are broken
// by the sort engine's secondary key.
func TypeRank(jobType string, order []string) int {
	for i, t := range order {
		if t == jobType {
			return i
		}
	}
	return len(order)
}

// Apply computes all derived fields for a job in place. It is called once
// per record at snapshot load.
func Apply(j *interfaces.Job) {
	if t, ok := ParseJobDate(j.CreationDate); ok {
		j.CreatedAt = &t
	}
	if t, ok := ParseJobDate(j.LastUpdated); ok {
		j.UpdatedAt = &t
	}
	if t, ok := ParseScrapedAt(j.ScrapedAt); ok {
		j.ScrapedTime = &t
	}
	if y, ok := ExtractYear(j.CreationDate); ok {
		j.CreationYear = &y
	}
	if y, ok := ExtractYear(j.LastUpdated); ok {
		j.UpdateYear = &y
	}
	j.TypeRank = TypeRank(j.JobTypeEdited, DefaultTypeOrder)
}
