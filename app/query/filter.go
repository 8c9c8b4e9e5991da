package query

import (
	"strconv"
	"strings"

	"jobsdb/app/interfaces"
)

// Filter returns the subset of jobs matching every active dimension of
// the filter state, preserving input order. Dimensions combine by AND and
// each is evaluated independently against the full record, so applying
// the same state twice is a no-op and dimension order never matters.
func Filter(jobs []*Job, f FilterState) []*Job {
	matched := make([]*Job, 0, len(jobs))
	for _, j := range jobs {
		if Matches(j, f) {
			matched = append(matched, j)
		}
	}
	return matched
}

// Matches reports whether a single job passes every active filter
// dimension.
func Matches(j *Job, f FilterState) bool {
	return matchesSearch(j, f.Search) &&
		matchesSet(j.JobTypeEdited, f.JobTypes) &&
		matchesSet(j.VerificationType, f.VerificationTypes) &&
		matchesBuckets(j.MaxPlayers, f.PlayerBuckets) &&
		matchesYears(j.CreationYear, f.CreationYears) &&
		matchesYears(j.UpdateYear, f.UpdateYears)
}

// matchesSearch is a case-insensitive substring match over name, creator
// and description. A job with no description can only match on the other
// two fields.
func matchesSearch(j *Job, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(j.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(j.Creator), needle) {
		return true
	}
	return j.Description != "" && strings.Contains(strings.ToLower(j.Description), needle)
}

// matchesSet implements the empty-set-means-unrestricted contract for
// categorical dimensions.
func matchesSet(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// matchesBuckets checks the text-encoded max-players value against the
// selected buckets. Buckets are a disjunction: any selected bucket may
// match. A value that does not parse as an integer never matches a
// selection, and unknown bucket tokens never match anything.
func matchesBuckets(maxPlayers string, buckets []string) bool {
	if len(buckets) == 0 {
		return true
	}
	p, err := strconv.Atoi(strings.TrimSpace(maxPlayers))
	if err != nil {
		return false
	}
	for _, b := range buckets {
		switch b {
		case interfaces.BucketThirty:
			if p == 30 {
				return true
			}
		case interfaces.BucketSixteenPlus:
			if p >= 16 && p <= 29 {
				return true
			}
		case interfaces.BucketEightPlus:
			if p >= 8 && p <= 15 {
				return true
			}
		}
	}
	return false
}

// matchesYears applies an inclusive year range to a derived year. A nil
// range is unrestricted; any genuine restriction excludes records whose
// year could not be derived.
func matchesYears(year *int, r *YearRange) bool {
	if r == nil {
		return true
	}
	if year == nil {
		return false
	}
	return r.Contains(*year)
}
