package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/minio/highwayhash"
)

// cacheHashKey is the fixed HighwayHash key used to compress canonical
// query state into short cache keys. It only needs to be stable, not
// secret.
var cacheHashKey = []byte("jobsdb-query-cache-hash-key-0001")

// BuildQueryKey builds the cache key for a filtered+sorted subset. The
// snapshot fingerprint keeps results from different database states
// apart; the canonical state string makes logically equal filter states
// produce equal keys regardless of selection order.
func BuildQueryKey(fingerprint string, f FilterState, s SortState) string {
	canonical := canonicalFilter(f) + "|" + canonicalSort(s)
	sum := highwayhash.Sum64([]byte(canonical), cacheHashKey)
	return fmt.Sprintf("db:%s|q:%016x", fingerprint, sum)
}

// canonicalFilter encodes the filter state with every selection set
// sorted, so {"Race","Parkour"} and {"Parkour","Race"} share a key.
func canonicalFilter(f FilterState) string {
	var b strings.Builder
	b.WriteString("search:")
	b.WriteString(strings.ToLower(f.Search))
	b.WriteString("|types:")
	b.WriteString(sortedJoin(f.JobTypes))
	b.WriteString("|verif:")
	b.WriteString(sortedJoin(f.VerificationTypes))
	b.WriteString("|players:")
	b.WriteString(sortedJoin(f.PlayerBuckets))
	b.WriteString("|cyears:")
	b.WriteString(rangeKey(f.CreationYears))
	b.WriteString("|uyears:")
	b.WriteString(rangeKey(f.UpdateYears))
	return b.String()
}

func canonicalSort(s SortState) string {
	return fmt.Sprintf("sort:%s:%t", s.Field, s.Descending)
}

func sortedJoin(values []string) string {
	if len(values) == 0 {
		return ""
	}
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func rangeKey(r *YearRange) string {
	if r == nil {
		return "any"
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}
