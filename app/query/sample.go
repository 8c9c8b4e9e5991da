package query

import "math/rand/v2"

// Sample draws min(n, len(subset)) jobs uniformly at random without
// replacement. The input slice is never reordered; an empty subset or a
// non-positive n yields an empty result. Calls are independent; no
// sampler state is carried between them.
func Sample(subset []*Job, n int) []*Job {
	if n <= 0 || len(subset) == 0 {
		return []*Job{}
	}
	if n > len(subset) {
		n = len(subset)
	}

	// Partial Fisher-Yates over an index copy so the caller's slice is
	// left untouched.
	idx := make([]int, len(subset))
	for i := range idx {
		idx[i] = i
	}
	out := make([]*Job, 0, n)
	for i := 0; i < n; i++ {
		j := i + rand.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out = append(out, subset[idx[i]])
	}
	return out
}
