// Package eval measures how well an estimator's candidate table agrees
// with exact ground-truth frequencies. It is used by the test suite and
// for comparative analysis; production use of the estimators does not
// need it.
package eval

import (
	"cmp"

	"github.com/streamkit/heavyhitter/summary"
)

// Report captures top-N agreement between a candidate table and the
// ground truth.
type Report struct {
	// Overlap is the size of the intersection of the candidate top-N and
	// the true top-N item sets.
	Overlap int
	// Recall is Overlap divided by N.
	Recall float64
	// TableSize is the number of counters the estimator held.
	TableSize int
}

// Compare ranks the true top-N items by exact frequency and the candidate
// top-N restricted to keys present in candidates — ordered by true
// frequency, so an inflated estimate cannot buy a candidate a better
// rank. Neither input map is modified.
func Compare[K cmp.Ordered](candidates, truth map[K]uint64, n int) Report {
	if n <= 0 {
		return Report{TableSize: len(candidates)}
	}

	trueTop := summary.Rank(truth, n)
	inTrueTop := make(map[K]struct{}, len(trueTop))
	for _, entry := range trueTop {
		inTrueTop[entry.Key] = struct{}{}
	}

	byTruth := make(map[K]uint64, len(candidates))
	for key := range candidates {
		byTruth[key] = truth[key]
	}

	overlap := 0
	for _, entry := range summary.Rank(byTruth, n) {
		if _, ok := inTrueTop[entry.Key]; ok {
			overlap++
		}
	}
	return Report{
		Overlap:   overlap,
		Recall:    float64(overlap) / float64(n),
		TableSize: len(candidates),
	}
}
