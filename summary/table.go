package summary

import "cmp"

// Table is the counter storage shared by the map-backed estimators.
// Capacity and eviction rules belong to the estimator, not the table.
type Table[K cmp.Ordered] map[K]uint64

// Snapshot returns an independent copy of the table.
func (t Table[K]) Snapshot() map[K]uint64 {
	out := make(map[K]uint64, len(t))
	for key, count := range t {
		out[key] = count
	}
	return out
}
