package summary

import (
	"cmp"
	"slices"
)

// Rank orders a frequency table into entries sorted by count descending;
// entries with equal counts are ordered by key ascending. limit <= 0 or
// beyond the table size returns every entry. The input table is not
// modified and the result does not alias it.
func Rank[K cmp.Ordered](table map[K]uint64, limit int) []Entry[K] {
	entries := make([]Entry[K], 0, len(table))
	for key, count := range table {
		entries = append(entries, Entry[K]{Key: key, Count: count})
	}
	slices.SortFunc(entries, func(a, b Entry[K]) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Key, b.Key)
	})
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}
