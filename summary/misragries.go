package summary

import (
	"cmp"
	"fmt"
)

// MisraGries keeps at most k-1 counters. When the table is full and a new
// item arrives, every counter is decremented and zeroed counters are
// dropped; the new item is not inserted on that step.
//
// For every item i the maintained count c(i) satisfies
// f(i) - floor(n/k) <= c(i) <= f(i), so any item occurring more than n/k
// times is still in the table when queried.
type MisraGries[K cmp.Ordered] struct {
	k        int
	counters Table[K]
	n        uint64
}

func NewMisraGries[K cmp.Ordered](k int) (*MisraGries[K], error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: misra-gries requires k >= 2, got %d", ErrInvalidParameter, k)
	}
	return &MisraGries[K]{k: k, counters: make(Table[K])}, nil
}

func (mg *MisraGries[K]) Update(key K) {
	mg.n++
	if count, ok := mg.counters[key]; ok {
		mg.counters[key] = count + 1
		return
	}
	if len(mg.counters) < mg.k-1 {
		mg.counters[key] = 1
		return
	}
	// Full table, absent item: decrement everything in one sweep. Keys are
	// collected first and removed after, so the sweep sees a fixed snapshot.
	var drained []K
	for cand, count := range mg.counters {
		if count == 1 {
			drained = append(drained, cand)
		} else {
			mg.counters[cand] = count - 1
		}
	}
	for _, cand := range drained {
		delete(mg.counters, cand)
	}
}

func (mg *MisraGries[K]) Candidates() map[K]uint64 {
	return mg.counters.Snapshot()
}

func (mg *MisraGries[K]) TopK(limit int) []Entry[K] {
	return Rank(mg.counters, limit)
}

func (mg *MisraGries[K]) Count(key K) (uint64, bool) {
	count, ok := mg.counters[key]
	return count, ok
}

func (mg *MisraGries[K]) Len() int {
	return len(mg.counters)
}

func (mg *MisraGries[K]) Total() uint64 {
	return mg.n
}
