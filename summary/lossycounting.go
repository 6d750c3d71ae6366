package summary

import (
	"cmp"
	"fmt"
)

// LossyCounting counts items in buckets of width k. A newly seen item is
// charged the current bucket width delta = floor(n/k) as potential prior
// undercount; whenever delta advances, counters that fell below it are
// pruned. The table size is not hard-capped but stays around
// O(k*log(n/k)) in practice.
//
// Maintained counts stay within delta of the true count in either
// direction, and any item occurring more than n/k times is retained.
type LossyCounting[K cmp.Ordered] struct {
	k        int
	delta    uint64
	counters Table[K]
	n        uint64
}

func NewLossyCounting[K cmp.Ordered](k int) (*LossyCounting[K], error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: lossy counting requires k >= 2, got %d", ErrInvalidParameter, k)
	}
	return &LossyCounting[K]{k: k, counters: make(Table[K])}, nil
}

func (lc *LossyCounting[K]) Update(key K) {
	lc.n++
	if count, ok := lc.counters[key]; ok {
		lc.counters[key] = count + 1
	} else {
		lc.counters[key] = 1 + lc.delta
	}
	width := lc.n / uint64(lc.k)
	if width == lc.delta {
		return
	}
	lc.delta = width
	for cand, count := range lc.counters {
		if count < width {
			delete(lc.counters, cand)
		}
	}
}

// Delta is the current bucket width floor(n/k), the maximum possible
// overcount or undercount of any maintained counter.
func (lc *LossyCounting[K]) Delta() uint64 {
	return lc.delta
}

func (lc *LossyCounting[K]) Candidates() map[K]uint64 {
	return lc.counters.Snapshot()
}

func (lc *LossyCounting[K]) TopK(limit int) []Entry[K] {
	return Rank(lc.counters, limit)
}

func (lc *LossyCounting[K]) Count(key K) (uint64, bool) {
	count, ok := lc.counters[key]
	return count, ok
}

func (lc *LossyCounting[K]) Len() int {
	return len(lc.counters)
}

func (lc *LossyCounting[K]) Total() uint64 {
	return lc.n
}
