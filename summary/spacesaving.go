package summary

import (
	"cmp"
	"fmt"

	"github.com/streamkit/heavyhitter/pkg/minheap"
)

// SpaceSaving keeps exactly up to k counters. Once full, an unseen item
// evicts the minimum counter and inherits its count plus one, so counts
// never underestimate; the overestimate of any retained item is bounded
// by floor(n/k).
//
// When several counters share the minimum count, the one with the
// greatest key is evicted (the heap root, see minheap ordering).
type SpaceSaving[K cmp.Ordered] struct {
	k        int
	counters Table[K]
	heap     *minheap.Heap[K]
	n        uint64
}

func NewSpaceSaving[K cmp.Ordered](k int) (*SpaceSaving[K], error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: spacesaving requires k >= 1, got %d", ErrInvalidParameter, k)
	}
	return &SpaceSaving[K]{
		k:        k,
		counters: make(Table[K], k),
		heap:     minheap.NewHeap[K](k),
	}, nil
}

func (ss *SpaceSaving[K]) Update(key K) {
	ss.n++
	if count, ok := ss.counters[key]; ok {
		ss.counters[key] = count + 1
		idx, _ := ss.heap.Find(key)
		ss.heap.Fix(idx, count+1)
		return
	}
	if len(ss.counters) < ss.k {
		ss.counters[key] = 1
		ss.heap.Push(minheap.Node[K]{Key: key, Count: 1})
		return
	}
	// Evict the minimum counter and donate its count to the newcomer.
	evicted := ss.heap.ReplaceMin(minheap.Node[K]{Key: key, Count: ss.heap.Min() + 1})
	delete(ss.counters, evicted.Key)
	ss.counters[key] = evicted.Count + 1
}

func (ss *SpaceSaving[K]) Candidates() map[K]uint64 {
	return ss.counters.Snapshot()
}

func (ss *SpaceSaving[K]) TopK(limit int) []Entry[K] {
	return Rank(ss.counters, limit)
}

func (ss *SpaceSaving[K]) Count(key K) (uint64, bool) {
	count, ok := ss.counters[key]
	return count, ok
}

func (ss *SpaceSaving[K]) Len() int {
	return len(ss.counters)
}

func (ss *SpaceSaving[K]) Total() uint64 {
	return ss.n
}
