package summary

// HeavyKeeper is based on the paper
// HeavyKeeper: An Accurate Algorithm for Finding Top-k Elephant Flow
// (https://www.usenix.org/system/files/conference/atc18/atc18-gong.pdf)

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/twmb/murmur3"

	"github.com/streamkit/heavyhitter/pkg/minheap"
)

const lookupTableSize = 256

// HeavyKeeper is a probabilistic sketch-backed estimator over string keys.
// Unlike the map-backed estimators it can undercount: colliding items decay
// each other's bucket counts with probability decay^count. It keeps the k
// largest counters in a min-heap, which doubles as its frequency table.
type HeavyKeeper struct {
	k      int
	width  uint32
	depth  uint32
	decay  float64
	lookup []float64

	r       *rand.Rand
	buckets [][]hkBucket
	heap    *minheap.Heap[string]
	n       uint64
}

type hkBucket struct {
	fingerprint uint32
	count       uint64
}

func NewHeavyKeeper(k int, width, depth uint32, decay float64) (*HeavyKeeper, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: heavykeeper requires k >= 1, got %d", ErrInvalidParameter, k)
	}
	if width < 1 || depth < 1 {
		return nil, fmt.Errorf("%w: heavykeeper requires positive width and depth, got %dx%d", ErrInvalidParameter, width, depth)
	}
	if decay <= 0 || decay >= 1 {
		return nil, fmt.Errorf("%w: heavykeeper requires decay in (0, 1), got %v", ErrInvalidParameter, decay)
	}

	arrays := make([][]hkBucket, depth)
	for i := range arrays {
		arrays[i] = make([]hkBucket, width)
	}
	hk := &HeavyKeeper{
		k:       k,
		width:   width,
		depth:   depth,
		decay:   decay,
		lookup:  make([]float64, lookupTableSize),
		r:       rand.New(rand.NewSource(0)),
		buckets: arrays,
		heap:    minheap.NewHeap[string](k),
	}
	for i := 0; i < lookupTableSize; i++ {
		hk.lookup[i] = math.Pow(decay, float64(i))
	}
	return hk, nil
}

func (hk *HeavyKeeper) Update(key string) {
	hk.n++
	keyBytes := []byte(key)
	itemFingerprint := murmur3.Sum32(keyBytes)
	var maxCount uint64

	// compute d hashes
	for i, row := range hk.buckets {
		slot := murmur3.SeedSum32(uint32(i), keyBytes) % hk.width
		fingerprint := row[slot].fingerprint
		count := row[slot].count

		switch {
		case count == 0:
			row[slot].fingerprint = itemFingerprint
			row[slot].count = 1
			maxCount = max(maxCount, 1)

		case fingerprint == itemFingerprint:
			row[slot].count++
			maxCount = max(maxCount, row[slot].count)

		default:
			decay := hk.lookup[lookupTableSize-1]
			if count < lookupTableSize {
				decay = hk.lookup[count]
			}
			if hk.r.Float64() < decay {
				row[slot].count--
				if row[slot].count == 0 {
					row[slot].fingerprint = itemFingerprint
					row[slot].count = 1
					maxCount = max(maxCount, 1)
				}
			}
		}
	}

	if hk.heap.Len() == hk.k && maxCount < hk.heap.Min() {
		return
	}
	if idx, ok := hk.heap.Find(key); ok {
		hk.heap.Fix(idx, maxCount)
		return
	}
	hk.heap.Add(minheap.Node[string]{Key: key, Count: maxCount})
}

func (hk *HeavyKeeper) Candidates() map[string]uint64 {
	out := make(map[string]uint64, hk.heap.Len())
	for _, node := range hk.heap.Nodes {
		out[node.Key] = node.Count
	}
	return out
}

func (hk *HeavyKeeper) TopK(limit int) []Entry[string] {
	nodes := hk.heap.Sorted()
	if limit > 0 && limit < len(nodes) {
		nodes = nodes[:limit]
	}
	entries := make([]Entry[string], 0, len(nodes))
	for _, node := range nodes {
		entries = append(entries, Entry[string]{Key: node.Key, Count: node.Count})
	}
	return entries
}

func (hk *HeavyKeeper) Count(key string) (uint64, bool) {
	if idx, ok := hk.heap.Find(key); ok {
		return hk.heap.Nodes[idx].Count, true
	}
	return 0, false
}

func (hk *HeavyKeeper) Len() int {
	return hk.heap.Len()
}

func (hk *HeavyKeeper) Total() uint64 {
	return hk.n
}

// Fading halves every counter, aging out stale heavy hitters on
// long-running streams.
func (hk *HeavyKeeper) Fading() {
	for _, row := range hk.buckets {
		for i := range row {
			row[i].count = row[i].count >> 1
		}
	}
	for i := range hk.heap.Nodes {
		hk.heap.Nodes[i].Count = hk.heap.Nodes[i].Count >> 1
	}
	hk.n = hk.n >> 1
}
