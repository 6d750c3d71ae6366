package minheap

import (
	"cmp"
	"container/heap"
	"sort"
)

// Heap is a capacity-bounded min-heap of counters. The root holds the
// minimum count; among equal counts the node with the greatest key sits
// closest to the root, so eviction order is deterministic.
type Heap[K cmp.Ordered] struct {
	Nodes Nodes[K]
	K     int
}

func NewHeap[K cmp.Ordered](k int) *Heap[K] {
	h := Nodes[K]{}
	heap.Init(&h)
	return &Heap[K]{Nodes: h, K: k}
}

// Add inserts val if the heap is below capacity, otherwise replaces the
// root when val carries a greater count. It returns the expelled node, if any.
func (h *Heap[K]) Add(val Node[K]) (Node[K], bool) {
	if h.K > len(h.Nodes) {
		heap.Push(&h.Nodes, val)
		return Node[K]{}, false
	}
	if val.Count > h.Nodes[0].Count {
		expelled := heap.Pop(&h.Nodes).(Node[K])
		heap.Push(&h.Nodes, val)
		return expelled, true
	}
	return Node[K]{}, false
}

// Push inserts val unconditionally. The caller enforces capacity.
func (h *Heap[K]) Push(val Node[K]) {
	heap.Push(&h.Nodes, val)
}

// ReplaceMin swaps the root for val and returns the old root.
func (h *Heap[K]) ReplaceMin(val Node[K]) Node[K] {
	old := h.Nodes[0]
	h.Nodes[0] = val
	heap.Fix(&h.Nodes, 0)
	return old
}

func (h *Heap[K]) Pop() Node[K] {
	return heap.Pop(&h.Nodes).(Node[K])
}

func (h *Heap[K]) Fix(idx int, count uint64) {
	h.Nodes[idx].Count = count
	heap.Fix(&h.Nodes, idx)
}

func (h *Heap[K]) Min() uint64 {
	if len(h.Nodes) == 0 {
		return 0
	}
	return h.Nodes[0].Count
}

func (h *Heap[K]) Find(key K) (int, bool) {
	for i := range h.Nodes {
		if h.Nodes[i].Key == key {
			return i, true
		}
	}
	return 0, false
}

func (h *Heap[K]) Len() int {
	return len(h.Nodes)
}

// Sorted returns a copy of the nodes ordered by count descending, key
// ascending on equal counts.
func (h *Heap[K]) Sorted() Nodes[K] {
	nodes := append(Nodes[K](nil), h.Nodes...)
	sort.Sort(sort.Reverse(nodes))
	return nodes
}

type Nodes[K cmp.Ordered] []Node[K]

type Node[K cmp.Ordered] struct {
	Key   K
	Count uint64
}

func (n Nodes[K]) Len() int {
	return len(n)
}

func (n Nodes[K]) Less(i, j int) bool {
	return (n[i].Count < n[j].Count) || (n[i].Count == n[j].Count && n[i].Key > n[j].Key)
}

func (n Nodes[K]) Swap(i, j int) {
	n[i], n[j] = n[j], n[i]
}

func (n *Nodes[K]) Push(val interface{}) {
	*n = append(*n, val.(Node[K]))
}

func (n *Nodes[K]) Pop() interface{} {
	var val Node[K]
	val, *n = (*n)[len(*n)-1], (*n)[:len(*n)-1]
	return val
}
