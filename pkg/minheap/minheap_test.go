package minheap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddBelowCapacity(t *testing.T) {
	h := NewHeap[string](5)
	for _, n := range []Node[string]{{"a", 3}, {"b", 1}, {"c", 2}} {
		_, expelled := h.Add(n)
		assert.False(t, expelled)
	}
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, uint64(1), h.Min())
}

func TestAddExpelsMin(t *testing.T) {
	h := NewHeap[string](2)
	h.Add(Node[string]{"a", 1})
	h.Add(Node[string]{"b", 2})

	expelled, ok := h.Add(Node[string]{"c", 3})
	assert.True(t, ok)
	assert.Equal(t, Node[string]{"a", 1}, expelled)

	// Not greater than the current minimum, so it does not enter.
	_, ok = h.Add(Node[string]{"d", 2})
	assert.False(t, ok)
	assert.Equal(t, 2, h.Len())
}

func TestReplaceMin(t *testing.T) {
	h := NewHeap[string](3)
	h.Push(Node[string]{"a", 5})
	h.Push(Node[string]{"b", 1})
	h.Push(Node[string]{"c", 3})

	old := h.ReplaceMin(Node[string]{"d", 2})
	assert.Equal(t, Node[string]{"b", 1}, old)
	assert.Equal(t, uint64(2), h.Min())
	assert.Equal(t, 3, h.Len())
}

func TestFix(t *testing.T) {
	h := NewHeap[string](3)
	h.Push(Node[string]{"a", 1})
	h.Push(Node[string]{"b", 4})

	idx, ok := h.Find("a")
	assert.True(t, ok)
	h.Fix(idx, 10)
	assert.Equal(t, uint64(4), h.Min())
}

func TestFindMissing(t *testing.T) {
	h := NewHeap[string](3)
	h.Push(Node[string]{"a", 1})
	_, ok := h.Find("z")
	assert.False(t, ok)
}

func TestMinEmpty(t *testing.T) {
	h := NewHeap[string](3)
	assert.Equal(t, uint64(0), h.Min())
}

func TestSortedOrder(t *testing.T) {
	h := NewHeap[string](4)
	h.Push(Node[string]{"b", 2})
	h.Push(Node[string]{"a", 2})
	h.Push(Node[string]{"c", 1})
	h.Push(Node[string]{"d", 7})

	sorted := h.Sorted()
	assert.Equal(t, Nodes[string]{{"d", 7}, {"a", 2}, {"b", 2}, {"c", 1}}, sorted)
	// The heap itself is untouched.
	assert.Equal(t, 4, h.Len())
}

func TestEqualCountsEvictGreatestKey(t *testing.T) {
	h := NewHeap[string](3)
	h.Push(Node[string]{"a", 1})
	h.Push(Node[string]{"b", 1})
	h.Push(Node[string]{"c", 1})

	old := h.ReplaceMin(Node[string]{"x", 2})
	assert.Equal(t, "c", old.Key)
}
