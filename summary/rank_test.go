package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankOrdersByCountDescending(t *testing.T) {
	got := Rank(map[string]uint64{"a": 3, "b": 5, "c": 1}, 0)
	assert.Equal(t, []Entry[string]{{"b", 5}, {"a", 3}, {"c", 1}}, got)
}

func TestRankBreaksTiesByKeyAscending(t *testing.T) {
	got := Rank(map[string]uint64{"z": 2, "a": 2, "m": 2, "b": 9}, 0)
	assert.Equal(t, []Entry[string]{{"b", 9}, {"a", 2}, {"m", 2}, {"z", 2}}, got)
}

func TestRankLimit(t *testing.T) {
	table := map[string]uint64{"a": 1, "b": 2, "c": 3}

	assert.Len(t, Rank(table, 2), 2)
	assert.Equal(t, []Entry[string]{{"c", 3}, {"b", 2}}, Rank(table, 2))
	// Zero, negative, and oversized limits return the whole table.
	assert.Len(t, Rank(table, 0), 3)
	assert.Len(t, Rank(table, -1), 3)
	assert.Len(t, Rank(table, 10), 3)
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(map[string]uint64{}, 0))
	assert.Empty(t, Rank(map[string]uint64{}, 5))
}

func TestRankDoesNotMutateInput(t *testing.T) {
	table := map[string]uint64{"a": 1, "b": 2}
	got := Rank(table, 0)
	got[0].Count = 99

	assert.Equal(t, map[string]uint64{"a": 1, "b": 2}, table)
}

func TestRankIntKeys(t *testing.T) {
	got := Rank(map[int]uint64{7: 4, 3: 4, 9: 1}, 0)
	assert.Equal(t, []Entry[int]{{3, 4}, {7, 4}, {9, 1}}, got)
}

func TestRankDeterministic(t *testing.T) {
	table := map[string]uint64{"a": 2, "b": 2, "c": 2, "d": 1, "e": 5}
	first := Rank(table, 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Rank(table, 0))
	}
}
