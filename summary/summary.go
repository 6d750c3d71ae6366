// Package summary implements single-pass, bounded-memory frequency
// estimators for finding heavy hitters in an item stream: Misra-Gries,
// Lossy Counting, SpaceSaving and HeavyKeeper.
//
// Each estimator consumes a stream one item at a time, keeps memory
// independent of the stream length, and exposes an approximate frequency
// table whose error relative to the true occurrence counts is bounded by
// the capacity parameter k.
package summary

import (
	"cmp"
	"errors"
)

// ErrInvalidParameter reports a construction parameter outside the
// algorithm's valid range.
var ErrInvalidParameter = errors.New("summary: invalid parameter")

// Entry is a ranked item together with its estimated count.
type Entry[K cmp.Ordered] struct {
	Key   K
	Count uint64
}

// Estimator maintains an approximate frequency table over a stream.
//
// Implementations are deterministic, single-threaded and never fail after
// construction; any key is acceptable. They are not safe for concurrent
// use — wrap one in a hotstream.Tracker to serialize producers.
type Estimator[K cmp.Ordered] interface {
	// Update consumes one stream item.
	Update(key K)
	// Candidates returns an independent snapshot of the current table.
	Candidates() map[K]uint64
	// TopK returns up to limit entries ranked by count descending, key
	// ascending on equal counts. limit <= 0 returns the whole table.
	TopK(limit int) []Entry[K]
	// Count reports the maintained count for key, if key is retained.
	Count(key K) (uint64, bool)
	// Len is the current number of counters.
	Len() int
	// Total is the number of items consumed so far.
	Total() uint64
}
