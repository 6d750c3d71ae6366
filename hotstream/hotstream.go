// Package hotstream serializes stream ingestion into a summary.Estimator.
// The estimators themselves are single-threaded; a Tracker is the
// single-writer front multiple producers can safely share. It can also
// keep a bounded value cache for items the estimator currently retains.
package hotstream

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/streamkit/heavyhitter/summary"
)

// Option configures a Tracker.
type Option struct {
	// CacheSize bounds the value cache. 0 disables caching.
	CacheSize int
}

// Tracker guards an estimator with a mutex so that Observe calls from
// multiple goroutines reach it one at a time, in lock-acquisition order.
type Tracker struct {
	mu    sync.Mutex
	est   summary.Estimator[string]
	cache *lru.Cache
}

func New(est summary.Estimator[string], option Option) *Tracker {
	t := &Tracker{est: est}
	if option.CacheSize > 0 {
		t.cache = lru.New(option.CacheSize)
	}
	return t
}

// Observe feeds one item from the stream.
func (t *Tracker) Observe(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.est.Update(key)
}

// ObserveWithValue feeds one item and caches its value if the estimator
// retained the key.
func (t *Tracker) ObserveWithValue(key string, value interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.est.Update(key)
	if t.cache == nil {
		return
	}
	if _, ok := t.est.Count(key); ok {
		t.cache.Add(key, value)
	}
}

// Get returns the cached value for key. A key the estimator has since
// evicted is dropped from the cache and reported as a miss.
func (t *Tracker) Get(key string) (interface{}, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cache == nil {
		return nil, false
	}
	if _, ok := t.est.Count(key); !ok {
		t.cache.Remove(key)
		return nil, false
	}
	return t.cache.Get(key)
}

// Hot returns the estimator's current ranking.
func (t *Tracker) Hot(limit int) []summary.Entry[string] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.est.TopK(limit)
}

// Candidates snapshots the estimator's table.
func (t *Tracker) Candidates() map[string]uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.est.Candidates()
}

// Total is the number of items observed.
func (t *Tracker) Total() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.est.Total()
}
