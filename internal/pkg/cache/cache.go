package cache

import "sync"

// Region is a process-local key→value cache for one logical view of the
// store. Reads populate it lazily through GetOrLoad; writes clear it
// wholesale through InvalidateAll. There is no TTL: invalidation is
// write-driven only.
type Region[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewRegion creates an empty cache region
func NewRegion[K comparable, V any]() *Region[K, V] {
	return &Region[K, V]{
		entries: make(map[K]V),
	}
}

// GetOrLoad returns the cached value for key, or runs loader and caches
// its result on a miss. Loader errors are returned as-is and nothing is
// cached. Concurrent loads for the same key may race; values are
// deterministic from the store, so last write wins.
func (r *Region[K, V]) GetOrLoad(key K, loader func() (V, error)) (V, error) {
	r.mu.RLock()
	value, ok := r.entries[key]
	r.mu.RUnlock()
	if ok {
		return value, nil
	}

	value, err := loader()
	if err != nil {
		var zero V
		return zero, err
	}

	r.mu.Lock()
	r.entries[key] = value
	r.mu.Unlock()

	return value, nil
}

// Peek returns the cached value without loading on a miss
func (r *Region[K, V]) Peek(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.entries[key]
	return value, ok
}

// InvalidateAll drops every entry in the region. The map is swapped
// under the write lock, so a concurrent reader observes either the old
// contents or an empty region, never a partially cleared one.
func (r *Region[K, V]) InvalidateAll() {
	r.mu.Lock()
	r.entries = make(map[K]V)
	r.mu.Unlock()
}

// Len reports the number of cached entries
func (r *Region[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
