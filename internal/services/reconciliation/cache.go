package reconciliation

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// FetchFunc loads a value from the backing store. found is false when the key
// does not exist; that is not an error.
type FetchFunc[V any] func(ctx context.Context, key string) (value V, found bool, err error)

type cacheEntry[V any] struct {
	value V
	found bool
}

// CacheStats counts lookups served from memory versus the store.
type CacheStats struct {
	Hits   int
	Misses int
	Size   int
}

// LookupCache memoizes point lookups, absences included, in a bounded LRU.
// It is owned by a single run and is not safe for concurrent use.
type LookupCache[V any] struct {
	name    string
	entries *lru.Cache[string, cacheEntry[V]]
	fetch   FetchFunc[V]
	hits    int
	misses  int
}

func NewLookupCache[V any](name string, size int, fetch FetchFunc[V]) (*LookupCache[V], error) {
	entries, err := lru.New[string, cacheEntry[V]](size)
	if err != nil {
		return nil, fmt.Errorf("create %s cache: %w", name, err)
	}
	return &LookupCache[V]{name: name, entries: entries, fetch: fetch}, nil
}

// Lookup returns the memoized result for key, fetching it on a miss.
// Fetch errors are returned and never cached.
func (c *LookupCache[V]) Lookup(ctx context.Context, key string) (V, bool, error) {
	if e, ok := c.entries.Get(key); ok {
		c.hits++
		return e.value, e.found, nil
	}
	c.misses++

	value, found, err := c.fetch(ctx, key)
	if err != nil {
		var zero V
		return zero, false, fmt.Errorf("%s lookup %q: %w", c.name, key, err)
	}
	c.entries.Add(key, cacheEntry[V]{value: value, found: found})
	return value, found, nil
}

// Clear drops every memoized entry. Counters are kept.
func (c *LookupCache[V]) Clear() {
	c.entries.Purge()
}

func (c *LookupCache[V]) Stats() CacheStats {
	return CacheStats{Hits: c.hits, Misses: c.misses, Size: c.entries.Len()}
}
