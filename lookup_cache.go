package vkv

import lru "github.com/hashicorp/golang-lru"

// LookupCache memoizes the results of historical lookups. Only sealed
// versions are ever cached, since their lookups can never change.
// Unlike a content-addressed cache, entries are keyed by (key,
// version) within one map, so a LookupCache must not be shared across
// maps.
type LookupCache interface {
	// Add records the resolution of a historical lookup.
	Add(key, value interface{})
	// Get retrieves a previously-resolved lookup, if cached.
	Get(key interface{}) (value interface{}, ok bool)
}

// NewLookupCache creates a new LRU-based lookup cache holding the
// given number of entries.
func NewLookupCache(size int) LookupCache {
	cache, err := lru.NewARC(size)
	if err != nil {
		panic(err)
	}
	return cache
}
