package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a bounded LRU cache for memoizing derived values.
//
// Keys are expected to embed the snapshot version they were computed
// against, so entries for superseded snapshots are never read again
// and age out of the LRU on their own.
type Cache struct {
	lru *lru.Cache[string, any]
}

// New creates a cache bounded to the given number of entries.
func New(size int) (*Cache, error) {
	underlying, err := lru.New[string, any](size)
	if err != nil {
		return nil, err
	}

	return &Cache{
		lru: underlying,
	}, nil
}

// Get returns the value stored under key, if any.
func (c *Cache) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

// Set stores value under key, evicting the least recently used
// entry if the cache is full.
func (c *Cache) Set(key string, value any) {
	c.lru.Add(key, value)
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}
