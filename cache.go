package lcp

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheProvider can be used as an option to cache prefix results inside a
// Matcher.
type CacheProvider func() Cache

// Cache implements basic Get, Add and Clear methods over computed prefixes.
type Cache interface {
	Get(key string) (string, bool)
	Add(key, value string)
	Clear()
}

// NoCache disables result caching.
func NoCache() Cache {
	return noCache{}
}

type noCache struct{}

func (noCache) Get(_ string) (string, bool) {
	return "", false
}
func (noCache) Add(_, _ string) {}
func (noCache) Clear()          {}

// MapCache uses a basic Go map with no eviction. Suitable when the set of
// compared pairs is small and bounded.
func MapCache(initCapacity int) CacheProvider {
	return func() Cache {
		return make(mapCache, initCapacity)
	}
}

type mapCache map[string]string

func (m mapCache) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapCache) Add(key, value string) {
	m[key] = value
}

func (m mapCache) Clear() {
	clear(m)
}

// LRUCache keeps at most size results, evicting the least recently used.
func LRUCache(size int) CacheProvider {
	return func() Cache {
		c, err := lru.New[string, string](size)
		if err != nil {
			panic("lcp: LRUCache size must be positive")
		}
		return lruCache{c}
	}
}

type lruCache struct {
	c *lru.Cache[string, string]
}

func (l lruCache) Get(key string) (string, bool) {
	return l.c.Get(key)
}

func (l lruCache) Add(key, value string) {
	l.c.Add(key, value)
}

func (l lruCache) Clear() {
	l.c.Purge()
}
