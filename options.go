package lcp

const defaultMapCacheCapacity = 16

var defaultOptions = options{
	cacheProvider: MapCache(defaultMapCacheCapacity),
}

type options struct {
	cacheProvider CacheProvider
}

type Option func(o *options)

// WithCacheProvider selects the cache backing a Matcher. The default is an
// unbounded MapCache; use LRUCache for long-lived matchers over unbounded
// input, or NoCache to memoize nothing.
func WithCacheProvider(cache CacheProvider) Option {
	return func(o *options) {
		o.cacheProvider = cache
	}
}
