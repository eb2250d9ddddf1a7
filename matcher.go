package lcp

import (
	"strconv"
	"strings"
)

// Matcher memoizes prefix results for workloads that compare the same pairs
// repeatedly, such as diff hunk alignment or autocomplete candidate sets.
// The package-level functions remain the zero-allocation path; a Matcher
// trades a cache lookup (and an owned copy of the result on miss) for
// skipping the scan on repeats.
//
// A Matcher is not safe for concurrent use unless its Cache is.
type Matcher struct {
	cache Cache
}

// New creates a Matcher. With no options it uses an unbounded MapCache.
func New(opts ...Option) *Matcher {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Matcher{cache: o.cacheProvider()}
}

// Common is a memoized Common. Cached results are owned copies rather than
// views into the original inputs, so they do not pin caller storage.
func (m *Matcher) Common(a, b string) string {
	key := pairKey(a, b)
	if v, ok := m.cache.Get(key); ok {
		return v
	}
	v := strings.Clone(Common(a, b))
	m.cache.Add(key, v)
	return v
}

// CommonAll folds the memoized Common over items in order, with the same
// absent/present contract as the package-level CommonAll.
func (m *Matcher) CommonAll(items []string) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	acc := items[0]
	for _, s := range items[1:] {
		acc = m.Common(acc, s)
		if acc == "" {
			break
		}
	}
	return acc, true
}

// Reset drops every memoized result.
func (m *Matcher) Reset() {
	m.cache.Clear()
}

// pairKey is unambiguous for any pair contents: the first operand's length
// prefixes the concatenation, so ("ab","c") and ("a","bc") never collide.
func pairKey(a, b string) string {
	return strconv.Itoa(len(a)) + ":" + a + b
}
