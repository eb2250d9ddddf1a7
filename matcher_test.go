package lcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lcp "github.com/smendon/go-lcp"
)

func TestMatcherAgreesWithPureFunctions(t *testing.T) {
	providers := map[string][]lcp.Option{
		"default":  nil,
		"no cache": {lcp.WithCacheProvider(lcp.NoCache)},
		"map":      {lcp.WithCacheProvider(lcp.MapCache(4))},
		"lru":      {lcp.WithCacheProvider(lcp.LRUCache(2))},
	}
	pairs := [][2]string{
		{"HELLO WORLD", "HELLO world"},
		{"nothing in", "common"},
		{"hello", "help"},
		{"", "hello"},
		{"日本語", "日本誤"},
	}
	for name, opts := range providers {
		t.Run(name, func(t *testing.T) {
			m := lcp.New(opts...)
			for _, pair := range pairs {
				want := lcp.Common(pair[0], pair[1])
				// Twice: once computed, once served from cache.
				assert.Equal(t, want, m.Common(pair[0], pair[1]))
				assert.Equal(t, want, m.Common(pair[0], pair[1]))
			}
		})
	}
}

func TestMatcherKeyIsUnambiguous(t *testing.T) {
	// ("ab","abc") and ("aba","bc") concatenate identically; the
	// length-prefixed key must keep them apart.
	m := lcp.New()
	assert.Equal(t, "ab", m.Common("ab", "abc"))
	assert.Equal(t, "", m.Common("aba", "bc"))
	assert.Equal(t, "ab", m.Common("ab", "abc"))
}

func TestMatcherCommonAll(t *testing.T) {
	m := lcp.New(lcp.WithCacheProvider(lcp.LRUCache(8)))

	got, ok := m.CommonAll(nil)
	assert.False(t, ok)
	assert.Empty(t, got)

	got, ok = m.CommonAll([]string{""})
	require.True(t, ok)
	assert.Empty(t, got)

	got, ok = m.CommonAll([]string{"what's the", "whatever", "whatabout"})
	require.True(t, ok)
	assert.Equal(t, "what", got)

	// Repeat hits the memoized pairwise results.
	got, ok = m.CommonAll([]string{"what's the", "whatever", "whatabout"})
	require.True(t, ok)
	assert.Equal(t, "what", got)
}

func TestMatcherReset(t *testing.T) {
	m := lcp.New()
	require.Equal(t, "hel", m.Common("hello", "help"))
	m.Reset()
	assert.Equal(t, "hel", m.Common("hello", "help"))
}

func TestMatcherLRUEviction(t *testing.T) {
	m := lcp.New(lcp.WithCacheProvider(lcp.LRUCache(1)))
	assert.Equal(t, "hel", m.Common("hello", "help"))
	assert.Equal(t, "wor", m.Common("world", "worm"))
	// First entry was evicted; recomputation still agrees.
	assert.Equal(t, "hel", m.Common("hello", "help"))
}
