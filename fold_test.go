package lcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lcp "github.com/smendon/go-lcp"
)

func TestFolderZeroValueIsAbsent(t *testing.T) {
	var f lcp.Folder
	got, ok := f.Result()
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestFolderMatchesCommonAll(t *testing.T) {
	corpora := [][]string{
		{"what's the", "whatever", "whatabout"},
		{"there's no", "common prefix", "here"},
		{""},
		{"solo"},
		{"hello", "helvetica", "help", "hell"},
	}
	for _, items := range corpora {
		var f lcp.Folder
		for _, s := range items {
			f.Add(s)
		}

		want, wantOK := lcp.CommonAll(items)
		got, ok := f.Result()
		assert.Equal(t, wantOK, ok)
		assert.Equal(t, want, got)
	}
}

func TestFolderAddReportsShortCircuit(t *testing.T) {
	var f lcp.Folder
	assert.True(t, f.Add("hello"))
	assert.True(t, f.Add("help"))
	assert.False(t, f.Add("world"))
	// Later candidates cannot resurrect the prefix.
	assert.False(t, f.Add("hello"))

	got, ok := f.Result()
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestFolderFirstCandidateEmpty(t *testing.T) {
	var f lcp.Folder
	assert.False(t, f.Add(""))

	got, ok := f.Result()
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestFolderReset(t *testing.T) {
	var f lcp.Folder
	f.Add("hello")
	f.Add("help")
	f.Reset()

	_, ok := f.Result()
	require.False(t, ok)

	f.Add("solo")
	got, ok := f.Result()
	require.True(t, ok)
	assert.Equal(t, "solo", got)
}
