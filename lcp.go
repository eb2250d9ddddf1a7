// Package lcp finds the longest common prefix among strings.
//
// The two entry points are Common (pairwise) and CommonAll (across a
// collection). Both return views into their inputs and never allocate.
package lcp

import (
	"unicode/utf8"
	"unsafe"
)

// Common returns the longest common prefix of a and b.
//
// The result is a substring of a (or of b when b is strictly shorter), so it
// shares storage with its source; no copy is made. It is "" when the inputs
// share nothing. When a and b are content-equal with the same length, a is
// returned.
//
// Prefix length is measured in whole characters: if the inputs diverge inside
// a multi-byte sequence, the prefix ends at the previous rune boundary.
func Common(a, b string) string {
	// Identity, not content equality: same backing storage skips the scan.
	if sameString(a, b) {
		return a
	}

	limit := min(len(a), len(b))
	i := 0
	for i < limit && a[i] == b[i] {
		i++
	}

	// One input exhausted without divergence: it is a prefix of the other.
	if i == len(a) {
		return a
	}
	if i == len(b) {
		return b
	}

	// Never cut a multi-byte character in half.
	for i > 0 && !utf8.RuneStart(a[i]) {
		i--
	}
	return a[:i]
}

// CommonAll returns the longest prefix shared by every element of items.
//
// ok is false only when items is empty; a present result can still be ""
// when the elements share nothing. The returned view aliases the first
// element's storage.
func CommonAll(items []string) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	acc := items[0]
	for _, s := range items[1:] {
		acc = Common(acc, s)
		if acc == "" {
			// Folding "" with anything stays "".
			break
		}
	}
	return acc, true
}

func sameString(a, b string) bool {
	return len(a) == len(b) && unsafe.StringData(a) == unsafe.StringData(b)
}
