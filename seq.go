package lcp

import (
	"golang.org/x/exp/constraints"
)

// CommonSeq is the generic counterpart of Common for callers whose sequences
// are not strings: byte or rune slices, tokenized paths, numeric keys.
//
// Elements are compared whole, so a []byte caller gets byte-unit semantics;
// use Common (or a []rune slice) when character alignment matters. The result
// is a sub-slice of a, or of b when b is strictly shorter.
func CommonSeq[E constraints.Ordered](a, b []E) []E {
	if sameSlice(a, b) {
		return a
	}
	limit := min(len(a), len(b))
	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	if len(a) <= len(b) {
		return a
	}
	return b
}

// CommonSeqAll folds CommonSeq over items in order, with the same
// absent/present contract as CommonAll.
func CommonSeqAll[E constraints.Ordered](items [][]E) ([]E, bool) {
	if len(items) == 0 {
		return nil, false
	}
	acc := items[0]
	for _, s := range items[1:] {
		acc = CommonSeq(acc, s)
		if len(acc) == 0 {
			break
		}
	}
	return acc, true
}

func sameSlice[E constraints.Ordered](a, b []E) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}
