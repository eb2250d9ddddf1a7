package benchmark

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	iradix "github.com/hashicorp/go-immutable-radix/v2"
	lcp "github.com/smendon/go-lcp"
)

type Profile struct {
	// Name is a name of the profile.
	Name string
	// Shared is the length of the prefix every generated word starts with.
	Shared int
	// Tail is the number of random characters after the shared prefix.
	// The longer the tail, the earlier words diverge relative to their length.
	Tail int
	// Cardinality is the alphabet size for generated characters, up to 26.
	Cardinality int
	// Words is the corpus size.
	Words int
	Tests []string
	Seed  int64
}

func randomWord(rng *rand.Rand, shared string, cardinality, tail int) string {
	var sb strings.Builder
	sb.Grow(len(shared) + tail)
	sb.WriteString(shared)
	for i := 0; i < tail; i++ {
		sb.WriteByte(byte('a' + rng.Intn(cardinality)))
	}
	return sb.String()
}

func makeWords(rng *rand.Rand, profile Profile) []string {
	shared := randomWord(rng, "", profile.Cardinality, profile.Shared)
	words := make([]string, profile.Words)
	for i := range words {
		words[i] = randomWord(rng, shared, profile.Cardinality, profile.Tail)
	}
	return words
}

func runTest(b *testing.B, profile Profile, name string, fn func(b *testing.B, words []string)) {
	fullName := b.Name() + "/" + name
	shouldRun := len(profile.Tests) == 0 || slices.ContainsFunc(profile.Tests, func(suffix string) bool {
		return strings.HasSuffix(fullName, suffix)
	})
	if !shouldRun {
		return
	}
	rng := rand.New(rand.NewSource(profile.Seed))
	b.Run(name, func(b *testing.B) {
		b.ReportAllocs()
		words := makeWords(rng, profile)
		b.ResetTimer()
		fn(b, words)
	})
}

func Run(b *testing.B, profile Profile) {
	b.Run(profile.Name, func(b *testing.B) {
		runTest(b, profile, "Pairwise", func(b *testing.B, words []string) {
			for i := 0; i < b.N; i++ {
				lcp.Common(words[i%len(words)], words[(i+1)%len(words)])
			}
		})
		runTest(b, profile, "Collection/Fold", func(b *testing.B, words []string) {
			for i := 0; i < b.N; i++ {
				lcp.CommonAll(words)
			}
		})
		runTest(b, profile, "Collection/MinMax", func(b *testing.B, words []string) {
			for i := 0; i < b.N; i++ {
				minMaxPrefix(words)
			}
		})
		runTest(b, profile, "Collection/Radix", func(b *testing.B, words []string) {
			tree := makeTree(words)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				radixPrefix(tree)
			}
		})
	})
}

// minMaxPrefix derives the collection prefix from the lexicographic extremes:
// every word sorts between min and max, so their pairwise prefix is shared by
// the whole corpus.
func minMaxPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return lcp.Common(slices.Min(words), slices.Max(words))
}

func makeTree(words []string) *iradix.Tree[struct{}] {
	tree := iradix.New[struct{}]()
	txn := tree.Txn()
	for _, w := range words {
		txn.Insert([]byte(w), struct{}{})
	}
	return txn.Commit()
}

// radixPrefix reads the collection prefix off an immutable radix tree as the
// pairwise prefix of its minimum and maximum leaves.
func radixPrefix(tree *iradix.Tree[struct{}]) []byte {
	minKey, _, ok := tree.Root().Minimum()
	if !ok {
		return nil
	}
	maxKey, _, _ := tree.Root().Maximum()
	return lcp.CommonSeq(minKey, maxKey)
}
