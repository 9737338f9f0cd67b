package stemming

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStem(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"caresses", "caress"}, // sses -> ss
		{"ponies", "poni"},     // ies -> i
		{"caress", "caress"},   // ss is kept
		{"cats", "cat"},        // s is stripped
		{"deep", "deep"},       // no rule applies
		{"movies", "movi"},
		{"politics", "politic"},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Stem(tt.word), "Stem(%q)", tt.word)
	}
}

func TestStemAppliesOnlyFirstMatchingRule(t *testing.T) {
	// "sses" words must not fall through to the "s" rule.
	require.Equal(t, "caress", Stem("caresses"))
	// "ss" words must not lose a trailing "s".
	require.Equal(t, "press", Stem("press"))
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("The output should-contain, six words?")
	require.Equal(t, []string{"the", "output", "should", "contain", "six", "word"}, tokens)
}

func TestTokenizeDropsEmptyFragments(t *testing.T) {
	require.Empty(t, Tokenize("123 -- ?!"))
	require.Empty(t, Tokenize(""))
}

func BenchmarkTokenize(b *testing.B) {
	text := `Information retrieval systems project documents and queries into
	a shared term space and rank them by directional closeness. Term counts
	are folded through a synonym dictionary before vectorization.`
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		_ = Tokenize(text)
	}
}
