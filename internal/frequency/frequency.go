// Package frequency builds per-document term-frequency statistics over a
// fixed vocabulary.
package frequency

import (
	"github.com/fdiazgon/minimal-ir/internal/dictionary"
	"github.com/fdiazgon/minimal-ir/internal/stemming"
	"github.com/fdiazgon/minimal-ir/internal/vocabulary"
)

// Count tokenizes a document and tallies how often each vocabulary term
// occurs after folding synonyms through the dictionary. The returned map
// holds exactly one entry per vocabulary term, zero-filled; terms outside
// the vocabulary never appear as keys. The second result is the document's
// total token count, which includes tokens that matched no term.
func Count(text string, vocab *vocabulary.Vocabulary, dict dictionary.Dictionary) (map[string]int, int) {
	counts := make(map[string]int, vocab.Len())
	for _, term := range vocab.Terms() {
		counts[term] = 0
	}
	tokens := stemming.Tokenize(text)
	for _, token := range tokens {
		term, ok := dict.Lookup(token)
		if !ok {
			continue
		}
		if vocab.Contains(term) {
			counts[term]++
		}
	}
	return counts, len(tokens)
}
