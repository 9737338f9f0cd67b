// Package stemming normalizes raw text into canonical word stems. It
// lower-cases input, splits on non-alphabetic boundaries, and reduces each
// fragment with a small suffix-based stemmer.
package stemming

import "strings"

// Stem reduces a word using precedence-ordered suffix rules:
//
//	sses -> ss
//	ies  -> i
//	ss   -> ss
//	s    ->
//
// Only the first matching rule applies, so "caresses" loses its "es"
// without also being caught by the plural "s" rule. Words matching no rule
// are returned unchanged.
func Stem(word string) string {
	switch {
	case strings.HasSuffix(word, "sses"):
		return strings.TrimSuffix(word, "sses") + "ss"
	case strings.HasSuffix(word, "ies"):
		return strings.TrimSuffix(word, "ies") + "i"
	case strings.HasSuffix(word, "ss"):
		return word
	case strings.HasSuffix(word, "s"):
		return strings.TrimSuffix(word, "s")
	}
	return word
}

// Tokenize splits text on any non-alphabetic character, lower-cases the
// fragments, drops empty ones, and stems each fragment in order.
func Tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		tokens = append(tokens, Stem(word))
	}
	return tokens
}
