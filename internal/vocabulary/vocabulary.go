// Package vocabulary defines the fixed set of canonical terms a ranking
// run is performed against.
package vocabulary

import "sort"

// Vocabulary is an ordered set of canonical terms. The order is fixed at
// construction and defines the axes of the vector space, so every vector
// built during one run lines up coordinate by coordinate.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// New builds a Vocabulary from the given terms. Duplicates are dropped and
// the remainder sorted lexicographically so the axis order is stable
// across runs.
func New(terms []string) *Vocabulary {
	index := make(map[string]int, len(terms))
	uniq := make([]string, 0, len(terms))
	for _, term := range terms {
		if _, ok := index[term]; ok {
			continue
		}
		index[term] = 0
		uniq = append(uniq, term)
	}
	sort.Strings(uniq)
	for i, term := range uniq {
		index[term] = i
	}
	return &Vocabulary{terms: uniq, index: index}
}

// Contains reports whether term is one of the vocabulary's axes.
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.index[term]
	return ok
}

// Terms returns the vocabulary's terms in axis order. The returned slice
// must not be modified.
func (v *Vocabulary) Terms() []string { return v.terms }

// Len returns the number of terms, i.e. the dimensionality of the space.
func (v *Vocabulary) Len() int { return len(v.terms) }
