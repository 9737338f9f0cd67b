// Package dictionary folds stemmed tokens into canonical terms so that
// synonyms count as a single concept.
package dictionary

import (
	"sort"

	"github.com/fdiazgon/minimal-ir/internal/stemming"
)

// Dictionary maps a stemmed token to its canonical term. The mapping is
// many-to-one: every synonym of a cluster points at the same term.
type Dictionary map[string]string

// FromClusters builds a Dictionary from ordered synonym clusters. Every
// entry of a cluster is stemmed and mapped to the stem of the cluster's
// first entry, the canonical term included. When two clusters claim the
// same stemmed token, the later cluster wins.
func FromClusters(clusters [][]string) Dictionary {
	d := make(Dictionary)
	for _, cluster := range clusters {
		if len(cluster) == 0 {
			continue
		}
		canonical := stemming.Stem(cluster[0])
		for _, synonym := range cluster {
			d[stemming.Stem(synonym)] = canonical
		}
	}
	return d
}

// Lookup returns the canonical term for a stemmed token. A miss is not an
// error; the token simply belongs to no known concept.
func (d Dictionary) Lookup(token string) (string, bool) {
	term, ok := d[token]
	return term, ok
}

// Terms returns the sorted set of canonical terms this dictionary maps
// onto, for use as a dictionary-driven vocabulary.
func (d Dictionary) Terms() []string {
	seen := make(map[string]struct{}, len(d))
	terms := make([]string, 0, len(d))
	for _, term := range d {
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
