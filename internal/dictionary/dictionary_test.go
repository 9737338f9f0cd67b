package dictionary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromClusters(t *testing.T) {
	d := FromClusters([][]string{
		{"movies", "classics", "reviews"},
		{"politics", "media", "voters"},
	})

	// Every stemmed entry maps to the cluster's first stemmed entry,
	// the canonical term included.
	require.Equal(t, Dictionary{
		"movi":    "movi",
		"classic": "movi",
		"review":  "movi",
		"politic": "politic",
		"media":   "politic",
		"voter":   "politic",
	}, d)
}

func TestFromClustersLastClusterWins(t *testing.T) {
	d := FromClusters([][]string{
		{"movies", "drama"},
		{"books", "drama"},
	})
	term, ok := d.Lookup("drama")
	require.True(t, ok)
	require.Equal(t, "book", term)
}

func TestFromClustersSkipsEmpty(t *testing.T) {
	d := FromClusters([][]string{{}, {"soccer", "league"}})
	require.Len(t, d, 2)
}

func TestLookupMissIsNotAnError(t *testing.T) {
	d := FromClusters([][]string{{"soccer", "league"}})
	_, ok := d.Lookup("quantum")
	require.False(t, ok)
}

func TestTerms(t *testing.T) {
	d := FromClusters([][]string{
		{"soccer", "league", "victory"},
		{"movies", "classics"},
	})
	require.Equal(t, []string{"movi", "soccer"}, d.Terms())
}
