// Package domain holds the entities shared across the ranking pipeline.
package domain

import (
	"sort"

	"github.com/samber/lo"
)

// Document is a single corpus entry. The ID is the filename without its
// extension and stays stable for the lifetime of a run.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Recommendation pairs a document id with the score it earned.
type Recommendation struct {
	DocumentID string
	Score      float64
}

// Profile is a user's identity and interests together with the
// recommendations accumulated during a ranking run. Interests are fixed at
// construction; only the score map changes, and only through Record.
type Profile struct {
	Name      string
	Interests []string

	recommendations map[string]float64
}

// NewProfile creates a profile with an empty score map. Duplicate
// interests are dropped, first occurrence wins.
func NewProfile(name string, interests []string) *Profile {
	return &Profile{
		Name:            name,
		Interests:       lo.Uniq(interests),
		recommendations: make(map[string]float64),
	}
}

// Record stores the score a document earned for this profile. Calling it
// twice for the same document keeps the latest score.
func (p *Profile) Record(documentID string, score float64) {
	p.recommendations[documentID] = score
}

// Reset discards all recorded recommendations so the profile can be
// scored again from scratch.
func (p *Profile) Reset() {
	p.recommendations = make(map[string]float64)
}

// Recommendations returns the recorded scores sorted by descending score,
// ties broken by ascending document id so output is reproducible.
func (p *Profile) Recommendations() []Recommendation {
	out := make([]Recommendation, 0, len(p.recommendations))
	for id, score := range p.recommendations {
		out = append(out, Recommendation{DocumentID: id, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].DocumentID < out[j].DocumentID
	})
	return out
}
