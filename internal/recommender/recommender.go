// Package recommender ranks every corpus document against every profile's
// interests in a shared vector space and records the scores that clear the
// configured threshold.
package recommender

import (
	"github.com/rs/zerolog"

	"github.com/fdiazgon/minimal-ir/internal/dictionary"
	"github.com/fdiazgon/minimal-ir/internal/domain"
	"github.com/fdiazgon/minimal-ir/internal/frequency"
	"github.com/fdiazgon/minimal-ir/internal/stemming"
	"github.com/fdiazgon/minimal-ir/internal/vectorspace"
	"github.com/fdiazgon/minimal-ir/internal/vocabulary"
)

// Mode selects how a (profile, document) pair is scored.
type Mode string

const (
	// ModeCosine scores by cosine similarity alone.
	ModeCosine Mode = "cosine"
	// ModeCoverage weights the cosine by the fraction of the document's
	// tokens that match the profile's interests, amplified by the
	// configured multiplier.
	ModeCoverage Mode = "coverage"
)

// Default tuning constants.
const (
	DefaultThreshold  = 0.1
	DefaultMultiplier = 5.0
)

// Config tunes a scoring pass. The threshold comparison is strict: a score
// exactly equal to it is not recorded.
type Config struct {
	Mode       Mode
	Threshold  float64
	Multiplier float64
}

// FrequencyTable maps a document id to its per-term counts over the
// vocabulary. Exposed for diagnostic display.
type FrequencyTable map[string]map[string]int

// Scorer runs the recommendation pass. The vocabulary and dictionary are
// fixed at construction; a Scorer can be reused across runs and produces
// identical scores for identical inputs.
type Scorer struct {
	vocab  *vocabulary.Vocabulary
	dict   dictionary.Dictionary
	space  *vectorspace.Space
	cfg    Config
	logger zerolog.Logger
}

// New creates a Scorer over the given vocabulary and dictionary.
func New(vocab *vocabulary.Vocabulary, dict dictionary.Dictionary, cfg Config, logger zerolog.Logger) *Scorer {
	if cfg.Mode == "" {
		cfg.Mode = ModeCoverage
	}
	if cfg.Multiplier == 0 {
		cfg.Multiplier = DefaultMultiplier
	}
	return &Scorer{
		vocab:  vocab,
		dict:   dict,
		space:  vectorspace.New(vocab),
		cfg:    cfg,
		logger: logger.With().Str("component", "recommender").Logger(),
	}
}

// Run scores every (profile, document) pair and records the qualifying
// scores on each profile. All document vectors are built against the same
// vocabulary snapshot before any scoring begins. The per-document term
// frequency table is returned for diagnostics.
func (s *Scorer) Run(profiles []*domain.Profile, corpus []domain.Document) FrequencyTable {
	table := make(FrequencyTable, len(corpus))
	lengths := make(map[string]int, len(corpus))
	vectors := make(map[string][]float64, len(corpus))
	for _, doc := range corpus {
		counts, length := frequency.Count(doc.Content, s.vocab, s.dict)
		table[doc.ID] = counts
		lengths[doc.ID] = length
		vectors[doc.ID] = s.space.NormalizeCounts(counts)
	}

	for _, profile := range profiles {
		query := s.space.Normalize(interestPoint(profile))
		recorded := 0
		for _, doc := range corpus {
			score := s.space.Cos(query, vectors[doc.ID])
			if s.cfg.Mode == ModeCoverage {
				score *= s.coverageRatio(profile, table[doc.ID], lengths[doc.ID]) * s.cfg.Multiplier
			}
			if score > s.cfg.Threshold {
				profile.Record(doc.ID, score)
				recorded++
			}
		}
		s.logger.Debug().
			Str("profile", profile.Name).
			Int("documents", len(corpus)).
			Int("recorded", recorded).
			Msg("profile scored")
	}
	return table
}

// interestPoint maps each stemmed interest to weight 1, the profile's
// position in the vector space.
func interestPoint(p *domain.Profile) map[string]float64 {
	point := make(map[string]float64, len(p.Interests))
	for _, interest := range p.Interests {
		point[stemming.Stem(interest)] = 1
	}
	return point
}

// coverageRatio is the fraction of the document's tokens that matched the
// profile's interests. The denominator is the total token count, including
// tokens outside the dictionary and vocabulary. A zero-length document has
// ratio 0.
func (s *Scorer) coverageRatio(p *domain.Profile, counts map[string]int, length int) float64 {
	if length == 0 {
		return 0
	}
	relevant := 0
	for _, interest := range p.Interests {
		relevant += counts[stemming.Stem(interest)]
	}
	return float64(relevant) / float64(length)
}
