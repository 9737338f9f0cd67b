// Package vectorspace implements the N-dimensional space in which
// profiles and documents are compared.
package vectorspace

import (
	"fmt"
	"math"

	"github.com/fdiazgon/minimal-ir/internal/vocabulary"
)

// Space is a vector space whose axes are a vocabulary's canonical terms,
// in the vocabulary's fixed order.
type Space struct {
	axes []string
}

// New builds a Space over the given vocabulary's axes.
func New(vocab *vocabulary.Vocabulary) *Space {
	return &Space{axes: vocab.Terms()}
}

// Dimension returns the number of axes.
func (s *Space) Dimension() int { return len(s.axes) }

// Normalize projects a sparse point onto the space's axes and scales the
// resulting vector to unit length. Axes missing from the point read as
// zero. A point with zero modulus comes back as the zero vector rather
// than dividing by zero.
func (s *Space) Normalize(point map[string]float64) []float64 {
	head := make([]float64, len(s.axes))
	var sum float64
	for i, axis := range s.axes {
		head[i] = point[axis]
		sum += head[i] * head[i]
	}
	mod := math.Sqrt(sum)
	if mod == 0 {
		return head
	}
	for i := range head {
		head[i] /= mod
	}
	return head
}

// NormalizeCounts is Normalize for integer term counts.
func (s *Space) NormalizeCounts(counts map[string]int) []float64 {
	point := make(map[string]float64, len(counts))
	for term, count := range counts {
		point[term] = float64(count)
	}
	return s.Normalize(point)
}

// Cos returns the cosine of the angle between two vectors in this space.
// If either vector has zero modulus the similarity is exactly 0. Both
// vectors must carry one coordinate per axis; anything else means the
// vocabulary was not held fixed across vector construction, which is a
// programmer error and panics.
func (s *Space) Cos(a, b []float64) float64 {
	if len(a) != len(s.axes) || len(b) != len(s.axes) {
		panic(fmt.Sprintf(
			"vectorspace: dimension mismatch (%d and %d against %d axes); build vectors with Normalize",
			len(a), len(b), len(s.axes),
		))
	}
	var dot, sumA, sumB float64
	for i := range a {
		dot += a[i] * b[i]
		sumA += a[i] * a[i]
		sumB += b[i] * b[i]
	}
	mod := math.Sqrt(sumA) * math.Sqrt(sumB)
	if mod == 0 {
		return 0
	}
	return dot / mod
}
