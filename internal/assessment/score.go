// Package assessment implements the scoring and reporting core: point
// accumulation over ranked groups, finalization, profile classification,
// motivator selection, narrative lookup and retake policy. Everything here
// is pure; persistence and transport live in the service layer.
package assessment

import (
	"math"

	"github.com/hlifeacademy/dna-backend/internal/catalog"
)

// Point tables by rank position (position 0 = most identified with).
// Front-loaded on purpose: consistent top-ranking of one factor across the
// ten groups separates it sharply from indifferent ranking.
var (
	BehavioralPoints = []float64{9.6, 6.4, 3, 1}
	ValuesPoints     = []float64{10, 8, 6, 3.8, 2.2, 1}
)

// ScoreSet maps factor letters to accumulated points. Fractional during a
// sitting, integral after Finalize.
type ScoreSet map[catalog.Factor]float64

// NewScoreSet returns an all-zero accumulator over the given factors.
func NewScoreSet(factors []catalog.Factor) ScoreSet {
	s := make(ScoreSet, len(factors))
	for _, f := range factors {
		s[f] = 0
	}
	return s
}

// Accumulate folds one ranked group into the accumulator: position i of the
// ranking earns points[i] for its factor. The input set is not mutated; the
// updated set is returned, so a sitting is a pure fold over its rankings.
func Accumulate(scores ScoreSet, ranking []catalog.Factor, points []float64) ScoreSet {
	out := make(ScoreSet, len(scores))
	for f, v := range scores {
		out[f] = v
	}
	for i, f := range ranking {
		if i >= len(points) {
			break
		}
		out[f] += points[i]
	}
	return out
}

// Finalize rounds each factor independently, half away from zero. There is
// no cross-factor normalization: the rounded values are intensity scores,
// not shares of a fixed total. Idempotent.
func Finalize(scores ScoreSet) map[catalog.Factor]int {
	out := make(map[catalog.Factor]int, len(scores))
	for f, v := range scores {
		out[f] = int(math.Round(v))
	}
	return out
}
