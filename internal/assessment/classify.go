package assessment

import (
	"sort"

	"github.com/hlifeacademy/dna-backend/internal/catalog"
)

// HighThreshold is the score at or above which a behavioral factor counts
// toward the profile code.
const HighThreshold = 51

// Classification is derived on demand from finalized DISC scores and never
// persisted.
type Classification struct {
	Code    string           `json:"code"`
	Factors []catalog.Factor `json:"factors"`
}

// Classify sorts the behavioral factors descending by score and selects all
// factors at or above HighThreshold. If none qualifies it falls back to the
// single highest factor, so Factors is never empty. Equal scores keep the
// canonical D, I, S, C order (stable sort), which makes codes deterministic.
func Classify(disc map[catalog.Factor]int) Classification {
	ordered := orderedFactors(disc, catalog.BehavioralFactors)

	var high []catalog.Factor
	for _, f := range ordered {
		if disc[f] >= HighThreshold {
			high = append(high, f)
		}
	}
	if len(high) == 0 {
		high = ordered[:1]
	}

	code := ""
	for _, f := range high {
		code += string(f)
	}
	return Classification{Code: code, Factors: high}
}

// Band is a display-only intensity label for a single factor score. It does
// not participate in profile-code derivation.
type Band string

const (
	BandExtremelyHigh Band = "Extremamente Alto"
	BandVeryHigh      Band = "Muito Alto"
	BandHigh          Band = "Alto"
	BandLow           Band = "Baixo"
	BandVeryLow       Band = "Muito Baixo"
	BandExtremelyLow  Band = "Extremamente Baixo"
)

func BandFor(score int) Band {
	switch {
	case score >= 88:
		return BandExtremelyHigh
	case score >= 70:
		return BandVeryHigh
	case score >= 51:
		return BandHigh
	case score >= 33:
		return BandLow
	case score >= 16:
		return BandVeryLow
	default:
		return BandExtremelyLow
	}
}

// SelectMotivator returns the highest-scoring values factor. Ties break on
// the fixed P, E, R, S, B, T priority order rather than map iteration order.
func SelectMotivator(values map[catalog.Factor]int) catalog.Factor {
	best := catalog.ValuesFactors[0]
	for _, f := range catalog.ValuesFactors[1:] {
		if values[f] > values[best] {
			best = f
		}
	}
	return best
}

// orderedFactors sorts canonical factors descending by score; the stable
// sort preserves canonical order among equals.
func orderedFactors(scores map[catalog.Factor]int, canonical []catalog.Factor) []catalog.Factor {
	out := make([]catalog.Factor, len(canonical))
	copy(out, canonical)
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i]] > scores[out[j]]
	})
	return out
}
