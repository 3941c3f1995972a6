package assessment

import (
	"math"
	"testing"

	"github.com/hlifeacademy/dna-backend/internal/catalog"
)

func TestAccumulateSumsAreOrderInvariant(t *testing.T) {
	orders := [][]catalog.Factor{
		{catalog.FactorD, catalog.FactorI, catalog.FactorS, catalog.FactorC},
		{catalog.FactorC, catalog.FactorS, catalog.FactorI, catalog.FactorD},
		{catalog.FactorS, catalog.FactorD, catalog.FactorC, catalog.FactorI},
	}
	for _, ranking := range orders {
		scores := Accumulate(NewScoreSet(catalog.BehavioralFactors), ranking, BehavioralPoints)
		var sum float64
		for _, v := range scores {
			sum += v
		}
		if math.Abs(sum-20.0) > 1e-9 {
			t.Fatalf("behavioral group sum = %v, want 20.0 (ranking %v)", sum, ranking)
		}
	}

	valuesRanking := []catalog.Factor{
		catalog.FactorTheoretic, catalog.FactorAesthetic, catalog.FactorSocial,
		catalog.FactorReligious, catalog.FactorEconomic, catalog.FactorPolitical,
	}
	scores := Accumulate(NewScoreSet(catalog.ValuesFactors), valuesRanking, ValuesPoints)
	var sum float64
	for _, v := range scores {
		sum += v
	}
	if math.Abs(sum-31.0) > 1e-9 {
		t.Fatalf("values group sum = %v, want 31.0", sum)
	}
}

func TestAccumulateDoesNotMutateInput(t *testing.T) {
	base := NewScoreSet(catalog.BehavioralFactors)
	ranking := []catalog.Factor{catalog.FactorD, catalog.FactorI, catalog.FactorS, catalog.FactorC}
	_ = Accumulate(base, ranking, BehavioralPoints)
	for f, v := range base {
		if v != 0 {
			t.Fatalf("input score set mutated: %s = %v", f, v)
		}
	}
}

func TestTenIdenticalRankings(t *testing.T) {
	scores := NewScoreSet(catalog.BehavioralFactors)
	ranking := []catalog.Factor{catalog.FactorD, catalog.FactorI, catalog.FactorS, catalog.FactorC}
	for i := 0; i < catalog.GroupCount; i++ {
		scores = Accumulate(scores, ranking, BehavioralPoints)
	}
	final := Finalize(scores)
	want := map[catalog.Factor]int{
		catalog.FactorD: 96,
		catalog.FactorI: 64,
		catalog.FactorS: 30,
		catalog.FactorC: 10,
	}
	for f, w := range want {
		if final[f] != w {
			t.Fatalf("final[%s] = %d, want %d", f, final[f], w)
		}
	}
}

func TestFinalizeRoundsAndIsIdempotent(t *testing.T) {
	scores := ScoreSet{
		catalog.FactorD: 51.5,
		catalog.FactorI: 51.4,
		catalog.FactorS: 0.4,
		catalog.FactorC: 96.6,
	}
	first := Finalize(scores)
	if first[catalog.FactorD] != 52 || first[catalog.FactorI] != 51 {
		t.Fatalf("rounding wrong: D=%d I=%d", first[catalog.FactorD], first[catalog.FactorI])
	}
	if first[catalog.FactorS] != 0 || first[catalog.FactorC] != 97 {
		t.Fatalf("rounding wrong: S=%d C=%d", first[catalog.FactorS], first[catalog.FactorC])
	}

	asFloats := NewScoreSet(catalog.BehavioralFactors)
	for f, v := range first {
		asFloats[f] = float64(v)
	}
	second := Finalize(asFloats)
	for f := range first {
		if first[f] != second[f] {
			t.Fatalf("finalize not idempotent for %s: %d vs %d", f, first[f], second[f])
		}
	}
}
