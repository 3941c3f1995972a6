package assessment

import (
	"testing"

	"github.com/hlifeacademy/dna-backend/internal/catalog"
)

func TestClassifyHighFactors(t *testing.T) {
	c := Classify(map[catalog.Factor]int{
		catalog.FactorD: 60,
		catalog.FactorI: 55,
		catalog.FactorS: 20,
		catalog.FactorC: 10,
	})
	if c.Code != "DI" {
		t.Fatalf("code = %q, want DI", c.Code)
	}
	if len(c.Factors) != 2 || c.Factors[0] != catalog.FactorD || c.Factors[1] != catalog.FactorI {
		t.Fatalf("factors = %v, want [D I]", c.Factors)
	}
}

func TestClassifyOrdersByScoreNotCanon(t *testing.T) {
	c := Classify(map[catalog.Factor]int{
		catalog.FactorD: 55,
		catalog.FactorI: 60,
		catalog.FactorS: 20,
		catalog.FactorC: 10,
	})
	if c.Code != "ID" {
		t.Fatalf("code = %q, want ID", c.Code)
	}
}

func TestClassifyFallbackToHighest(t *testing.T) {
	c := Classify(map[catalog.Factor]int{
		catalog.FactorD: 40,
		catalog.FactorI: 30,
		catalog.FactorS: 20,
		catalog.FactorC: 10,
	})
	if c.Code != "D" {
		t.Fatalf("code = %q, want D", c.Code)
	}
	if len(c.Factors) != 1 {
		t.Fatalf("factors = %v, want single factor", c.Factors)
	}
}

func TestClassifyTieKeepsCanonicalOrder(t *testing.T) {
	c := Classify(map[catalog.Factor]int{
		catalog.FactorD: 55,
		catalog.FactorI: 55,
		catalog.FactorS: 55,
		catalog.FactorC: 10,
	})
	if c.Code != "DIS" {
		t.Fatalf("code = %q, want DIS", c.Code)
	}
}

func TestBandFor(t *testing.T) {
	cases := []struct {
		score int
		want  Band
	}{
		{95, BandExtremelyHigh},
		{88, BandExtremelyHigh},
		{87, BandVeryHigh},
		{70, BandVeryHigh},
		{69, BandHigh},
		{51, BandHigh},
		{50, BandLow},
		{33, BandLow},
		{32, BandVeryLow},
		{16, BandVeryLow},
		{15, BandExtremelyLow},
		{0, BandExtremelyLow},
	}
	for _, tc := range cases {
		if got := BandFor(tc.score); got != tc.want {
			t.Fatalf("BandFor(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestSelectMotivator(t *testing.T) {
	got := SelectMotivator(map[catalog.Factor]int{
		catalog.FactorPolitical: 80,
		catalog.FactorEconomic:  70,
		catalog.FactorReligious: 40,
		catalog.FactorSocial:    40,
		catalog.FactorAesthetic: 40,
		catalog.FactorTheoretic: 40,
	})
	if got != catalog.FactorPolitical {
		t.Fatalf("motivator = %q, want P", got)
	}
}

func TestSelectMotivatorTieBreak(t *testing.T) {
	got := SelectMotivator(map[catalog.Factor]int{
		catalog.FactorPolitical: 40,
		catalog.FactorEconomic:  70,
		catalog.FactorReligious: 70,
		catalog.FactorSocial:    40,
		catalog.FactorAesthetic: 70,
		catalog.FactorTheoretic: 40,
	})
	if got != catalog.FactorEconomic {
		t.Fatalf("motivator = %q, want E (first in priority order)", got)
	}
}

func TestNarrativeLookups(t *testing.T) {
	pair := Classify(map[catalog.Factor]int{
		catalog.FactorD: 60, catalog.FactorI: 55, catalog.FactorS: 20, catalog.FactorC: 10,
	})
	if ProfileDescription(pair) == "" {
		t.Fatal("missing combination description for DI")
	}
	if ProfileDisplayName(pair) == "" {
		t.Fatal("missing display name for DI")
	}
	if len(CombinedStrengths(pair)) == 0 || len(CombinedLeadership(pair)) == 0 {
		t.Fatal("missing combined insight lists for DI")
	}

	pure := Classify(map[catalog.Factor]int{
		catalog.FactorD: 10, catalog.FactorI: 20, catalog.FactorS: 60, catalog.FactorC: 30,
	})
	if ProfileDescription(pure) == "" {
		t.Fatal("missing pure description for S")
	}

	for _, f := range catalog.ValuesFactors {
		if MotivatorName(f) == "" || MotivatorDescription(f) == "" {
			t.Fatalf("missing motivator narrative for %s", f)
		}
	}
}
