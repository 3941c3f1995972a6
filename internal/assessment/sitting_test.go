package assessment

import (
	"testing"

	"github.com/hlifeacademy/dna-backend/internal/catalog"
)

func loadInventories(t *testing.T) (catalog.Inventory, catalog.Inventory) {
	t.Helper()
	behavioral, values, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	return behavioral, values
}

func TestSittingFullRun(t *testing.T) {
	behavioral, values := loadInventories(t)
	s := NewSitting(behavioral, values)

	if _, err := s.Result(); err == nil {
		t.Fatal("expected error reading result before finalization")
	}
	if err := s.Submit(nil); err == nil {
		t.Fatal("expected error submitting before start")
	}
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Start(); err == nil {
		t.Fatal("expected error starting twice")
	}

	for gi := 0; gi < catalog.GroupCount; gi++ {
		if s.Phase() != PhaseBehavioral || s.GroupIndex() != gi {
			t.Fatalf("phase %s group %d, want behavioral group %d", s.Phase(), s.GroupIndex(), gi)
		}
		if err := s.Submit(behavioral.GroupFactors(gi)); err != nil {
			t.Fatalf("behavioral group %d: %v", gi, err)
		}
	}
	for gi := 0; gi < catalog.GroupCount; gi++ {
		if s.Phase() != PhaseValues || s.GroupIndex() != gi {
			t.Fatalf("phase %s group %d, want values group %d", s.Phase(), s.GroupIndex(), gi)
		}
		if err := s.Submit(values.GroupFactors(gi)); err != nil {
			t.Fatalf("values group %d: %v", gi, err)
		}
	}
	if s.Phase() != PhaseFinalized {
		t.Fatalf("phase = %s, want finalized", s.Phase())
	}
	if err := s.Submit(behavioral.GroupFactors(0)); err == nil {
		t.Fatal("expected error submitting after finalization")
	}

	res, err := s.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if len(res.Disc) != len(catalog.BehavioralFactors) {
		t.Fatalf("disc result has %d factors", len(res.Disc))
	}
	if len(res.Values) != len(catalog.ValuesFactors) {
		t.Fatalf("values result has %d factors", len(res.Values))
	}
	var discSum, valuesSum int
	for _, v := range res.Disc {
		discSum += v
	}
	for _, v := range res.Values {
		valuesSum += v
	}
	// Rounding can shift each total by at most a couple of points.
	if discSum < 198 || discSum > 202 {
		t.Fatalf("disc total = %d, want about 200", discSum)
	}
	if valuesSum < 308 || valuesSum > 312 {
		t.Fatalf("values total = %d, want about 310", valuesSum)
	}
}

func TestSittingRejectsInvalidRankings(t *testing.T) {
	behavioral, values := loadInventories(t)
	s := NewSitting(behavioral, values)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := s.Submit([]catalog.Factor{catalog.FactorD, catalog.FactorI}); err == nil {
		t.Fatal("expected error for incomplete ranking")
	}
	if err := s.Submit([]catalog.Factor{catalog.FactorD, catalog.FactorD, catalog.FactorS, catalog.FactorC}); err == nil {
		t.Fatal("expected error for duplicate factor")
	}
	if err := s.Submit([]catalog.Factor{catalog.FactorD, catalog.FactorI, catalog.FactorS, catalog.FactorPolitical}); err == nil {
		t.Fatal("expected error for foreign factor")
	}
	if s.GroupIndex() != 0 {
		t.Fatalf("group index advanced to %d after rejected rankings", s.GroupIndex())
	}

	if err := s.Submit(behavioral.GroupFactors(0)); err != nil {
		t.Fatalf("valid ranking rejected: %v", err)
	}
	if s.GroupIndex() != 1 {
		t.Fatalf("group index = %d, want 1", s.GroupIndex())
	}
}
