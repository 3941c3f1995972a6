package catalog

import (
	"testing"
)

func TestLoadCatalogs(t *testing.T) {
	behavioral, values, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(behavioral.Groups) != GroupCount {
		t.Fatalf("behavioral groups: want %d got %d", GroupCount, len(behavioral.Groups))
	}
	if len(values.Groups) != GroupCount {
		t.Fatalf("values groups: want %d got %d", GroupCount, len(values.Groups))
	}
	for gi, g := range behavioral.Groups {
		if len(g.Items) != 4 {
			t.Fatalf("behavioral group %d: want 4 items got %d", gi, len(g.Items))
		}
	}
	for gi, g := range values.Groups {
		if len(g.Items) != 6 {
			t.Fatalf("values group %d: want 6 items got %d", gi, len(g.Items))
		}
	}
}

func TestGroupFactorsCoverEachFactorOnce(t *testing.T) {
	behavioral, values, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, inv := range []Inventory{behavioral, values} {
		for gi := range inv.Groups {
			seen := map[Factor]int{}
			for _, f := range inv.GroupFactors(gi) {
				seen[f]++
			}
			for _, f := range inv.Factors {
				if seen[f] != 1 {
					t.Fatalf("%s group %d: factor %q count %d", inv.Name, gi, f, seen[f])
				}
			}
		}
	}
}

func TestShufflers(t *testing.T) {
	behavioral, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	group := behavioral.Groups[0]

	id := IdentityShuffler{}.Shuffle(group.Items)
	for i := range group.Items {
		if id[i] != group.Items[i] {
			t.Fatalf("identity shuffler reordered item %d", i)
		}
	}

	a := NewRandShuffler(7).Shuffle(group.Items)
	b := NewRandShuffler(7).Shuffle(group.Items)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders at %d", i)
		}
	}

	// Shuffle must be a permutation, never a mutation of the source.
	seen := map[string]bool{}
	for _, item := range a {
		seen[item.Text] = true
	}
	for _, item := range group.Items {
		if !seen[item.Text] {
			t.Fatalf("shuffle dropped item %q", item.Text)
		}
	}
}
