// Package catalog holds the two fixed inventories: ten groups of four
// behavioral adjectives (factors D/I/S/C) and ten groups of six value
// phrases (factors P/E/R/S/B/T). Data is embedded and validated once at
// load; groups are immutable reference data.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

type Factor string

// Behavioral factors.
const (
	FactorD Factor = "D"
	FactorI Factor = "I"
	FactorS Factor = "S"
	FactorC Factor = "C"
)

// Values factors. FactorSocial shares the letter "S" with the behavioral
// FactorS but belongs to a disjoint factor space; the two are never compared.
const (
	FactorPolitical Factor = "P"
	FactorEconomic  Factor = "E"
	FactorReligious Factor = "R"
	FactorSocial    Factor = "S"
	FactorAesthetic Factor = "B"
	FactorTheoretic Factor = "T"
)

// BehavioralFactors and ValuesFactors are the canonical orderings. They
// double as tie-break priority wherever a deterministic order is needed.
var (
	BehavioralFactors = []Factor{FactorD, FactorI, FactorS, FactorC}
	ValuesFactors     = []Factor{FactorPolitical, FactorEconomic, FactorReligious, FactorSocial, FactorAesthetic, FactorTheoretic}
)

type Item struct {
	Text        string `yaml:"text" json:"text"`
	Factor      Factor `yaml:"factor" json:"factor"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type Group struct {
	Items []Item `yaml:"items" json:"items"`
}

type Inventory struct {
	Name    string   `json:"name"`
	Factors []Factor `json:"factors"`
	Groups  []Group  `json:"groups"`
}

//go:embed data/behavioral.yaml
var behavioralYAML []byte

//go:embed data/values.yaml
var valuesYAML []byte

const GroupCount = 10

// Load parses and validates both embedded inventories. A violation of the
// catalog invariants (10 groups, every factor exactly once per group) is a
// boot failure, not a runtime condition.
func Load() (behavioral Inventory, values Inventory, err error) {
	behavioral, err = load("behavioral", behavioralYAML, BehavioralFactors)
	if err != nil {
		return Inventory{}, Inventory{}, err
	}
	values, err = load("values", valuesYAML, ValuesFactors)
	if err != nil {
		return Inventory{}, Inventory{}, err
	}
	return behavioral, values, nil
}

func load(name string, raw []byte, factors []Factor) (Inventory, error) {
	var doc struct {
		Groups []Group `yaml:"groups"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Inventory{}, fmt.Errorf("parse %s catalog: %w", name, err)
	}
	inv := Inventory{Name: name, Factors: factors, Groups: doc.Groups}
	if err := inv.validate(); err != nil {
		return Inventory{}, fmt.Errorf("invalid %s catalog: %w", name, err)
	}
	return inv, nil
}

func (inv Inventory) validate() error {
	if len(inv.Groups) != GroupCount {
		return fmt.Errorf("expected %d groups, got %d", GroupCount, len(inv.Groups))
	}
	for gi, g := range inv.Groups {
		if len(g.Items) != len(inv.Factors) {
			return fmt.Errorf("group %d: expected %d items, got %d", gi, len(inv.Factors), len(g.Items))
		}
		seen := map[Factor]bool{}
		for _, item := range g.Items {
			if item.Text == "" {
				return fmt.Errorf("group %d: item with empty text", gi)
			}
			if !inv.HasFactor(item.Factor) {
				return fmt.Errorf("group %d: unknown factor %q", gi, item.Factor)
			}
			if seen[item.Factor] {
				return fmt.Errorf("group %d: factor %q appears twice", gi, item.Factor)
			}
			seen[item.Factor] = true
		}
	}
	return nil
}

func (inv Inventory) HasFactor(f Factor) bool {
	for _, known := range inv.Factors {
		if known == f {
			return true
		}
	}
	return false
}

// GroupFactors returns the factor of each item in group gi, in catalog order.
func (inv Inventory) GroupFactors(gi int) []Factor {
	out := make([]Factor, 0, len(inv.Groups[gi].Items))
	for _, item := range inv.Groups[gi].Items {
		out = append(out, item.Factor)
	}
	return out
}
