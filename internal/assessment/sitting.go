package assessment

import (
	"fmt"

	"github.com/hlifeacademy/dna-backend/internal/catalog"
)

type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseBehavioral Phase = "behavioral"
	PhaseValues     Phase = "values"
	PhaseFinalized  Phase = "finalized"
)

// Result is the immutable output of a finalized sitting.
type Result struct {
	Disc   map[catalog.Factor]int `json:"disc"`
	Values map[catalog.Factor]int `json:"values"`
}

// Sitting walks NotStarted -> InGroup(i) -> ... -> Finalized over the
// behavioral inventory and then the values inventory. Each submitted
// ranking is accumulated exactly once; there are no backward transitions,
// and abandoning a sitting is simply dropping the value.
type Sitting struct {
	behavioral catalog.Inventory
	values     catalog.Inventory

	phase    Phase
	groupIdx int

	disc ScoreSet
	vals ScoreSet
}

func NewSitting(behavioral, values catalog.Inventory) *Sitting {
	return &Sitting{
		behavioral: behavioral,
		values:     values,
		phase:      PhaseNotStarted,
		disc:       NewScoreSet(catalog.BehavioralFactors),
		vals:       NewScoreSet(catalog.ValuesFactors),
	}
}

func (s *Sitting) Phase() Phase { return s.phase }

// GroupIndex is the zero-based index within the current inventory.
func (s *Sitting) GroupIndex() int { return s.groupIdx }

func (s *Sitting) Start() error {
	if s.phase != PhaseNotStarted {
		return fmt.Errorf("sitting already started (phase %s)", s.phase)
	}
	s.phase = PhaseBehavioral
	s.groupIdx = 0
	return nil
}

// Submit consumes the final ranking for the current group (most identified
// with first) and advances. A ranking must be a total order over the
// group's items: all factors of the group, each exactly once. The terminal
// submit finalizes both score sets into the Result.
func (s *Sitting) Submit(ranking []catalog.Factor) error {
	switch s.phase {
	case PhaseBehavioral:
		if err := validateRanking(ranking, s.behavioral.GroupFactors(s.groupIdx)); err != nil {
			return fmt.Errorf("behavioral group %d: %w", s.groupIdx, err)
		}
		s.disc = Accumulate(s.disc, ranking, BehavioralPoints)
		s.groupIdx++
		if s.groupIdx == len(s.behavioral.Groups) {
			s.phase = PhaseValues
			s.groupIdx = 0
		}
		return nil
	case PhaseValues:
		if err := validateRanking(ranking, s.values.GroupFactors(s.groupIdx)); err != nil {
			return fmt.Errorf("values group %d: %w", s.groupIdx, err)
		}
		s.vals = Accumulate(s.vals, ranking, ValuesPoints)
		s.groupIdx++
		if s.groupIdx == len(s.values.Groups) {
			s.phase = PhaseFinalized
		}
		return nil
	case PhaseNotStarted:
		return fmt.Errorf("sitting not started")
	default:
		return fmt.Errorf("sitting already finalized")
	}
}

// Result is only available once the sitting is finalized.
func (s *Sitting) Result() (Result, error) {
	if s.phase != PhaseFinalized {
		return Result{}, fmt.Errorf("sitting not finalized (phase %s)", s.phase)
	}
	return Result{Disc: Finalize(s.disc), Values: Finalize(s.vals)}, nil
}

func validateRanking(ranking, expected []catalog.Factor) error {
	if len(ranking) != len(expected) {
		return fmt.Errorf("ranking has %d positions, group has %d items", len(ranking), len(expected))
	}
	want := make(map[catalog.Factor]bool, len(expected))
	for _, f := range expected {
		want[f] = true
	}
	seen := make(map[catalog.Factor]bool, len(ranking))
	for _, f := range ranking {
		if !want[f] {
			return fmt.Errorf("factor %q does not belong to this group", f)
		}
		if seen[f] {
			return fmt.Errorf("factor %q ranked twice", f)
		}
		seen[f] = true
	}
	return nil
}
