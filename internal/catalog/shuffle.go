package catalog

import (
	"math/rand"
)

// Shuffler produces the presentation order of a group's items. The original
// product shuffles each group once when it is presented; making this a
// strategy keeps tests deterministic.
type Shuffler interface {
	Shuffle(items []Item) []Item
}

type randShuffler struct {
	rng *rand.Rand
}

// NewRandShuffler returns a Shuffler backed by its own rand source.
func NewRandShuffler(seed int64) Shuffler {
	return &randShuffler{rng: rand.New(rand.NewSource(seed))}
}

func (s *randShuffler) Shuffle(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// IdentityShuffler keeps catalog order; used by tests and as the explicit
// "no randomization" strategy.
type IdentityShuffler struct{}

func (IdentityShuffler) Shuffle(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ShuffledGroups applies the shuffler independently to every group of the
// inventory, leaving the inventory itself untouched.
func ShuffledGroups(inv Inventory, s Shuffler) []Group {
	groups := make([]Group, len(inv.Groups))
	for i, g := range inv.Groups {
		groups[i] = Group{Items: s.Shuffle(g.Items)}
	}
	return groups
}
