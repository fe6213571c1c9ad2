// Package interest holds the tier table and the interest engine. Both are
// pure: they never touch storage and are safe for concurrent use.
package interest

import (
	"fmt"
	"slices"
	"sort"

	"github.com/GlebRadaev/fundslock/internal/domain"
)

// Table is an immutable step function from elapsed seconds to a rate in
// basis points. Tiers are kept sorted by threshold regardless of the order
// they were configured in.
type Table struct {
	tiers []domain.Tier
}

// NewTable validates an administrator supplied configuration. Durations and
// rates must be non-empty, of equal length and non-negative, thresholds must be
// unique, and the rate may not drop as the threshold grows, so interest never
// shrinks with elapsed time. Order of the input pairs does not matter.
func NewTable(durations, rates []int64) (*Table, error) {
	if len(durations) == 0 || len(durations) != len(rates) {
		return nil, fmt.Errorf("%w: got %d durations and %d rates", domain.ErrInvalidTierConfiguration, len(durations), len(rates))
	}

	tiers := make([]domain.Tier, len(durations))
	for i := range durations {
		if durations[i] < 0 || rates[i] < 0 {
			return nil, fmt.Errorf("%w: tier %d has a negative value", domain.ErrInvalidTierConfiguration, i)
		}
		tiers[i] = domain.Tier{Threshold: durations[i], RateBps: rates[i]}
	}
	sortTiers(tiers)

	for i := 1; i < len(tiers); i++ {
		if tiers[i].Threshold == tiers[i-1].Threshold {
			return nil, fmt.Errorf("%w: duplicate threshold %d", domain.ErrInvalidTierConfiguration, tiers[i].Threshold)
		}
		if tiers[i].RateBps < tiers[i-1].RateBps {
			return nil, fmt.Errorf("%w: rate for threshold %d is lower than for %d",
				domain.ErrInvalidTierConfiguration, tiers[i].Threshold, tiers[i-1].Threshold)
		}
	}

	return &Table{tiers: tiers}, nil
}

// FromTiers builds a table from tiers that were validated when stored.
func FromTiers(tiers []domain.Tier) *Table {
	sorted := slices.Clone(tiers)
	sortTiers(sorted)
	return &Table{tiers: sorted}
}

// Rate returns the rate of the tier with the largest threshold not above
// elapsed, and false when elapsed is below every threshold.
func (t *Table) Rate(elapsed int64) (int64, bool) {
	if t == nil {
		return 0, false
	}
	// first tier strictly above elapsed; the one before it applies
	i := sort.Search(len(t.tiers), func(i int) bool {
		return t.tiers[i].Threshold > elapsed
	})
	if i == 0 {
		return 0, false
	}
	return t.tiers[i-1].RateBps, true
}

func (t *Table) Tiers() []domain.Tier {
	if t == nil {
		return nil
	}
	return slices.Clone(t.tiers)
}

func (t *Table) Durations() []int64 {
	tiers := t.Tiers()
	out := make([]int64, len(tiers))
	for i, tier := range tiers {
		out[i] = tier.Threshold
	}
	return out
}

func (t *Table) Rates() []int64 {
	tiers := t.Tiers()
	out := make([]int64, len(tiers))
	for i, tier := range tiers {
		out[i] = tier.RateBps
	}
	return out
}

func sortTiers(tiers []domain.Tier) {
	slices.SortFunc(tiers, func(a, b domain.Tier) int {
		switch {
		case a.Threshold < b.Threshold:
			return -1
		case a.Threshold > b.Threshold:
			return 1
		}
		return 0
	})
}
