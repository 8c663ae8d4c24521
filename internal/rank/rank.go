// Package rank maps cumulative damage onto the reward tier ladder.
package rank

import (
	"sort"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

// Evaluator answers rank queries for a fixed tier table
type Evaluator struct {
	byThreshold []domain.RewardTier // descending damage threshold
	byRank      []domain.RewardTier // ascending rank, best first
}

// NewEvaluator creates an evaluator. The input slice is copied and may be in any order.
func NewEvaluator(tiers []domain.RewardTier) *Evaluator {
	byThreshold := make([]domain.RewardTier, len(tiers))
	copy(byThreshold, tiers)
	sort.SliceStable(byThreshold, func(i, j int) bool {
		return byThreshold[i].DamageThreshold > byThreshold[j].DamageThreshold
	})

	byRank := make([]domain.RewardTier, len(tiers))
	copy(byRank, tiers)
	sort.SliceStable(byRank, func(i, j int) bool {
		return byRank[i].Rank < byRank[j].Rank
	})

	return &Evaluator{byThreshold: byThreshold, byRank: byRank}
}

// Current returns the first tier, highest threshold first, whose threshold is
// reached by totalDamage. When nothing is reached the lowest tier is returned.
func (e *Evaluator) Current(totalDamage float64) domain.RewardTier {
	if len(e.byThreshold) == 0 {
		return domain.RewardTier{}
	}
	for _, tier := range e.byThreshold {
		if tier.DamageThreshold <= totalDamage {
			return tier
		}
	}
	return e.byThreshold[len(e.byThreshold)-1]
}

// Next returns the tier immediately above current, or false at the top rank
func (e *Evaluator) Next(current domain.RewardTier) (domain.RewardTier, bool) {
	for i, tier := range e.byRank {
		if tier.Rank != current.Rank {
			continue
		}
		if i == 0 {
			return domain.RewardTier{}, false
		}
		return e.byRank[i-1], true
	}
	return domain.RewardTier{}, false
}

// Progress returns the fraction of the way from the current tier to the next,
// clamped to [0,1]. At the top rank it is 1.
func (e *Evaluator) Progress(totalDamage float64) float64 {
	current := e.Current(totalDamage)
	next, ok := e.Next(current)
	if !ok {
		return 1
	}
	span := next.DamageThreshold - current.DamageThreshold
	if span <= 0 {
		return 1
	}
	return clamp01((totalDamage - current.DamageThreshold) / span)
}

// Tiers returns the table ordered best rank first
func (e *Evaluator) Tiers() []domain.RewardTier {
	out := make([]domain.RewardTier, len(e.byRank))
	copy(out, e.byRank)
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
