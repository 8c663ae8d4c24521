package planner

import (
	"time"

	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/engine"
)

// Greedy buys the affordable action with the best damage gain per unit of
// cost, weighted by the time left in the event. The first action in
// configuration order wins ties.
type Greedy struct{}

// Next implements Strategy
func (Greedy) Next(eng *engine.Engine, now time.Time) (Action, bool) {
	remaining := eng.TimeRemaining(now).Seconds()
	baseRate := eng.DamageRate()

	best := Action{}
	bestScore := -1.0
	found := false
	for _, action := range Candidates(eng.Config()) {
		cost, ok := affordable(eng, action)
		if !ok {
			continue
		}
		score := Score(eng, action, cost, baseRate, remaining)
		if score > bestScore {
			best, bestScore, found = action, score, true
		}
	}
	return best, found
}

// Score rates one affordable action as dpsGain * remainingSeconds / totalCost.
// A free action divides by one.
func Score(eng *engine.Engine, action Action, cost domain.CostBag, baseRate, remainingSeconds float64) float64 {
	trial := eng.Clone()
	if _, err := Apply(trial, action); err != nil {
		return -1
	}
	gain := trial.DamageRate() - baseRate

	total := cost.Total()
	if total <= 0 {
		total = 1
	}
	return gain * remainingSeconds / total
}

// Priority buys the highest-ranked affordable step of an ordered purchase
// list. An action listed n times stands for its first n purchases, so the
// k-th listing of an ID is satisfied once k purchases of it were made.
type Priority struct {
	Steps []Action
}

// NewPriority returns a Priority strategy over steps
func NewPriority(steps []Action) *Priority {
	return &Priority{Steps: steps}
}

// Next implements Strategy
func (p *Priority) Next(eng *engine.Engine, _ time.Time) (Action, bool) {
	seen := make(map[Action]int, len(p.Steps))
	for _, step := range p.Steps {
		seen[step]++
		if purchasesMade(eng, step) >= seen[step] {
			continue
		}
		if _, ok := affordable(eng, step); ok {
			return step, true
		}
	}
	return Action{}, false
}

// purchasesMade counts how many times action was bought on eng
func purchasesMade(eng *engine.Engine, action Action) int {
	if action.Kind == KindBoost {
		st, err := eng.BoostState(action.ID)
		if err != nil {
			return 0
		}
		return st.Level
	}
	st, err := eng.ProducerState(action.ID)
	if err != nil {
		return 0
	}
	for _, p := range eng.Config().Producers {
		if p.ID == action.ID && p.UnlockedByDefault {
			return st.Level - 1
		}
	}
	return st.Level
}
