package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

// ProducerState returns the runtime state of a producer
func (e *Engine) ProducerState(producerID string) (domain.ProducerState, error) {
	i, ok := e.producerIndex[producerID]
	if !ok {
		return domain.ProducerState{}, fmt.Errorf("%w: %s", domain.ErrUnknownProducer, producerID)
	}
	return e.producers[i], nil
}

// EffectiveSpawnDuration returns the cycle length in ms after the speed boost
func (e *Engine) EffectiveSpawnDuration(producerID string) float64 {
	i, ok := e.producerIndex[producerID]
	if !ok {
		return 0
	}
	return e.cfg.Producers[i].SpawnTimeMs * e.SpeedMultiplier()
}

// CurrentProduction returns the quantity credited per completed cycle
func (e *Engine) CurrentProduction(producerID string) float64 {
	i, ok := e.producerIndex[producerID]
	if !ok {
		return 0
	}
	return e.production(i)
}

// CurrentDamagePerCycle returns the damage added per completed cycle
func (e *Engine) CurrentDamagePerCycle(producerID string) float64 {
	i, ok := e.producerIndex[producerID]
	if !ok {
		return 0
	}
	return e.damagePerCycle(i, e.DamageMultiplier())
}

// UpgradeCost returns the cost of the next unlock or upgrade.
// A nil cost with a nil error means the unlock is free.
func (e *Engine) UpgradeCost(producerID string) (domain.CostBag, error) {
	i, ok := e.producerIndex[producerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProducer, producerID)
	}
	p := &e.cfg.Producers[i]
	st := e.producers[i]
	if !st.Unlocked {
		return p.UnlockCost, nil
	}
	if st.Level >= p.MaxLevel || st.Level-1 >= len(p.UpgradeCosts) {
		return nil, fmt.Errorf("%w: %s is level %d", domain.ErrMaxLevel, producerID, st.Level)
	}
	return p.UpgradeCosts[st.Level-1], nil
}

// CanUnlockOrUpgrade reports whether UnlockOrUpgrade would succeed
func (e *Engine) CanUnlockOrUpgrade(producerID string) bool {
	cost, err := e.UpgradeCost(producerID)
	if err != nil {
		return false
	}
	return e.ledger.CanAfford(cost)
}

// UnlockOrUpgrade unlocks a locked producer at level 1 or raises its level by
// one, spending the cost. It fails with ErrMaxLevel or ErrInsufficientFunds and
// leaves the ledger untouched on failure.
func (e *Engine) UnlockOrUpgrade(producerID string) error {
	cost, err := e.UpgradeCost(producerID)
	if err != nil {
		return err
	}
	if !e.ledger.CanAfford(cost) {
		return fmt.Errorf("%w: %s", domain.ErrInsufficientFunds, producerID)
	}
	e.ledger.Spend(cost)

	i := e.producerIndex[producerID]
	st := &e.producers[i]
	if !st.Unlocked {
		st.Unlocked = true
		st.Level = 1
		return nil
	}
	st.Level++
	return nil
}

func (e *Engine) active(i int) bool {
	st := e.producers[i]
	return st.Unlocked && st.Level > 0
}

func (e *Engine) production(i int) float64 {
	if !e.active(i) {
		return 0
	}
	p := &e.cfg.Producers[i]
	return levelValue(p.ProductionByLevel, e.producers[i].Level) + e.ProductionBonus(p.Produces)
}

func (e *Engine) damagePerCycle(i int, dmgMult float64) float64 {
	if !e.active(i) {
		return 0
	}
	p := &e.cfg.Producers[i]
	return math.Floor(levelValue(p.DamageByLevel, e.producers[i].Level) * dmgMult)
}

// tickProducer adds elapsedMs of progress and settles every completed cycle
func (e *Engine) tickProducer(i int, elapsedMs, speed, dmgMult float64) (domain.ProductionEvent, bool) {
	if !e.active(i) {
		return domain.ProductionEvent{}, false
	}
	p := &e.cfg.Producers[i]
	st := &e.producers[i]
	spawn := p.SpawnTimeMs * speed
	if spawn <= 0 {
		return domain.ProductionEvent{}, false
	}

	st.ProgressMs += elapsedMs
	cycles := completedCycles(&st.ProgressMs, spawn)
	if cycles == 0 {
		return domain.ProductionEvent{}, false
	}

	n := float64(cycles)
	ev := domain.ProductionEvent{
		ProducerID: p.ID,
		ResourceID: p.Produces,
		Cycles:     cycles,
		Produced:   e.production(i) * n,
		Damage:     e.damagePerCycle(i, dmgMult) * n,
	}
	e.ledger.Credit(p.Produces, ev.Produced)
	e.totalDamage += ev.Damage
	return ev, true
}

// completedCycles removes every whole cycle from progress and returns the
// count. Afterwards 0 <= *progress < spawn.
func completedCycles(progress *float64, spawn float64) int64 {
	if *progress < spawn {
		return 0
	}
	cycles := int64(math.Floor(*progress / spawn))
	*progress -= float64(cycles) * spawn
	for *progress >= spawn {
		*progress -= spawn
		cycles++
	}
	for *progress < 0 && cycles > 0 {
		*progress += spawn
		cycles--
	}
	if *progress < 0 {
		*progress = 0
	}
	return cycles
}

func levelValue(table []float64, level int) float64 {
	if level < 1 || level > len(table) {
		return 0
	}
	return table[level-1]
}

// TimeToNextCycle returns how long until the producer completes its current
// cycle. Inactive producers report zero.
func (e *Engine) TimeToNextCycle(producerID string) time.Duration {
	i, ok := e.producerIndex[producerID]
	if !ok || !e.active(i) {
		return 0
	}
	remaining := e.EffectiveSpawnDuration(producerID) - e.producers[i].ProgressMs
	if remaining < 0 {
		return 0
	}
	return msToDuration(remaining)
}
