package engine

import (
	"fmt"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

// ProductionBonus returns the flat per-cycle bonus for a resource. When several
// purchased boosts target the same resource the last one in configuration
// order wins; bonuses are not summed.
func (e *Engine) ProductionBonus(resourceID string) float64 {
	bonus, _ := e.lastActiveBonus(domain.BoostKindProductionBonus, resourceID)
	return bonus
}

// SpeedMultiplier returns the factor applied to spawn durations, in (0,1]
func (e *Engine) SpeedMultiplier() float64 {
	bonus, ok := e.lastActiveBonus(domain.BoostKindSpeed, "")
	if !ok {
		return 1
	}
	return 1 - bonus
}

// DamageMultiplier returns the factor applied to damage per cycle, at least 1
func (e *Engine) DamageMultiplier() float64 {
	bonus, ok := e.lastActiveBonus(domain.BoostKindDamage, "")
	if !ok {
		return 1
	}
	return 1 + bonus
}

func (e *Engine) lastActiveBonus(kind domain.BoostKind, resourceID string) (float64, bool) {
	var (
		bonus float64
		found bool
	)
	for i := range e.cfg.Boosts {
		b := &e.cfg.Boosts[i]
		if b.Kind != kind {
			continue
		}
		if kind == domain.BoostKindProductionBonus && b.Resource != resourceID {
			continue
		}
		lv := e.boosts[i].Level
		if lv <= 0 || lv > len(b.BonusByLevel) {
			continue
		}
		bonus = b.BonusByLevel[lv-1]
		found = true
	}
	return bonus, found
}

// BoostState returns the runtime state of a boost
func (e *Engine) BoostState(boostID string) (domain.BoostState, error) {
	i, ok := e.boostIndex[boostID]
	if !ok {
		return domain.BoostState{}, fmt.Errorf("%w: %s", domain.ErrUnknownBoost, boostID)
	}
	return e.boosts[i], nil
}

// BoostBonus returns the bonus currently granted by a boost (0 when not purchased)
func (e *Engine) BoostBonus(boostID string) float64 {
	i, ok := e.boostIndex[boostID]
	if !ok {
		return 0
	}
	b := &e.cfg.Boosts[i]
	lv := e.boosts[i].Level
	if lv <= 0 || lv > len(b.BonusByLevel) {
		return 0
	}
	return b.BonusByLevel[lv-1]
}

// BoostCost returns the cost to raise a boost from its level N to N+1
func (e *Engine) BoostCost(boostID string) (domain.CostBag, error) {
	i, ok := e.boostIndex[boostID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownBoost, boostID)
	}
	b := &e.cfg.Boosts[i]
	lv := e.boosts[i].Level
	if lv >= b.MaxLevel || lv >= len(b.Costs) {
		return nil, fmt.Errorf("%w: %s is level %d", domain.ErrMaxLevel, boostID, lv)
	}
	return b.Costs[lv], nil
}

// CanPurchaseBoost reports whether PurchaseBoost would succeed
func (e *Engine) CanPurchaseBoost(boostID string) bool {
	cost, err := e.BoostCost(boostID)
	if err != nil {
		return false
	}
	return e.ledger.CanAfford(cost)
}

// PurchaseBoost spends the next cost and raises the boost level by one.
// On failure the ledger is untouched.
func (e *Engine) PurchaseBoost(boostID string) error {
	cost, err := e.BoostCost(boostID)
	if err != nil {
		return err
	}
	if !e.ledger.CanAfford(cost) {
		return fmt.Errorf("%w: %s", domain.ErrInsufficientFunds, boostID)
	}
	e.ledger.Spend(cost)
	e.boosts[e.boostIndex[boostID]].Level++
	return nil
}
