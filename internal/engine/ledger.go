package engine

import (
	"maps"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

// Ledger holds the accumulated quantity of every configured resource
type Ledger struct {
	balances map[string]float64
}

// NewLedger creates a ledger with every resource at zero
func NewLedger(resources []domain.Resource) *Ledger {
	balances := make(map[string]float64, len(resources))
	for _, r := range resources {
		balances[r.ID] = 0
	}
	return &Ledger{balances: balances}
}

// Balance returns the quantity held of a resource (0 when unknown)
func (l *Ledger) Balance(resourceID string) float64 {
	return l.balances[resourceID]
}

// CanAfford reports whether every entry of cost is covered
func (l *Ledger) CanAfford(cost domain.CostBag) bool {
	for id, qty := range cost {
		if l.balances[id] < qty {
			return false
		}
	}
	return true
}

// Spend deducts cost. Callers must check CanAfford first.
func (l *Ledger) Spend(cost domain.CostBag) {
	for id, qty := range cost {
		if _, ok := l.balances[id]; !ok {
			continue
		}
		l.balances[id] -= qty
	}
}

// Credit adds a non-negative amount to a configured resource
func (l *Ledger) Credit(resourceID string, amount float64) {
	if amount <= 0 {
		return
	}
	if _, ok := l.balances[resourceID]; !ok {
		return
	}
	l.balances[resourceID] += amount
}

// Snapshot returns a copy of all balances
func (l *Ledger) Snapshot() map[string]float64 {
	return maps.Clone(l.balances)
}

func (l *Ledger) set(resourceID string, amount float64) {
	if _, ok := l.balances[resourceID]; ok {
		l.balances[resourceID] = amount
	}
}

func (l *Ledger) clone() *Ledger {
	return &Ledger{balances: maps.Clone(l.balances)}
}
