package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

func TestProductionBonus_RaisesProduction(t *testing.T) {
	e := newTestEngine()
	e.Ledger().Credit("gold", 2)
	assert.Equal(t, 1.0, e.CurrentProduction("imp"))

	require.NoError(t, e.PurchaseBoost("gold-bonus"))

	assert.Equal(t, 0.0, e.Balance("gold"))
	assert.Equal(t, 1.0, e.ProductionBonus("gold"))
	assert.Equal(t, 2.0, e.CurrentProduction("imp"))
	assert.Zero(t, e.ProductionBonus("gems"))

	e.Tick(5 * time.Second)
	assert.Equal(t, 2.0, e.Balance("gold"))
}

func TestProductionBonus_LastWins(t *testing.T) {
	cfg := testConfig()
	cfg.Boosts = append(cfg.Boosts, domain.Boost{
		ID:           "gold-bonus-small",
		Kind:         domain.BoostKindProductionBonus,
		Resource:     "gold",
		MaxLevel:     1,
		BonusByLevel: []float64{0.5},
		Costs:        []domain.CostBag{{"gold": 1}},
	})
	e := New(cfg, testStart)
	e.Ledger().Credit("gold", 3)

	require.NoError(t, e.PurchaseBoost("gold-bonus"))
	assert.Equal(t, 1.0, e.ProductionBonus("gold"))

	// later in configuration order, so it replaces rather than adds
	require.NoError(t, e.PurchaseBoost("gold-bonus-small"))
	assert.Equal(t, 0.5, e.ProductionBonus("gold"))
	assert.Equal(t, 1.5, e.CurrentProduction("imp"))
}

func TestSpeedBoost_ShortensCycle(t *testing.T) {
	e := newTestEngine()
	e.Ledger().Credit("gems", 1)
	assert.Equal(t, 1.0, e.SpeedMultiplier())

	require.NoError(t, e.PurchaseBoost("haste"))

	assert.InDelta(t, 0.8, e.SpeedMultiplier(), 1e-9)
	assert.InDelta(t, 4000.0, e.EffectiveSpawnDuration("imp"), 1e-9)

	e.Tick(12 * time.Second)
	assert.Equal(t, 3.0, e.Balance("gold"))
}

func TestDamageBoost_FloorsDamage(t *testing.T) {
	e := newTestEngine()
	e.Ledger().Credit("gems", 1)
	assert.Equal(t, 1.0, e.DamageMultiplier())

	require.NoError(t, e.PurchaseBoost("fury"))

	assert.Equal(t, 1.25, e.DamageMultiplier())
	// 5 * 1.25 = 6.25
	assert.Equal(t, 6.0, e.CurrentDamagePerCycle("imp"))

	e.Tick(10 * time.Second)
	assert.Equal(t, 12.0, e.TotalDamage())
}

func TestPurchaseBoost_Failures(t *testing.T) {
	e := newTestEngine()

	err := e.PurchaseBoost("gold-bonus")
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Contains(t, err.Error(), domain.ErrMsgInsufficientFunds)
	assert.Equal(t, 0.0, e.Balance("gold"))

	err = e.PurchaseBoost("overdrive")
	require.ErrorIs(t, err, domain.ErrUnknownBoost)

	e.Ledger().Credit("gems", 5)
	require.NoError(t, e.PurchaseBoost("haste"))
	before := e.Resources()
	err = e.PurchaseBoost("haste")
	require.ErrorIs(t, err, domain.ErrMaxLevel)
	assert.Equal(t, before, e.Resources())
	assert.False(t, e.CanPurchaseBoost("haste"))
}

func TestBoostCostAndBonus(t *testing.T) {
	e := newTestEngine()
	e.Ledger().Credit("gold", 6)

	cost, err := e.BoostCost("gold-bonus")
	require.NoError(t, err)
	assert.Equal(t, domain.CostBag{"gold": 2}, cost)
	assert.Zero(t, e.BoostBonus("gold-bonus"))

	require.NoError(t, e.PurchaseBoost("gold-bonus"))
	cost, err = e.BoostCost("gold-bonus")
	require.NoError(t, err)
	assert.Equal(t, domain.CostBag{"gold": 4}, cost)
	assert.True(t, e.CanPurchaseBoost("gold-bonus"))

	require.NoError(t, e.PurchaseBoost("gold-bonus"))
	assert.Equal(t, 2.0, e.BoostBonus("gold-bonus"))
	st, err := e.BoostState("gold-bonus")
	require.NoError(t, err)
	assert.Equal(t, 2, st.Level)
	assert.Zero(t, e.Balance("gold"))
}

func TestBalancesNeverNegative(t *testing.T) {
	e := newTestEngine()
	ops := []func() error{
		func() error { return e.UnlockOrUpgrade("ogre") },
		func() error { return e.UnlockOrUpgrade("imp") },
		func() error { return e.PurchaseBoost("gold-bonus") },
		func() error { return e.PurchaseBoost("haste") },
		func() error { return e.PurchaseBoost("fury") },
	}

	for round := 0; round < 20; round++ {
		for _, op := range ops {
			_ = op()
			for id, qty := range e.Resources() {
				assert.GreaterOrEqual(t, qty, 0.0, "round %d resource %s", round, id)
			}
		}
		e.Tick(7 * time.Second)
	}
}
