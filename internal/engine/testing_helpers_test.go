package engine

import (
	"time"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

var testStart = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// testConfig returns a small event:
//   - imp: gold producer, 5s cycle, unlocked by default
//   - ogre: gems producer, 10s cycle, unlock costs 3 gold
//   - wisp: gold producer, 2s cycle, free unlock, single level
func testConfig() *domain.EventConfig {
	return &domain.EventConfig{
		ID: "test-event",
		Resources: []domain.Resource{
			{ID: "gold"},
			{ID: "gems"},
		},
		Producers: []domain.Producer{
			{
				ID:                "imp",
				Produces:          "gold",
				SpawnTimeMs:       5000,
				MaxLevel:          3,
				ProductionByLevel: []float64{1, 2, 3},
				DamageByLevel:     []float64{5, 10, 20},
				UnlockedByDefault: true,
				UpgradeCosts:      []domain.CostBag{{"gold": 5}, {"gold": 10}},
			},
			{
				ID:                "ogre",
				Produces:          "gems",
				SpawnTimeMs:       10000,
				MaxLevel:          2,
				ProductionByLevel: []float64{1, 2},
				DamageByLevel:     []float64{50, 100},
				UnlockCost:        domain.CostBag{"gold": 3},
				UpgradeCosts:      []domain.CostBag{{"gems": 2}},
			},
			{
				ID:                "wisp",
				Produces:          "gold",
				SpawnTimeMs:       2000,
				MaxLevel:          1,
				ProductionByLevel: []float64{1},
				DamageByLevel:     []float64{1},
			},
		},
		Boosts: []domain.Boost{
			{
				ID:           "gold-bonus",
				Kind:         domain.BoostKindProductionBonus,
				Resource:     "gold",
				MaxLevel:     2,
				BonusByLevel: []float64{1, 2},
				Costs:        []domain.CostBag{{"gold": 2}, {"gold": 4}},
			},
			{
				ID:           "haste",
				Kind:         domain.BoostKindSpeed,
				MaxLevel:     1,
				BonusByLevel: []float64{0.2},
				Costs:        []domain.CostBag{{"gems": 1}},
			},
			{
				ID:           "fury",
				Kind:         domain.BoostKindDamage,
				MaxLevel:     1,
				BonusByLevel: []float64{0.25},
				Costs:        []domain.CostBag{{"gems": 1}},
			},
		},
		RewardTiers: []domain.RewardTier{
			{Rank: 3, DamageThreshold: 0, Label: "Bronze"},
			{Rank: 2, DamageThreshold: 100, Label: "Silver"},
			{Rank: 1, DamageThreshold: 1000, Label: "Gold"},
		},
		Settings: domain.Settings{
			MaxOfflineDurationMs: 100000,
			SaveIntervalMs:       30000,
			TickRateMs:           100,
			RefreshIntervalMs:    1000,
			EventDurationMs:      3600000,
		},
	}
}

func newTestEngine() *Engine {
	return New(testConfig(), testStart)
}
