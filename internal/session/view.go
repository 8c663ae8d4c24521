package session

import (
	"time"

	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/engine"
)

// View is the derived, read-only picture of an engine at one instant
type View struct {
	PlayerID      string             `json:"player_id"`
	At            time.Time          `json:"at"`
	Resources     map[string]float64 `json:"resources"`
	ResourceRates map[string]float64 `json:"resource_rates"`
	TotalDamage   float64            `json:"total_damage"`
	DamageRate    float64            `json:"damage_rate"`
	Rank          domain.RewardTier  `json:"rank"`
	NextRank      *domain.RewardTier `json:"next_rank,omitempty"`
	RankProgress  float64            `json:"rank_progress"`
	Producers     []ProducerView     `json:"producers"`
	Boosts        []BoostView        `json:"boosts"`
	Event         EventWindow        `json:"event"`
}

// ProducerView is one producer's state with its derived values
type ProducerView struct {
	ID              string         `json:"id"`
	Name            string         `json:"name,omitempty"`
	Produces        string         `json:"produces"`
	Level           int            `json:"level"`
	MaxLevel        int            `json:"max_level"`
	Unlocked        bool           `json:"unlocked"`
	ProgressMs      float64        `json:"progress_ms"`
	SpawnDurationMs float64        `json:"spawn_duration_ms"`
	NextCycleInMs   int64          `json:"next_cycle_in_ms"`
	Production      float64        `json:"production"`
	DamagePerCycle  float64        `json:"damage_per_cycle"`
	NextCost        domain.CostBag `json:"next_cost,omitempty"`
	Maxed           bool           `json:"maxed"`
	CanAfford       bool           `json:"can_afford"`
}

// BoostView is one boost's state with its derived values
type BoostView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name,omitempty"`
	Kind      string         `json:"kind"`
	Resource  string         `json:"resource,omitempty"`
	Level     int            `json:"level"`
	MaxLevel  int            `json:"max_level"`
	Bonus     float64        `json:"bonus"`
	NextCost  domain.CostBag `json:"next_cost,omitempty"`
	Maxed     bool           `json:"maxed"`
	CanAfford bool           `json:"can_afford"`
}

// EventWindow describes the event timing at the view instant.
// EndsAt is nil for unbounded events.
type EventWindow struct {
	StartedAt   *time.Time `json:"started_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	RemainingMs int64      `json:"remaining_ms"`
	Over        bool       `json:"over"`
}

// BuildView derives a View from eng at now. The engine is only read.
func BuildView(playerID string, eng *engine.Engine, now time.Time) View {
	cfg := eng.Config()
	v := View{
		PlayerID:      playerID,
		At:            now,
		Resources:     eng.Resources(),
		ResourceRates: eng.ResourceRates(),
		TotalDamage:   eng.TotalDamage(),
		DamageRate:    eng.DamageRate(),
		Rank:          eng.CurrentRank(),
		RankProgress:  eng.RankProgress(),
		Producers:     make([]ProducerView, 0, len(cfg.Producers)),
		Boosts:        make([]BoostView, 0, len(cfg.Boosts)),
	}
	if next, ok := eng.NextRank(); ok {
		v.NextRank = &next
	}

	for i := range cfg.Producers {
		p := &cfg.Producers[i]
		st, _ := eng.ProducerState(p.ID)
		pv := ProducerView{
			ID:              p.ID,
			Name:            p.Name,
			Produces:        p.Produces,
			Level:           st.Level,
			MaxLevel:        p.MaxLevel,
			Unlocked:        st.Unlocked,
			ProgressMs:      st.ProgressMs,
			SpawnDurationMs: eng.EffectiveSpawnDuration(p.ID),
			NextCycleInMs:   eng.TimeToNextCycle(p.ID).Milliseconds(),
			Production:      eng.CurrentProduction(p.ID),
			DamagePerCycle:  eng.CurrentDamagePerCycle(p.ID),
			CanAfford:       eng.CanUnlockOrUpgrade(p.ID),
		}
		if cost, err := eng.UpgradeCost(p.ID); err != nil {
			pv.Maxed = true
		} else {
			pv.NextCost = cost
		}
		v.Producers = append(v.Producers, pv)
	}

	for i := range cfg.Boosts {
		b := &cfg.Boosts[i]
		st, _ := eng.BoostState(b.ID)
		bv := BoostView{
			ID:        b.ID,
			Name:      b.Name,
			Kind:      string(b.Kind),
			Resource:  b.Resource,
			Level:     st.Level,
			MaxLevel:  b.MaxLevel,
			Bonus:     eng.BoostBonus(b.ID),
			CanAfford: eng.CanPurchaseBoost(b.ID),
		}
		if cost, err := eng.BoostCost(b.ID); err != nil {
			bv.Maxed = true
		} else {
			bv.NextCost = cost
		}
		v.Boosts = append(v.Boosts, bv)
	}

	v.Event = EventWindow{
		StartedAt:   eng.EventStartedAt(),
		RemainingMs: eng.TimeRemaining(now).Milliseconds(),
		Over:        eng.EventOver(now),
	}
	if end, ok := eng.EventEndsAt(); ok {
		v.Event.EndsAt = &end
	}
	return v
}
