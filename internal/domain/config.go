package domain

import "time"

// CostBag maps a resource ID to the quantity required. Absent keys cost nothing.
type CostBag map[string]float64

// Total returns the sum of all quantities in the bag
func (c CostBag) Total() float64 {
	var total float64
	for _, qty := range c {
		total += qty
	}
	return total
}

// BoostKind selects which producer stat a boost modulates
type BoostKind string

// Boost kinds
const (
	BoostKindProductionBonus BoostKind = "production-bonus"
	BoostKindSpeed           BoostKind = "speed"
	BoostKindDamage          BoostKind = "damage"
)

// Resource is a kind of currency accumulated in the ledger
type Resource struct {
	ID   string `json:"id" yaml:"id" validate:"required,max=64"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Producer is an upgradeable entity that completes production cycles.
// ProductionByLevel and DamageByLevel are indexed by level-1.
type Producer struct {
	ID                string    `json:"id" yaml:"id" validate:"required,max=64"`
	Name              string    `json:"name,omitempty" yaml:"name,omitempty"`
	Produces          string    `json:"produces" yaml:"produces" validate:"required"`
	SpawnTimeMs       float64   `json:"spawn_time_ms" yaml:"spawn_time_ms" validate:"gt=0"`
	MaxLevel          int       `json:"max_level" yaml:"max_level" validate:"min=1"`
	ProductionByLevel []float64 `json:"production_by_level" yaml:"production_by_level" validate:"required,dive,gte=0"`
	DamageByLevel     []float64 `json:"damage_by_level" yaml:"damage_by_level" validate:"required,dive,gte=0"`
	UnlockedByDefault bool      `json:"unlocked_by_default" yaml:"unlocked_by_default"`
	// UnlockCost is nil when unlocking is free.
	UnlockCost   CostBag   `json:"unlock_cost,omitempty" yaml:"unlock_cost,omitempty"`
	UpgradeCosts []CostBag `json:"upgrade_costs" yaml:"upgrade_costs"`
}

// Boost is a purchasable multiplier with exactly one kind
type Boost struct {
	ID           string    `json:"id" yaml:"id" validate:"required,max=64"`
	Name         string    `json:"name,omitempty" yaml:"name,omitempty"`
	Kind         BoostKind `json:"kind" yaml:"kind" validate:"required,oneof=production-bonus speed damage"`
	Resource     string    `json:"resource,omitempty" yaml:"resource,omitempty" validate:"required_if=Kind production-bonus"`
	MaxLevel     int       `json:"max_level" yaml:"max_level" validate:"min=1"`
	BonusByLevel []float64 `json:"bonus_by_level" yaml:"bonus_by_level" validate:"required,dive,gte=0"`
	Costs        []CostBag `json:"costs" yaml:"costs"`
}

// RewardTier is one step of the rank ladder. Rank 1 is the best tier.
type RewardTier struct {
	Rank            int     `json:"rank" yaml:"rank" validate:"min=1"`
	DamageThreshold float64 `json:"damage_threshold" yaml:"damage_threshold" validate:"gte=0"`
	Label           string  `json:"label" yaml:"label"`
}

// Settings holds the timing knobs of an event
type Settings struct {
	MaxOfflineDurationMs int64 `json:"max_offline_duration_ms" yaml:"max_offline_duration_ms" validate:"gte=0"`
	SaveIntervalMs       int64 `json:"save_interval_ms" yaml:"save_interval_ms" validate:"gt=0"`
	TickRateMs           int64 `json:"tick_rate_ms" yaml:"tick_rate_ms" validate:"gt=0"`
	RefreshIntervalMs    int64 `json:"refresh_interval_ms" yaml:"refresh_interval_ms" validate:"gte=0"`
	// EventDurationMs of 0 means the event never ends.
	EventDurationMs int64 `json:"event_duration_ms" yaml:"event_duration_ms" validate:"gte=0"`
}

// MaxOfflineDuration returns the offline catch-up cap
func (s Settings) MaxOfflineDuration() time.Duration {
	return time.Duration(s.MaxOfflineDurationMs) * time.Millisecond
}

// SaveInterval returns the checkpoint period
func (s Settings) SaveInterval() time.Duration {
	return time.Duration(s.SaveIntervalMs) * time.Millisecond
}

// TickInterval returns the simulation tick period
func (s Settings) TickInterval() time.Duration {
	return time.Duration(s.TickRateMs) * time.Millisecond
}

// RefreshInterval returns the display refresh period, defaulting to one second
func (s Settings) RefreshInterval() time.Duration {
	if s.RefreshIntervalMs <= 0 {
		return time.Second
	}
	return time.Duration(s.RefreshIntervalMs) * time.Millisecond
}

// EventDuration returns the event length (0 = unbounded)
func (s Settings) EventDuration() time.Duration {
	return time.Duration(s.EventDurationMs) * time.Millisecond
}

// EventConfig is the full declarative description of one event.
// The engine treats it as read-only.
type EventConfig struct {
	ID          string       `json:"id" yaml:"id" validate:"required"`
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Resources   []Resource   `json:"resources" yaml:"resources" validate:"required,min=1,dive"`
	Producers   []Producer   `json:"producers" yaml:"producers" validate:"required,min=1,dive"`
	Boosts      []Boost      `json:"boosts,omitempty" yaml:"boosts,omitempty" validate:"dive"`
	RewardTiers []RewardTier `json:"reward_tiers" yaml:"reward_tiers" validate:"required,min=1,dive"`
	Settings    Settings     `json:"settings" yaml:"settings"`
}
