// Package engine implements the progression simulation: the resource ledger,
// producer cycles, boost multipliers, offline catch-up and checkpoint restore.
//
// An Engine is not safe for concurrent use. Callers serialise access (see the
// session package).
package engine

import (
	"time"

	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/rank"
)

// Engine owns the runtime state of one player for one event configuration
type Engine struct {
	cfg   *domain.EventConfig
	ranks *rank.Evaluator

	producerIndex map[string]int
	boostIndex    map[string]int

	ledger         *Ledger
	producers      []domain.ProducerState
	boosts         []domain.BoostState
	totalDamage    float64
	eventStartedAt *time.Time
	lastTickAt     time.Time
}

// New creates an engine with default state. now seeds the tick clock.
func New(cfg *domain.EventConfig, now time.Time) *Engine {
	e := &Engine{
		cfg:           cfg,
		ranks:         rank.NewEvaluator(cfg.RewardTiers),
		producerIndex: make(map[string]int, len(cfg.Producers)),
		boostIndex:    make(map[string]int, len(cfg.Boosts)),
	}
	for i := range cfg.Producers {
		e.producerIndex[cfg.Producers[i].ID] = i
	}
	for i := range cfg.Boosts {
		e.boostIndex[cfg.Boosts[i].ID] = i
	}
	e.Reset(now)
	return e
}

// Reset reinitialises all runtime state to the configuration defaults
func (e *Engine) Reset(now time.Time) {
	e.ledger = NewLedger(e.cfg.Resources)
	e.producers = make([]domain.ProducerState, len(e.cfg.Producers))
	for i := range e.cfg.Producers {
		e.producers[i] = defaultProducerState(&e.cfg.Producers[i])
	}
	e.boosts = make([]domain.BoostState, len(e.cfg.Boosts))
	e.totalDamage = 0
	e.eventStartedAt = nil
	e.lastTickAt = now
}

func defaultProducerState(p *domain.Producer) domain.ProducerState {
	if p.UnlockedByDefault {
		return domain.ProducerState{Level: 1, Unlocked: true}
	}
	return domain.ProducerState{}
}

// Config returns the configuration the engine was built with
func (e *Engine) Config() *domain.EventConfig {
	return e.cfg
}

// Ledger exposes the resource ledger
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// Balance returns the quantity held of a resource
func (e *Engine) Balance(resourceID string) float64 {
	return e.ledger.Balance(resourceID)
}

// Resources returns a copy of all resource balances
func (e *Engine) Resources() map[string]float64 {
	return e.ledger.Snapshot()
}

// TotalDamage returns the cumulative damage dealt
func (e *Engine) TotalDamage() float64 {
	return e.totalDamage
}

// LastTickAt returns the timestamp of the last processed tick
func (e *Engine) LastTickAt() time.Time {
	return e.lastTickAt
}

// CurrentRank returns the reward tier reached by the total damage
func (e *Engine) CurrentRank() domain.RewardTier {
	return e.ranks.Current(e.totalDamage)
}

// NextRank returns the tier above the current one, if any
func (e *Engine) NextRank() (domain.RewardTier, bool) {
	return e.ranks.Next(e.CurrentRank())
}

// RankProgress returns the [0,1] fraction toward the next rank
func (e *Engine) RankProgress() float64 {
	return e.ranks.Progress(e.totalDamage)
}

// Tick advances every producer by elapsed and credits completed cycles
func (e *Engine) Tick(elapsed time.Duration) domain.TickReport {
	report := domain.TickReport{Elapsed: elapsed}
	if elapsed <= 0 {
		return report
	}
	elapsedMs := durationToMs(elapsed)
	speed := e.SpeedMultiplier()
	dmgMult := e.DamageMultiplier()

	for i := range e.cfg.Producers {
		ev, ok := e.tickProducer(i, elapsedMs, speed, dmgMult)
		if !ok {
			continue
		}
		report.Events = append(report.Events, ev)
		report.Damage += ev.Damage
	}
	return report
}

// AdvanceTo ticks by the time elapsed since the last tick and records now.
// A clock that moved backwards ticks nothing.
func (e *Engine) AdvanceTo(now time.Time) domain.TickReport {
	elapsed := now.Sub(e.lastTickAt)
	if elapsed < 0 {
		elapsed = 0
	}
	e.lastTickAt = now
	return e.Tick(elapsed)
}

// Clone returns a deep copy sharing only the read-only configuration
func (e *Engine) Clone() *Engine {
	c := *e
	c.ledger = e.ledger.clone()
	c.producers = append([]domain.ProducerState(nil), e.producers...)
	c.boosts = append([]domain.BoostState(nil), e.boosts...)
	if e.eventStartedAt != nil {
		t := *e.eventStartedAt
		c.eventStartedAt = &t
	}
	return &c
}

func durationToMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
