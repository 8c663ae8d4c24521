package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/osse101/TowerIdle_Go/internal/clock"
	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/engine"
)

// ErrUnboundedEvent is returned by Run for events without a duration
var ErrUnboundedEvent = errors.New("event has no duration")

// Epoch is the fixed start instant of every headless run
var Epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// ActionKind names what an action buys
type ActionKind string

// Action kinds
const (
	KindProducer ActionKind = "producer"
	KindBoost    ActionKind = "boost"
)

// Action is one purchase a strategy may choose
type Action struct {
	Kind ActionKind `json:"kind" yaml:"kind"`
	ID   string     `json:"id" yaml:"id"`
}

// Strategy picks at most one purchase for the engine at now
type Strategy interface {
	Next(eng *engine.Engine, now time.Time) (Action, bool)
}

// Purchase is one entry of a run's purchase log
type Purchase struct {
	Offset time.Duration `json:"offset"`
	Action Action        `json:"action"`
	Level  int           `json:"level"`
	Label  string        `json:"label"`
}

// Result summarises a finished run
type Result struct {
	TotalDamage float64
	Rank        domain.RewardTier
	Purchases   []Purchase
	Engine      *engine.Engine
}

// Apply performs action on eng and returns the resulting level
func Apply(eng *engine.Engine, action Action) (int, error) {
	switch action.Kind {
	case KindProducer:
		if err := eng.UnlockOrUpgrade(action.ID); err != nil {
			return 0, err
		}
		st, err := eng.ProducerState(action.ID)
		return st.Level, err
	case KindBoost:
		if err := eng.PurchaseBoost(action.ID); err != nil {
			return 0, err
		}
		st, err := eng.BoostState(action.ID)
		return st.Level, err
	default:
		return 0, fmt.Errorf("unknown action kind %q", action.Kind)
	}
}

// Label describes a purchase after it was applied
func Label(cfg *domain.EventConfig, action Action, level int) string {
	name := displayName(cfg, action)
	switch {
	case action.Kind == KindBoost:
		return fmt.Sprintf("Buy %s Lv%d", name, level)
	case level == 1:
		return fmt.Sprintf("Unlock %s", name)
	default:
		return fmt.Sprintf("Upgrade %s to Lv%d", name, level)
	}
}

func displayName(cfg *domain.EventConfig, action Action) string {
	if action.Kind == KindBoost {
		for _, b := range cfg.Boosts {
			if b.ID == action.ID && b.Name != "" {
				return b.Name
			}
		}
		return action.ID
	}
	for _, p := range cfg.Producers {
		if p.ID == action.ID && p.Name != "" {
			return p.Name
		}
	}
	return action.ID
}

// Run plays a whole event headlessly. Each step applies at most one purchase
// chosen by strategy and then advances the simulated clock by step.
func Run(cfg *domain.EventConfig, step time.Duration, strategy Strategy) (Result, error) {
	if cfg.Settings.EventDuration() <= 0 {
		return Result{}, ErrUnboundedEvent
	}
	if step <= 0 {
		return Result{}, fmt.Errorf("step must be positive, got %s", step)
	}

	clk := clock.NewSimulatedClock(Epoch)
	eng := engine.New(cfg, clk.Now())
	eng.StartEvent(clk.Now())

	var res Result
	for now := clk.Now(); !eng.EventOver(now); now = clk.Now() {
		if action, ok := strategy.Next(eng, now); ok {
			level, err := Apply(eng, action)
			if err != nil {
				return Result{}, fmt.Errorf("apply %s %s: %w", action.Kind, action.ID, err)
			}
			res.Purchases = append(res.Purchases, Purchase{
				Offset: now.Sub(Epoch),
				Action: action,
				Level:  level,
				Label:  Label(cfg, action, level),
			})
		}
		clk.Advance(step)
		eng.AdvanceTo(clk.Now())
	}

	res.TotalDamage = eng.TotalDamage()
	res.Rank = eng.CurrentRank()
	res.Engine = eng
	return res, nil
}

// Candidates lists every action in configuration order, producers first
func Candidates(cfg *domain.EventConfig) []Action {
	out := make([]Action, 0, len(cfg.Producers)+len(cfg.Boosts))
	for _, p := range cfg.Producers {
		out = append(out, Action{Kind: KindProducer, ID: p.ID})
	}
	for _, b := range cfg.Boosts {
		out = append(out, Action{Kind: KindBoost, ID: b.ID})
	}
	return out
}

// affordable reports whether action can be applied now, returning its cost
func affordable(eng *engine.Engine, action Action) (domain.CostBag, bool) {
	var (
		cost domain.CostBag
		err  error
	)
	if action.Kind == KindBoost {
		cost, err = eng.BoostCost(action.ID)
	} else {
		cost, err = eng.UpgradeCost(action.ID)
	}
	if err != nil {
		return nil, false
	}
	return cost, eng.Ledger().CanAfford(cost)
}
