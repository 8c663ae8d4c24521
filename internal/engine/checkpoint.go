package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

// Checkpoint captures the persisted record of the engine at now
func (e *Engine) Checkpoint(now time.Time) domain.Checkpoint {
	cp := domain.Checkpoint{
		Version:          domain.CheckpointVersion,
		Resources:        e.ledger.Snapshot(),
		TotalDamage:      e.totalDamage,
		EventStartedAt:   e.EventStartedAt(),
		LastCheckpointAt: now,
		Producers:        make(map[string]domain.SavedProducer, len(e.producers)),
		Boosts:           make(map[string]domain.SavedBoost, len(e.boosts)),
	}
	for i := range e.cfg.Producers {
		cp.Producers[e.cfg.Producers[i].ID] = domain.SaveProducer(e.producers[i])
	}
	for i := range e.cfg.Boosts {
		cp.Boosts[e.cfg.Boosts[i].ID] = domain.SaveBoost(e.boosts[i])
	}
	return cp
}

// Restore resets the engine to defaults and merges a persisted record into it
// field by field. Producers and boosts missing from the record, and fields
// missing from an entry, keep their defaults; entries the configuration no
// longer knows are ignored. Levels are
// clamped to the configured range and the unlock flag follows the level.
// The tick clock is set to now. A record with impossible values returns
// ErrCorruptCheckpoint and leaves the engine at defaults.
func (e *Engine) Restore(cp domain.Checkpoint, now time.Time) error {
	e.Reset(now)
	if err := checkRecord(cp); err != nil {
		return err
	}

	for id, qty := range cp.Resources {
		e.ledger.set(id, qty)
	}
	e.totalDamage = cp.TotalDamage
	if cp.EventStartedAt != nil {
		t := *cp.EventStartedAt
		e.eventStartedAt = &t
	}

	for id, saved := range cp.Producers {
		i, ok := e.producerIndex[id]
		if !ok {
			continue
		}
		st := saved.Merge(e.producers[i])
		st.Level = clampLevel(st.Level, e.cfg.Producers[i].MaxLevel)
		st.Unlocked = st.Level > 0
		if st.Level == 0 {
			st.ProgressMs = 0
		}
		e.producers[i] = st
	}

	for id, saved := range cp.Boosts {
		i, ok := e.boostIndex[id]
		if !ok {
			continue
		}
		st := saved.Merge(e.boosts[i])
		st.Level = clampLevel(st.Level, e.cfg.Boosts[i].MaxLevel)
		e.boosts[i] = st
	}
	return nil
}

func checkRecord(cp domain.Checkpoint) error {
	if cp.Version > domain.CheckpointVersion {
		return fmt.Errorf("%w: unsupported version %d", domain.ErrCorruptCheckpoint, cp.Version)
	}
	if !validQuantity(cp.TotalDamage) {
		return fmt.Errorf("%w: total damage %v", domain.ErrCorruptCheckpoint, cp.TotalDamage)
	}
	for id, qty := range cp.Resources {
		if !validQuantity(qty) {
			return fmt.Errorf("%w: resource %s = %v", domain.ErrCorruptCheckpoint, id, qty)
		}
	}
	for id, st := range cp.Producers {
		if st.ProgressMs != nil && !validQuantity(*st.ProgressMs) {
			return fmt.Errorf("%w: producer %s progress %v", domain.ErrCorruptCheckpoint, id, *st.ProgressMs)
		}
	}
	return nil
}

func validQuantity(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampLevel(level, maxLevel int) int {
	if level < 0 {
		return 0
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}
