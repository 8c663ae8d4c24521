package domain

import "time"

// ProducerState is the mutable runtime state of one producer.
// Unlocked is always equal to Level > 0.
type ProducerState struct {
	Level      int     `json:"level"`
	Unlocked   bool    `json:"unlocked"`
	ProgressMs float64 `json:"progress_ms"`
}

// BoostState is the mutable runtime state of one boost
type BoostState struct {
	Level int `json:"level"`
}

// CheckpointVersion is bumped when the persisted layout changes incompatibly
const CheckpointVersion = 1

// Checkpoint is the flat persisted record of an engine
type Checkpoint struct {
	Version          int                      `json:"version"`
	Resources        map[string]float64       `json:"resources"`
	TotalDamage      float64                  `json:"total_damage"`
	EventStartedAt   *time.Time               `json:"event_started_at"`
	LastCheckpointAt time.Time                `json:"last_checkpoint_at"`
	Producers        map[string]SavedProducer `json:"producers"`
	Boosts           map[string]SavedBoost    `json:"boosts"`
}

// SavedProducer is one producer entry of a checkpoint. A nil field was absent
// from the stored record and keeps its default on restore.
type SavedProducer struct {
	Level      *int     `json:"level,omitempty"`
	Unlocked   *bool    `json:"unlocked,omitempty"`
	ProgressMs *float64 `json:"progress_ms,omitempty"`
}

// SaveProducer records every field of st
func SaveProducer(st ProducerState) SavedProducer {
	level, unlocked, progress := st.Level, st.Unlocked, st.ProgressMs
	return SavedProducer{Level: &level, Unlocked: &unlocked, ProgressMs: &progress}
}

// Merge overlays the stored fields on def. A record holding only the unlock
// flag moves a locked default to level 1, or an unlocked one to level 0.
func (s SavedProducer) Merge(def ProducerState) ProducerState {
	st := def
	if s.Level != nil {
		st.Level = *s.Level
	} else if s.Unlocked != nil {
		switch {
		case *s.Unlocked && st.Level < 1:
			st.Level = 1
		case !*s.Unlocked:
			st.Level = 0
		}
	}
	if s.Unlocked != nil {
		st.Unlocked = *s.Unlocked
	}
	if s.ProgressMs != nil {
		st.ProgressMs = *s.ProgressMs
	}
	return st
}

// SavedBoost is one boost entry of a checkpoint
type SavedBoost struct {
	Level *int `json:"level,omitempty"`
}

// SaveBoost records every field of st
func SaveBoost(st BoostState) SavedBoost {
	level := st.Level
	return SavedBoost{Level: &level}
}

// Merge overlays the stored fields on def
func (s SavedBoost) Merge(def BoostState) BoostState {
	st := def
	if s.Level != nil {
		st.Level = *s.Level
	}
	return st
}
