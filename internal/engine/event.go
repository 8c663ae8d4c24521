package engine

import "time"

// EventStartedAt returns when the event started, or nil if it has not
func (e *Engine) EventStartedAt() *time.Time {
	if e.eventStartedAt == nil {
		return nil
	}
	t := *e.eventStartedAt
	return &t
}

// StartEvent records now as the event start unless one is already set.
// It reports whether the start was recorded.
func (e *Engine) StartEvent(now time.Time) bool {
	if e.eventStartedAt != nil {
		return false
	}
	e.eventStartedAt = &now
	return true
}

// EventEndsAt returns the end of the event window. The second value is false
// when the event has not started or has no duration.
func (e *Engine) EventEndsAt() (time.Time, bool) {
	d := e.cfg.Settings.EventDuration()
	if e.eventStartedAt == nil || d <= 0 {
		return time.Time{}, false
	}
	return e.eventStartedAt.Add(d), true
}

// TimeRemaining returns how long the event has left at now, never negative.
// Unbounded or unstarted events report the full configured duration.
func (e *Engine) TimeRemaining(now time.Time) time.Duration {
	end, ok := e.EventEndsAt()
	if !ok {
		return e.cfg.Settings.EventDuration()
	}
	if remaining := end.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}

// EventOver reports whether a bounded event has ended at now
func (e *Engine) EventOver(now time.Time) bool {
	end, ok := e.EventEndsAt()
	return ok && !now.Before(end)
}
