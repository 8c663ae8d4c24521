// Package session runs one player's engine: it restores the persisted record,
// credits offline time, drives the periodic tick, refresh and checkpoint
// callbacks on a shared worker pool, and serialises every access to the engine.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/TowerIdle_Go/internal/checkpoint"
	"github.com/osse101/TowerIdle_Go/internal/clock"
	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/engine"
	"github.com/osse101/TowerIdle_Go/internal/event"
	"github.com/osse101/TowerIdle_Go/internal/logger"
	"github.com/osse101/TowerIdle_Go/internal/metrics"
	"github.com/osse101/TowerIdle_Go/internal/repository"
	"github.com/osse101/TowerIdle_Go/internal/scheduler"
	"github.com/osse101/TowerIdle_Go/internal/worker"
)

// Deps are the collaborators shared by every session
type Deps struct {
	Store repository.CheckpointStore
	Clock clock.Clock
	Bus   event.Bus
	Pool  *worker.Pool
}

type state int

const (
	stateIdle state = iota
	stateRunning
	stateStopped
)

// Session owns one engine and its lifecycle. All methods are safe for concurrent use.
type Session struct {
	playerID string
	cfg      *domain.EventConfig
	deps     Deps

	mu        sync.Mutex
	state     state
	eng       *engine.Engine
	sched     *scheduler.Scheduler
	offline   *domain.OfflineReport
	restored  bool
	rank      domain.RewardTier
	endPosted bool
}

// New creates a session that has not been started
func New(playerID string, cfg *domain.EventConfig, deps Deps) *Session {
	if deps.Clock == nil {
		deps.Clock = clock.NewRealClock()
	}
	return &Session{
		playerID: playerID,
		cfg:      cfg,
		deps:     deps,
		eng:      engine.New(cfg, deps.Clock.Now()),
	}
}

// PlayerID returns the player this session belongs to
func (s *Session) PlayerID() string {
	return s.playerID
}

// Start loads and restores the player's checkpoint, credits offline time once,
// starts the event window if it has not started, and schedules the periodic
// callbacks. An unreadable checkpoint is discarded and the session starts fresh.
// Starting a running session is a no-op; a stopped session cannot be restarted.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateRunning:
		return nil
	case stateStopped:
		return domain.ErrSessionStopped
	}

	ctx = logger.WithPlayerID(ctx, s.playerID)
	log := logger.FromContext(ctx)
	now := s.deps.Clock.Now()
	s.eng.Reset(now)

	payload, err := s.deps.Store.Load(ctx, s.playerID)
	switch {
	case errors.Is(err, domain.ErrCheckpointNotFound):
	case err != nil:
		return fmt.Errorf("%s: %w", ErrMsgLoadCheckpointFailed, err)
	default:
		s.restore(ctx, payload, now)
	}

	s.eng.StartEvent(now)
	s.rank = s.eng.CurrentRank()
	s.schedule()
	s.state = stateRunning

	log.Info(LogMsgSessionStarted, "restored", s.restored, "rank", s.rank.Label)
	s.publish(ctx, event.NewSessionEvent(event.SessionStarted, s.playerID, now, s.restored, ""))
	s.checkEventEnd(ctx, now)
	return nil
}

// restore applies a stored payload and credits the offline gap.
// Restore sets levels and boosts before reconciling so multipliers are correct.
func (s *Session) restore(ctx context.Context, payload []byte, now time.Time) {
	log := logger.FromContext(ctx)

	cp, err := checkpoint.Decode(payload)
	if err == nil {
		err = s.eng.Restore(cp, now)
	}
	if err != nil {
		log.Warn(LogMsgCheckpointCorrupt, "error", err)
		s.eng.Reset(now)
		s.publish(ctx, event.NewCheckpointDiscardedEvent(s.playerID, now, err))
		return
	}

	s.restored = true
	report := s.eng.ReconcileOffline(now.Sub(cp.LastCheckpointAt))
	s.offline = &report
	if report.Processed > 0 {
		log.Info(LogMsgOfflineReconciled,
			"gap", report.Gap,
			"processed", report.Processed,
			"capped", report.Capped,
			"damage", report.Damage)
	}
	s.publish(ctx, event.NewOfflineReconciledEvent(s.playerID, now, report))
}

// schedule registers the session's callbacks on a fresh scheduler
func (s *Session) schedule() {
	st := s.cfg.Settings
	s.sched = scheduler.New(s.deps.Pool)
	s.sched.Schedule(JobTick, st.TickInterval(), worker.JobFunc(s.runTick))
	s.sched.Schedule(JobRefresh, st.RefreshInterval(), worker.JobFunc(s.runRefresh))
	s.sched.Schedule(JobCheckpoint, st.SaveInterval(), worker.JobFunc(s.runCheckpoint))

	if end, ok := s.eng.EventEndsAt(); ok {
		if wait := end.Sub(s.deps.Clock.Now()); wait > 0 {
			s.sched.After(JobEventEnd, wait, worker.JobFunc(s.runEventEnd))
		}
	}
}

// Stop deregisters the callbacks and saves one final checkpoint.
// Callbacks already queued find the session stopped and do nothing.
func (s *Session) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateRunning {
		s.state = stateStopped
		return nil
	}
	s.state = stateStopped
	s.sched.Stop()

	ctx = logger.WithPlayerID(ctx, s.playerID)
	s.advance(ctx, s.deps.Clock.Now())
	err := s.save(ctx)

	logger.FromContext(ctx).Info(LogMsgSessionStopped, "total_damage", s.eng.TotalDamage())
	s.publish(ctx, event.NewSessionEvent(event.SessionStopped, s.playerID, s.deps.Clock.Now(), s.restored, ReasonStopped))
	return err
}

// Reset deletes the persisted record and reinitialises the engine with the
// event starting now. Nothing is persisted until the next checkpoint.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateRunning {
		return domain.ErrSessionStopped
	}

	ctx = logger.WithPlayerID(ctx, s.playerID)
	if err := s.deps.Store.Delete(ctx, s.playerID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDeleteCheckpointFailed, err)
	}

	now := s.deps.Clock.Now()
	s.eng.Reset(now)
	s.eng.StartEvent(now)
	s.offline = nil
	s.restored = false
	s.rank = s.eng.CurrentRank()
	s.endPosted = false

	// The event-end timer belongs to the old window
	s.sched.Stop()
	s.schedule()

	logger.FromContext(ctx).Info(LogMsgSessionReset)
	s.publish(ctx, event.NewSessionEvent(event.SessionReset, s.playerID, now, false, ReasonReset))
	return nil
}

// UpgradeProducer unlocks or upgrades a producer and returns its new state
func (s *Session) UpgradeProducer(ctx context.Context, producerID string) (domain.ProducerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateRunning {
		return domain.ProducerState{}, domain.ErrSessionStopped
	}

	ctx = logger.WithPlayerID(ctx, s.playerID)
	now := s.deps.Clock.Now()
	cost, _ := s.eng.UpgradeCost(producerID)
	if err := s.eng.UnlockOrUpgrade(producerID); err != nil {
		s.publish(ctx, event.NewPurchaseRejectedEvent(s.playerID, now, event.PurchaseKindProducer, producerID, err))
		return domain.ProducerState{}, err
	}

	st, _ := s.eng.ProducerState(producerID)
	s.publish(ctx, event.NewProducerUpgradedEvent(s.playerID, now, producerID, st.Level, cost))
	return st, nil
}

// PurchaseBoost buys the next level of a boost and returns its new state
func (s *Session) PurchaseBoost(ctx context.Context, boostID string) (domain.BoostState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateRunning {
		return domain.BoostState{}, domain.ErrSessionStopped
	}

	ctx = logger.WithPlayerID(ctx, s.playerID)
	now := s.deps.Clock.Now()
	cost, _ := s.eng.BoostCost(boostID)
	if err := s.eng.PurchaseBoost(boostID); err != nil {
		s.publish(ctx, event.NewPurchaseRejectedEvent(s.playerID, now, event.PurchaseKindBoost, boostID, err))
		return domain.BoostState{}, err
	}

	st, _ := s.eng.BoostState(boostID)
	kind := s.boostKind(boostID)
	s.publish(ctx, event.NewBoostPurchasedEvent(s.playerID, now, boostID, kind, st.Level, cost))
	return st, nil
}

func (s *Session) boostKind(boostID string) domain.BoostKind {
	for i := range s.cfg.Boosts {
		if s.cfg.Boosts[i].ID == boostID {
			return s.cfg.Boosts[i].Kind
		}
	}
	return ""
}

// View returns the derived read view at the current clock time
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildView(s.playerID, s.eng, s.deps.Clock.Now())
}

// Offline returns the report of the offline credit applied at start, if any
func (s *Session) Offline() (domain.OfflineReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offline == nil {
		return domain.OfflineReport{}, false
	}
	return *s.offline, true
}

// Running reports whether the session's callbacks are active
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateRunning
}

// Checkpoint returns the record the session would persist now
func (s *Session) Checkpoint() domain.Checkpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Checkpoint(s.deps.Clock.Now())
}

// runTick advances the engine to the clock's now
func (s *Session) runTick(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateRunning {
		return nil
	}
	ctx = logger.WithPlayerID(ctx, s.playerID)
	now := s.deps.Clock.Now()
	s.advance(ctx, now)
	s.checkEventEnd(ctx, now)
	return nil
}

// runRefresh publishes the current view for presentation
func (s *Session) runRefresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateRunning {
		return nil
	}
	ctx = logger.WithPlayerID(ctx, s.playerID)
	now := s.deps.Clock.Now()
	s.publish(ctx, event.New(event.StateRefreshed, s.playerID, now, BuildView(s.playerID, s.eng, now)))
	return nil
}

// runCheckpoint persists the current state
func (s *Session) runCheckpoint(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateRunning {
		return nil
	}
	return s.save(logger.WithPlayerID(ctx, s.playerID))
}

// runEventEnd announces the end of the event window
func (s *Session) runEventEnd(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateRunning {
		return nil
	}
	s.checkEventEnd(logger.WithPlayerID(ctx, s.playerID), s.deps.Clock.Now())
	return nil
}

// advance ticks the engine and publishes production and rank changes. Caller holds mu.
func (s *Session) advance(ctx context.Context, now time.Time) {
	started := time.Now()
	report := s.eng.AdvanceTo(now)
	metrics.TickDuration.Observe(time.Since(started).Seconds())

	if len(report.Events) > 0 {
		s.publish(ctx, event.NewProductionEvent(s.playerID, now, report, s.eng.TotalDamage()))
	}

	if current := s.eng.CurrentRank(); current.Rank != s.rank.Rank {
		s.publish(ctx, event.NewRankChangedEvent(s.playerID, now, s.rank, current, s.eng.TotalDamage()))
		s.rank = current
	}
}

// checkEventEnd publishes event.ended once per window. Caller holds mu.
func (s *Session) checkEventEnd(ctx context.Context, now time.Time) {
	if s.endPosted || !s.eng.EventOver(now) {
		return
	}
	s.endPosted = true
	logger.FromContext(ctx).Info(LogMsgEventEnded, "rank", s.rank.Label, "total_damage", s.eng.TotalDamage())
	s.publish(ctx, event.NewEventEndedEvent(s.playerID, now, s.rank, s.eng.TotalDamage()))
}

// save encodes and stores a checkpoint. Caller holds mu.
func (s *Session) save(ctx context.Context) error {
	log := logger.FromContext(ctx)
	now := s.deps.Clock.Now()
	started := time.Now()

	data, err := checkpoint.Encode(s.eng.Checkpoint(now))
	if err != nil {
		err = fmt.Errorf("%s: %w", ErrMsgEncodeCheckpointFailed, err)
	} else if saveErr := s.deps.Store.Save(ctx, s.playerID, data, now); saveErr != nil {
		err = fmt.Errorf("%s: %w", ErrMsgSaveCheckpointFailed, saveErr)
	}

	took := time.Since(started)
	if err != nil {
		log.Error(LogMsgCheckpointFailed, "error", err)
		s.publish(ctx, event.NewCheckpointFailedEvent(s.playerID, now, took, err))
		return err
	}

	log.Debug(LogMsgCheckpointSaved, "bytes", len(data), "duration", took)
	s.publish(ctx, event.NewCheckpointSavedEvent(s.playerID, now, len(data), took))
	return nil
}

func (s *Session) publish(ctx context.Context, evt event.Event) {
	if s.deps.Bus == nil {
		return
	}
	if err := s.deps.Bus.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
