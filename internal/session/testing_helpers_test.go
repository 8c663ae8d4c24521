package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/TowerIdle_Go/internal/checkpoint"
	"github.com/osse101/TowerIdle_Go/internal/clock"
	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/engine"
	"github.com/osse101/TowerIdle_Go/internal/event"
	"github.com/osse101/TowerIdle_Go/internal/repository"
	"github.com/osse101/TowerIdle_Go/internal/worker"
)

const testPlayer = "player-1"

var testStart = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// testConfig keeps scheduled intervals long so tests drive the callbacks directly
func testConfig() *domain.EventConfig {
	return &domain.EventConfig{
		ID:        "test",
		Resources: []domain.Resource{{ID: "gold"}, {ID: "gems"}},
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
				UpgradeCosts:      []domain.CostBag{{"gems": 5}},
			},
		},
		Boosts: []domain.Boost{
			{
				ID:           "haste",
				Kind:         domain.BoostKindSpeed,
				MaxLevel:     1,
				BonusByLevel: []float64{0.5},
				Costs:        []domain.CostBag{{"gold": 2}},
			},
		},
		RewardTiers: []domain.RewardTier{
			{Rank: 3, DamageThreshold: 0, Label: "Bronze"},
			{Rank: 2, DamageThreshold: 100, Label: "Silver"},
			{Rank: 1, DamageThreshold: 1000, Label: "Gold"},
		},
		Settings: domain.Settings{
			MaxOfflineDurationMs: 100000,
			SaveIntervalMs:       int64(time.Hour / time.Millisecond),
			TickRateMs:           int64(time.Hour / time.Millisecond),
			RefreshIntervalMs:    int64(time.Hour / time.Millisecond),
			EventDurationMs:      int64(time.Hour / time.Millisecond),
		},
	}
}

// recorder captures every event published on the bus
type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func newRecorder(bus event.Bus) *recorder {
	r := &recorder{}
	event.SubscribeAll(bus, event.AllTypes, func(_ context.Context, e event.Event) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, e)
		return nil
	})
	return r
}

func (r *recorder) ofType(t event.Type) []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	clock    *clock.SimulatedClock
	store    *checkpoint.MemoryStore
	bus      *event.MemoryBus
	recorder *recorder
	pool     *worker.Pool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bus := event.NewMemoryBus()
	pool := worker.NewPool(1, 16)
	pool.Start()
	t.Cleanup(pool.Stop)
	return &fixture{
		clock:    clock.NewSimulatedClock(testStart),
		store:    checkpoint.NewMemoryStore(),
		bus:      bus,
		recorder: newRecorder(bus),
		pool:     pool,
	}
}

func (f *fixture) deps() Deps {
	return f.depsWithStore(f.store)
}

func (f *fixture) depsWithStore(store repository.CheckpointStore) Deps {
	return Deps{Store: store, Clock: f.clock, Bus: f.bus, Pool: f.pool}
}

// startSession starts a session and stops it at test end
func (f *fixture) startSession(t *testing.T) *Session {
	t.Helper()
	s := New(testPlayer, testConfig(), f.deps())
	require.NoError(t, s.Start(context.Background()))
	t.Cleanup(func() { _ = s.Stop(context.Background()) })
	return s
}

// seed stores a checkpoint built by mutate, saved at savedAt
func (f *fixture) seed(t *testing.T, savedAt time.Time, mutate func(e *engine.Engine)) {
	t.Helper()
	eng := engine.New(testConfig(), savedAt)
	eng.StartEvent(savedAt)
	if mutate != nil {
		mutate(eng)
	}
	data, err := checkpoint.Encode(eng.Checkpoint(savedAt))
	require.NoError(t, err)
	require.NoError(t, f.store.Save(context.Background(), testPlayer, data, savedAt))
}
