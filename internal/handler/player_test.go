package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TowerIdle_Go/internal/checkpoint"
	"github.com/osse101/TowerIdle_Go/internal/clock"
	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/event"
	"github.com/osse101/TowerIdle_Go/internal/session"
	"github.com/osse101/TowerIdle_Go/internal/worker"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func testEventConfig() *domain.EventConfig {
	hour := int64(time.Hour / time.Millisecond)
	return &domain.EventConfig{
		ID:        "handler-test",
		Resources: []domain.Resource{{ID: "gold"}},
		Producers: []domain.Producer{
			{
				ID:                "imp",
				Produces:          "gold",
				SpawnTimeMs:       5000,
				MaxLevel:          2,
				ProductionByLevel: []float64{1, 2},
				DamageByLevel:     []float64{5, 10},
				UnlockedByDefault: true,
				UpgradeCosts:      []domain.CostBag{{"gold": 5}},
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
		RewardTiers: []domain.RewardTier{{Rank: 1, DamageThreshold: 0, Label: "Bronze"}},
		Settings: domain.Settings{
			MaxOfflineDurationMs: hour,
			SaveIntervalMs:       hour,
			TickRateMs:           hour,
			RefreshIntervalMs:    hour,
			EventDurationMs:      hour,
		},
	}
}

// fakeStreamer records which transport was asked to serve whom
type fakeStreamer struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeStreamer) ServeSSE(w http.ResponseWriter, _ *http.Request, playerID string, _ interface{}) {
	f.record("sse:" + playerID)
	w.WriteHeader(http.StatusOK)
}

func (f *fakeStreamer) ServeWebSocket(w http.ResponseWriter, _ *http.Request, playerID string, _ interface{}) {
	f.record("ws:" + playerID)
	w.WriteHeader(http.StatusSwitchingProtocols)
}

func (f *fakeStreamer) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

type testAPI struct {
	router   chi.Router
	store    *checkpoint.MemoryStore
	streamer *fakeStreamer
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	pool := worker.NewPool(1, 16)
	pool.Start()
	t.Cleanup(pool.Stop)

	store := checkpoint.NewMemoryStore()
	deps := session.Deps{
		Store: store,
		Clock: clock.NewSimulatedClock(testNow),
		Bus:   event.NewMemoryBus(),
		Pool:  pool,
	}
	registry := session.NewRegistry(testEventConfig(), deps, 8, 0)
	t.Cleanup(func() { _ = registry.Close(context.Background()) })

	streamer := &fakeStreamer{}
	r := chi.NewRouter()
	r.Route("/api/v1", NewPlayerHandlers(registry, streamer).Routes)
	return &testAPI{router: r, store: store, streamer: streamer}
}

// seed saves a checkpoint for playerID holding gold
func (a *testAPI) seed(t *testing.T, playerID string, gold float64, savedAt time.Time) {
	t.Helper()
	data, err := checkpoint.Encode(domain.Checkpoint{
		Version:          domain.CheckpointVersion,
		Resources:        map[string]float64{"gold": gold},
		LastCheckpointAt: savedAt,
	})
	require.NoError(t, err)
	require.NoError(t, a.store.Save(context.Background(), playerID, data, savedAt))
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHandleCreatePlayer(t *testing.T) {
	t.Run("generates an ID", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(http.MethodPost, "/api/v1/players", "")

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decode[CreatePlayerResponse](t, w)
		assert.NotEmpty(t, resp.PlayerID)
		assert.Equal(t, resp.PlayerID, resp.State.PlayerID)
		assert.Equal(t, 0.0, resp.State.Resources["gold"])
	})

	t.Run("uses the requested ID", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(http.MethodPost, "/api/v1/players", `{"player_id":"alice"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "alice", decode[CreatePlayerResponse](t, w).PlayerID)
	})

	t.Run("rejects an invalid ID", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(http.MethodPost, "/api/v1/players", `{"player_id":"alice smith"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[ValidationErrorResponse](t, w)
		assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
		assert.Contains(t, resp.Fields, "playerid")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(http.MethodPost, "/api/v1/players", `{"player_id":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}

func TestHandleGetState(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "bob", 7, testNow)

	w := api.do(http.MethodGet, "/api/v1/players/bob/state", "")

	require.Equal(t, http.StatusOK, w.Code)
	view := decode[session.View](t, w)
	assert.Equal(t, "bob", view.PlayerID)
	assert.Equal(t, 7.0, view.Resources["gold"])
	require.Len(t, view.Producers, 1)
	assert.True(t, view.Producers[0].CanAfford)
	assert.Equal(t, "Bronze", view.Rank.Label)
}

func TestHandleGetState_InvalidPlayerID(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/players/-bob/state", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ValidationErrorResponse](t, w)
	assert.Equal(t, ErrMsgInvalidPlayerID, resp.Error)
	assert.Contains(t, resp.Fields, "playerID")
}

func TestHandleUpgradeProducer(t *testing.T) {
	t.Run("upgrades when affordable", func(t *testing.T) {
		api := newTestAPI(t)
		api.seed(t, "bob", 5, testNow)

		w := api.do(http.MethodPost, "/api/v1/players/bob/producers/imp/upgrade", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[UpgradeResponse](t, w)
		assert.Equal(t, 2, resp.Producer.Level)
		assert.Equal(t, 0.0, resp.State.Resources["gold"])
	})

	t.Run("insufficient funds is a conflict", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(http.MethodPost, "/api/v1/players/bob/producers/imp/upgrade", "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInsufficientFundsErr)
	})

	t.Run("max level is a conflict", func(t *testing.T) {
		api := newTestAPI(t)
		api.seed(t, "bob", 50, testNow)

		require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/v1/players/bob/producers/imp/upgrade", "").Code)
		w := api.do(http.MethodPost, "/api/v1/players/bob/producers/imp/upgrade", "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMaxLevelError)
	})

	t.Run("unknown producer is not found", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(http.MethodPost, "/api/v1/players/bob/producers/dragon/upgrade", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUnknownProducerError)
	})
}

func TestHandlePurchaseBoost(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "bob", 10, testNow)

	w := api.do(http.MethodPost, "/api/v1/players/bob/boosts/haste/purchase", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[BoostResponse](t, w)
	assert.Equal(t, 1, resp.Boost.Level)
	assert.Equal(t, 8.0, resp.State.Resources["gold"])
	require.Len(t, resp.State.Boosts, 1)
	assert.Equal(t, 0.5, resp.State.Boosts[0].Bonus)

	w = api.do(http.MethodPost, "/api/v1/players/bob/boosts/haste/purchase", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPost, "/api/v1/players/bob/boosts/fury/purchase", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgUnknownBoostError)
}

func TestHandleGetOffline(t *testing.T) {
	t.Run("reports the reconciled gap", func(t *testing.T) {
		api := newTestAPI(t)
		api.seed(t, "bob", 0, testNow.Add(-12*time.Second))

		w := api.do(http.MethodGet, "/api/v1/players/bob/offline", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[OfflineResponse](t, w)
		assert.Equal(t, int64(12000), resp.GapMs)
		assert.Equal(t, int64(12000), resp.ProcessedMs)
		assert.False(t, resp.Capped)
		assert.Equal(t, 2.0, resp.Resources["gold"])
		assert.Equal(t, 10.0, resp.Damage)
	})

	t.Run("fresh players have no report", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(http.MethodGet, "/api/v1/players/newbie/offline", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNoOfflineReport)
	})
}

func TestHandleReset(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "bob", 40, testNow)

	w := api.do(http.MethodPost, "/api/v1/players/bob/reset", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	view := decode[session.View](t, w)
	assert.Equal(t, 0.0, view.Resources["gold"])

	_, err := api.store.Load(context.Background(), "bob")
	assert.ErrorIs(t, err, domain.ErrCheckpointNotFound)
}

func TestHandleGetConfig(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/config", "")

	require.Equal(t, http.StatusOK, w.Code)
	cfg := decode[domain.EventConfig](t, w)
	assert.Equal(t, "handler-test", cfg.ID)
	assert.Len(t, cfg.Producers, 1)
}

func TestHandleStreams(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/v1/players/bob/events", "").Code)
	assert.Equal(t, http.StatusSwitchingProtocols, api.do(http.MethodGet, "/api/v1/players/bob/ws", "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/v1/players/b%20b/events", "").Code)

	assert.Equal(t, []string{"sse:bob", "ws:bob"}, api.streamer.calls)
}
