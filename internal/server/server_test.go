package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TowerIdle_Go/internal/checkpoint"
	"github.com/osse101/TowerIdle_Go/internal/clock"
	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/event"
	"github.com/osse101/TowerIdle_Go/internal/handler"
	"github.com/osse101/TowerIdle_Go/internal/live"
	"github.com/osse101/TowerIdle_Go/internal/session"
	"github.com/osse101/TowerIdle_Go/internal/worker"
)

func testServer(t *testing.T, apiKey string) *Server {
	t.Helper()
	pool := worker.NewPool(1, 16)
	pool.Start()
	t.Cleanup(pool.Stop)

	cfg := &domain.EventConfig{
		ID:        "server-test",
		Resources: []domain.Resource{{ID: "gold"}},
		Producers: []domain.Producer{{
			ID:                "imp",
			Produces:          "gold",
			SpawnTimeMs:       1000,
			MaxLevel:          1,
			ProductionByLevel: []float64{1},
			DamageByLevel:     []float64{1},
			UnlockedByDefault: true,
		}},
		RewardTiers: []domain.RewardTier{{Rank: 1, Label: "Bronze"}},
		Settings: domain.Settings{
			MaxOfflineDurationMs: int64(time.Hour / time.Millisecond),
			SaveIntervalMs:       int64(time.Hour / time.Millisecond),
			TickRateMs:           int64(time.Hour / time.Millisecond),
			RefreshIntervalMs:    int64(time.Hour / time.Millisecond),
			EventDurationMs:      int64(time.Hour / time.Millisecond),
		},
	}
	store := checkpoint.NewMemoryStore()
	registry := session.NewRegistry(cfg, session.Deps{
		Store: store,
		Clock: clock.NewSimulatedClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		Bus:   event.NewMemoryBus(),
		Pool:  pool,
	}, 4, 0)
	t.Cleanup(func() { _ = registry.Close(context.Background()) })

	players := handler.NewPlayerHandlers(registry, live.NewHub())
	return NewServer(Options{Port: 0, APIKey: apiKey, EventID: cfg.ID}, store, players)
}

func serve(s *Server, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	s := testServer(t, "")

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/version", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/config", http.StatusOK},
		{http.MethodPost, "/api/v1/players", http.StatusCreated},
		{http.MethodGet, "/api/v1/players/alice/state", http.StatusOK},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(s, tt.method, tt.path, nil)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestServer_APIKey(t *testing.T) {
	s := testServer(t, "s3cret")

	assert.Equal(t, http.StatusUnauthorized, serve(s, http.MethodGet, "/api/v1/config", nil).Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/api/v1/config", http.Header{HeaderAPIKey: {"s3cret"}}).Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/api/v1/config", http.Header{"x-api-key": {"s3cret"}}).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(s, http.MethodGet, "/api/v1/config", http.Header{HeaderAPIKey: {"wrong"}}).Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/healthz", nil).Code)
}

func TestServer_SecurityHeaders(t *testing.T) {
	s := testServer(t, "")
	rec := serve(s, http.MethodGet, "/api/v1/config", nil)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := loggingMiddleware(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/config", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/config", nil))
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Empty(t, rec.Header().Get(HeaderRequestID), "probe paths are not tagged")
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/config", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, RedactedValue)
}
