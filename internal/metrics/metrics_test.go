package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/event"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/players/{playerID}/state", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{playerID}/state", "418")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b", "c"} {
		req := httptest.NewRequest(http.MethodGet, "/players/"+id+"/state", nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestMiddleware_Unmatched(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/known", func(w http.ResponseWriter, _ *http.Request) {})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, RouteUnmatched, "404")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	var f http.Flusher = rw
	f.Flush()
	assert.True(t, rec.Flushed)
	assert.Equal(t, rec, rw.Unwrap())
}

func TestResponseWriter_HijackUnsupported(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}
	_, _, err := rw.Hijack()
	assert.Error(t, err)
}

func TestEventMetricsCollector_HandleEvent(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()
	at := time.Now()

	t.Run("production", func(t *testing.T) {
		cycles := ProductionCycles.WithLabelValues("collector-imp")
		produced := ResourcesProduced.WithLabelValues("collector-gold")
		beforeCycles := testutil.ToFloat64(cycles)
		beforeProduced := testutil.ToFloat64(produced)
		beforeDamage := testutil.ToFloat64(DamageDealt)

		report := domain.TickReport{
			Events: []domain.ProductionEvent{
				{ProducerID: "collector-imp", ResourceID: "collector-gold", Cycles: 3, Produced: 6, Damage: 15},
			},
			Damage: 15,
		}
		require.NoError(t, bus.Publish(ctx, event.NewProductionEvent("p1", at, report, 15)))

		assert.Equal(t, beforeCycles+3, testutil.ToFloat64(cycles))
		assert.Equal(t, beforeProduced+6, testutil.ToFloat64(produced))
		assert.Equal(t, beforeDamage+15, testutil.ToFloat64(DamageDealt))
	})

	t.Run("purchases", func(t *testing.T) {
		ok := Purchases.WithLabelValues(event.PurchaseKindProducer, "collector-ogre", ResultSuccess)
		rejected := Purchases.WithLabelValues(event.PurchaseKindBoost, "collector-haste", ResultRejected)
		beforeOK := testutil.ToFloat64(ok)
		beforeRejected := testutil.ToFloat64(rejected)

		require.NoError(t, bus.Publish(ctx, event.NewProducerUpgradedEvent("p1", at, "collector-ogre", 1, nil)))
		require.NoError(t, bus.Publish(ctx, event.NewPurchaseRejectedEvent("p1", at, event.PurchaseKindBoost, "collector-haste", domain.ErrInsufficientFunds)))

		assert.Equal(t, beforeOK+1, testutil.ToFloat64(ok))
		assert.Equal(t, beforeRejected+1, testutil.ToFloat64(rejected))
	})

	t.Run("offline", func(t *testing.T) {
		beforeSeconds := testutil.ToFloat64(OfflineSecondsCredited)
		beforeCapped := testutil.ToFloat64(OfflineCapped)

		report := domain.OfflineReport{Gap: time.Hour, Processed: 30 * time.Minute, Capped: true}
		require.NoError(t, bus.Publish(ctx, event.NewOfflineReconciledEvent("p1", at, report)))

		assert.Equal(t, beforeSeconds+1800, testutil.ToFloat64(OfflineSecondsCredited))
		assert.Equal(t, beforeCapped+1, testutil.ToFloat64(OfflineCapped))
	})

	t.Run("checkpoints", func(t *testing.T) {
		saved := Checkpoints.WithLabelValues(ResultSuccess)
		failed := Checkpoints.WithLabelValues(ResultFailed)
		beforeSaved := testutil.ToFloat64(saved)
		beforeFailed := testutil.ToFloat64(failed)

		require.NoError(t, bus.Publish(ctx, event.NewCheckpointSavedEvent("p1", at, 128, time.Millisecond)))
		require.NoError(t, bus.Publish(ctx, event.NewCheckpointFailedEvent("p1", at, time.Millisecond, assert.AnError)))

		assert.Equal(t, beforeSaved+1, testutil.ToFloat64(saved))
		assert.Equal(t, beforeFailed+1, testutil.ToFloat64(failed))
	})

	t.Run("session lifecycle", func(t *testing.T) {
		before := testutil.ToFloat64(ActiveSessions)

		require.NoError(t, bus.Publish(ctx, event.NewSessionEvent(event.SessionStarted, "p1", at, false, "")))
		assert.Equal(t, before+1, testutil.ToFloat64(ActiveSessions))

		require.NoError(t, bus.Publish(ctx, event.NewSessionEvent(event.SessionStopped, "p1", at, false, "")))
		assert.Equal(t, before, testutil.ToFloat64(ActiveSessions))
	})

	t.Run("unexpected payload is ignored", func(t *testing.T) {
		counter := EventsPublished.WithLabelValues(string(event.ProductionCompleted))
		before := testutil.ToFloat64(counter)

		require.NoError(t, bus.Publish(ctx, event.New(event.ProductionCompleted, "p1", at, "garbage")))
		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})
}
