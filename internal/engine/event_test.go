package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventWindow(t *testing.T) {
	e := newTestEngine()
	hour := time.Hour

	assert.Equal(t, hour, e.TimeRemaining(testStart))
	assert.False(t, e.EventOver(testStart.Add(10*hour)))
	_, ok := e.EventEndsAt()
	assert.False(t, ok)

	require.True(t, e.StartEvent(testStart))
	assert.False(t, e.StartEvent(testStart.Add(time.Minute)))
	assert.Equal(t, testStart, *e.EventStartedAt())

	end, ok := e.EventEndsAt()
	require.True(t, ok)
	assert.Equal(t, testStart.Add(hour), end)
	assert.Equal(t, 45*time.Minute, e.TimeRemaining(testStart.Add(15*time.Minute)))
	assert.False(t, e.EventOver(testStart.Add(59*time.Minute)))
	assert.True(t, e.EventOver(end))
	assert.Zero(t, e.TimeRemaining(end.Add(time.Minute)))
}

func TestEventOver_StillAccrues(t *testing.T) {
	e := newTestEngine()
	e.StartEvent(testStart)

	e.AdvanceTo(testStart.Add(2 * time.Hour))

	assert.True(t, e.EventOver(e.LastTickAt()))
	assert.Equal(t, 1440.0, e.Balance("gold"))
}

func TestEventStartedAt_ReturnsCopy(t *testing.T) {
	e := newTestEngine()
	e.StartEvent(testStart)

	got := e.EventStartedAt()
	*got = got.Add(time.Hour)

	assert.Equal(t, testStart, *e.EventStartedAt())
}

func TestUnboundedEvent(t *testing.T) {
	cfg := testConfig()
	cfg.Settings.EventDurationMs = 0
	e := New(cfg, testStart)
	e.StartEvent(testStart)

	assert.False(t, e.EventOver(testStart.Add(1000*time.Hour)))
	assert.Zero(t, e.TimeRemaining(testStart))
}
