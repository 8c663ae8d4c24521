package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/event"
	"github.com/osse101/TowerIdle_Go/internal/gameconfig"
	"github.com/osse101/TowerIdle_Go/internal/live"
	"github.com/osse101/TowerIdle_Go/internal/metrics"
)

// LoadEventConfig loads the configured event, or the embedded default when
// path is empty. The document is validated before it is returned.
func LoadEventConfig(path string) (*domain.EventConfig, error) {
	cfg, err := gameconfig.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadEventCfg, err)
	}

	slog.Info(LogMsgEventConfigReady,
		"event_id", cfg.ID,
		"resources", len(cfg.Resources),
		"producers", len(cfg.Producers),
		"boosts", len(cfg.Boosts),
		"tiers", len(cfg.RewardTiers))
	return cfg, nil
}

// InitializeEventSystem creates the in-process event bus and the live hub,
// and registers the metrics collector and live subscriber on the bus.
// The returned hub is already started.
func InitializeEventSystem() (event.Bus, *live.Hub, error) {
	bus := event.NewMemoryBus()

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	hub := live.NewHub()
	hub.Start()
	live.NewSubscriber(hub, bus).Subscribe()

	slog.Info(LogMsgEventSystemInitialized)
	return bus, hub, nil
}
