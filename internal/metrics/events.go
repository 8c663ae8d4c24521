package metrics

import (
	"context"

	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/event"
	"github.com/osse101/TowerIdle_Go/internal/logger"
)

// EventMetricsCollector subscribes to session events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all session events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, event.AllTypes, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ProductionCompleted:
		payload, err := event.DecodePayload[event.ProductionPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		for _, pe := range payload.Events {
			ProductionCycles.WithLabelValues(pe.ProducerID).Add(float64(pe.Cycles))
			ResourcesProduced.WithLabelValues(pe.ResourceID).Add(pe.Produced)
		}
		DamageDealt.Add(payload.Damage)

	case event.ProducerUpgraded:
		if payload, ok := evt.Payload.(event.ProducerUpgradedPayloadV1); ok {
			Purchases.WithLabelValues(event.PurchaseKindProducer, payload.ProducerID, ResultSuccess).Inc()
		}

	case event.BoostPurchased:
		if payload, ok := evt.Payload.(event.BoostPurchasedPayloadV1); ok {
			Purchases.WithLabelValues(event.PurchaseKindBoost, payload.BoostID, ResultSuccess).Inc()
		}

	case event.PurchaseRejected:
		if payload, ok := evt.Payload.(event.PurchaseRejectedPayloadV1); ok {
			Purchases.WithLabelValues(payload.Kind, payload.ItemID, ResultRejected).Inc()
		}

	case event.RankChanged:
		if payload, ok := evt.Payload.(event.RankChangedPayloadV1); ok {
			RankChanges.WithLabelValues(payload.To.Label).Inc()
		}

	case event.EventEnded:
		EventsEnded.Inc()

	case event.OfflineReconciled:
		report, err := event.DecodePayload[domain.OfflineReport](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		OfflineSecondsCredited.Add(report.Processed.Seconds())
		if report.Capped {
			OfflineCapped.Inc()
		}
		// Offline damage never passes through a tick
		DamageDealt.Add(report.Damage)

	case event.CheckpointSaved:
		Checkpoints.WithLabelValues(ResultSuccess).Inc()
		if payload, ok := evt.Payload.(event.CheckpointPayloadV1); ok {
			CheckpointDuration.Observe(payload.Duration.Seconds())
		}

	case event.CheckpointFailed:
		Checkpoints.WithLabelValues(ResultFailed).Inc()

	case event.CheckpointDiscarded:
		Checkpoints.WithLabelValues(ResultDiscarded).Inc()

	case event.SessionStarted:
		ActiveSessions.Inc()

	case event.SessionStopped:
		ActiveSessions.Dec()

	case event.SessionReset:
		SessionResets.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
