package live

import (
	"context"
	"log/slog"

	"github.com/osse101/TowerIdle_Go/internal/event"
)

// ForwardedTypes are the bus events pushed to live clients.
// Checkpoint and lifecycle bookkeeping stays server-side.
var ForwardedTypes = []event.Type{
	event.ProductionCompleted,
	event.ProducerUpgraded,
	event.BoostPurchased,
	event.PurchaseRejected,
	event.RankChanged,
	event.OfflineReconciled,
	event.StateRefreshed,
	event.EventEnded,
	event.SessionReset,
}

// Subscriber bridges the event bus to the live hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new live subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarding handler for every pushed event type
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, ForwardedTypes, s.forward)

	names := make([]string, len(ForwardedTypes))
	for i, t := range ForwardedTypes {
		names[i] = string(t)
	}
	slog.Info(LogMsgSubscriberReady, "types", names)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Publish(evt)
	return nil
}
