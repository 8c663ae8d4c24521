package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a session event published on the bus.
// PlayerID scopes the event to one session; live clients are routed on it.
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	PlayerID  string      `json:"player_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Session event types
const (
	ProductionCompleted Type = "production.completed"
	ProducerUpgraded    Type = "producer.upgraded"
	BoostPurchased      Type = "boost.purchased"
	PurchaseRejected    Type = "purchase.rejected"
	RankChanged         Type = "rank.changed"
	OfflineReconciled   Type = "offline.reconciled"
	StateRefreshed      Type = "state.refreshed"
	EventEnded          Type = "event.ended"

	CheckpointSaved     Type = "checkpoint.saved"
	CheckpointFailed    Type = "checkpoint.failed"
	CheckpointDiscarded Type = "checkpoint.discarded"

	SessionStarted Type = "session.started"
	SessionStopped Type = "session.stopped"
	SessionReset   Type = "session.reset"
)

// AllTypes lists every session event type, in a stable order
var AllTypes = []Type{
	ProductionCompleted,
	ProducerUpgraded,
	BoostPurchased,
	PurchaseRejected,
	RankChanged,
	OfflineReconciled,
	StateRefreshed,
	EventEnded,
	CheckpointSaved,
	CheckpointFailed,
	CheckpointDiscarded,
	SessionStarted,
	SessionStopped,
	SessionReset,
}

// New builds an event at the given instant with the current schema version
func New(eventType Type, playerID string, at time.Time, payload interface{}) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      eventType,
		PlayerID:  playerID,
		Timestamp: at,
		Payload:   payload,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the publishing goroutine and must not block.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes one handler to every listed event type
func SubscribeAll(bus Bus, types []Type, handler Handler) {
	for _, t := range types {
		bus.Subscribe(t, handler)
	}
}
