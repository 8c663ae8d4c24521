package event

import (
	"time"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

// ProductionPayloadV1 is the typed payload for production.completed
type ProductionPayloadV1 struct {
	Events      []domain.ProductionEvent `json:"events"`
	Damage      float64                  `json:"damage"`
	TotalDamage float64                  `json:"total_damage"`
}

// ProducerUpgradedPayloadV1 is the typed payload for producer.upgraded.
// Unlocked is true when the purchase moved the producer from level 0 to 1.
type ProducerUpgradedPayloadV1 struct {
	ProducerID string         `json:"producer_id"`
	Level      int            `json:"level"`
	Unlocked   bool           `json:"unlocked"`
	Cost       domain.CostBag `json:"cost,omitempty"`
}

// BoostPurchasedPayloadV1 is the typed payload for boost.purchased
type BoostPurchasedPayloadV1 struct {
	BoostID string         `json:"boost_id"`
	Kind    string         `json:"kind"`
	Level   int            `json:"level"`
	Cost    domain.CostBag `json:"cost,omitempty"`
}

// Purchase kinds
const (
	PurchaseKindProducer = "producer"
	PurchaseKindBoost    = "boost"
)

// PurchaseRejectedPayloadV1 is the typed payload for purchase.rejected
type PurchaseRejectedPayloadV1 struct {
	Kind   string `json:"kind"`
	ItemID string `json:"item_id"`
	Reason string `json:"reason"`
}

// RankChangedPayloadV1 is the typed payload for rank.changed
type RankChangedPayloadV1 struct {
	From        domain.RewardTier `json:"from"`
	To          domain.RewardTier `json:"to"`
	TotalDamage float64           `json:"total_damage"`
}

// EventEndedPayloadV1 is the typed payload for event.ended
type EventEndedPayloadV1 struct {
	Rank        domain.RewardTier `json:"rank"`
	TotalDamage float64           `json:"total_damage"`
}

// CheckpointPayloadV1 is the typed payload for the checkpoint.* events
type CheckpointPayloadV1 struct {
	Bytes    int           `json:"bytes,omitempty"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
}

// SessionPayloadV1 is the typed payload for the session.* events
type SessionPayloadV1 struct {
	Restored bool   `json:"restored"`
	Reason   string `json:"reason,omitempty"`
}

// NewProductionEvent creates a production.completed event from a tick report
func NewProductionEvent(playerID string, at time.Time, report domain.TickReport, totalDamage float64) Event {
	return New(ProductionCompleted, playerID, at, ProductionPayloadV1{
		Events:      report.Events,
		Damage:      report.Damage,
		TotalDamage: totalDamage,
	})
}

// NewProducerUpgradedEvent creates a producer.upgraded event
func NewProducerUpgradedEvent(playerID string, at time.Time, producerID string, level int, cost domain.CostBag) Event {
	return New(ProducerUpgraded, playerID, at, ProducerUpgradedPayloadV1{
		ProducerID: producerID,
		Level:      level,
		Unlocked:   level == 1,
		Cost:       cost,
	})
}

// NewBoostPurchasedEvent creates a boost.purchased event
func NewBoostPurchasedEvent(playerID string, at time.Time, boostID string, kind domain.BoostKind, level int, cost domain.CostBag) Event {
	return New(BoostPurchased, playerID, at, BoostPurchasedPayloadV1{
		BoostID: boostID,
		Kind:    string(kind),
		Level:   level,
		Cost:    cost,
	})
}

// NewPurchaseRejectedEvent creates a purchase.rejected event
func NewPurchaseRejectedEvent(playerID string, at time.Time, kind, itemID string, reason error) Event {
	return New(PurchaseRejected, playerID, at, PurchaseRejectedPayloadV1{
		Kind:   kind,
		ItemID: itemID,
		Reason: reason.Error(),
	})
}

// NewRankChangedEvent creates a rank.changed event
func NewRankChangedEvent(playerID string, at time.Time, from, to domain.RewardTier, totalDamage float64) Event {
	return New(RankChanged, playerID, at, RankChangedPayloadV1{
		From:        from,
		To:          to,
		TotalDamage: totalDamage,
	})
}

// NewOfflineReconciledEvent creates an offline.reconciled event
func NewOfflineReconciledEvent(playerID string, at time.Time, report domain.OfflineReport) Event {
	return New(OfflineReconciled, playerID, at, report)
}

// NewEventEndedEvent creates an event.ended event
func NewEventEndedEvent(playerID string, at time.Time, rank domain.RewardTier, totalDamage float64) Event {
	return New(EventEnded, playerID, at, EventEndedPayloadV1{
		Rank:        rank,
		TotalDamage: totalDamage,
	})
}

// NewCheckpointSavedEvent creates a checkpoint.saved event
func NewCheckpointSavedEvent(playerID string, at time.Time, size int, took time.Duration) Event {
	return New(CheckpointSaved, playerID, at, CheckpointPayloadV1{Bytes: size, Duration: took})
}

// NewCheckpointFailedEvent creates a checkpoint.failed event
func NewCheckpointFailedEvent(playerID string, at time.Time, took time.Duration, err error) Event {
	return New(CheckpointFailed, playerID, at, CheckpointPayloadV1{Duration: took, Error: err.Error()})
}

// NewCheckpointDiscardedEvent creates a checkpoint.discarded event for an unreadable record
func NewCheckpointDiscardedEvent(playerID string, at time.Time, err error) Event {
	return New(CheckpointDiscarded, playerID, at, CheckpointPayloadV1{Error: err.Error()})
}

// NewSessionEvent creates one of the session.* lifecycle events
func NewSessionEvent(eventType Type, playerID string, at time.Time, restored bool, reason string) Event {
	return New(eventType, playerID, at, SessionPayloadV1{Restored: restored, Reason: reason})
}
