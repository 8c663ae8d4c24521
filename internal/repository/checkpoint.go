package repository

import (
	"context"
	"time"
)

// CheckpointStore persists encoded checkpoint records keyed by player.
// Implementations store the payload verbatim.
type CheckpointStore interface {
	// Load returns the stored payload or domain.ErrCheckpointNotFound
	Load(ctx context.Context, playerID string) ([]byte, error)

	// Save inserts or replaces the payload for a player
	Save(ctx context.Context, playerID string, payload []byte, savedAt time.Time) error

	// Delete removes a player's record. Deleting a missing record is not an error.
	Delete(ctx context.Context, playerID string) error

	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
}
