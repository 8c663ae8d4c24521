// Package sqlite implements repositories on a local SQLite file via
// modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

const (
	queryLoadCheckpoint = `SELECT payload FROM checkpoints WHERE player_id = ?`

	querySaveCheckpoint = `
		INSERT INTO checkpoints (player_id, payload, saved_at, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (player_id)
		DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at, updated_at = CURRENT_TIMESTAMP`

	queryDeleteCheckpoint = `DELETE FROM checkpoints WHERE player_id = ?`
)

// CheckpointRepository stores checkpoint payloads as blobs
type CheckpointRepository struct {
	db *sql.DB
}

// NewCheckpointRepository creates a new checkpoint repository
func NewCheckpointRepository(db *sql.DB) *CheckpointRepository {
	return &CheckpointRepository{db: db}
}

// Load retrieves a player's checkpoint payload
func (r *CheckpointRepository) Load(ctx context.Context, playerID string) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, queryLoadCheckpoint, playerID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCheckpointNotFound, playerID)
		}
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	return payload, nil
}

// Save upserts a player's checkpoint payload
func (r *CheckpointRepository) Save(ctx context.Context, playerID string, payload []byte, savedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, querySaveCheckpoint, playerID, payload, savedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return nil
}

// Delete removes a player's checkpoint
func (r *CheckpointRepository) Delete(ctx context.Context, playerID string) error {
	if _, err := r.db.ExecContext(ctx, queryDeleteCheckpoint, playerID); err != nil {
		return fmt.Errorf("failed to delete checkpoint: %w", err)
	}
	return nil
}

// Ping checks the database handle
func (r *CheckpointRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
