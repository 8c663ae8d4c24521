// Package postgres implements repositories on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

// CheckpointRepository stores checkpoint payloads in a JSONB column
type CheckpointRepository struct {
	db *pgxpool.Pool
}

// NewCheckpointRepository creates a new checkpoint repository
func NewCheckpointRepository(db *pgxpool.Pool) *CheckpointRepository {
	return &CheckpointRepository{db: db}
}

// Load retrieves a player's checkpoint payload
func (r *CheckpointRepository) Load(ctx context.Context, playerID string) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, queryLoadCheckpoint, playerID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCheckpointNotFound, playerID)
		}
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	return payload, nil
}

// Save upserts a player's checkpoint payload
func (r *CheckpointRepository) Save(ctx context.Context, playerID string, payload []byte, savedAt time.Time) error {
	if _, err := r.db.Exec(ctx, querySaveCheckpoint, playerID, payload, savedAt); err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return nil
}

// Delete removes a player's checkpoint
func (r *CheckpointRepository) Delete(ctx context.Context, playerID string) error {
	if _, err := r.db.Exec(ctx, queryDeleteCheckpoint, playerID); err != nil {
		return fmt.Errorf("failed to delete checkpoint: %w", err)
	}
	return nil
}

// Ping checks the connection pool
func (r *CheckpointRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
