package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/repository"
)

var _ repository.CheckpointStore = (*CheckpointRepository)(nil)

func TestCheckpointRepository_Integration(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewCheckpointRepository(pool)
	ctx := context.Background()
	savedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Ping(ctx))

	t.Run("missing record", func(t *testing.T) {
		_, err := repo.Load(ctx, "nobody")
		require.ErrorIs(t, err, domain.ErrCheckpointNotFound)
	})

	t.Run("save load overwrite delete", func(t *testing.T) {
		first := []byte(`{"version":1,"total_damage":10}`)
		require.NoError(t, repo.Save(ctx, "p1", first, savedAt))

		got, err := repo.Load(ctx, "p1")
		require.NoError(t, err)
		assert.JSONEq(t, string(first), string(got))

		second := []byte(`{"version":1,"total_damage":25,"resources":{"rubies":3}}`)
		require.NoError(t, repo.Save(ctx, "p1", second, savedAt.Add(time.Minute)))
		got, err = repo.Load(ctx, "p1")
		require.NoError(t, err)
		assert.JSONEq(t, string(second), string(got))

		var savedAtDB time.Time
		err = pool.QueryRow(ctx, "SELECT saved_at FROM checkpoints WHERE player_id = $1", "p1").Scan(&savedAtDB)
		require.NoError(t, err)
		assert.True(t, savedAtDB.Equal(savedAt.Add(time.Minute)))

		require.NoError(t, repo.Delete(ctx, "p1"))
		require.NoError(t, repo.Delete(ctx, "p1"))
		_, err = repo.Load(ctx, "p1")
		require.ErrorIs(t, err, domain.ErrCheckpointNotFound)
	})

	t.Run("rejects non-JSON payload", func(t *testing.T) {
		err := repo.Save(ctx, "p2", []byte("not json"), savedAt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save checkpoint")
	})

	t.Run("payload stays valid JSON", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "p3", []byte(`{"boosts":{"champion-speed":{"level":2}}}`), savedAt))
		got, err := repo.Load(ctx, "p3")
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(got, &decoded))
		assert.Contains(t, decoded, "boosts")
	})
}
