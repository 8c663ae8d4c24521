package postgres

// Checkpoint queries
const (
	queryLoadCheckpoint = `SELECT payload FROM checkpoints WHERE player_id = $1`

	querySaveCheckpoint = `
		INSERT INTO checkpoints (player_id, payload, saved_at, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (player_id)
		DO UPDATE SET payload = EXCLUDED.payload, saved_at = EXCLUDED.saved_at, updated_at = NOW()`

	queryDeleteCheckpoint = `DELETE FROM checkpoints WHERE player_id = $1`
)
