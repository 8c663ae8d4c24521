// Package checkpoint encodes engine checkpoints and provides an in-memory
// store. Durable stores live under internal/database.
package checkpoint

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

// Encode serialises a checkpoint record to JSON
func Encode(cp domain.Checkpoint) ([]byte, error) {
	data, err := json.Marshal(cp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	return data, nil
}

// Decode parses a stored payload. Unparsable or structurally empty payloads
// return ErrCorruptCheckpoint. Value ranges are checked by engine.Restore.
func Decode(data []byte) (domain.Checkpoint, error) {
	var cp domain.Checkpoint
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return cp, fmt.Errorf("%w: empty payload", domain.ErrCorruptCheckpoint)
	}
	if err := json.Unmarshal(data, &cp); err != nil {
		return domain.Checkpoint{}, fmt.Errorf("%w: %v", domain.ErrCorruptCheckpoint, err)
	}
	if cp.LastCheckpointAt.IsZero() {
		return domain.Checkpoint{}, fmt.Errorf("%w: missing last checkpoint time", domain.ErrCorruptCheckpoint)
	}
	// records written before versioning
	if cp.Version == 0 {
		cp.Version = 1
	}
	return cp, nil
}
