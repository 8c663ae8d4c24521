package checkpoint

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

type memoryRecord struct {
	payload []byte
	savedAt time.Time
}

// MemoryStore keeps checkpoints in process memory. Records are lost on exit.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]memoryRecord)}
}

// Load returns a copy of the stored payload
func (s *MemoryStore) Load(_ context.Context, playerID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCheckpointNotFound, playerID)
	}
	return append([]byte(nil), rec.payload...), nil
}

// Save stores a copy of the payload
func (s *MemoryStore) Save(_ context.Context, playerID string, payload []byte, savedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[playerID] = memoryRecord{
		payload: append([]byte(nil), payload...),
		savedAt: savedAt,
	}
	return nil
}

// Delete removes a player's record
func (s *MemoryStore) Delete(_ context.Context, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, playerID)
	return nil
}

// Ping always succeeds
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// SavedAt returns when a player's record was last written
func (s *MemoryStore) SavedAt(playerID string) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[playerID]
	return rec.savedAt, ok
}
