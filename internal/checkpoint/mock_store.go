package checkpoint

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of the repository.CheckpointStore interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context, playerID string) ([]byte, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, playerID string, payload []byte, savedAt time.Time) error {
	args := m.Called(ctx, playerID, payload, savedAt)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
