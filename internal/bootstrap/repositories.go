package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/TowerIdle_Go/internal/checkpoint"
	"github.com/osse101/TowerIdle_Go/internal/config"
	"github.com/osse101/TowerIdle_Go/internal/database"
	"github.com/osse101/TowerIdle_Go/internal/database/postgres"
	"github.com/osse101/TowerIdle_Go/internal/database/sqlite"
	"github.com/osse101/TowerIdle_Go/internal/repository"
)

// Store is an opened checkpoint store together with the resources backing it
type Store struct {
	repository.CheckpointStore
	closeFn func()
}

// Close releases the underlying database handle, if any
func (s *Store) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

// OpenStore opens and migrates the checkpoint store selected by STORE_DRIVER
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		slog.Warn(LogMsgMemoryStoreVolatile)
		return &Store{CheckpointStore: checkpoint.NewMemoryStore()}, nil

	case config.StoreSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		if err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgStoreReady, "driver", cfg.StoreDriver, "path", cfg.SQLitePath)
		return &Store{
			CheckpointStore: sqlite.NewCheckpointRepository(db),
			closeFn: func() {
				if err := db.Close(); err != nil {
					slog.Error(LogMsgStoreCloseFailed, "error", err)
				}
			},
		}, nil

	case config.StorePostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenPostgres, err)
		}
		if err := database.MigratePool(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgStoreReady, "driver", cfg.StoreDriver, "host", cfg.DBHost, "db", cfg.DBName)
		return &Store{
			CheckpointStore: postgres.NewCheckpointRepository(pool),
			closeFn:         pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%s %q", ErrMsgUnknownDriver, cfg.StoreDriver)
	}
}
