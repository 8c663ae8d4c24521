package main

import (
	"context"
	"fmt"

	"github.com/osse101/TowerIdle_Go/internal/bootstrap"
	"github.com/osse101/TowerIdle_Go/internal/config"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply checkpoint store migrations for STORE_DRIVER"
}

func (c *MigrateCommand) Run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.StoreDriver == config.StoreMemory {
		PrintWarning("STORE_DRIVER=memory has no schema, nothing to migrate")
		return nil
	}

	PrintHeader(fmt.Sprintf("Migrating %s store", cfg.StoreDriver))
	// Opening a store applies pending migrations
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	store.Close()

	PrintSuccess("Migrations up to date")
	return nil
}
