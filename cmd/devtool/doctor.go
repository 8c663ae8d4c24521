package main

import (
	"context"
	"fmt"

	"github.com/osse101/TowerIdle_Go/internal/bootstrap"
	"github.com/osse101/TowerIdle_Go/internal/config"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose configuration issues (env, event config, store)"
}

func (c *DoctorCommand) Run(ctx context.Context, args []string) error {
	PrintHeader("Running Doctor...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}
	PrintSuccess("Environment OK (store=%s, port=%d)", cfg.StoreDriver, cfg.Port)
	for _, w := range cfg.Warnings() {
		PrintWarning("%s", w)
	}

	hasError := false

	eventCfg, err := bootstrap.LoadEventConfig(cfg.GameConfigPath)
	if err != nil {
		PrintError("Event config check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Event config OK (%s: %d producers, %d boosts)", eventCfg.ID, len(eventCfg.Producers), len(eventCfg.Boosts))
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		PrintError("Store check failed: %v", err)
		hasError = true
	} else {
		defer store.Close()
		if err := store.Ping(ctx); err != nil {
			PrintError("Store ping failed: %v", err)
			hasError = true
		} else {
			PrintSuccess("Store OK")
		}
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
