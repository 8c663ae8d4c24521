package main

import (
	"context"
	"fmt"

	"github.com/osse101/TowerIdle_Go/internal/gameconfig"
)

type ValidateConfigCommand struct{}

func (c *ValidateConfigCommand) Name() string {
	return "validate-config"
}

func (c *ValidateConfigCommand) Description() string {
	return "Validate event configuration files (YAML or JSON)"
}

func (c *ValidateConfigCommand) Run(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: validate-config <file> [file...]")
	}

	failed := 0
	for _, path := range args {
		cfg, err := gameconfig.Load(path)
		if err != nil {
			PrintError("%s: %v", path, err)
			failed++
			continue
		}
		PrintSuccess("%s: event %q (%d resources, %d producers, %d boosts, %d tiers)",
			path, cfg.ID, len(cfg.Resources), len(cfg.Producers), len(cfg.Boosts), len(cfg.RewardTiers))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(args))
	}
	return nil
}
