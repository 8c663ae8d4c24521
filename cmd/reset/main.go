// Command reset deletes one player's checkpoint from the configured store,
// so the player's next session starts fresh.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/osse101/TowerIdle_Go/internal/bootstrap"
	"github.com/osse101/TowerIdle_Go/internal/config"
	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/repository"
)

func main() {
	playerID := flag.String("player", "", "Player ID whose checkpoint is deleted")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open checkpoint store: %v", err)
	}
	defer store.Close()

	if err := resetPlayer(ctx, store, *playerID, os.Stdout); err != nil {
		store.Close()
		log.Fatalf("Reset failed: %v", err)
	}
}

// resetPlayer removes playerID's checkpoint. A player with no checkpoint is
// reported but is not an error.
func resetPlayer(ctx context.Context, store repository.CheckpointStore, playerID string, out io.Writer) error {
	if playerID == "" {
		return fmt.Errorf("-player is required")
	}

	_, err := store.Load(ctx, playerID)
	switch {
	case errors.Is(err, domain.ErrCheckpointNotFound):
		fmt.Fprintf(out, "No checkpoint stored for %s, nothing to reset\n", playerID)
		return nil
	case err != nil:
		return fmt.Errorf("failed to look up checkpoint: %w", err)
	}

	if err := store.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("failed to delete checkpoint: %w", err)
	}
	fmt.Fprintf(out, "Checkpoint for %s deleted. Progress starts over on next login.\n", playerID)
	return nil
}
