// Command simulate plays an event headlessly with a purchase strategy and
// prints the purchase log and a summary.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/gameconfig"
	"github.com/osse101/TowerIdle_Go/internal/logger"
	"github.com/osse101/TowerIdle_Go/internal/planner"
)

const (
	strategyGreedy   = "greedy"
	strategyPriority = "priority"
	strategySA       = "sa"

	// saStep is the default step for sa; every candidate order is a full run
	saStep = time.Minute
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to event config (YAML or JSON); empty uses the embedded default")
	step := fs.Duration("step", time.Second, "Simulation step")
	strategy := fs.String("strategy", strategyGreedy, "Purchase strategy: greedy, priority or sa")
	planPath := fs.String("plan", "", "Priority list file, required with -strategy=priority")
	iterations := fs.Int("iterations", 30000, "Annealing iterations per restart (sa)")
	restarts := fs.Int("restarts", 5, "Annealing restarts (sa)")
	hillClimb := fs.Int("hill-climb", 3, "Maximum hill climbing passes after annealing (sa)")
	seed := fs.Int64("seed", 1, "Random seed (sa)")
	savePlan := fs.String("save-plan", "", "Write the optimized priority list to this file (sa)")
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	quiet := fs.Bool("quiet", false, "Only print the summary")
	logLevel := fs.String("log-level", "warn", "Log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger.InitLoggerWithWriter(logger.NewConfig(*logLevel, "text", "simulate", "dev", "dev", false), stderr)

	cfg, err := gameconfig.Load(*configPath)
	if err != nil {
		return err
	}

	var (
		strat     planner.Strategy
		optimized *planner.Optimized
	)
	if *strategy == strategySA {
		stepSet := false
		fs.Visit(func(f *flag.Flag) { stepSet = stepSet || f.Name == "step" })
		if !stepSet {
			*step = saStep
		}

		opts := planner.OptimizeOptions{
			Step:            *step,
			Restarts:        *restarts,
			HillClimbPasses: *hillClimb,
			Anneal:          planner.DefaultAnnealOptions,
		}
		opts.Anneal.Iterations = *iterations

		slog.Info("Optimizing purchase order", "event", cfg.ID, "restarts", opts.Restarts, "iterations", opts.Anneal.Iterations, "seed", *seed)
		best, err := planner.Optimize(cfg, opts, rand.New(rand.NewSource(*seed))) //nolint:gosec
		if err != nil {
			return err
		}
		slog.Info("Optimization finished", "greedy", best.Baseline, "optimized", best.TotalDamage)

		if *savePlan != "" {
			data, err := planner.MarshalPlan(best.Order)
			if err != nil {
				return err
			}
			if err := os.WriteFile(*savePlan, data, 0o600); err != nil {
				return fmt.Errorf("failed to write plan: %w", err)
			}
		}
		optimized = &best
		strat = planner.NewPriority(best.Order)
	} else {
		strat, err = buildStrategy(cfg, *strategy, *planPath)
		if err != nil {
			return err
		}
	}

	res, err := planner.Run(cfg, *step, strat)
	if err != nil {
		return err
	}

	if *asJSON {
		rep := newReport(cfg, res)
		if optimized != nil {
			rep.GreedyBaseline = optimized.Baseline
			rep.Plan = optimized.Order
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	if !*quiet {
		printPurchases(stdout, res.Purchases)
	}
	printSummary(stdout, cfg, res)
	if optimized != nil {
		printComparison(stdout, *optimized)
	}
	return nil
}

func buildStrategy(cfg *domain.EventConfig, name, planPath string) (planner.Strategy, error) {
	switch name {
	case strategyGreedy:
		return planner.Greedy{}, nil
	case strategyPriority:
		if planPath == "" {
			return nil, fmt.Errorf("-plan is required with -strategy=%s", strategyPriority)
		}
		data, err := os.ReadFile(planPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read plan: %w", err)
		}
		steps, err := planner.ParsePlan(cfg, data)
		if err != nil {
			return nil, err
		}
		return planner.NewPriority(steps), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
