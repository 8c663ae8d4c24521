package main

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/planner"
)

// report is the JSON form of a finished run
type report struct {
	EventID     string             `json:"event_id"`
	TotalDamage float64            `json:"total_damage"`
	Rank        domain.RewardTier  `json:"rank"`
	Resources   map[string]float64 `json:"resources"`
	Producers   map[string]int     `json:"producers"`
	Boosts      map[string]int     `json:"boosts"`
	Purchases   []planner.Purchase `json:"purchases"`

	// Set by the sa strategy
	GreedyBaseline float64          `json:"greedy_baseline,omitempty"`
	Plan           []planner.Action `json:"plan,omitempty"`
}

func newReport(cfg *domain.EventConfig, res planner.Result) report {
	r := report{
		EventID:     cfg.ID,
		TotalDamage: res.TotalDamage,
		Rank:        res.Rank,
		Resources:   res.Engine.Resources(),
		Producers:   make(map[string]int, len(cfg.Producers)),
		Boosts:      make(map[string]int, len(cfg.Boosts)),
		Purchases:   res.Purchases,
	}
	for _, p := range cfg.Producers {
		st, _ := res.Engine.ProducerState(p.ID)
		r.Producers[p.ID] = st.Level
	}
	for _, b := range cfg.Boosts {
		st, _ := res.Engine.BoostState(b.ID)
		r.Boosts[b.ID] = st.Level
	}
	return r
}

func printPurchases(w io.Writer, purchases []planner.Purchase) {
	fmt.Fprintln(w, "--- Purchase log ---")
	for _, p := range purchases {
		fmt.Fprintf(w, "[%s] %s\n", formatOffset(p.Offset), p.Label)
	}
	fmt.Fprintln(w)
}

func printSummary(w io.Writer, cfg *domain.EventConfig, res planner.Result) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "--- Final results (%s) ---\n", eventName(cfg))
	p.Fprintf(w, "Total damage: %.0f\n", res.TotalDamage)
	p.Fprintf(w, "Rank: %d (%s)\n", res.Rank.Rank, res.Rank.Label)
	p.Fprintf(w, "Purchases: %d\n", len(res.Purchases))

	fmt.Fprintln(w, "\nProducers:")
	for _, prod := range cfg.Producers {
		st, _ := res.Engine.ProducerState(prod.ID)
		status := "locked"
		if st.Unlocked {
			status = p.Sprintf("Lv%d/%d", st.Level, prod.MaxLevel)
		}
		p.Fprintf(w, "  %-20s %s\n", displayName(prod.Name, prod.ID), status)
	}

	if len(cfg.Boosts) > 0 {
		fmt.Fprintln(w, "\nBoosts:")
		for _, b := range cfg.Boosts {
			st, _ := res.Engine.BoostState(b.ID)
			p.Fprintf(w, "  %-20s Lv%d/%d\n", displayName(b.Name, b.ID), st.Level, b.MaxLevel)
		}
	}

	fmt.Fprintln(w, "\nResources:")
	for _, r := range cfg.Resources {
		p.Fprintf(w, "  %-20s %.0f\n", displayName(r.Name, r.ID), res.Engine.Balance(r.ID))
	}
}

func printComparison(w io.Writer, best planner.Optimized) {
	p := message.NewPrinter(language.English)

	fmt.Fprintln(w, "\nOptimizer:")
	p.Fprintf(w, "  %-20s %.0f\n", "Greedy baseline", best.Baseline)
	p.Fprintf(w, "  %-20s %.0f\n", "Optimized order", best.TotalDamage)
	if best.Baseline > 0 {
		p.Fprintf(w, "  %-20s %+.2f%%\n", "Improvement", (best.TotalDamage-best.Baseline)/best.Baseline*100)
	}
}

// formatOffset renders an offset from the event start as HH:MM:SS
func formatOffset(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%02d:%02d:%02d", h, m, d/time.Second)
}

func eventName(cfg *domain.EventConfig) string {
	return displayName(cfg.Name, cfg.ID)
}

func displayName(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
