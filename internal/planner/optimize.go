package planner

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

// AnnealOptions tunes one simulated annealing run. The temperature falls
// geometrically from StartTemp to EndTemp over Iterations; a worse order is
// accepted with probability exp(delta / (temp * currentDamage)).
type AnnealOptions struct {
	Iterations int
	StartTemp  float64
	EndTemp    float64
}

// DefaultAnnealOptions accepts about 30% of degradations at the start and
// almost none at the end
var DefaultAnnealOptions = AnnealOptions{
	Iterations: 20000,
	StartTemp:  0.30,
	EndTemp:    0.0001,
}

// OptimizeOptions configures Optimize
type OptimizeOptions struct {
	Step            time.Duration
	Restarts        int
	HillClimbPasses int
	Anneal          AnnealOptions
}

// Optimized is the best priority order found and its score
type Optimized struct {
	Order       []Action
	TotalDamage float64
	// Baseline is the greedy strategy's total damage
	Baseline float64
}

// Template lists every purchase the event offers in configuration order: one
// step per producer level above its starting level and one per boost level.
// A priority order is a permutation of the template.
func Template(cfg *domain.EventConfig) []Action {
	var out []Action
	for _, p := range cfg.Producers {
		n := p.MaxLevel
		if p.UnlockedByDefault {
			n--
		}
		for i := 0; i < n; i++ {
			out = append(out, Action{Kind: KindProducer, ID: p.ID})
		}
	}
	for _, b := range cfg.Boosts {
		for i := 0; i < b.MaxLevel; i++ {
			out = append(out, Action{Kind: KindBoost, ID: b.ID})
		}
	}
	return out
}

// Evaluate returns the total damage of a full run following order
func Evaluate(cfg *domain.EventConfig, step time.Duration, order []Action) (float64, error) {
	res, err := Run(cfg, step, NewPriority(order))
	if err != nil {
		return 0, err
	}
	return res.TotalDamage, nil
}

// GreedyOrder turns a greedy run into a priority order: its purchases in the
// order they were made, then the template steps it never bought. Following
// the order replays the greedy run exactly.
func GreedyOrder(cfg *domain.EventConfig, step time.Duration) ([]Action, float64, error) {
	res, err := Run(cfg, step, Greedy{})
	if err != nil {
		return nil, 0, err
	}

	remaining := make(map[Action]int)
	for _, a := range Template(cfg) {
		remaining[a]++
	}
	order := make([]Action, 0, len(remaining))
	for _, p := range res.Purchases {
		order = append(order, p.Action)
		remaining[p.Action]--
	}
	for _, a := range Template(cfg) {
		if remaining[a] > 0 {
			order = append(order, a)
			remaining[a]--
		}
	}
	return order, res.TotalDamage, nil
}

// Anneal searches permutations of initial with simulated annealing and
// returns the best order seen, which never scores below initial.
func Anneal(cfg *domain.EventConfig, step time.Duration, initial []Action, opts AnnealOptions, rng *rand.Rand) ([]Action, float64, error) {
	current := append([]Action(nil), initial...)
	currentScore, err := Evaluate(cfg, step, current)
	if err != nil {
		return nil, 0, err
	}
	best, bestScore := append([]Action(nil), current...), currentScore
	if len(current) < 2 || opts.Iterations <= 0 {
		return best, bestScore, nil
	}

	temp := opts.StartTemp
	cooling := math.Pow(opts.EndTemp/opts.StartTemp, 1/math.Max(float64(opts.Iterations-1), 1))

	for i := 0; i < opts.Iterations; i++ {
		next := perturb(current, rng)
		score, err := Evaluate(cfg, step, next)
		if err != nil {
			return nil, 0, err
		}

		delta := score - currentScore
		if delta > 0 || rng.Float64() < math.Exp(delta/(temp*math.Max(currentScore, 1))) {
			current, currentScore = next, score
			if score > bestScore {
				best, bestScore = append([]Action(nil), next...), score
			}
		}
		temp *= cooling
	}
	return best, bestScore, nil
}

// perturb returns a neighbour of order: a swap of two positions, a relocation
// of one step, or a reversed segment of up to 8 steps
func perturb(order []Action, rng *rand.Rand) []Action {
	n := len(order)
	next := append([]Action(nil), order...)

	switch r := rng.Float64(); {
	case r < 0.50:
		a := rng.Intn(n)
		b := rng.Intn(n - 1)
		if b >= a {
			b++
		}
		next[a], next[b] = next[b], next[a]
	case r < 0.85:
		a := rng.Intn(n)
		b := rng.Intn(n - 1)
		item := next[a]
		next = append(next[:a], next[a+1:]...)
		next = append(next[:b], append([]Action{item}, next[b:]...)...)
	default:
		a := rng.Intn(n)
		length := 2 + rng.Intn(min(8, n)-1)
		b := min(a+length, n)
		for i, j := a, b-1; i < j; i, j = i+1, j-1 {
			next[i], next[j] = next[j], next[i]
		}
	}
	return next
}

// HillClimb tries every pairwise swap of order and applies the single best
// improvement. improved is false when order is already a local optimum.
func HillClimb(cfg *domain.EventConfig, step time.Duration, order []Action) (result []Action, score float64, improved bool, err error) {
	base, err := Evaluate(cfg, step, order)
	if err != nil {
		return nil, 0, false, err
	}

	bestScore, bestI, bestJ := base, -1, -1
	trial := make([]Action, len(order))
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if order[i] == order[j] {
				continue
			}
			copy(trial, order)
			trial[i], trial[j] = trial[j], trial[i]
			s, err := Evaluate(cfg, step, trial)
			if err != nil {
				return nil, 0, false, err
			}
			if s > bestScore {
				bestScore, bestI, bestJ = s, i, j
			}
		}
	}

	result = append([]Action(nil), order...)
	if bestI < 0 {
		return result, base, false, nil
	}
	result[bestI], result[bestJ] = result[bestJ], result[bestI]
	return result, bestScore, true, nil
}

// Optimize runs several annealing restarts and polishes the best order with
// hill climbing. The first restart starts from the greedy order and the rest
// from random shuffles of the template, so the result never scores below
// greedy. Each restart draws its own seed from rng.
func Optimize(cfg *domain.EventConfig, opts OptimizeOptions, rng *rand.Rand) (Optimized, error) {
	seed, baseline, err := GreedyOrder(cfg, opts.Step)
	if err != nil {
		return Optimized{}, err
	}
	restarts := max(opts.Restarts, 1)

	out := Optimized{Order: seed, TotalDamage: baseline, Baseline: baseline}
	for r := 0; r < restarts; r++ {
		sub := rand.New(rand.NewSource(rng.Int63())) //nolint:gosec

		initial := seed
		if r > 0 {
			initial = Template(cfg)
			sub.Shuffle(len(initial), func(i, j int) { initial[i], initial[j] = initial[j], initial[i] })
		}

		order, score, err := Anneal(cfg, opts.Step, initial, opts.Anneal, sub)
		if err != nil {
			return Optimized{}, fmt.Errorf("restart %d: %w", r+1, err)
		}
		if score > out.TotalDamage {
			out.Order, out.TotalDamage = order, score
		}
	}

	for p := 0; p < opts.HillClimbPasses; p++ {
		order, score, improved, err := HillClimb(cfg, opts.Step, out.Order)
		if err != nil {
			return Optimized{}, err
		}
		if !improved {
			break
		}
		out.Order, out.TotalDamage = order, score
	}
	return out, nil
}
