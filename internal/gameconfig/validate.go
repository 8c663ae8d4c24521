package gameconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

var validate = validator.New()

// Validate checks struct tags and the cross references between sections.
// Every problem found is reported, joined into one ErrInvalidConfig.
func Validate(cfg *domain.EventConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, describeTagErrors(err))
	}

	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	resources := make(map[string]bool, len(cfg.Resources))
	for _, r := range cfg.Resources {
		if resources[r.ID] {
			add("duplicate resource %q", r.ID)
		}
		resources[r.ID] = true
	}
	checkBag := func(owner string, bag domain.CostBag) {
		for id := range bag {
			if !resources[id] {
				add("%s costs unknown resource %q", owner, id)
			}
		}
	}

	producers := make(map[string]bool, len(cfg.Producers))
	for _, p := range cfg.Producers {
		if producers[p.ID] {
			add("duplicate producer %q", p.ID)
		}
		producers[p.ID] = true
		if !resources[p.Produces] {
			add("producer %q produces unknown resource %q", p.ID, p.Produces)
		}
		if len(p.ProductionByLevel) != p.MaxLevel {
			add("producer %q has %d production levels, want %d", p.ID, len(p.ProductionByLevel), p.MaxLevel)
		}
		if len(p.DamageByLevel) != p.MaxLevel {
			add("producer %q has %d damage levels, want %d", p.ID, len(p.DamageByLevel), p.MaxLevel)
		}
		if len(p.UpgradeCosts) != p.MaxLevel-1 {
			add("producer %q has %d upgrade costs, want %d", p.ID, len(p.UpgradeCosts), p.MaxLevel-1)
		}
		checkBag("producer "+p.ID, p.UnlockCost)
		for _, c := range p.UpgradeCosts {
			checkBag("producer "+p.ID, c)
		}
	}

	boosts := make(map[string]bool, len(cfg.Boosts))
	for _, b := range cfg.Boosts {
		if boosts[b.ID] {
			add("duplicate boost %q", b.ID)
		}
		boosts[b.ID] = true
		if b.Kind == domain.BoostKindProductionBonus && !resources[b.Resource] {
			add("boost %q targets unknown resource %q", b.ID, b.Resource)
		}
		if len(b.BonusByLevel) != b.MaxLevel {
			add("boost %q has %d bonus levels, want %d", b.ID, len(b.BonusByLevel), b.MaxLevel)
		}
		if len(b.Costs) != b.MaxLevel {
			add("boost %q has %d costs, want %d", b.ID, len(b.Costs), b.MaxLevel)
		}
		if b.Kind == domain.BoostKindSpeed {
			for _, v := range b.BonusByLevel {
				if v >= 1 {
					add("speed boost %q bonus %v must be below 1", b.ID, v)
				}
			}
		}
		for _, c := range b.Costs {
			checkBag("boost "+b.ID, c)
		}
	}

	ranks := make(map[int]bool, len(cfg.RewardTiers))
	hasFloor := false
	for _, t := range cfg.RewardTiers {
		if ranks[t.Rank] {
			add("duplicate reward rank %d", t.Rank)
		}
		ranks[t.Rank] = true
		if t.DamageThreshold == 0 {
			hasFloor = true
		}
	}
	if !hasFloor {
		add("reward tiers need a zero-threshold tier")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func describeTagErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		parts = append(parts, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
	}
	return strings.Join(parts, "; ")
}
