package engine

import (
	"math"
	"time"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

// ReconcileOffline credits the cycles every active producer would have
// completed during gap, capped at the configured maximum offline duration.
// It is closed form: the sub-cycle remainder is dropped and ProgressMs is left
// unchanged. Boost state must already be restored so multipliers are correct.
func (e *Engine) ReconcileOffline(gap time.Duration) domain.OfflineReport {
	report := domain.OfflineReport{
		Gap:       gap,
		Resources: make(map[string]float64),
	}
	if gap <= 0 {
		return report
	}

	processed := gap
	if limit := e.cfg.Settings.MaxOfflineDuration(); processed > limit {
		processed = limit
		report.Capped = true
	}
	report.Processed = processed
	processMs := durationToMs(processed)

	speed := e.SpeedMultiplier()
	dmgMult := e.DamageMultiplier()
	for i := range e.cfg.Producers {
		if !e.active(i) {
			continue
		}
		p := &e.cfg.Producers[i]
		spawn := p.SpawnTimeMs * speed
		if spawn <= 0 {
			continue
		}
		cycles := math.Floor(processMs / spawn)
		if cycles <= 0 {
			continue
		}
		produced := cycles * e.production(i)
		damage := cycles * e.damagePerCycle(i, dmgMult)

		e.ledger.Credit(p.Produces, produced)
		e.totalDamage += damage
		report.Resources[p.Produces] += produced
		report.Damage += damage
	}
	return report
}
