package engine

// ResourceRate returns the per-second production of a resource summed over
// every producer that creates it
func (e *Engine) ResourceRate(resourceID string) float64 {
	speed := e.SpeedMultiplier()
	var rate float64
	for i := range e.cfg.Producers {
		p := &e.cfg.Producers[i]
		if p.Produces != resourceID || !e.active(i) {
			continue
		}
		seconds := p.SpawnTimeMs * speed / 1000
		if seconds <= 0 {
			continue
		}
		rate += e.production(i) / seconds
	}
	return rate
}

// ResourceRates returns ResourceRate for every configured resource
func (e *Engine) ResourceRates() map[string]float64 {
	rates := make(map[string]float64, len(e.cfg.Resources))
	for _, r := range e.cfg.Resources {
		rates[r.ID] = e.ResourceRate(r.ID)
	}
	return rates
}

// DamageRate returns the total damage per second across active producers
func (e *Engine) DamageRate() float64 {
	speed := e.SpeedMultiplier()
	dmgMult := e.DamageMultiplier()
	var rate float64
	for i := range e.cfg.Producers {
		if !e.active(i) {
			continue
		}
		seconds := e.cfg.Producers[i].SpawnTimeMs * speed / 1000
		if seconds <= 0 {
			continue
		}
		rate += e.damagePerCycle(i, dmgMult) / seconds
	}
	return rate
}
