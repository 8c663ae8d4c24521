package domain

import "time"

// ProductionEvent describes the cycles one producer completed during a tick
type ProductionEvent struct {
	ProducerID string  `json:"producer_id"`
	ResourceID string  `json:"resource_id"`
	Cycles     int64   `json:"cycles"`
	Produced   float64 `json:"produced"`
	Damage     float64 `json:"damage"`
}

// TickReport summarises a single tick
type TickReport struct {
	Elapsed time.Duration     `json:"elapsed"`
	Events  []ProductionEvent `json:"events,omitempty"`
	Damage  float64           `json:"damage"`
}

// Cycles returns the total number of cycles completed across producers
func (r TickReport) Cycles() int64 {
	var n int64
	for _, ev := range r.Events {
		n += ev.Cycles
	}
	return n
}

// OfflineReport describes what was credited for time spent away
type OfflineReport struct {
	Gap       time.Duration      `json:"gap"`
	Processed time.Duration      `json:"processed"`
	Capped    bool               `json:"capped"`
	Resources map[string]float64 `json:"resources"`
	Damage    float64            `json:"damage"`
}
