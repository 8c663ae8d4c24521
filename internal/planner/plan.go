package planner

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

// planDocument is the on-disk form of a priority list
type planDocument struct {
	Steps []Action `yaml:"steps"`
}

// ParsePlan decodes a priority list document (YAML, or JSON as a YAML
// subset) and checks every step against cfg.
//
//	steps:
//	  - {kind: producer, id: imp}
//	  - {kind: boost, id: haste}
func ParsePlan(cfg *domain.EventConfig, data []byte) ([]Action, error) {
	var doc planDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("plan has no steps")
	}

	known := make(map[Action]bool)
	for _, a := range Candidates(cfg) {
		known[a] = true
	}
	for i, step := range doc.Steps {
		if step.Kind != KindProducer && step.Kind != KindBoost {
			return nil, fmt.Errorf("step %d: unknown kind %q", i, step.Kind)
		}
		if !known[step] {
			err := domain.ErrUnknownProducer
			if step.Kind == KindBoost {
				err = domain.ErrUnknownBoost
			}
			return nil, fmt.Errorf("step %d: %w: %s", i, err, step.ID)
		}
	}
	return doc.Steps, nil
}

// MarshalPlan encodes steps in the document form ParsePlan reads
func MarshalPlan(steps []Action) ([]byte, error) {
	data, err := yaml.Marshal(planDocument{Steps: steps})
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}
	return data, nil
}
