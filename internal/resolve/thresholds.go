package resolve

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds are the tunable scoring cutoffs of the resolver and classifier.
// Defaults reproduce the catalog's tuned behavior; load overrides from yaml
// to adjust without touching engine code.
type Thresholds struct {
	// CandidateFloor: candidates scoring at or below this are discarded.
	CandidateFloor float64 `yaml:"candidateFloor"`
	// SelectionFloor: retained candidates need at least this score to be
	// selected into a slot.
	SelectionFloor float64 `yaml:"selectionFloor"`
	// ClassifyFloor: classifier results below this fold into Unknown.
	ClassifyFloor float64 `yaml:"classifyFloor"`
	// HighConfidence marks a mapping trustworthy enough to skip hedging
	// (required props, no suggestions).
	HighConfidence float64 `yaml:"highConfidence"`
	// RecurseAllMatches controls nested resolution for multi-slots: false
	// descends into only the first matched node (the observed upstream
	// behavior, treating the first instance as a structural template); true
	// resolves child slots independently for every matched instance.
	RecurseAllMatches bool `yaml:"recurseAllMatches"`
}

// DefaultThresholds returns the tuned defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CandidateFloor: 0.3,
		SelectionFloor: 0.5,
		ClassifyFloor:  0.3,
		HighConfidence: 0.85,
	}
}

// LoadThresholds reads yaml overrides from path on top of the defaults.
func LoadThresholds(path string) (Thresholds, error) {
	t := DefaultThresholds()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read thresholds: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse thresholds: %w", err)
	}
	return t.normalize(), nil
}

func (t Thresholds) normalize() Thresholds {
	def := DefaultThresholds()
	if t.CandidateFloor <= 0 || t.CandidateFloor >= 1 {
		t.CandidateFloor = def.CandidateFloor
	}
	if t.SelectionFloor <= 0 || t.SelectionFloor >= 1 {
		t.SelectionFloor = def.SelectionFloor
	}
	if t.ClassifyFloor <= 0 || t.ClassifyFloor >= 1 {
		t.ClassifyFloor = def.ClassifyFloor
	}
	if t.HighConfidence <= 0 || t.HighConfidence > 1 {
		t.HighConfidence = def.HighConfidence
	}
	return t
}
