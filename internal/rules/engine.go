package rules

import (
	"fmt"

	"archemap/internal/archetype"
	"archemap/internal/design"
)

// reasonFloor: rules scoring above this contribute a reasoning line.
const reasonFloor = 0.5

// Evaluate scores node against a slot's rule set and returns the normalized
// weighted score plus a human-readable reasoning trail.
//
// Missing optional node fields never error: each scorer returns 0 for them.
func Evaluate(node *design.Node, siblings []*design.Node, index int, arch archetype.Archetype, ruleSet []Rule) (float64, []string) {
	if node == nil || len(ruleSet) == 0 {
		return 0, nil
	}

	ctx := Context{
		Siblings:  siblings,
		Index:     index,
		Archetype: arch,
	}

	var weighted, total float64
	var reasons []string
	for _, r := range ruleSet {
		if r.Weight < 0 || r.Score == nil {
			continue
		}
		s := clamp01(r.Score(node, ctx))
		weighted += s * r.Weight
		total += r.Weight
		if s > reasonFloor {
			reasons = append(reasons, fmt.Sprintf("%s: %s (%.0f%%)", node.Name, r.Description, s*100))
		}
	}
	if total == 0 {
		return 0, reasons
	}
	return weighted / total, reasons
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
