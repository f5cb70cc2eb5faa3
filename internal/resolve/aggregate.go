package resolve

import (
	"fmt"

	"archemap/internal/archetype"
	"archemap/internal/mapping"
)

// Summarize combines per-slot confidences into the overall score: the
// arithmetic mean over every produced mapping, unmatched (zero-confidence)
// slots included. An empty mapping list is the no-schema outcome and yields
// the engine's sole error-like (but still valid) result.
//
// Summarize never mutates its input; re-running it on the same list returns
// the same values.
func Summarize(a archetype.Archetype, mappings []mapping.SlotMapping) (float64, []string, []string) {
	if len(mappings) == 0 {
		warning := fmt.Sprintf("No schema found for component type: %s", a)
		suggestion := "This component type may not be supported yet"
		return 0, []string{warning}, []string{suggestion}
	}

	sum := 0.0
	for _, m := range mappings {
		sum += m.Confidence
	}
	return sum / float64(len(mappings)), nil, nil
}
