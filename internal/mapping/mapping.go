// Package mapping defines the result types produced by the slot-mapping
// engine: per-slot mappings plus the aggregated mapping result handed to
// downstream consumers.
package mapping

import (
	"archemap/internal/archetype"
	"archemap/internal/design"
	"archemap/internal/schema"
)

// SlotMapping is the resolved outcome for one declared slot. MatchedNodes is
// empty when nothing cleared the selection threshold; Confidence is the top
// candidate's normalized score even then (0 if no candidate cleared the
// candidate floor).
type SlotMapping struct {
	SlotName     string
	MatchedNodes []*design.Node
	Confidence   float64
	Reasoning    []string
}

// Matched reports whether the slot resolved to at least one node.
func (m SlotMapping) Matched() bool {
	return len(m.MatchedNodes) > 0
}

// Result is the full outcome of mapping one design subtree to an archetype.
// Mappings is the flat pre-order list across all nesting depths: every slot
// the schema declares transitively contributes exactly one entry, matched or
// not.
type Result struct {
	Archetype         archetype.Archetype
	Schema            *schema.ComponentSchema
	Mappings          []SlotMapping
	OverallConfidence float64
	Warnings          []string
	Suggestions       []string
}

// Mapping returns the entry for the named slot, if present.
func (r *Result) Mapping(slotName string) (SlotMapping, bool) {
	if r == nil {
		return SlotMapping{}, false
	}
	for _, m := range r.Mappings {
		if m.SlotName == slotName {
			return m, true
		}
	}
	return SlotMapping{}, false
}
