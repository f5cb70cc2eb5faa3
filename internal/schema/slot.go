// Package schema holds the static catalog of archetype schemas: for each
// recognized component kind, an ordered tree of named slots with weighted
// detection rules.
package schema

import (
	"archemap/internal/archetype"
	"archemap/internal/rules"
)

// Slot is one named structural role within an archetype, possibly nested
// (e.g. CardHeader contains CardTitle and CardDescription).
type Slot struct {
	Name           string
	Required       bool
	AllowsMultiple bool
	Rules          []rules.Rule
	Children       []Slot
}

// ComponentSchema is the full slot tree for one archetype.
type ComponentSchema struct {
	Archetype archetype.Archetype
	Slots     []Slot
}

// SlotCount returns the number of slots declared transitively.
func (s *ComponentSchema) SlotCount() int {
	if s == nil {
		return 0
	}
	return countSlots(s.Slots)
}

func countSlots(slots []Slot) int {
	n := len(slots)
	for _, s := range slots {
		n += countSlots(s.Children)
	}
	return n
}
