// Package resolve assigns a design subtree's descendants to the named slots
// of an archetype schema, with confidence scoring, fallback synthesis and
// aggregation.
package resolve

import (
	"fmt"
	"sort"

	"archemap/internal/archetype"
	"archemap/internal/design"
	"archemap/internal/mapping"
	"archemap/internal/rules"
	"archemap/internal/schema"
)

// Resolver maps design nodes onto slot schemas. It holds no mutable state;
// a single Resolver is safe for concurrent use.
type Resolver struct {
	thresholds Thresholds
}

// New creates a Resolver with the given thresholds.
func New(t Thresholds) *Resolver {
	return &Resolver{thresholds: t.normalize()}
}

// Thresholds returns the resolver's active thresholds.
func (r *Resolver) Thresholds() Thresholds {
	return r.thresholds
}

type candidate struct {
	node      *design.Node
	index     int
	score     float64
	reasoning []string
}

// ResolveSchema resolves every slot of the schema against root's children,
// pre-order across nesting depths. Every declared slot yields exactly one
// SlotMapping, matched or not. Missing required slots produce warnings and
// suggestions, never errors.
func (r *Resolver) ResolveSchema(root *design.Node, s *schema.ComponentSchema) ([]mapping.SlotMapping, []string, []string) {
	if root == nil || s == nil {
		return nil, nil, nil
	}
	var mappings []mapping.SlotMapping
	var warnings, suggestions []string
	for _, slot := range s.Slots {
		ms, ws, sg := r.resolveWithChildren(root, slot, s.Archetype)
		mappings = append(mappings, ms...)
		warnings = append(warnings, ws...)
		suggestions = append(suggestions, sg...)
	}
	return mappings, warnings, suggestions
}

// ResolveSlot resolves a single slot against parent's direct children.
func (r *Resolver) ResolveSlot(parent *design.Node, slot schema.Slot, arch archetype.Archetype) mapping.SlotMapping {
	m := mapping.SlotMapping{SlotName: slot.Name}
	if parent == nil {
		return m
	}

	var candidates []candidate
	for i, child := range parent.Children {
		score, reasoning := rules.Evaluate(child, parent.Children, i, arch, slot.Rules)
		if score > r.thresholds.CandidateFloor {
			candidates = append(candidates, candidate{node: child, index: i, score: score, reasoning: reasoning})
		}
	}
	// Stable sort keeps document order among equal scores, for determinism.
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	if len(candidates) == 0 {
		return m
	}
	m.Confidence = candidates[0].score

	if slot.AllowsMultiple {
		for _, c := range candidates {
			if c.score >= r.thresholds.SelectionFloor {
				m.MatchedNodes = append(m.MatchedNodes, c.node)
				if c.score > 0.5 {
					m.Reasoning = append(m.Reasoning, c.reasoning...)
				}
			}
		}
		return m
	}

	if top := candidates[0]; top.score >= r.thresholds.SelectionFloor {
		m.MatchedNodes = append(m.MatchedNodes, top.node)
		if top.score > 0.5 {
			m.Reasoning = append(m.Reasoning, top.reasoning...)
		}
	}
	return m
}

// resolveWithChildren resolves one slot, then its nested child slots. Each
// call returns its own slice; callers concatenate, so no shared accumulator
// crosses recursive calls.
func (r *Resolver) resolveWithChildren(parent *design.Node, slot schema.Slot, arch archetype.Archetype) ([]mapping.SlotMapping, []string, []string) {
	m := r.ResolveSlot(parent, slot, arch)

	var warnings, suggestions []string
	if slot.Required && !m.Matched() {
		warnings = append(warnings, fmt.Sprintf("Required slot %q was not found in %s", slot.Name, arch))
		suggestions = append(suggestions, fmt.Sprintf("Add a child layer matching %q so it can be detected", slot.Name))
	}

	out := []mapping.SlotMapping{m}
	if len(slot.Children) == 0 {
		return out, warnings, suggestions
	}

	targets := r.recursionTargets(m)
	if len(targets) == 0 {
		// The parent slot is empty; nested slots still contribute their
		// (empty) entries so every declared slot appears exactly once.
		out = append(out, emptySlotMappings(slot.Children)...)
		return out, warnings, suggestions
	}

	for _, target := range targets {
		for _, child := range slot.Children {
			ms, ws, sg := r.resolveWithChildren(target, child, arch)
			out = append(out, ms...)
			warnings = append(warnings, ws...)
			suggestions = append(suggestions, sg...)
		}
	}
	return out, warnings, suggestions
}

// recursionTargets picks which matched nodes nested slots descend into.
// By default only the first match: the first instance acts as the structural
// template for multi-slots. RecurseAllMatches resolves every instance.
func (r *Resolver) recursionTargets(m mapping.SlotMapping) []*design.Node {
	if !m.Matched() {
		return nil
	}
	if r.thresholds.RecurseAllMatches {
		return m.MatchedNodes
	}
	return m.MatchedNodes[:1]
}

func emptySlotMappings(slots []schema.Slot) []mapping.SlotMapping {
	var out []mapping.SlotMapping
	for _, s := range slots {
		out = append(out, mapping.SlotMapping{SlotName: s.Name})
		out = append(out, emptySlotMappings(s.Children)...)
	}
	return out
}
