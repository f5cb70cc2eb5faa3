package resolve

import (
	"archemap/internal/archetype"
	"archemap/internal/design"
	"archemap/internal/mapping"
	"archemap/internal/rules"
)

// fallbackDefaultConfidence applies when a backfilled node's name carries no
// signal of its own.
const fallbackDefaultConfidence = 0.7

// FallbackHook backfills slots for one archetype after structural resolution.
// Hooks fill empty mappings (or append ones not yet present) and must never
// replace a non-empty mapping.
type FallbackHook func(root *design.Node, mappings []mapping.SlotMapping) []mapping.SlotMapping

// FallbackRegistry holds the per-archetype backfill hooks. New archetypes opt
// in by registering; archetypes without a hook are left untouched.
type FallbackRegistry struct {
	hooks map[archetype.Archetype]FallbackHook
}

// NewFallbackRegistry builds the default registry: the title/description
// text backfill for the archetypes whose schemas carry those slots.
func NewFallbackRegistry() *FallbackRegistry {
	r := &FallbackRegistry{hooks: make(map[archetype.Archetype]FallbackHook, 8)}
	r.Register(archetype.Card, TextBackfill("CardTitle", "CardDescription"))
	r.Register(archetype.Dialog, TextBackfill("DialogTitle", "DialogDescription"))
	r.Register(archetype.AlertDialog, TextBackfill("AlertDialogTitle", "AlertDialogDescription"))
	return r
}

// Register adds or replaces the hook for an archetype.
func (r *FallbackRegistry) Register(a archetype.Archetype, hook FallbackHook) {
	if r == nil || hook == nil {
		return
	}
	r.hooks[a] = hook
}

// Patch runs the archetype's hook, if any, over the mapping list.
func (r *FallbackRegistry) Patch(a archetype.Archetype, root *design.Node, mappings []mapping.SlotMapping) []mapping.SlotMapping {
	if r == nil {
		return mappings
	}
	hook, ok := r.hooks[a]
	if !ok {
		return mappings
	}
	return hook(root, mappings)
}

// TextBackfill builds the generic title/description hook: when both slots are
// still empty, the first text-bearing direct child becomes the title and the
// second the description. Confidence is the node's best name-match score
// against the slot's vocabulary, floored at the default.
func TextBackfill(titleSlot, descriptionSlot string) FallbackHook {
	titleVocab := []string{"title", "heading", "header", "h1", "h2", "h3"}
	descVocab := []string{"description", "desc", "subtitle", "body", "text", "paragraph"}

	return func(root *design.Node, mappings []mapping.SlotMapping) []mapping.SlotMapping {
		if root == nil {
			return mappings
		}
		if slotFilled(mappings, titleSlot) && slotFilled(mappings, descriptionSlot) {
			return mappings
		}

		var textual []*design.Node
		for _, c := range root.Children {
			if c.IsText() || c.HasDirectText() {
				textual = append(textual, c)
			}
		}
		if len(textual) == 0 {
			return mappings
		}

		if !slotFilled(mappings, titleSlot) {
			mappings = fillSlot(mappings, titleSlot, textual[0], backfillConfidence(textual[0], titleVocab))
		}
		if len(textual) > 1 && !slotFilled(mappings, descriptionSlot) {
			mappings = fillSlot(mappings, descriptionSlot, textual[1], backfillConfidence(textual[1], descVocab))
		}
		return mappings
	}
}

func backfillConfidence(n *design.Node, vocab []string) float64 {
	if s := rules.NameScore(n.Name, vocab); s > fallbackDefaultConfidence {
		return s
	}
	return fallbackDefaultConfidence
}

func slotFilled(mappings []mapping.SlotMapping, name string) bool {
	for _, m := range mappings {
		if m.SlotName == name && m.Matched() {
			return true
		}
	}
	return false
}

// fillSlot fills the slot's existing empty entry in place, or appends one
// when the schema never declared it. Non-empty entries are never overwritten.
func fillSlot(mappings []mapping.SlotMapping, name string, node *design.Node, confidence float64) []mapping.SlotMapping {
	reason := node.Name + ": backfilled from text content"
	for i, m := range mappings {
		if m.SlotName != name {
			continue
		}
		if m.Matched() {
			return mappings
		}
		mappings[i].MatchedNodes = []*design.Node{node}
		mappings[i].Confidence = confidence
		mappings[i].Reasoning = append(mappings[i].Reasoning, reason)
		return mappings
	}
	return append(mappings, mapping.SlotMapping{
		SlotName:     name,
		MatchedNodes: []*design.Node{node},
		Confidence:   confidence,
		Reasoning:    []string{reason},
	})
}
