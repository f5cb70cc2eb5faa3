package resolve

import (
	"testing"

	"archemap/internal/archetype"
	"archemap/internal/design"
	"archemap/internal/rules"
	"archemap/internal/schema"
)

// scoreByName assigns fixed scores to nodes by name; everything else scores 0.
func scoreByName(scores map[string]float64) rules.Rule {
	return rules.Rule{
		Kind:        rules.KindSemantic,
		Weight:      1.0,
		Description: "fixed score",
		Score: func(node *design.Node, _ rules.Context) float64 {
			return scores[node.Name]
		},
	}
}

func fixedParent(names ...string) *design.Node {
	p := &design.Node{Name: "parent"}
	for _, n := range names {
		p.Children = append(p.Children, &design.Node{Name: n})
	}
	return p
}

func TestResolveSlotSingularPicksTopCandidate(t *testing.T) {
	parent := fixedParent("a", "b", "c")
	slot := schema.Slot{
		Name:  "Slot",
		Rules: []rules.Rule{scoreByName(map[string]float64{"a": 0.9, "b": 0.7, "c": 0.6})},
	}
	r := New(DefaultThresholds())
	m := r.ResolveSlot(parent, slot, archetype.Card)

	if len(m.MatchedNodes) != 1 {
		t.Fatalf("matched %d nodes, want 1", len(m.MatchedNodes))
	}
	if m.MatchedNodes[0].Name != "a" {
		t.Fatalf("matched %q, want %q", m.MatchedNodes[0].Name, "a")
	}
	if m.Confidence != 0.9 {
		t.Fatalf("confidence = %v, want 0.9", m.Confidence)
	}
}

func TestResolveSlotMultipleSelectsAllAboveFloor(t *testing.T) {
	parent := fixedParent("a", "b", "c", "d")
	slot := schema.Slot{
		Name:           "Slot",
		AllowsMultiple: true,
		Rules:          []rules.Rule{scoreByName(map[string]float64{"a": 0.9, "b": 0.7, "c": 0.6, "d": 0.4})},
	}
	r := New(DefaultThresholds())
	m := r.ResolveSlot(parent, slot, archetype.Card)

	if len(m.MatchedNodes) != 3 {
		t.Fatalf("matched %d nodes, want 3", len(m.MatchedNodes))
	}
	// Descending score order.
	want := []string{"a", "b", "c"}
	for i, n := range m.MatchedNodes {
		if n.Name != want[i] {
			t.Fatalf("matched[%d] = %q, want %q", i, n.Name, want[i])
		}
	}
}

func TestResolveSlotConfidenceWithoutSelection(t *testing.T) {
	// A candidate above the candidate floor but below the selection floor
	// still sets the slot confidence, with no matched nodes.
	parent := fixedParent("a")
	slot := schema.Slot{
		Name:  "Slot",
		Rules: []rules.Rule{scoreByName(map[string]float64{"a": 0.4})},
	}
	r := New(DefaultThresholds())
	m := r.ResolveSlot(parent, slot, archetype.Card)

	if m.Matched() {
		t.Fatalf("expected no match, got %v", m.MatchedNodes)
	}
	if m.Confidence != 0.4 {
		t.Fatalf("confidence = %v, want 0.4", m.Confidence)
	}
}

func TestResolveSlotBelowCandidateFloor(t *testing.T) {
	parent := fixedParent("a")
	slot := schema.Slot{
		Name:  "Slot",
		Rules: []rules.Rule{scoreByName(map[string]float64{"a": 0.2})},
	}
	r := New(DefaultThresholds())
	m := r.ResolveSlot(parent, slot, archetype.Card)

	if m.Matched() || m.Confidence != 0 {
		t.Fatalf("want empty mapping with confidence 0, got %+v", m)
	}
}

func TestResolveSchemaEverySlotProducesOneMapping(t *testing.T) {
	cat := schema.NewCatalog()
	s, ok := cat.Lookup(archetype.Card)
	if !ok {
		t.Fatalf("card schema missing")
	}
	r := New(DefaultThresholds())
	// Empty root: nothing matches, but every declared slot must still appear.
	mappings, _, _ := r.ResolveSchema(&design.Node{Name: "empty"}, s)
	if len(mappings) != s.SlotCount() {
		t.Fatalf("got %d mappings, want %d (one per declared slot)", len(mappings), s.SlotCount())
	}
	seen := map[string]int{}
	for _, m := range mappings {
		seen[m.SlotName]++
	}
	for name, n := range seen {
		if n != 1 {
			t.Fatalf("slot %q appeared %d times, want 1", name, n)
		}
	}
}

func TestResolveSchemaRequiredSlotWarning(t *testing.T) {
	cat := schema.NewCatalog()
	s, _ := cat.Lookup(archetype.Card)
	r := New(DefaultThresholds())
	_, warnings, suggestions := r.ResolveSchema(&design.Node{Name: "empty"}, s)
	if len(warnings) == 0 || len(suggestions) == 0 {
		t.Fatalf("want warnings and suggestions for missing required slots, got %v / %v", warnings, suggestions)
	}
}

func TestRecursionDescendsOnlyFirstMatchByDefault(t *testing.T) {
	item := func(label string) *design.Node {
		return &design.Node{Name: "item", Children: []*design.Node{
			{Name: label, Kind: design.KindText, TextContent: label},
			{Name: "inner", Children: []*design.Node{{Name: "x", Kind: design.KindText, TextContent: "x"}}},
		}}
	}
	root := &design.Node{Name: "accordion", Children: []*design.Node{item("One"), item("Two"), item("Three")}}
	cat := schema.NewCatalog()
	s, _ := cat.Lookup(archetype.Accordion)

	r := New(DefaultThresholds())
	mappings, _, _ := r.ResolveSchema(root, s)
	triggers := 0
	for _, m := range mappings {
		if m.SlotName == "AccordionTrigger" {
			triggers++
		}
	}
	if triggers != 1 {
		t.Fatalf("got %d AccordionTrigger mappings, want 1 (first match is the template)", triggers)
	}

	all := DefaultThresholds()
	all.RecurseAllMatches = true
	mappings, _, _ = New(all).ResolveSchema(root, s)
	triggers = 0
	for _, m := range mappings {
		if m.SlotName == "AccordionTrigger" {
			triggers++
		}
	}
	if triggers != 3 {
		t.Fatalf("got %d AccordionTrigger mappings with RecurseAllMatches, want 3", triggers)
	}
}
