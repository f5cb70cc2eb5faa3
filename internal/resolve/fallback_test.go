package resolve

import (
	"testing"

	"archemap/internal/archetype"
	"archemap/internal/design"
	"archemap/internal/mapping"
	"archemap/internal/schema"
)

func TestTextBackfillFillsEmptyTitleAndDescription(t *testing.T) {
	// A Card without a CardHeader container, just two loose text children.
	root := &design.Node{Name: "card", Children: []*design.Node{
		{Name: "Heading", Kind: design.KindText, TextContent: "Heading"},
		{Name: "Body", Kind: design.KindText, TextContent: "Body"},
	}}

	cat := schema.NewCatalog()
	s, _ := cat.Lookup(archetype.Card)
	r := New(DefaultThresholds())
	mappings, _, _ := r.ResolveSchema(root, s)

	reg := NewFallbackRegistry()
	mappings = reg.Patch(archetype.Card, root, mappings)

	title, ok := findMapping(mappings, "CardTitle")
	if !ok || !title.Matched() {
		t.Fatalf("CardTitle not backfilled: %+v", title)
	}
	if title.MatchedNodes[0].Name != "Heading" {
		t.Fatalf("CardTitle = %q, want Heading", title.MatchedNodes[0].Name)
	}
	if title.Confidence < 0.7 {
		t.Fatalf("CardTitle confidence = %v, want >= 0.7", title.Confidence)
	}

	desc, ok := findMapping(mappings, "CardDescription")
	if !ok || !desc.Matched() {
		t.Fatalf("CardDescription not backfilled: %+v", desc)
	}
	if desc.MatchedNodes[0].Name != "Body" {
		t.Fatalf("CardDescription = %q, want Body", desc.MatchedNodes[0].Name)
	}
	if desc.Confidence < 0.7 {
		t.Fatalf("CardDescription confidence = %v, want >= 0.7", desc.Confidence)
	}

	// The invariant holds: one entry per declared slot, no duplicates.
	count := 0
	for _, m := range mappings {
		if m.SlotName == "CardTitle" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("CardTitle appears %d times after backfill, want 1", count)
	}
}

func TestTextBackfillNeverOverwritesNonEmptyMapping(t *testing.T) {
	existing := &design.Node{Name: "Existing", Kind: design.KindText}
	root := &design.Node{Name: "card", Children: []*design.Node{
		{Name: "Heading", Kind: design.KindText, TextContent: "Heading"},
	}}
	mappings := []mapping.SlotMapping{
		{SlotName: "CardTitle", MatchedNodes: []*design.Node{existing}, Confidence: 0.9},
		{SlotName: "CardDescription"},
	}

	reg := NewFallbackRegistry()
	out := reg.Patch(archetype.Card, root, mappings)

	title, _ := findMapping(out, "CardTitle")
	if title.MatchedNodes[0] != existing {
		t.Fatalf("existing CardTitle mapping was overwritten")
	}
}

func TestTextBackfillSkipsArchetypesWithoutHook(t *testing.T) {
	root := &design.Node{Name: "table", Children: []*design.Node{
		{Name: "Heading", Kind: design.KindText},
	}}
	var mappings []mapping.SlotMapping
	reg := NewFallbackRegistry()
	out := reg.Patch(archetype.Table, root, mappings)
	if len(out) != 0 {
		t.Fatalf("hookless archetype gained mappings: %+v", out)
	}
}

func findMapping(ms []mapping.SlotMapping, name string) (mapping.SlotMapping, bool) {
	for _, m := range ms {
		if m.SlotName == name {
			return m, true
		}
	}
	return mapping.SlotMapping{}, false
}
