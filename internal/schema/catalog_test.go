package schema

import (
	"testing"

	"archemap/internal/archetype"
)

func TestCatalogCoversAllArchetypes(t *testing.T) {
	c := NewCatalog()
	for _, a := range archetype.All() {
		s, ok := c.Lookup(a)
		if !ok {
			t.Fatalf("no schema registered for %s", a)
		}
		if s.Archetype != a {
			t.Fatalf("schema for %s reports archetype %s", a, s.Archetype)
		}
		if len(s.Slots) == 0 {
			t.Fatalf("schema for %s declares no slots", a)
		}
	}
	if _, ok := c.Lookup(archetype.Unknown); ok {
		t.Fatalf("Unknown must not have a schema")
	}
}

func TestCatalogSlotShapes(t *testing.T) {
	c := NewCatalog()

	card, _ := c.Lookup(archetype.Card)
	if card.SlotCount() != 5 {
		t.Fatalf("card slot count = %d, want 5", card.SlotCount())
	}

	menubar, _ := c.Lookup(archetype.Menubar)
	menu := menubar.Slots[0]
	if menu.Name != "MenubarMenu" || !menu.AllowsMultiple || !menu.Required {
		t.Fatalf("unexpected MenubarMenu slot: %+v", menu)
	}
	if len(menu.Children) != 2 {
		t.Fatalf("MenubarMenu children = %d, want 2", len(menu.Children))
	}
}

func TestCatalogSlotNamesUniqueWithinParent(t *testing.T) {
	c := NewCatalog()
	for _, a := range c.Archetypes() {
		s, _ := c.Lookup(a)
		checkUnique(t, a.String(), s.Slots)
	}
}

func checkUnique(t *testing.T, scope string, slots []Slot) {
	t.Helper()
	seen := map[string]struct{}{}
	for _, s := range slots {
		if _, dup := seen[s.Name]; dup {
			t.Fatalf("%s: duplicate slot name %q", scope, s.Name)
		}
		seen[s.Name] = struct{}{}
		checkUnique(t, scope+"/"+s.Name, s.Children)
	}
}

func TestCatalogRuleWeightsNonNegative(t *testing.T) {
	c := NewCatalog()
	for _, a := range c.Archetypes() {
		s, _ := c.Lookup(a)
		checkWeights(t, a.String(), s.Slots)
	}
}

func checkWeights(t *testing.T, scope string, slots []Slot) {
	t.Helper()
	for _, s := range slots {
		for _, r := range s.Rules {
			if r.Weight < 0 {
				t.Fatalf("%s/%s: negative rule weight %v", scope, s.Name, r.Weight)
			}
			if r.Score == nil {
				t.Fatalf("%s/%s: rule %q has no scorer", scope, s.Name, r.Description)
			}
		}
		checkWeights(t, scope+"/"+s.Name, s.Children)
	}
}

func TestEmptyCatalogAndRegister(t *testing.T) {
	c := NewEmptyCatalog()
	if _, ok := c.Lookup(archetype.Card); ok {
		t.Fatalf("empty catalog resolved Card")
	}
	c.Register(&ComponentSchema{Archetype: archetype.Card, Slots: []Slot{{Name: "CardContent"}}})
	s, ok := c.Lookup(archetype.Card)
	if !ok || s.SlotCount() != 1 {
		t.Fatalf("registration failed: %+v", s)
	}
}
