package classify

import (
	"testing"

	"archemap/internal/archetype"
	"archemap/internal/design"
	"archemap/internal/resolve"
)

func text(name string) *design.Node {
	return &design.Node{Name: name, Kind: design.KindText, TextContent: name}
}

func TestClassifyCardByNameAndShape(t *testing.T) {
	radius := 8.0
	node := &design.Node{
		Name:            "Product Card",
		CornerRadius:    &radius,
		LayoutDirection: design.LayoutVertical,
		Children: []*design.Node{
			{Name: "image", Fills: []design.Paint{{Type: "IMAGE"}}},
			text("Title"),
			text("Description"),
		},
	}
	c := New(resolve.DefaultThresholds())
	r := c.Classify(node)
	if r.Archetype != archetype.Card {
		t.Fatalf("archetype = %s (%.2f), want Card; reasons: %v", r.Archetype, r.Confidence, r.Reasons)
	}
	if r.Confidence <= 0.5 {
		t.Fatalf("confidence = %v, want > 0.5", r.Confidence)
	}
	if len(r.Reasons) == 0 {
		t.Fatalf("want explanatory reasons")
	}
}

func TestClassifyMenubarByComposition(t *testing.T) {
	menu := func(label string) *design.Node {
		return &design.Node{Name: label, Children: []*design.Node{
			text(label),
			{Name: "items", Children: []*design.Node{text("a"), text("b")}},
		}}
	}
	node := &design.Node{
		Name:     "top bar",
		Size:     &design.Size{W: 600, H: 28},
		Children: []*design.Node{menu("File"), menu("Edit"), menu("View")},
	}
	c := New(resolve.DefaultThresholds())
	r := c.Classify(node)
	if r.Archetype != archetype.Menubar {
		t.Fatalf("archetype = %s, want Menubar; reasons: %v", r.Archetype, r.Reasons)
	}
}

func TestClassifyUnknownNeverErrors(t *testing.T) {
	c := New(resolve.DefaultThresholds())

	r := c.Classify(&design.Node{Name: "xyzzy"})
	if r.Archetype != archetype.Unknown {
		t.Fatalf("archetype = %s, want Unknown", r.Archetype)
	}
	if len(r.Reasons) == 0 {
		t.Fatalf("Unknown verdict must carry reasons")
	}

	r = c.Classify(nil)
	if r.Archetype != archetype.Unknown || r.Confidence != 0 {
		t.Fatalf("nil node: %+v, want zero-confidence Unknown", r)
	}
}

func TestClassifyVariantNameBoostsButton(t *testing.T) {
	radius := 6.0
	node := &design.Node{
		Name:         "Button/Variant=Default",
		Size:         &design.Size{W: 120, H: 40},
		CornerRadius: &radius,
		Children:     []*design.Node{text("Submit")},
	}
	c := New(resolve.DefaultThresholds())
	r := c.Classify(node)
	if r.Archetype != archetype.Button {
		t.Fatalf("archetype = %s, want Button; reasons: %v", r.Archetype, r.Reasons)
	}
	if r.Confidence < 0.8 {
		t.Fatalf("confidence = %v, want >= 0.8", r.Confidence)
	}
}

func TestClassifyConfidenceInRange(t *testing.T) {
	c := New(resolve.DefaultThresholds())
	nodes := []*design.Node{
		{Name: "menubar menu menubar"},
		{Name: "card card card", LayoutDirection: design.LayoutVertical},
		nil,
	}
	for _, n := range nodes {
		r := c.Classify(n)
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Fatalf("confidence %v out of [0,1]", r.Confidence)
		}
	}
}
