package skeleton

import (
	"strings"
	"testing"

	"archemap/internal/archetype"
	"archemap/internal/design"
	"archemap/internal/mapping"
)

func cardResult() *mapping.Result {
	title := &design.Node{Name: "Heading", Kind: design.KindText, TextContent: "Heading"}
	content := &design.Node{Name: "body", Children: []*design.Node{
		{Name: "row one"},
		{Name: "row two"},
	}}
	return &mapping.Result{
		Archetype: archetype.Card,
		Mappings: []mapping.SlotMapping{
			{SlotName: "CardTitle", MatchedNodes: []*design.Node{title}, Confidence: 0.9},
			{SlotName: "CardDescription"},
			{SlotName: "CardContent", MatchedNodes: []*design.Node{content}, Confidence: 0.6},
		},
		OverallConfidence: 0.5,
	}
}

func TestEmitTextSlotBecomesProp(t *testing.T) {
	sk := New().Emit(cardResult())
	if !strings.Contains(sk.Code, "<CardTitle>{props.title}</CardTitle>") {
		t.Fatalf("title prop placeholder missing:\n%s", sk.Code)
	}
}

func TestEmitStructuralSlotCommentsGrandchildren(t *testing.T) {
	sk := New().Emit(cardResult())
	if !strings.Contains(sk.Code, "{/* row one */}") || !strings.Contains(sk.Code, "{/* row two */}") {
		t.Fatalf("grandchild comment placeholders missing:\n%s", sk.Code)
	}
}

func TestEmitPropsInterface(t *testing.T) {
	sk := New().Emit(cardResult())
	// High-confidence slot: required prop. Low-confidence slot: optional.
	if !strings.Contains(sk.PropsInterface, "title: React.ReactNode;") {
		t.Fatalf("title prop missing or optional:\n%s", sk.PropsInterface)
	}
	if !strings.Contains(sk.PropsInterface, "content?: React.ReactNode;") {
		t.Fatalf("content prop should be optional:\n%s", sk.PropsInterface)
	}
	// Empty slots contribute no prop; the className escape hatch is fixed.
	if strings.Contains(sk.PropsInterface, "description") {
		t.Fatalf("empty slot leaked a prop:\n%s", sk.PropsInterface)
	}
	if !strings.Contains(sk.PropsInterface, "className?: string;") {
		t.Fatalf("className missing:\n%s", sk.PropsInterface)
	}
}

func TestEmitImportsUsedTagsOnly(t *testing.T) {
	sk := New().Emit(cardResult())
	if len(sk.Imports) != 1 {
		t.Fatalf("imports = %v, want 1 line", sk.Imports)
	}
	line := sk.Imports[0]
	for _, want := range []string{"Card", "CardTitle", "CardContent", "@/components/ui/card"} {
		if !strings.Contains(line, want) {
			t.Fatalf("import line missing %q: %s", want, line)
		}
	}
	if strings.Contains(line, "CardDescription") {
		t.Fatalf("unmatched slot imported: %s", line)
	}
}

func TestEmitNilResult(t *testing.T) {
	sk := New().Emit(nil)
	if sk.Code != "" || len(sk.Imports) != 0 {
		t.Fatalf("nil result produced output: %+v", sk)
	}
}
