package design

import (
	"strings"
	"testing"
)

func TestDecodeFullTree(t *testing.T) {
	data := []byte(`{
	  "name": "card",
	  "kind": "FRAME",
	  "size": {"w": 320, "h": 200},
	  "cornerRadius": 8,
	  "layoutDirection": "VERTICAL",
	  "fills": [{"type": "SOLID", "color": "#ffffff"}],
	  "children": [
	    {"name": "title", "kind": "TEXT", "textContent": "Hello"},
	    {"name": "divider", "kind": "RECTANGLE", "size": {"w": 320, "h": 1}}
	  ]
	}`)
	n, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n.Name != "card" || n.Kind != KindFrame {
		t.Fatalf("root = %q/%s", n.Name, n.Kind)
	}
	if n.LayoutDirection != LayoutVertical {
		t.Fatalf("layout = %s, want VERTICAL", n.LayoutDirection)
	}
	if len(n.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(n.Children))
	}
	if !n.Children[0].IsText() || n.Children[0].TextContent != "Hello" {
		t.Fatalf("first child = %+v", n.Children[0])
	}
	if n.Children[1].Size == nil || n.Children[1].Size.H != 1 {
		t.Fatalf("second child size = %+v", n.Children[1].Size)
	}
}

func TestDecodeUnknownKindFoldsToFrame(t *testing.T) {
	n, err := Decode([]byte(`{"name": "x", "kind": "SOMETHING_NEW"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n.Kind != KindFrame {
		t.Fatalf("kind = %s, want FRAME", n.Kind)
	}
}

func TestDecodeRejectsContractViolations(t *testing.T) {
	cases := []string{
		`{"kind": "FRAME"}`,                      // missing name
		`{"name": "x"}`,                          // missing kind
		`{"name": "x", "kind": 7}`,               // kind not a string
		`{"name": "x", "kind": "FRAME", "size": {"w": -1, "h": 2}}`, // negative size
		`not json`,
	}
	for _, c := range cases {
		if _, err := Decode([]byte(c)); err == nil {
			t.Fatalf("Decode(%s) accepted invalid input", c)
		} else if !strings.Contains(err.Error(), "malformed input") {
			t.Fatalf("Decode(%s) error = %v, want malformed input", c, err)
		}
	}
}

func TestDecodeEnforcesDepthLimit(t *testing.T) {
	var b strings.Builder
	for i := 0; i <= MaxDepth; i++ {
		b.WriteString(`{"name": "n", "kind": "FRAME", "children": [`)
	}
	b.WriteString(`{"name": "leaf", "kind": "TEXT"}`)
	for i := 0; i <= MaxDepth; i++ {
		b.WriteString(`]}`)
	}
	if _, err := Decode([]byte(b.String())); err == nil || !strings.Contains(err.Error(), "depth") {
		t.Fatalf("deep tree accepted: %v", err)
	}
}

func TestNodeHelpers(t *testing.T) {
	tree := &Node{Name: "root", Children: []*Node{
		{Name: "a", Kind: KindText, TextContent: "hello"},
		{Name: "b", Children: []*Node{{Name: "c", Kind: KindText, TextContent: "deep"}}},
	}}
	if got := tree.CountNodes(); got != 4 {
		t.Fatalf("CountNodes = %d, want 4", got)
	}
	if got := tree.Depth(); got != 3 {
		t.Fatalf("Depth = %d, want 3", got)
	}
	if !tree.HasDirectText() {
		t.Fatalf("HasDirectText = false, want true")
	}
	if got := tree.FirstTextContent(); got != "hello" {
		t.Fatalf("FirstTextContent = %q, want hello", got)
	}
	if tree.Children[1].FirstTextContent() != "deep" {
		t.Fatalf("nested FirstTextContent failed")
	}
}
