package design

import "strings"

// NodeKind is the closed set of node variants the ingestion collaborator emits.
type NodeKind int

const (
	KindFrame NodeKind = iota
	KindText
	KindVector
	KindInstance
	KindComponent
	KindEllipse
	KindRectangle
	KindGroup
)

var kindNames = map[NodeKind]string{
	KindFrame:     "FRAME",
	KindText:      "TEXT",
	KindVector:    "VECTOR",
	KindInstance:  "INSTANCE",
	KindComponent: "COMPONENT",
	KindEllipse:   "ELLIPSE",
	KindRectangle: "RECTANGLE",
	KindGroup:     "GROUP",
}

func (k NodeKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "FRAME"
}

// ParseKind maps a wire kind string to a NodeKind. Unrecognized kinds fold into
// KindFrame so a newer extractor never breaks scoring.
func ParseKind(s string) NodeKind {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TEXT":
		return KindText
	case "VECTOR":
		return KindVector
	case "INSTANCE":
		return KindInstance
	case "COMPONENT", "COMPONENT_SET":
		return KindComponent
	case "ELLIPSE":
		return KindEllipse
	case "RECTANGLE":
		return KindRectangle
	case "GROUP":
		return KindGroup
	default:
		return KindFrame
	}
}

// LayoutDirection is the auto-layout axis, when the extractor reports one.
type LayoutDirection int

const (
	LayoutNone LayoutDirection = iota
	LayoutHorizontal
	LayoutVertical
)

func (d LayoutDirection) String() string {
	switch d {
	case LayoutHorizontal:
		return "HORIZONTAL"
	case LayoutVertical:
		return "VERTICAL"
	default:
		return "NONE"
	}
}

// Size is a node's bounding box in design units.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Paint describes one fill or stroke entry. Only the fields the rules look at
// are carried; everything else stays with the extractor.
type Paint struct {
	Type    string  `json:"type"`
	Color   string  `json:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

// Padding holds per-edge padding, all optional on the wire.
type Padding struct {
	Top    float64 `json:"top,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty"`
}

// Node is one node of the input design tree. Children are ordered: insertion
// order is the visual z/logical order and position rules depend on it.
// Nodes are treated as immutable once decoded; the tree has no back-references.
type Node struct {
	Name            string
	Kind            NodeKind
	Children        []*Node
	Size            *Size
	CornerRadius    *float64
	Fills           []Paint
	Strokes         []Paint
	TextContent     string
	LayoutDirection LayoutDirection
	ItemSpacing     *float64
	Padding         *Padding
}

// IsText reports whether the node itself carries text.
func (n *Node) IsText() bool {
	return n != nil && n.Kind == KindText
}

// HasDirectText reports whether any direct child is a text node.
func (n *Node) HasDirectText() bool {
	if n == nil {
		return false
	}
	for _, c := range n.Children {
		if c.IsText() {
			return true
		}
	}
	return false
}

// FirstTextContent returns the node's own text, or the first direct child's.
func (n *Node) FirstTextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind == KindText {
		return n.TextContent
	}
	for _, c := range n.Children {
		if c.IsText() {
			return c.TextContent
		}
	}
	return ""
}

// HasImageFill reports whether any fill entry is an image paint.
func (n *Node) HasImageFill() bool {
	if n == nil {
		return false
	}
	for _, f := range n.Fills {
		if strings.EqualFold(strings.TrimSpace(f.Type), "IMAGE") {
			return true
		}
	}
	return false
}

// AspectRatio returns width/height, or 0 when the size is absent or degenerate.
func (n *Node) AspectRatio() float64 {
	if n == nil || n.Size == nil || n.Size.H <= 0 {
		return 0
	}
	return n.Size.W / n.Size.H
}

// Walk visits the subtree pre-order. The visitor receives the node and its
// depth; returning false prunes the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	if n == nil {
		return
	}
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// CountNodes returns the number of nodes in the subtree rooted at n.
func (n *Node) CountNodes() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Depth returns the maximum depth of the subtree (root = 1).
func (n *Node) Depth() int {
	max := 0
	n.Walk(func(_ *Node, d int) bool {
		if d+1 > max {
			max = d + 1
		}
		return true
	})
	return max
}
