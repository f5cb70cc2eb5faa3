// Package rules implements the weighted detection-rule engine that scores how
// well a candidate node fits a structural slot.
package rules

import (
	"archemap/internal/archetype"
	"archemap/internal/design"
)

// Kind tags a rule for the reasoning trail. It is purely descriptive and never
// changes how a rule is evaluated.
type Kind int

const (
	KindNamePattern Kind = iota
	KindPosition
	KindContentType
	KindSize
	KindSemantic
	KindHierarchy
)

func (k Kind) String() string {
	switch k {
	case KindNamePattern:
		return "name"
	case KindPosition:
		return "position"
	case KindContentType:
		return "content"
	case KindSize:
		return "size"
	case KindSemantic:
		return "semantic"
	case KindHierarchy:
		return "hierarchy"
	default:
		return "unknown"
	}
}

// Context carries the per-evaluation surroundings of the candidate node.
// It is derived fresh for every evaluation and never stored.
type Context struct {
	Parent    *design.Node
	Siblings  []*design.Node
	Index     int
	Archetype archetype.Archetype
}

// ScoreFunc measures one aspect of node-to-slot fit, in [0,1].
type ScoreFunc func(node *design.Node, ctx Context) float64

// Rule is one weighted detection criterion. Weights within a slot need not sum
// to 1; Evaluate normalizes by the weight total.
type Rule struct {
	Kind        Kind
	Weight      float64
	Score       ScoreFunc
	Description string
}
