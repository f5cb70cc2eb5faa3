package rules

import "archemap/internal/design"

// TriggerContentPairScore: 1.0 when the node's first child carries text (the
// trigger) and the second child is a container (the content). This is the
// shape of a menu, accordion item or tab.
func TriggerContentPairScore(node *design.Node) float64 {
	if len(node.Children) < 2 {
		return 0
	}
	trigger := node.Children[0]
	content := node.Children[1]
	if HasTextScore(trigger) == 0 {
		return 0
	}
	if len(content.Children) == 0 && content.Kind != design.KindFrame && content.Kind != design.KindGroup {
		return 0
	}
	return 1.0
}

// TriggerContentPairRule builds a Hierarchy rule over TriggerContentPairScore.
func TriggerContentPairRule(weight float64) Rule {
	return Rule{
		Kind:        KindHierarchy,
		Weight:      weight,
		Description: "trigger and content pair",
		Score: func(node *design.Node, _ Context) float64 {
			return TriggerContentPairScore(node)
		},
	}
}

// ChildCountScore: 1.0 when the direct child count is within [min, max].
// max <= 0 means unbounded.
func ChildCountScore(node *design.Node, min, max int) float64 {
	n := len(node.Children)
	if n < min {
		return 0
	}
	if max > 0 && n > max {
		return 0
	}
	return 1.0
}

// ChildCountRule builds a Hierarchy rule over ChildCountScore.
func ChildCountRule(weight float64, description string, min, max int) Rule {
	return Rule{
		Kind:        KindHierarchy,
		Weight:      weight,
		Description: description,
		Score: func(node *design.Node, _ Context) float64 {
			return ChildCountScore(node, min, max)
		},
	}
}

// KindRule scores 1.0 when the node's kind is one of the given kinds.
func KindRule(weight float64, description string, kinds ...design.NodeKind) Rule {
	return Rule{
		Kind:        KindHierarchy,
		Weight:      weight,
		Description: description,
		Score: func(node *design.Node, _ Context) float64 {
			for _, k := range kinds {
				if node.Kind == k {
					return 1.0
				}
			}
			return 0
		},
	}
}
