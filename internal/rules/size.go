package rules

import "archemap/internal/design"

// SeparatorScore: a hairline node (height <= 2) scores 0.9. Missing size
// scores 0, per the input contract.
func SeparatorScore(node *design.Node) float64 {
	if node.Size == nil {
		return 0
	}
	if node.Size.H > 0 && node.Size.H <= 2 {
		return 0.9
	}
	// Vertical separators in horizontal layouts.
	if node.Size.W > 0 && node.Size.W <= 2 {
		return 0.9
	}
	return 0
}

// SeparatorRule detects hairline divider nodes by size.
func SeparatorRule(weight float64) Rule {
	return Rule{
		Kind:        KindSize,
		Weight:      weight,
		Description: "hairline size suggests a separator",
		Score: func(node *design.Node, _ Context) float64 {
			return SeparatorScore(node)
		},
	}
}

// WideShortScore: 1.0 when aspect ratio >= minRatio and height <= maxHeight,
// the shape of menubars, sliders and pagination strips.
func WideShortScore(node *design.Node, minRatio, maxHeight float64) float64 {
	if node.Size == nil {
		return 0
	}
	if node.AspectRatio() >= minRatio && node.Size.H <= maxHeight {
		return 1.0
	}
	return 0
}

// WideShortRule builds a Size rule over WideShortScore.
func WideShortRule(weight float64, minRatio, maxHeight float64) Rule {
	return Rule{
		Kind:        KindSize,
		Weight:      weight,
		Description: "wide, short shape",
		Score: func(node *design.Node, _ Context) float64 {
			return WideShortScore(node, minRatio, maxHeight)
		},
	}
}

// SquareishScore: 1.0 when the aspect ratio is within [0.75, 1.33].
func SquareishScore(node *design.Node) float64 {
	r := node.AspectRatio()
	if r >= 0.75 && r <= 1.33 {
		return 1.0
	}
	return 0
}
