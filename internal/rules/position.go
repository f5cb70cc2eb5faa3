package rules

import "archemap/internal/design"

// TopScore favors the first sibling: index 0 scores 1.0, index 1 scores 0.7.
func TopScore(ctx Context) float64 {
	switch ctx.Index {
	case 0:
		return 1.0
	case 1:
		return 0.7
	default:
		return 0
	}
}

// BottomScore mirrors TopScore from the end of the sibling list.
func BottomScore(ctx Context) float64 {
	last := len(ctx.Siblings) - 1
	switch ctx.Index {
	case last:
		return 1.0
	case last - 1:
		return 0.7
	default:
		return 0
	}
}

// MiddleScore scores 0.8 for strictly interior nodes; requires >= 3 siblings.
func MiddleScore(ctx Context) float64 {
	if len(ctx.Siblings) < 3 {
		return 0
	}
	if ctx.Index > 0 && ctx.Index < len(ctx.Siblings)-1 {
		return 0.8
	}
	return 0
}

// PositionRule builds a Position rule from one of the positional scorers.
func PositionRule(weight float64, description string, score func(Context) float64) Rule {
	return Rule{
		Kind:        KindPosition,
		Weight:      weight,
		Description: description,
		Score: func(_ *design.Node, ctx Context) float64 {
			return score(ctx)
		},
	}
}

// TopRule, BottomRule, MiddleRule are the common positional rules.
func TopRule(weight float64) Rule {
	return PositionRule(weight, "positioned at the top", TopScore)
}

func BottomRule(weight float64) Rule {
	return PositionRule(weight, "positioned at the bottom", BottomScore)
}

func MiddleRule(weight float64) Rule {
	return PositionRule(weight, "positioned in the middle", MiddleScore)
}
