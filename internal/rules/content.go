package rules

import "archemap/internal/design"

// HasTextScore: 1.0 when the node itself is text, 0.9 when any direct child is.
func HasTextScore(node *design.Node) float64 {
	if node.IsText() {
		return 1.0
	}
	if node.HasDirectText() {
		return 0.9
	}
	return 0
}

// HasTextRule builds a ContentType rule over HasTextScore.
func HasTextRule(weight float64) Rule {
	return Rule{
		Kind:        KindContentType,
		Weight:      weight,
		Description: "contains text content",
		Score: func(node *design.Node, _ Context) float64 {
			return HasTextScore(node)
		},
	}
}

// HasChildrenScore: 1.0 for nodes with children, 0 for leaves.
func HasChildrenScore(node *design.Node) float64 {
	if len(node.Children) > 0 {
		return 1.0
	}
	return 0
}

// Semantic blends. Each is a fixed linear combination of name/position/content
// scores; the weights are part of the catalog's tuned behavior.

var (
	titleVocabulary       = []string{"title", "heading", "header", "h1", "h2", "h3"}
	descriptionVocabulary = []string{"description", "desc", "subtitle", "body", "text", "paragraph"}
	headerVocabulary      = []string{"header", "head", "top", "heading"}
	footerVocabulary      = []string{"footer", "foot", "bottom", "actions"}
	contentVocabulary     = []string{"content", "body", "main", "container"}
)

// TitleLikeScore = 0.4*hasText + 0.3*top + 0.3*name{title,heading,header,h1,h2,h3}.
func TitleLikeScore(node *design.Node, ctx Context) float64 {
	return 0.4*HasTextScore(node) + 0.3*TopScore(ctx) + 0.3*NameScore(node.Name, titleVocabulary)
}

// DescriptionLikeScore = 0.4*hasText + 0.3*name{description,...} + 0.3*second position.
func DescriptionLikeScore(node *design.Node, ctx Context) float64 {
	second := 0.0
	if ctx.Index == 1 {
		second = 1.0
	}
	return 0.4*HasTextScore(node) + 0.3*NameScore(node.Name, descriptionVocabulary) + 0.3*second
}

// HeaderLikeScore = 0.5*top + 0.5*name{header,...}.
func HeaderLikeScore(node *design.Node, ctx Context) float64 {
	return 0.5*TopScore(ctx) + 0.5*NameScore(node.Name, headerVocabulary)
}

// FooterLikeScore = 0.5*bottom + 0.5*name{footer,...}.
func FooterLikeScore(node *design.Node, ctx Context) float64 {
	return 0.5*BottomScore(ctx) + 0.5*NameScore(node.Name, footerVocabulary)
}

// ContentLikeScore = 0.4*middle + 0.3*name{content,...} + 0.3*hasChildren.
func ContentLikeScore(node *design.Node, ctx Context) float64 {
	return 0.4*MiddleScore(ctx) + 0.3*NameScore(node.Name, contentVocabulary) + 0.3*HasChildrenScore(node)
}

// SemanticRule builds a Semantic rule from one of the composite scorers.
func SemanticRule(weight float64, description string, score func(*design.Node, Context) float64) Rule {
	return Rule{
		Kind:        KindSemantic,
		Weight:      weight,
		Description: description,
		Score:       score,
	}
}

func TitleLikeRule(weight float64) Rule {
	return SemanticRule(weight, "looks like a title", TitleLikeScore)
}

func DescriptionLikeRule(weight float64) Rule {
	return SemanticRule(weight, "looks like a description", DescriptionLikeScore)
}

func HeaderLikeRule(weight float64) Rule {
	return SemanticRule(weight, "looks like a header", HeaderLikeScore)
}

func FooterLikeRule(weight float64) Rule {
	return SemanticRule(weight, "looks like a footer", FooterLikeScore)
}

func ContentLikeRule(weight float64) Rule {
	return SemanticRule(weight, "looks like a content area", ContentLikeScore)
}
