package classify

import (
	"strings"

	"archemap/internal/design"
	"archemap/internal/rules"
)

// Heuristics accumulate fixed signal increments and clamp at 1. Each signal
// contributes a human-readable reason so the verdict stays explainable.

type signals struct {
	confidence float64
	reasons    []string
}

func (s *signals) add(amount float64, reason string) {
	s.confidence += amount
	s.reasons = append(s.reasons, reason)
}

func (s *signals) result() (float64, []string) {
	return s.confidence, s.reasons
}

func nameSignal(node *design.Node, patterns ...string) bool {
	return rules.NameScore(node.Name, patterns) >= 0.7
}

// hasVariantName detects component-set variant naming such as "Variant=Default"
// or "Active=On".
func hasVariantName(node *design.Node) bool {
	return strings.Contains(node.Name, "=")
}

func triggerContentPairCount(node *design.Node) int {
	count := 0
	for _, c := range node.Children {
		if rules.TriggerContentPairScore(c) > 0 {
			count++
		}
	}
	return count
}

func scoreMenubar(node *design.Node) (float64, []string) {
	var s signals
	if nameSignal(node, "menubar", "menu") {
		s.add(0.5, "Name suggests a menubar")
	}
	if pairs := triggerContentPairCount(node); pairs >= 2 {
		s.add(0.5, "Multiple children pair a trigger with content")
	}
	if rules.WideShortScore(node, 6, 60) > 0 {
		s.add(0.3, "Very wide and short shape")
	}
	if node.LayoutDirection == design.LayoutHorizontal {
		s.add(0.2, "Horizontal layout")
	}
	return s.result()
}

func scoreTabs(node *design.Node) (float64, []string) {
	var s signals
	if nameSignal(node, "tabs", "tab") {
		s.add(0.5, "Name suggests tabs")
	}
	if len(node.Children) >= 2 {
		list := node.Children[0]
		if len(list.Children) >= 2 && allHaveText(list.Children) {
			s.add(0.4, "First child holds a row of text triggers")
		}
	}
	return s.result()
}

func scoreButton(node *design.Node) (float64, []string) {
	var s signals
	if nameSignal(node, "button", "btn", "cta") {
		s.add(0.5, "Name suggests a button")
	}
	if node.Size != nil && node.Size.W < 320 && node.Size.H < 80 && node.CornerRadius != nil {
		s.add(0.3, "Small rounded shape")
	}
	if len(node.Children) == 1 && node.Children[0].IsText() {
		s.add(0.3, "Single text child")
	}
	if hasVariantName(node) {
		s.add(0.2, "Variant-style name")
	}
	return s.result()
}

func scoreDialog(node *design.Node) (float64, []string) {
	var s signals
	if nameSignal(node, "dialog", "modal", "popup", "overlay") {
		s.add(0.5, "Name suggests a dialog")
	}
	if hasChildNamed(node, "header", "title") && hasChildNamed(node, "footer", "actions", "buttons") {
		s.add(0.3, "Header and footer structure")
	}
	if node.Size != nil && rules.SquareishScore(node) > 0 {
		s.add(0.1, "Dialog-like proportions")
	}
	return s.result()
}

func scoreAlertDialog(node *design.Node) (float64, []string) {
	var s signals
	if nameSignal(node, "alert", "alertdialog", "confirm", "warning") {
		s.add(0.5, "Name suggests an alert dialog")
	}
	if hasChildNamed(node, "cancel", "dismiss") && hasChildNamed(node, "action", "confirm", "ok") {
		s.add(0.4, "Cancel and confirm actions present")
	}
	return s.result()
}

func scoreCard(node *design.Node) (float64, []string) {
	var s signals
	if nameSignal(node, "card", "tile", "panel") {
		s.add(0.5, "Name suggests a card")
	}
	if node.CornerRadius != nil && *node.CornerRadius > 0 {
		s.add(0.2, "Rounded corners")
	}
	if node.LayoutDirection == design.LayoutVertical && len(node.Children) >= 2 && len(node.Children) <= 5 {
		s.add(0.2, "Vertical stack of a few sections")
	}
	if node.HasImageFill() || anyChildHasImageFill(node) {
		s.add(0.2, "Has image fill")
	}
	return s.result()
}

func scoreAccordion(node *design.Node) (float64, []string) {
	var s signals
	if nameSignal(node, "accordion", "faq", "collapse") {
		s.add(0.5, "Name suggests an accordion")
	}
	if pairs := triggerContentPairCount(node); pairs >= 2 && node.LayoutDirection != design.LayoutHorizontal {
		s.add(0.4, "Stacked trigger and content pairs")
	}
	return s.result()
}

func scoreTable(node *design.Node) (float64, []string) {
	var s signals
	if nameSignal(node, "table", "grid", "datagrid") {
		s.add(0.5, "Name suggests a table")
	}
	if uniformRowShape(node) {
		s.add(0.4, "Rows with a uniform cell count")
	}
	return s.result()
}

func scoreCarousel(node *design.Node) (float64, []string) {
	var s signals
	if nameSignal(node, "carousel", "slider", "gallery", "slideshow") {
		s.add(0.5, "Name suggests a carousel")
	}
	if len(node.Children) >= 3 && node.LayoutDirection == design.LayoutHorizontal {
		s.add(0.3, "Horizontal strip of slides")
	}
	if anyChildHasImageFill(node) {
		s.add(0.2, "Slides carry image fills")
	}
	return s.result()
}

func allHaveText(nodes []*design.Node) bool {
	for _, n := range nodes {
		if rules.HasTextScore(n) == 0 {
			return false
		}
	}
	return len(nodes) > 0
}

func hasChildNamed(node *design.Node, patterns ...string) bool {
	for _, c := range node.Children {
		if rules.NameScore(c.Name, patterns) >= 0.7 {
			return true
		}
	}
	return false
}

func anyChildHasImageFill(node *design.Node) bool {
	for _, c := range node.Children {
		if c.HasImageFill() {
			return true
		}
	}
	return false
}

// uniformRowShape: at least three container children sharing one non-zero
// child count, the shape of table rows.
func uniformRowShape(node *design.Node) bool {
	if len(node.Children) < 3 {
		return false
	}
	counts := make(map[int]int)
	for _, c := range node.Children {
		if len(c.Children) > 0 {
			counts[len(c.Children)]++
		}
	}
	for _, n := range counts {
		if n >= 3 {
			return true
		}
	}
	return false
}
