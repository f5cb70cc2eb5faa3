package rules

import (
	"strings"
	"testing"

	"archemap/internal/archetype"
	"archemap/internal/design"
)

func textNode(name string) *design.Node {
	return &design.Node{Name: name, Kind: design.KindText, TextContent: name}
}

func TestEvaluateNormalizesByWeight(t *testing.T) {
	node := textNode("title")
	siblings := []*design.Node{node}

	ruleSet := []Rule{
		NameRule(2.0, "name suggests a title", "title"), // score 1.0
		HasTextRule(1.0),                                // score 1.0
		SeparatorRule(1.0),                              // score 0
	}
	score, _ := Evaluate(node, siblings, 0, archetype.Card, ruleSet)
	want := (1.0*2.0 + 1.0*1.0) / 4.0
	if diff := score - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("score = %v, want %v", score, want)
	}
}

func TestEvaluateZeroWeightTotal(t *testing.T) {
	node := textNode("title")
	score, reasons := Evaluate(node, []*design.Node{node}, 0, archetype.Card, []Rule{
		{Kind: KindNamePattern, Weight: 0, Score: func(*design.Node, Context) float64 { return 1.0 }, Description: "zero weight"},
	})
	if score != 0 {
		t.Fatalf("score = %v, want 0 when total weight is 0", score)
	}
	// A zero-weight rule still contributed a reasoning line if it scored > 0.5.
	if len(reasons) != 1 {
		t.Fatalf("reasons = %v, want 1 entry", reasons)
	}
}

func TestEvaluateReasoningTrail(t *testing.T) {
	node := textNode("card-title")
	_, reasons := Evaluate(node, []*design.Node{node}, 0, archetype.Card, []Rule{
		NameRule(1.0, "name suggests a title", "title"),
	})
	if len(reasons) != 1 {
		t.Fatalf("reasons = %v, want 1 entry", reasons)
	}
	if !strings.Contains(reasons[0], "card-title:") || !strings.Contains(reasons[0], "name suggests a title") || !strings.Contains(reasons[0], "90%") {
		t.Fatalf("unexpected reasoning line: %q", reasons[0])
	}
}

func TestEvaluateScoresStayInRange(t *testing.T) {
	node := textNode("anything")
	score, _ := Evaluate(node, []*design.Node{node}, 0, archetype.Unknown, []Rule{
		{Kind: KindSemantic, Weight: 1.0, Score: func(*design.Node, Context) float64 { return 3.0 }, Description: "overshoots"},
		{Kind: KindSemantic, Weight: 1.0, Score: func(*design.Node, Context) float64 { return -2.0 }, Description: "undershoots"},
	})
	if score < 0 || score > 1 {
		t.Fatalf("score %v out of [0,1]", score)
	}
}

func TestPositionScores(t *testing.T) {
	siblings := make([]*design.Node, 4)
	for i := range siblings {
		siblings[i] = &design.Node{Name: "n"}
	}
	top := []float64{1.0, 0.7, 0, 0}
	bottom := []float64{0, 0, 0.7, 1.0}
	middle := []float64{0, 0.8, 0.8, 0}
	for i := range siblings {
		ctx := Context{Siblings: siblings, Index: i}
		if got := TopScore(ctx); got != top[i] {
			t.Fatalf("TopScore(%d) = %v, want %v", i, got, top[i])
		}
		if got := BottomScore(ctx); got != bottom[i] {
			t.Fatalf("BottomScore(%d) = %v, want %v", i, got, bottom[i])
		}
		if got := MiddleScore(ctx); got != middle[i] {
			t.Fatalf("MiddleScore(%d) = %v, want %v", i, got, middle[i])
		}
	}
}

func TestMiddleScoreNeedsThreeSiblings(t *testing.T) {
	two := []*design.Node{{Name: "a"}, {Name: "b"}}
	if got := MiddleScore(Context{Siblings: two, Index: 1}); got != 0 {
		t.Fatalf("MiddleScore with 2 siblings = %v, want 0", got)
	}
}

func TestHasTextScore(t *testing.T) {
	if got := HasTextScore(textNode("t")); got != 1.0 {
		t.Fatalf("text node = %v, want 1.0", got)
	}
	frame := &design.Node{Name: "f", Children: []*design.Node{textNode("t")}}
	if got := HasTextScore(frame); got != 0.9 {
		t.Fatalf("frame with text child = %v, want 0.9", got)
	}
	empty := &design.Node{Name: "f"}
	if got := HasTextScore(empty); got != 0 {
		t.Fatalf("empty frame = %v, want 0", got)
	}
}

func TestSeparatorScoreMissingSize(t *testing.T) {
	// Missing optional fields are "no match", never an error.
	if got := SeparatorScore(&design.Node{Name: "sep"}); got != 0 {
		t.Fatalf("missing size = %v, want 0", got)
	}
	hairline := &design.Node{Name: "sep", Size: &design.Size{W: 100, H: 1}}
	if got := SeparatorScore(hairline); got != 0.9 {
		t.Fatalf("hairline = %v, want 0.9", got)
	}
}

func TestTitleLikeBlend(t *testing.T) {
	node := textNode("title")
	ctx := Context{Siblings: []*design.Node{node}, Index: 0}
	// 0.4*1.0 + 0.3*1.0 + 0.3*1.0
	if got := TitleLikeScore(node, ctx); got < 0.999 || got > 1.0 {
		t.Fatalf("TitleLikeScore = %v, want 1.0", got)
	}
}
