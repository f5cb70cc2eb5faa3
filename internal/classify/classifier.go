// Package classify decides which archetype a design subtree most likely is.
// It is a chain of per-archetype heuristics accumulating confidence signals;
// it never fails, folding weak evidence into a low-confidence Unknown.
package classify

import (
	"fmt"

	"archemap/internal/archetype"
	"archemap/internal/design"
	"archemap/internal/resolve"
)

// Result is the classifier's verdict for one root node.
type Result struct {
	Archetype  archetype.Archetype
	Confidence float64
	Reasons    []string
}

type scorer func(node *design.Node) (float64, []string)

// Classifier scores a root node against every archetype heuristic and keeps
// the best. Stateless; safe for concurrent use.
type Classifier struct {
	floor float64
	chain []struct {
		arch  archetype.Archetype
		score scorer
	}
}

// New builds a classifier with the default heuristic chain. The chain order
// matters only for ties: earlier entries win equal scores.
func New(t resolve.Thresholds) *Classifier {
	c := &Classifier{floor: t.ClassifyFloor}
	c.add(archetype.Menubar, scoreMenubar)
	c.add(archetype.Tabs, scoreTabs)
	c.add(archetype.Button, scoreButton)
	c.add(archetype.AlertDialog, scoreAlertDialog)
	c.add(archetype.Dialog, scoreDialog)
	c.add(archetype.Card, scoreCard)
	c.add(archetype.Accordion, scoreAccordion)
	c.add(archetype.Table, scoreTable)
	c.add(archetype.Carousel, scoreCarousel)
	return c
}

func (c *Classifier) add(a archetype.Archetype, s scorer) {
	c.chain = append(c.chain, struct {
		arch  archetype.Archetype
		score scorer
	}{a, s})
}

// Classify inspects node and returns the best-scoring archetype with its
// confidence and human-readable reasons. An unrecognizable tree yields
// Unknown with explanatory reasons, never an error.
func (c *Classifier) Classify(node *design.Node) Result {
	if node == nil {
		return Result{
			Archetype: archetype.Unknown,
			Reasons:   []string{"no node provided"},
		}
	}

	best := Result{Archetype: archetype.Unknown}
	for _, entry := range c.chain {
		conf, reasons := entry.score(node)
		if conf > best.Confidence {
			best = Result{Archetype: entry.arch, Confidence: clamp01(conf), Reasons: reasons}
		}
	}

	if best.Confidence < c.floor {
		return Result{
			Archetype:  archetype.Unknown,
			Confidence: best.Confidence,
			Reasons: []string{
				fmt.Sprintf("no archetype heuristic cleared the confidence floor (best: %s at %.0f%%)", best.Archetype, best.Confidence*100),
			},
		}
	}
	return best
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
