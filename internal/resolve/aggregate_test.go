package resolve

import (
	"strings"
	"testing"

	"archemap/internal/archetype"
	"archemap/internal/mapping"
)

func TestSummarizeMeanIncludesEmptySlots(t *testing.T) {
	mappings := []mapping.SlotMapping{
		{SlotName: "A", Confidence: 0.9},
		{SlotName: "B", Confidence: 0.6},
		{SlotName: "C"}, // unmatched, pulls the mean down
	}
	overall, warnings, suggestions := Summarize(archetype.Card, mappings)
	want := (0.9 + 0.6) / 3.0
	if diff := overall - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("overall = %v, want %v", overall, want)
	}
	if len(warnings) != 0 || len(suggestions) != 0 {
		t.Fatalf("unexpected warnings/suggestions: %v / %v", warnings, suggestions)
	}
}

func TestSummarizeNoSchema(t *testing.T) {
	overall, warnings, suggestions := Summarize(archetype.Unknown, nil)
	if overall != 0 {
		t.Fatalf("overall = %v, want 0", overall)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "No schema found") {
		t.Fatalf("warnings = %v, want a 'No schema found' entry", warnings)
	}
	if len(suggestions) != 1 {
		t.Fatalf("suggestions = %v, want 1 entry", suggestions)
	}
}

func TestSummarizeIsIdempotentAndPure(t *testing.T) {
	mappings := []mapping.SlotMapping{
		{SlotName: "A", Confidence: 0.5},
		{SlotName: "B", Confidence: 0.25},
	}
	first, _, _ := Summarize(archetype.Dialog, mappings)
	second, _, _ := Summarize(archetype.Dialog, mappings)
	if first != second {
		t.Fatalf("re-running Summarize changed the result: %v then %v", first, second)
	}
	if mappings[0].Confidence != 0.5 || mappings[1].Confidence != 0.25 {
		t.Fatalf("Summarize mutated its input: %+v", mappings)
	}
}

func TestLoadThresholdsDefaultsAndOverrides(t *testing.T) {
	def := DefaultThresholds()
	if def.CandidateFloor != 0.3 || def.SelectionFloor != 0.5 {
		t.Fatalf("unexpected defaults: %+v", def)
	}
	n := Thresholds{CandidateFloor: -1, SelectionFloor: 2, ClassifyFloor: 0.4, HighConfidence: 0.9}.normalize()
	if n.CandidateFloor != 0.3 || n.SelectionFloor != 0.5 {
		t.Fatalf("out-of-range values not reset: %+v", n)
	}
	if n.ClassifyFloor != 0.4 || n.HighConfidence != 0.9 {
		t.Fatalf("valid overrides lost: %+v", n)
	}
}
