// Package engine wires the classifier, catalog, resolver, fallback registry
// and aggregator into the single mapping pipeline: design tree in, mapping
// result out.
package engine

import (
	"fmt"

	"archemap/internal/archetype"
	"archemap/internal/classify"
	"archemap/internal/design"
	"archemap/internal/mapping"
	"archemap/internal/resolve"
	"archemap/internal/schema"
)

// Mapper is the deterministic, stateless mapping pipeline. All dependencies
// are read-only after construction, so one Mapper serves concurrent callers
// without locking.
type Mapper struct {
	catalog    *schema.Catalog
	classifier *classify.Classifier
	resolver   *resolve.Resolver
	fallback   *resolve.FallbackRegistry
}

// New builds a Mapper over the given catalog and thresholds.
func New(catalog *schema.Catalog, t resolve.Thresholds) *Mapper {
	return &Mapper{
		catalog:    catalog,
		classifier: classify.New(t),
		resolver:   resolve.New(t),
		fallback:   resolve.NewFallbackRegistry(),
	}
}

// Default builds a Mapper with the built-in catalog and default thresholds.
func Default() *Mapper {
	return New(schema.NewCatalog(), resolve.DefaultThresholds())
}

// Classify exposes the classifier verdict without resolving slots.
func (m *Mapper) Classify(root *design.Node) classify.Result {
	return m.classifier.Classify(root)
}

// Map classifies root and resolves the matching schema's slots against it.
// The only hard failure is an input-contract violation (nil or pathological
// tree); every scoring outcome, including Unknown, is a valid result.
func (m *Mapper) Map(root *design.Node) (*mapping.Result, error) {
	if err := checkTree(root); err != nil {
		return nil, err
	}
	verdict := m.classifier.Classify(root)
	return m.Resolve(root, verdict.Archetype), nil
}

// Resolve maps root against the schema for a known archetype, skipping
// classification. Used when the caller already pinned the archetype.
func (m *Mapper) Resolve(root *design.Node, a archetype.Archetype) *mapping.Result {
	result := &mapping.Result{Archetype: a}

	s, ok := m.catalog.Lookup(a)
	if ok {
		mappings, warnings, suggestions := m.resolver.ResolveSchema(root, s)
		mappings = m.fallback.Patch(a, root, mappings)
		result.Schema = s
		result.Mappings = mappings
		result.Warnings = warnings
		result.Suggestions = suggestions
	}

	overall, warnings, suggestions := resolve.Summarize(a, result.Mappings)
	result.OverallConfidence = overall
	result.Warnings = append(result.Warnings, warnings...)
	result.Suggestions = append(result.Suggestions, suggestions...)
	return result
}

// checkTree is the input-contract guard: nil roots and trees beyond the
// decode limits are rejected before any scoring runs.
func checkTree(root *design.Node) error {
	if root == nil {
		return fmt.Errorf("malformed input: nil root node")
	}
	if d := root.Depth(); d > design.MaxDepth {
		return fmt.Errorf("malformed input: tree depth %d exceeds %d", d, design.MaxDepth)
	}
	if n := root.CountNodes(); n > design.MaxNodes {
		return fmt.Errorf("malformed input: tree has %d nodes, exceeds %d", n, design.MaxNodes)
	}
	return nil
}
