package rules

import (
	"strings"

	"archemap/internal/design"
)

// NameScore grades how well a node name matches any of the given patterns.
// Tiers, best match wins across all patterns:
//
//	exact (case-insensitive)           1.0
//	word-boundary (split on -, _, ws)  0.9
//	substring containment              0.8
//	prefix or suffix                   0.7
//	no match                           0.0
func NameScore(name string, patterns []string) float64 {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return 0
	}
	words := splitWords(n)

	best := 0.0
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		s := 0.0
		switch {
		case n == p:
			s = 1.0
		case containsWord(words, p):
			s = 0.9
		// Containment only counts when the pattern is not a leading run of
		// the name; "subtitle" contains "title" (0.8) but "titled" merely
		// starts with it (0.7).
		case strings.Contains(n, p) && !strings.HasPrefix(n, p):
			s = 0.8
		case strings.HasPrefix(n, p) || strings.HasSuffix(n, p):
			s = 0.7
		}
		if s > best {
			best = s
		}
	}
	return best
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '\t' || r == '\n'
	})
}

func containsWord(words []string, p string) bool {
	for _, w := range words {
		if w == p {
			return true
		}
	}
	return false
}

// NameRule builds a NamePattern rule over the given vocabulary.
func NameRule(weight float64, description string, patterns ...string) Rule {
	return Rule{
		Kind:        KindNamePattern,
		Weight:      weight,
		Description: description,
		Score: func(node *design.Node, _ Context) float64 {
			return NameScore(node.Name, patterns)
		},
	}
}
