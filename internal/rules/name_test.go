package rules

import "testing"

func TestNameScoreTiers(t *testing.T) {
	cases := []struct {
		name     string
		patterns []string
		want     float64
	}{
		{"title", []string{"title"}, 1.0},
		{"Title", []string{"title"}, 1.0},
		{"card-title", []string{"title"}, 0.9},
		{"card_title", []string{"title"}, 0.9},
		{"main title", []string{"title"}, 0.9},
		{"subtitle", []string{"title"}, 0.8},
		{"titled", []string{"title"}, 0.7},
		{"notathing", []string{"title"}, 0},
		{"", []string{"title"}, 0},
		{"header", []string{"title", "header"}, 1.0},
	}
	for _, c := range cases {
		if got := NameScore(c.name, c.patterns); got != c.want {
			t.Fatalf("NameScore(%q, %v) = %v, want %v", c.name, c.patterns, got, c.want)
		}
	}
}

func TestNameScoreBestPatternWins(t *testing.T) {
	// "card-title" is a word-boundary match for "title" (0.9) but only a
	// substring match for "card-t" would be weaker; the best tier must win.
	if got := NameScore("card-title", []string{"notathing", "title"}); got != 0.9 {
		t.Fatalf("got %v, want 0.9", got)
	}
}
