package schema

import (
	"archemap/internal/archetype"
	"archemap/internal/rules"
)

func cardSchema() *ComponentSchema {
	return &ComponentSchema{
		Archetype: archetype.Card,
		Slots: []Slot{
			{
				Name:     "CardHeader",
				Required: true,
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests a header", "header", "head", "top"),
					rules.TopRule(0.8),
					rules.HeaderLikeRule(0.6),
				},
				Children: []Slot{
					{
						Name:     "CardTitle",
						Required: true,
						Rules: []rules.Rule{
							rules.NameRule(1.0, "name suggests a title", "title", "heading", "h1", "h2", "h3"),
							rules.TitleLikeRule(0.8),
							rules.HasTextRule(0.5),
						},
					},
					{
						Name: "CardDescription",
						Rules: []rules.Rule{
							rules.NameRule(1.0, "name suggests a description", "description", "desc", "subtitle"),
							rules.DescriptionLikeRule(0.8),
							rules.HasTextRule(0.4),
						},
					},
				},
			},
			{
				Name:     "CardContent",
				Required: true,
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests a content area", "content", "body", "main"),
					rules.ContentLikeRule(0.7),
					rules.MiddleRule(0.5),
				},
			},
			{
				Name: "CardFooter",
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests a footer", "footer", "foot", "actions"),
					rules.BottomRule(0.8),
					rules.FooterLikeRule(0.6),
				},
			},
		},
	}
}
