package schema

import (
	"archemap/internal/archetype"
	"archemap/internal/design"
	"archemap/internal/rules"
)

func dialogSchema() *ComponentSchema {
	return &ComponentSchema{
		Archetype: archetype.Dialog,
		Slots: []Slot{
			{
				Name: "DialogTrigger",
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests a trigger", "trigger", "button", "open"),
					rules.KindRule(0.4, "instance or component node", design.KindInstance, design.KindComponent),
				},
			},
			{
				Name:     "DialogContent",
				Required: true,
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests dialog content", "content", "dialog", "modal", "panel"),
					rules.ChildCountRule(0.5, "has inner structure", 1, 0),
				},
				Children: []Slot{
					{
						Name: "DialogHeader",
						Rules: []rules.Rule{
							rules.NameRule(1.0, "name suggests a header", "header", "head"),
							rules.TopRule(0.7),
							rules.HeaderLikeRule(0.5),
						},
						Children: []Slot{
							{
								Name:     "DialogTitle",
								Required: true,
								Rules: []rules.Rule{
									rules.NameRule(1.0, "name suggests a title", "title", "heading"),
									rules.TitleLikeRule(0.8),
								},
							},
							{
								Name: "DialogDescription",
								Rules: []rules.Rule{
									rules.NameRule(1.0, "name suggests a description", "description", "desc", "subtitle"),
									rules.DescriptionLikeRule(0.8),
								},
							},
						},
					},
					{
						Name: "DialogFooter",
						Rules: []rules.Rule{
							rules.NameRule(1.0, "name suggests a footer", "footer", "actions", "buttons"),
							rules.BottomRule(0.8),
							rules.FooterLikeRule(0.6),
						},
					},
				},
			},
		},
	}
}
