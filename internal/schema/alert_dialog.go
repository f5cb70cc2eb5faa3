package schema

import (
	"archemap/internal/archetype"
	"archemap/internal/rules"
)

func alertDialogSchema() *ComponentSchema {
	return &ComponentSchema{
		Archetype: archetype.AlertDialog,
		Slots: []Slot{
			{
				Name:     "AlertDialogContent",
				Required: true,
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests alert content", "content", "alert", "dialog", "modal"),
					rules.ChildCountRule(0.5, "has inner structure", 1, 0),
				},
				Children: []Slot{
					{
						Name:     "AlertDialogTitle",
						Required: true,
						Rules: []rules.Rule{
							rules.NameRule(1.0, "name suggests a title", "title", "heading"),
							rules.TitleLikeRule(0.8),
						},
					},
					{
						Name: "AlertDialogDescription",
						Rules: []rules.Rule{
							rules.NameRule(1.0, "name suggests a description", "description", "desc", "message"),
							rules.DescriptionLikeRule(0.8),
						},
					},
					{
						Name: "AlertDialogFooter",
						Rules: []rules.Rule{
							rules.NameRule(1.0, "name suggests actions", "footer", "actions", "buttons"),
							rules.BottomRule(0.8),
						},
						Children: []Slot{
							{
								Name: "AlertDialogCancel",
								Rules: []rules.Rule{
									rules.NameRule(1.0, "name suggests a cancel action", "cancel", "dismiss", "close", "no"),
									rules.TopRule(0.3),
								},
							},
							{
								Name: "AlertDialogAction",
								Rules: []rules.Rule{
									rules.NameRule(1.0, "name suggests a confirm action", "action", "confirm", "ok", "continue", "yes"),
									rules.BottomRule(0.3),
								},
							},
						},
					},
				},
			},
		},
	}
}
