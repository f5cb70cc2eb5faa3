package schema

import (
	"archemap/internal/archetype"
	"archemap/internal/rules"
)

func accordionSchema() *ComponentSchema {
	return &ComponentSchema{
		Archetype: archetype.Accordion,
		Slots: []Slot{
			{
				Name:           "AccordionItem",
				Required:       true,
				AllowsMultiple: true,
				Rules: []rules.Rule{
					rules.TriggerContentPairRule(1.0),
					rules.NameRule(0.6, "name suggests an accordion item", "item", "accordion", "section", "panel"),
				},
				Children: []Slot{
					{
						Name:     "AccordionTrigger",
						Required: true,
						Rules: []rules.Rule{
							rules.TopRule(1.0),
							rules.HasTextRule(0.9),
							rules.NameRule(0.5, "name suggests a trigger", "trigger", "header", "question"),
						},
					},
					{
						Name:     "AccordionContent",
						Required: true,
						Rules: []rules.Rule{
							rules.BottomRule(1.0),
							rules.NameRule(0.5, "name suggests content", "content", "body", "answer"),
							rules.ChildCountRule(0.4, "has inner structure", 1, 0),
						},
					},
				},
			},
		},
	}
}
