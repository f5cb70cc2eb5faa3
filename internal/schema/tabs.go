package schema

import (
	"archemap/internal/archetype"
	"archemap/internal/rules"
)

func tabsSchema() *ComponentSchema {
	return &ComponentSchema{
		Archetype: archetype.Tabs,
		Slots: []Slot{
			{
				Name:     "TabsList",
				Required: true,
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests a tab list", "list", "tabs", "tablist", "nav"),
					rules.TopRule(0.8),
					rules.WideShortRule(0.5, 4, 64),
				},
				Children: []Slot{
					{
						Name:           "TabsTrigger",
						Required:       true,
						AllowsMultiple: true,
						Rules: []rules.Rule{
							rules.HasTextRule(1.0),
							rules.NameRule(0.5, "name suggests a tab trigger", "tab", "trigger", "item"),
						},
					},
				},
			},
			{
				Name:           "TabsContent",
				Required:       true,
				AllowsMultiple: true,
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests tab content", "content", "panel", "pane"),
					rules.BottomRule(0.6),
					rules.ChildCountRule(0.4, "has inner structure", 1, 0),
				},
			},
		},
	}
}
