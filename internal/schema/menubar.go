package schema

import (
	"archemap/internal/archetype"
	"archemap/internal/rules"
)

func menubarSchema() *ComponentSchema {
	return &ComponentSchema{
		Archetype: archetype.Menubar,
		Slots: []Slot{
			{
				Name:           "MenubarMenu",
				Required:       true,
				AllowsMultiple: true,
				Rules: []rules.Rule{
					rules.TriggerContentPairRule(1.0),
					rules.NameRule(0.5, "name suggests a menu", "menu", "menubar"),
				},
				Children: []Slot{
					{
						Name:     "MenubarTrigger",
						Required: true,
						Rules: []rules.Rule{
							rules.TopRule(1.0),
							rules.HasTextRule(1.0),
						},
					},
					{
						Name:     "MenubarContent",
						Required: true,
						Rules: []rules.Rule{
							rules.BottomRule(1.0),
							rules.ChildCountRule(1.0, "contains menu items", 1, 0),
							rules.NameRule(0.6, "name suggests menu content", "content", "dropdown", "popup"),
						},
						Children: []Slot{
							{
								Name:           "MenubarItem",
								AllowsMultiple: true,
								Rules: []rules.Rule{
									rules.HasTextRule(1.0),
									rules.NameRule(0.5, "name suggests a menu item", "item", "option", "entry"),
								},
							},
							{
								Name: "MenubarSeparator",
								Rules: []rules.Rule{
									rules.SeparatorRule(1.0),
									rules.NameRule(0.4, "name suggests a separator", "separator", "divider", "line"),
								},
							},
						},
					},
				},
			},
		},
	}
}
