package schema

import (
	"archemap/internal/archetype"
	"archemap/internal/design"
	"archemap/internal/rules"
)

func buttonSchema() *ComponentSchema {
	return &ComponentSchema{
		Archetype: archetype.Button,
		Slots: []Slot{
			{
				Name:     "ButtonLabel",
				Required: true,
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests a label", "label", "text", "caption"),
					rules.HasTextRule(0.9),
					rules.KindRule(0.5, "text node", design.KindText),
				},
			},
			{
				Name: "ButtonIcon",
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests an icon", "icon", "glyph", "symbol"),
					rules.KindRule(0.7, "vector or ellipse node", design.KindVector, design.KindEllipse),
				},
			},
		},
	}
}
