package schema

import (
	"archemap/internal/archetype"
	"archemap/internal/design"
	"archemap/internal/rules"
)

func carouselSchema() *ComponentSchema {
	return &ComponentSchema{
		Archetype: archetype.Carousel,
		Slots: []Slot{
			{
				Name:     "CarouselContent",
				Required: true,
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests carousel content", "content", "slides", "track", "viewport"),
					rules.ChildCountRule(0.7, "holds multiple slides", 2, 0),
				},
				Children: []Slot{
					{
						Name:           "CarouselItem",
						Required:       true,
						AllowsMultiple: true,
						Rules: []rules.Rule{
							rules.NameRule(1.0, "name suggests a slide", "item", "slide", "card", "image"),
							rules.KindRule(0.5, "frame or rectangle node", design.KindFrame, design.KindRectangle),
						},
					},
				},
			},
			{
				Name: "CarouselPrevious",
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests a previous control", "previous", "prev", "back", "left"),
					rules.KindRule(0.4, "vector or instance node", design.KindVector, design.KindInstance),
				},
			},
			{
				Name: "CarouselNext",
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests a next control", "next", "forward", "right"),
					rules.KindRule(0.4, "vector or instance node", design.KindVector, design.KindInstance),
				},
			},
		},
	}
}
