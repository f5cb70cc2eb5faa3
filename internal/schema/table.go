package schema

import (
	"archemap/internal/archetype"
	"archemap/internal/rules"
)

func tableSchema() *ComponentSchema {
	return &ComponentSchema{
		Archetype: archetype.Table,
		Slots: []Slot{
			{
				Name:     "TableHeader",
				Required: true,
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests a table header", "header", "head", "thead", "columns"),
					rules.TopRule(1.0),
				},
				Children: []Slot{
					{
						Name:           "TableHead",
						AllowsMultiple: true,
						Rules: []rules.Rule{
							rules.HasTextRule(1.0),
							rules.NameRule(0.5, "name suggests a column head", "head", "column", "cell"),
						},
					},
				},
			},
			{
				Name:           "TableRow",
				Required:       true,
				AllowsMultiple: true,
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests a row", "row", "tr", "record"),
					rules.ChildCountRule(0.6, "has cell children", 1, 0),
					rules.MiddleRule(0.3),
				},
				Children: []Slot{
					{
						Name:           "TableCell",
						AllowsMultiple: true,
						Rules: []rules.Rule{
							rules.HasTextRule(1.0),
							rules.NameRule(0.5, "name suggests a cell", "cell", "td", "value"),
						},
					},
				},
			},
			{
				Name: "TableCaption",
				Rules: []rules.Rule{
					rules.NameRule(1.0, "name suggests a caption", "caption", "title", "summary"),
					rules.BottomRule(0.5),
					rules.HasTextRule(0.5),
				},
			},
		},
	}
}
