package design

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Decode limits. A caller violating the input contract (cyclic/pathological
// trees) fails fast here, before any scoring runs.
const (
	MaxDepth = 64
	MaxNodes = 20000
)

// wireNode is the JSON shape produced by the design-file ingestion collaborator.
type wireNode struct {
	Name            string      `json:"name"`
	Kind            string      `json:"kind"`
	Children        []*wireNode `json:"children,omitempty"`
	Size            *Size       `json:"size,omitempty"`
	CornerRadius    *float64    `json:"cornerRadius,omitempty"`
	Fills           []Paint     `json:"fills,omitempty"`
	Strokes         []Paint     `json:"strokes,omitempty"`
	TextContent     string      `json:"textContent,omitempty"`
	LayoutDirection string      `json:"layoutDirection,omitempty"`
	ItemSpacing     *float64    `json:"itemSpacing,omitempty"`
	Padding         *Padding    `json:"padding,omitempty"`
}

const nodeSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "kind"],
  "properties": {
    "name": {"type": "string"},
    "kind": {"type": "string"},
    "children": {"type": "array", "items": {"$ref": "#"}},
    "size": {
      "type": "object",
      "required": ["w", "h"],
      "properties": {
        "w": {"type": "number", "minimum": 0},
        "h": {"type": "number", "minimum": 0}
      }
    },
    "cornerRadius": {"type": "number", "minimum": 0},
    "fills": {"type": "array", "items": {"type": "object", "required": ["type"]}},
    "strokes": {"type": "array", "items": {"type": "object", "required": ["type"]}},
    "textContent": {"type": "string"},
    "layoutDirection": {"type": "string", "enum": ["HORIZONTAL", "VERTICAL", "NONE", ""]},
    "itemSpacing": {"type": "number"},
    "padding": {"type": "object"}
  }
}`

var nodeSchema = gojsonschema.NewStringLoader(nodeSchemaJSON)

// Decode parses a DesignNode tree from the ingestion collaborator's JSON.
// It validates the document against the input-contract schema and enforces
// MaxDepth/MaxNodes. This is the only place the engine hard-fails.
func Decode(data []byte) (*Node, error) {
	result, err := gojsonschema.Validate(nodeSchema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("malformed input: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return nil, fmt.Errorf("malformed input: %s", errs[0].String())
		}
		return nil, fmt.Errorf("malformed input: schema validation failed")
	}

	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("malformed input: %w", err)
	}

	count := 0
	root, err := fromWire(&w, 1, &count)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func fromWire(w *wireNode, depth int, count *int) (*Node, error) {
	if w == nil {
		return nil, nil
	}
	if depth > MaxDepth {
		return nil, fmt.Errorf("malformed input: tree depth exceeds %d", MaxDepth)
	}
	*count++
	if *count > MaxNodes {
		return nil, fmt.Errorf("malformed input: tree exceeds %d nodes", MaxNodes)
	}

	n := &Node{
		Name:         w.Name,
		Kind:         ParseKind(w.Kind),
		Size:         w.Size,
		CornerRadius: w.CornerRadius,
		Fills:        w.Fills,
		Strokes:      w.Strokes,
		TextContent:  w.TextContent,
		ItemSpacing:  w.ItemSpacing,
		Padding:      w.Padding,
	}
	switch w.LayoutDirection {
	case "HORIZONTAL":
		n.LayoutDirection = LayoutHorizontal
	case "VERTICAL":
		n.LayoutDirection = LayoutVertical
	}
	for _, cw := range w.Children {
		c, err := fromWire(cw, depth+1, count)
		if err != nil {
			return nil, err
		}
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n, nil
}
