// Package archetype defines the closed set of recognized UI component kinds.
// Adding an archetype means adding a value here plus a schema entry in the
// catalog; the engine itself never changes.
package archetype

import "strings"

type Archetype int

const (
	Unknown Archetype = iota
	Card
	Dialog
	AlertDialog
	Button
	Menubar
	Accordion
	Tabs
	Table
	Carousel
)

var names = map[Archetype]string{
	Unknown:     "Unknown",
	Card:        "Card",
	Dialog:      "Dialog",
	AlertDialog: "AlertDialog",
	Button:      "Button",
	Menubar:     "Menubar",
	Accordion:   "Accordion",
	Tabs:        "Tabs",
	Table:       "Table",
	Carousel:    "Carousel",
}

func (a Archetype) String() string {
	if s, ok := names[a]; ok {
		return s
	}
	return "Unknown"
}

// Parse maps a name (case-insensitive) back to an Archetype.
func Parse(s string) (Archetype, bool) {
	t := strings.TrimSpace(s)
	for a, name := range names {
		if strings.EqualFold(name, t) {
			return a, true
		}
	}
	return Unknown, false
}

// All returns every archetype except Unknown, in declaration order.
func All() []Archetype {
	return []Archetype{Card, Dialog, AlertDialog, Button, Menubar, Accordion, Tabs, Table, Carousel}
}
