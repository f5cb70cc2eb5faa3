package schema

import (
	"sort"

	"archemap/internal/archetype"
)

// Catalog is the read-only registry of archetype schemas. Build it once at
// startup and pass it by reference; it is safe for concurrent lookups.
type Catalog struct {
	byArchetype map[archetype.Archetype]*ComponentSchema
}

// NewCatalog builds the default catalog with every built-in archetype schema.
func NewCatalog() *Catalog {
	c := &Catalog{byArchetype: make(map[archetype.Archetype]*ComponentSchema, 16)}
	c.register(cardSchema())
	c.register(dialogSchema())
	c.register(alertDialogSchema())
	c.register(buttonSchema())
	c.register(menubarSchema())
	c.register(accordionSchema())
	c.register(tabsSchema())
	c.register(tableSchema())
	c.register(carouselSchema())
	return c
}

// NewEmptyCatalog returns a catalog with no entries. Tests use it to exercise
// the unknown-archetype path with alternate registrations.
func NewEmptyCatalog() *Catalog {
	return &Catalog{byArchetype: make(map[archetype.Archetype]*ComponentSchema)}
}

func (c *Catalog) register(s *ComponentSchema) {
	if c == nil || s == nil {
		return
	}
	c.byArchetype[s.Archetype] = s
}

// Register adds or replaces a schema entry. Intended for catalog construction
// and tests only; the catalog must not be mutated once lookups begin.
func (c *Catalog) Register(s *ComponentSchema) {
	c.register(s)
}

// Lookup returns the schema for the given archetype, if one is registered.
func (c *Catalog) Lookup(a archetype.Archetype) (*ComponentSchema, bool) {
	if c == nil {
		return nil, false
	}
	s, ok := c.byArchetype[a]
	return s, ok
}

// Archetypes lists the registered archetypes in stable name order.
func (c *Catalog) Archetypes() []archetype.Archetype {
	if c == nil {
		return nil
	}
	out := make([]archetype.Archetype, 0, len(c.byArchetype))
	for a := range c.byArchetype {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
