package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// DesignSource holds the schema definition for an ingested design document.
type DesignSource struct {
	ent.Schema
}

// Fields of the DesignSource.
func (DesignSource) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("source_id").
			Unique().
			Immutable(),
		field.String("name").
			Default(""),
		field.String("origin").
			Default(""),
		field.Time("imported_at").
			Default(time.Now),
	}
}

// Edges of the DesignSource.
func (DesignSource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("mappings", MappingRecord.Type),
	}
}
