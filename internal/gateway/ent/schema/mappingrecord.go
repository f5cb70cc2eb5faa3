package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MappingRecord holds the schema definition for a persisted mapping result.
type MappingRecord struct {
	ent.Schema
}

// Fields of the MappingRecord.
func (MappingRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mapping_id").
			Unique().
			Immutable(),
		field.String("design_name").
			Default(""),
		field.String("archetype").
			NotEmpty(),
		field.Float("overall_confidence").
			Default(0),
		field.JSON("payload", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the MappingRecord.
func (MappingRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", DesignSource.Type).
			Ref("mappings").
			Unique(),
	}
}

// Indexes of the MappingRecord.
func (MappingRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("archetype"),
		index.Fields("created_at"),
	}
}
