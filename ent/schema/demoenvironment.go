package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DemoEnvironment holds the schema definition for the DemoEnvironment entity.
// One environment per demo session; owns the persisted conversation and timeline.
type DemoEnvironment struct {
	ent.Schema
}

// Fields of the DemoEnvironment.
func (DemoEnvironment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("env_id").
			Unique().
			Immutable(),
		field.String("template_id").
			Comment("Demo template driving this environment"),
		field.Enum("env_type").
			Values("template", "custom").
			Default("template"),
		field.String("created_by").
			Optional().
			Nillable().
			Comment("User email"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Bumped on every turn"),
	}
}

// Edges of the DemoEnvironment.
func (DemoEnvironment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("timeline_events", TimelineEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the DemoEnvironment.
func (DemoEnvironment) Indexes() []ent.Index {
	return []ent.Index{
		// Listing
		index.Fields("created_at"),
		index.Fields("template_id"),
	}
}
