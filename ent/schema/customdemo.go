package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CustomDemo holds the schema definition for the CustomDemo entity.
// A user-authored demo configuration: a base template plus
// DemoTemplate-shaped JSON overrides produced by the builder.
type CustomDemo struct {
	ent.Schema
}

// Fields of the CustomDemo.
func (CustomDemo) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("demo_id").
			Unique().
			Immutable(),
		field.String("env_id").
			Unique().
			Comment("Environment this config boots"),
		field.String("template_id").
			Comment("Base template the overrides apply to"),
		field.Enum("env_type").
			Values("template", "custom").
			Default("custom"),
		field.JSON("config_overrides", map[string]interface{}{}).
			Optional().
			Comment("DemoTemplate-shaped JSON overlay (tools/features filter and extensions)"),
		field.String("created_by").
			Optional().
			Nillable().
			Comment("User email"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the CustomDemo.
func (CustomDemo) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("env_id").
			Unique(),
		index.Fields("created_by"),
		index.Fields("created_at"),
	}
}
