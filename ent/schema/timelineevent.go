package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TimelineEvent holds the schema definition for the TimelineEvent entity.
// Audit-style narration of everything that happened in a demo session.
// Append-only; rows are removed only by a full environment reset.
type TimelineEvent struct {
	ent.Schema
}

// Fields of the TimelineEvent.
func (TimelineEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("env_id").
			Immutable(),
		field.Int("sequence_number").
			Comment("Order in timeline"),

		// Event Details
		//
		// Event types and their semantics:
		//   auth           — session authenticated (recorded once at bootstrap)
		//   message        — user sent a chat message (truncated preview in detail)
		//   tool_call      — the agent invoked a tool (executed or pending approval)
		//   approval       — approval requested (status pending) or decided
		//                    (status success/denied)
		//   token_exchange — narrated credential delegation after an approval;
		//                    cosmetic, no real token operation occurs
		field.Enum("event_type").
			Values(
				"auth",
				"tool_call",
				"approval",
				"token_exchange",
				"message",
			),
		field.Enum("status").
			Values("success", "denied", "pending").
			Default("success"),
		field.String("title"),
		field.Text("detail").
			Optional(),
		field.String("highlighted_feature").
			Optional().
			Nillable().
			Comment("Platform feature card to highlight in the UI"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TimelineEvent.
func (TimelineEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("environment", DemoEnvironment.Type).
			Ref("timeline_events").
			Field("env_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TimelineEvent.
func (TimelineEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Timeline ordering
		index.Fields("env_id", "sequence_number"),
		// Chronological queries
		index.Fields("created_at"),
	}
}
