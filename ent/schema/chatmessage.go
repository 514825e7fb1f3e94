package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity.
// Persisted mirror of the in-memory conversation log (audit/replay only —
// the orchestrator never reads conversation state back from the database).
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("env_id").
			Immutable(),
		field.Int("sequence_number").
			Comment("Environment-scoped order"),
		field.Enum("role").
			Values("user", "assistant", "system"),
		field.Text("content"),
		field.JSON("tool_calls", []map[string]interface{}{}).
			Optional().
			Comment("Attached tool-call results [{id, tool_name, scopes, status, result}]"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("environment", DemoEnvironment.Type).
			Ref("messages").
			Field("env_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Conversation order
		index.Fields("env_id", "sequence_number"),
		index.Fields("created_at"),
	}
}
