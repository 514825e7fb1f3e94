package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Persistent event log backing WebSocket catchup: clients reconnecting with a
// last-seen event ID replay everything they missed from this table.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Auto-increment integer ID gives a total order per channel for catchup.
		field.String("env_id"),
		field.String("channel"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catchup queries: WHERE channel = ? AND id > ?
		index.Fields("channel", "id"),
		// Reset cleanup
		index.Fields("env_id"),
		// TTL cleanup
		index.Fields("created_at"),
	}
}
