// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "env_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_demo_environments_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[6]},
				RefColumns: []*schema.Column{DemoEnvironmentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_env_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[6], ChatMessagesColumns[1]},
			},
			{
				Name:    "chatmessage_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[5]},
			},
		},
	}
	// CustomDemosColumns holds the columns for the "custom_demos" table.
	CustomDemosColumns = []*schema.Column{
		{Name: "demo_id", Type: field.TypeString, Unique: true},
		{Name: "env_id", Type: field.TypeString, Unique: true},
		{Name: "template_id", Type: field.TypeString},
		{Name: "env_type", Type: field.TypeEnum, Enums: []string{"template", "custom"}, Default: "custom"},
		{Name: "config_overrides", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CustomDemosTable holds the schema information for the "custom_demos" table.
	CustomDemosTable = &schema.Table{
		Name:       "custom_demos",
		Columns:    CustomDemosColumns,
		PrimaryKey: []*schema.Column{CustomDemosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customdemo_env_id",
				Unique:  true,
				Columns: []*schema.Column{CustomDemosColumns[1]},
			},
			{
				Name:    "customdemo_created_by",
				Unique:  false,
				Columns: []*schema.Column{CustomDemosColumns[5]},
			},
			{
				Name:    "customdemo_created_at",
				Unique:  false,
				Columns: []*schema.Column{CustomDemosColumns[6]},
			},
		},
	}
	// DemoEnvironmentsColumns holds the columns for the "demo_environments" table.
	DemoEnvironmentsColumns = []*schema.Column{
		{Name: "env_id", Type: field.TypeString, Unique: true},
		{Name: "template_id", Type: field.TypeString},
		{Name: "env_type", Type: field.TypeEnum, Enums: []string{"template", "custom"}, Default: "template"},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// DemoEnvironmentsTable holds the schema information for the "demo_environments" table.
	DemoEnvironmentsTable = &schema.Table{
		Name:       "demo_environments",
		Columns:    DemoEnvironmentsColumns,
		PrimaryKey: []*schema.Column{DemoEnvironmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "demoenvironment_created_at",
				Unique:  false,
				Columns: []*schema.Column{DemoEnvironmentsColumns[4]},
			},
			{
				Name:    "demoenvironment_template_id",
				Unique:  false,
				Columns: []*schema.Column{DemoEnvironmentsColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "env_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_env_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// TimelineEventsColumns holds the columns for the "timeline_events" table.
	TimelineEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"auth", "tool_call", "approval", "token_exchange", "message"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "denied", "pending"}, Default: "success"},
		{Name: "title", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "highlighted_feature", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "env_id", Type: field.TypeString},
	}
	// TimelineEventsTable holds the schema information for the "timeline_events" table.
	TimelineEventsTable = &schema.Table{
		Name:       "timeline_events",
		Columns:    TimelineEventsColumns,
		PrimaryKey: []*schema.Column{TimelineEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "timeline_events_demo_environments_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[8]},
				RefColumns: []*schema.Column{DemoEnvironmentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "timelineevent_env_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[8], TimelineEventsColumns[1]},
			},
			{
				Name:    "timelineevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		CustomDemosTable,
		DemoEnvironmentsTable,
		EventsTable,
		TimelineEventsTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = DemoEnvironmentsTable
	TimelineEventsTable.ForeignKeys[0].RefTable = DemoEnvironmentsTable
}
