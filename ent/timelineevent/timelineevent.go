// Code generated by ent, DO NOT EDIT.

package timelineevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the timelineevent type in the database.
	Label = "timeline_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldEnvID holds the string denoting the env_id field in the database.
	FieldEnvID = "env_id"
	// FieldSequenceNumber holds the string denoting the sequence_number field in the database.
	FieldSequenceNumber = "sequence_number"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldHighlightedFeature holds the string denoting the highlighted_feature field in the database.
	FieldHighlightedFeature = "highlighted_feature"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEnvironment holds the string denoting the environment edge name in mutations.
	EdgeEnvironment = "environment"
	// DemoEnvironmentFieldID holds the string denoting the ID field of the DemoEnvironment.
	DemoEnvironmentFieldID = "env_id"
	// Table holds the table name of the timelineevent in the database.
	Table = "timeline_events"
	// EnvironmentTable is the table that holds the environment relation/edge.
	EnvironmentTable = "timeline_events"
	// EnvironmentInverseTable is the table name for the DemoEnvironment entity.
	// It exists in this package in order to avoid circular dependency with the "demoenvironment" package.
	EnvironmentInverseTable = "demo_environments"
	// EnvironmentColumn is the table column denoting the environment relation/edge.
	EnvironmentColumn = "env_id"
)

// Columns holds all SQL columns for timelineevent fields.
var Columns = []string{
	FieldID,
	FieldEnvID,
	FieldSequenceNumber,
	FieldEventType,
	FieldStatus,
	FieldTitle,
	FieldDetail,
	FieldHighlightedFeature,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeAuth          EventType = "auth"
	EventTypeToolCall      EventType = "tool_call"
	EventTypeApproval      EventType = "approval"
	EventTypeTokenExchange EventType = "token_exchange"
	EventTypeMessage       EventType = "message"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeAuth, EventTypeToolCall, EventTypeApproval, EventTypeTokenExchange, EventTypeMessage:
		return nil
	default:
		return fmt.Errorf("timelineevent: invalid enum value for event_type field: %q", et)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusSuccess is the default value of the Status enum.
const DefaultStatus = StatusSuccess

// Status values.
const (
	StatusSuccess Status = "success"
	StatusDenied  Status = "denied"
	StatusPending Status = "pending"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuccess, StatusDenied, StatusPending:
		return nil
	default:
		return fmt.Errorf("timelineevent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TimelineEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEnvID orders the results by the env_id field.
func ByEnvID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnvID, opts...).ToFunc()
}

// BySequenceNumber orders the results by the sequence_number field.
func BySequenceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceNumber, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByHighlightedFeature orders the results by the highlighted_feature field.
func ByHighlightedFeature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighlightedFeature, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEnvironmentField orders the results by environment field.
func ByEnvironmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEnvironmentStep(), sql.OrderByField(field, opts...))
	}
}
func newEnvironmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EnvironmentInverseTable, DemoEnvironmentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EnvironmentTable, EnvironmentColumn),
	)
}
