// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/showroom-hq/showroom/ent/demoenvironment"
)

// DemoEnvironment is the model entity for the DemoEnvironment schema.
type DemoEnvironment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Demo template driving this environment
	TemplateID string `json:"template_id,omitempty"`
	// EnvType holds the value of the "env_type" field.
	EnvType demoenvironment.EnvType `json:"env_type,omitempty"`
	// User email
	CreatedBy *string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Bumped on every turn
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DemoEnvironmentQuery when eager-loading is set.
	Edges        DemoEnvironmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DemoEnvironmentEdges holds the relations/edges for other nodes in the graph.
type DemoEnvironmentEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*ChatMessage `json:"messages,omitempty"`
	// TimelineEvents holds the value of the timeline_events edge.
	TimelineEvents []*TimelineEvent `json:"timeline_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e DemoEnvironmentEdges) MessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// TimelineEventsOrErr returns the TimelineEvents value or an error if the edge
// was not loaded in eager-loading.
func (e DemoEnvironmentEdges) TimelineEventsOrErr() ([]*TimelineEvent, error) {
	if e.loadedTypes[1] {
		return e.TimelineEvents, nil
	}
	return nil, &NotLoadedError{edge: "timeline_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DemoEnvironment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case demoenvironment.FieldID, demoenvironment.FieldTemplateID, demoenvironment.FieldEnvType, demoenvironment.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case demoenvironment.FieldCreatedAt, demoenvironment.FieldLastInteractionAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DemoEnvironment fields.
func (_m *DemoEnvironment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case demoenvironment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case demoenvironment.FieldTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = value.String
			}
		case demoenvironment.FieldEnvType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field env_type", values[i])
			} else if value.Valid {
				_m.EnvType = demoenvironment.EnvType(value.String)
			}
		case demoenvironment.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(string)
				*_m.CreatedBy = value.String
			}
		case demoenvironment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case demoenvironment.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DemoEnvironment.
// This includes values selected through modifiers, order, etc.
func (_m *DemoEnvironment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the DemoEnvironment entity.
func (_m *DemoEnvironment) QueryMessages() *ChatMessageQuery {
	return NewDemoEnvironmentClient(_m.config).QueryMessages(_m)
}

// QueryTimelineEvents queries the "timeline_events" edge of the DemoEnvironment entity.
func (_m *DemoEnvironment) QueryTimelineEvents() *TimelineEventQuery {
	return NewDemoEnvironmentClient(_m.config).QueryTimelineEvents(_m)
}

// Update returns a builder for updating this DemoEnvironment.
// Note that you need to call DemoEnvironment.Unwrap() before calling this method if this DemoEnvironment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DemoEnvironment) Update() *DemoEnvironmentUpdateOne {
	return NewDemoEnvironmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DemoEnvironment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DemoEnvironment) Unwrap() *DemoEnvironment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DemoEnvironment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DemoEnvironment) String() string {
	var builder strings.Builder
	builder.WriteString("DemoEnvironment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("template_id=")
	builder.WriteString(_m.TemplateID)
	builder.WriteString(", ")
	builder.WriteString("env_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnvType))
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DemoEnvironments is a parsable slice of DemoEnvironment.
type DemoEnvironments []*DemoEnvironment
