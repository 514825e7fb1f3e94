// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/showroom-hq/showroom/ent/customdemo"
)

// CustomDemo is the model entity for the CustomDemo schema.
type CustomDemo struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Environment this config boots
	EnvID string `json:"env_id,omitempty"`
	// Base template the overrides apply to
	TemplateID string `json:"template_id,omitempty"`
	// EnvType holds the value of the "env_type" field.
	EnvType customdemo.EnvType `json:"env_type,omitempty"`
	// DemoTemplate-shaped JSON overlay (tools/features filter and extensions)
	ConfigOverrides map[string]interface{} `json:"config_overrides,omitempty"`
	// User email
	CreatedBy *string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CustomDemo) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case customdemo.FieldConfigOverrides:
			values[i] = new([]byte)
		case customdemo.FieldID, customdemo.FieldEnvID, customdemo.FieldTemplateID, customdemo.FieldEnvType, customdemo.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case customdemo.FieldCreatedAt, customdemo.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CustomDemo fields.
func (_m *CustomDemo) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case customdemo.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case customdemo.FieldEnvID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field env_id", values[i])
			} else if value.Valid {
				_m.EnvID = value.String
			}
		case customdemo.FieldTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = value.String
			}
		case customdemo.FieldEnvType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field env_type", values[i])
			} else if value.Valid {
				_m.EnvType = customdemo.EnvType(value.String)
			}
		case customdemo.FieldConfigOverrides:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config_overrides", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConfigOverrides); err != nil {
					return fmt.Errorf("unmarshal field config_overrides: %w", err)
				}
			}
		case customdemo.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(string)
				*_m.CreatedBy = value.String
			}
		case customdemo.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case customdemo.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CustomDemo.
// This includes values selected through modifiers, order, etc.
func (_m *CustomDemo) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CustomDemo.
// Note that you need to call CustomDemo.Unwrap() before calling this method if this CustomDemo
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CustomDemo) Update() *CustomDemoUpdateOne {
	return NewCustomDemoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CustomDemo entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CustomDemo) Unwrap() *CustomDemo {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CustomDemo is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CustomDemo) String() string {
	var builder strings.Builder
	builder.WriteString("CustomDemo(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("env_id=")
	builder.WriteString(_m.EnvID)
	builder.WriteString(", ")
	builder.WriteString("template_id=")
	builder.WriteString(_m.TemplateID)
	builder.WriteString(", ")
	builder.WriteString("env_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnvType))
	builder.WriteString(", ")
	builder.WriteString("config_overrides=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfigOverrides))
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CustomDemos is a parsable slice of CustomDemo.
type CustomDemos []*CustomDemo
