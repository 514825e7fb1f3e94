// Code generated by ent, DO NOT EDIT.

package customdemo

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the customdemo type in the database.
	Label = "custom_demo"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "demo_id"
	// FieldEnvID holds the string denoting the env_id field in the database.
	FieldEnvID = "env_id"
	// FieldTemplateID holds the string denoting the template_id field in the database.
	FieldTemplateID = "template_id"
	// FieldEnvType holds the string denoting the env_type field in the database.
	FieldEnvType = "env_type"
	// FieldConfigOverrides holds the string denoting the config_overrides field in the database.
	FieldConfigOverrides = "config_overrides"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the customdemo in the database.
	Table = "custom_demos"
)

// Columns holds all SQL columns for customdemo fields.
var Columns = []string{
	FieldID,
	FieldEnvID,
	FieldTemplateID,
	FieldEnvType,
	FieldConfigOverrides,
	FieldCreatedBy,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// EnvType defines the type for the "env_type" enum field.
type EnvType string

// EnvTypeCustom is the default value of the EnvType enum.
const DefaultEnvType = EnvTypeCustom

// EnvType values.
const (
	EnvTypeTemplate EnvType = "template"
	EnvTypeCustom   EnvType = "custom"
)

func (et EnvType) String() string {
	return string(et)
}

// EnvTypeValidator is a validator for the "env_type" field enum values. It is called by the builders before save.
func EnvTypeValidator(et EnvType) error {
	switch et {
	case EnvTypeTemplate, EnvTypeCustom:
		return nil
	default:
		return fmt.Errorf("customdemo: invalid enum value for env_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the CustomDemo queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEnvID orders the results by the env_id field.
func ByEnvID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnvID, opts...).ToFunc()
}

// ByTemplateID orders the results by the template_id field.
func ByTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateID, opts...).ToFunc()
}

// ByEnvType orders the results by the env_type field.
func ByEnvType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnvType, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
