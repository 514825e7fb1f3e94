// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/showroom-hq/showroom/ent/customdemo"
	"github.com/showroom-hq/showroom/ent/predicate"
)

// CustomDemoUpdate is the builder for updating CustomDemo entities.
type CustomDemoUpdate struct {
	config
	hooks    []Hook
	mutation *CustomDemoMutation
}

// Where appends a list predicates to the CustomDemoUpdate builder.
func (_u *CustomDemoUpdate) Where(ps ...predicate.CustomDemo) *CustomDemoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnvID sets the "env_id" field.
func (_u *CustomDemoUpdate) SetEnvID(v string) *CustomDemoUpdate {
	_u.mutation.SetEnvID(v)
	return _u
}

// SetNillableEnvID sets the "env_id" field if the given value is not nil.
func (_u *CustomDemoUpdate) SetNillableEnvID(v *string) *CustomDemoUpdate {
	if v != nil {
		_u.SetEnvID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *CustomDemoUpdate) SetTemplateID(v string) *CustomDemoUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *CustomDemoUpdate) SetNillableTemplateID(v *string) *CustomDemoUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetEnvType sets the "env_type" field.
func (_u *CustomDemoUpdate) SetEnvType(v customdemo.EnvType) *CustomDemoUpdate {
	_u.mutation.SetEnvType(v)
	return _u
}

// SetNillableEnvType sets the "env_type" field if the given value is not nil.
func (_u *CustomDemoUpdate) SetNillableEnvType(v *customdemo.EnvType) *CustomDemoUpdate {
	if v != nil {
		_u.SetEnvType(*v)
	}
	return _u
}

// SetConfigOverrides sets the "config_overrides" field.
func (_u *CustomDemoUpdate) SetConfigOverrides(v map[string]interface{}) *CustomDemoUpdate {
	_u.mutation.SetConfigOverrides(v)
	return _u
}

// ClearConfigOverrides clears the value of the "config_overrides" field.
func (_u *CustomDemoUpdate) ClearConfigOverrides() *CustomDemoUpdate {
	_u.mutation.ClearConfigOverrides()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *CustomDemoUpdate) SetCreatedBy(v string) *CustomDemoUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *CustomDemoUpdate) SetNillableCreatedBy(v *string) *CustomDemoUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *CustomDemoUpdate) ClearCreatedBy() *CustomDemoUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CustomDemoUpdate) SetUpdatedAt(v time.Time) *CustomDemoUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CustomDemoMutation object of the builder.
func (_u *CustomDemoUpdate) Mutation() *CustomDemoMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CustomDemoUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CustomDemoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CustomDemoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CustomDemoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CustomDemoUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := customdemo.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CustomDemoUpdate) check() error {
	if v, ok := _u.mutation.EnvType(); ok {
		if err := customdemo.EnvTypeValidator(v); err != nil {
			return &ValidationError{Name: "env_type", err: fmt.Errorf(`ent: validator failed for field "CustomDemo.env_type": %w`, err)}
		}
	}
	return nil
}

func (_u *CustomDemoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(customdemo.Table, customdemo.Columns, sqlgraph.NewFieldSpec(customdemo.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EnvID(); ok {
		_spec.SetField(customdemo.FieldEnvID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(customdemo.FieldTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnvType(); ok {
		_spec.SetField(customdemo.FieldEnvType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfigOverrides(); ok {
		_spec.SetField(customdemo.FieldConfigOverrides, field.TypeJSON, value)
	}
	if _u.mutation.ConfigOverridesCleared() {
		_spec.ClearField(customdemo.FieldConfigOverrides, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(customdemo.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(customdemo.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(customdemo.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{customdemo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CustomDemoUpdateOne is the builder for updating a single CustomDemo entity.
type CustomDemoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CustomDemoMutation
}

// SetEnvID sets the "env_id" field.
func (_u *CustomDemoUpdateOne) SetEnvID(v string) *CustomDemoUpdateOne {
	_u.mutation.SetEnvID(v)
	return _u
}

// SetNillableEnvID sets the "env_id" field if the given value is not nil.
func (_u *CustomDemoUpdateOne) SetNillableEnvID(v *string) *CustomDemoUpdateOne {
	if v != nil {
		_u.SetEnvID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *CustomDemoUpdateOne) SetTemplateID(v string) *CustomDemoUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *CustomDemoUpdateOne) SetNillableTemplateID(v *string) *CustomDemoUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetEnvType sets the "env_type" field.
func (_u *CustomDemoUpdateOne) SetEnvType(v customdemo.EnvType) *CustomDemoUpdateOne {
	_u.mutation.SetEnvType(v)
	return _u
}

// SetNillableEnvType sets the "env_type" field if the given value is not nil.
func (_u *CustomDemoUpdateOne) SetNillableEnvType(v *customdemo.EnvType) *CustomDemoUpdateOne {
	if v != nil {
		_u.SetEnvType(*v)
	}
	return _u
}

// SetConfigOverrides sets the "config_overrides" field.
func (_u *CustomDemoUpdateOne) SetConfigOverrides(v map[string]interface{}) *CustomDemoUpdateOne {
	_u.mutation.SetConfigOverrides(v)
	return _u
}

// ClearConfigOverrides clears the value of the "config_overrides" field.
func (_u *CustomDemoUpdateOne) ClearConfigOverrides() *CustomDemoUpdateOne {
	_u.mutation.ClearConfigOverrides()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *CustomDemoUpdateOne) SetCreatedBy(v string) *CustomDemoUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *CustomDemoUpdateOne) SetNillableCreatedBy(v *string) *CustomDemoUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *CustomDemoUpdateOne) ClearCreatedBy() *CustomDemoUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CustomDemoUpdateOne) SetUpdatedAt(v time.Time) *CustomDemoUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CustomDemoMutation object of the builder.
func (_u *CustomDemoUpdateOne) Mutation() *CustomDemoMutation {
	return _u.mutation
}

// Where appends a list predicates to the CustomDemoUpdate builder.
func (_u *CustomDemoUpdateOne) Where(ps ...predicate.CustomDemo) *CustomDemoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CustomDemoUpdateOne) Select(field string, fields ...string) *CustomDemoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CustomDemo entity.
func (_u *CustomDemoUpdateOne) Save(ctx context.Context) (*CustomDemo, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CustomDemoUpdateOne) SaveX(ctx context.Context) *CustomDemo {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CustomDemoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CustomDemoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CustomDemoUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := customdemo.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CustomDemoUpdateOne) check() error {
	if v, ok := _u.mutation.EnvType(); ok {
		if err := customdemo.EnvTypeValidator(v); err != nil {
			return &ValidationError{Name: "env_type", err: fmt.Errorf(`ent: validator failed for field "CustomDemo.env_type": %w`, err)}
		}
	}
	return nil
}

func (_u *CustomDemoUpdateOne) sqlSave(ctx context.Context) (_node *CustomDemo, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(customdemo.Table, customdemo.Columns, sqlgraph.NewFieldSpec(customdemo.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CustomDemo.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, customdemo.FieldID)
		for _, f := range fields {
			if !customdemo.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != customdemo.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EnvID(); ok {
		_spec.SetField(customdemo.FieldEnvID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(customdemo.FieldTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnvType(); ok {
		_spec.SetField(customdemo.FieldEnvType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfigOverrides(); ok {
		_spec.SetField(customdemo.FieldConfigOverrides, field.TypeJSON, value)
	}
	if _u.mutation.ConfigOverridesCleared() {
		_spec.ClearField(customdemo.FieldConfigOverrides, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(customdemo.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(customdemo.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(customdemo.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CustomDemo{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{customdemo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
