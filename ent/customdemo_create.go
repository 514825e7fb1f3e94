// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/showroom-hq/showroom/ent/customdemo"
)

// CustomDemoCreate is the builder for creating a CustomDemo entity.
type CustomDemoCreate struct {
	config
	mutation *CustomDemoMutation
	hooks    []Hook
}

// SetEnvID sets the "env_id" field.
func (_c *CustomDemoCreate) SetEnvID(v string) *CustomDemoCreate {
	_c.mutation.SetEnvID(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *CustomDemoCreate) SetTemplateID(v string) *CustomDemoCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetEnvType sets the "env_type" field.
func (_c *CustomDemoCreate) SetEnvType(v customdemo.EnvType) *CustomDemoCreate {
	_c.mutation.SetEnvType(v)
	return _c
}

// SetNillableEnvType sets the "env_type" field if the given value is not nil.
func (_c *CustomDemoCreate) SetNillableEnvType(v *customdemo.EnvType) *CustomDemoCreate {
	if v != nil {
		_c.SetEnvType(*v)
	}
	return _c
}

// SetConfigOverrides sets the "config_overrides" field.
func (_c *CustomDemoCreate) SetConfigOverrides(v map[string]interface{}) *CustomDemoCreate {
	_c.mutation.SetConfigOverrides(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *CustomDemoCreate) SetCreatedBy(v string) *CustomDemoCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *CustomDemoCreate) SetNillableCreatedBy(v *string) *CustomDemoCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CustomDemoCreate) SetCreatedAt(v time.Time) *CustomDemoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CustomDemoCreate) SetNillableCreatedAt(v *time.Time) *CustomDemoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CustomDemoCreate) SetUpdatedAt(v time.Time) *CustomDemoCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CustomDemoCreate) SetNillableUpdatedAt(v *time.Time) *CustomDemoCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CustomDemoCreate) SetID(v string) *CustomDemoCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CustomDemoMutation object of the builder.
func (_c *CustomDemoCreate) Mutation() *CustomDemoMutation {
	return _c.mutation
}

// Save creates the CustomDemo in the database.
func (_c *CustomDemoCreate) Save(ctx context.Context) (*CustomDemo, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CustomDemoCreate) SaveX(ctx context.Context) *CustomDemo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomDemoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomDemoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CustomDemoCreate) defaults() {
	if _, ok := _c.mutation.EnvType(); !ok {
		v := customdemo.DefaultEnvType
		_c.mutation.SetEnvType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := customdemo.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := customdemo.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CustomDemoCreate) check() error {
	if _, ok := _c.mutation.EnvID(); !ok {
		return &ValidationError{Name: "env_id", err: errors.New(`ent: missing required field "CustomDemo.env_id"`)}
	}
	if _, ok := _c.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "CustomDemo.template_id"`)}
	}
	if _, ok := _c.mutation.EnvType(); !ok {
		return &ValidationError{Name: "env_type", err: errors.New(`ent: missing required field "CustomDemo.env_type"`)}
	}
	if v, ok := _c.mutation.EnvType(); ok {
		if err := customdemo.EnvTypeValidator(v); err != nil {
			return &ValidationError{Name: "env_type", err: fmt.Errorf(`ent: validator failed for field "CustomDemo.env_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CustomDemo.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CustomDemo.updated_at"`)}
	}
	return nil
}

func (_c *CustomDemoCreate) sqlSave(ctx context.Context) (*CustomDemo, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CustomDemo.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CustomDemoCreate) createSpec() (*CustomDemo, *sqlgraph.CreateSpec) {
	var (
		_node = &CustomDemo{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(customdemo.Table, sqlgraph.NewFieldSpec(customdemo.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EnvID(); ok {
		_spec.SetField(customdemo.FieldEnvID, field.TypeString, value)
		_node.EnvID = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(customdemo.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.EnvType(); ok {
		_spec.SetField(customdemo.FieldEnvType, field.TypeEnum, value)
		_node.EnvType = value
	}
	if value, ok := _c.mutation.ConfigOverrides(); ok {
		_spec.SetField(customdemo.FieldConfigOverrides, field.TypeJSON, value)
		_node.ConfigOverrides = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(customdemo.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(customdemo.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(customdemo.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CustomDemoCreateBulk is the builder for creating many CustomDemo entities in bulk.
type CustomDemoCreateBulk struct {
	config
	err      error
	builders []*CustomDemoCreate
}

// Save creates the CustomDemo entities in the database.
func (_c *CustomDemoCreateBulk) Save(ctx context.Context) ([]*CustomDemo, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CustomDemo, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CustomDemoMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CustomDemoCreateBulk) SaveX(ctx context.Context) []*CustomDemo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomDemoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomDemoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
