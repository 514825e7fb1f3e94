// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/showroom-hq/showroom/ent/chatmessage"
	"github.com/showroom-hq/showroom/ent/demoenvironment"
	"github.com/showroom-hq/showroom/ent/timelineevent"
)

// DemoEnvironmentCreate is the builder for creating a DemoEnvironment entity.
type DemoEnvironmentCreate struct {
	config
	mutation *DemoEnvironmentMutation
	hooks    []Hook
}

// SetTemplateID sets the "template_id" field.
func (_c *DemoEnvironmentCreate) SetTemplateID(v string) *DemoEnvironmentCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetEnvType sets the "env_type" field.
func (_c *DemoEnvironmentCreate) SetEnvType(v demoenvironment.EnvType) *DemoEnvironmentCreate {
	_c.mutation.SetEnvType(v)
	return _c
}

// SetNillableEnvType sets the "env_type" field if the given value is not nil.
func (_c *DemoEnvironmentCreate) SetNillableEnvType(v *demoenvironment.EnvType) *DemoEnvironmentCreate {
	if v != nil {
		_c.SetEnvType(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *DemoEnvironmentCreate) SetCreatedBy(v string) *DemoEnvironmentCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *DemoEnvironmentCreate) SetNillableCreatedBy(v *string) *DemoEnvironmentCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DemoEnvironmentCreate) SetCreatedAt(v time.Time) *DemoEnvironmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DemoEnvironmentCreate) SetNillableCreatedAt(v *time.Time) *DemoEnvironmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *DemoEnvironmentCreate) SetLastInteractionAt(v time.Time) *DemoEnvironmentCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *DemoEnvironmentCreate) SetNillableLastInteractionAt(v *time.Time) *DemoEnvironmentCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DemoEnvironmentCreate) SetID(v string) *DemoEnvironmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_c *DemoEnvironmentCreate) AddMessageIDs(ids ...string) *DemoEnvironmentCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_c *DemoEnvironmentCreate) AddMessages(v ...*ChatMessage) *DemoEnvironmentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_c *DemoEnvironmentCreate) AddTimelineEventIDs(ids ...string) *DemoEnvironmentCreate {
	_c.mutation.AddTimelineEventIDs(ids...)
	return _c
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_c *DemoEnvironmentCreate) AddTimelineEvents(v ...*TimelineEvent) *DemoEnvironmentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTimelineEventIDs(ids...)
}

// Mutation returns the DemoEnvironmentMutation object of the builder.
func (_c *DemoEnvironmentCreate) Mutation() *DemoEnvironmentMutation {
	return _c.mutation
}

// Save creates the DemoEnvironment in the database.
func (_c *DemoEnvironmentCreate) Save(ctx context.Context) (*DemoEnvironment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DemoEnvironmentCreate) SaveX(ctx context.Context) *DemoEnvironment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DemoEnvironmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DemoEnvironmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DemoEnvironmentCreate) defaults() {
	if _, ok := _c.mutation.EnvType(); !ok {
		v := demoenvironment.DefaultEnvType
		_c.mutation.SetEnvType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := demoenvironment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DemoEnvironmentCreate) check() error {
	if _, ok := _c.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "DemoEnvironment.template_id"`)}
	}
	if _, ok := _c.mutation.EnvType(); !ok {
		return &ValidationError{Name: "env_type", err: errors.New(`ent: missing required field "DemoEnvironment.env_type"`)}
	}
	if v, ok := _c.mutation.EnvType(); ok {
		if err := demoenvironment.EnvTypeValidator(v); err != nil {
			return &ValidationError{Name: "env_type", err: fmt.Errorf(`ent: validator failed for field "DemoEnvironment.env_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DemoEnvironment.created_at"`)}
	}
	return nil
}

func (_c *DemoEnvironmentCreate) sqlSave(ctx context.Context) (*DemoEnvironment, error) {
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
			return nil, fmt.Errorf("unexpected DemoEnvironment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DemoEnvironmentCreate) createSpec() (*DemoEnvironment, *sqlgraph.CreateSpec) {
	var (
		_node = &DemoEnvironment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(demoenvironment.Table, sqlgraph.NewFieldSpec(demoenvironment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(demoenvironment.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.EnvType(); ok {
		_spec.SetField(demoenvironment.FieldEnvType, field.TypeEnum, value)
		_node.EnvType = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(demoenvironment.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(demoenvironment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(demoenvironment.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   demoenvironment.MessagesTable,
			Columns: []string{demoenvironment.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TimelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   demoenvironment.TimelineEventsTable,
			Columns: []string{demoenvironment.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DemoEnvironmentCreateBulk is the builder for creating many DemoEnvironment entities in bulk.
type DemoEnvironmentCreateBulk struct {
	config
	err      error
	builders []*DemoEnvironmentCreate
}

// Save creates the DemoEnvironment entities in the database.
func (_c *DemoEnvironmentCreateBulk) Save(ctx context.Context) ([]*DemoEnvironment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DemoEnvironment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DemoEnvironmentMutation)
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
func (_c *DemoEnvironmentCreateBulk) SaveX(ctx context.Context) []*DemoEnvironment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DemoEnvironmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DemoEnvironmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
