// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/showroom-hq/showroom/ent/demoenvironment"
	"github.com/showroom-hq/showroom/ent/timelineevent"
)

// TimelineEventCreate is the builder for creating a TimelineEvent entity.
type TimelineEventCreate struct {
	config
	mutation *TimelineEventMutation
	hooks    []Hook
}

// SetEnvID sets the "env_id" field.
func (_c *TimelineEventCreate) SetEnvID(v string) *TimelineEventCreate {
	_c.mutation.SetEnvID(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *TimelineEventCreate) SetSequenceNumber(v int) *TimelineEventCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *TimelineEventCreate) SetEventType(v timelineevent.EventType) *TimelineEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TimelineEventCreate) SetStatus(v timelineevent.Status) *TimelineEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableStatus(v *timelineevent.Status) *TimelineEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *TimelineEventCreate) SetTitle(v string) *TimelineEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *TimelineEventCreate) SetDetail(v string) *TimelineEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableDetail(v *string) *TimelineEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetHighlightedFeature sets the "highlighted_feature" field.
func (_c *TimelineEventCreate) SetHighlightedFeature(v string) *TimelineEventCreate {
	_c.mutation.SetHighlightedFeature(v)
	return _c
}

// SetNillableHighlightedFeature sets the "highlighted_feature" field if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableHighlightedFeature(v *string) *TimelineEventCreate {
	if v != nil {
		_c.SetHighlightedFeature(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TimelineEventCreate) SetCreatedAt(v time.Time) *TimelineEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableCreatedAt(v *time.Time) *TimelineEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TimelineEventCreate) SetID(v string) *TimelineEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEnvironmentID sets the "environment" edge to the DemoEnvironment entity by ID.
func (_c *TimelineEventCreate) SetEnvironmentID(id string) *TimelineEventCreate {
	_c.mutation.SetEnvironmentID(id)
	return _c
}

// SetEnvironment sets the "environment" edge to the DemoEnvironment entity.
func (_c *TimelineEventCreate) SetEnvironment(v *DemoEnvironment) *TimelineEventCreate {
	return _c.SetEnvironmentID(v.ID)
}

// Mutation returns the TimelineEventMutation object of the builder.
func (_c *TimelineEventCreate) Mutation() *TimelineEventMutation {
	return _c.mutation
}

// Save creates the TimelineEvent in the database.
func (_c *TimelineEventCreate) Save(ctx context.Context) (*TimelineEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TimelineEventCreate) SaveX(ctx context.Context) *TimelineEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimelineEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimelineEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TimelineEventCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := timelineevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := timelineevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TimelineEventCreate) check() error {
	if _, ok := _c.mutation.EnvID(); !ok {
		return &ValidationError{Name: "env_id", err: errors.New(`ent: missing required field "TimelineEvent.env_id"`)}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "TimelineEvent.sequence_number"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "TimelineEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := timelineevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "TimelineEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TimelineEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := timelineevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimelineEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "TimelineEvent.title"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TimelineEvent.created_at"`)}
	}
	if len(_c.mutation.EnvironmentIDs()) == 0 {
		return &ValidationError{Name: "environment", err: errors.New(`ent: missing required edge "TimelineEvent.environment"`)}
	}
	return nil
}

func (_c *TimelineEventCreate) sqlSave(ctx context.Context) (*TimelineEvent, error) {
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
			return nil, fmt.Errorf("unexpected TimelineEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TimelineEventCreate) createSpec() (*TimelineEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TimelineEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(timelineevent.Table, sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(timelineevent.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(timelineevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(timelineevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(timelineevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(timelineevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.HighlightedFeature(); ok {
		_spec.SetField(timelineevent.FieldHighlightedFeature, field.TypeString, value)
		_node.HighlightedFeature = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(timelineevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EnvironmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timelineevent.EnvironmentTable,
			Columns: []string{timelineevent.EnvironmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(demoenvironment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EnvID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TimelineEventCreateBulk is the builder for creating many TimelineEvent entities in bulk.
type TimelineEventCreateBulk struct {
	config
	err      error
	builders []*TimelineEventCreate
}

// Save creates the TimelineEvent entities in the database.
func (_c *TimelineEventCreateBulk) Save(ctx context.Context) ([]*TimelineEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TimelineEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimelineEventMutation)
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
func (_c *TimelineEventCreateBulk) SaveX(ctx context.Context) []*TimelineEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimelineEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimelineEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
