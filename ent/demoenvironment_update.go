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
	"github.com/showroom-hq/showroom/ent/chatmessage"
	"github.com/showroom-hq/showroom/ent/demoenvironment"
	"github.com/showroom-hq/showroom/ent/predicate"
	"github.com/showroom-hq/showroom/ent/timelineevent"
)

// DemoEnvironmentUpdate is the builder for updating DemoEnvironment entities.
type DemoEnvironmentUpdate struct {
	config
	hooks    []Hook
	mutation *DemoEnvironmentMutation
}

// Where appends a list predicates to the DemoEnvironmentUpdate builder.
func (_u *DemoEnvironmentUpdate) Where(ps ...predicate.DemoEnvironment) *DemoEnvironmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *DemoEnvironmentUpdate) SetTemplateID(v string) *DemoEnvironmentUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *DemoEnvironmentUpdate) SetNillableTemplateID(v *string) *DemoEnvironmentUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetEnvType sets the "env_type" field.
func (_u *DemoEnvironmentUpdate) SetEnvType(v demoenvironment.EnvType) *DemoEnvironmentUpdate {
	_u.mutation.SetEnvType(v)
	return _u
}

// SetNillableEnvType sets the "env_type" field if the given value is not nil.
func (_u *DemoEnvironmentUpdate) SetNillableEnvType(v *demoenvironment.EnvType) *DemoEnvironmentUpdate {
	if v != nil {
		_u.SetEnvType(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *DemoEnvironmentUpdate) SetCreatedBy(v string) *DemoEnvironmentUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *DemoEnvironmentUpdate) SetNillableCreatedBy(v *string) *DemoEnvironmentUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *DemoEnvironmentUpdate) ClearCreatedBy() *DemoEnvironmentUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *DemoEnvironmentUpdate) SetLastInteractionAt(v time.Time) *DemoEnvironmentUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *DemoEnvironmentUpdate) SetNillableLastInteractionAt(v *time.Time) *DemoEnvironmentUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *DemoEnvironmentUpdate) ClearLastInteractionAt() *DemoEnvironmentUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *DemoEnvironmentUpdate) AddMessageIDs(ids ...string) *DemoEnvironmentUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *DemoEnvironmentUpdate) AddMessages(v ...*ChatMessage) *DemoEnvironmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *DemoEnvironmentUpdate) AddTimelineEventIDs(ids ...string) *DemoEnvironmentUpdate {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *DemoEnvironmentUpdate) AddTimelineEvents(v ...*TimelineEvent) *DemoEnvironmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// Mutation returns the DemoEnvironmentMutation object of the builder.
func (_u *DemoEnvironmentUpdate) Mutation() *DemoEnvironmentMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *DemoEnvironmentUpdate) ClearMessages() *DemoEnvironmentUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *DemoEnvironmentUpdate) RemoveMessageIDs(ids ...string) *DemoEnvironmentUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *DemoEnvironmentUpdate) RemoveMessages(v ...*ChatMessage) *DemoEnvironmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *DemoEnvironmentUpdate) ClearTimelineEvents() *DemoEnvironmentUpdate {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *DemoEnvironmentUpdate) RemoveTimelineEventIDs(ids ...string) *DemoEnvironmentUpdate {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *DemoEnvironmentUpdate) RemoveTimelineEvents(v ...*TimelineEvent) *DemoEnvironmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DemoEnvironmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DemoEnvironmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DemoEnvironmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DemoEnvironmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DemoEnvironmentUpdate) check() error {
	if v, ok := _u.mutation.EnvType(); ok {
		if err := demoenvironment.EnvTypeValidator(v); err != nil {
			return &ValidationError{Name: "env_type", err: fmt.Errorf(`ent: validator failed for field "DemoEnvironment.env_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DemoEnvironmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(demoenvironment.Table, demoenvironment.Columns, sqlgraph.NewFieldSpec(demoenvironment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(demoenvironment.FieldTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnvType(); ok {
		_spec.SetField(demoenvironment.FieldEnvType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(demoenvironment.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(demoenvironment.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(demoenvironment.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(demoenvironment.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TimelineEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTimelineEventsIDs(); len(nodes) > 0 && !_u.mutation.TimelineEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TimelineEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{demoenvironment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DemoEnvironmentUpdateOne is the builder for updating a single DemoEnvironment entity.
type DemoEnvironmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DemoEnvironmentMutation
}

// SetTemplateID sets the "template_id" field.
func (_u *DemoEnvironmentUpdateOne) SetTemplateID(v string) *DemoEnvironmentUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *DemoEnvironmentUpdateOne) SetNillableTemplateID(v *string) *DemoEnvironmentUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetEnvType sets the "env_type" field.
func (_u *DemoEnvironmentUpdateOne) SetEnvType(v demoenvironment.EnvType) *DemoEnvironmentUpdateOne {
	_u.mutation.SetEnvType(v)
	return _u
}

// SetNillableEnvType sets the "env_type" field if the given value is not nil.
func (_u *DemoEnvironmentUpdateOne) SetNillableEnvType(v *demoenvironment.EnvType) *DemoEnvironmentUpdateOne {
	if v != nil {
		_u.SetEnvType(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *DemoEnvironmentUpdateOne) SetCreatedBy(v string) *DemoEnvironmentUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *DemoEnvironmentUpdateOne) SetNillableCreatedBy(v *string) *DemoEnvironmentUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *DemoEnvironmentUpdateOne) ClearCreatedBy() *DemoEnvironmentUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *DemoEnvironmentUpdateOne) SetLastInteractionAt(v time.Time) *DemoEnvironmentUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *DemoEnvironmentUpdateOne) SetNillableLastInteractionAt(v *time.Time) *DemoEnvironmentUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *DemoEnvironmentUpdateOne) ClearLastInteractionAt() *DemoEnvironmentUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *DemoEnvironmentUpdateOne) AddMessageIDs(ids ...string) *DemoEnvironmentUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *DemoEnvironmentUpdateOne) AddMessages(v ...*ChatMessage) *DemoEnvironmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *DemoEnvironmentUpdateOne) AddTimelineEventIDs(ids ...string) *DemoEnvironmentUpdateOne {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *DemoEnvironmentUpdateOne) AddTimelineEvents(v ...*TimelineEvent) *DemoEnvironmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// Mutation returns the DemoEnvironmentMutation object of the builder.
func (_u *DemoEnvironmentUpdateOne) Mutation() *DemoEnvironmentMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *DemoEnvironmentUpdateOne) ClearMessages() *DemoEnvironmentUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *DemoEnvironmentUpdateOne) RemoveMessageIDs(ids ...string) *DemoEnvironmentUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *DemoEnvironmentUpdateOne) RemoveMessages(v ...*ChatMessage) *DemoEnvironmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *DemoEnvironmentUpdateOne) ClearTimelineEvents() *DemoEnvironmentUpdateOne {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *DemoEnvironmentUpdateOne) RemoveTimelineEventIDs(ids ...string) *DemoEnvironmentUpdateOne {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *DemoEnvironmentUpdateOne) RemoveTimelineEvents(v ...*TimelineEvent) *DemoEnvironmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// Where appends a list predicates to the DemoEnvironmentUpdate builder.
func (_u *DemoEnvironmentUpdateOne) Where(ps ...predicate.DemoEnvironment) *DemoEnvironmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DemoEnvironmentUpdateOne) Select(field string, fields ...string) *DemoEnvironmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DemoEnvironment entity.
func (_u *DemoEnvironmentUpdateOne) Save(ctx context.Context) (*DemoEnvironment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DemoEnvironmentUpdateOne) SaveX(ctx context.Context) *DemoEnvironment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DemoEnvironmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DemoEnvironmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DemoEnvironmentUpdateOne) check() error {
	if v, ok := _u.mutation.EnvType(); ok {
		if err := demoenvironment.EnvTypeValidator(v); err != nil {
			return &ValidationError{Name: "env_type", err: fmt.Errorf(`ent: validator failed for field "DemoEnvironment.env_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DemoEnvironmentUpdateOne) sqlSave(ctx context.Context) (_node *DemoEnvironment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(demoenvironment.Table, demoenvironment.Columns, sqlgraph.NewFieldSpec(demoenvironment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DemoEnvironment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, demoenvironment.FieldID)
		for _, f := range fields {
			if !demoenvironment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != demoenvironment.FieldID {
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
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(demoenvironment.FieldTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnvType(); ok {
		_spec.SetField(demoenvironment.FieldEnvType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(demoenvironment.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(demoenvironment.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(demoenvironment.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(demoenvironment.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TimelineEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTimelineEventsIDs(); len(nodes) > 0 && !_u.mutation.TimelineEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TimelineEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DemoEnvironment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{demoenvironment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
