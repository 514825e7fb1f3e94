// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/showroom-hq/showroom/ent/predicate"
	"github.com/showroom-hq/showroom/ent/timelineevent"
)

// TimelineEventUpdate is the builder for updating TimelineEvent entities.
type TimelineEventUpdate struct {
	config
	hooks    []Hook
	mutation *TimelineEventMutation
}

// Where appends a list predicates to the TimelineEventUpdate builder.
func (_u *TimelineEventUpdate) Where(ps ...predicate.TimelineEvent) *TimelineEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *TimelineEventUpdate) SetSequenceNumber(v int) *TimelineEventUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *TimelineEventUpdate) SetNillableSequenceNumber(v *int) *TimelineEventUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *TimelineEventUpdate) AddSequenceNumber(v int) *TimelineEventUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *TimelineEventUpdate) SetEventType(v timelineevent.EventType) *TimelineEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *TimelineEventUpdate) SetNillableEventType(v *timelineevent.EventType) *TimelineEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TimelineEventUpdate) SetStatus(v timelineevent.Status) *TimelineEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TimelineEventUpdate) SetNillableStatus(v *timelineevent.Status) *TimelineEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TimelineEventUpdate) SetTitle(v string) *TimelineEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TimelineEventUpdate) SetNillableTitle(v *string) *TimelineEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *TimelineEventUpdate) SetDetail(v string) *TimelineEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *TimelineEventUpdate) SetNillableDetail(v *string) *TimelineEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *TimelineEventUpdate) ClearDetail() *TimelineEventUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetHighlightedFeature sets the "highlighted_feature" field.
func (_u *TimelineEventUpdate) SetHighlightedFeature(v string) *TimelineEventUpdate {
	_u.mutation.SetHighlightedFeature(v)
	return _u
}

// SetNillableHighlightedFeature sets the "highlighted_feature" field if the given value is not nil.
func (_u *TimelineEventUpdate) SetNillableHighlightedFeature(v *string) *TimelineEventUpdate {
	if v != nil {
		_u.SetHighlightedFeature(*v)
	}
	return _u
}

// ClearHighlightedFeature clears the value of the "highlighted_feature" field.
func (_u *TimelineEventUpdate) ClearHighlightedFeature() *TimelineEventUpdate {
	_u.mutation.ClearHighlightedFeature()
	return _u
}

// Mutation returns the TimelineEventMutation object of the builder.
func (_u *TimelineEventUpdate) Mutation() *TimelineEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TimelineEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimelineEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TimelineEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimelineEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimelineEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := timelineevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "TimelineEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := timelineevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimelineEvent.status": %w`, err)}
		}
	}
	if _u.mutation.EnvironmentCleared() && len(_u.mutation.EnvironmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TimelineEvent.environment"`)
	}
	return nil
}

func (_u *TimelineEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timelineevent.Table, timelineevent.Columns, sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(timelineevent.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(timelineevent.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(timelineevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(timelineevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(timelineevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(timelineevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(timelineevent.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.HighlightedFeature(); ok {
		_spec.SetField(timelineevent.FieldHighlightedFeature, field.TypeString, value)
	}
	if _u.mutation.HighlightedFeatureCleared() {
		_spec.ClearField(timelineevent.FieldHighlightedFeature, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timelineevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TimelineEventUpdateOne is the builder for updating a single TimelineEvent entity.
type TimelineEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TimelineEventMutation
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *TimelineEventUpdateOne) SetSequenceNumber(v int) *TimelineEventUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *TimelineEventUpdateOne) SetNillableSequenceNumber(v *int) *TimelineEventUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *TimelineEventUpdateOne) AddSequenceNumber(v int) *TimelineEventUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *TimelineEventUpdateOne) SetEventType(v timelineevent.EventType) *TimelineEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *TimelineEventUpdateOne) SetNillableEventType(v *timelineevent.EventType) *TimelineEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TimelineEventUpdateOne) SetStatus(v timelineevent.Status) *TimelineEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TimelineEventUpdateOne) SetNillableStatus(v *timelineevent.Status) *TimelineEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TimelineEventUpdateOne) SetTitle(v string) *TimelineEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TimelineEventUpdateOne) SetNillableTitle(v *string) *TimelineEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *TimelineEventUpdateOne) SetDetail(v string) *TimelineEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *TimelineEventUpdateOne) SetNillableDetail(v *string) *TimelineEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *TimelineEventUpdateOne) ClearDetail() *TimelineEventUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetHighlightedFeature sets the "highlighted_feature" field.
func (_u *TimelineEventUpdateOne) SetHighlightedFeature(v string) *TimelineEventUpdateOne {
	_u.mutation.SetHighlightedFeature(v)
	return _u
}

// SetNillableHighlightedFeature sets the "highlighted_feature" field if the given value is not nil.
func (_u *TimelineEventUpdateOne) SetNillableHighlightedFeature(v *string) *TimelineEventUpdateOne {
	if v != nil {
		_u.SetHighlightedFeature(*v)
	}
	return _u
}

// ClearHighlightedFeature clears the value of the "highlighted_feature" field.
func (_u *TimelineEventUpdateOne) ClearHighlightedFeature() *TimelineEventUpdateOne {
	_u.mutation.ClearHighlightedFeature()
	return _u
}

// Mutation returns the TimelineEventMutation object of the builder.
func (_u *TimelineEventUpdateOne) Mutation() *TimelineEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TimelineEventUpdate builder.
func (_u *TimelineEventUpdateOne) Where(ps ...predicate.TimelineEvent) *TimelineEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TimelineEventUpdateOne) Select(field string, fields ...string) *TimelineEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TimelineEvent entity.
func (_u *TimelineEventUpdateOne) Save(ctx context.Context) (*TimelineEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimelineEventUpdateOne) SaveX(ctx context.Context) *TimelineEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TimelineEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimelineEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimelineEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := timelineevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "TimelineEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := timelineevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimelineEvent.status": %w`, err)}
		}
	}
	if _u.mutation.EnvironmentCleared() && len(_u.mutation.EnvironmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TimelineEvent.environment"`)
	}
	return nil
}

func (_u *TimelineEventUpdateOne) sqlSave(ctx context.Context) (_node *TimelineEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timelineevent.Table, timelineevent.Columns, sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TimelineEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timelineevent.FieldID)
		for _, f := range fields {
			if !timelineevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != timelineevent.FieldID {
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
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(timelineevent.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(timelineevent.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(timelineevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(timelineevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(timelineevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(timelineevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(timelineevent.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.HighlightedFeature(); ok {
		_spec.SetField(timelineevent.FieldHighlightedFeature, field.TypeString, value)
	}
	if _u.mutation.HighlightedFeatureCleared() {
		_spec.ClearField(timelineevent.FieldHighlightedFeature, field.TypeString)
	}
	_node = &TimelineEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timelineevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
