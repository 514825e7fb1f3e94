// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/showroom-hq/showroom/ent/demoenvironment"
	"github.com/showroom-hq/showroom/ent/predicate"
)

// DemoEnvironmentDelete is the builder for deleting a DemoEnvironment entity.
type DemoEnvironmentDelete struct {
	config
	hooks    []Hook
	mutation *DemoEnvironmentMutation
}

// Where appends a list predicates to the DemoEnvironmentDelete builder.
func (_d *DemoEnvironmentDelete) Where(ps ...predicate.DemoEnvironment) *DemoEnvironmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DemoEnvironmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DemoEnvironmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DemoEnvironmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(demoenvironment.Table, sqlgraph.NewFieldSpec(demoenvironment.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DemoEnvironmentDeleteOne is the builder for deleting a single DemoEnvironment entity.
type DemoEnvironmentDeleteOne struct {
	_d *DemoEnvironmentDelete
}

// Where appends a list predicates to the DemoEnvironmentDelete builder.
func (_d *DemoEnvironmentDeleteOne) Where(ps ...predicate.DemoEnvironment) *DemoEnvironmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DemoEnvironmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{demoenvironment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DemoEnvironmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
