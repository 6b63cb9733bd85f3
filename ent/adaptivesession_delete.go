// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cozmiclearning/cozmic/ent/adaptivesession"
	"github.com/cozmiclearning/cozmic/ent/predicate"
)

// AdaptiveSessionDelete is the builder for deleting a AdaptiveSession entity.
type AdaptiveSessionDelete struct {
	config
	hooks    []Hook
	mutation *AdaptiveSessionMutation
}

// Where appends a list predicates to the AdaptiveSessionDelete builder.
func (_d *AdaptiveSessionDelete) Where(ps ...predicate.AdaptiveSession) *AdaptiveSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdaptiveSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdaptiveSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdaptiveSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(adaptivesession.Table, sqlgraph.NewFieldSpec(adaptivesession.FieldID, field.TypeInt))
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

// AdaptiveSessionDeleteOne is the builder for deleting a single AdaptiveSession entity.
type AdaptiveSessionDeleteOne struct {
	_d *AdaptiveSessionDelete
}

// Where appends a list predicates to the AdaptiveSessionDelete builder.
func (_d *AdaptiveSessionDeleteOne) Where(ps ...predicate.AdaptiveSession) *AdaptiveSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdaptiveSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{adaptivesession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdaptiveSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
