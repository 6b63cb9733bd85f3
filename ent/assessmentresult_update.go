// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cozmiclearning/cozmic/ent/assessmentresult"
	"github.com/cozmiclearning/cozmic/ent/predicate"
)

// AssessmentResultUpdate is the builder for updating AssessmentResult entities.
type AssessmentResultUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentResultMutation
}

// Where appends a list predicates to the AssessmentResultUpdate builder.
func (_u *AssessmentResultUpdate) Where(ps ...predicate.AssessmentResult) *AssessmentResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AssessmentResultUpdate) SetStudentID(v string) *AssessmentResultUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableStudentID(v *string) *AssessmentResultUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetScorePercent sets the "score_percent" field.
func (_u *AssessmentResultUpdate) SetScorePercent(v float64) *AssessmentResultUpdate {
	_u.mutation.ResetScorePercent()
	_u.mutation.SetScorePercent(v)
	return _u
}

// SetNillableScorePercent sets the "score_percent" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableScorePercent(v *float64) *AssessmentResultUpdate {
	if v != nil {
		_u.SetScorePercent(*v)
	}
	return _u
}

// AddScorePercent adds value to the "score_percent" field.
func (_u *AssessmentResultUpdate) AddScorePercent(v float64) *AssessmentResultUpdate {
	_u.mutation.AddScorePercent(v)
	return _u
}

// ClearScorePercent clears the value of the "score_percent" field.
func (_u *AssessmentResultUpdate) ClearScorePercent() *AssessmentResultUpdate {
	_u.mutation.ClearScorePercent()
	return _u
}

// Mutation returns the AssessmentResultMutation object of the builder.
func (_u *AssessmentResultUpdate) Mutation() *AssessmentResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentResultUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := assessmentresult.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.student_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentresult.Table, assessmentresult.Columns, sqlgraph.NewFieldSpec(assessmentresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(assessmentresult.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScorePercent(); ok {
		_spec.SetField(assessmentresult.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercent(); ok {
		_spec.AddField(assessmentresult.FieldScorePercent, field.TypeFloat64, value)
	}
	if _u.mutation.ScorePercentCleared() {
		_spec.ClearField(assessmentresult.FieldScorePercent, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentResultUpdateOne is the builder for updating a single AssessmentResult entity.
type AssessmentResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentResultMutation
}

// SetStudentID sets the "student_id" field.
func (_u *AssessmentResultUpdateOne) SetStudentID(v string) *AssessmentResultUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableStudentID(v *string) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetScorePercent sets the "score_percent" field.
func (_u *AssessmentResultUpdateOne) SetScorePercent(v float64) *AssessmentResultUpdateOne {
	_u.mutation.ResetScorePercent()
	_u.mutation.SetScorePercent(v)
	return _u
}

// SetNillableScorePercent sets the "score_percent" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableScorePercent(v *float64) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetScorePercent(*v)
	}
	return _u
}

// AddScorePercent adds value to the "score_percent" field.
func (_u *AssessmentResultUpdateOne) AddScorePercent(v float64) *AssessmentResultUpdateOne {
	_u.mutation.AddScorePercent(v)
	return _u
}

// ClearScorePercent clears the value of the "score_percent" field.
func (_u *AssessmentResultUpdateOne) ClearScorePercent() *AssessmentResultUpdateOne {
	_u.mutation.ClearScorePercent()
	return _u
}

// Mutation returns the AssessmentResultMutation object of the builder.
func (_u *AssessmentResultUpdateOne) Mutation() *AssessmentResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentResultUpdate builder.
func (_u *AssessmentResultUpdateOne) Where(ps ...predicate.AssessmentResult) *AssessmentResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentResultUpdateOne) Select(field string, fields ...string) *AssessmentResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentResult entity.
func (_u *AssessmentResultUpdateOne) Save(ctx context.Context) (*AssessmentResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentResultUpdateOne) SaveX(ctx context.Context) *AssessmentResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentResultUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := assessmentresult.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.student_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentResultUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentresult.Table, assessmentresult.Columns, sqlgraph.NewFieldSpec(assessmentresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentresult.FieldID)
		for _, f := range fields {
			if !assessmentresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentresult.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(assessmentresult.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScorePercent(); ok {
		_spec.SetField(assessmentresult.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercent(); ok {
		_spec.AddField(assessmentresult.FieldScorePercent, field.TypeFloat64, value)
	}
	if _u.mutation.ScorePercentCleared() {
		_spec.ClearField(assessmentresult.FieldScorePercent, field.TypeFloat64)
	}
	_node = &AssessmentResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
