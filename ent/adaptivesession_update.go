// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cozmiclearning/cozmic/ent/adaptivesession"
	"github.com/cozmiclearning/cozmic/ent/predicate"
	"github.com/cozmiclearning/cozmic/ent/schema"
)

// AdaptiveSessionUpdate is the builder for updating AdaptiveSession entities.
type AdaptiveSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AdaptiveSessionMutation
}

// Where appends a list predicates to the AdaptiveSessionUpdate builder.
func (_u *AdaptiveSessionUpdate) Where(ps ...predicate.AdaptiveSession) *AdaptiveSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AdaptiveSessionUpdate) SetStudentID(v string) *AdaptiveSessionUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AdaptiveSessionUpdate) SetNillableStudentID(v *string) *AdaptiveSessionUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *AdaptiveSessionUpdate) SetAssignmentID(v string) *AdaptiveSessionUpdate {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *AdaptiveSessionUpdate) SetNillableAssignmentID(v *string) *AdaptiveSessionUpdate {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AdaptiveSessionUpdate) SetPhase(v string) *AdaptiveSessionUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AdaptiveSessionUpdate) SetNillablePhase(v *string) *AdaptiveSessionUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetCurrentQuestionIndex sets the "current_question_index" field.
func (_u *AdaptiveSessionUpdate) SetCurrentQuestionIndex(v int) *AdaptiveSessionUpdate {
	_u.mutation.ResetCurrentQuestionIndex()
	_u.mutation.SetCurrentQuestionIndex(v)
	return _u
}

// SetNillableCurrentQuestionIndex sets the "current_question_index" field if the given value is not nil.
func (_u *AdaptiveSessionUpdate) SetNillableCurrentQuestionIndex(v *int) *AdaptiveSessionUpdate {
	if v != nil {
		_u.SetCurrentQuestionIndex(*v)
	}
	return _u
}

// AddCurrentQuestionIndex adds value to the "current_question_index" field.
func (_u *AdaptiveSessionUpdate) AddCurrentQuestionIndex(v int) *AdaptiveSessionUpdate {
	_u.mutation.AddCurrentQuestionIndex(v)
	return _u
}

// SetMcPhaseComplete sets the "mc_phase_complete" field.
func (_u *AdaptiveSessionUpdate) SetMcPhaseComplete(v bool) *AdaptiveSessionUpdate {
	_u.mutation.SetMcPhaseComplete(v)
	return _u
}

// SetNillableMcPhaseComplete sets the "mc_phase_complete" field if the given value is not nil.
func (_u *AdaptiveSessionUpdate) SetNillableMcPhaseComplete(v *bool) *AdaptiveSessionUpdate {
	if v != nil {
		_u.SetMcPhaseComplete(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *AdaptiveSessionUpdate) SetTrack(v string) *AdaptiveSessionUpdate {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *AdaptiveSessionUpdate) SetNillableTrack(v *string) *AdaptiveSessionUpdate {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetAnswerLog sets the "answer_log" field.
func (_u *AdaptiveSessionUpdate) SetAnswerLog(v []schema.AnswerLogEntry) *AdaptiveSessionUpdate {
	_u.mutation.SetAnswerLog(v)
	return _u
}

// AppendAnswerLog appends value to the "answer_log" field.
func (_u *AdaptiveSessionUpdate) AppendAnswerLog(v []schema.AnswerLogEntry) *AdaptiveSessionUpdate {
	_u.mutation.AppendAnswerLog(v)
	return _u
}

// ClearAnswerLog clears the value of the "answer_log" field.
func (_u *AdaptiveSessionUpdate) ClearAnswerLog() *AdaptiveSessionUpdate {
	_u.mutation.ClearAnswerLog()
	return _u
}

// SetVersion sets the "version" field.
func (_u *AdaptiveSessionUpdate) SetVersion(v int64) *AdaptiveSessionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AdaptiveSessionUpdate) SetNillableVersion(v *int64) *AdaptiveSessionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AdaptiveSessionUpdate) AddVersion(v int64) *AdaptiveSessionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdaptiveSessionUpdate) SetUpdatedAt(v time.Time) *AdaptiveSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AdaptiveSessionMutation object of the builder.
func (_u *AdaptiveSessionUpdate) Mutation() *AdaptiveSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdaptiveSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptiveSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdaptiveSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptiveSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdaptiveSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := adaptivesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptiveSessionUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := adaptivesession.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AdaptiveSession.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentID(); ok {
		if err := adaptivesession.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "AdaptiveSession.assignment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptiveSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptivesession.Table, adaptivesession.Columns, sqlgraph.NewFieldSpec(adaptivesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(adaptivesession.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(adaptivesession.FieldAssignmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(adaptivesession.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentQuestionIndex(); ok {
		_spec.SetField(adaptivesession.FieldCurrentQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentQuestionIndex(); ok {
		_spec.AddField(adaptivesession.FieldCurrentQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.McPhaseComplete(); ok {
		_spec.SetField(adaptivesession.FieldMcPhaseComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(adaptivesession.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerLog(); ok {
		_spec.SetField(adaptivesession.FieldAnswerLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswerLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, adaptivesession.FieldAnswerLog, value)
		})
	}
	if _u.mutation.AnswerLogCleared() {
		_spec.ClearField(adaptivesession.FieldAnswerLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(adaptivesession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(adaptivesession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(adaptivesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptivesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdaptiveSessionUpdateOne is the builder for updating a single AdaptiveSession entity.
type AdaptiveSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdaptiveSessionMutation
}

// SetStudentID sets the "student_id" field.
func (_u *AdaptiveSessionUpdateOne) SetStudentID(v string) *AdaptiveSessionUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AdaptiveSessionUpdateOne) SetNillableStudentID(v *string) *AdaptiveSessionUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *AdaptiveSessionUpdateOne) SetAssignmentID(v string) *AdaptiveSessionUpdateOne {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *AdaptiveSessionUpdateOne) SetNillableAssignmentID(v *string) *AdaptiveSessionUpdateOne {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AdaptiveSessionUpdateOne) SetPhase(v string) *AdaptiveSessionUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AdaptiveSessionUpdateOne) SetNillablePhase(v *string) *AdaptiveSessionUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetCurrentQuestionIndex sets the "current_question_index" field.
func (_u *AdaptiveSessionUpdateOne) SetCurrentQuestionIndex(v int) *AdaptiveSessionUpdateOne {
	_u.mutation.ResetCurrentQuestionIndex()
	_u.mutation.SetCurrentQuestionIndex(v)
	return _u
}

// SetNillableCurrentQuestionIndex sets the "current_question_index" field if the given value is not nil.
func (_u *AdaptiveSessionUpdateOne) SetNillableCurrentQuestionIndex(v *int) *AdaptiveSessionUpdateOne {
	if v != nil {
		_u.SetCurrentQuestionIndex(*v)
	}
	return _u
}

// AddCurrentQuestionIndex adds value to the "current_question_index" field.
func (_u *AdaptiveSessionUpdateOne) AddCurrentQuestionIndex(v int) *AdaptiveSessionUpdateOne {
	_u.mutation.AddCurrentQuestionIndex(v)
	return _u
}

// SetMcPhaseComplete sets the "mc_phase_complete" field.
func (_u *AdaptiveSessionUpdateOne) SetMcPhaseComplete(v bool) *AdaptiveSessionUpdateOne {
	_u.mutation.SetMcPhaseComplete(v)
	return _u
}

// SetNillableMcPhaseComplete sets the "mc_phase_complete" field if the given value is not nil.
func (_u *AdaptiveSessionUpdateOne) SetNillableMcPhaseComplete(v *bool) *AdaptiveSessionUpdateOne {
	if v != nil {
		_u.SetMcPhaseComplete(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *AdaptiveSessionUpdateOne) SetTrack(v string) *AdaptiveSessionUpdateOne {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *AdaptiveSessionUpdateOne) SetNillableTrack(v *string) *AdaptiveSessionUpdateOne {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetAnswerLog sets the "answer_log" field.
func (_u *AdaptiveSessionUpdateOne) SetAnswerLog(v []schema.AnswerLogEntry) *AdaptiveSessionUpdateOne {
	_u.mutation.SetAnswerLog(v)
	return _u
}

// AppendAnswerLog appends value to the "answer_log" field.
func (_u *AdaptiveSessionUpdateOne) AppendAnswerLog(v []schema.AnswerLogEntry) *AdaptiveSessionUpdateOne {
	_u.mutation.AppendAnswerLog(v)
	return _u
}

// ClearAnswerLog clears the value of the "answer_log" field.
func (_u *AdaptiveSessionUpdateOne) ClearAnswerLog() *AdaptiveSessionUpdateOne {
	_u.mutation.ClearAnswerLog()
	return _u
}

// SetVersion sets the "version" field.
func (_u *AdaptiveSessionUpdateOne) SetVersion(v int64) *AdaptiveSessionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AdaptiveSessionUpdateOne) SetNillableVersion(v *int64) *AdaptiveSessionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AdaptiveSessionUpdateOne) AddVersion(v int64) *AdaptiveSessionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdaptiveSessionUpdateOne) SetUpdatedAt(v time.Time) *AdaptiveSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AdaptiveSessionMutation object of the builder.
func (_u *AdaptiveSessionUpdateOne) Mutation() *AdaptiveSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdaptiveSessionUpdate builder.
func (_u *AdaptiveSessionUpdateOne) Where(ps ...predicate.AdaptiveSession) *AdaptiveSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdaptiveSessionUpdateOne) Select(field string, fields ...string) *AdaptiveSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdaptiveSession entity.
func (_u *AdaptiveSessionUpdateOne) Save(ctx context.Context) (*AdaptiveSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptiveSessionUpdateOne) SaveX(ctx context.Context) *AdaptiveSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdaptiveSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptiveSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdaptiveSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := adaptivesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptiveSessionUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := adaptivesession.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AdaptiveSession.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentID(); ok {
		if err := adaptivesession.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "AdaptiveSession.assignment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptiveSessionUpdateOne) sqlSave(ctx context.Context) (_node *AdaptiveSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptivesession.Table, adaptivesession.Columns, sqlgraph.NewFieldSpec(adaptivesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdaptiveSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adaptivesession.FieldID)
		for _, f := range fields {
			if !adaptivesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adaptivesession.FieldID {
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
		_spec.SetField(adaptivesession.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(adaptivesession.FieldAssignmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(adaptivesession.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentQuestionIndex(); ok {
		_spec.SetField(adaptivesession.FieldCurrentQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentQuestionIndex(); ok {
		_spec.AddField(adaptivesession.FieldCurrentQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.McPhaseComplete(); ok {
		_spec.SetField(adaptivesession.FieldMcPhaseComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(adaptivesession.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerLog(); ok {
		_spec.SetField(adaptivesession.FieldAnswerLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswerLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, adaptivesession.FieldAnswerLog, value)
		})
	}
	if _u.mutation.AnswerLogCleared() {
		_spec.ClearField(adaptivesession.FieldAnswerLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(adaptivesession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(adaptivesession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(adaptivesession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AdaptiveSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptivesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
