// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cozmiclearning/cozmic/ent/predicate"
	"github.com/cozmiclearning/cozmic/ent/questionpool"
	"github.com/cozmiclearning/cozmic/ent/schema"
)

// QuestionPoolUpdate is the builder for updating QuestionPool entities.
type QuestionPoolUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionPoolMutation
}

// Where appends a list predicates to the QuestionPoolUpdate builder.
func (_u *QuestionPoolUpdate) Where(ps ...predicate.QuestionPool) *QuestionPoolUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPoolID sets the "pool_id" field.
func (_u *QuestionPoolUpdate) SetPoolID(v string) *QuestionPoolUpdate {
	_u.mutation.SetPoolID(v)
	return _u
}

// SetNillablePoolID sets the "pool_id" field if the given value is not nil.
func (_u *QuestionPoolUpdate) SetNillablePoolID(v *string) *QuestionPoolUpdate {
	if v != nil {
		_u.SetPoolID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionPoolUpdate) SetTopic(v string) *QuestionPoolUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionPoolUpdate) SetNillableTopic(v *string) *QuestionPoolUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuestionPoolUpdate) SetSubject(v string) *QuestionPoolUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionPoolUpdate) SetNillableSubject(v *string) *QuestionPoolUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *QuestionPoolUpdate) SetGrade(v string) *QuestionPoolUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *QuestionPoolUpdate) SetNillableGrade(v *string) *QuestionPoolUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *QuestionPoolUpdate) SetMode(v string) *QuestionPoolUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *QuestionPoolUpdate) SetNillableMode(v *string) *QuestionPoolUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTargetAbility sets the "target_ability" field.
func (_u *QuestionPoolUpdate) SetTargetAbility(v string) *QuestionPoolUpdate {
	_u.mutation.SetTargetAbility(v)
	return _u
}

// SetNillableTargetAbility sets the "target_ability" field if the given value is not nil.
func (_u *QuestionPoolUpdate) SetNillableTargetAbility(v *string) *QuestionPoolUpdate {
	if v != nil {
		_u.SetTargetAbility(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuestionPoolUpdate) SetQuestions(v []schema.QuestionData) *QuestionPoolUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuestionPoolUpdate) AppendQuestions(v []schema.QuestionData) *QuestionPoolUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetFinalMessage sets the "final_message" field.
func (_u *QuestionPoolUpdate) SetFinalMessage(v string) *QuestionPoolUpdate {
	_u.mutation.SetFinalMessage(v)
	return _u
}

// SetNillableFinalMessage sets the "final_message" field if the given value is not nil.
func (_u *QuestionPoolUpdate) SetNillableFinalMessage(v *string) *QuestionPoolUpdate {
	if v != nil {
		_u.SetFinalMessage(*v)
	}
	return _u
}

// SetSynthetic sets the "synthetic" field.
func (_u *QuestionPoolUpdate) SetSynthetic(v bool) *QuestionPoolUpdate {
	_u.mutation.SetSynthetic(v)
	return _u
}

// SetNillableSynthetic sets the "synthetic" field if the given value is not nil.
func (_u *QuestionPoolUpdate) SetNillableSynthetic(v *bool) *QuestionPoolUpdate {
	if v != nil {
		_u.SetSynthetic(*v)
	}
	return _u
}

// Mutation returns the QuestionPoolMutation object of the builder.
func (_u *QuestionPoolUpdate) Mutation() *QuestionPoolMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionPoolUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionPoolUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionPoolUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionPoolUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionPoolUpdate) check() error {
	if v, ok := _u.mutation.PoolID(); ok {
		if err := questionpool.PoolIDValidator(v); err != nil {
			return &ValidationError{Name: "pool_id", err: fmt.Errorf(`ent: validator failed for field "QuestionPool.pool_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := questionpool.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuestionPool.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionPoolUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionpool.Table, questionpool.Columns, sqlgraph.NewFieldSpec(questionpool.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PoolID(); ok {
		_spec.SetField(questionpool.FieldPoolID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(questionpool.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(questionpool.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(questionpool.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(questionpool.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetAbility(); ok {
		_spec.SetField(questionpool.FieldTargetAbility, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(questionpool.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionpool.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.FinalMessage(); ok {
		_spec.SetField(questionpool.FieldFinalMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Synthetic(); ok {
		_spec.SetField(questionpool.FieldSynthetic, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionpool.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionPoolUpdateOne is the builder for updating a single QuestionPool entity.
type QuestionPoolUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionPoolMutation
}

// SetPoolID sets the "pool_id" field.
func (_u *QuestionPoolUpdateOne) SetPoolID(v string) *QuestionPoolUpdateOne {
	_u.mutation.SetPoolID(v)
	return _u
}

// SetNillablePoolID sets the "pool_id" field if the given value is not nil.
func (_u *QuestionPoolUpdateOne) SetNillablePoolID(v *string) *QuestionPoolUpdateOne {
	if v != nil {
		_u.SetPoolID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionPoolUpdateOne) SetTopic(v string) *QuestionPoolUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionPoolUpdateOne) SetNillableTopic(v *string) *QuestionPoolUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuestionPoolUpdateOne) SetSubject(v string) *QuestionPoolUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionPoolUpdateOne) SetNillableSubject(v *string) *QuestionPoolUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *QuestionPoolUpdateOne) SetGrade(v string) *QuestionPoolUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *QuestionPoolUpdateOne) SetNillableGrade(v *string) *QuestionPoolUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *QuestionPoolUpdateOne) SetMode(v string) *QuestionPoolUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *QuestionPoolUpdateOne) SetNillableMode(v *string) *QuestionPoolUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTargetAbility sets the "target_ability" field.
func (_u *QuestionPoolUpdateOne) SetTargetAbility(v string) *QuestionPoolUpdateOne {
	_u.mutation.SetTargetAbility(v)
	return _u
}

// SetNillableTargetAbility sets the "target_ability" field if the given value is not nil.
func (_u *QuestionPoolUpdateOne) SetNillableTargetAbility(v *string) *QuestionPoolUpdateOne {
	if v != nil {
		_u.SetTargetAbility(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuestionPoolUpdateOne) SetQuestions(v []schema.QuestionData) *QuestionPoolUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuestionPoolUpdateOne) AppendQuestions(v []schema.QuestionData) *QuestionPoolUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetFinalMessage sets the "final_message" field.
func (_u *QuestionPoolUpdateOne) SetFinalMessage(v string) *QuestionPoolUpdateOne {
	_u.mutation.SetFinalMessage(v)
	return _u
}

// SetNillableFinalMessage sets the "final_message" field if the given value is not nil.
func (_u *QuestionPoolUpdateOne) SetNillableFinalMessage(v *string) *QuestionPoolUpdateOne {
	if v != nil {
		_u.SetFinalMessage(*v)
	}
	return _u
}

// SetSynthetic sets the "synthetic" field.
func (_u *QuestionPoolUpdateOne) SetSynthetic(v bool) *QuestionPoolUpdateOne {
	_u.mutation.SetSynthetic(v)
	return _u
}

// SetNillableSynthetic sets the "synthetic" field if the given value is not nil.
func (_u *QuestionPoolUpdateOne) SetNillableSynthetic(v *bool) *QuestionPoolUpdateOne {
	if v != nil {
		_u.SetSynthetic(*v)
	}
	return _u
}

// Mutation returns the QuestionPoolMutation object of the builder.
func (_u *QuestionPoolUpdateOne) Mutation() *QuestionPoolMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionPoolUpdate builder.
func (_u *QuestionPoolUpdateOne) Where(ps ...predicate.QuestionPool) *QuestionPoolUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionPoolUpdateOne) Select(field string, fields ...string) *QuestionPoolUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionPool entity.
func (_u *QuestionPoolUpdateOne) Save(ctx context.Context) (*QuestionPool, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionPoolUpdateOne) SaveX(ctx context.Context) *QuestionPool {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionPoolUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionPoolUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionPoolUpdateOne) check() error {
	if v, ok := _u.mutation.PoolID(); ok {
		if err := questionpool.PoolIDValidator(v); err != nil {
			return &ValidationError{Name: "pool_id", err: fmt.Errorf(`ent: validator failed for field "QuestionPool.pool_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := questionpool.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuestionPool.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionPoolUpdateOne) sqlSave(ctx context.Context) (_node *QuestionPool, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionpool.Table, questionpool.Columns, sqlgraph.NewFieldSpec(questionpool.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionPool.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionpool.FieldID)
		for _, f := range fields {
			if !questionpool.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionpool.FieldID {
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
	if value, ok := _u.mutation.PoolID(); ok {
		_spec.SetField(questionpool.FieldPoolID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(questionpool.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(questionpool.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(questionpool.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(questionpool.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetAbility(); ok {
		_spec.SetField(questionpool.FieldTargetAbility, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(questionpool.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionpool.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.FinalMessage(); ok {
		_spec.SetField(questionpool.FieldFinalMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Synthetic(); ok {
		_spec.SetField(questionpool.FieldSynthetic, field.TypeBool, value)
	}
	_node = &QuestionPool{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionpool.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
