// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cozmiclearning/cozmic/ent/adaptivesession"
	"github.com/cozmiclearning/cozmic/ent/schema"
)

// AdaptiveSessionCreate is the builder for creating a AdaptiveSession entity.
type AdaptiveSessionCreate struct {
	config
	mutation *AdaptiveSessionMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *AdaptiveSessionCreate) SetStudentID(v string) *AdaptiveSessionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *AdaptiveSessionCreate) SetAssignmentID(v string) *AdaptiveSessionCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *AdaptiveSessionCreate) SetPhase(v string) *AdaptiveSessionCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *AdaptiveSessionCreate) SetNillablePhase(v *string) *AdaptiveSessionCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetCurrentQuestionIndex sets the "current_question_index" field.
func (_c *AdaptiveSessionCreate) SetCurrentQuestionIndex(v int) *AdaptiveSessionCreate {
	_c.mutation.SetCurrentQuestionIndex(v)
	return _c
}

// SetNillableCurrentQuestionIndex sets the "current_question_index" field if the given value is not nil.
func (_c *AdaptiveSessionCreate) SetNillableCurrentQuestionIndex(v *int) *AdaptiveSessionCreate {
	if v != nil {
		_c.SetCurrentQuestionIndex(*v)
	}
	return _c
}

// SetMcPhaseComplete sets the "mc_phase_complete" field.
func (_c *AdaptiveSessionCreate) SetMcPhaseComplete(v bool) *AdaptiveSessionCreate {
	_c.mutation.SetMcPhaseComplete(v)
	return _c
}

// SetNillableMcPhaseComplete sets the "mc_phase_complete" field if the given value is not nil.
func (_c *AdaptiveSessionCreate) SetNillableMcPhaseComplete(v *bool) *AdaptiveSessionCreate {
	if v != nil {
		_c.SetMcPhaseComplete(*v)
	}
	return _c
}

// SetTrack sets the "track" field.
func (_c *AdaptiveSessionCreate) SetTrack(v string) *AdaptiveSessionCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_c *AdaptiveSessionCreate) SetNillableTrack(v *string) *AdaptiveSessionCreate {
	if v != nil {
		_c.SetTrack(*v)
	}
	return _c
}

// SetAnswerLog sets the "answer_log" field.
func (_c *AdaptiveSessionCreate) SetAnswerLog(v []schema.AnswerLogEntry) *AdaptiveSessionCreate {
	_c.mutation.SetAnswerLog(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *AdaptiveSessionCreate) SetVersion(v int64) *AdaptiveSessionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *AdaptiveSessionCreate) SetNillableVersion(v *int64) *AdaptiveSessionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AdaptiveSessionCreate) SetUpdatedAt(v time.Time) *AdaptiveSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AdaptiveSessionCreate) SetNillableUpdatedAt(v *time.Time) *AdaptiveSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the AdaptiveSessionMutation object of the builder.
func (_c *AdaptiveSessionCreate) Mutation() *AdaptiveSessionMutation {
	return _c.mutation
}

// Save creates the AdaptiveSession in the database.
func (_c *AdaptiveSessionCreate) Save(ctx context.Context) (*AdaptiveSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdaptiveSessionCreate) SaveX(ctx context.Context) *AdaptiveSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdaptiveSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdaptiveSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdaptiveSessionCreate) defaults() {
	if _, ok := _c.mutation.Phase(); !ok {
		v := adaptivesession.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.CurrentQuestionIndex(); !ok {
		v := adaptivesession.DefaultCurrentQuestionIndex
		_c.mutation.SetCurrentQuestionIndex(v)
	}
	if _, ok := _c.mutation.McPhaseComplete(); !ok {
		v := adaptivesession.DefaultMcPhaseComplete
		_c.mutation.SetMcPhaseComplete(v)
	}
	if _, ok := _c.mutation.Track(); !ok {
		v := adaptivesession.DefaultTrack
		_c.mutation.SetTrack(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := adaptivesession.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := adaptivesession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdaptiveSessionCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "AdaptiveSession.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := adaptivesession.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AdaptiveSession.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`ent: missing required field "AdaptiveSession.assignment_id"`)}
	}
	if v, ok := _c.mutation.AssignmentID(); ok {
		if err := adaptivesession.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "AdaptiveSession.assignment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "AdaptiveSession.phase"`)}
	}
	if _, ok := _c.mutation.CurrentQuestionIndex(); !ok {
		return &ValidationError{Name: "current_question_index", err: errors.New(`ent: missing required field "AdaptiveSession.current_question_index"`)}
	}
	if _, ok := _c.mutation.McPhaseComplete(); !ok {
		return &ValidationError{Name: "mc_phase_complete", err: errors.New(`ent: missing required field "AdaptiveSession.mc_phase_complete"`)}
	}
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "AdaptiveSession.track"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AdaptiveSession.version"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AdaptiveSession.updated_at"`)}
	}
	return nil
}

func (_c *AdaptiveSessionCreate) sqlSave(ctx context.Context) (*AdaptiveSession, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdaptiveSessionCreate) createSpec() (*AdaptiveSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AdaptiveSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adaptivesession.Table, sqlgraph.NewFieldSpec(adaptivesession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(adaptivesession.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.AssignmentID(); ok {
		_spec.SetField(adaptivesession.FieldAssignmentID, field.TypeString, value)
		_node.AssignmentID = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(adaptivesession.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.CurrentQuestionIndex(); ok {
		_spec.SetField(adaptivesession.FieldCurrentQuestionIndex, field.TypeInt, value)
		_node.CurrentQuestionIndex = value
	}
	if value, ok := _c.mutation.McPhaseComplete(); ok {
		_spec.SetField(adaptivesession.FieldMcPhaseComplete, field.TypeBool, value)
		_node.McPhaseComplete = value
	}
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(adaptivesession.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.AnswerLog(); ok {
		_spec.SetField(adaptivesession.FieldAnswerLog, field.TypeJSON, value)
		_node.AnswerLog = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(adaptivesession.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(adaptivesession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AdaptiveSessionCreateBulk is the builder for creating many AdaptiveSession entities in bulk.
type AdaptiveSessionCreateBulk struct {
	config
	err      error
	builders []*AdaptiveSessionCreate
}

// Save creates the AdaptiveSession entities in the database.
func (_c *AdaptiveSessionCreateBulk) Save(ctx context.Context) ([]*AdaptiveSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdaptiveSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdaptiveSessionMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AdaptiveSessionCreateBulk) SaveX(ctx context.Context) []*AdaptiveSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdaptiveSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdaptiveSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
