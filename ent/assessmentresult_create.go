// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cozmiclearning/cozmic/ent/assessmentresult"
)

// AssessmentResultCreate is the builder for creating a AssessmentResult entity.
type AssessmentResultCreate struct {
	config
	mutation *AssessmentResultMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *AssessmentResultCreate) SetStudentID(v string) *AssessmentResultCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetScorePercent sets the "score_percent" field.
func (_c *AssessmentResultCreate) SetScorePercent(v float64) *AssessmentResultCreate {
	_c.mutation.SetScorePercent(v)
	return _c
}

// SetNillableScorePercent sets the "score_percent" field if the given value is not nil.
func (_c *AssessmentResultCreate) SetNillableScorePercent(v *float64) *AssessmentResultCreate {
	if v != nil {
		_c.SetScorePercent(*v)
	}
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *AssessmentResultCreate) SetRecordedAt(v time.Time) *AssessmentResultCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *AssessmentResultCreate) SetNillableRecordedAt(v *time.Time) *AssessmentResultCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// Mutation returns the AssessmentResultMutation object of the builder.
func (_c *AssessmentResultCreate) Mutation() *AssessmentResultMutation {
	return _c.mutation
}

// Save creates the AssessmentResult in the database.
func (_c *AssessmentResultCreate) Save(ctx context.Context) (*AssessmentResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentResultCreate) SaveX(ctx context.Context) *AssessmentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentResultCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := assessmentresult.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentResultCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "AssessmentResult.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := assessmentresult.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "AssessmentResult.recorded_at"`)}
	}
	return nil
}

func (_c *AssessmentResultCreate) sqlSave(ctx context.Context) (*AssessmentResult, error) {
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

func (_c *AssessmentResultCreate) createSpec() (*AssessmentResult, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentresult.Table, sqlgraph.NewFieldSpec(assessmentresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(assessmentresult.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.ScorePercent(); ok {
		_spec.SetField(assessmentresult.FieldScorePercent, field.TypeFloat64, value)
		_node.ScorePercent = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(assessmentresult.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	return _node, _spec
}

// AssessmentResultCreateBulk is the builder for creating many AssessmentResult entities in bulk.
type AssessmentResultCreateBulk struct {
	config
	err      error
	builders []*AssessmentResultCreate
}

// Save creates the AssessmentResult entities in the database.
func (_c *AssessmentResultCreateBulk) Save(ctx context.Context) ([]*AssessmentResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentResultMutation)
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
func (_c *AssessmentResultCreateBulk) SaveX(ctx context.Context) []*AssessmentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
