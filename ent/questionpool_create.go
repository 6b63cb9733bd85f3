// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cozmiclearning/cozmic/ent/questionpool"
	"github.com/cozmiclearning/cozmic/ent/schema"
)

// QuestionPoolCreate is the builder for creating a QuestionPool entity.
type QuestionPoolCreate struct {
	config
	mutation *QuestionPoolMutation
	hooks    []Hook
}

// SetPoolID sets the "pool_id" field.
func (_c *QuestionPoolCreate) SetPoolID(v string) *QuestionPoolCreate {
	_c.mutation.SetPoolID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuestionPoolCreate) SetTopic(v string) *QuestionPoolCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *QuestionPoolCreate) SetSubject(v string) *QuestionPoolCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *QuestionPoolCreate) SetNillableSubject(v *string) *QuestionPoolCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *QuestionPoolCreate) SetGrade(v string) *QuestionPoolCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_c *QuestionPoolCreate) SetNillableGrade(v *string) *QuestionPoolCreate {
	if v != nil {
		_c.SetGrade(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *QuestionPoolCreate) SetMode(v string) *QuestionPoolCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *QuestionPoolCreate) SetNillableMode(v *string) *QuestionPoolCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetTargetAbility sets the "target_ability" field.
func (_c *QuestionPoolCreate) SetTargetAbility(v string) *QuestionPoolCreate {
	_c.mutation.SetTargetAbility(v)
	return _c
}

// SetNillableTargetAbility sets the "target_ability" field if the given value is not nil.
func (_c *QuestionPoolCreate) SetNillableTargetAbility(v *string) *QuestionPoolCreate {
	if v != nil {
		_c.SetTargetAbility(*v)
	}
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *QuestionPoolCreate) SetQuestions(v []schema.QuestionData) *QuestionPoolCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetFinalMessage sets the "final_message" field.
func (_c *QuestionPoolCreate) SetFinalMessage(v string) *QuestionPoolCreate {
	_c.mutation.SetFinalMessage(v)
	return _c
}

// SetNillableFinalMessage sets the "final_message" field if the given value is not nil.
func (_c *QuestionPoolCreate) SetNillableFinalMessage(v *string) *QuestionPoolCreate {
	if v != nil {
		_c.SetFinalMessage(*v)
	}
	return _c
}

// SetSynthetic sets the "synthetic" field.
func (_c *QuestionPoolCreate) SetSynthetic(v bool) *QuestionPoolCreate {
	_c.mutation.SetSynthetic(v)
	return _c
}

// SetNillableSynthetic sets the "synthetic" field if the given value is not nil.
func (_c *QuestionPoolCreate) SetNillableSynthetic(v *bool) *QuestionPoolCreate {
	if v != nil {
		_c.SetSynthetic(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionPoolCreate) SetCreatedAt(v time.Time) *QuestionPoolCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionPoolCreate) SetNillableCreatedAt(v *time.Time) *QuestionPoolCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QuestionPoolMutation object of the builder.
func (_c *QuestionPoolCreate) Mutation() *QuestionPoolMutation {
	return _c.mutation
}

// Save creates the QuestionPool in the database.
func (_c *QuestionPoolCreate) Save(ctx context.Context) (*QuestionPool, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionPoolCreate) SaveX(ctx context.Context) *QuestionPool {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionPoolCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionPoolCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionPoolCreate) defaults() {
	if _, ok := _c.mutation.Subject(); !ok {
		v := questionpool.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.Grade(); !ok {
		v := questionpool.DefaultGrade
		_c.mutation.SetGrade(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := questionpool.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.TargetAbility(); !ok {
		v := questionpool.DefaultTargetAbility
		_c.mutation.SetTargetAbility(v)
	}
	if _, ok := _c.mutation.FinalMessage(); !ok {
		v := questionpool.DefaultFinalMessage
		_c.mutation.SetFinalMessage(v)
	}
	if _, ok := _c.mutation.Synthetic(); !ok {
		v := questionpool.DefaultSynthetic
		_c.mutation.SetSynthetic(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionpool.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionPoolCreate) check() error {
	if _, ok := _c.mutation.PoolID(); !ok {
		return &ValidationError{Name: "pool_id", err: errors.New(`ent: missing required field "QuestionPool.pool_id"`)}
	}
	if v, ok := _c.mutation.PoolID(); ok {
		if err := questionpool.PoolIDValidator(v); err != nil {
			return &ValidationError{Name: "pool_id", err: fmt.Errorf(`ent: validator failed for field "QuestionPool.pool_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "QuestionPool.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := questionpool.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuestionPool.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "QuestionPool.subject"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "QuestionPool.grade"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "QuestionPool.mode"`)}
	}
	if _, ok := _c.mutation.TargetAbility(); !ok {
		return &ValidationError{Name: "target_ability", err: errors.New(`ent: missing required field "QuestionPool.target_ability"`)}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "QuestionPool.questions"`)}
	}
	if _, ok := _c.mutation.FinalMessage(); !ok {
		return &ValidationError{Name: "final_message", err: errors.New(`ent: missing required field "QuestionPool.final_message"`)}
	}
	if _, ok := _c.mutation.Synthetic(); !ok {
		return &ValidationError{Name: "synthetic", err: errors.New(`ent: missing required field "QuestionPool.synthetic"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuestionPool.created_at"`)}
	}
	return nil
}

func (_c *QuestionPoolCreate) sqlSave(ctx context.Context) (*QuestionPool, error) {
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

func (_c *QuestionPoolCreate) createSpec() (*QuestionPool, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionPool{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionpool.Table, sqlgraph.NewFieldSpec(questionpool.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PoolID(); ok {
		_spec.SetField(questionpool.FieldPoolID, field.TypeString, value)
		_node.PoolID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(questionpool.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(questionpool.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(questionpool.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(questionpool.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.TargetAbility(); ok {
		_spec.SetField(questionpool.FieldTargetAbility, field.TypeString, value)
		_node.TargetAbility = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(questionpool.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.FinalMessage(); ok {
		_spec.SetField(questionpool.FieldFinalMessage, field.TypeString, value)
		_node.FinalMessage = value
	}
	if value, ok := _c.mutation.Synthetic(); ok {
		_spec.SetField(questionpool.FieldSynthetic, field.TypeBool, value)
		_node.Synthetic = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionpool.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuestionPoolCreateBulk is the builder for creating many QuestionPool entities in bulk.
type QuestionPoolCreateBulk struct {
	config
	err      error
	builders []*QuestionPoolCreate
}

// Save creates the QuestionPool entities in the database.
func (_c *QuestionPoolCreateBulk) Save(ctx context.Context) ([]*QuestionPool, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionPool, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionPoolMutation)
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
func (_c *QuestionPoolCreateBulk) SaveX(ctx context.Context) []*QuestionPool {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionPoolCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionPoolCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
