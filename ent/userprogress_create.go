// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nkapoor/emcmd/ent/schema"
	"github.com/nkapoor/emcmd/ent/userprogress"
)

// UserProgressCreate is the builder for creating a UserProgress entity.
type UserProgressCreate struct {
	config
	mutation *UserProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserProgressCreate) SetUserID(v string) *UserProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCompletedCases sets the "completed_cases" field.
func (_c *UserProgressCreate) SetCompletedCases(v []string) *UserProgressCreate {
	_c.mutation.SetCompletedCases(v)
	return _c
}

// SetAssessmentScores sets the "assessment_scores" field.
func (_c *UserProgressCreate) SetAssessmentScores(v []schema.AttemptRecord) *UserProgressCreate {
	_c.mutation.SetAssessmentScores(v)
	return _c
}

// SetConditionsStudied sets the "conditions_studied" field.
func (_c *UserProgressCreate) SetConditionsStudied(v []string) *UserProgressCreate {
	_c.mutation.SetConditionsStudied(v)
	return _c
}

// SetLastActivity sets the "last_activity" field.
func (_c *UserProgressCreate) SetLastActivity(v time.Time) *UserProgressCreate {
	_c.mutation.SetLastActivity(v)
	return _c
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableLastActivity(v *time.Time) *UserProgressCreate {
	if v != nil {
		_c.SetLastActivity(*v)
	}
	return _c
}

// SetStats sets the "stats" field.
func (_c *UserProgressCreate) SetStats(v schema.StatsRecord) *UserProgressCreate {
	_c.mutation.SetStats(v)
	return _c
}

// Mutation returns the UserProgressMutation object of the builder.
func (_c *UserProgressCreate) Mutation() *UserProgressMutation {
	return _c.mutation
}

// Save creates the UserProgress in the database.
func (_c *UserProgressCreate) Save(ctx context.Context) (*UserProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserProgressCreate) SaveX(ctx context.Context) *UserProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserProgressCreate) defaults() {
	if _, ok := _c.mutation.LastActivity(); !ok {
		v := userprogress.DefaultLastActivity()
		_c.mutation.SetLastActivity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		return &ValidationError{Name: "last_activity", err: errors.New(`ent: missing required field "UserProgress.last_activity"`)}
	}
	if _, ok := _c.mutation.Stats(); !ok {
		return &ValidationError{Name: "stats", err: errors.New(`ent: missing required field "UserProgress.stats"`)}
	}
	return nil
}

func (_c *UserProgressCreate) sqlSave(ctx context.Context) (*UserProgress, error) {
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

func (_c *UserProgressCreate) createSpec() (*UserProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &UserProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userprogress.Table, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CompletedCases(); ok {
		_spec.SetField(userprogress.FieldCompletedCases, field.TypeJSON, value)
		_node.CompletedCases = value
	}
	if value, ok := _c.mutation.AssessmentScores(); ok {
		_spec.SetField(userprogress.FieldAssessmentScores, field.TypeJSON, value)
		_node.AssessmentScores = value
	}
	if value, ok := _c.mutation.ConditionsStudied(); ok {
		_spec.SetField(userprogress.FieldConditionsStudied, field.TypeJSON, value)
		_node.ConditionsStudied = value
	}
	if value, ok := _c.mutation.LastActivity(); ok {
		_spec.SetField(userprogress.FieldLastActivity, field.TypeTime, value)
		_node.LastActivity = value
	}
	if value, ok := _c.mutation.Stats(); ok {
		_spec.SetField(userprogress.FieldStats, field.TypeJSON, value)
		_node.Stats = value
	}
	return _node, _spec
}

// UserProgressCreateBulk is the builder for creating many UserProgress entities in bulk.
type UserProgressCreateBulk struct {
	config
	err      error
	builders []*UserProgressCreate
}

// Save creates the UserProgress entities in the database.
func (_c *UserProgressCreateBulk) Save(ctx context.Context) ([]*UserProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserProgressMutation)
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
func (_c *UserProgressCreateBulk) SaveX(ctx context.Context) []*UserProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
