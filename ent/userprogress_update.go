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
	"github.com/nkapoor/emcmd/ent/predicate"
	"github.com/nkapoor/emcmd/ent/schema"
	"github.com/nkapoor/emcmd/ent/userprogress"
)

// UserProgressUpdate is the builder for updating UserProgress entities.
type UserProgressUpdate struct {
	config
	hooks    []Hook
	mutation *UserProgressMutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (_u *UserProgressUpdate) Where(ps ...predicate.UserProgress) *UserProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserProgressUpdate) SetUserID(v string) *UserProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableUserID(v *string) *UserProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCompletedCases sets the "completed_cases" field.
func (_u *UserProgressUpdate) SetCompletedCases(v []string) *UserProgressUpdate {
	_u.mutation.SetCompletedCases(v)
	return _u
}

// AppendCompletedCases appends value to the "completed_cases" field.
func (_u *UserProgressUpdate) AppendCompletedCases(v []string) *UserProgressUpdate {
	_u.mutation.AppendCompletedCases(v)
	return _u
}

// ClearCompletedCases clears the value of the "completed_cases" field.
func (_u *UserProgressUpdate) ClearCompletedCases() *UserProgressUpdate {
	_u.mutation.ClearCompletedCases()
	return _u
}

// SetAssessmentScores sets the "assessment_scores" field.
func (_u *UserProgressUpdate) SetAssessmentScores(v []schema.AttemptRecord) *UserProgressUpdate {
	_u.mutation.SetAssessmentScores(v)
	return _u
}

// AppendAssessmentScores appends value to the "assessment_scores" field.
func (_u *UserProgressUpdate) AppendAssessmentScores(v []schema.AttemptRecord) *UserProgressUpdate {
	_u.mutation.AppendAssessmentScores(v)
	return _u
}

// ClearAssessmentScores clears the value of the "assessment_scores" field.
func (_u *UserProgressUpdate) ClearAssessmentScores() *UserProgressUpdate {
	_u.mutation.ClearAssessmentScores()
	return _u
}

// SetConditionsStudied sets the "conditions_studied" field.
func (_u *UserProgressUpdate) SetConditionsStudied(v []string) *UserProgressUpdate {
	_u.mutation.SetConditionsStudied(v)
	return _u
}

// AppendConditionsStudied appends value to the "conditions_studied" field.
func (_u *UserProgressUpdate) AppendConditionsStudied(v []string) *UserProgressUpdate {
	_u.mutation.AppendConditionsStudied(v)
	return _u
}

// ClearConditionsStudied clears the value of the "conditions_studied" field.
func (_u *UserProgressUpdate) ClearConditionsStudied() *UserProgressUpdate {
	_u.mutation.ClearConditionsStudied()
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *UserProgressUpdate) SetLastActivity(v time.Time) *UserProgressUpdate {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableLastActivity(v *time.Time) *UserProgressUpdate {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// SetStats sets the "stats" field.
func (_u *UserProgressUpdate) SetStats(v schema.StatsRecord) *UserProgressUpdate {
	_u.mutation.SetStats(v)
	return _u
}

// SetNillableStats sets the "stats" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableStats(v *schema.StatsRecord) *UserProgressUpdate {
	if v != nil {
		_u.SetStats(*v)
	}
	return _u
}

// Mutation returns the UserProgressMutation object of the builder.
func (_u *UserProgressUpdate) Mutation() *UserProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedCases(); ok {
		_spec.SetField(userprogress.FieldCompletedCases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedCases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprogress.FieldCompletedCases, value)
		})
	}
	if _u.mutation.CompletedCasesCleared() {
		_spec.ClearField(userprogress.FieldCompletedCases, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssessmentScores(); ok {
		_spec.SetField(userprogress.FieldAssessmentScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssessmentScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprogress.FieldAssessmentScores, value)
		})
	}
	if _u.mutation.AssessmentScoresCleared() {
		_spec.ClearField(userprogress.FieldAssessmentScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConditionsStudied(); ok {
		_spec.SetField(userprogress.FieldConditionsStudied, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditionsStudied(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprogress.FieldConditionsStudied, value)
		})
	}
	if _u.mutation.ConditionsStudiedCleared() {
		_spec.ClearField(userprogress.FieldConditionsStudied, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(userprogress.FieldLastActivity, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(userprogress.FieldStats, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProgressUpdateOne is the builder for updating a single UserProgress entity.
type UserProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserProgressUpdateOne) SetUserID(v string) *UserProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableUserID(v *string) *UserProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCompletedCases sets the "completed_cases" field.
func (_u *UserProgressUpdateOne) SetCompletedCases(v []string) *UserProgressUpdateOne {
	_u.mutation.SetCompletedCases(v)
	return _u
}

// AppendCompletedCases appends value to the "completed_cases" field.
func (_u *UserProgressUpdateOne) AppendCompletedCases(v []string) *UserProgressUpdateOne {
	_u.mutation.AppendCompletedCases(v)
	return _u
}

// ClearCompletedCases clears the value of the "completed_cases" field.
func (_u *UserProgressUpdateOne) ClearCompletedCases() *UserProgressUpdateOne {
	_u.mutation.ClearCompletedCases()
	return _u
}

// SetAssessmentScores sets the "assessment_scores" field.
func (_u *UserProgressUpdateOne) SetAssessmentScores(v []schema.AttemptRecord) *UserProgressUpdateOne {
	_u.mutation.SetAssessmentScores(v)
	return _u
}

// AppendAssessmentScores appends value to the "assessment_scores" field.
func (_u *UserProgressUpdateOne) AppendAssessmentScores(v []schema.AttemptRecord) *UserProgressUpdateOne {
	_u.mutation.AppendAssessmentScores(v)
	return _u
}

// ClearAssessmentScores clears the value of the "assessment_scores" field.
func (_u *UserProgressUpdateOne) ClearAssessmentScores() *UserProgressUpdateOne {
	_u.mutation.ClearAssessmentScores()
	return _u
}

// SetConditionsStudied sets the "conditions_studied" field.
func (_u *UserProgressUpdateOne) SetConditionsStudied(v []string) *UserProgressUpdateOne {
	_u.mutation.SetConditionsStudied(v)
	return _u
}

// AppendConditionsStudied appends value to the "conditions_studied" field.
func (_u *UserProgressUpdateOne) AppendConditionsStudied(v []string) *UserProgressUpdateOne {
	_u.mutation.AppendConditionsStudied(v)
	return _u
}

// ClearConditionsStudied clears the value of the "conditions_studied" field.
func (_u *UserProgressUpdateOne) ClearConditionsStudied() *UserProgressUpdateOne {
	_u.mutation.ClearConditionsStudied()
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *UserProgressUpdateOne) SetLastActivity(v time.Time) *UserProgressUpdateOne {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableLastActivity(v *time.Time) *UserProgressUpdateOne {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// SetStats sets the "stats" field.
func (_u *UserProgressUpdateOne) SetStats(v schema.StatsRecord) *UserProgressUpdateOne {
	_u.mutation.SetStats(v)
	return _u
}

// SetNillableStats sets the "stats" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableStats(v *schema.StatsRecord) *UserProgressUpdateOne {
	if v != nil {
		_u.SetStats(*v)
	}
	return _u
}

// Mutation returns the UserProgressMutation object of the builder.
func (_u *UserProgressUpdateOne) Mutation() *UserProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (_u *UserProgressUpdateOne) Where(ps ...predicate.UserProgress) *UserProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProgressUpdateOne) Select(field string, fields ...string) *UserProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProgress entity.
func (_u *UserProgressUpdateOne) Save(ctx context.Context) (*UserProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProgressUpdateOne) SaveX(ctx context.Context) *UserProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserProgressUpdateOne) sqlSave(ctx context.Context) (_node *UserProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprogress.FieldID)
		for _, f := range fields {
			if !userprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprogress.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedCases(); ok {
		_spec.SetField(userprogress.FieldCompletedCases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedCases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprogress.FieldCompletedCases, value)
		})
	}
	if _u.mutation.CompletedCasesCleared() {
		_spec.ClearField(userprogress.FieldCompletedCases, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssessmentScores(); ok {
		_spec.SetField(userprogress.FieldAssessmentScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssessmentScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprogress.FieldAssessmentScores, value)
		})
	}
	if _u.mutation.AssessmentScoresCleared() {
		_spec.ClearField(userprogress.FieldAssessmentScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConditionsStudied(); ok {
		_spec.SetField(userprogress.FieldConditionsStudied, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditionsStudied(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprogress.FieldConditionsStudied, value)
		})
	}
	if _u.mutation.ConditionsStudiedCleared() {
		_spec.ClearField(userprogress.FieldConditionsStudied, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(userprogress.FieldLastActivity, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(userprogress.FieldStats, field.TypeJSON, value)
	}
	_node = &UserProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
