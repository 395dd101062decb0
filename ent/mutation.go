// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nkapoor/emcmd/ent/predicate"
	"github.com/nkapoor/emcmd/ent/schema"
	"github.com/nkapoor/emcmd/ent/userprogress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeUserProgress = "UserProgress"
)

// UserProgressMutation represents an operation that mutates the UserProgress nodes in the graph.
type UserProgressMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	user_id                  *string
	completed_cases          *[]string
	appendcompleted_cases    []string
	assessment_scores        *[]schema.AttemptRecord
	appendassessment_scores  []schema.AttemptRecord
	conditions_studied       *[]string
	appendconditions_studied []string
	last_activity            *time.Time
	stats                    *schema.StatsRecord
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*UserProgress, error)
	predicates               []predicate.UserProgress
}

var _ ent.Mutation = (*UserProgressMutation)(nil)

// userprogressOption allows management of the mutation configuration using functional options.
type userprogressOption func(*UserProgressMutation)

// newUserProgressMutation creates new mutation for the UserProgress entity.
func newUserProgressMutation(c config, op Op, opts ...userprogressOption) *UserProgressMutation {
	m := &UserProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeUserProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserProgressID sets the ID field of the mutation.
func withUserProgressID(id int) userprogressOption {
	return func(m *UserProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *UserProgress
		)
		m.oldValue = func(ctx context.Context) (*UserProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserProgress sets the old UserProgress of the mutation.
func withUserProgress(node *UserProgress) userprogressOption {
	return func(m *UserProgressMutation) {
		m.oldValue = func(context.Context) (*UserProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetCompletedCases sets the "completed_cases" field.
func (m *UserProgressMutation) SetCompletedCases(s []string) {
	m.completed_cases = &s
	m.appendcompleted_cases = nil
}

// CompletedCases returns the value of the "completed_cases" field in the mutation.
func (m *UserProgressMutation) CompletedCases() (r []string, exists bool) {
	v := m.completed_cases
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedCases returns the old "completed_cases" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldCompletedCases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedCases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedCases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedCases: %w", err)
	}
	return oldValue.CompletedCases, nil
}

// AppendCompletedCases adds s to the "completed_cases" field.
func (m *UserProgressMutation) AppendCompletedCases(s []string) {
	m.appendcompleted_cases = append(m.appendcompleted_cases, s...)
}

// AppendedCompletedCases returns the list of values that were appended to the "completed_cases" field in this mutation.
func (m *UserProgressMutation) AppendedCompletedCases() ([]string, bool) {
	if len(m.appendcompleted_cases) == 0 {
		return nil, false
	}
	return m.appendcompleted_cases, true
}

// ClearCompletedCases clears the value of the "completed_cases" field.
func (m *UserProgressMutation) ClearCompletedCases() {
	m.completed_cases = nil
	m.appendcompleted_cases = nil
	m.clearedFields[userprogress.FieldCompletedCases] = struct{}{}
}

// CompletedCasesCleared returns if the "completed_cases" field was cleared in this mutation.
func (m *UserProgressMutation) CompletedCasesCleared() bool {
	_, ok := m.clearedFields[userprogress.FieldCompletedCases]
	return ok
}

// ResetCompletedCases resets all changes to the "completed_cases" field.
func (m *UserProgressMutation) ResetCompletedCases() {
	m.completed_cases = nil
	m.appendcompleted_cases = nil
	delete(m.clearedFields, userprogress.FieldCompletedCases)
}

// SetAssessmentScores sets the "assessment_scores" field.
func (m *UserProgressMutation) SetAssessmentScores(sr []schema.AttemptRecord) {
	m.assessment_scores = &sr
	m.appendassessment_scores = nil
}

// AssessmentScores returns the value of the "assessment_scores" field in the mutation.
func (m *UserProgressMutation) AssessmentScores() (r []schema.AttemptRecord, exists bool) {
	v := m.assessment_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentScores returns the old "assessment_scores" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldAssessmentScores(ctx context.Context) (v []schema.AttemptRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentScores: %w", err)
	}
	return oldValue.AssessmentScores, nil
}

// AppendAssessmentScores adds sr to the "assessment_scores" field.
func (m *UserProgressMutation) AppendAssessmentScores(sr []schema.AttemptRecord) {
	m.appendassessment_scores = append(m.appendassessment_scores, sr...)
}

// AppendedAssessmentScores returns the list of values that were appended to the "assessment_scores" field in this mutation.
func (m *UserProgressMutation) AppendedAssessmentScores() ([]schema.AttemptRecord, bool) {
	if len(m.appendassessment_scores) == 0 {
		return nil, false
	}
	return m.appendassessment_scores, true
}

// ClearAssessmentScores clears the value of the "assessment_scores" field.
func (m *UserProgressMutation) ClearAssessmentScores() {
	m.assessment_scores = nil
	m.appendassessment_scores = nil
	m.clearedFields[userprogress.FieldAssessmentScores] = struct{}{}
}

// AssessmentScoresCleared returns if the "assessment_scores" field was cleared in this mutation.
func (m *UserProgressMutation) AssessmentScoresCleared() bool {
	_, ok := m.clearedFields[userprogress.FieldAssessmentScores]
	return ok
}

// ResetAssessmentScores resets all changes to the "assessment_scores" field.
func (m *UserProgressMutation) ResetAssessmentScores() {
	m.assessment_scores = nil
	m.appendassessment_scores = nil
	delete(m.clearedFields, userprogress.FieldAssessmentScores)
}

// SetConditionsStudied sets the "conditions_studied" field.
func (m *UserProgressMutation) SetConditionsStudied(s []string) {
	m.conditions_studied = &s
	m.appendconditions_studied = nil
}

// ConditionsStudied returns the value of the "conditions_studied" field in the mutation.
func (m *UserProgressMutation) ConditionsStudied() (r []string, exists bool) {
	v := m.conditions_studied
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionsStudied returns the old "conditions_studied" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldConditionsStudied(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionsStudied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionsStudied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionsStudied: %w", err)
	}
	return oldValue.ConditionsStudied, nil
}

// AppendConditionsStudied adds s to the "conditions_studied" field.
func (m *UserProgressMutation) AppendConditionsStudied(s []string) {
	m.appendconditions_studied = append(m.appendconditions_studied, s...)
}

// AppendedConditionsStudied returns the list of values that were appended to the "conditions_studied" field in this mutation.
func (m *UserProgressMutation) AppendedConditionsStudied() ([]string, bool) {
	if len(m.appendconditions_studied) == 0 {
		return nil, false
	}
	return m.appendconditions_studied, true
}

// ClearConditionsStudied clears the value of the "conditions_studied" field.
func (m *UserProgressMutation) ClearConditionsStudied() {
	m.conditions_studied = nil
	m.appendconditions_studied = nil
	m.clearedFields[userprogress.FieldConditionsStudied] = struct{}{}
}

// ConditionsStudiedCleared returns if the "conditions_studied" field was cleared in this mutation.
func (m *UserProgressMutation) ConditionsStudiedCleared() bool {
	_, ok := m.clearedFields[userprogress.FieldConditionsStudied]
	return ok
}

// ResetConditionsStudied resets all changes to the "conditions_studied" field.
func (m *UserProgressMutation) ResetConditionsStudied() {
	m.conditions_studied = nil
	m.appendconditions_studied = nil
	delete(m.clearedFields, userprogress.FieldConditionsStudied)
}

// SetLastActivity sets the "last_activity" field.
func (m *UserProgressMutation) SetLastActivity(t time.Time) {
	m.last_activity = &t
}

// LastActivity returns the value of the "last_activity" field in the mutation.
func (m *UserProgressMutation) LastActivity() (r time.Time, exists bool) {
	v := m.last_activity
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivity returns the old "last_activity" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldLastActivity(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivity: %w", err)
	}
	return oldValue.LastActivity, nil
}

// ResetLastActivity resets all changes to the "last_activity" field.
func (m *UserProgressMutation) ResetLastActivity() {
	m.last_activity = nil
}

// SetStats sets the "stats" field.
func (m *UserProgressMutation) SetStats(sr schema.StatsRecord) {
	m.stats = &sr
}

// Stats returns the value of the "stats" field in the mutation.
func (m *UserProgressMutation) Stats() (r schema.StatsRecord, exists bool) {
	v := m.stats
	if v == nil {
		return
	}
	return *v, true
}

// OldStats returns the old "stats" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldStats(ctx context.Context) (v schema.StatsRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStats: %w", err)
	}
	return oldValue.Stats, nil
}

// ResetStats resets all changes to the "stats" field.
func (m *UserProgressMutation) ResetStats() {
	m.stats = nil
}

// Where appends a list predicates to the UserProgressMutation builder.
func (m *UserProgressMutation) Where(ps ...predicate.UserProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserProgress).
func (m *UserProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserProgressMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, userprogress.FieldUserID)
	}
	if m.completed_cases != nil {
		fields = append(fields, userprogress.FieldCompletedCases)
	}
	if m.assessment_scores != nil {
		fields = append(fields, userprogress.FieldAssessmentScores)
	}
	if m.conditions_studied != nil {
		fields = append(fields, userprogress.FieldConditionsStudied)
	}
	if m.last_activity != nil {
		fields = append(fields, userprogress.FieldLastActivity)
	}
	if m.stats != nil {
		fields = append(fields, userprogress.FieldStats)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userprogress.FieldUserID:
		return m.UserID()
	case userprogress.FieldCompletedCases:
		return m.CompletedCases()
	case userprogress.FieldAssessmentScores:
		return m.AssessmentScores()
	case userprogress.FieldConditionsStudied:
		return m.ConditionsStudied()
	case userprogress.FieldLastActivity:
		return m.LastActivity()
	case userprogress.FieldStats:
		return m.Stats()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userprogress.FieldUserID:
		return m.OldUserID(ctx)
	case userprogress.FieldCompletedCases:
		return m.OldCompletedCases(ctx)
	case userprogress.FieldAssessmentScores:
		return m.OldAssessmentScores(ctx)
	case userprogress.FieldConditionsStudied:
		return m.OldConditionsStudied(ctx)
	case userprogress.FieldLastActivity:
		return m.OldLastActivity(ctx)
	case userprogress.FieldStats:
		return m.OldStats(ctx)
	}
	return nil, fmt.Errorf("unknown UserProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userprogress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userprogress.FieldCompletedCases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedCases(v)
		return nil
	case userprogress.FieldAssessmentScores:
		v, ok := value.([]schema.AttemptRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentScores(v)
		return nil
	case userprogress.FieldConditionsStudied:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionsStudied(v)
		return nil
	case userprogress.FieldLastActivity:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivity(v)
		return nil
	case userprogress.FieldStats:
		v, ok := value.(schema.StatsRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStats(v)
		return nil
	}
	return fmt.Errorf("unknown UserProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserProgressMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserProgressMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userprogress.FieldCompletedCases) {
		fields = append(fields, userprogress.FieldCompletedCases)
	}
	if m.FieldCleared(userprogress.FieldAssessmentScores) {
		fields = append(fields, userprogress.FieldAssessmentScores)
	}
	if m.FieldCleared(userprogress.FieldConditionsStudied) {
		fields = append(fields, userprogress.FieldConditionsStudied)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserProgressMutation) ClearField(name string) error {
	switch name {
	case userprogress.FieldCompletedCases:
		m.ClearCompletedCases()
		return nil
	case userprogress.FieldAssessmentScores:
		m.ClearAssessmentScores()
		return nil
	case userprogress.FieldConditionsStudied:
		m.ClearConditionsStudied()
		return nil
	}
	return fmt.Errorf("unknown UserProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserProgressMutation) ResetField(name string) error {
	switch name {
	case userprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case userprogress.FieldCompletedCases:
		m.ResetCompletedCases()
		return nil
	case userprogress.FieldAssessmentScores:
		m.ResetAssessmentScores()
		return nil
	case userprogress.FieldConditionsStudied:
		m.ResetConditionsStudied()
		return nil
	case userprogress.FieldLastActivity:
		m.ResetLastActivity()
		return nil
	case userprogress.FieldStats:
		m.ResetStats()
		return nil
	}
	return fmt.Errorf("unknown UserProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserProgress edge %s", name)
}
