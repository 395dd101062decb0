// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nkapoor/emcmd/ent/schema"
	"github.com/nkapoor/emcmd/ent/userprogress"
)

// UserProgress is the model entity for the UserProgress schema.
type UserProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner identifier (single-user installs use 'local')
	UserID string `json:"user_id,omitempty"`
	// Case scenario ids completed at least once (no duplicates)
	CompletedCases []string `json:"completed_cases,omitempty"`
	// Full attempt history, append-only
	AssessmentScores []schema.AttemptRecord `json:"assessment_scores,omitempty"`
	// Condition ids the learner has opened (no duplicates)
	ConditionsStudied []string `json:"conditions_studied,omitempty"`
	// Wall-clock time of the most recent recorded activity
	LastActivity time.Time `json:"last_activity,omitempty"`
	// Derived stats, recomputed on every mutation
	Stats        schema.StatsRecord `json:"stats,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userprogress.FieldCompletedCases, userprogress.FieldAssessmentScores, userprogress.FieldConditionsStudied, userprogress.FieldStats:
			values[i] = new([]byte)
		case userprogress.FieldID:
			values[i] = new(sql.NullInt64)
		case userprogress.FieldUserID:
			values[i] = new(sql.NullString)
		case userprogress.FieldLastActivity:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserProgress fields.
func (_m *UserProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userprogress.FieldCompletedCases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_cases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedCases); err != nil {
					return fmt.Errorf("unmarshal field completed_cases: %w", err)
				}
			}
		case userprogress.FieldAssessmentScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AssessmentScores); err != nil {
					return fmt.Errorf("unmarshal field assessment_scores: %w", err)
				}
			}
		case userprogress.FieldConditionsStudied:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conditions_studied", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConditionsStudied); err != nil {
					return fmt.Errorf("unmarshal field conditions_studied: %w", err)
				}
			}
		case userprogress.FieldLastActivity:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity", values[i])
			} else if value.Valid {
				_m.LastActivity = value.Time
			}
		case userprogress.FieldStats:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stats", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stats); err != nil {
					return fmt.Errorf("unmarshal field stats: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserProgress.
// This includes values selected through modifiers, order, etc.
func (_m *UserProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserProgress.
// Note that you need to call UserProgress.Unwrap() before calling this method if this UserProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserProgress) Update() *UserProgressUpdateOne {
	return NewUserProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserProgress) Unwrap() *UserProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserProgress) String() string {
	var builder strings.Builder
	builder.WriteString("UserProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("completed_cases=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedCases))
	builder.WriteString(", ")
	builder.WriteString("assessment_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssessmentScores))
	builder.WriteString(", ")
	builder.WriteString("conditions_studied=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConditionsStudied))
	builder.WriteString(", ")
	builder.WriteString("last_activity=")
	builder.WriteString(_m.LastActivity.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("stats=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stats))
	builder.WriteByte(')')
	return builder.String()
}

// UserProgresses is a parsable slice of UserProgress.
type UserProgresses []*UserProgress
