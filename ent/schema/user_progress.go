package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProgress is the durable per-learner aggregate: completed cases,
// assessment score history, studied conditions, and derived stats.
// One row per user id; the app overwrites the row on every mutation
// (last write wins on a single device).
type UserProgress struct {
	ent.Schema
}

// AttemptRecord is the serialized form of one assessment attempt.
// Repeated attempts at the same assessment are all kept.
type AttemptRecord struct {
	AssessmentID string    `json:"assessment_id"`
	Score        int       `json:"score"`
	CompletedAt  time.Time `json:"completed_at"`
	TimeTakenSec int       `json:"time_taken_sec"`
}

// StatsRecord is the serialized form of the derived learner stats.
type StatsRecord struct {
	TotalCasesCompleted    int `json:"total_cases_completed"`
	AverageAssessmentScore int `json:"average_assessment_score"`
	RedFlagsLearned        int `json:"red_flags_learned"`
	StudyStreak            int `json:"study_streak"`
}

func (UserProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Comment("Learner identifier (single-user installs use 'local')"),
		field.JSON("completed_cases", []string{}).
			Optional().
			Comment("Case scenario ids completed at least once (no duplicates)"),
		field.JSON("assessment_scores", []AttemptRecord{}).
			Optional().
			Comment("Full attempt history, append-only"),
		field.JSON("conditions_studied", []string{}).
			Optional().
			Comment("Condition ids the learner has opened (no duplicates)"),
		field.Time("last_activity").
			Default(time.Now).
			Comment("Wall-clock time of the most recent recorded activity"),
		field.JSON("stats", StatsRecord{}).
			Comment("Derived stats, recomputed on every mutation"),
	}
}

func (UserProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
