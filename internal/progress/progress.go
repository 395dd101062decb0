// Package progress tracks a learner's record: completed cases,
// assessment attempt history, studied conditions, and derived stats.
package progress

import (
	"context"
	"errors"
	"math"
	"time"
)

// ErrNotFound is returned when no record exists for a user.
var ErrNotFound = errors.New("progress not found")

// Attempt is one completed assessment attempt. History is append-only;
// retakes add new entries rather than overwriting old ones.
type Attempt struct {
	AssessmentID string        `json:"assessment_id"`
	Score        int           `json:"score"`
	CompletedAt  time.Time     `json:"completed_at"`
	TimeTaken    time.Duration `json:"time_taken"`
}

// Stats are derived from the record and recomputed on every update.
type Stats struct {
	TotalCasesCompleted    int `json:"total_cases_completed"`
	AverageAssessmentScore int `json:"average_assessment_score"`
	RedFlagsLearned        int `json:"red_flags_learned"`
	StudyStreak            int `json:"study_streak"`
}

// UserProgress is the full learning record for one user.
type UserProgress struct {
	UserID            string    `json:"user_id"`
	CompletedCases    []string  `json:"completed_cases"`
	AssessmentScores  []Attempt `json:"assessment_scores"`
	ConditionsStudied []string  `json:"conditions_studied"`
	LastActivity      time.Time `json:"last_activity"`
	Stats             Stats     `json:"stats"`
}

// Repository persists progress records. Load returns (nil, nil) when no
// record exists for the user.
type Repository interface {
	Load(ctx context.Context, userID string) (*UserProgress, error)
	Save(ctx context.Context, p *UserProgress) error
	Delete(ctx context.Context, userID string) error
}

func newProgress(userID string, now time.Time) *UserProgress {
	return &UserProgress{
		UserID:            userID,
		CompletedCases:    []string{},
		AssessmentScores:  []Attempt{},
		ConditionsStudied: []string{},
		LastActivity:      now,
	}
}

// averageScore returns the rounded mean of all attempt scores, zero for
// an empty history.
func averageScore(attempts []Attempt) int {
	if len(attempts) == 0 {
		return 0
	}
	sum := 0
	for _, a := range attempts {
		sum += a.Score
	}
	return int(math.Round(float64(sum) / float64(len(attempts))))
}

// updateStreak adjusts the study streak given the previous activity
// time. Activity on the same calendar day leaves the streak unchanged,
// the next day extends it, and any gap resets it to one. Days are UTC
// calendar days; records reloaded from disk carry UTC timestamps while
// the process clock is local, so both sides are normalized before
// comparing.
func updateStreak(p *UserProgress, now time.Time) {
	prev := p.LastActivity
	if prev.IsZero() {
		p.Stats.StudyStreak = 1
		return
	}

	py, pm, pd := prev.In(time.UTC).Date()
	ny, nm, nd := now.In(time.UTC).Date()
	prevDay := time.Date(py, pm, pd, 0, 0, 0, 0, time.UTC)
	nowDay := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	switch days := int(nowDay.Sub(prevDay).Hours() / 24); {
	case days == 0:
		// Same day, streak unchanged.
	case days == 1:
		p.Stats.StudyStreak++
	default:
		p.Stats.StudyStreak = 1
	}
	if p.Stats.StudyStreak < 1 {
		p.Stats.StudyStreak = 1
	}
}
