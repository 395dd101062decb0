package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nkapoor/emcmd/ent"
	"github.com/nkapoor/emcmd/ent/schema"
	"github.com/nkapoor/emcmd/ent/userprogress"
	"github.com/nkapoor/emcmd/internal/progress"
)

// progressRepo implements progress.Repository using the ent client.
// The record is stored as one row per user, overwritten on save.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context, userID string) (*progress.UserProgress, error) {
	row, err := r.client.UserProgress.Query().
		Where(userprogress.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return rowToProgress(row), nil
}

func (r *progressRepo) Save(ctx context.Context, p *progress.UserProgress) error {
	attempts := attemptsToRecords(p.AssessmentScores)
	stats := schema.StatsRecord{
		TotalCasesCompleted:    p.Stats.TotalCasesCompleted,
		AverageAssessmentScore: p.Stats.AverageAssessmentScore,
		RedFlagsLearned:        p.Stats.RedFlagsLearned,
		StudyStreak:            p.Stats.StudyStreak,
	}

	row, err := r.client.UserProgress.Query().
		Where(userprogress.UserID(p.UserID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress: %w", err)
		}
		_, err = r.client.UserProgress.Create().
			SetUserID(p.UserID).
			SetCompletedCases(p.CompletedCases).
			SetAssessmentScores(attempts).
			SetConditionsStudied(p.ConditionsStudied).
			SetLastActivity(p.LastActivity).
			SetStats(stats).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress: %w", err)
		}
		return nil
	}

	_, err = row.Update().
		SetCompletedCases(p.CompletedCases).
		SetAssessmentScores(attempts).
		SetConditionsStudied(p.ConditionsStudied).
		SetLastActivity(p.LastActivity).
		SetStats(stats).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.client.UserProgress.Delete().
		Where(userprogress.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

func attemptsToRecords(attempts []progress.Attempt) []schema.AttemptRecord {
	out := make([]schema.AttemptRecord, len(attempts))
	for i, a := range attempts {
		out[i] = schema.AttemptRecord{
			AssessmentID: a.AssessmentID,
			Score:        a.Score,
			CompletedAt:  a.CompletedAt,
			TimeTakenSec: int(a.TimeTaken / time.Second),
		}
	}
	return out
}

func rowToProgress(row *ent.UserProgress) *progress.UserProgress {
	attempts := make([]progress.Attempt, len(row.AssessmentScores))
	for i, a := range row.AssessmentScores {
		attempts[i] = progress.Attempt{
			AssessmentID: a.AssessmentID,
			Score:        a.Score,
			CompletedAt:  a.CompletedAt,
			TimeTaken:    time.Duration(a.TimeTakenSec) * time.Second,
		}
	}
	return &progress.UserProgress{
		UserID:            row.UserID,
		CompletedCases:    row.CompletedCases,
		AssessmentScores:  attempts,
		ConditionsStudied: row.ConditionsStudied,
		LastActivity:      row.LastActivity,
		Stats: progress.Stats{
			TotalCasesCompleted:    row.Stats.TotalCasesCompleted,
			AverageAssessmentScore: row.Stats.AverageAssessmentScore,
			RedFlagsLearned:        row.Stats.RedFlagsLearned,
			StudyStreak:            row.Stats.StudyStreak,
		},
	}
}
