package store

import (
	"context"
	"testing"
	"time"

	"github.com/nkapoor/emcmd/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressLoadMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	p, err := repo.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != nil {
		t.Errorf("Load(nobody) = %+v, want nil", p)
	}
}

func TestProgressSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	in := &progress.UserProgress{
		UserID:         "learner",
		CompletedCases: []string{"case-stemi-01"},
		AssessmentScores: []progress.Attempt{
			{AssessmentID: "acs-basics", Score: 75, CompletedAt: now, TimeTaken: 90 * time.Second},
		},
		ConditionsStudied: []string{"acs"},
		LastActivity:      now,
		Stats: progress.Stats{
			TotalCasesCompleted:    1,
			AverageAssessmentScore: 75,
			RedFlagsLearned:        2,
			StudyStreak:            3,
		},
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Load(ctx, "learner")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil after Save")
	}
	if len(got.CompletedCases) != 1 || got.CompletedCases[0] != "case-stemi-01" {
		t.Errorf("CompletedCases = %v", got.CompletedCases)
	}
	if len(got.AssessmentScores) != 1 {
		t.Fatalf("AssessmentScores has %d entries, want 1", len(got.AssessmentScores))
	}
	if got.AssessmentScores[0].Score != 75 {
		t.Errorf("attempt score = %d, want 75", got.AssessmentScores[0].Score)
	}
	if got.AssessmentScores[0].TimeTaken != 90*time.Second {
		t.Errorf("attempt time taken = %v, want 90s", got.AssessmentScores[0].TimeTaken)
	}
	if got.Stats.StudyStreak != 3 {
		t.Errorf("StudyStreak = %d, want 3", got.Stats.StudyStreak)
	}
}

func TestProgressSaveUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p := &progress.UserProgress{UserID: "learner", LastActivity: time.Now()}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	p.CompletedCases = []string{"case-stroke-01"}
	p.Stats.TotalCasesCompleted = 1
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := repo.Load(ctx, "learner")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Stats.TotalCasesCompleted != 1 {
		t.Errorf("TotalCasesCompleted = %d, want 1", got.Stats.TotalCasesCompleted)
	}

	n, err := s.Client().UserProgress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if n != 1 {
		t.Errorf("row count after upsert = %d, want 1", n)
	}
}

func TestProgressDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, &progress.UserProgress{UserID: "learner", LastActivity: time.Now()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, "learner"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := repo.Load(ctx, "learner")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("Load after Delete = %+v, want nil", got)
	}
}

func TestStoreWiresProgressStore(t *testing.T) {
	s := openTestStore(t)
	ps := progress.NewStore(s.ProgressRepo())
	ctx := context.Background()

	if _, err := ps.Init(ctx, "learner"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	p, err := ps.RecordCaseCompletion(ctx, "learner", "case-sepsis-01")
	if err != nil {
		t.Fatalf("RecordCaseCompletion: %v", err)
	}
	if p.Stats.TotalCasesCompleted != 1 {
		t.Errorf("TotalCasesCompleted = %d, want 1", p.Stats.TotalCasesCompleted)
	}

	// A fresh progress store over the same repository sees the record.
	ps2 := progress.NewStore(s.ProgressRepo())
	got, err := ps2.Get(ctx, "learner")
	if err != nil {
		t.Fatalf("Get via fresh store: %v", err)
	}
	if len(got.CompletedCases) != 1 {
		t.Errorf("CompletedCases = %v, want one entry", got.CompletedCases)
	}
}
