package progress

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeRepo is an in-memory Repository with injectable failures.
type fakeRepo struct {
	records map[string]*UserProgress
	saveErr error
	saves   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*UserProgress)}
}

func (r *fakeRepo) Load(_ context.Context, userID string) (*UserProgress, error) {
	p, ok := r.records[userID]
	if !ok {
		return nil, nil
	}
	cp := copyProgress(p)
	return &cp, nil
}

func (r *fakeRepo) Save(_ context.Context, p *UserProgress) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	cp := copyProgress(p)
	r.records[p.UserID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, userID string) error {
	delete(r.records, userID)
	return nil
}

func newTestStore(t *testing.T) (*Store, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	return NewStore(repo), repo
}

func initUser(t *testing.T, s *Store, userID string) {
	t.Helper()
	if _, err := s.Init(context.Background(), userID); err != nil {
		t.Fatalf("Init(%s): %v", userID, err)
	}
}

func TestInitCreatesDefault(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	p, err := s.Init(ctx, "u1")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if p.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", p.UserID)
	}
	if len(p.CompletedCases) != 0 || len(p.AssessmentScores) != 0 {
		t.Error("new record should start empty")
	}
	if p.Stats.StudyStreak != 0 {
		t.Errorf("StudyStreak = %d, want 0 before any activity", p.Stats.StudyStreak)
	}
	if repo.saves != 1 {
		t.Errorf("repo saves = %d, want 1", repo.saves)
	}

	// Second Init returns the existing record without another save.
	if _, err := s.Init(ctx, "u1"); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if repo.saves != 1 {
		t.Errorf("repo saves after second Init = %d, want 1", repo.saves)
	}
}

func TestGetMissingUser(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Get(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(ghost) error = %v, want ErrNotFound", err)
	}
}

func TestRecordWithoutInitIsNoOp(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	if _, err := s.RecordCaseCompletion(ctx, "u1", "c1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RecordCaseCompletion error = %v, want ErrNotFound", err)
	}
	if _, err := s.RecordAssessmentScore(ctx, "u1", Attempt{AssessmentID: "a1", Score: 80}); !errors.Is(err, ErrNotFound) {
		t.Errorf("RecordAssessmentScore error = %v, want ErrNotFound", err)
	}
	if repo.saves != 0 {
		t.Errorf("repo saves = %d, want 0 (mutations must not create records)", repo.saves)
	}
	if _, err := s.Get(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after rejected mutations error = %v, want ErrNotFound", err)
	}
}

func TestRecordCaseCompletionIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	initUser(t, s, "u1")

	p, err := s.RecordCaseCompletion(ctx, "u1", "case-stemi-01")
	if err != nil {
		t.Fatalf("RecordCaseCompletion: %v", err)
	}
	if p.Stats.TotalCasesCompleted != 1 {
		t.Errorf("TotalCasesCompleted = %d, want 1", p.Stats.TotalCasesCompleted)
	}

	p, err = s.RecordCaseCompletion(ctx, "u1", "case-stemi-01")
	if err != nil {
		t.Fatalf("repeat RecordCaseCompletion: %v", err)
	}
	if len(p.CompletedCases) != 1 {
		t.Errorf("CompletedCases = %v, want one entry", p.CompletedCases)
	}
	if p.Stats.TotalCasesCompleted != 1 {
		t.Errorf("TotalCasesCompleted after repeat = %d, want 1", p.Stats.TotalCasesCompleted)
	}
}

func TestRecordAssessmentScoreAppendsHistory(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	initUser(t, s, "u1")

	if _, err := s.RecordAssessmentScore(ctx, "u1", Attempt{AssessmentID: "acs-basics", Score: 75}); err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	p, err := s.RecordAssessmentScore(ctx, "u1", Attempt{AssessmentID: "acs-basics", Score: 100})
	if err != nil {
		t.Fatalf("second attempt: %v", err)
	}

	if len(p.AssessmentScores) != 2 {
		t.Fatalf("AssessmentScores has %d entries, want 2", len(p.AssessmentScores))
	}
	// round((75+100)/2) = 88
	if p.Stats.AverageAssessmentScore != 88 {
		t.Errorf("AverageAssessmentScore = %d, want 88", p.Stats.AverageAssessmentScore)
	}
	if p.AssessmentScores[0].Score != 75 {
		t.Error("retake overwrote earlier attempt")
	}
	if p.AssessmentScores[1].CompletedAt.IsZero() {
		t.Error("CompletedAt not stamped")
	}
}

func TestRecordConditionStudiedOnce(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	initUser(t, s, "u1")

	s.RecordConditionStudied(ctx, "u1", "acs")
	s.RecordConditionStudied(ctx, "u1", "stroke")
	p, err := s.RecordConditionStudied(ctx, "u1", "acs")
	if err != nil {
		t.Fatalf("RecordConditionStudied: %v", err)
	}
	if len(p.ConditionsStudied) != 2 {
		t.Errorf("ConditionsStudied = %v, want two entries", p.ConditionsStudied)
	}
}

func TestRedFlagsLearnedNeverDecreases(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	initUser(t, s, "u1")

	s.RecordRedFlagsLearned(ctx, "u1", 3)
	p, err := s.RecordRedFlagsLearned(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("RecordRedFlagsLearned: %v", err)
	}
	if p.Stats.RedFlagsLearned != 3 {
		t.Errorf("RedFlagsLearned = %d, want 3", p.Stats.RedFlagsLearned)
	}
}

func TestStudyStreak(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	day1 := time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day1 }
	initUser(t, s, "u1")
	p, err := s.RecordCaseCompletion(ctx, "u1", "c1")
	if err != nil {
		t.Fatalf("day1: %v", err)
	}
	if p.Stats.StudyStreak != 1 {
		t.Errorf("day1 streak = %d, want 1", p.Stats.StudyStreak)
	}

	// Later the same day: unchanged.
	s.now = func() time.Time { return day1.Add(3 * time.Hour) }
	p, _ = s.RecordCaseCompletion(ctx, "u1", "c2")
	if p.Stats.StudyStreak != 1 {
		t.Errorf("same-day streak = %d, want 1", p.Stats.StudyStreak)
	}

	// Next calendar day, even across midnight by a few hours: extends.
	s.now = func() time.Time { return time.Date(2026, 3, 3, 7, 0, 0, 0, time.UTC) }
	p, _ = s.RecordCaseCompletion(ctx, "u1", "c3")
	if p.Stats.StudyStreak != 2 {
		t.Errorf("next-day streak = %d, want 2", p.Stats.StudyStreak)
	}

	// A missed day resets to one.
	s.now = func() time.Time { return time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC) }
	p, _ = s.RecordCaseCompletion(ctx, "u1", "c4")
	if p.Stats.StudyStreak != 1 {
		t.Errorf("post-gap streak = %d, want 1", p.Stats.StudyStreak)
	}
}

func TestStudyStreakAcrossTimeZones(t *testing.T) {
	sydney := time.FixedZone("UTC+11", 11*3600)

	// A record reloaded from the database carries UTC timestamps while
	// the process clock stays local. Both sessions below fall on the
	// same local morning, so the streak must not move.
	p := &UserProgress{
		LastActivity: time.Date(2026, 1, 2, 8, 0, 0, 0, sydney).UTC(),
		Stats:        Stats{StudyStreak: 5},
	}
	updateStreak(p, time.Date(2026, 1, 2, 9, 0, 0, 0, sydney))
	if p.Stats.StudyStreak != 5 {
		t.Errorf("same-day streak = %d, want 5 (unchanged)", p.Stats.StudyStreak)
	}

	// Next UTC day extends regardless of the wall-clock zone.
	updateStreak(p, time.Date(2026, 1, 3, 9, 0, 0, 0, sydney))
	if p.Stats.StudyStreak != 6 {
		t.Errorf("next-day streak = %d, want 6", p.Stats.StudyStreak)
	}
}

func TestSaveFailureKeepsMemoryUpdate(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()
	initUser(t, s, "u1")

	repo.saveErr = errors.New("disk full")
	p, err := s.RecordCaseCompletion(ctx, "u1", "case-stemi-01")
	if err == nil {
		t.Fatal("expected save error")
	}
	if p.Stats.TotalCasesCompleted != 1 {
		t.Errorf("in-memory update lost: TotalCasesCompleted = %d, want 1", p.Stats.TotalCasesCompleted)
	}

	// The session keeps tracking even though persistence is down.
	got, err := s.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get after failed save: %v", err)
	}
	if len(got.CompletedCases) != 1 {
		t.Errorf("CompletedCases = %v, want one entry", got.CompletedCases)
	}
}

func TestReset(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	initUser(t, s, "u1")

	s.RecordCaseCompletion(ctx, "u1", "c1")
	if err := s.Reset(ctx, "u1"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, err := s.Get(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Reset error = %v, want ErrNotFound", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	initUser(t, s, "u1")

	s.RecordCaseCompletion(ctx, "u1", "c1")
	p, err := s.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	p.CompletedCases[0] = "mutated"

	again, _ := s.Get(ctx, "u1")
	if again.CompletedCases[0] != "c1" {
		t.Error("caller mutation leaked into the store")
	}
}
