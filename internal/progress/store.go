package progress

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Store is the mutating API over a user's progress record. It keeps the
// record in memory and writes through to the repository on every
// change. Persistence failures are reported but never lose the
// in-memory update, so a flaky disk degrades to session-only tracking.
// All methods are safe for concurrent use; quiz timer callbacks land
// here from their own goroutine.
type Store struct {
	repo Repository
	now  func() time.Time

	mu      sync.Mutex
	records map[string]*UserProgress
}

// NewStore creates a Store over the given repository.
func NewStore(repo Repository) *Store {
	return &Store{
		repo:    repo,
		now:     time.Now,
		records: make(map[string]*UserProgress),
	}
}

// Get returns a copy of the user's record, loading it from the
// repository on first access. ErrNotFound is returned when no record
// exists; use Init to create one.
func (s *Store) Get(ctx context.Context, userID string) (UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadLocked(ctx, userID)
	if err != nil {
		return UserProgress{}, err
	}
	if p == nil {
		return UserProgress{}, fmt.Errorf("%w: user %q", ErrNotFound, userID)
	}
	return copyProgress(p), nil
}

// Init returns the user's record, creating and persisting a fresh one
// if none exists.
func (s *Store) Init(ctx context.Context, userID string) (UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadLocked(ctx, userID)
	if err != nil {
		return UserProgress{}, err
	}
	if p == nil {
		p = newProgress(userID, s.now())
		s.records[userID] = p
		if err := s.repo.Save(ctx, p); err != nil {
			return copyProgress(p), fmt.Errorf("save progress: %w", err)
		}
	}
	return copyProgress(p), nil
}

// RecordCaseCompletion marks a case completed and records an activity
// day. Completing the same case again updates activity but does not
// duplicate the entry or inflate the completion count.
func (s *Store) RecordCaseCompletion(ctx context.Context, userID, caseID string) (UserProgress, error) {
	return s.update(ctx, userID, func(p *UserProgress) {
		for _, id := range p.CompletedCases {
			if id == caseID {
				return
			}
		}
		p.CompletedCases = append(p.CompletedCases, caseID)
		p.Stats.TotalCasesCompleted = len(p.CompletedCases)
	})
}

// RecordAssessmentScore appends an attempt to the history and
// recomputes the average. Retakes accumulate; history is never
// overwritten.
func (s *Store) RecordAssessmentScore(ctx context.Context, userID string, attempt Attempt) (UserProgress, error) {
	return s.update(ctx, userID, func(p *UserProgress) {
		if attempt.CompletedAt.IsZero() {
			attempt.CompletedAt = s.now()
		}
		p.AssessmentScores = append(p.AssessmentScores, attempt)
		p.Stats.AverageAssessmentScore = averageScore(p.AssessmentScores)
	})
}

// RecordConditionStudied marks a condition as studied, once.
func (s *Store) RecordConditionStudied(ctx context.Context, userID, conditionID string) (UserProgress, error) {
	return s.update(ctx, userID, func(p *UserProgress) {
		for _, id := range p.ConditionsStudied {
			if id == conditionID {
				return
			}
		}
		p.ConditionsStudied = append(p.ConditionsStudied, conditionID)
	})
}

// RecordRedFlagsLearned raises the learned red-flag count to n. The
// count never goes down.
func (s *Store) RecordRedFlagsLearned(ctx context.Context, userID string, n int) (UserProgress, error) {
	return s.update(ctx, userID, func(p *UserProgress) {
		if n > p.Stats.RedFlagsLearned {
			p.Stats.RedFlagsLearned = n
		}
	})
}

// Reset deletes the user's record everywhere.
func (s *Store) Reset(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, userID)
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

// update applies fn to the user's record under the lock, stamps
// activity, recomputes the streak, and writes through. Mutations never
// create a record; callers go through Init first, and an uninitialized
// user gets ErrNotFound. The returned record reflects the in-memory
// update even when the save fails.
func (s *Store) update(ctx context.Context, userID string, fn func(*UserProgress)) (UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.loadLocked(ctx, userID)
	if err != nil {
		return UserProgress{}, err
	}
	if p == nil {
		return UserProgress{}, fmt.Errorf("%w: user %q", ErrNotFound, userID)
	}
	now := s.now()
	updateStreak(p, now)

	fn(p)
	p.LastActivity = now

	if err := s.repo.Save(ctx, p); err != nil {
		return copyProgress(p), fmt.Errorf("save progress: %w", err)
	}
	return copyProgress(p), nil
}

// loadLocked returns the cached record or faults it in from the
// repository. A nil record with nil error means the user has none.
func (s *Store) loadLocked(ctx context.Context, userID string) (*UserProgress, error) {
	if p, ok := s.records[userID]; ok {
		return p, nil
	}
	p, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if p != nil {
		s.records[userID] = p
	}
	return p, nil
}

func copyProgress(p *UserProgress) UserProgress {
	out := *p
	out.CompletedCases = append([]string(nil), p.CompletedCases...)
	out.AssessmentScores = append([]Attempt(nil), p.AssessmentScores...)
	out.ConditionsStudied = append([]string(nil), p.ConditionsStudied...)
	return out
}
