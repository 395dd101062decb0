// Package casesim runs a case simulation attempt: the learner toggles
// management actions, each selection reveals its feedback permanently,
// and submission scores the chosen set against the scenario.
package casesim

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/scoring"
)

// ErrCompleted is returned by mutating calls after submission.
var ErrCompleted = errors.New("case already completed")

// ActionOutcome records one selected action and whether it was correct.
type ActionOutcome struct {
	Action  content.CaseAction
	Correct bool
}

// Result is the outcome of a completed case attempt.
type Result struct {
	SessionID         string
	CaseID            string
	Score             int
	Grade             scoring.Grade
	CorrectSelected   int
	IncorrectSelected int
	MissedActions     []content.CaseAction
	Outcomes          []ActionOutcome
	TimeTaken         time.Duration
}

// Session is a single in-flight case attempt. Presentation order of
// actions is shuffled once at construction so correct actions are not
// clumped at the top.
type Session struct {
	id       string
	scenario content.CaseScenario
	actions  []content.CaseAction

	mu        sync.Mutex
	selected  map[string]bool
	revealed  map[string]bool
	startedAt time.Time
	completed bool
	result    *Result
}

// New starts an attempt over the given scenario. The scenario must have
// at least one correct action, which content validation guarantees for
// pack data.
func New(scenario content.CaseScenario) (*Session, error) {
	if len(scenario.CorrectActions) == 0 {
		return nil, fmt.Errorf("%w: case %q has no correct actions", scoring.ErrInvalidInput, scenario.ID)
	}

	actions := scenario.AllActions()
	rand.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
	})

	return &Session{
		id:        uuid.NewString(),
		scenario:  scenario,
		actions:   actions,
		selected:  make(map[string]bool),
		revealed:  make(map[string]bool),
		startedAt: time.Now(),
	}, nil
}

// ID returns the unique attempt id.
func (s *Session) ID() string { return s.id }

// Scenario returns the case under attempt.
func (s *Session) Scenario() content.CaseScenario { return s.scenario }

// Actions returns the shuffled presentation order fixed at construction.
func (s *Session) Actions() []content.CaseAction {
	return append([]content.CaseAction(nil), s.actions...)
}

// ToggleAction selects or deselects an action. The first selection of
// an action reveals its feedback, and the reveal persists even if the
// action is later deselected.
func (s *Session) ToggleAction(actionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrCompleted
	}

	found := false
	for _, a := range s.actions {
		if a.ID == actionID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: action %q is not part of case %q", scoring.ErrInvalidInput, actionID, s.scenario.ID)
	}

	if s.selected[actionID] {
		delete(s.selected, actionID)
	} else {
		s.selected[actionID] = true
		s.revealed[actionID] = true
	}
	return nil
}

// IsSelected reports whether an action is currently selected.
func (s *Session) IsSelected(actionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected[actionID]
}

// IsRevealed reports whether an action's feedback has been revealed.
func (s *Session) IsRevealed(actionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealed[actionID]
}

// SelectedCount returns the number of currently selected actions.
func (s *Session) SelectedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selected)
}

// Completed reports whether the attempt has been submitted.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Result returns the outcome of a completed attempt, or nil while the
// attempt is still in flight.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Submit scores the selected set. Submitting twice returns ErrCompleted
// alongside the original result.
func (s *Session) Submit() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return *s.result, ErrCompleted
	}
	s.completed = true

	correctSelected, incorrectSelected := 0, 0
	outcomes := make([]ActionOutcome, 0, len(s.selected))
	for _, a := range s.actions {
		if !s.selected[a.ID] {
			continue
		}
		ok := s.scenario.IsCorrectAction(a.ID)
		if ok {
			correctSelected++
		} else {
			incorrectSelected++
		}
		outcomes = append(outcomes, ActionOutcome{Action: a, Correct: ok})
	}

	var missed []content.CaseAction
	for _, a := range s.scenario.CorrectActions {
		if !s.selected[a.ID] {
			missed = append(missed, a)
		}
	}

	score, err := scoring.ScoreCase(correctSelected, incorrectSelected, len(s.scenario.CorrectActions))
	if err != nil {
		// Correct-action count is validated in New; this cannot happen.
		score = 0
	}

	res := Result{
		SessionID:         s.id,
		CaseID:            s.scenario.ID,
		Score:             score,
		Grade:             scoring.GradeFor(score),
		CorrectSelected:   correctSelected,
		IncorrectSelected: incorrectSelected,
		MissedActions:     missed,
		Outcomes:          outcomes,
		TimeTaken:         time.Since(s.startedAt),
	}
	s.result = &res
	return res, nil
}

// Reset clears selections, reveals, and any result so the case can be
// attempted again. The shuffled action order is kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[string]bool)
	s.revealed = make(map[string]bool)
	s.completed = false
	s.result = nil
	s.startedAt = time.Now()
}
