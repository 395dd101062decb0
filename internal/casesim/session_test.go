package casesim

import (
	"errors"
	"testing"

	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/scoring"
)

func testScenario() content.CaseScenario {
	return content.CaseScenario{
		ID:    "test-case",
		Title: "Test Case",
		CorrectActions: []content.CaseAction{
			{ID: "c1", Action: "Correct one", Category: "diagnostic", Feedback: "yes"},
			{ID: "c2", Action: "Correct two", Category: "therapeutic", Feedback: "yes"},
			{ID: "c3", Action: "Correct three", Category: "stabilization", Feedback: "yes"},
			{ID: "c4", Action: "Correct four", Category: "escalation", Feedback: "yes"},
			{ID: "c5", Action: "Correct five", Category: "therapeutic", Feedback: "yes"},
		},
		IncorrectActions: []content.CaseAction{
			{ID: "x1", Action: "Wrong one", Category: "diagnostic", Feedback: "no"},
			{ID: "x2", Action: "Wrong two", Category: "therapeutic", Feedback: "no"},
		},
	}
}

func TestSubmitScoresSelections(t *testing.T) {
	s, err := New(testScenario())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Four of five correct actions plus one incorrect: (4-1)/5 = 60.
	for _, id := range []string{"c1", "c2", "c3", "c4", "x1"} {
		if err := s.ToggleAction(id); err != nil {
			t.Fatalf("ToggleAction(%s): %v", id, err)
		}
	}

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 60 {
		t.Errorf("Score = %d, want 60", res.Score)
	}
	if res.Grade != scoring.GradeNeedsImprovement {
		t.Errorf("Grade = %q, want %q", res.Grade, scoring.GradeNeedsImprovement)
	}
	if res.CorrectSelected != 4 {
		t.Errorf("CorrectSelected = %d, want 4", res.CorrectSelected)
	}
	if res.IncorrectSelected != 1 {
		t.Errorf("IncorrectSelected = %d, want 1", res.IncorrectSelected)
	}
	if len(res.MissedActions) != 1 || res.MissedActions[0].ID != "c5" {
		t.Errorf("MissedActions = %v, want [c5]", res.MissedActions)
	}
}

func TestScoreClampsAtZero(t *testing.T) {
	s, err := New(testScenario())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.ToggleAction("x1")
	s.ToggleAction("x2")

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 0 {
		t.Errorf("Score = %d, want 0", res.Score)
	}
}

func TestToggleRevealPersists(t *testing.T) {
	s, err := New(testScenario())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.ToggleAction("c1")
	if !s.IsSelected("c1") || !s.IsRevealed("c1") {
		t.Fatal("first toggle should select and reveal")
	}

	s.ToggleAction("c1")
	if s.IsSelected("c1") {
		t.Error("second toggle should deselect")
	}
	if !s.IsRevealed("c1") {
		t.Error("reveal should persist after deselection")
	}
}

func TestDeselectedActionNotScored(t *testing.T) {
	s, err := New(testScenario())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.ToggleAction("x1")
	s.ToggleAction("x1") // deselect
	s.ToggleAction("c1")

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.IncorrectSelected != 0 {
		t.Errorf("IncorrectSelected = %d, want 0", res.IncorrectSelected)
	}
	if res.Score != 20 {
		t.Errorf("Score = %d, want 20", res.Score)
	}
}

func TestToggleUnknownAction(t *testing.T) {
	s, err := New(testScenario())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.ToggleAction("nope"); !errors.Is(err, scoring.ErrInvalidInput) {
		t.Errorf("ToggleAction(nope) error = %v, want ErrInvalidInput", err)
	}
}

func TestDoubleSubmit(t *testing.T) {
	s, err := New(testScenario())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.ToggleAction("c1")

	first, err := s.Submit()
	if err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	second, err := s.Submit()
	if !errors.Is(err, ErrCompleted) {
		t.Errorf("second Submit error = %v, want ErrCompleted", err)
	}
	if second.Score != first.Score {
		t.Errorf("second Submit score = %d, want original %d", second.Score, first.Score)
	}
	if err := s.ToggleAction("c2"); !errors.Is(err, ErrCompleted) {
		t.Errorf("ToggleAction after submit error = %v, want ErrCompleted", err)
	}
}

func TestReset(t *testing.T) {
	s, err := New(testScenario())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := s.Actions()

	s.ToggleAction("c1")
	if _, err := s.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	s.Reset()
	if s.Completed() {
		t.Error("Completed = true after Reset")
	}
	if s.Result() != nil {
		t.Error("Result != nil after Reset")
	}
	if s.IsSelected("c1") || s.IsRevealed("c1") {
		t.Error("selection state survived Reset")
	}

	after := s.Actions()
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Fatal("action order changed across Reset")
		}
	}
}

func TestActionsContainsAll(t *testing.T) {
	s, err := New(testScenario())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := s.Actions()
	if len(got) != 7 {
		t.Fatalf("Actions returned %d entries, want 7", len(got))
	}
	seen := make(map[string]bool, len(got))
	for _, a := range got {
		seen[a.ID] = true
	}
	for _, id := range []string{"c1", "c2", "c3", "c4", "c5", "x1", "x2"} {
		if !seen[id] {
			t.Errorf("action %q missing from presentation order", id)
		}
	}
}

func TestNewRejectsNoCorrectActions(t *testing.T) {
	_, err := New(content.CaseScenario{ID: "bad"})
	if !errors.Is(err, scoring.ErrInvalidInput) {
		t.Errorf("New error = %v, want ErrInvalidInput", err)
	}
}
