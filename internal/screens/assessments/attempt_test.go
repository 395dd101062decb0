package assessments

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testAssessment() content.Assessment {
	return content.Assessment{
		ID:    "test-assessment",
		Title: "Test Assessment",
		Questions: []content.Question{
			{
				ID:   "q1",
				Type: content.SingleChoice,
				Text: "First question",
				Options: []content.Option{
					{ID: "a", Text: "Answer A"},
					{ID: "b", Text: "Answer B"},
				},
				CorrectAnswers: []string{"a"},
				Explanation:    "A is right",
			},
			{
				ID:   "q2",
				Type: content.SingleChoice,
				Text: "Second question",
				Options: []content.Option{
					{ID: "a", Text: "Answer A"},
					{ID: "b", Text: "Answer B"},
				},
				CorrectAnswers: []string{"b"},
				Explanation:    "B is right",
			},
		},
		PassingScore: 70,
	}
}

func testAttempt(t *testing.T) *attemptScreen {
	t.Helper()
	s, err := newAttempt(testAssessment(), nil, "local")
	if err != nil {
		t.Fatalf("newAttempt: %v", err)
	}
	return s
}

func TestAttemptTitle(t *testing.T) {
	s := testAttempt(t)
	if s.Title() != "Test Assessment" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestAttemptSelectAndSubmit(t *testing.T) {
	s := testAttempt(t)

	// Select option A on the first question.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	as := scr.(*attemptScreen)
	if got := as.session.Selected(0); len(got) != 1 || got[0] != "a" {
		t.Fatalf("Selected(0) = %v, want [a]", got)
	}

	// Move to the second question, pick the wrong answer.
	scr, _ = as.Update(specialKey(tea.KeyRight))
	as = scr.(*attemptScreen)
	scr, _ = as.Update(specialKey(tea.KeyEnter))
	as = scr.(*attemptScreen)

	scr, _ = as.Update(keyPress('s'))
	as = scr.(*attemptScreen)

	if as.result == nil {
		t.Fatal("expected a result after submit")
	}
	if as.result.Score != 50 {
		t.Errorf("Score = %d, want 50", as.result.Score)
	}

	view := as.View(80, 24)
	if !strings.Contains(view, "NOT PASSED") {
		t.Error("results view should show the fail verdict")
	}
	if !strings.Contains(view, "B is right") {
		t.Error("results view should show explanations")
	}
}

func TestAttemptNavigationSyncsSelection(t *testing.T) {
	s := testAttempt(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	as := scr.(*attemptScreen)

	// Moving away and back restores the chosen marker.
	scr, _ = as.Update(specialKey(tea.KeyRight))
	as = scr.(*attemptScreen)
	scr, _ = as.Update(specialKey(tea.KeyLeft))
	as = scr.(*attemptScreen)

	if !as.choice.Chosen["a"] {
		t.Error("choice list lost the selection after navigating away and back")
	}
}

func TestAttemptViewShowsProgress(t *testing.T) {
	s := testAttempt(t)
	view := s.View(80, 24)
	if !strings.Contains(view, "Question 1 of 2") {
		t.Errorf("view missing question counter:\n%s", view)
	}
}
