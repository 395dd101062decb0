package quiz

import (
	"errors"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/scoring"
)

func testAssessment() content.Assessment {
	return content.Assessment{
		ID:           "test-assessment",
		Title:        "Test Assessment",
		PassingScore: 70,
		Questions: []content.Question{
			{
				ID:   "q1",
				Type: content.SingleChoice,
				Text: "Question one",
				Options: []content.Option{
					{ID: "a", Text: "A"}, {ID: "b", Text: "B"},
				},
				CorrectAnswers: []string{"a"},
			},
			{
				ID:   "q2",
				Type: content.SingleChoice,
				Text: "Question two",
				Options: []content.Option{
					{ID: "a", Text: "A"}, {ID: "b", Text: "B"},
				},
				CorrectAnswers: []string{"b"},
			},
			{
				ID:   "q3",
				Type: content.SingleChoice,
				Text: "Question three",
				Options: []content.Option{
					{ID: "a", Text: "A"}, {ID: "b", Text: "B"},
				},
				CorrectAnswers: []string{"a"},
			},
			{
				ID:   "q4",
				Type: content.MultiSelect,
				Text: "Question four",
				Options: []content.Option{
					{ID: "a", Text: "A"}, {ID: "b", Text: "B"}, {ID: "c", Text: "C"},
				},
				CorrectAnswers: []string{"a", "b"},
			},
		},
	}
}

func TestSubmitScoresExactMatch(t *testing.T) {
	s, err := New(testAssessment())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// q1 correct, q2 correct, q3 wrong, q4 correct: 3 of 4.
	if err := s.SelectAnswer("a"); err != nil {
		t.Fatalf("SelectAnswer q1: %v", err)
	}
	s.Next()
	if err := s.SelectAnswer("b"); err != nil {
		t.Fatalf("SelectAnswer q2: %v", err)
	}
	s.Next()
	if err := s.SelectAnswer("b"); err != nil {
		t.Fatalf("SelectAnswer q3: %v", err)
	}
	s.Next()
	if err := s.SelectAnswer("a"); err != nil {
		t.Fatalf("SelectAnswer q4 a: %v", err)
	}
	if err := s.SelectAnswer("b"); err != nil {
		t.Fatalf("SelectAnswer q4 b: %v", err)
	}

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 75 {
		t.Errorf("Score = %d, want 75", res.Score)
	}
	if res.Grade != scoring.GradePass {
		t.Errorf("Grade = %q, want %q", res.Grade, scoring.GradePass)
	}
	if !res.Passed {
		t.Error("Passed = false, want true")
	}
	if res.CorrectCount != 3 {
		t.Errorf("CorrectCount = %d, want 3", res.CorrectCount)
	}
	if res.TimedOut {
		t.Error("TimedOut = true for learner submit")
	}
}

func TestMultiSelectToggle(t *testing.T) {
	s, err := New(testAssessment())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for s.CurrentQuestion().ID != "q4" {
		s.Next()
	}

	s.SelectAnswer("a")
	s.SelectAnswer("b")
	s.SelectAnswer("a") // toggles a back off

	got := s.Selected(3)
	sort.Strings(got)
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("Selected = %v, want [b]", got)
	}
}

func TestSingleChoiceReplaces(t *testing.T) {
	s, err := New(testAssessment())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.SelectAnswer("a")
	s.SelectAnswer("b")

	got := s.Selected(0)
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("Selected = %v, want [b]", got)
	}
}

func TestSelectAnswerUnknownOption(t *testing.T) {
	s, err := New(testAssessment())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SelectAnswer("z"); !errors.Is(err, scoring.ErrInvalidInput) {
		t.Errorf("SelectAnswer(z) error = %v, want ErrInvalidInput", err)
	}
}

func TestNavigationClamps(t *testing.T) {
	s, err := New(testAssessment())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.Prev() {
		t.Error("Prev moved past the first question")
	}
	for i := 0; i < 10; i++ {
		s.Next()
	}
	if got := s.CurrentIndex(); got != 3 {
		t.Errorf("CurrentIndex after over-advancing = %d, want 3", got)
	}
	if s.Next() {
		t.Error("Next moved past the last question")
	}
}

func TestDoubleSubmit(t *testing.T) {
	var calls atomic.Int32
	s, err := New(testAssessment(), WithOnComplete(func(Result) { calls.Add(1) }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

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
	if got := calls.Load(); got != 1 {
		t.Errorf("onComplete called %d times, want 1", got)
	}
}

func TestTimerExpirySubmitsOnce(t *testing.T) {
	a := testAssessment()
	a.TimeLimitSec = 2

	var calls atomic.Int32
	done := make(chan Result, 1)
	s, err := New(a,
		WithOnComplete(func(r Result) {
			calls.Add(1)
			done <- r
		}),
		withTickInterval(time.Millisecond),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.SelectAnswer("a") // q1 correct before time runs out

	var res Result
	select {
	case res = <-done:
	case <-time.After(time.Second):
		t.Fatal("timer never expired")
	}

	if !res.TimedOut {
		t.Error("TimedOut = false for timer expiry")
	}
	if res.Score != 25 {
		t.Errorf("Score = %d, want 25", res.Score)
	}
	if !s.Completed() {
		t.Error("Completed = false after expiry")
	}
	if got := s.Remaining(); got != 0 {
		t.Errorf("Remaining = %d, want 0", got)
	}

	// A late learner submit must not rescore or re-notify.
	if _, err := s.Submit(); !errors.Is(err, ErrCompleted) {
		t.Errorf("Submit after expiry error = %v, want ErrCompleted", err)
	}
	if err := s.SelectAnswer("b"); !errors.Is(err, ErrCompleted) {
		t.Errorf("SelectAnswer after expiry error = %v, want ErrCompleted", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("onComplete called %d times, want 1", got)
	}
}

func TestSubmitBeatsTimer(t *testing.T) {
	a := testAssessment()
	a.TimeLimitSec = 3600

	var calls atomic.Int32
	s, err := New(a, WithOnComplete(func(Result) { calls.Add(1) }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.TimedOut {
		t.Error("TimedOut = true for learner submit")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("onComplete called %d times, want 1", got)
	}
}

func TestNewRejectsEmptyAssessment(t *testing.T) {
	_, err := New(content.Assessment{ID: "empty"})
	if !errors.Is(err, scoring.ErrInvalidInput) {
		t.Errorf("New(empty) error = %v, want ErrInvalidInput", err)
	}
}

func TestAnsweredCount(t *testing.T) {
	s, err := New(testAssessment())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := s.AnsweredCount(); got != 0 {
		t.Errorf("AnsweredCount = %d, want 0", got)
	}
	s.SelectAnswer("a")
	s.Next()
	s.SelectAnswer("b")
	if got := s.AnsweredCount(); got != 2 {
		t.Errorf("AnsweredCount = %d, want 2", got)
	}
}
