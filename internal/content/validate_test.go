package content

import (
	"errors"
	"testing"
)

func validAssessment() Assessment {
	return Assessment{
		ID:    "a1",
		Title: "Test",
		Questions: []Question{
			{
				ID:             "q1",
				Type:           SingleChoice,
				Text:           "Pick one",
				Options:        []Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}},
				CorrectAnswers: []string{"a"},
			},
			{
				ID:             "q2",
				Type:           MultiSelect,
				Text:           "Pick several",
				Options:        []Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}, {ID: "c", Text: "C"}},
				CorrectAnswers: []string{"a", "c"},
			},
		},
		PassingScore: 70,
	}
}

func TestValidateAssessmentAccepts(t *testing.T) {
	if err := ValidateAssessment(validAssessment()); err != nil {
		t.Fatalf("ValidateAssessment: %v", err)
	}
}

func TestValidateAssessmentRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Assessment)
	}{
		{"no questions", func(a *Assessment) { a.Questions = nil }},
		{"passing score out of range", func(a *Assessment) { a.PassingScore = 101 }},
		{"duplicate question id", func(a *Assessment) { a.Questions[1].ID = "q1" }},
		{"correct answer not an option", func(a *Assessment) { a.Questions[0].CorrectAnswers = []string{"z"} }},
		{"no correct answers", func(a *Assessment) { a.Questions[1].CorrectAnswers = nil }},
		{"single-choice with two answers", func(a *Assessment) { a.Questions[0].CorrectAnswers = []string{"a", "b"} }},
		{"unknown question type", func(a *Assessment) { a.Questions[0].Type = "essay" }},
		{"duplicate option id", func(a *Assessment) { a.Questions[0].Options[1].ID = "a" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAssessment()
			tt.mutate(&a)
			err := ValidateAssessment(a)
			if !errors.Is(err, ErrInvalidContent) {
				t.Errorf("ValidateAssessment = %v, want ErrInvalidContent", err)
			}
		})
	}
}

func validCase() CaseScenario {
	return CaseScenario{
		ID:    "c1",
		Title: "Test",
		CorrectActions: []CaseAction{
			{ID: "a1", Action: "Do the right thing"},
		},
		IncorrectActions: []CaseAction{
			{ID: "a2", Action: "Do the wrong thing"},
		},
		Timeline: []TimelineEvent{
			{TimeMin: 0, Event: "Arrival"},
			{TimeMin: 10, Event: "Deterioration"},
		},
	}
}

func TestValidateCaseAccepts(t *testing.T) {
	if err := ValidateCase(validCase()); err != nil {
		t.Fatalf("ValidateCase: %v", err)
	}
}

func TestValidateCaseRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CaseScenario)
	}{
		{"no correct actions", func(c *CaseScenario) { c.CorrectActions = nil }},
		{"duplicate action id", func(c *CaseScenario) { c.IncorrectActions[0].ID = "a1" }},
		{"timeline out of order", func(c *CaseScenario) { c.Timeline[1].TimeMin = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCase()
			tt.mutate(&c)
			err := ValidateCase(c)
			if !errors.Is(err, ErrInvalidContent) {
				t.Errorf("ValidateCase = %v, want ErrInvalidContent", err)
			}
		})
	}
}
