package debrief

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nkapoor/emcmd/internal/casesim"
	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/llm"
)

func testInput() Input {
	return Input{
		Scenario: content.CaseScenario{
			ID:           "case-stemi-01",
			Title:        "Crushing Chest Pain",
			Presentation: "58-year-old with substernal chest pain",
		},
		Result: casesim.Result{
			CaseID: "case-stemi-01",
			Score:  60,
			Outcomes: []casesim.ActionOutcome{
				{Action: content.CaseAction{ID: "a1", Action: "Obtain ECG"}, Correct: true},
				{Action: content.CaseAction{ID: "x1", Action: "Order CT angiogram"}, Correct: false},
			},
			MissedActions: []content.CaseAction{
				{ID: "a2", Action: "Activate cath lab", Category: "escalation"},
			},
		},
	}
}

func waitConsume(t *testing.T, s *Service) (*Debrief, bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if err := s.Err(); err != nil {
			return nil, false
		}
		if d, ok := s.Consume(); ok {
			return d, true
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("debrief never became ready")
	return nil, false
}

func TestRequestAndConsume(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"summary": "ECG was obtained promptly but the cath lab was never activated.",
			"strengths": ["Early ECG"],
			"improvements": ["Activate the cath lab once STEMI is confirmed"],
			"key_teaching_point": "STEMI is an ECG diagnosis; reperfusion must not wait."
		}`),
	})
	s := NewService(mock, DefaultConfig())

	if _, ok := s.Consume(); ok {
		t.Fatal("Consume before Request should report nothing ready")
	}

	s.Request(context.Background(), testInput())
	d, ok := waitConsume(t, s)
	if !ok {
		t.Fatal("expected a debrief")
	}
	if d.CaseID != "case-stemi-01" {
		t.Errorf("CaseID = %q", d.CaseID)
	}
	if len(d.Strengths) != 1 || len(d.Improvements) != 1 {
		t.Errorf("Strengths = %v, Improvements = %v", d.Strengths, d.Improvements)
	}
	if d.KeyTeachingPoint == "" {
		t.Error("KeyTeachingPoint empty")
	}

	// The slot is cleared after consumption.
	if _, ok := s.Consume(); ok {
		t.Error("second Consume should report nothing ready")
	}
}

func TestPromptCarriesAttemptDetail(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"s","strengths":[],"improvements":[],"key_teaching_point":"k"}`),
	})
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), testInput())
	waitConsume(t, s)

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	prompt := mock.Calls[0].Prompt
	for _, want := range []string{
		"Crushing Chest Pain",
		"[correct] Obtain ECG",
		"[incorrect] Order CT angiogram",
		"Activate cath lab",
		"Score: 60/100",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "case-debrief" {
		t.Error("request did not carry the debrief schema")
	}
}

func TestGenerationFailureSurfacesError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), testInput())

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if err := s.Err(); err != nil {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("expected Err to surface the generation failure")
}
