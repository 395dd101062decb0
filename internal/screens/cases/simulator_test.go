package cases

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

func testScenario() content.CaseScenario {
	return content.CaseScenario{
		ID:           "case-test",
		Title:        "Test Case",
		Presentation: "A patient arrives in distress",
		InitialVitals: content.VitalSigns{
			HeartRate:        120,
			BloodPressure:    content.BloodPressure{Systolic: 90, Diastolic: 60},
			RespiratoryRate:  24,
			OxygenSaturation: 91,
			Temperature:      38.5,
		},
		History: content.PatientHistory{
			Age: 60, Sex: "male", ChiefComplaint: "chest pain", HPI: "Sudden onset",
		},
		CorrectActions: []content.CaseAction{
			{ID: "c1", Action: "Obtain ECG", Feedback: "Good first move"},
			{ID: "c2", Action: "Give aspirin", Feedback: "Indicated here"},
		},
		IncorrectActions: []content.CaseAction{
			{ID: "x1", Action: "Discharge home", Feedback: "Dangerous"},
		},
	}
}

func testSimulator(t *testing.T) *simulator {
	t.Helper()
	s, err := newSimulator(testScenario(), nil, nil, "local")
	if err != nil {
		t.Fatalf("newSimulator: %v", err)
	}
	return s
}

func TestSimulatorTitle(t *testing.T) {
	s := testSimulator(t)
	if s.Title() != "Test Case" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSimulatorBriefingShowsPatient(t *testing.T) {
	s := testSimulator(t)
	view := s.View(80, 40)
	for _, want := range []string{"A patient arrives in distress", "chest pain", "HR 120"} {
		if !strings.Contains(view, want) {
			t.Errorf("briefing view missing %q", want)
		}
	}
}

func TestSimulatorToggleAndSubmit(t *testing.T) {
	s := testSimulator(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	sim := scr.(*simulator)
	if sim.phase != phaseActions {
		t.Fatalf("phase = %v after Enter, want actions", sim.phase)
	}

	// Toggle the highlighted action on and off again.
	scr, _ = sim.Update(specialKey(tea.KeyEnter))
	sim = scr.(*simulator)
	if sim.session.SelectedCount() != 1 {
		t.Fatalf("SelectedCount = %d, want 1", sim.session.SelectedCount())
	}
	scr, _ = sim.Update(specialKey(tea.KeyEnter))
	sim = scr.(*simulator)
	if sim.session.SelectedCount() != 0 {
		t.Fatalf("SelectedCount = %d after second toggle, want 0", sim.session.SelectedCount())
	}

	// Select again and submit.
	scr, _ = sim.Update(specialKey(tea.KeyEnter))
	sim = scr.(*simulator)
	scr, _ = sim.Update(keyPress('s'))
	sim = scr.(*simulator)

	if sim.phase != phaseResults {
		t.Fatalf("phase = %v after submit, want results", sim.phase)
	}
	if sim.result == nil {
		t.Fatal("expected a result after submit")
	}

	view := sim.View(80, 40)
	if !strings.Contains(view, "CASE COMPLETE") {
		t.Error("results view missing completion banner")
	}
}

func TestSimulatorRetryKeepsActionOrder(t *testing.T) {
	s := testSimulator(t)
	before := s.session.Actions()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // begin
	sim := scr.(*simulator)
	scr, _ = sim.Update(specialKey(tea.KeyEnter)) // select
	sim = scr.(*simulator)
	scr, _ = sim.Update(keyPress('s')) // submit
	sim = scr.(*simulator)
	scr, _ = sim.Update(keyPress('r')) // retry
	sim = scr.(*simulator)

	if sim.phase != phaseActions {
		t.Fatalf("phase = %v after retry, want actions", sim.phase)
	}
	if sim.session.SelectedCount() != 0 {
		t.Error("retry should clear selections")
	}
	after := sim.session.Actions()
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Fatal("retry changed the action order")
		}
	}
}
