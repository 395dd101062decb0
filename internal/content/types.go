package content

// Category classifies conditions by organ system / mechanism.
type Category string

const (
	CategoryCardiac     Category = "cardiac"
	CategoryNeuro       Category = "neuro"
	CategoryInfectious  Category = "infectious"
	CategoryImmunologic Category = "immunologic"
	CategoryAbdominal   Category = "abdominal"
	CategoryTrauma      Category = "trauma"
	CategoryRespiratory Category = "respiratory"
)

// QuestionType distinguishes how answers are collected and compared.
type QuestionType string

const (
	SingleChoice QuestionType = "single-choice"
	MultiSelect  QuestionType = "multi-select"
)

// Option is one selectable answer for a question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is a single assessment item. CorrectAnswers must be a subset of
// the option ids; single-choice questions carry exactly one correct id.
// Both are enforced at load time.
type Question struct {
	ID             string       `json:"id"`
	Type           QuestionType `json:"type"`
	Text           string       `json:"text"`
	Context        string       `json:"context,omitempty"`
	Options        []Option     `json:"options"`
	CorrectAnswers []string     `json:"correct_answers"`
	Explanation    string       `json:"explanation"`
	Category       string       `json:"category"`
	Difficulty     string       `json:"difficulty"`
}

// IsMultiSelect reports whether the question accepts multiple answers.
func (q Question) IsMultiSelect() bool {
	return q.Type == MultiSelect
}

// CorrectSet returns the correct answer ids as a set.
func (q Question) CorrectSet() map[string]bool {
	set := make(map[string]bool, len(q.CorrectAnswers))
	for _, id := range q.CorrectAnswers {
		set[id] = true
	}
	return set
}

// Assessment is a named, ordered quiz with a pass threshold and an
// optional time limit. Question order defines navigation order.
type Assessment struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Questions    []Question `json:"questions"`
	PassingScore int        `json:"passing_score"`
	TimeLimitSec int        `json:"time_limit_sec,omitempty"`
}

// BloodPressure is a systolic/diastolic pair in mmHg.
type BloodPressure struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

// VitalSigns is a point-in-time vitals snapshot. GCS of 0 means
// not recorded.
type VitalSigns struct {
	HeartRate        int           `json:"heart_rate"`
	BloodPressure    BloodPressure `json:"blood_pressure"`
	RespiratoryRate  int           `json:"respiratory_rate"`
	OxygenSaturation int           `json:"oxygen_saturation"`
	Temperature      float64       `json:"temperature"`
	GCS              int           `json:"gcs,omitempty"`
}

// PhysicalExam holds free-text exam findings by system. Empty fields
// were not examined or not notable.
type PhysicalExam struct {
	General        string `json:"general"`
	Cardiovascular string `json:"cardiovascular,omitempty"`
	Respiratory    string `json:"respiratory,omitempty"`
	Neurological   string `json:"neurological,omitempty"`
	Abdominal      string `json:"abdominal,omitempty"`
	Skin           string `json:"skin,omitempty"`
	Extremities    string `json:"extremities,omitempty"`
}

// PatientHistory is the clinical background presented with a case.
type PatientHistory struct {
	Age            int      `json:"age"`
	Sex            string   `json:"sex"`
	ChiefComplaint string   `json:"chief_complaint"`
	HPI            string   `json:"hpi"`
	PMH            []string `json:"pmh"`
	Medications    []string `json:"medications"`
	Allergies      []string `json:"allergies"`
	SocialHistory  string   `json:"social_history,omitempty"`
}

// CaseAction is one selectable management decision in a case simulation.
// Whether it is correct is determined by which list it appears in on the
// scenario, not by a flag on the action itself.
type CaseAction struct {
	ID       string `json:"id"`
	Action   string `json:"action"`
	Category string `json:"category"`
	Feedback string `json:"feedback"`
	Timing   string `json:"timing,omitempty"`
}

// TimelineEvent is a scripted event revealed after case submission.
type TimelineEvent struct {
	TimeMin int         `json:"time_min"`
	Event   string      `json:"event"`
	Vitals  *VitalSigns `json:"vitals,omitempty"`
}

// CaseScenario is a simulated patient encounter with curated correct and
// incorrect actions and a scripted timeline. At least one correct action
// is required (enforced at load time).
type CaseScenario struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	ConditionID      string          `json:"condition_id"`
	Difficulty       string          `json:"difficulty"`
	Presentation     string          `json:"presentation"`
	InitialVitals    VitalSigns      `json:"initial_vitals"`
	PhysicalExam     PhysicalExam    `json:"physical_exam"`
	History          PatientHistory  `json:"history"`
	CorrectActions   []CaseAction    `json:"correct_actions"`
	IncorrectActions []CaseAction    `json:"incorrect_actions"`
	Timeline         []TimelineEvent `json:"timeline"`
}

// AllActions returns the combined correct+incorrect action list in pack
// order. Callers that present actions to a learner shuffle their own copy.
func (c CaseScenario) AllActions() []CaseAction {
	out := make([]CaseAction, 0, len(c.CorrectActions)+len(c.IncorrectActions))
	out = append(out, c.CorrectActions...)
	out = append(out, c.IncorrectActions...)
	return out
}

// IsCorrectAction reports whether the given action id is in the correct set.
func (c CaseScenario) IsCorrectAction(id string) bool {
	for _, a := range c.CorrectActions {
		if a.ID == id {
			return true
		}
	}
	return false
}

// StabilizationStep is one step of initial stabilization for a condition.
type StabilizationStep struct {
	Step     string `json:"step"`
	Priority string `json:"priority"`
	Timing   string `json:"timing"`
	Detail   string `json:"detail,omitempty"`
}

// DiagnosticTest is an initial workup item for a condition.
type DiagnosticTest struct {
	Test      string `json:"test"`
	Priority  string `json:"priority"`
	Reasoning string `json:"reasoning"`
}

// Intervention is a critical early intervention for a condition.
type Intervention struct {
	Intervention      string   `json:"intervention"`
	Indication        string   `json:"indication"`
	Contraindications []string `json:"contraindications,omitempty"`
	Timing            string   `json:"timing"`
	Critical          bool     `json:"critical"`
}

// RedFlag is a high-risk sign attached to a condition.
type RedFlag struct {
	Flag         string `json:"flag"`
	Significance string `json:"significance"`
	Action       string `json:"action"`
	Severity     string `json:"severity"`
}

// EscalationCriterion names a trigger and where the patient goes.
type EscalationCriterion struct {
	Trigger     string `json:"trigger"`
	Destination string `json:"destination"`
	Urgency     string `json:"urgency"`
}

// Condition is a reference entry for one time-critical presentation.
type Condition struct {
	ID                    string                `json:"id"`
	Name                  string                `json:"name"`
	Category              Category              `json:"category"`
	Description           string                `json:"description"`
	Stabilization         []StabilizationStep   `json:"stabilization"`
	InitialTests          []DiagnosticTest      `json:"initial_tests"`
	CriticalInterventions []Intervention        `json:"critical_interventions"`
	RedFlags              []RedFlag             `json:"red_flags"`
	Escalation            []EscalationCriterion `json:"escalation"`
	Pitfalls              []string              `json:"pitfalls"`
}

// RedFlagCard is a standalone symptom-centred flashcard.
type RedFlagCard struct {
	ID                string   `json:"id"`
	Symptom           string   `json:"symptom"`
	Description       string   `json:"description"`
	RedFlags          []string `json:"red_flags"`
	Differentials     []string `json:"differentials"`
	ImmediateActions  []string `json:"immediate_actions"`
	Escalation        string   `json:"escalation"`
	RelatedConditions []string `json:"related_conditions,omitempty"`
}

// GlossaryEntry is a single term/definition pair.
type GlossaryEntry struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category,omitempty"`
}
