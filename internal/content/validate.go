package content

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidContent marks malformed pack data. Content errors are
// authoring bugs and fail fast at load time, never at scoring time.
var ErrInvalidContent = errors.New("invalid content")

// validateJSON checks raw pack bytes against a JSON Schema definition.
func validateJSON(name string, schemaDef map[string]any, raw []byte) error {
	defBytes, err := json.Marshal(schemaDef)
	if err != nil {
		return fmt.Errorf("marshal %s schema: %w", name, err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return fmt.Errorf("parse %s schema: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return fmt.Errorf("add %s schema resource: %w", name, err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile %s schema: %w", name, err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %s pack is not valid JSON: %v", ErrInvalidContent, name, err)
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s pack: %v", ErrInvalidContent, name, err)
	}
	return nil
}

// ValidateAssessment enforces the semantic invariants the scoring engine
// relies on: at least one question, correct ids a subset of option ids,
// and exactly one correct id for single-choice questions.
func ValidateAssessment(a Assessment) error {
	if len(a.Questions) == 0 {
		return fmt.Errorf("%w: assessment %q has no questions", ErrInvalidContent, a.ID)
	}
	if a.PassingScore < 0 || a.PassingScore > 100 {
		return fmt.Errorf("%w: assessment %q passing score %d out of range", ErrInvalidContent, a.ID, a.PassingScore)
	}

	seen := make(map[string]bool, len(a.Questions))
	for _, q := range a.Questions {
		if seen[q.ID] {
			return fmt.Errorf("%w: assessment %q duplicate question id %q", ErrInvalidContent, a.ID, q.ID)
		}
		seen[q.ID] = true
		if err := validateQuestion(a.ID, q); err != nil {
			return err
		}
	}
	return nil
}

func validateQuestion(assessmentID string, q Question) error {
	optionIDs := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if optionIDs[o.ID] {
			return fmt.Errorf("%w: question %q duplicate option id %q", ErrInvalidContent, q.ID, o.ID)
		}
		optionIDs[o.ID] = true
	}

	if len(q.CorrectAnswers) == 0 {
		return fmt.Errorf("%w: question %q has no correct answers", ErrInvalidContent, q.ID)
	}
	for _, id := range q.CorrectAnswers {
		if !optionIDs[id] {
			return fmt.Errorf("%w: question %q correct answer %q is not an option", ErrInvalidContent, q.ID, id)
		}
	}

	switch q.Type {
	case SingleChoice:
		if len(q.CorrectAnswers) != 1 {
			return fmt.Errorf("%w: single-choice question %q has %d correct answers",
				ErrInvalidContent, q.ID, len(q.CorrectAnswers))
		}
	case MultiSelect:
		// Any non-empty subset is fine.
	default:
		return fmt.Errorf("%w: question %q in assessment %q has unknown type %q",
			ErrInvalidContent, q.ID, assessmentID, q.Type)
	}
	return nil
}

// ValidateCase enforces the case-scoring invariants: at least one correct
// action and no id shared between the correct and incorrect sets.
func ValidateCase(c CaseScenario) error {
	if len(c.CorrectActions) == 0 {
		return fmt.Errorf("%w: case %q has no correct actions", ErrInvalidContent, c.ID)
	}

	ids := make(map[string]bool, len(c.CorrectActions)+len(c.IncorrectActions))
	for _, a := range c.AllActions() {
		if ids[a.ID] {
			return fmt.Errorf("%w: case %q duplicate action id %q", ErrInvalidContent, c.ID, a.ID)
		}
		ids[a.ID] = true
	}

	last := -1
	for _, ev := range c.Timeline {
		if ev.TimeMin < last {
			return fmt.Errorf("%w: case %q timeline is not in chronological order", ErrInvalidContent, c.ID)
		}
		last = ev.TimeMin
	}
	return nil
}
