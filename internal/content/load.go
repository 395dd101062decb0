package content

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var packFS embed.FS

// pack names double as data file basenames and schema ids.
const (
	packAssessments = "assessments"
	packCases       = "cases"
	packConditions  = "conditions"
	packRedFlags    = "red_flags"
	packGlossary    = "glossary"
)

// Load reads, validates, and indexes the embedded content packs.
// Any schema or semantic violation aborts the load; partially valid
// content is never served.
func Load() (*Repository, error) {
	var (
		assessments []Assessment
		cases       []CaseScenario
		conditions  []Condition
		redFlags    []RedFlagCard
		glossary    []GlossaryEntry
	)

	if err := loadPack(packAssessments, AssessmentsSchema, &assessments); err != nil {
		return nil, err
	}
	if err := loadPack(packCases, CasesSchema, &cases); err != nil {
		return nil, err
	}
	if err := loadPack(packConditions, ConditionsSchema, &conditions); err != nil {
		return nil, err
	}
	if err := loadPack(packRedFlags, RedFlagsSchema, &redFlags); err != nil {
		return nil, err
	}
	if err := loadPack(packGlossary, GlossarySchema, &glossary); err != nil {
		return nil, err
	}

	for _, a := range assessments {
		if err := ValidateAssessment(a); err != nil {
			return nil, err
		}
	}
	for _, c := range cases {
		if err := ValidateCase(c); err != nil {
			return nil, err
		}
	}

	return newRepository(assessments, cases, conditions, redFlags, glossary), nil
}

func loadPack[T any](name string, schema map[string]any, out *[]T) error {
	raw, err := packFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return fmt.Errorf("read %s pack: %w", name, err)
	}
	if err := validateJSON(name, schema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal %s pack: %w", name, err)
	}
	return nil
}
