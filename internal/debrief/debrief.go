// Package debrief generates an attending-style debrief of a completed
// case simulation using a configured LLM provider. Generation runs
// asynchronously so the results screen renders immediately and fills
// the debrief in when it arrives.
package debrief

import (
	"github.com/nkapoor/emcmd/internal/casesim"
	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/llm"
)

// Debrief is the structured output shown after a case attempt.
type Debrief struct {
	CaseID           string
	Summary          string
	Strengths        []string
	Improvements     []string
	KeyTeachingPoint string
}

// Input carries everything the prompt needs about an attempt.
type Input struct {
	Scenario content.CaseScenario
	Result   casesim.Result
}

// Config tunes generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

// DebriefSchema is the JSON Schema the model's response must satisfy.
var DebriefSchema = &llm.Schema{
	Name:        "case-debrief",
	Description: "Structured debrief of an emergency medicine case simulation attempt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence narrative of how the learner managed the case",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 specific things done well",
			},
			"improvements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 specific things to do differently",
			},
			"key_teaching_point": map[string]any{
				"type":        "string",
				"description": "The single most important takeaway from this case",
			},
		},
		"required": []any{"summary", "strengths", "improvements", "key_teaching_point"},
	},
}
