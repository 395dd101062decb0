package content

// JSON Schemas for the embedded content packs. Packs are validated against
// these before unmarshalling so authoring mistakes fail at startup with a
// pointable error instead of surfacing mid-session.

var optionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":   map[string]any{"type": "string", "minLength": 1},
		"text": map[string]any{"type": "string", "minLength": 1},
	},
	"required":             []any{"id", "text"},
	"additionalProperties": false,
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{"type": "string", "minLength": 1},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"single-choice", "multi-select"},
		},
		"text":    map[string]any{"type": "string", "minLength": 1},
		"context": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items":    optionSchema,
		},
		"correct_answers": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": "string"},
		},
		"explanation": map[string]any{"type": "string"},
		"category":    map[string]any{"type": "string"},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
	},
	"required": []any{"id", "type", "text", "options", "correct_answers"},
}

// AssessmentsSchema validates the assessments pack.
var AssessmentsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "string", "minLength": 1},
			"title":       map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string"},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    questionSchema,
			},
			"passing_score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
			},
			"time_limit_sec": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
		},
		"required": []any{"id", "title", "questions", "passing_score"},
	},
}

var actionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":     map[string]any{"type": "string", "minLength": 1},
		"action": map[string]any{"type": "string", "minLength": 1},
		"category": map[string]any{
			"type": "string",
			"enum": []any{"stabilization", "diagnostic", "therapeutic", "escalation"},
		},
		"feedback": map[string]any{"type": "string"},
		"timing":   map[string]any{"type": "string"},
	},
	"required": []any{"id", "action", "category", "feedback"},
}

// CasesSchema validates the case-scenarios pack. Clinical display fields
// (vitals, exam, history) are intentionally loose; only the fields the
// scoring engine depends on are pinned down.
var CasesSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":           map[string]any{"type": "string", "minLength": 1},
			"title":        map[string]any{"type": "string", "minLength": 1},
			"condition_id": map[string]any{"type": "string"},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
			"presentation": map[string]any{"type": "string"},
			"correct_actions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    actionSchema,
			},
			"incorrect_actions": map[string]any{
				"type":  "array",
				"items": actionSchema,
			},
			"timeline": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"time_min": map[string]any{"type": "integer", "minimum": 0},
						"event":    map[string]any{"type": "string", "minLength": 1},
					},
					"required": []any{"time_min", "event"},
				},
			},
		},
		"required": []any{"id", "title", "difficulty", "correct_actions", "incorrect_actions"},
	},
}

// ConditionsSchema validates the conditions reference pack.
var ConditionsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":   map[string]any{"type": "string", "minLength": 1},
			"name": map[string]any{"type": "string", "minLength": 1},
			"category": map[string]any{
				"type": "string",
				"enum": []any{
					"cardiac", "neuro", "infectious", "immunologic",
					"abdominal", "trauma", "respiratory",
				},
			},
			"description": map[string]any{"type": "string"},
		},
		"required": []any{"id", "name", "category"},
	},
}

// RedFlagsSchema validates the red-flag flashcard pack.
var RedFlagsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":      map[string]any{"type": "string", "minLength": 1},
			"symptom": map[string]any{"type": "string", "minLength": 1},
			"red_flags": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string"},
			},
		},
		"required": []any{"id", "symptom", "red_flags"},
	},
}

// GlossarySchema validates the glossary pack.
var GlossarySchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":         map[string]any{"type": "string", "minLength": 1},
			"term":       map[string]any{"type": "string", "minLength": 1},
			"definition": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []any{"id", "term", "definition"},
	},
}
