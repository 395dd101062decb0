package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var debriefTestSchema = &Schema{
	Name: "validate-test",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"score":   map[string]any{"type": "integer"},
		},
		"required": []any{"summary"},
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"summary": "well handled", "score": 80}`)
	if err := validateResponse(debriefTestSchema, raw); err != nil {
		t.Errorf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejectsMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"score": 80}`)
	err := validateResponse(debriefTestSchema, raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("error = %v, want ErrInvalidResponse", err)
	}
	if string(invResp.Content) != `{"score": 80}` {
		t.Errorf("Content = %s", invResp.Content)
	}
}

func TestValidateResponseRejectsBadJSON(t *testing.T) {
	err := validateResponse(debriefTestSchema, json.RawMessage(`{not json`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Errorf("error = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}
