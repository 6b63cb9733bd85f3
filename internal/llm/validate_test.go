package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// stepSchema mirrors the shape of one generated practice step.
func stepSchema() *Schema {
	return &Schema{
		Name:        "practice-step",
		Description: "One generated practice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt":  map[string]any{"type": "string"},
				"type":    map[string]any{"type": "string", "enum": []any{"multiple_choice", "free"}},
				"choices": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []any{"prompt", "type"},
		},
	}
}

func TestValidateResponse_WellFormedStep(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Which fraction equals 1/2?","type":"multiple_choice","choices":["A. 2/4","B. 3/4"]}`)
	if err := validateResponse(stepSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_OptionalChoicesOmitted(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Explain why 2/4 equals 1/2.","type":"free"}`)
	if err := validateResponse(stepSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingPrompt(t *testing.T) {
	raw := json.RawMessage(`{"type":"free"}`)
	err := validateResponse(stepSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_UnknownKind(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Pick one.","type":"matching"}`)
	err := validateResponse(stepSchema(), raw)
	if err == nil {
		t.Fatal("expected error for a kind outside the enum")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_ChoicesNotStrings(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Pick one.","type":"multiple_choice","choices":[1,2,3]}`)
	err := validateResponse(stepSchema(), raw)
	if err == nil {
		t.Fatal("expected error for non-string choices")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(stepSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
	if string(invErr.Content) != `{not json}` {
		t.Fatalf("offending payload must be preserved, got %s", invErr.Content)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	err := validateResponse(stepSchema(), json.RawMessage(``))
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

// The full pool shape nests steps under one object; validation must
// reach through the array into each step.
func TestValidateResponse_FullPoolShape(t *testing.T) {
	schema := &Schema{
		Name:        "practice-pool",
		Description: "A generated question pool",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"final_message": map[string]any{"type": "string"},
				"steps": map[string]any{
					"type":  "array",
					"items": stepSchema().Definition,
				},
			},
			"required": []any{"steps"},
		},
	}

	valid := json.RawMessage(`{"steps":[{"prompt":"Which fraction equals 1/2?","type":"multiple_choice","choices":["A. 2/4"]}],"final_message":"Nebula cleared!"}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"steps":[{"type":"free"}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for a step missing its prompt")
	}
}
