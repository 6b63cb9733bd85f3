package llm

import (
	"testing"
)

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-flash-latest"},
		{"gemini-flash-lite", "gemini-flash-lite-latest"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-flash-latest", "gemini-flash-latest"}, // full IDs pass through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// The pool schema is the only schema the engine sends to Gemini; its
// shape (nested steps array, a kind enum, string lists) must survive
// the conversion to the genai schema type.
func TestBuildGeminiSchemaForPoolShape(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"final_message": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt":   map[string]any{"type": "string"},
						"type":     map[string]any{"type": "string", "enum": []any{"multiple_choice", "free"}},
						"choices":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"expected": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required": []any{"prompt", "type"},
				},
			},
		},
		"required": []any{"steps"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	steps := schema.Properties["steps"]
	if steps == nil || steps.Type != "ARRAY" {
		t.Fatalf("expected ARRAY steps, got %+v", steps)
	}
	step := steps.Items
	if step == nil || step.Type != "OBJECT" {
		t.Fatalf("expected OBJECT step items, got %+v", step)
	}
	if step.Properties["prompt"].Type != "STRING" {
		t.Fatalf("expected STRING prompt, got %s", step.Properties["prompt"].Type)
	}
	if len(step.Properties["type"].Enum) != 2 {
		t.Fatalf("expected 2 kind enum values, got %d", len(step.Properties["type"].Enum))
	}
	if step.Properties["choices"].Items.Type != "STRING" {
		t.Fatalf("expected STRING choice items, got %s", step.Properties["choices"].Items.Type)
	}
	if len(step.Required) != 2 {
		t.Fatalf("expected 2 required step fields, got %d", len(step.Required))
	}
	if len(schema.Required) != 1 || schema.Required[0] != "steps" {
		t.Fatalf("expected steps required at top level, got %v", schema.Required)
	}
}
