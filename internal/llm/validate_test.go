package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// pathNoteSchema mirrors the shape of ALP's narration output: a headline
// plus optional pacing fields.
func pathNoteSchema() *Schema {
	return &Schema{
		Name:        "path-note",
		Description: "A one-line note about a learning path",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"headline": map[string]any{"type": "string"},
				"minutes":  map[string]any{"type": "integer", "minimum": 0},
				"tone":     map[string]any{"type": "string", "enum": []any{"calm", "upbeat", "neutral"}},
			},
			"required": []any{"headline", "minutes"},
		},
	}
}

func TestValidateResponse_Accepts(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"all fields", `{"headline":"Three steps to systems of equations","minutes":95,"tone":"upbeat"}`},
		{"optional omitted", `{"headline":"One quick review today","minutes":15}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateResponse(pathNoteSchema(), json.RawMessage(tc.raw)); err != nil {
				t.Fatalf("validateResponse() = %v, want nil", err)
			}
		})
	}
}

func TestValidateResponse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"headline":"No minutes given"}`},
		{"wrong type", `{"headline":"Bad minutes","minutes":"ninety"}`},
		{"enum violation", `{"headline":"Bad tone","minutes":30,"tone":"aggressive"}`},
		{"malformed JSON", `{not json}`},
		{"empty", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponse(pathNoteSchema(), json.RawMessage(tc.raw))
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("error type = %T, want *ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("validateResponse(nil, ...) = %v, want nil", err)
	}
}

func TestValidateResponse_NestedSteps(t *testing.T) {
	schema := &Schema{
		Name:        "plan-steps",
		Description: "Narration with per-step notes",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"headline": map[string]any{"type": "string"},
				"steps": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"concept_id":    map[string]any{"type": "string"},
							"encouragement": map[string]any{"type": "string"},
						},
						"required": []any{"concept_id", "encouragement"},
					},
				},
			},
			"required": []any{"headline", "steps"},
		},
	}

	valid := `{"headline":"Two new concepts this week","steps":[{"concept_id":"alg-expressions","encouragement":"Start with the worked examples."}]}`
	if err := validateResponse(schema, json.RawMessage(valid)); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	invalid := `{"headline":"Two new concepts this week","steps":[{"concept_id":"alg-expressions"}]}`
	if err := validateResponse(schema, json.RawMessage(invalid)); err == nil {
		t.Fatal("expected rejection of a step missing its encouragement")
	}
}
