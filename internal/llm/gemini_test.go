package llm

import "testing"

func TestGeminiFriendlyNames(t *testing.T) {
	cases := []struct{ in, want string }{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tc := range cases {
		if got := resolveModel(tc.in, geminiModels); got != tc.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string"},
			"minutes":  map[string]any{"type": "integer"},
			"tone":     map[string]any{"type": "string", "enum": []any{"calm", "upbeat", "neutral"}},
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
		"required": []any{"headline", "minutes"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("root type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["headline"].Type != "STRING" {
		t.Errorf("headline type = %s, want STRING", schema.Properties["headline"].Type)
	}
	if schema.Properties["minutes"].Type != "INTEGER" {
		t.Errorf("minutes type = %s, want INTEGER", schema.Properties["minutes"].Type)
	}
	if len(schema.Properties["tone"].Enum) != 3 {
		t.Errorf("tone enum values = %d, want 3", len(schema.Properties["tone"].Enum))
	}

	steps := schema.Properties["steps"]
	if steps.Type != "ARRAY" {
		t.Fatalf("steps type = %s, want ARRAY", steps.Type)
	}
	if steps.Items.Type != "OBJECT" {
		t.Fatalf("steps item type = %s, want OBJECT", steps.Items.Type)
	}
	if steps.Items.Properties["concept_id"].Type != "STRING" {
		t.Errorf("concept_id type = %s, want STRING", steps.Items.Properties["concept_id"].Type)
	}
	if len(steps.Items.Required) != 2 {
		t.Errorf("step required fields = %d, want 2", len(steps.Items.Required))
	}
	if len(schema.Required) != 2 {
		t.Errorf("root required fields = %d, want 2", len(schema.Required))
	}
}
