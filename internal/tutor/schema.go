package tutor

import "github.com/Yashshokeen-11/ALP/internal/llm"

// NarrationSchema defines the JSON schema for study-plan narration.
var NarrationSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A short narration of a learning path: headline plus one note per step",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One encouraging sentence framing the whole plan",
			},
			"steps": map[string]any{
				"type":        "array",
				"description": "One entry per path step, in the same order as the plan",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"concept_id": map[string]any{
							"type":        "string",
							"description": "The concept ID this note belongs to",
						},
						"encouragement": map[string]any{
							"type":        "string",
							"description": "One short sentence on why this step matters or how to approach it",
						},
					},
					"required":             []any{"concept_id", "encouragement"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"headline", "steps"},
		"additionalProperties": false,
	},
}

// ExplanationSchema defines the JSON schema for concept explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "concept-explanation",
	Description: "A short introduction to one concept for one learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overview": map[string]any{
				"type":        "string",
				"description": "Two or three sentences on what the concept is",
			},
			"why_now": map[string]any{
				"type":        "string",
				"description": "One or two sentences connecting the concept to what the learner already knows and what it unlocks",
			},
			"first_steps": map[string]any{
				"type":        "array",
				"description": "Two or three concrete ways to start studying",
				"items": map[string]any{
					"type": "string",
				},
			},
		},
		"required":             []any{"overview", "why_now", "first_steps"},
		"additionalProperties": false,
	},
}
