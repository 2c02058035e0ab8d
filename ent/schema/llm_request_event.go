package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is the audit row written for each provider call,
// successful or not. The llm command reads these for transcripts,
// usage totals, and cost estimates.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Backend that served the call: anthropic, openai, gemini, openrouter"),
		field.String("model").
			Comment("Resolved model ID, after friendly-name translation"),
		field.String("purpose").
			Comment("Caller-supplied label such as narrate-plan or explain-concept"),
		field.Int("input_tokens").
			Default(0).
			Comment("Prompt tokens reported by the provider"),
		field.Int("output_tokens").
			Default(0).
			Comment("Completion tokens reported by the provider"),
		field.Int64("latency_ms").
			Default(0).
			Comment("End-to-end request duration"),
		field.Bool("success").
			Comment("False when the call returned an error"),
		field.String("error_message").
			Default("").
			Comment("Error text on failure, empty otherwise"),
		field.Text("request_body").
			Default("").
			Comment("Rendered prompt, kept so a bad response can be replayed"),
		field.Text("response_body").
			Default("").
			Comment("Raw model output, empty on failure"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
