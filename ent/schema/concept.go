package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Concept is a single teachable unit within a subject's curriculum.
type Concept struct {
	ent.Schema
}

func (Concept) Fields() []ent.Field {
	return []ent.Field{
		field.String("concept_id").
			NotEmpty().
			Unique().
			Comment("Opaque curriculum-wide concept identifier"),
		field.String("subject_id").
			NotEmpty().
			Comment("Subject this concept belongs to"),
		field.String("title").
			NotEmpty().
			Comment("Display title"),
		field.Float("difficulty").
			Default(0).
			Comment("Relative difficulty, conventionally 0-5"),
		field.Int("estimated_mins").
			Positive().
			Comment("Estimated completion time in minutes"),
	}
}

func (Concept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
	}
}
