package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathEvent records every generated learning path, so plans can be
// audited and compared after mastery data changes.
type PathEvent struct {
	ent.Schema
}

func (PathEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PathEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("subject_id").
			NotEmpty(),
		field.Float("threshold").
			Comment("Mastery threshold the path was generated with"),
		field.Int("concept_count").
			NonNegative().
			Comment("Number of ordered concepts in the path"),
		field.Int("gap_count").
			NonNegative().
			Comment("Number of prerequisite gaps reported alongside"),
		field.Int("total_minutes").
			NonNegative().
			Comment("Sum of estimated minutes over the ordered concepts"),
	}
}

func (PathEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("subject_id"),
	}
}
