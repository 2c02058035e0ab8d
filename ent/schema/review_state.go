package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewState tracks the expanding-interval review position of one
// (learner, concept) pair: which stage of the ladder it sits on and when
// it next comes due.
type ReviewState struct {
	ent.Schema
}

func (ReviewState) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("concept_id").
			NotEmpty(),
		field.Int("stage").
			NonNegative().
			Default(0).
			Comment("Index into the review interval ladder"),
		field.Time("next_review_at"),
		field.Int("consecutive_hits").
			NonNegative().
			Default(0).
			Comment("Correct reviews in a row; graduation counts these"),
		field.Bool("graduated").
			Default(false),
		field.Time("last_review_at"),
	}
}

func (ReviewState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept_id").Unique(),
		index.Fields("learner_id", "next_review_at"),
	}
}
