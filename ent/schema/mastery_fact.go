package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryFact is the current mastery score for one (learner, concept) pair.
// Absence of a row means a score of zero. Scores are written by external
// assessment flows; the scheduler only reads them.
type MasteryFact struct {
	ent.Schema
}

func (MasteryFact) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("concept_id").
			NotEmpty(),
		field.Float("score").
			Range(0, 1).
			Comment("Mastery in [0,1]"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MasteryFact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept_id").Unique(),
		index.Fields("concept_id"),
	}
}
