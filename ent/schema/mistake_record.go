package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MistakeRecord aggregates observed mistakes of one kind on one concept:
// a running count plus the time of the most recent observation.
type MistakeRecord struct {
	ent.Schema
}

func (MistakeRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("concept_id").
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("One of the mistakes.Kind values"),
		field.Int("count").
			Positive().
			Default(1),
		field.Time("last_seen"),
	}
}

func (MistakeRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept_id", "kind").Unique(),
		index.Fields("learner_id", "kind"),
	}
}
