package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PrereqEdge is a directed prerequisite relationship between two concepts:
// the prerequisite must be satisfied before the dependent becomes reachable.
// The edge set restricted to one subject must stay acyclic; that invariant
// is enforced at import time, not by the database.
type PrereqEdge struct {
	ent.Schema
}

func (PrereqEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("prerequisite_id").
			NotEmpty().
			Comment("Concept that must be satisfied first"),
		field.String("dependent_id").
			NotEmpty().
			Comment("Concept unlocked by the prerequisite"),
		field.String("subject_id").
			NotEmpty().
			Comment("Subject both endpoints belong to"),
	}
}

func (PrereqEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prerequisite_id", "dependent_id").Unique(),
		index.Fields("subject_id"),
		index.Fields("dependent_id"),
	}
}
