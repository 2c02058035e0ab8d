// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConceptsColumns holds the columns for the "concepts" table.
	ConceptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "concept_id", Type: field.TypeString, Unique: true},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeFloat64, Default: 0},
		{Name: "estimated_mins", Type: field.TypeInt},
	}
	// ConceptsTable holds the schema information for the "concepts" table.
	ConceptsTable = &schema.Table{
		Name:       "concepts",
		Columns:    ConceptsColumns,
		PrimaryKey: []*schema.Column{ConceptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "concept_subject_id",
				Unique:  false,
				Columns: []*schema.Column{ConceptsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MasteryFactsColumns holds the columns for the "mastery_facts" table.
	MasteryFactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryFactsTable holds the schema information for the "mastery_facts" table.
	MasteryFactsTable = &schema.Table{
		Name:       "mastery_facts",
		Columns:    MasteryFactsColumns,
		PrimaryKey: []*schema.Column{MasteryFactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryfact_learner_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryFactsColumns[1], MasteryFactsColumns[2]},
			},
			{
				Name:    "masteryfact_concept_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryFactsColumns[2]},
			},
		},
	}
	// MistakeRecordsColumns holds the columns for the "mistake_records" table.
	MistakeRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "count", Type: field.TypeInt, Default: 1},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// MistakeRecordsTable holds the schema information for the "mistake_records" table.
	MistakeRecordsTable = &schema.Table{
		Name:       "mistake_records",
		Columns:    MistakeRecordsColumns,
		PrimaryKey: []*schema.Column{MistakeRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mistakerecord_learner_id_concept_id_kind",
				Unique:  true,
				Columns: []*schema.Column{MistakeRecordsColumns[1], MistakeRecordsColumns[2], MistakeRecordsColumns[3]},
			},
			{
				Name:    "mistakerecord_learner_id_kind",
				Unique:  false,
				Columns: []*schema.Column{MistakeRecordsColumns[1], MistakeRecordsColumns[3]},
			},
		},
	}
	// PathEventsColumns holds the columns for the "path_events" table.
	PathEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "threshold", Type: field.TypeFloat64},
		{Name: "concept_count", Type: field.TypeInt},
		{Name: "gap_count", Type: field.TypeInt},
		{Name: "total_minutes", Type: field.TypeInt},
	}
	// PathEventsTable holds the schema information for the "path_events" table.
	PathEventsTable = &schema.Table{
		Name:       "path_events",
		Columns:    PathEventsColumns,
		PrimaryKey: []*schema.Column{PathEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pathevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[1]},
			},
			{
				Name:    "pathevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[2]},
			},
			{
				Name:    "pathevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[3]},
			},
			{
				Name:    "pathevent_subject_id",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[4]},
			},
		},
	}
	// PrereqEdgesColumns holds the columns for the "prereq_edges" table.
	PrereqEdgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "prerequisite_id", Type: field.TypeString},
		{Name: "dependent_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
	}
	// PrereqEdgesTable holds the schema information for the "prereq_edges" table.
	PrereqEdgesTable = &schema.Table{
		Name:       "prereq_edges",
		Columns:    PrereqEdgesColumns,
		PrimaryKey: []*schema.Column{PrereqEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prereqedge_prerequisite_id_dependent_id",
				Unique:  true,
				Columns: []*schema.Column{PrereqEdgesColumns[1], PrereqEdgesColumns[2]},
			},
			{
				Name:    "prereqedge_subject_id",
				Unique:  false,
				Columns: []*schema.Column{PrereqEdgesColumns[3]},
			},
			{
				Name:    "prereqedge_dependent_id",
				Unique:  false,
				Columns: []*schema.Column{PrereqEdgesColumns[2]},
			},
		},
	}
	// ReviewStatesColumns holds the columns for the "review_states" table.
	ReviewStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeInt, Default: 0},
		{Name: "next_review_at", Type: field.TypeTime},
		{Name: "consecutive_hits", Type: field.TypeInt, Default: 0},
		{Name: "graduated", Type: field.TypeBool, Default: false},
		{Name: "last_review_at", Type: field.TypeTime},
	}
	// ReviewStatesTable holds the schema information for the "review_states" table.
	ReviewStatesTable = &schema.Table{
		Name:       "review_states",
		Columns:    ReviewStatesColumns,
		PrimaryKey: []*schema.Column{ReviewStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewstate_learner_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewStatesColumns[1], ReviewStatesColumns[2]},
			},
			{
				Name:    "reviewstate_learner_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewStatesColumns[1], ReviewStatesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConceptsTable,
		LlmRequestEventsTable,
		MasteryFactsTable,
		MistakeRecordsTable,
		PathEventsTable,
		PrereqEdgesTable,
		ReviewStatesTable,
	}
)

func init() {
}
