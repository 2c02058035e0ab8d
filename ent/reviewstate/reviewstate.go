// Code generated by ent, DO NOT EDIT.

package reviewstate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewstate type in the database.
	Label = "review_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// FieldConsecutiveHits holds the string denoting the consecutive_hits field in the database.
	FieldConsecutiveHits = "consecutive_hits"
	// FieldGraduated holds the string denoting the graduated field in the database.
	FieldGraduated = "graduated"
	// FieldLastReviewAt holds the string denoting the last_review_at field in the database.
	FieldLastReviewAt = "last_review_at"
	// Table holds the table name of the reviewstate in the database.
	Table = "review_states"
)

// Columns holds all SQL columns for reviewstate fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldConceptID,
	FieldStage,
	FieldNextReviewAt,
	FieldConsecutiveHits,
	FieldGraduated,
	FieldLastReviewAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// DefaultStage holds the default value on creation for the "stage" field.
	DefaultStage int
	// StageValidator is a validator for the "stage" field. It is called by the builders before save.
	StageValidator func(int) error
	// DefaultConsecutiveHits holds the default value on creation for the "consecutive_hits" field.
	DefaultConsecutiveHits int
	// ConsecutiveHitsValidator is a validator for the "consecutive_hits" field. It is called by the builders before save.
	ConsecutiveHitsValidator func(int) error
	// DefaultGraduated holds the default value on creation for the "graduated" field.
	DefaultGraduated bool
)

// OrderOption defines the ordering options for the ReviewState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}

// ByConsecutiveHits orders the results by the consecutive_hits field.
func ByConsecutiveHits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveHits, opts...).ToFunc()
}

// ByGraduated orders the results by the graduated field.
func ByGraduated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraduated, opts...).ToFunc()
}

// ByLastReviewAt orders the results by the last_review_at field.
func ByLastReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewAt, opts...).ToFunc()
}
