// Code generated by ent, DO NOT EDIT.

package pathevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pathevent type in the database.
	Label = "path_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldThreshold holds the string denoting the threshold field in the database.
	FieldThreshold = "threshold"
	// FieldConceptCount holds the string denoting the concept_count field in the database.
	FieldConceptCount = "concept_count"
	// FieldGapCount holds the string denoting the gap_count field in the database.
	FieldGapCount = "gap_count"
	// FieldTotalMinutes holds the string denoting the total_minutes field in the database.
	FieldTotalMinutes = "total_minutes"
	// Table holds the table name of the pathevent in the database.
	Table = "path_events"
)

// Columns holds all SQL columns for pathevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLearnerID,
	FieldSubjectID,
	FieldThreshold,
	FieldConceptCount,
	FieldGapCount,
	FieldTotalMinutes,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// ConceptCountValidator is a validator for the "concept_count" field. It is called by the builders before save.
	ConceptCountValidator func(int) error
	// GapCountValidator is a validator for the "gap_count" field. It is called by the builders before save.
	GapCountValidator func(int) error
	// TotalMinutesValidator is a validator for the "total_minutes" field. It is called by the builders before save.
	TotalMinutesValidator func(int) error
)

// OrderOption defines the ordering options for the PathEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByThreshold orders the results by the threshold field.
func ByThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreshold, opts...).ToFunc()
}

// ByConceptCount orders the results by the concept_count field.
func ByConceptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptCount, opts...).ToFunc()
}

// ByGapCount orders the results by the gap_count field.
func ByGapCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGapCount, opts...).ToFunc()
}

// ByTotalMinutes orders the results by the total_minutes field.
func ByTotalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMinutes, opts...).ToFunc()
}
