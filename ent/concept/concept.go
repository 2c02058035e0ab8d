// Code generated by ent, DO NOT EDIT.

package concept

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the concept type in the database.
	Label = "concept"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldEstimatedMins holds the string denoting the estimated_mins field in the database.
	FieldEstimatedMins = "estimated_mins"
	// Table holds the table name of the concept in the database.
	Table = "concepts"
)

// Columns holds all SQL columns for concept fields.
var Columns = []string{
	FieldID,
	FieldConceptID,
	FieldSubjectID,
	FieldTitle,
	FieldDifficulty,
	FieldEstimatedMins,
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
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty float64
	// EstimatedMinsValidator is a validator for the "estimated_mins" field. It is called by the builders before save.
	EstimatedMinsValidator func(int) error
)

// OrderOption defines the ordering options for the Concept queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByEstimatedMins orders the results by the estimated_mins field.
func ByEstimatedMins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedMins, opts...).ToFunc()
}
