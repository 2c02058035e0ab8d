// Code generated by ent, DO NOT EDIT.

package prereqedge

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the prereqedge type in the database.
	Label = "prereq_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPrerequisiteID holds the string denoting the prerequisite_id field in the database.
	FieldPrerequisiteID = "prerequisite_id"
	// FieldDependentID holds the string denoting the dependent_id field in the database.
	FieldDependentID = "dependent_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// Table holds the table name of the prereqedge in the database.
	Table = "prereq_edges"
)

// Columns holds all SQL columns for prereqedge fields.
var Columns = []string{
	FieldID,
	FieldPrerequisiteID,
	FieldDependentID,
	FieldSubjectID,
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
	// PrerequisiteIDValidator is a validator for the "prerequisite_id" field. It is called by the builders before save.
	PrerequisiteIDValidator func(string) error
	// DependentIDValidator is a validator for the "dependent_id" field. It is called by the builders before save.
	DependentIDValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
)

// OrderOption defines the ordering options for the PrereqEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPrerequisiteID orders the results by the prerequisite_id field.
func ByPrerequisiteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrerequisiteID, opts...).ToFunc()
}

// ByDependentID orders the results by the dependent_id field.
func ByDependentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDependentID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}
