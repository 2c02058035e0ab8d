// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Yashshokeen-11/ALP/ent/concept"
)

// Concept is the model entity for the Concept schema.
type Concept struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque curriculum-wide concept identifier
	ConceptID string `json:"concept_id,omitempty"`
	// Subject this concept belongs to
	SubjectID string `json:"subject_id,omitempty"`
	// Display title
	Title string `json:"title,omitempty"`
	// Relative difficulty, conventionally 0-5
	Difficulty float64 `json:"difficulty,omitempty"`
	// Estimated completion time in minutes
	EstimatedMins int `json:"estimated_mins,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Concept) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case concept.FieldDifficulty:
			values[i] = new(sql.NullFloat64)
		case concept.FieldID, concept.FieldEstimatedMins:
			values[i] = new(sql.NullInt64)
		case concept.FieldConceptID, concept.FieldSubjectID, concept.FieldTitle:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Concept fields.
func (_m *Concept) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case concept.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case concept.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case concept.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case concept.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case concept.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.Float64
			}
		case concept.FieldEstimatedMins:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_mins", values[i])
			} else if value.Valid {
				_m.EstimatedMins = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Concept.
// This includes values selected through modifiers, order, etc.
func (_m *Concept) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Concept.
// Note that you need to call Concept.Unwrap() before calling this method if this Concept
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Concept) Update() *ConceptUpdateOne {
	return NewConceptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Concept entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Concept) Unwrap() *Concept {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Concept is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Concept) String() string {
	var builder strings.Builder
	builder.WriteString("Concept(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("estimated_mins=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedMins))
	builder.WriteByte(')')
	return builder.String()
}

// Concepts is a parsable slice of Concept.
type Concepts []*Concept
