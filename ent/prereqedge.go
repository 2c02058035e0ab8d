// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Yashshokeen-11/ALP/ent/prereqedge"
)

// PrereqEdge is the model entity for the PrereqEdge schema.
type PrereqEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Concept that must be satisfied first
	PrerequisiteID string `json:"prerequisite_id,omitempty"`
	// Concept unlocked by the prerequisite
	DependentID string `json:"dependent_id,omitempty"`
	// Subject both endpoints belong to
	SubjectID    string `json:"subject_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PrereqEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prereqedge.FieldID:
			values[i] = new(sql.NullInt64)
		case prereqedge.FieldPrerequisiteID, prereqedge.FieldDependentID, prereqedge.FieldSubjectID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PrereqEdge fields.
func (_m *PrereqEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prereqedge.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case prereqedge.FieldPrerequisiteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prerequisite_id", values[i])
			} else if value.Valid {
				_m.PrerequisiteID = value.String
			}
		case prereqedge.FieldDependentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dependent_id", values[i])
			} else if value.Valid {
				_m.DependentID = value.String
			}
		case prereqedge.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PrereqEdge.
// This includes values selected through modifiers, order, etc.
func (_m *PrereqEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PrereqEdge.
// Note that you need to call PrereqEdge.Unwrap() before calling this method if this PrereqEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PrereqEdge) Update() *PrereqEdgeUpdateOne {
	return NewPrereqEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PrereqEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PrereqEdge) Unwrap() *PrereqEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PrereqEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PrereqEdge) String() string {
	var builder strings.Builder
	builder.WriteString("PrereqEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("prerequisite_id=")
	builder.WriteString(_m.PrerequisiteID)
	builder.WriteString(", ")
	builder.WriteString("dependent_id=")
	builder.WriteString(_m.DependentID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteByte(')')
	return builder.String()
}

// PrereqEdges is a parsable slice of PrereqEdge.
type PrereqEdges []*PrereqEdge
