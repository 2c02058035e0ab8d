// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Yashshokeen-11/ALP/ent/pathevent"
)

// PathEvent is the model entity for the PathEvent schema.
type PathEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event order, shared across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// Mastery threshold the path was generated with
	Threshold float64 `json:"threshold,omitempty"`
	// Number of ordered concepts in the path
	ConceptCount int `json:"concept_count,omitempty"`
	// Number of prerequisite gaps reported alongside
	GapCount int `json:"gap_count,omitempty"`
	// Sum of estimated minutes over the ordered concepts
	TotalMinutes int `json:"total_minutes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathevent.FieldThreshold:
			values[i] = new(sql.NullFloat64)
		case pathevent.FieldID, pathevent.FieldSequence, pathevent.FieldConceptCount, pathevent.FieldGapCount, pathevent.FieldTotalMinutes:
			values[i] = new(sql.NullInt64)
		case pathevent.FieldLearnerID, pathevent.FieldSubjectID:
			values[i] = new(sql.NullString)
		case pathevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathEvent fields.
func (_m *PathEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pathevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case pathevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case pathevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case pathevent.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case pathevent.FieldThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field threshold", values[i])
			} else if value.Valid {
				_m.Threshold = value.Float64
			}
		case pathevent.FieldConceptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concept_count", values[i])
			} else if value.Valid {
				_m.ConceptCount = int(value.Int64)
			}
		case pathevent.FieldGapCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gap_count", values[i])
			} else if value.Valid {
				_m.GapCount = int(value.Int64)
			}
		case pathevent.FieldTotalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_minutes", values[i])
			} else if value.Valid {
				_m.TotalMinutes = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PathEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PathEvent.
// Note that you need to call PathEvent.Unwrap() before calling this method if this PathEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PathEvent) Update() *PathEventUpdateOne {
	return NewPathEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PathEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PathEvent) Unwrap() *PathEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PathEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PathEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.Threshold))
	builder.WriteString(", ")
	builder.WriteString("concept_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptCount))
	builder.WriteString(", ")
	builder.WriteString("gap_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.GapCount))
	builder.WriteString(", ")
	builder.WriteString("total_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMinutes))
	builder.WriteByte(')')
	return builder.String()
}

// PathEvents is a parsable slice of PathEvent.
type PathEvents []*PathEvent
