// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Yashshokeen-11/ALP/ent/reviewstate"
)

// ReviewState is the model entity for the ReviewState schema.
type ReviewState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// Index into the review interval ladder
	Stage int `json:"stage,omitempty"`
	// NextReviewAt holds the value of the "next_review_at" field.
	NextReviewAt time.Time `json:"next_review_at,omitempty"`
	// Correct reviews in a row; graduation counts these
	ConsecutiveHits int `json:"consecutive_hits,omitempty"`
	// Graduated holds the value of the "graduated" field.
	Graduated bool `json:"graduated,omitempty"`
	// LastReviewAt holds the value of the "last_review_at" field.
	LastReviewAt time.Time `json:"last_review_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewstate.FieldGraduated:
			values[i] = new(sql.NullBool)
		case reviewstate.FieldID, reviewstate.FieldStage, reviewstate.FieldConsecutiveHits:
			values[i] = new(sql.NullInt64)
		case reviewstate.FieldLearnerID, reviewstate.FieldConceptID:
			values[i] = new(sql.NullString)
		case reviewstate.FieldNextReviewAt, reviewstate.FieldLastReviewAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewState fields.
func (_m *ReviewState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewstate.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case reviewstate.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case reviewstate.FieldStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = int(value.Int64)
			}
		case reviewstate.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				_m.NextReviewAt = value.Time
			}
		case reviewstate.FieldConsecutiveHits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_hits", values[i])
			} else if value.Valid {
				_m.ConsecutiveHits = int(value.Int64)
			}
		case reviewstate.FieldGraduated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field graduated", values[i])
			} else if value.Valid {
				_m.Graduated = value.Bool
			}
		case reviewstate.FieldLastReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_review_at", values[i])
			} else if value.Valid {
				_m.LastReviewAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewState.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewState.
// Note that you need to call ReviewState.Unwrap() before calling this method if this ReviewState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewState) Update() *ReviewStateUpdateOne {
	return NewReviewStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewState) Unwrap() *ReviewState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewState) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("next_review_at=")
	builder.WriteString(_m.NextReviewAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("consecutive_hits=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveHits))
	builder.WriteString(", ")
	builder.WriteString("graduated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Graduated))
	builder.WriteString(", ")
	builder.WriteString("last_review_at=")
	builder.WriteString(_m.LastReviewAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewStates is a parsable slice of ReviewState.
type ReviewStates []*ReviewState
