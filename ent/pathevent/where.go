// Code generated by ent, DO NOT EDIT.

package pathevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Yashshokeen-11/ALP/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldLearnerID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldSubjectID, v))
}

// Threshold applies equality check predicate on the "threshold" field. It's identical to ThresholdEQ.
func Threshold(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldThreshold, v))
}

// ConceptCount applies equality check predicate on the "concept_count" field. It's identical to ConceptCountEQ.
func ConceptCount(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldConceptCount, v))
}

// GapCount applies equality check predicate on the "gap_count" field. It's identical to GapCountEQ.
func GapCount(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldGapCount, v))
}

// TotalMinutes applies equality check predicate on the "total_minutes" field. It's identical to TotalMinutesEQ.
func TotalMinutes(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldTotalMinutes, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldSubjectID, v))
}

// ThresholdEQ applies the EQ predicate on the "threshold" field.
func ThresholdEQ(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldThreshold, v))
}

// ThresholdNEQ applies the NEQ predicate on the "threshold" field.
func ThresholdNEQ(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldThreshold, v))
}

// ThresholdIn applies the In predicate on the "threshold" field.
func ThresholdIn(vs ...float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldThreshold, vs...))
}

// ThresholdNotIn applies the NotIn predicate on the "threshold" field.
func ThresholdNotIn(vs ...float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldThreshold, vs...))
}

// ThresholdGT applies the GT predicate on the "threshold" field.
func ThresholdGT(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldThreshold, v))
}

// ThresholdGTE applies the GTE predicate on the "threshold" field.
func ThresholdGTE(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldThreshold, v))
}

// ThresholdLT applies the LT predicate on the "threshold" field.
func ThresholdLT(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldThreshold, v))
}

// ThresholdLTE applies the LTE predicate on the "threshold" field.
func ThresholdLTE(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldThreshold, v))
}

// ConceptCountEQ applies the EQ predicate on the "concept_count" field.
func ConceptCountEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldConceptCount, v))
}

// ConceptCountNEQ applies the NEQ predicate on the "concept_count" field.
func ConceptCountNEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldConceptCount, v))
}

// ConceptCountIn applies the In predicate on the "concept_count" field.
func ConceptCountIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldConceptCount, vs...))
}

// ConceptCountNotIn applies the NotIn predicate on the "concept_count" field.
func ConceptCountNotIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldConceptCount, vs...))
}

// ConceptCountGT applies the GT predicate on the "concept_count" field.
func ConceptCountGT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldConceptCount, v))
}

// ConceptCountGTE applies the GTE predicate on the "concept_count" field.
func ConceptCountGTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldConceptCount, v))
}

// ConceptCountLT applies the LT predicate on the "concept_count" field.
func ConceptCountLT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldConceptCount, v))
}

// ConceptCountLTE applies the LTE predicate on the "concept_count" field.
func ConceptCountLTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldConceptCount, v))
}

// GapCountEQ applies the EQ predicate on the "gap_count" field.
func GapCountEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldGapCount, v))
}

// GapCountNEQ applies the NEQ predicate on the "gap_count" field.
func GapCountNEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldGapCount, v))
}

// GapCountIn applies the In predicate on the "gap_count" field.
func GapCountIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldGapCount, vs...))
}

// GapCountNotIn applies the NotIn predicate on the "gap_count" field.
func GapCountNotIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldGapCount, vs...))
}

// GapCountGT applies the GT predicate on the "gap_count" field.
func GapCountGT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldGapCount, v))
}

// GapCountGTE applies the GTE predicate on the "gap_count" field.
func GapCountGTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldGapCount, v))
}

// GapCountLT applies the LT predicate on the "gap_count" field.
func GapCountLT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldGapCount, v))
}

// GapCountLTE applies the LTE predicate on the "gap_count" field.
func GapCountLTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldGapCount, v))
}

// TotalMinutesEQ applies the EQ predicate on the "total_minutes" field.
func TotalMinutesEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldTotalMinutes, v))
}

// TotalMinutesNEQ applies the NEQ predicate on the "total_minutes" field.
func TotalMinutesNEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldTotalMinutes, v))
}

// TotalMinutesIn applies the In predicate on the "total_minutes" field.
func TotalMinutesIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldTotalMinutes, vs...))
}

// TotalMinutesNotIn applies the NotIn predicate on the "total_minutes" field.
func TotalMinutesNotIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldTotalMinutes, vs...))
}

// TotalMinutesGT applies the GT predicate on the "total_minutes" field.
func TotalMinutesGT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldTotalMinutes, v))
}

// TotalMinutesGTE applies the GTE predicate on the "total_minutes" field.
func TotalMinutesGTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldTotalMinutes, v))
}

// TotalMinutesLT applies the LT predicate on the "total_minutes" field.
func TotalMinutesLT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldTotalMinutes, v))
}

// TotalMinutesLTE applies the LTE predicate on the "total_minutes" field.
func TotalMinutesLTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldTotalMinutes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathEvent) predicate.PathEvent {
	return predicate.PathEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathEvent) predicate.PathEvent {
	return predicate.PathEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathEvent) predicate.PathEvent {
	return predicate.PathEvent(sql.NotPredicates(p))
}
