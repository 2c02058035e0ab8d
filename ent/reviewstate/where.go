// Code generated by ent, DO NOT EDIT.

package reviewstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Yashshokeen-11/ALP/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldLearnerID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldConceptID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldStage, v))
}

// NextReviewAt applies equality check predicate on the "next_review_at" field. It's identical to NextReviewAtEQ.
func NextReviewAt(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldNextReviewAt, v))
}

// ConsecutiveHits applies equality check predicate on the "consecutive_hits" field. It's identical to ConsecutiveHitsEQ.
func ConsecutiveHits(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldConsecutiveHits, v))
}

// Graduated applies equality check predicate on the "graduated" field. It's identical to GraduatedEQ.
func Graduated(v bool) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldGraduated, v))
}

// LastReviewAt applies equality check predicate on the "last_review_at" field. It's identical to LastReviewAtEQ.
func LastReviewAt(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldLastReviewAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldContainsFold(FieldLearnerID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldContainsFold(FieldConceptID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldStage, v))
}

// NextReviewAtEQ applies the EQ predicate on the "next_review_at" field.
func NextReviewAtEQ(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldNextReviewAt, v))
}

// NextReviewAtNEQ applies the NEQ predicate on the "next_review_at" field.
func NextReviewAtNEQ(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldNextReviewAt, v))
}

// NextReviewAtIn applies the In predicate on the "next_review_at" field.
func NextReviewAtIn(vs ...time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldNextReviewAt, vs...))
}

// NextReviewAtNotIn applies the NotIn predicate on the "next_review_at" field.
func NextReviewAtNotIn(vs ...time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldNextReviewAt, vs...))
}

// NextReviewAtGT applies the GT predicate on the "next_review_at" field.
func NextReviewAtGT(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldNextReviewAt, v))
}

// NextReviewAtGTE applies the GTE predicate on the "next_review_at" field.
func NextReviewAtGTE(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldNextReviewAt, v))
}

// NextReviewAtLT applies the LT predicate on the "next_review_at" field.
func NextReviewAtLT(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldNextReviewAt, v))
}

// NextReviewAtLTE applies the LTE predicate on the "next_review_at" field.
func NextReviewAtLTE(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldNextReviewAt, v))
}

// ConsecutiveHitsEQ applies the EQ predicate on the "consecutive_hits" field.
func ConsecutiveHitsEQ(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldConsecutiveHits, v))
}

// ConsecutiveHitsNEQ applies the NEQ predicate on the "consecutive_hits" field.
func ConsecutiveHitsNEQ(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldConsecutiveHits, v))
}

// ConsecutiveHitsIn applies the In predicate on the "consecutive_hits" field.
func ConsecutiveHitsIn(vs ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldConsecutiveHits, vs...))
}

// ConsecutiveHitsNotIn applies the NotIn predicate on the "consecutive_hits" field.
func ConsecutiveHitsNotIn(vs ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldConsecutiveHits, vs...))
}

// ConsecutiveHitsGT applies the GT predicate on the "consecutive_hits" field.
func ConsecutiveHitsGT(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldConsecutiveHits, v))
}

// ConsecutiveHitsGTE applies the GTE predicate on the "consecutive_hits" field.
func ConsecutiveHitsGTE(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldConsecutiveHits, v))
}

// ConsecutiveHitsLT applies the LT predicate on the "consecutive_hits" field.
func ConsecutiveHitsLT(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldConsecutiveHits, v))
}

// ConsecutiveHitsLTE applies the LTE predicate on the "consecutive_hits" field.
func ConsecutiveHitsLTE(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldConsecutiveHits, v))
}

// GraduatedEQ applies the EQ predicate on the "graduated" field.
func GraduatedEQ(v bool) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldGraduated, v))
}

// GraduatedNEQ applies the NEQ predicate on the "graduated" field.
func GraduatedNEQ(v bool) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldGraduated, v))
}

// LastReviewAtEQ applies the EQ predicate on the "last_review_at" field.
func LastReviewAtEQ(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldLastReviewAt, v))
}

// LastReviewAtNEQ applies the NEQ predicate on the "last_review_at" field.
func LastReviewAtNEQ(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldLastReviewAt, v))
}

// LastReviewAtIn applies the In predicate on the "last_review_at" field.
func LastReviewAtIn(vs ...time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldLastReviewAt, vs...))
}

// LastReviewAtNotIn applies the NotIn predicate on the "last_review_at" field.
func LastReviewAtNotIn(vs ...time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldLastReviewAt, vs...))
}

// LastReviewAtGT applies the GT predicate on the "last_review_at" field.
func LastReviewAtGT(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldLastReviewAt, v))
}

// LastReviewAtGTE applies the GTE predicate on the "last_review_at" field.
func LastReviewAtGTE(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldLastReviewAt, v))
}

// LastReviewAtLT applies the LT predicate on the "last_review_at" field.
func LastReviewAtLT(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldLastReviewAt, v))
}

// LastReviewAtLTE applies the LTE predicate on the "last_review_at" field.
func LastReviewAtLTE(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldLastReviewAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewState) predicate.ReviewState {
	return predicate.ReviewState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewState) predicate.ReviewState {
	return predicate.ReviewState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewState) predicate.ReviewState {
	return predicate.ReviewState(sql.NotPredicates(p))
}
