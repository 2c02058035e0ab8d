// Code generated by ent, DO NOT EDIT.

package concept

import (
	"entgo.io/ent/dialect/sql"
	"github.com/Yashshokeen-11/ALP/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldID, id))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldConceptID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldSubjectID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldTitle, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldDifficulty, v))
}

// EstimatedMins applies equality check predicate on the "estimated_mins" field. It's identical to EstimatedMinsEQ.
func EstimatedMins(v int) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldEstimatedMins, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldConceptID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldSubjectID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldTitle, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldDifficulty, v))
}

// EstimatedMinsEQ applies the EQ predicate on the "estimated_mins" field.
func EstimatedMinsEQ(v int) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldEstimatedMins, v))
}

// EstimatedMinsNEQ applies the NEQ predicate on the "estimated_mins" field.
func EstimatedMinsNEQ(v int) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldEstimatedMins, v))
}

// EstimatedMinsIn applies the In predicate on the "estimated_mins" field.
func EstimatedMinsIn(vs ...int) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldEstimatedMins, vs...))
}

// EstimatedMinsNotIn applies the NotIn predicate on the "estimated_mins" field.
func EstimatedMinsNotIn(vs ...int) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldEstimatedMins, vs...))
}

// EstimatedMinsGT applies the GT predicate on the "estimated_mins" field.
func EstimatedMinsGT(v int) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldEstimatedMins, v))
}

// EstimatedMinsGTE applies the GTE predicate on the "estimated_mins" field.
func EstimatedMinsGTE(v int) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldEstimatedMins, v))
}

// EstimatedMinsLT applies the LT predicate on the "estimated_mins" field.
func EstimatedMinsLT(v int) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldEstimatedMins, v))
}

// EstimatedMinsLTE applies the LTE predicate on the "estimated_mins" field.
func EstimatedMinsLTE(v int) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldEstimatedMins, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Concept) predicate.Concept {
	return predicate.Concept(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Concept) predicate.Concept {
	return predicate.Concept(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Concept) predicate.Concept {
	return predicate.Concept(sql.NotPredicates(p))
}
