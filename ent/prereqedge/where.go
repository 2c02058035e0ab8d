// Code generated by ent, DO NOT EDIT.

package prereqedge

import (
	"entgo.io/ent/dialect/sql"
	"github.com/Yashshokeen-11/ALP/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLTE(FieldID, id))
}

// PrerequisiteID applies equality check predicate on the "prerequisite_id" field. It's identical to PrerequisiteIDEQ.
func PrerequisiteID(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldPrerequisiteID, v))
}

// DependentID applies equality check predicate on the "dependent_id" field. It's identical to DependentIDEQ.
func DependentID(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldDependentID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldSubjectID, v))
}

// PrerequisiteIDEQ applies the EQ predicate on the "prerequisite_id" field.
func PrerequisiteIDEQ(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldPrerequisiteID, v))
}

// PrerequisiteIDNEQ applies the NEQ predicate on the "prerequisite_id" field.
func PrerequisiteIDNEQ(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNEQ(FieldPrerequisiteID, v))
}

// PrerequisiteIDIn applies the In predicate on the "prerequisite_id" field.
func PrerequisiteIDIn(vs ...string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldIn(FieldPrerequisiteID, vs...))
}

// PrerequisiteIDNotIn applies the NotIn predicate on the "prerequisite_id" field.
func PrerequisiteIDNotIn(vs ...string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNotIn(FieldPrerequisiteID, vs...))
}

// PrerequisiteIDGT applies the GT predicate on the "prerequisite_id" field.
func PrerequisiteIDGT(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGT(FieldPrerequisiteID, v))
}

// PrerequisiteIDGTE applies the GTE predicate on the "prerequisite_id" field.
func PrerequisiteIDGTE(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGTE(FieldPrerequisiteID, v))
}

// PrerequisiteIDLT applies the LT predicate on the "prerequisite_id" field.
func PrerequisiteIDLT(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLT(FieldPrerequisiteID, v))
}

// PrerequisiteIDLTE applies the LTE predicate on the "prerequisite_id" field.
func PrerequisiteIDLTE(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLTE(FieldPrerequisiteID, v))
}

// PrerequisiteIDContains applies the Contains predicate on the "prerequisite_id" field.
func PrerequisiteIDContains(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldContains(FieldPrerequisiteID, v))
}

// PrerequisiteIDHasPrefix applies the HasPrefix predicate on the "prerequisite_id" field.
func PrerequisiteIDHasPrefix(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldHasPrefix(FieldPrerequisiteID, v))
}

// PrerequisiteIDHasSuffix applies the HasSuffix predicate on the "prerequisite_id" field.
func PrerequisiteIDHasSuffix(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldHasSuffix(FieldPrerequisiteID, v))
}

// PrerequisiteIDEqualFold applies the EqualFold predicate on the "prerequisite_id" field.
func PrerequisiteIDEqualFold(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEqualFold(FieldPrerequisiteID, v))
}

// PrerequisiteIDContainsFold applies the ContainsFold predicate on the "prerequisite_id" field.
func PrerequisiteIDContainsFold(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldContainsFold(FieldPrerequisiteID, v))
}

// DependentIDEQ applies the EQ predicate on the "dependent_id" field.
func DependentIDEQ(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldDependentID, v))
}

// DependentIDNEQ applies the NEQ predicate on the "dependent_id" field.
func DependentIDNEQ(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNEQ(FieldDependentID, v))
}

// DependentIDIn applies the In predicate on the "dependent_id" field.
func DependentIDIn(vs ...string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldIn(FieldDependentID, vs...))
}

// DependentIDNotIn applies the NotIn predicate on the "dependent_id" field.
func DependentIDNotIn(vs ...string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNotIn(FieldDependentID, vs...))
}

// DependentIDGT applies the GT predicate on the "dependent_id" field.
func DependentIDGT(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGT(FieldDependentID, v))
}

// DependentIDGTE applies the GTE predicate on the "dependent_id" field.
func DependentIDGTE(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGTE(FieldDependentID, v))
}

// DependentIDLT applies the LT predicate on the "dependent_id" field.
func DependentIDLT(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLT(FieldDependentID, v))
}

// DependentIDLTE applies the LTE predicate on the "dependent_id" field.
func DependentIDLTE(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLTE(FieldDependentID, v))
}

// DependentIDContains applies the Contains predicate on the "dependent_id" field.
func DependentIDContains(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldContains(FieldDependentID, v))
}

// DependentIDHasPrefix applies the HasPrefix predicate on the "dependent_id" field.
func DependentIDHasPrefix(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldHasPrefix(FieldDependentID, v))
}

// DependentIDHasSuffix applies the HasSuffix predicate on the "dependent_id" field.
func DependentIDHasSuffix(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldHasSuffix(FieldDependentID, v))
}

// DependentIDEqualFold applies the EqualFold predicate on the "dependent_id" field.
func DependentIDEqualFold(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEqualFold(FieldDependentID, v))
}

// DependentIDContainsFold applies the ContainsFold predicate on the "dependent_id" field.
func DependentIDContainsFold(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldContainsFold(FieldDependentID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.FieldContainsFold(FieldSubjectID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PrereqEdge) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PrereqEdge) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PrereqEdge) predicate.PrereqEdge {
	return predicate.PrereqEdge(sql.NotPredicates(p))
}
