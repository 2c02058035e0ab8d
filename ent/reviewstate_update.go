// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yashshokeen-11/ALP/ent/predicate"
	"github.com/Yashshokeen-11/ALP/ent/reviewstate"
)

// ReviewStateUpdate is the builder for updating ReviewState entities.
type ReviewStateUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewStateMutation
}

// Where appends a list predicates to the ReviewStateUpdate builder.
func (_u *ReviewStateUpdate) Where(ps ...predicate.ReviewState) *ReviewStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewStateUpdate) SetLearnerID(v string) *ReviewStateUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableLearnerID(v *string) *ReviewStateUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ReviewStateUpdate) SetConceptID(v string) *ReviewStateUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableConceptID(v *string) *ReviewStateUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ReviewStateUpdate) SetStage(v int) *ReviewStateUpdate {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableStage(v *int) *ReviewStateUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *ReviewStateUpdate) AddStage(v int) *ReviewStateUpdate {
	_u.mutation.AddStage(v)
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewStateUpdate) SetNextReviewAt(v time.Time) *ReviewStateUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableNextReviewAt(v *time.Time) *ReviewStateUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetConsecutiveHits sets the "consecutive_hits" field.
func (_u *ReviewStateUpdate) SetConsecutiveHits(v int) *ReviewStateUpdate {
	_u.mutation.ResetConsecutiveHits()
	_u.mutation.SetConsecutiveHits(v)
	return _u
}

// SetNillableConsecutiveHits sets the "consecutive_hits" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableConsecutiveHits(v *int) *ReviewStateUpdate {
	if v != nil {
		_u.SetConsecutiveHits(*v)
	}
	return _u
}

// AddConsecutiveHits adds value to the "consecutive_hits" field.
func (_u *ReviewStateUpdate) AddConsecutiveHits(v int) *ReviewStateUpdate {
	_u.mutation.AddConsecutiveHits(v)
	return _u
}

// SetGraduated sets the "graduated" field.
func (_u *ReviewStateUpdate) SetGraduated(v bool) *ReviewStateUpdate {
	_u.mutation.SetGraduated(v)
	return _u
}

// SetNillableGraduated sets the "graduated" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableGraduated(v *bool) *ReviewStateUpdate {
	if v != nil {
		_u.SetGraduated(*v)
	}
	return _u
}

// SetLastReviewAt sets the "last_review_at" field.
func (_u *ReviewStateUpdate) SetLastReviewAt(v time.Time) *ReviewStateUpdate {
	_u.mutation.SetLastReviewAt(v)
	return _u
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableLastReviewAt(v *time.Time) *ReviewStateUpdate {
	if v != nil {
		_u.SetLastReviewAt(*v)
	}
	return _u
}

// Mutation returns the ReviewStateMutation object of the builder.
func (_u *ReviewStateUpdate) Mutation() *ReviewStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewStateUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := reviewstate.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := reviewstate.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ReviewState.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsecutiveHits(); ok {
		if err := reviewstate.ConsecutiveHitsValidator(v); err != nil {
			return &ValidationError{Name: "consecutive_hits", err: fmt.Errorf(`ent: validator failed for field "ReviewState.consecutive_hits": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewstate.Table, reviewstate.Columns, sqlgraph.NewFieldSpec(reviewstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(reviewstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(reviewstate.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(reviewstate.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(reviewstate.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewstate.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConsecutiveHits(); ok {
		_spec.SetField(reviewstate.FieldConsecutiveHits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveHits(); ok {
		_spec.AddField(reviewstate.FieldConsecutiveHits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Graduated(); ok {
		_spec.SetField(reviewstate.FieldGraduated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastReviewAt(); ok {
		_spec.SetField(reviewstate.FieldLastReviewAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewStateUpdateOne is the builder for updating a single ReviewState entity.
type ReviewStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewStateMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewStateUpdateOne) SetLearnerID(v string) *ReviewStateUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableLearnerID(v *string) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ReviewStateUpdateOne) SetConceptID(v string) *ReviewStateUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableConceptID(v *string) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ReviewStateUpdateOne) SetStage(v int) *ReviewStateUpdateOne {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableStage(v *int) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *ReviewStateUpdateOne) AddStage(v int) *ReviewStateUpdateOne {
	_u.mutation.AddStage(v)
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewStateUpdateOne) SetNextReviewAt(v time.Time) *ReviewStateUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableNextReviewAt(v *time.Time) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetConsecutiveHits sets the "consecutive_hits" field.
func (_u *ReviewStateUpdateOne) SetConsecutiveHits(v int) *ReviewStateUpdateOne {
	_u.mutation.ResetConsecutiveHits()
	_u.mutation.SetConsecutiveHits(v)
	return _u
}

// SetNillableConsecutiveHits sets the "consecutive_hits" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableConsecutiveHits(v *int) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetConsecutiveHits(*v)
	}
	return _u
}

// AddConsecutiveHits adds value to the "consecutive_hits" field.
func (_u *ReviewStateUpdateOne) AddConsecutiveHits(v int) *ReviewStateUpdateOne {
	_u.mutation.AddConsecutiveHits(v)
	return _u
}

// SetGraduated sets the "graduated" field.
func (_u *ReviewStateUpdateOne) SetGraduated(v bool) *ReviewStateUpdateOne {
	_u.mutation.SetGraduated(v)
	return _u
}

// SetNillableGraduated sets the "graduated" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableGraduated(v *bool) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetGraduated(*v)
	}
	return _u
}

// SetLastReviewAt sets the "last_review_at" field.
func (_u *ReviewStateUpdateOne) SetLastReviewAt(v time.Time) *ReviewStateUpdateOne {
	_u.mutation.SetLastReviewAt(v)
	return _u
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableLastReviewAt(v *time.Time) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetLastReviewAt(*v)
	}
	return _u
}

// Mutation returns the ReviewStateMutation object of the builder.
func (_u *ReviewStateUpdateOne) Mutation() *ReviewStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewStateUpdate builder.
func (_u *ReviewStateUpdateOne) Where(ps ...predicate.ReviewState) *ReviewStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewStateUpdateOne) Select(field string, fields ...string) *ReviewStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewState entity.
func (_u *ReviewStateUpdateOne) Save(ctx context.Context) (*ReviewState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewStateUpdateOne) SaveX(ctx context.Context) *ReviewState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewStateUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := reviewstate.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := reviewstate.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ReviewState.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsecutiveHits(); ok {
		if err := reviewstate.ConsecutiveHitsValidator(v); err != nil {
			return &ValidationError{Name: "consecutive_hits", err: fmt.Errorf(`ent: validator failed for field "ReviewState.consecutive_hits": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewStateUpdateOne) sqlSave(ctx context.Context) (_node *ReviewState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewstate.Table, reviewstate.Columns, sqlgraph.NewFieldSpec(reviewstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewstate.FieldID)
		for _, f := range fields {
			if !reviewstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(reviewstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(reviewstate.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(reviewstate.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(reviewstate.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewstate.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConsecutiveHits(); ok {
		_spec.SetField(reviewstate.FieldConsecutiveHits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveHits(); ok {
		_spec.AddField(reviewstate.FieldConsecutiveHits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Graduated(); ok {
		_spec.SetField(reviewstate.FieldGraduated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastReviewAt(); ok {
		_spec.SetField(reviewstate.FieldLastReviewAt, field.TypeTime, value)
	}
	_node = &ReviewState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
