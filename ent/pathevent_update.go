// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yashshokeen-11/ALP/ent/pathevent"
	"github.com/Yashshokeen-11/ALP/ent/predicate"
)

// PathEventUpdate is the builder for updating PathEvent entities.
type PathEventUpdate struct {
	config
	hooks    []Hook
	mutation *PathEventMutation
}

// Where appends a list predicates to the PathEventUpdate builder.
func (_u *PathEventUpdate) Where(ps ...predicate.PathEvent) *PathEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PathEventUpdate) SetLearnerID(v string) *PathEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableLearnerID(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *PathEventUpdate) SetSubjectID(v string) *PathEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableSubjectID(v *string) *PathEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *PathEventUpdate) SetThreshold(v float64) *PathEventUpdate {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableThreshold(v *float64) *PathEventUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *PathEventUpdate) AddThreshold(v float64) *PathEventUpdate {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetConceptCount sets the "concept_count" field.
func (_u *PathEventUpdate) SetConceptCount(v int) *PathEventUpdate {
	_u.mutation.ResetConceptCount()
	_u.mutation.SetConceptCount(v)
	return _u
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableConceptCount(v *int) *PathEventUpdate {
	if v != nil {
		_u.SetConceptCount(*v)
	}
	return _u
}

// AddConceptCount adds value to the "concept_count" field.
func (_u *PathEventUpdate) AddConceptCount(v int) *PathEventUpdate {
	_u.mutation.AddConceptCount(v)
	return _u
}

// SetGapCount sets the "gap_count" field.
func (_u *PathEventUpdate) SetGapCount(v int) *PathEventUpdate {
	_u.mutation.ResetGapCount()
	_u.mutation.SetGapCount(v)
	return _u
}

// SetNillableGapCount sets the "gap_count" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableGapCount(v *int) *PathEventUpdate {
	if v != nil {
		_u.SetGapCount(*v)
	}
	return _u
}

// AddGapCount adds value to the "gap_count" field.
func (_u *PathEventUpdate) AddGapCount(v int) *PathEventUpdate {
	_u.mutation.AddGapCount(v)
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *PathEventUpdate) SetTotalMinutes(v int) *PathEventUpdate {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *PathEventUpdate) SetNillableTotalMinutes(v *int) *PathEventUpdate {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *PathEventUpdate) AddTotalMinutes(v int) *PathEventUpdate {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// Mutation returns the PathEventMutation object of the builder.
func (_u *PathEventUpdate) Mutation() *PathEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := pathevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PathEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := pathevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "PathEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptCount(); ok {
		if err := pathevent.ConceptCountValidator(v); err != nil {
			return &ValidationError{Name: "concept_count", err: fmt.Errorf(`ent: validator failed for field "PathEvent.concept_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GapCount(); ok {
		if err := pathevent.GapCountValidator(v); err != nil {
			return &ValidationError{Name: "gap_count", err: fmt.Errorf(`ent: validator failed for field "PathEvent.gap_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalMinutes(); ok {
		if err := pathevent.TotalMinutesValidator(v); err != nil {
			return &ValidationError{Name: "total_minutes", err: fmt.Errorf(`ent: validator failed for field "PathEvent.total_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *PathEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathevent.Table, pathevent.Columns, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(pathevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(pathevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(pathevent.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(pathevent.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConceptCount(); ok {
		_spec.SetField(pathevent.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptCount(); ok {
		_spec.AddField(pathevent.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GapCount(); ok {
		_spec.SetField(pathevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGapCount(); ok {
		_spec.AddField(pathevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(pathevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(pathevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathEventUpdateOne is the builder for updating a single PathEvent entity.
type PathEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *PathEventUpdateOne) SetLearnerID(v string) *PathEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableLearnerID(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *PathEventUpdateOne) SetSubjectID(v string) *PathEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableSubjectID(v *string) *PathEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *PathEventUpdateOne) SetThreshold(v float64) *PathEventUpdateOne {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableThreshold(v *float64) *PathEventUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *PathEventUpdateOne) AddThreshold(v float64) *PathEventUpdateOne {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetConceptCount sets the "concept_count" field.
func (_u *PathEventUpdateOne) SetConceptCount(v int) *PathEventUpdateOne {
	_u.mutation.ResetConceptCount()
	_u.mutation.SetConceptCount(v)
	return _u
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableConceptCount(v *int) *PathEventUpdateOne {
	if v != nil {
		_u.SetConceptCount(*v)
	}
	return _u
}

// AddConceptCount adds value to the "concept_count" field.
func (_u *PathEventUpdateOne) AddConceptCount(v int) *PathEventUpdateOne {
	_u.mutation.AddConceptCount(v)
	return _u
}

// SetGapCount sets the "gap_count" field.
func (_u *PathEventUpdateOne) SetGapCount(v int) *PathEventUpdateOne {
	_u.mutation.ResetGapCount()
	_u.mutation.SetGapCount(v)
	return _u
}

// SetNillableGapCount sets the "gap_count" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableGapCount(v *int) *PathEventUpdateOne {
	if v != nil {
		_u.SetGapCount(*v)
	}
	return _u
}

// AddGapCount adds value to the "gap_count" field.
func (_u *PathEventUpdateOne) AddGapCount(v int) *PathEventUpdateOne {
	_u.mutation.AddGapCount(v)
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *PathEventUpdateOne) SetTotalMinutes(v int) *PathEventUpdateOne {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *PathEventUpdateOne) SetNillableTotalMinutes(v *int) *PathEventUpdateOne {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *PathEventUpdateOne) AddTotalMinutes(v int) *PathEventUpdateOne {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// Mutation returns the PathEventMutation object of the builder.
func (_u *PathEventUpdateOne) Mutation() *PathEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PathEventUpdate builder.
func (_u *PathEventUpdateOne) Where(ps ...predicate.PathEvent) *PathEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathEventUpdateOne) Select(field string, fields ...string) *PathEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathEvent entity.
func (_u *PathEventUpdateOne) Save(ctx context.Context) (*PathEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathEventUpdateOne) SaveX(ctx context.Context) *PathEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := pathevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PathEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := pathevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "PathEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptCount(); ok {
		if err := pathevent.ConceptCountValidator(v); err != nil {
			return &ValidationError{Name: "concept_count", err: fmt.Errorf(`ent: validator failed for field "PathEvent.concept_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GapCount(); ok {
		if err := pathevent.GapCountValidator(v); err != nil {
			return &ValidationError{Name: "gap_count", err: fmt.Errorf(`ent: validator failed for field "PathEvent.gap_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalMinutes(); ok {
		if err := pathevent.TotalMinutesValidator(v); err != nil {
			return &ValidationError{Name: "total_minutes", err: fmt.Errorf(`ent: validator failed for field "PathEvent.total_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *PathEventUpdateOne) sqlSave(ctx context.Context) (_node *PathEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathevent.Table, pathevent.Columns, sqlgraph.NewFieldSpec(pathevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathevent.FieldID)
		for _, f := range fields {
			if !pathevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathevent.FieldID {
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
		_spec.SetField(pathevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(pathevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(pathevent.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(pathevent.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConceptCount(); ok {
		_spec.SetField(pathevent.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptCount(); ok {
		_spec.AddField(pathevent.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GapCount(); ok {
		_spec.SetField(pathevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGapCount(); ok {
		_spec.AddField(pathevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(pathevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(pathevent.FieldTotalMinutes, field.TypeInt, value)
	}
	_node = &PathEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
