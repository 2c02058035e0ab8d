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
	"github.com/Yashshokeen-11/ALP/ent/mistakerecord"
	"github.com/Yashshokeen-11/ALP/ent/predicate"
)

// MistakeRecordUpdate is the builder for updating MistakeRecord entities.
type MistakeRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MistakeRecordMutation
}

// Where appends a list predicates to the MistakeRecordUpdate builder.
func (_u *MistakeRecordUpdate) Where(ps ...predicate.MistakeRecord) *MistakeRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MistakeRecordUpdate) SetLearnerID(v string) *MistakeRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MistakeRecordUpdate) SetNillableLearnerID(v *string) *MistakeRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MistakeRecordUpdate) SetConceptID(v string) *MistakeRecordUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MistakeRecordUpdate) SetNillableConceptID(v *string) *MistakeRecordUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *MistakeRecordUpdate) SetKind(v string) *MistakeRecordUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *MistakeRecordUpdate) SetNillableKind(v *string) *MistakeRecordUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *MistakeRecordUpdate) SetCount(v int) *MistakeRecordUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *MistakeRecordUpdate) SetNillableCount(v *int) *MistakeRecordUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *MistakeRecordUpdate) AddCount(v int) *MistakeRecordUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *MistakeRecordUpdate) SetLastSeen(v time.Time) *MistakeRecordUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *MistakeRecordUpdate) SetNillableLastSeen(v *time.Time) *MistakeRecordUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the MistakeRecordMutation object of the builder.
func (_u *MistakeRecordUpdate) Mutation() *MistakeRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MistakeRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MistakeRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MistakeRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := mistakerecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := mistakerecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := mistakerecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Count(); ok {
		if err := mistakerecord.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.count": %w`, err)}
		}
	}
	return nil
}

func (_u *MistakeRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mistakerecord.Table, mistakerecord.Columns, sqlgraph.NewFieldSpec(mistakerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(mistakerecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(mistakerecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(mistakerecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(mistakerecord.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(mistakerecord.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(mistakerecord.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistakerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MistakeRecordUpdateOne is the builder for updating a single MistakeRecord entity.
type MistakeRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MistakeRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *MistakeRecordUpdateOne) SetLearnerID(v string) *MistakeRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MistakeRecordUpdateOne) SetNillableLearnerID(v *string) *MistakeRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MistakeRecordUpdateOne) SetConceptID(v string) *MistakeRecordUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MistakeRecordUpdateOne) SetNillableConceptID(v *string) *MistakeRecordUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *MistakeRecordUpdateOne) SetKind(v string) *MistakeRecordUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *MistakeRecordUpdateOne) SetNillableKind(v *string) *MistakeRecordUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *MistakeRecordUpdateOne) SetCount(v int) *MistakeRecordUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *MistakeRecordUpdateOne) SetNillableCount(v *int) *MistakeRecordUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *MistakeRecordUpdateOne) AddCount(v int) *MistakeRecordUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *MistakeRecordUpdateOne) SetLastSeen(v time.Time) *MistakeRecordUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *MistakeRecordUpdateOne) SetNillableLastSeen(v *time.Time) *MistakeRecordUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the MistakeRecordMutation object of the builder.
func (_u *MistakeRecordUpdateOne) Mutation() *MistakeRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MistakeRecordUpdate builder.
func (_u *MistakeRecordUpdateOne) Where(ps ...predicate.MistakeRecord) *MistakeRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MistakeRecordUpdateOne) Select(field string, fields ...string) *MistakeRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MistakeRecord entity.
func (_u *MistakeRecordUpdateOne) Save(ctx context.Context) (*MistakeRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeRecordUpdateOne) SaveX(ctx context.Context) *MistakeRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MistakeRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MistakeRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := mistakerecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := mistakerecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := mistakerecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Count(); ok {
		if err := mistakerecord.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.count": %w`, err)}
		}
	}
	return nil
}

func (_u *MistakeRecordUpdateOne) sqlSave(ctx context.Context) (_node *MistakeRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mistakerecord.Table, mistakerecord.Columns, sqlgraph.NewFieldSpec(mistakerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MistakeRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mistakerecord.FieldID)
		for _, f := range fields {
			if !mistakerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mistakerecord.FieldID {
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
		_spec.SetField(mistakerecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(mistakerecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(mistakerecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(mistakerecord.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(mistakerecord.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(mistakerecord.FieldLastSeen, field.TypeTime, value)
	}
	_node = &MistakeRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistakerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
