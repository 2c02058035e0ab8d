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
	"github.com/Yashshokeen-11/ALP/ent/masteryfact"
	"github.com/Yashshokeen-11/ALP/ent/predicate"
)

// MasteryFactUpdate is the builder for updating MasteryFact entities.
type MasteryFactUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryFactMutation
}

// Where appends a list predicates to the MasteryFactUpdate builder.
func (_u *MasteryFactUpdate) Where(ps ...predicate.MasteryFact) *MasteryFactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MasteryFactUpdate) SetLearnerID(v string) *MasteryFactUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MasteryFactUpdate) SetNillableLearnerID(v *string) *MasteryFactUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryFactUpdate) SetConceptID(v string) *MasteryFactUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryFactUpdate) SetNillableConceptID(v *string) *MasteryFactUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MasteryFactUpdate) SetScore(v float64) *MasteryFactUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MasteryFactUpdate) SetNillableScore(v *float64) *MasteryFactUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MasteryFactUpdate) AddScore(v float64) *MasteryFactUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryFactUpdate) SetUpdatedAt(v time.Time) *MasteryFactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryFactMutation object of the builder.
func (_u *MasteryFactUpdate) Mutation() *MasteryFactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryFactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryFactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryFactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryFactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryFactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := masteryfact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryFactUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := masteryfact.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryFact.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryfact.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryFact.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := masteryfact.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "MasteryFact.score": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryFactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryfact.Table, masteryfact.Columns, sqlgraph.NewFieldSpec(masteryfact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(masteryfact.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryfact.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(masteryfact.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(masteryfact.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryfact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryfact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryFactUpdateOne is the builder for updating a single MasteryFact entity.
type MasteryFactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryFactMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *MasteryFactUpdateOne) SetLearnerID(v string) *MasteryFactUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MasteryFactUpdateOne) SetNillableLearnerID(v *string) *MasteryFactUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryFactUpdateOne) SetConceptID(v string) *MasteryFactUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryFactUpdateOne) SetNillableConceptID(v *string) *MasteryFactUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MasteryFactUpdateOne) SetScore(v float64) *MasteryFactUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MasteryFactUpdateOne) SetNillableScore(v *float64) *MasteryFactUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MasteryFactUpdateOne) AddScore(v float64) *MasteryFactUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryFactUpdateOne) SetUpdatedAt(v time.Time) *MasteryFactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryFactMutation object of the builder.
func (_u *MasteryFactUpdateOne) Mutation() *MasteryFactMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryFactUpdate builder.
func (_u *MasteryFactUpdateOne) Where(ps ...predicate.MasteryFact) *MasteryFactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryFactUpdateOne) Select(field string, fields ...string) *MasteryFactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryFact entity.
func (_u *MasteryFactUpdateOne) Save(ctx context.Context) (*MasteryFact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryFactUpdateOne) SaveX(ctx context.Context) *MasteryFact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryFactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryFactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryFactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := masteryfact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryFactUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := masteryfact.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryFact.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryfact.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryFact.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := masteryfact.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "MasteryFact.score": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryFactUpdateOne) sqlSave(ctx context.Context) (_node *MasteryFact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryfact.Table, masteryfact.Columns, sqlgraph.NewFieldSpec(masteryfact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryFact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryfact.FieldID)
		for _, f := range fields {
			if !masteryfact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryfact.FieldID {
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
		_spec.SetField(masteryfact.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryfact.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(masteryfact.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(masteryfact.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryfact.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MasteryFact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryfact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
