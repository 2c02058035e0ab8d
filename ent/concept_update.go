// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yashshokeen-11/ALP/ent/concept"
	"github.com/Yashshokeen-11/ALP/ent/predicate"
)

// ConceptUpdate is the builder for updating Concept entities.
type ConceptUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptMutation
}

// Where appends a list predicates to the ConceptUpdate builder.
func (_u *ConceptUpdate) Where(ps ...predicate.Concept) *ConceptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ConceptUpdate) SetConceptID(v string) *ConceptUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableConceptID(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ConceptUpdate) SetSubjectID(v string) *ConceptUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableSubjectID(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ConceptUpdate) SetTitle(v string) *ConceptUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableTitle(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ConceptUpdate) SetDifficulty(v float64) *ConceptUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableDifficulty(v *float64) *ConceptUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ConceptUpdate) AddDifficulty(v float64) *ConceptUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetEstimatedMins sets the "estimated_mins" field.
func (_u *ConceptUpdate) SetEstimatedMins(v int) *ConceptUpdate {
	_u.mutation.ResetEstimatedMins()
	_u.mutation.SetEstimatedMins(v)
	return _u
}

// SetNillableEstimatedMins sets the "estimated_mins" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableEstimatedMins(v *int) *ConceptUpdate {
	if v != nil {
		_u.SetEstimatedMins(*v)
	}
	return _u
}

// AddEstimatedMins adds value to the "estimated_mins" field.
func (_u *ConceptUpdate) AddEstimatedMins(v int) *ConceptUpdate {
	_u.mutation.AddEstimatedMins(v)
	return _u
}

// Mutation returns the ConceptMutation object of the builder.
func (_u *ConceptUpdate) Mutation() *ConceptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptUpdate) check() error {
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := concept.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "Concept.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := concept.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Concept.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := concept.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Concept.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedMins(); ok {
		if err := concept.EstimatedMinsValidator(v); err != nil {
			return &ValidationError{Name: "estimated_mins", err: fmt.Errorf(`ent: validator failed for field "Concept.estimated_mins": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concept.Table, concept.Columns, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(concept.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(concept.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(concept.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(concept.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(concept.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstimatedMins(); ok {
		_spec.SetField(concept.FieldEstimatedMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMins(); ok {
		_spec.AddField(concept.FieldEstimatedMins, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptUpdateOne is the builder for updating a single Concept entity.
type ConceptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptMutation
}

// SetConceptID sets the "concept_id" field.
func (_u *ConceptUpdateOne) SetConceptID(v string) *ConceptUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableConceptID(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ConceptUpdateOne) SetSubjectID(v string) *ConceptUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableSubjectID(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ConceptUpdateOne) SetTitle(v string) *ConceptUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableTitle(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ConceptUpdateOne) SetDifficulty(v float64) *ConceptUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableDifficulty(v *float64) *ConceptUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ConceptUpdateOne) AddDifficulty(v float64) *ConceptUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetEstimatedMins sets the "estimated_mins" field.
func (_u *ConceptUpdateOne) SetEstimatedMins(v int) *ConceptUpdateOne {
	_u.mutation.ResetEstimatedMins()
	_u.mutation.SetEstimatedMins(v)
	return _u
}

// SetNillableEstimatedMins sets the "estimated_mins" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableEstimatedMins(v *int) *ConceptUpdateOne {
	if v != nil {
		_u.SetEstimatedMins(*v)
	}
	return _u
}

// AddEstimatedMins adds value to the "estimated_mins" field.
func (_u *ConceptUpdateOne) AddEstimatedMins(v int) *ConceptUpdateOne {
	_u.mutation.AddEstimatedMins(v)
	return _u
}

// Mutation returns the ConceptMutation object of the builder.
func (_u *ConceptUpdateOne) Mutation() *ConceptMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptUpdate builder.
func (_u *ConceptUpdateOne) Where(ps ...predicate.Concept) *ConceptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptUpdateOne) Select(field string, fields ...string) *ConceptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Concept entity.
func (_u *ConceptUpdateOne) Save(ctx context.Context) (*Concept, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptUpdateOne) SaveX(ctx context.Context) *Concept {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptUpdateOne) check() error {
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := concept.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "Concept.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := concept.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Concept.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := concept.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Concept.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedMins(); ok {
		if err := concept.EstimatedMinsValidator(v); err != nil {
			return &ValidationError{Name: "estimated_mins", err: fmt.Errorf(`ent: validator failed for field "Concept.estimated_mins": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptUpdateOne) sqlSave(ctx context.Context) (_node *Concept, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concept.Table, concept.Columns, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Concept.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, concept.FieldID)
		for _, f := range fields {
			if !concept.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != concept.FieldID {
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
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(concept.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(concept.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(concept.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(concept.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(concept.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstimatedMins(); ok {
		_spec.SetField(concept.FieldEstimatedMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMins(); ok {
		_spec.AddField(concept.FieldEstimatedMins, field.TypeInt, value)
	}
	_node = &Concept{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
