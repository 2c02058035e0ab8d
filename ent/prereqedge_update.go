// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yashshokeen-11/ALP/ent/predicate"
	"github.com/Yashshokeen-11/ALP/ent/prereqedge"
)

// PrereqEdgeUpdate is the builder for updating PrereqEdge entities.
type PrereqEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *PrereqEdgeMutation
}

// Where appends a list predicates to the PrereqEdgeUpdate builder.
func (_u *PrereqEdgeUpdate) Where(ps ...predicate.PrereqEdge) *PrereqEdgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPrerequisiteID sets the "prerequisite_id" field.
func (_u *PrereqEdgeUpdate) SetPrerequisiteID(v string) *PrereqEdgeUpdate {
	_u.mutation.SetPrerequisiteID(v)
	return _u
}

// SetNillablePrerequisiteID sets the "prerequisite_id" field if the given value is not nil.
func (_u *PrereqEdgeUpdate) SetNillablePrerequisiteID(v *string) *PrereqEdgeUpdate {
	if v != nil {
		_u.SetPrerequisiteID(*v)
	}
	return _u
}

// SetDependentID sets the "dependent_id" field.
func (_u *PrereqEdgeUpdate) SetDependentID(v string) *PrereqEdgeUpdate {
	_u.mutation.SetDependentID(v)
	return _u
}

// SetNillableDependentID sets the "dependent_id" field if the given value is not nil.
func (_u *PrereqEdgeUpdate) SetNillableDependentID(v *string) *PrereqEdgeUpdate {
	if v != nil {
		_u.SetDependentID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *PrereqEdgeUpdate) SetSubjectID(v string) *PrereqEdgeUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *PrereqEdgeUpdate) SetNillableSubjectID(v *string) *PrereqEdgeUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// Mutation returns the PrereqEdgeMutation object of the builder.
func (_u *PrereqEdgeUpdate) Mutation() *PrereqEdgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrereqEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrereqEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrereqEdgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrereqEdgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrereqEdgeUpdate) check() error {
	if v, ok := _u.mutation.PrerequisiteID(); ok {
		if err := prereqedge.PrerequisiteIDValidator(v); err != nil {
			return &ValidationError{Name: "prerequisite_id", err: fmt.Errorf(`ent: validator failed for field "PrereqEdge.prerequisite_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DependentID(); ok {
		if err := prereqedge.DependentIDValidator(v); err != nil {
			return &ValidationError{Name: "dependent_id", err: fmt.Errorf(`ent: validator failed for field "PrereqEdge.dependent_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := prereqedge.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "PrereqEdge.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PrereqEdgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prereqedge.Table, prereqedge.Columns, sqlgraph.NewFieldSpec(prereqedge.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PrerequisiteID(); ok {
		_spec.SetField(prereqedge.FieldPrerequisiteID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DependentID(); ok {
		_spec.SetField(prereqedge.FieldDependentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(prereqedge.FieldSubjectID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prereqedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrereqEdgeUpdateOne is the builder for updating a single PrereqEdge entity.
type PrereqEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrereqEdgeMutation
}

// SetPrerequisiteID sets the "prerequisite_id" field.
func (_u *PrereqEdgeUpdateOne) SetPrerequisiteID(v string) *PrereqEdgeUpdateOne {
	_u.mutation.SetPrerequisiteID(v)
	return _u
}

// SetNillablePrerequisiteID sets the "prerequisite_id" field if the given value is not nil.
func (_u *PrereqEdgeUpdateOne) SetNillablePrerequisiteID(v *string) *PrereqEdgeUpdateOne {
	if v != nil {
		_u.SetPrerequisiteID(*v)
	}
	return _u
}

// SetDependentID sets the "dependent_id" field.
func (_u *PrereqEdgeUpdateOne) SetDependentID(v string) *PrereqEdgeUpdateOne {
	_u.mutation.SetDependentID(v)
	return _u
}

// SetNillableDependentID sets the "dependent_id" field if the given value is not nil.
func (_u *PrereqEdgeUpdateOne) SetNillableDependentID(v *string) *PrereqEdgeUpdateOne {
	if v != nil {
		_u.SetDependentID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *PrereqEdgeUpdateOne) SetSubjectID(v string) *PrereqEdgeUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *PrereqEdgeUpdateOne) SetNillableSubjectID(v *string) *PrereqEdgeUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// Mutation returns the PrereqEdgeMutation object of the builder.
func (_u *PrereqEdgeUpdateOne) Mutation() *PrereqEdgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the PrereqEdgeUpdate builder.
func (_u *PrereqEdgeUpdateOne) Where(ps ...predicate.PrereqEdge) *PrereqEdgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrereqEdgeUpdateOne) Select(field string, fields ...string) *PrereqEdgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PrereqEdge entity.
func (_u *PrereqEdgeUpdateOne) Save(ctx context.Context) (*PrereqEdge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrereqEdgeUpdateOne) SaveX(ctx context.Context) *PrereqEdge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrereqEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrereqEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrereqEdgeUpdateOne) check() error {
	if v, ok := _u.mutation.PrerequisiteID(); ok {
		if err := prereqedge.PrerequisiteIDValidator(v); err != nil {
			return &ValidationError{Name: "prerequisite_id", err: fmt.Errorf(`ent: validator failed for field "PrereqEdge.prerequisite_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DependentID(); ok {
		if err := prereqedge.DependentIDValidator(v); err != nil {
			return &ValidationError{Name: "dependent_id", err: fmt.Errorf(`ent: validator failed for field "PrereqEdge.dependent_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := prereqedge.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "PrereqEdge.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PrereqEdgeUpdateOne) sqlSave(ctx context.Context) (_node *PrereqEdge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prereqedge.Table, prereqedge.Columns, sqlgraph.NewFieldSpec(prereqedge.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PrereqEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prereqedge.FieldID)
		for _, f := range fields {
			if !prereqedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prereqedge.FieldID {
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
	if value, ok := _u.mutation.PrerequisiteID(); ok {
		_spec.SetField(prereqedge.FieldPrerequisiteID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DependentID(); ok {
		_spec.SetField(prereqedge.FieldDependentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(prereqedge.FieldSubjectID, field.TypeString, value)
	}
	_node = &PrereqEdge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prereqedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
