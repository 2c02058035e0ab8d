// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yashshokeen-11/ALP/ent/mistakerecord"
	"github.com/Yashshokeen-11/ALP/ent/predicate"
)

// MistakeRecordDelete is the builder for deleting a MistakeRecord entity.
type MistakeRecordDelete struct {
	config
	hooks    []Hook
	mutation *MistakeRecordMutation
}

// Where appends a list predicates to the MistakeRecordDelete builder.
func (_d *MistakeRecordDelete) Where(ps ...predicate.MistakeRecord) *MistakeRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MistakeRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MistakeRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MistakeRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mistakerecord.Table, sqlgraph.NewFieldSpec(mistakerecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MistakeRecordDeleteOne is the builder for deleting a single MistakeRecord entity.
type MistakeRecordDeleteOne struct {
	_d *MistakeRecordDelete
}

// Where appends a list predicates to the MistakeRecordDelete builder.
func (_d *MistakeRecordDeleteOne) Where(ps ...predicate.MistakeRecord) *MistakeRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MistakeRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mistakerecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MistakeRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
