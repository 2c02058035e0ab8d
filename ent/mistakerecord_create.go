// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yashshokeen-11/ALP/ent/mistakerecord"
)

// MistakeRecordCreate is the builder for creating a MistakeRecord entity.
type MistakeRecordCreate struct {
	config
	mutation *MistakeRecordMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *MistakeRecordCreate) SetLearnerID(v string) *MistakeRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *MistakeRecordCreate) SetConceptID(v string) *MistakeRecordCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *MistakeRecordCreate) SetKind(v string) *MistakeRecordCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *MistakeRecordCreate) SetCount(v int) *MistakeRecordCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *MistakeRecordCreate) SetNillableCount(v *int) *MistakeRecordCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *MistakeRecordCreate) SetLastSeen(v time.Time) *MistakeRecordCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// Mutation returns the MistakeRecordMutation object of the builder.
func (_c *MistakeRecordCreate) Mutation() *MistakeRecordMutation {
	return _c.mutation
}

// Save creates the MistakeRecord in the database.
func (_c *MistakeRecordCreate) Save(ctx context.Context) (*MistakeRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MistakeRecordCreate) SaveX(ctx context.Context) *MistakeRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MistakeRecordCreate) defaults() {
	if _, ok := _c.mutation.Count(); !ok {
		v := mistakerecord.DefaultCount
		_c.mutation.SetCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MistakeRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "MistakeRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := mistakerecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "MistakeRecord.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := mistakerecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "MistakeRecord.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := mistakerecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "MistakeRecord.count"`)}
	}
	if v, ok := _c.mutation.Count(); ok {
		if err := mistakerecord.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "MistakeRecord.count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "MistakeRecord.last_seen"`)}
	}
	return nil
}

func (_c *MistakeRecordCreate) sqlSave(ctx context.Context) (*MistakeRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MistakeRecordCreate) createSpec() (*MistakeRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MistakeRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mistakerecord.Table, sqlgraph.NewFieldSpec(mistakerecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(mistakerecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(mistakerecord.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(mistakerecord.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(mistakerecord.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(mistakerecord.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// MistakeRecordCreateBulk is the builder for creating many MistakeRecord entities in bulk.
type MistakeRecordCreateBulk struct {
	config
	err      error
	builders []*MistakeRecordCreate
}

// Save creates the MistakeRecord entities in the database.
func (_c *MistakeRecordCreateBulk) Save(ctx context.Context) ([]*MistakeRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MistakeRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MistakeRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MistakeRecordCreateBulk) SaveX(ctx context.Context) []*MistakeRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
