// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yashshokeen-11/ALP/ent/masteryfact"
)

// MasteryFactCreate is the builder for creating a MasteryFact entity.
type MasteryFactCreate struct {
	config
	mutation *MasteryFactMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *MasteryFactCreate) SetLearnerID(v string) *MasteryFactCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *MasteryFactCreate) SetConceptID(v string) *MasteryFactCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *MasteryFactCreate) SetScore(v float64) *MasteryFactCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MasteryFactCreate) SetUpdatedAt(v time.Time) *MasteryFactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MasteryFactCreate) SetNillableUpdatedAt(v *time.Time) *MasteryFactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MasteryFactMutation object of the builder.
func (_c *MasteryFactCreate) Mutation() *MasteryFactMutation {
	return _c.mutation
}

// Save creates the MasteryFact in the database.
func (_c *MasteryFactCreate) Save(ctx context.Context) (*MasteryFact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryFactCreate) SaveX(ctx context.Context) *MasteryFact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryFactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryFactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryFactCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := masteryfact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryFactCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "MasteryFact.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := masteryfact.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryFact.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "MasteryFact.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := masteryfact.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryFact.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "MasteryFact.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := masteryfact.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "MasteryFact.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MasteryFact.updated_at"`)}
	}
	return nil
}

func (_c *MasteryFactCreate) sqlSave(ctx context.Context) (*MasteryFact, error) {
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

func (_c *MasteryFactCreate) createSpec() (*MasteryFact, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryFact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryfact.Table, sqlgraph.NewFieldSpec(masteryfact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(masteryfact.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(masteryfact.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(masteryfact.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryfact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MasteryFactCreateBulk is the builder for creating many MasteryFact entities in bulk.
type MasteryFactCreateBulk struct {
	config
	err      error
	builders []*MasteryFactCreate
}

// Save creates the MasteryFact entities in the database.
func (_c *MasteryFactCreateBulk) Save(ctx context.Context) ([]*MasteryFact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryFact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryFactMutation)
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
func (_c *MasteryFactCreateBulk) SaveX(ctx context.Context) []*MasteryFact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryFactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryFactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
