// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yashshokeen-11/ALP/ent/reviewstate"
)

// ReviewStateCreate is the builder for creating a ReviewState entity.
type ReviewStateCreate struct {
	config
	mutation *ReviewStateMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ReviewStateCreate) SetLearnerID(v string) *ReviewStateCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *ReviewStateCreate) SetConceptID(v string) *ReviewStateCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ReviewStateCreate) SetStage(v int) *ReviewStateCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableStage(v *int) *ReviewStateCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *ReviewStateCreate) SetNextReviewAt(v time.Time) *ReviewStateCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetConsecutiveHits sets the "consecutive_hits" field.
func (_c *ReviewStateCreate) SetConsecutiveHits(v int) *ReviewStateCreate {
	_c.mutation.SetConsecutiveHits(v)
	return _c
}

// SetNillableConsecutiveHits sets the "consecutive_hits" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableConsecutiveHits(v *int) *ReviewStateCreate {
	if v != nil {
		_c.SetConsecutiveHits(*v)
	}
	return _c
}

// SetGraduated sets the "graduated" field.
func (_c *ReviewStateCreate) SetGraduated(v bool) *ReviewStateCreate {
	_c.mutation.SetGraduated(v)
	return _c
}

// SetNillableGraduated sets the "graduated" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableGraduated(v *bool) *ReviewStateCreate {
	if v != nil {
		_c.SetGraduated(*v)
	}
	return _c
}

// SetLastReviewAt sets the "last_review_at" field.
func (_c *ReviewStateCreate) SetLastReviewAt(v time.Time) *ReviewStateCreate {
	_c.mutation.SetLastReviewAt(v)
	return _c
}

// Mutation returns the ReviewStateMutation object of the builder.
func (_c *ReviewStateCreate) Mutation() *ReviewStateMutation {
	return _c.mutation
}

// Save creates the ReviewState in the database.
func (_c *ReviewStateCreate) Save(ctx context.Context) (*ReviewState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewStateCreate) SaveX(ctx context.Context) *ReviewState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewStateCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := reviewstate.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.ConsecutiveHits(); !ok {
		v := reviewstate.DefaultConsecutiveHits
		_c.mutation.SetConsecutiveHits(v)
	}
	if _, ok := _c.mutation.Graduated(); !ok {
		v := reviewstate.DefaultGraduated
		_c.mutation.SetGraduated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewStateCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ReviewState.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := reviewstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "ReviewState.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := reviewstate.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ReviewState.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := reviewstate.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ReviewState.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextReviewAt(); !ok {
		return &ValidationError{Name: "next_review_at", err: errors.New(`ent: missing required field "ReviewState.next_review_at"`)}
	}
	if _, ok := _c.mutation.ConsecutiveHits(); !ok {
		return &ValidationError{Name: "consecutive_hits", err: errors.New(`ent: missing required field "ReviewState.consecutive_hits"`)}
	}
	if v, ok := _c.mutation.ConsecutiveHits(); ok {
		if err := reviewstate.ConsecutiveHitsValidator(v); err != nil {
			return &ValidationError{Name: "consecutive_hits", err: fmt.Errorf(`ent: validator failed for field "ReviewState.consecutive_hits": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Graduated(); !ok {
		return &ValidationError{Name: "graduated", err: errors.New(`ent: missing required field "ReviewState.graduated"`)}
	}
	if _, ok := _c.mutation.LastReviewAt(); !ok {
		return &ValidationError{Name: "last_review_at", err: errors.New(`ent: missing required field "ReviewState.last_review_at"`)}
	}
	return nil
}

func (_c *ReviewStateCreate) sqlSave(ctx context.Context) (*ReviewState, error) {
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

func (_c *ReviewStateCreate) createSpec() (*ReviewState, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewstate.Table, sqlgraph.NewFieldSpec(reviewstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(reviewstate.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(reviewstate.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(reviewstate.FieldStage, field.TypeInt, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewstate.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = value
	}
	if value, ok := _c.mutation.ConsecutiveHits(); ok {
		_spec.SetField(reviewstate.FieldConsecutiveHits, field.TypeInt, value)
		_node.ConsecutiveHits = value
	}
	if value, ok := _c.mutation.Graduated(); ok {
		_spec.SetField(reviewstate.FieldGraduated, field.TypeBool, value)
		_node.Graduated = value
	}
	if value, ok := _c.mutation.LastReviewAt(); ok {
		_spec.SetField(reviewstate.FieldLastReviewAt, field.TypeTime, value)
		_node.LastReviewAt = value
	}
	return _node, _spec
}

// ReviewStateCreateBulk is the builder for creating many ReviewState entities in bulk.
type ReviewStateCreateBulk struct {
	config
	err      error
	builders []*ReviewStateCreate
}

// Save creates the ReviewState entities in the database.
func (_c *ReviewStateCreateBulk) Save(ctx context.Context) ([]*ReviewState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewStateMutation)
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
func (_c *ReviewStateCreateBulk) SaveX(ctx context.Context) []*ReviewState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
