// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/antflydb/litgrade/ent/feedback"
	"github.com/google/uuid"
)

// FeedbackCreate is the builder for creating a Feedback entity.
type FeedbackCreate struct {
	config
	mutation *FeedbackMutation
	hooks    []Hook
}

// SetUUID sets the "uuid" field.
func (_c *FeedbackCreate) SetUUID(v uuid.UUID) *FeedbackCreate {
	_c.mutation.SetUUID(v)
	return _c
}

// SetNillableUUID sets the "uuid" field if the given value is not nil.
func (_c *FeedbackCreate) SetNillableUUID(v *uuid.UUID) *FeedbackCreate {
	if v != nil {
		_c.SetUUID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedbackCreate) SetCreatedAt(v time.Time) *FeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedbackCreate) SetNillableCreatedAt(v *time.Time) *FeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *FeedbackCreate) SetMessage(v string) *FeedbackCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetPredictionID sets the "prediction_id" field.
func (_c *FeedbackCreate) SetPredictionID(v string) *FeedbackCreate {
	_c.mutation.SetPredictionID(v)
	return _c
}

// SetNillablePredictionID sets the "prediction_id" field if the given value is not nil.
func (_c *FeedbackCreate) SetNillablePredictionID(v *string) *FeedbackCreate {
	if v != nil {
		_c.SetPredictionID(*v)
	}
	return _c
}

// SetLabel sets the "label" field.
func (_c *FeedbackCreate) SetLabel(v string) *FeedbackCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *FeedbackCreate) SetNillableLabel(v *string) *FeedbackCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// Mutation returns the FeedbackMutation object of the builder.
func (_c *FeedbackCreate) Mutation() *FeedbackMutation {
	return _c.mutation
}

// Save creates the Feedback in the database.
func (_c *FeedbackCreate) Save(ctx context.Context) (*Feedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackCreate) SaveX(ctx context.Context) *Feedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackCreate) defaults() {
	if _, ok := _c.mutation.UUID(); !ok {
		v := feedback.DefaultUUID()
		_c.mutation.SetUUID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.PredictionID(); !ok {
		v := feedback.DefaultPredictionID
		_c.mutation.SetPredictionID(v)
	}
	if _, ok := _c.mutation.Label(); !ok {
		v := feedback.DefaultLabel
		_c.mutation.SetLabel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackCreate) check() error {
	if _, ok := _c.mutation.UUID(); !ok {
		return &ValidationError{Name: "uuid", err: errors.New(`ent: missing required field "Feedback.uuid"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Feedback.created_at"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "Feedback.message"`)}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := feedback.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Feedback.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PredictionID(); !ok {
		return &ValidationError{Name: "prediction_id", err: errors.New(`ent: missing required field "Feedback.prediction_id"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "Feedback.label"`)}
	}
	return nil
}

func (_c *FeedbackCreate) sqlSave(ctx context.Context) (*Feedback, error) {
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

func (_c *FeedbackCreate) createSpec() (*Feedback, *sqlgraph.CreateSpec) {
	var (
		_node = &Feedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedback.Table, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UUID(); ok {
		_spec.SetField(feedback.FieldUUID, field.TypeUUID, value)
		_node.UUID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(feedback.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.PredictionID(); ok {
		_spec.SetField(feedback.FieldPredictionID, field.TypeString, value)
		_node.PredictionID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(feedback.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	return _node, _spec
}

// FeedbackCreateBulk is the builder for creating many Feedback entities in bulk.
type FeedbackCreateBulk struct {
	config
	err      error
	builders []*FeedbackCreate
}

// Save creates the Feedback entities in the database.
func (_c *FeedbackCreateBulk) Save(ctx context.Context) ([]*Feedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Feedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackMutation)
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
func (_c *FeedbackCreateBulk) SaveX(ctx context.Context) []*Feedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
