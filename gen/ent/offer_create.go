// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/flyerscan/offers-tracker/gen/ent/offer"
	"github.com/google/uuid"
)

// OfferCreate is the builder for creating a Offer entity.
type OfferCreate struct {
	config
	mutation *OfferMutation
	hooks    []Hook
}

// SetStoreName sets the "store_name" field.
func (_c *OfferCreate) SetStoreName(v string) *OfferCreate {
	_c.mutation.SetStoreName(v)
	return _c
}

// SetNillableStoreName sets the "store_name" field if the given value is not nil.
func (_c *OfferCreate) SetNillableStoreName(v *string) *OfferCreate {
	if v != nil {
		_c.SetStoreName(*v)
	}
	return _c
}

// SetProductName sets the "product_name" field.
func (_c *OfferCreate) SetProductName(v string) *OfferCreate {
	_c.mutation.SetProductName(v)
	return _c
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_c *OfferCreate) SetNillableProductName(v *string) *OfferCreate {
	if v != nil {
		_c.SetProductName(*v)
	}
	return _c
}

// SetBrand sets the "brand" field.
func (_c *OfferCreate) SetBrand(v string) *OfferCreate {
	_c.mutation.SetBrand(v)
	return _c
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_c *OfferCreate) SetNillableBrand(v *string) *OfferCreate {
	if v != nil {
		_c.SetBrand(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *OfferCreate) SetQuantity(v string) *OfferCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *OfferCreate) SetNillableQuantity(v *string) *OfferCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *OfferCreate) SetPrice(v string) *OfferCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *OfferCreate) SetNillablePrice(v *string) *OfferCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetOriginalPrice sets the "original_price" field.
func (_c *OfferCreate) SetOriginalPrice(v string) *OfferCreate {
	_c.mutation.SetOriginalPrice(v)
	return _c
}

// SetNillableOriginalPrice sets the "original_price" field if the given value is not nil.
func (_c *OfferCreate) SetNillableOriginalPrice(v *string) *OfferCreate {
	if v != nil {
		_c.SetOriginalPrice(*v)
	}
	return _c
}

// SetOfferDateStart sets the "offer_date_start" field.
func (_c *OfferCreate) SetOfferDateStart(v string) *OfferCreate {
	_c.mutation.SetOfferDateStart(v)
	return _c
}

// SetNillableOfferDateStart sets the "offer_date_start" field if the given value is not nil.
func (_c *OfferCreate) SetNillableOfferDateStart(v *string) *OfferCreate {
	if v != nil {
		_c.SetOfferDateStart(*v)
	}
	return _c
}

// SetOfferDateEnd sets the "offer_date_end" field.
func (_c *OfferCreate) SetOfferDateEnd(v string) *OfferCreate {
	_c.mutation.SetOfferDateEnd(v)
	return _c
}

// SetNillableOfferDateEnd sets the "offer_date_end" field if the given value is not nil.
func (_c *OfferCreate) SetNillableOfferDateEnd(v *string) *OfferCreate {
	if v != nil {
		_c.SetOfferDateEnd(*v)
	}
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *OfferCreate) SetSourceFile(v string) *OfferCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_c *OfferCreate) SetNillableSourceFile(v *string) *OfferCreate {
	if v != nil {
		_c.SetSourceFile(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OfferCreate) SetCreatedAt(v time.Time) *OfferCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OfferCreate) SetNillableCreatedAt(v *time.Time) *OfferCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OfferCreate) SetID(v uuid.UUID) *OfferCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OfferCreate) SetNillableID(v *uuid.UUID) *OfferCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the OfferMutation object of the builder.
func (_c *OfferCreate) Mutation() *OfferMutation {
	return _c.mutation
}

// Save creates the Offer in the database.
func (_c *OfferCreate) Save(ctx context.Context) (*Offer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OfferCreate) SaveX(ctx context.Context) *Offer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OfferCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OfferCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OfferCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := offer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := offer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OfferCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Offer.created_at"`)}
	}
	return nil
}

func (_c *OfferCreate) sqlSave(ctx context.Context) (*Offer, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OfferCreate) createSpec() (*Offer, *sqlgraph.CreateSpec) {
	var (
		_node = &Offer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(offer.Table, sqlgraph.NewFieldSpec(offer.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StoreName(); ok {
		_spec.SetField(offer.FieldStoreName, field.TypeString, value)
		_node.StoreName = value
	}
	if value, ok := _c.mutation.ProductName(); ok {
		_spec.SetField(offer.FieldProductName, field.TypeString, value)
		_node.ProductName = value
	}
	if value, ok := _c.mutation.Brand(); ok {
		_spec.SetField(offer.FieldBrand, field.TypeString, value)
		_node.Brand = &value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(offer.FieldQuantity, field.TypeString, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(offer.FieldPrice, field.TypeString, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.OriginalPrice(); ok {
		_spec.SetField(offer.FieldOriginalPrice, field.TypeString, value)
		_node.OriginalPrice = &value
	}
	if value, ok := _c.mutation.OfferDateStart(); ok {
		_spec.SetField(offer.FieldOfferDateStart, field.TypeString, value)
		_node.OfferDateStart = value
	}
	if value, ok := _c.mutation.OfferDateEnd(); ok {
		_spec.SetField(offer.FieldOfferDateEnd, field.TypeString, value)
		_node.OfferDateEnd = value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(offer.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(offer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OfferCreateBulk is the builder for creating many Offer entities in bulk.
type OfferCreateBulk struct {
	config
	err      error
	builders []*OfferCreate
}

// Save creates the Offer entities in the database.
func (_c *OfferCreateBulk) Save(ctx context.Context) ([]*Offer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Offer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OfferMutation)
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
func (_c *OfferCreateBulk) SaveX(ctx context.Context) []*Offer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OfferCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OfferCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
