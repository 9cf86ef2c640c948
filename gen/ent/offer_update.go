// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/flyerscan/offers-tracker/gen/ent/offer"
	"github.com/flyerscan/offers-tracker/gen/ent/predicate"
)

// OfferUpdate is the builder for updating Offer entities.
type OfferUpdate struct {
	config
	hooks    []Hook
	mutation *OfferMutation
}

// Where appends a list predicates to the OfferUpdate builder.
func (_u *OfferUpdate) Where(ps ...predicate.Offer) *OfferUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStoreName sets the "store_name" field.
func (_u *OfferUpdate) SetStoreName(v string) *OfferUpdate {
	_u.mutation.SetStoreName(v)
	return _u
}

// SetNillableStoreName sets the "store_name" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableStoreName(v *string) *OfferUpdate {
	if v != nil {
		_u.SetStoreName(*v)
	}
	return _u
}

// ClearStoreName clears the value of the "store_name" field.
func (_u *OfferUpdate) ClearStoreName() *OfferUpdate {
	_u.mutation.ClearStoreName()
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *OfferUpdate) SetProductName(v string) *OfferUpdate {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableProductName(v *string) *OfferUpdate {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// ClearProductName clears the value of the "product_name" field.
func (_u *OfferUpdate) ClearProductName() *OfferUpdate {
	_u.mutation.ClearProductName()
	return _u
}

// SetBrand sets the "brand" field.
func (_u *OfferUpdate) SetBrand(v string) *OfferUpdate {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableBrand(v *string) *OfferUpdate {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// ClearBrand clears the value of the "brand" field.
func (_u *OfferUpdate) ClearBrand() *OfferUpdate {
	_u.mutation.ClearBrand()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *OfferUpdate) SetQuantity(v string) *OfferUpdate {
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableQuantity(v *string) *OfferUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *OfferUpdate) ClearQuantity() *OfferUpdate {
	_u.mutation.ClearQuantity()
	return _u
}

// SetPrice sets the "price" field.
func (_u *OfferUpdate) SetPrice(v string) *OfferUpdate {
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *OfferUpdate) SetNillablePrice(v *string) *OfferUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *OfferUpdate) ClearPrice() *OfferUpdate {
	_u.mutation.ClearPrice()
	return _u
}

// SetOriginalPrice sets the "original_price" field.
func (_u *OfferUpdate) SetOriginalPrice(v string) *OfferUpdate {
	_u.mutation.SetOriginalPrice(v)
	return _u
}

// SetNillableOriginalPrice sets the "original_price" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableOriginalPrice(v *string) *OfferUpdate {
	if v != nil {
		_u.SetOriginalPrice(*v)
	}
	return _u
}

// ClearOriginalPrice clears the value of the "original_price" field.
func (_u *OfferUpdate) ClearOriginalPrice() *OfferUpdate {
	_u.mutation.ClearOriginalPrice()
	return _u
}

// SetOfferDateStart sets the "offer_date_start" field.
func (_u *OfferUpdate) SetOfferDateStart(v string) *OfferUpdate {
	_u.mutation.SetOfferDateStart(v)
	return _u
}

// SetNillableOfferDateStart sets the "offer_date_start" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableOfferDateStart(v *string) *OfferUpdate {
	if v != nil {
		_u.SetOfferDateStart(*v)
	}
	return _u
}

// ClearOfferDateStart clears the value of the "offer_date_start" field.
func (_u *OfferUpdate) ClearOfferDateStart() *OfferUpdate {
	_u.mutation.ClearOfferDateStart()
	return _u
}

// SetOfferDateEnd sets the "offer_date_end" field.
func (_u *OfferUpdate) SetOfferDateEnd(v string) *OfferUpdate {
	_u.mutation.SetOfferDateEnd(v)
	return _u
}

// SetNillableOfferDateEnd sets the "offer_date_end" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableOfferDateEnd(v *string) *OfferUpdate {
	if v != nil {
		_u.SetOfferDateEnd(*v)
	}
	return _u
}

// ClearOfferDateEnd clears the value of the "offer_date_end" field.
func (_u *OfferUpdate) ClearOfferDateEnd() *OfferUpdate {
	_u.mutation.ClearOfferDateEnd()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *OfferUpdate) SetSourceFile(v string) *OfferUpdate {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableSourceFile(v *string) *OfferUpdate {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// ClearSourceFile clears the value of the "source_file" field.
func (_u *OfferUpdate) ClearSourceFile() *OfferUpdate {
	_u.mutation.ClearSourceFile()
	return _u
}

// Mutation returns the OfferMutation object of the builder.
func (_u *OfferUpdate) Mutation() *OfferMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OfferUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfferUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OfferUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfferUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OfferUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(offer.Table, offer.Columns, sqlgraph.NewFieldSpec(offer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StoreName(); ok {
		_spec.SetField(offer.FieldStoreName, field.TypeString, value)
	}
	if _u.mutation.StoreNameCleared() {
		_spec.ClearField(offer.FieldStoreName, field.TypeString)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(offer.FieldProductName, field.TypeString, value)
	}
	if _u.mutation.ProductNameCleared() {
		_spec.ClearField(offer.FieldProductName, field.TypeString)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(offer.FieldBrand, field.TypeString, value)
	}
	if _u.mutation.BrandCleared() {
		_spec.ClearField(offer.FieldBrand, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(offer.FieldQuantity, field.TypeString, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(offer.FieldQuantity, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(offer.FieldPrice, field.TypeString, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(offer.FieldPrice, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalPrice(); ok {
		_spec.SetField(offer.FieldOriginalPrice, field.TypeString, value)
	}
	if _u.mutation.OriginalPriceCleared() {
		_spec.ClearField(offer.FieldOriginalPrice, field.TypeString)
	}
	if value, ok := _u.mutation.OfferDateStart(); ok {
		_spec.SetField(offer.FieldOfferDateStart, field.TypeString, value)
	}
	if _u.mutation.OfferDateStartCleared() {
		_spec.ClearField(offer.FieldOfferDateStart, field.TypeString)
	}
	if value, ok := _u.mutation.OfferDateEnd(); ok {
		_spec.SetField(offer.FieldOfferDateEnd, field.TypeString, value)
	}
	if _u.mutation.OfferDateEndCleared() {
		_spec.ClearField(offer.FieldOfferDateEnd, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(offer.FieldSourceFile, field.TypeString, value)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(offer.FieldSourceFile, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{offer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OfferUpdateOne is the builder for updating a single Offer entity.
type OfferUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OfferMutation
}

// SetStoreName sets the "store_name" field.
func (_u *OfferUpdateOne) SetStoreName(v string) *OfferUpdateOne {
	_u.mutation.SetStoreName(v)
	return _u
}

// SetNillableStoreName sets the "store_name" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableStoreName(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetStoreName(*v)
	}
	return _u
}

// ClearStoreName clears the value of the "store_name" field.
func (_u *OfferUpdateOne) ClearStoreName() *OfferUpdateOne {
	_u.mutation.ClearStoreName()
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *OfferUpdateOne) SetProductName(v string) *OfferUpdateOne {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableProductName(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// ClearProductName clears the value of the "product_name" field.
func (_u *OfferUpdateOne) ClearProductName() *OfferUpdateOne {
	_u.mutation.ClearProductName()
	return _u
}

// SetBrand sets the "brand" field.
func (_u *OfferUpdateOne) SetBrand(v string) *OfferUpdateOne {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableBrand(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// ClearBrand clears the value of the "brand" field.
func (_u *OfferUpdateOne) ClearBrand() *OfferUpdateOne {
	_u.mutation.ClearBrand()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *OfferUpdateOne) SetQuantity(v string) *OfferUpdateOne {
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableQuantity(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *OfferUpdateOne) ClearQuantity() *OfferUpdateOne {
	_u.mutation.ClearQuantity()
	return _u
}

// SetPrice sets the "price" field.
func (_u *OfferUpdateOne) SetPrice(v string) *OfferUpdateOne {
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillablePrice(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *OfferUpdateOne) ClearPrice() *OfferUpdateOne {
	_u.mutation.ClearPrice()
	return _u
}

// SetOriginalPrice sets the "original_price" field.
func (_u *OfferUpdateOne) SetOriginalPrice(v string) *OfferUpdateOne {
	_u.mutation.SetOriginalPrice(v)
	return _u
}

// SetNillableOriginalPrice sets the "original_price" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableOriginalPrice(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetOriginalPrice(*v)
	}
	return _u
}

// ClearOriginalPrice clears the value of the "original_price" field.
func (_u *OfferUpdateOne) ClearOriginalPrice() *OfferUpdateOne {
	_u.mutation.ClearOriginalPrice()
	return _u
}

// SetOfferDateStart sets the "offer_date_start" field.
func (_u *OfferUpdateOne) SetOfferDateStart(v string) *OfferUpdateOne {
	_u.mutation.SetOfferDateStart(v)
	return _u
}

// SetNillableOfferDateStart sets the "offer_date_start" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableOfferDateStart(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetOfferDateStart(*v)
	}
	return _u
}

// ClearOfferDateStart clears the value of the "offer_date_start" field.
func (_u *OfferUpdateOne) ClearOfferDateStart() *OfferUpdateOne {
	_u.mutation.ClearOfferDateStart()
	return _u
}

// SetOfferDateEnd sets the "offer_date_end" field.
func (_u *OfferUpdateOne) SetOfferDateEnd(v string) *OfferUpdateOne {
	_u.mutation.SetOfferDateEnd(v)
	return _u
}

// SetNillableOfferDateEnd sets the "offer_date_end" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableOfferDateEnd(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetOfferDateEnd(*v)
	}
	return _u
}

// ClearOfferDateEnd clears the value of the "offer_date_end" field.
func (_u *OfferUpdateOne) ClearOfferDateEnd() *OfferUpdateOne {
	_u.mutation.ClearOfferDateEnd()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *OfferUpdateOne) SetSourceFile(v string) *OfferUpdateOne {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableSourceFile(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// ClearSourceFile clears the value of the "source_file" field.
func (_u *OfferUpdateOne) ClearSourceFile() *OfferUpdateOne {
	_u.mutation.ClearSourceFile()
	return _u
}

// Mutation returns the OfferMutation object of the builder.
func (_u *OfferUpdateOne) Mutation() *OfferMutation {
	return _u.mutation
}

// Where appends a list predicates to the OfferUpdate builder.
func (_u *OfferUpdateOne) Where(ps ...predicate.Offer) *OfferUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OfferUpdateOne) Select(field string, fields ...string) *OfferUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Offer entity.
func (_u *OfferUpdateOne) Save(ctx context.Context) (*Offer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfferUpdateOne) SaveX(ctx context.Context) *Offer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OfferUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfferUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OfferUpdateOne) sqlSave(ctx context.Context) (_node *Offer, err error) {
	_spec := sqlgraph.NewUpdateSpec(offer.Table, offer.Columns, sqlgraph.NewFieldSpec(offer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Offer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, offer.FieldID)
		for _, f := range fields {
			if !offer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != offer.FieldID {
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
	if value, ok := _u.mutation.StoreName(); ok {
		_spec.SetField(offer.FieldStoreName, field.TypeString, value)
	}
	if _u.mutation.StoreNameCleared() {
		_spec.ClearField(offer.FieldStoreName, field.TypeString)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(offer.FieldProductName, field.TypeString, value)
	}
	if _u.mutation.ProductNameCleared() {
		_spec.ClearField(offer.FieldProductName, field.TypeString)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(offer.FieldBrand, field.TypeString, value)
	}
	if _u.mutation.BrandCleared() {
		_spec.ClearField(offer.FieldBrand, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(offer.FieldQuantity, field.TypeString, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(offer.FieldQuantity, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(offer.FieldPrice, field.TypeString, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(offer.FieldPrice, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalPrice(); ok {
		_spec.SetField(offer.FieldOriginalPrice, field.TypeString, value)
	}
	if _u.mutation.OriginalPriceCleared() {
		_spec.ClearField(offer.FieldOriginalPrice, field.TypeString)
	}
	if value, ok := _u.mutation.OfferDateStart(); ok {
		_spec.SetField(offer.FieldOfferDateStart, field.TypeString, value)
	}
	if _u.mutation.OfferDateStartCleared() {
		_spec.ClearField(offer.FieldOfferDateStart, field.TypeString)
	}
	if value, ok := _u.mutation.OfferDateEnd(); ok {
		_spec.SetField(offer.FieldOfferDateEnd, field.TypeString, value)
	}
	if _u.mutation.OfferDateEndCleared() {
		_spec.ClearField(offer.FieldOfferDateEnd, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(offer.FieldSourceFile, field.TypeString, value)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(offer.FieldSourceFile, field.TypeString)
	}
	_node = &Offer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{offer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
