// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/flyerscan/offers-tracker/gen/ent/offer"
	"github.com/flyerscan/offers-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeOffer = "Offer"
)

// OfferMutation represents an operation that mutates the Offer nodes in the graph.
type OfferMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	store_name       *string
	product_name     *string
	brand            *string
	quantity         *string
	price            *string
	original_price   *string
	offer_date_start *string
	offer_date_end   *string
	source_file      *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Offer, error)
	predicates       []predicate.Offer
}

var _ ent.Mutation = (*OfferMutation)(nil)

// offerOption allows management of the mutation configuration using functional options.
type offerOption func(*OfferMutation)

// newOfferMutation creates new mutation for the Offer entity.
func newOfferMutation(c config, op Op, opts ...offerOption) *OfferMutation {
	m := &OfferMutation{
		config:        c,
		op:            op,
		typ:           TypeOffer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOfferID sets the ID field of the mutation.
func withOfferID(id uuid.UUID) offerOption {
	return func(m *OfferMutation) {
		var (
			err   error
			once  sync.Once
			value *Offer
		)
		m.oldValue = func(ctx context.Context) (*Offer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Offer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOffer sets the old Offer of the mutation.
func withOffer(node *Offer) offerOption {
	return func(m *OfferMutation) {
		m.oldValue = func(context.Context) (*Offer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OfferMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OfferMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Offer entities.
func (m *OfferMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OfferMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OfferMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Offer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStoreName sets the "store_name" field.
func (m *OfferMutation) SetStoreName(s string) {
	m.store_name = &s
}

// StoreName returns the value of the "store_name" field in the mutation.
func (m *OfferMutation) StoreName() (r string, exists bool) {
	v := m.store_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStoreName returns the old "store_name" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldStoreName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoreName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoreName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoreName: %w", err)
	}
	return oldValue.StoreName, nil
}

// ClearStoreName clears the value of the "store_name" field.
func (m *OfferMutation) ClearStoreName() {
	m.store_name = nil
	m.clearedFields[offer.FieldStoreName] = struct{}{}
}

// StoreNameCleared returns if the "store_name" field was cleared in this mutation.
func (m *OfferMutation) StoreNameCleared() bool {
	_, ok := m.clearedFields[offer.FieldStoreName]
	return ok
}

// ResetStoreName resets all changes to the "store_name" field.
func (m *OfferMutation) ResetStoreName() {
	m.store_name = nil
	delete(m.clearedFields, offer.FieldStoreName)
}

// SetProductName sets the "product_name" field.
func (m *OfferMutation) SetProductName(s string) {
	m.product_name = &s
}

// ProductName returns the value of the "product_name" field in the mutation.
func (m *OfferMutation) ProductName() (r string, exists bool) {
	v := m.product_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProductName returns the old "product_name" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldProductName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductName: %w", err)
	}
	return oldValue.ProductName, nil
}

// ClearProductName clears the value of the "product_name" field.
func (m *OfferMutation) ClearProductName() {
	m.product_name = nil
	m.clearedFields[offer.FieldProductName] = struct{}{}
}

// ProductNameCleared returns if the "product_name" field was cleared in this mutation.
func (m *OfferMutation) ProductNameCleared() bool {
	_, ok := m.clearedFields[offer.FieldProductName]
	return ok
}

// ResetProductName resets all changes to the "product_name" field.
func (m *OfferMutation) ResetProductName() {
	m.product_name = nil
	delete(m.clearedFields, offer.FieldProductName)
}

// SetBrand sets the "brand" field.
func (m *OfferMutation) SetBrand(s string) {
	m.brand = &s
}

// Brand returns the value of the "brand" field in the mutation.
func (m *OfferMutation) Brand() (r string, exists bool) {
	v := m.brand
	if v == nil {
		return
	}
	return *v, true
}

// OldBrand returns the old "brand" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldBrand(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrand: %w", err)
	}
	return oldValue.Brand, nil
}

// ClearBrand clears the value of the "brand" field.
func (m *OfferMutation) ClearBrand() {
	m.brand = nil
	m.clearedFields[offer.FieldBrand] = struct{}{}
}

// BrandCleared returns if the "brand" field was cleared in this mutation.
func (m *OfferMutation) BrandCleared() bool {
	_, ok := m.clearedFields[offer.FieldBrand]
	return ok
}

// ResetBrand resets all changes to the "brand" field.
func (m *OfferMutation) ResetBrand() {
	m.brand = nil
	delete(m.clearedFields, offer.FieldBrand)
}

// SetQuantity sets the "quantity" field.
func (m *OfferMutation) SetQuantity(s string) {
	m.quantity = &s
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *OfferMutation) Quantity() (r string, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldQuantity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// ClearQuantity clears the value of the "quantity" field.
func (m *OfferMutation) ClearQuantity() {
	m.quantity = nil
	m.clearedFields[offer.FieldQuantity] = struct{}{}
}

// QuantityCleared returns if the "quantity" field was cleared in this mutation.
func (m *OfferMutation) QuantityCleared() bool {
	_, ok := m.clearedFields[offer.FieldQuantity]
	return ok
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *OfferMutation) ResetQuantity() {
	m.quantity = nil
	delete(m.clearedFields, offer.FieldQuantity)
}

// SetPrice sets the "price" field.
func (m *OfferMutation) SetPrice(s string) {
	m.price = &s
}

// Price returns the value of the "price" field in the mutation.
func (m *OfferMutation) Price() (r string, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldPrice(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// ClearPrice clears the value of the "price" field.
func (m *OfferMutation) ClearPrice() {
	m.price = nil
	m.clearedFields[offer.FieldPrice] = struct{}{}
}

// PriceCleared returns if the "price" field was cleared in this mutation.
func (m *OfferMutation) PriceCleared() bool {
	_, ok := m.clearedFields[offer.FieldPrice]
	return ok
}

// ResetPrice resets all changes to the "price" field.
func (m *OfferMutation) ResetPrice() {
	m.price = nil
	delete(m.clearedFields, offer.FieldPrice)
}

// SetOriginalPrice sets the "original_price" field.
func (m *OfferMutation) SetOriginalPrice(s string) {
	m.original_price = &s
}

// OriginalPrice returns the value of the "original_price" field in the mutation.
func (m *OfferMutation) OriginalPrice() (r string, exists bool) {
	v := m.original_price
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalPrice returns the old "original_price" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldOriginalPrice(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalPrice: %w", err)
	}
	return oldValue.OriginalPrice, nil
}

// ClearOriginalPrice clears the value of the "original_price" field.
func (m *OfferMutation) ClearOriginalPrice() {
	m.original_price = nil
	m.clearedFields[offer.FieldOriginalPrice] = struct{}{}
}

// OriginalPriceCleared returns if the "original_price" field was cleared in this mutation.
func (m *OfferMutation) OriginalPriceCleared() bool {
	_, ok := m.clearedFields[offer.FieldOriginalPrice]
	return ok
}

// ResetOriginalPrice resets all changes to the "original_price" field.
func (m *OfferMutation) ResetOriginalPrice() {
	m.original_price = nil
	delete(m.clearedFields, offer.FieldOriginalPrice)
}

// SetOfferDateStart sets the "offer_date_start" field.
func (m *OfferMutation) SetOfferDateStart(s string) {
	m.offer_date_start = &s
}

// OfferDateStart returns the value of the "offer_date_start" field in the mutation.
func (m *OfferMutation) OfferDateStart() (r string, exists bool) {
	v := m.offer_date_start
	if v == nil {
		return
	}
	return *v, true
}

// OldOfferDateStart returns the old "offer_date_start" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldOfferDateStart(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfferDateStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfferDateStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfferDateStart: %w", err)
	}
	return oldValue.OfferDateStart, nil
}

// ClearOfferDateStart clears the value of the "offer_date_start" field.
func (m *OfferMutation) ClearOfferDateStart() {
	m.offer_date_start = nil
	m.clearedFields[offer.FieldOfferDateStart] = struct{}{}
}

// OfferDateStartCleared returns if the "offer_date_start" field was cleared in this mutation.
func (m *OfferMutation) OfferDateStartCleared() bool {
	_, ok := m.clearedFields[offer.FieldOfferDateStart]
	return ok
}

// ResetOfferDateStart resets all changes to the "offer_date_start" field.
func (m *OfferMutation) ResetOfferDateStart() {
	m.offer_date_start = nil
	delete(m.clearedFields, offer.FieldOfferDateStart)
}

// SetOfferDateEnd sets the "offer_date_end" field.
func (m *OfferMutation) SetOfferDateEnd(s string) {
	m.offer_date_end = &s
}

// OfferDateEnd returns the value of the "offer_date_end" field in the mutation.
func (m *OfferMutation) OfferDateEnd() (r string, exists bool) {
	v := m.offer_date_end
	if v == nil {
		return
	}
	return *v, true
}

// OldOfferDateEnd returns the old "offer_date_end" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldOfferDateEnd(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfferDateEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfferDateEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfferDateEnd: %w", err)
	}
	return oldValue.OfferDateEnd, nil
}

// ClearOfferDateEnd clears the value of the "offer_date_end" field.
func (m *OfferMutation) ClearOfferDateEnd() {
	m.offer_date_end = nil
	m.clearedFields[offer.FieldOfferDateEnd] = struct{}{}
}

// OfferDateEndCleared returns if the "offer_date_end" field was cleared in this mutation.
func (m *OfferMutation) OfferDateEndCleared() bool {
	_, ok := m.clearedFields[offer.FieldOfferDateEnd]
	return ok
}

// ResetOfferDateEnd resets all changes to the "offer_date_end" field.
func (m *OfferMutation) ResetOfferDateEnd() {
	m.offer_date_end = nil
	delete(m.clearedFields, offer.FieldOfferDateEnd)
}

// SetSourceFile sets the "source_file" field.
func (m *OfferMutation) SetSourceFile(s string) {
	m.source_file = &s
}

// SourceFile returns the value of the "source_file" field in the mutation.
func (m *OfferMutation) SourceFile() (r string, exists bool) {
	v := m.source_file
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFile returns the old "source_file" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldSourceFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFile: %w", err)
	}
	return oldValue.SourceFile, nil
}

// ClearSourceFile clears the value of the "source_file" field.
func (m *OfferMutation) ClearSourceFile() {
	m.source_file = nil
	m.clearedFields[offer.FieldSourceFile] = struct{}{}
}

// SourceFileCleared returns if the "source_file" field was cleared in this mutation.
func (m *OfferMutation) SourceFileCleared() bool {
	_, ok := m.clearedFields[offer.FieldSourceFile]
	return ok
}

// ResetSourceFile resets all changes to the "source_file" field.
func (m *OfferMutation) ResetSourceFile() {
	m.source_file = nil
	delete(m.clearedFields, offer.FieldSourceFile)
}

// SetCreatedAt sets the "created_at" field.
func (m *OfferMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OfferMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OfferMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the OfferMutation builder.
func (m *OfferMutation) Where(ps ...predicate.Offer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OfferMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OfferMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Offer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OfferMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OfferMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Offer).
func (m *OfferMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OfferMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.store_name != nil {
		fields = append(fields, offer.FieldStoreName)
	}
	if m.product_name != nil {
		fields = append(fields, offer.FieldProductName)
	}
	if m.brand != nil {
		fields = append(fields, offer.FieldBrand)
	}
	if m.quantity != nil {
		fields = append(fields, offer.FieldQuantity)
	}
	if m.price != nil {
		fields = append(fields, offer.FieldPrice)
	}
	if m.original_price != nil {
		fields = append(fields, offer.FieldOriginalPrice)
	}
	if m.offer_date_start != nil {
		fields = append(fields, offer.FieldOfferDateStart)
	}
	if m.offer_date_end != nil {
		fields = append(fields, offer.FieldOfferDateEnd)
	}
	if m.source_file != nil {
		fields = append(fields, offer.FieldSourceFile)
	}
	if m.created_at != nil {
		fields = append(fields, offer.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OfferMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case offer.FieldStoreName:
		return m.StoreName()
	case offer.FieldProductName:
		return m.ProductName()
	case offer.FieldBrand:
		return m.Brand()
	case offer.FieldQuantity:
		return m.Quantity()
	case offer.FieldPrice:
		return m.Price()
	case offer.FieldOriginalPrice:
		return m.OriginalPrice()
	case offer.FieldOfferDateStart:
		return m.OfferDateStart()
	case offer.FieldOfferDateEnd:
		return m.OfferDateEnd()
	case offer.FieldSourceFile:
		return m.SourceFile()
	case offer.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OfferMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case offer.FieldStoreName:
		return m.OldStoreName(ctx)
	case offer.FieldProductName:
		return m.OldProductName(ctx)
	case offer.FieldBrand:
		return m.OldBrand(ctx)
	case offer.FieldQuantity:
		return m.OldQuantity(ctx)
	case offer.FieldPrice:
		return m.OldPrice(ctx)
	case offer.FieldOriginalPrice:
		return m.OldOriginalPrice(ctx)
	case offer.FieldOfferDateStart:
		return m.OldOfferDateStart(ctx)
	case offer.FieldOfferDateEnd:
		return m.OldOfferDateEnd(ctx)
	case offer.FieldSourceFile:
		return m.OldSourceFile(ctx)
	case offer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Offer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OfferMutation) SetField(name string, value ent.Value) error {
	switch name {
	case offer.FieldStoreName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoreName(v)
		return nil
	case offer.FieldProductName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductName(v)
		return nil
	case offer.FieldBrand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrand(v)
		return nil
	case offer.FieldQuantity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case offer.FieldPrice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case offer.FieldOriginalPrice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalPrice(v)
		return nil
	case offer.FieldOfferDateStart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfferDateStart(v)
		return nil
	case offer.FieldOfferDateEnd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfferDateEnd(v)
		return nil
	case offer.FieldSourceFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFile(v)
		return nil
	case offer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Offer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OfferMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OfferMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OfferMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Offer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OfferMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(offer.FieldStoreName) {
		fields = append(fields, offer.FieldStoreName)
	}
	if m.FieldCleared(offer.FieldProductName) {
		fields = append(fields, offer.FieldProductName)
	}
	if m.FieldCleared(offer.FieldBrand) {
		fields = append(fields, offer.FieldBrand)
	}
	if m.FieldCleared(offer.FieldQuantity) {
		fields = append(fields, offer.FieldQuantity)
	}
	if m.FieldCleared(offer.FieldPrice) {
		fields = append(fields, offer.FieldPrice)
	}
	if m.FieldCleared(offer.FieldOriginalPrice) {
		fields = append(fields, offer.FieldOriginalPrice)
	}
	if m.FieldCleared(offer.FieldOfferDateStart) {
		fields = append(fields, offer.FieldOfferDateStart)
	}
	if m.FieldCleared(offer.FieldOfferDateEnd) {
		fields = append(fields, offer.FieldOfferDateEnd)
	}
	if m.FieldCleared(offer.FieldSourceFile) {
		fields = append(fields, offer.FieldSourceFile)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OfferMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OfferMutation) ClearField(name string) error {
	switch name {
	case offer.FieldStoreName:
		m.ClearStoreName()
		return nil
	case offer.FieldProductName:
		m.ClearProductName()
		return nil
	case offer.FieldBrand:
		m.ClearBrand()
		return nil
	case offer.FieldQuantity:
		m.ClearQuantity()
		return nil
	case offer.FieldPrice:
		m.ClearPrice()
		return nil
	case offer.FieldOriginalPrice:
		m.ClearOriginalPrice()
		return nil
	case offer.FieldOfferDateStart:
		m.ClearOfferDateStart()
		return nil
	case offer.FieldOfferDateEnd:
		m.ClearOfferDateEnd()
		return nil
	case offer.FieldSourceFile:
		m.ClearSourceFile()
		return nil
	}
	return fmt.Errorf("unknown Offer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OfferMutation) ResetField(name string) error {
	switch name {
	case offer.FieldStoreName:
		m.ResetStoreName()
		return nil
	case offer.FieldProductName:
		m.ResetProductName()
		return nil
	case offer.FieldBrand:
		m.ResetBrand()
		return nil
	case offer.FieldQuantity:
		m.ResetQuantity()
		return nil
	case offer.FieldPrice:
		m.ResetPrice()
		return nil
	case offer.FieldOriginalPrice:
		m.ResetOriginalPrice()
		return nil
	case offer.FieldOfferDateStart:
		m.ResetOfferDateStart()
		return nil
	case offer.FieldOfferDateEnd:
		m.ResetOfferDateEnd()
		return nil
	case offer.FieldSourceFile:
		m.ResetSourceFile()
		return nil
	case offer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Offer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OfferMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OfferMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OfferMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OfferMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OfferMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OfferMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OfferMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Offer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OfferMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Offer edge %s", name)
}
