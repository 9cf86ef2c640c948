// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/flyerscan/offers-tracker/gen/ent/offer"
	"github.com/google/uuid"
)

// Offer is the model entity for the Offer schema.
type Offer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StoreName holds the value of the "store_name" field.
	StoreName string `json:"store_name,omitempty"`
	// ProductName holds the value of the "product_name" field.
	ProductName string `json:"product_name,omitempty"`
	// Brand holds the value of the "brand" field.
	Brand *string `json:"brand,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity string `json:"quantity,omitempty"`
	// Price holds the value of the "price" field.
	Price string `json:"price,omitempty"`
	// OriginalPrice holds the value of the "original_price" field.
	OriginalPrice *string `json:"original_price,omitempty"`
	// OfferDateStart holds the value of the "offer_date_start" field.
	OfferDateStart string `json:"offer_date_start,omitempty"`
	// OfferDateEnd holds the value of the "offer_date_end" field.
	OfferDateEnd string `json:"offer_date_end,omitempty"`
	// SourceFile holds the value of the "source_file" field.
	SourceFile string `json:"source_file,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Offer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case offer.FieldStoreName, offer.FieldProductName, offer.FieldBrand, offer.FieldQuantity, offer.FieldPrice, offer.FieldOriginalPrice, offer.FieldOfferDateStart, offer.FieldOfferDateEnd, offer.FieldSourceFile:
			values[i] = new(sql.NullString)
		case offer.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case offer.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Offer fields.
func (_m *Offer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case offer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case offer.FieldStoreName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field store_name", values[i])
			} else if value.Valid {
				_m.StoreName = value.String
			}
		case offer.FieldProductName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_name", values[i])
			} else if value.Valid {
				_m.ProductName = value.String
			}
		case offer.FieldBrand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand", values[i])
			} else if value.Valid {
				_m.Brand = new(string)
				*_m.Brand = value.String
			}
		case offer.FieldQuantity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = value.String
			}
		case offer.FieldPrice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.String
			}
		case offer.FieldOriginalPrice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_price", values[i])
			} else if value.Valid {
				_m.OriginalPrice = new(string)
				*_m.OriginalPrice = value.String
			}
		case offer.FieldOfferDateStart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field offer_date_start", values[i])
			} else if value.Valid {
				_m.OfferDateStart = value.String
			}
		case offer.FieldOfferDateEnd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field offer_date_end", values[i])
			} else if value.Valid {
				_m.OfferDateEnd = value.String
			}
		case offer.FieldSourceFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_file", values[i])
			} else if value.Valid {
				_m.SourceFile = value.String
			}
		case offer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Offer.
// This includes values selected through modifiers, order, etc.
func (_m *Offer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Offer.
// Note that you need to call Offer.Unwrap() before calling this method if this Offer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Offer) Update() *OfferUpdateOne {
	return NewOfferClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Offer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Offer) Unwrap() *Offer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Offer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Offer) String() string {
	var builder strings.Builder
	builder.WriteString("Offer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("store_name=")
	builder.WriteString(_m.StoreName)
	builder.WriteString(", ")
	builder.WriteString("product_name=")
	builder.WriteString(_m.ProductName)
	builder.WriteString(", ")
	if v := _m.Brand; v != nil {
		builder.WriteString("brand=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(_m.Quantity)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(_m.Price)
	builder.WriteString(", ")
	if v := _m.OriginalPrice; v != nil {
		builder.WriteString("original_price=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("offer_date_start=")
	builder.WriteString(_m.OfferDateStart)
	builder.WriteString(", ")
	builder.WriteString("offer_date_end=")
	builder.WriteString(_m.OfferDateEnd)
	builder.WriteString(", ")
	builder.WriteString("source_file=")
	builder.WriteString(_m.SourceFile)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Offers is a parsable slice of Offer.
type Offers []*Offer
