// Code generated by ent, DO NOT EDIT.

package offer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the offer type in the database.
	Label = "offer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStoreName holds the string denoting the store_name field in the database.
	FieldStoreName = "store_name"
	// FieldProductName holds the string denoting the product_name field in the database.
	FieldProductName = "product_name"
	// FieldBrand holds the string denoting the brand field in the database.
	FieldBrand = "brand"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldOriginalPrice holds the string denoting the original_price field in the database.
	FieldOriginalPrice = "original_price"
	// FieldOfferDateStart holds the string denoting the offer_date_start field in the database.
	FieldOfferDateStart = "offer_date_start"
	// FieldOfferDateEnd holds the string denoting the offer_date_end field in the database.
	FieldOfferDateEnd = "offer_date_end"
	// FieldSourceFile holds the string denoting the source_file field in the database.
	FieldSourceFile = "source_file"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the offer in the database.
	Table = "offers"
)

// Columns holds all SQL columns for offer fields.
var Columns = []string{
	FieldID,
	FieldStoreName,
	FieldProductName,
	FieldBrand,
	FieldQuantity,
	FieldPrice,
	FieldOriginalPrice,
	FieldOfferDateStart,
	FieldOfferDateEnd,
	FieldSourceFile,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Offer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStoreName orders the results by the store_name field.
func ByStoreName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoreName, opts...).ToFunc()
}

// ByProductName orders the results by the product_name field.
func ByProductName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductName, opts...).ToFunc()
}

// ByBrand orders the results by the brand field.
func ByBrand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrand, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByOriginalPrice orders the results by the original_price field.
func ByOriginalPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalPrice, opts...).ToFunc()
}

// ByOfferDateStart orders the results by the offer_date_start field.
func ByOfferDateStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOfferDateStart, opts...).ToFunc()
}

// ByOfferDateEnd orders the results by the offer_date_end field.
func ByOfferDateEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOfferDateEnd, opts...).ToFunc()
}

// BySourceFile orders the results by the source_file field.
func BySourceFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFile, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
