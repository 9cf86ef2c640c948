// Code generated by ent, DO NOT EDIT.

package offer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/flyerscan/offers-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldID, id))
}

// StoreName applies equality check predicate on the "store_name" field. It's identical to StoreNameEQ.
func StoreName(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldStoreName, v))
}

// ProductName applies equality check predicate on the "product_name" field. It's identical to ProductNameEQ.
func ProductName(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldProductName, v))
}

// Brand applies equality check predicate on the "brand" field. It's identical to BrandEQ.
func Brand(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldBrand, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldQuantity, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldPrice, v))
}

// OriginalPrice applies equality check predicate on the "original_price" field. It's identical to OriginalPriceEQ.
func OriginalPrice(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldOriginalPrice, v))
}

// OfferDateStart applies equality check predicate on the "offer_date_start" field. It's identical to OfferDateStartEQ.
func OfferDateStart(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldOfferDateStart, v))
}

// OfferDateEnd applies equality check predicate on the "offer_date_end" field. It's identical to OfferDateEndEQ.
func OfferDateEnd(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldOfferDateEnd, v))
}

// SourceFile applies equality check predicate on the "source_file" field. It's identical to SourceFileEQ.
func SourceFile(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldSourceFile, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldCreatedAt, v))
}

// StoreNameEQ applies the EQ predicate on the "store_name" field.
func StoreNameEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldStoreName, v))
}

// StoreNameNEQ applies the NEQ predicate on the "store_name" field.
func StoreNameNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldStoreName, v))
}

// StoreNameIn applies the In predicate on the "store_name" field.
func StoreNameIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldStoreName, vs...))
}

// StoreNameNotIn applies the NotIn predicate on the "store_name" field.
func StoreNameNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldStoreName, vs...))
}

// StoreNameGT applies the GT predicate on the "store_name" field.
func StoreNameGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldStoreName, v))
}

// StoreNameGTE applies the GTE predicate on the "store_name" field.
func StoreNameGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldStoreName, v))
}

// StoreNameLT applies the LT predicate on the "store_name" field.
func StoreNameLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldStoreName, v))
}

// StoreNameLTE applies the LTE predicate on the "store_name" field.
func StoreNameLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldStoreName, v))
}

// StoreNameContains applies the Contains predicate on the "store_name" field.
func StoreNameContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldStoreName, v))
}

// StoreNameHasPrefix applies the HasPrefix predicate on the "store_name" field.
func StoreNameHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldStoreName, v))
}

// StoreNameHasSuffix applies the HasSuffix predicate on the "store_name" field.
func StoreNameHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldStoreName, v))
}

// StoreNameIsNil applies the IsNil predicate on the "store_name" field.
func StoreNameIsNil() predicate.Offer {
	return predicate.Offer(sql.FieldIsNull(FieldStoreName))
}

// StoreNameNotNil applies the NotNil predicate on the "store_name" field.
func StoreNameNotNil() predicate.Offer {
	return predicate.Offer(sql.FieldNotNull(FieldStoreName))
}

// StoreNameEqualFold applies the EqualFold predicate on the "store_name" field.
func StoreNameEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldStoreName, v))
}

// StoreNameContainsFold applies the ContainsFold predicate on the "store_name" field.
func StoreNameContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldStoreName, v))
}

// ProductNameEQ applies the EQ predicate on the "product_name" field.
func ProductNameEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldProductName, v))
}

// ProductNameNEQ applies the NEQ predicate on the "product_name" field.
func ProductNameNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldProductName, v))
}

// ProductNameIn applies the In predicate on the "product_name" field.
func ProductNameIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldProductName, vs...))
}

// ProductNameNotIn applies the NotIn predicate on the "product_name" field.
func ProductNameNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldProductName, vs...))
}

// ProductNameGT applies the GT predicate on the "product_name" field.
func ProductNameGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldProductName, v))
}

// ProductNameGTE applies the GTE predicate on the "product_name" field.
func ProductNameGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldProductName, v))
}

// ProductNameLT applies the LT predicate on the "product_name" field.
func ProductNameLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldProductName, v))
}

// ProductNameLTE applies the LTE predicate on the "product_name" field.
func ProductNameLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldProductName, v))
}

// ProductNameContains applies the Contains predicate on the "product_name" field.
func ProductNameContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldProductName, v))
}

// ProductNameHasPrefix applies the HasPrefix predicate on the "product_name" field.
func ProductNameHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldProductName, v))
}

// ProductNameHasSuffix applies the HasSuffix predicate on the "product_name" field.
func ProductNameHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldProductName, v))
}

// ProductNameIsNil applies the IsNil predicate on the "product_name" field.
func ProductNameIsNil() predicate.Offer {
	return predicate.Offer(sql.FieldIsNull(FieldProductName))
}

// ProductNameNotNil applies the NotNil predicate on the "product_name" field.
func ProductNameNotNil() predicate.Offer {
	return predicate.Offer(sql.FieldNotNull(FieldProductName))
}

// ProductNameEqualFold applies the EqualFold predicate on the "product_name" field.
func ProductNameEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldProductName, v))
}

// ProductNameContainsFold applies the ContainsFold predicate on the "product_name" field.
func ProductNameContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldProductName, v))
}

// BrandEQ applies the EQ predicate on the "brand" field.
func BrandEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldBrand, v))
}

// BrandNEQ applies the NEQ predicate on the "brand" field.
func BrandNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldBrand, v))
}

// BrandIn applies the In predicate on the "brand" field.
func BrandIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldBrand, vs...))
}

// BrandNotIn applies the NotIn predicate on the "brand" field.
func BrandNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldBrand, vs...))
}

// BrandGT applies the GT predicate on the "brand" field.
func BrandGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldBrand, v))
}

// BrandGTE applies the GTE predicate on the "brand" field.
func BrandGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldBrand, v))
}

// BrandLT applies the LT predicate on the "brand" field.
func BrandLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldBrand, v))
}

// BrandLTE applies the LTE predicate on the "brand" field.
func BrandLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldBrand, v))
}

// BrandContains applies the Contains predicate on the "brand" field.
func BrandContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldBrand, v))
}

// BrandHasPrefix applies the HasPrefix predicate on the "brand" field.
func BrandHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldBrand, v))
}

// BrandHasSuffix applies the HasSuffix predicate on the "brand" field.
func BrandHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldBrand, v))
}

// BrandIsNil applies the IsNil predicate on the "brand" field.
func BrandIsNil() predicate.Offer {
	return predicate.Offer(sql.FieldIsNull(FieldBrand))
}

// BrandNotNil applies the NotNil predicate on the "brand" field.
func BrandNotNil() predicate.Offer {
	return predicate.Offer(sql.FieldNotNull(FieldBrand))
}

// BrandEqualFold applies the EqualFold predicate on the "brand" field.
func BrandEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldBrand, v))
}

// BrandContainsFold applies the ContainsFold predicate on the "brand" field.
func BrandContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldBrand, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldQuantity, v))
}

// QuantityContains applies the Contains predicate on the "quantity" field.
func QuantityContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldQuantity, v))
}

// QuantityHasPrefix applies the HasPrefix predicate on the "quantity" field.
func QuantityHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldQuantity, v))
}

// QuantityHasSuffix applies the HasSuffix predicate on the "quantity" field.
func QuantityHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldQuantity, v))
}

// QuantityIsNil applies the IsNil predicate on the "quantity" field.
func QuantityIsNil() predicate.Offer {
	return predicate.Offer(sql.FieldIsNull(FieldQuantity))
}

// QuantityNotNil applies the NotNil predicate on the "quantity" field.
func QuantityNotNil() predicate.Offer {
	return predicate.Offer(sql.FieldNotNull(FieldQuantity))
}

// QuantityEqualFold applies the EqualFold predicate on the "quantity" field.
func QuantityEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldQuantity, v))
}

// QuantityContainsFold applies the ContainsFold predicate on the "quantity" field.
func QuantityContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldQuantity, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldPrice, v))
}

// PriceContains applies the Contains predicate on the "price" field.
func PriceContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldPrice, v))
}

// PriceHasPrefix applies the HasPrefix predicate on the "price" field.
func PriceHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldPrice, v))
}

// PriceHasSuffix applies the HasSuffix predicate on the "price" field.
func PriceHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldPrice, v))
}

// PriceIsNil applies the IsNil predicate on the "price" field.
func PriceIsNil() predicate.Offer {
	return predicate.Offer(sql.FieldIsNull(FieldPrice))
}

// PriceNotNil applies the NotNil predicate on the "price" field.
func PriceNotNil() predicate.Offer {
	return predicate.Offer(sql.FieldNotNull(FieldPrice))
}

// PriceEqualFold applies the EqualFold predicate on the "price" field.
func PriceEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldPrice, v))
}

// PriceContainsFold applies the ContainsFold predicate on the "price" field.
func PriceContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldPrice, v))
}

// OriginalPriceEQ applies the EQ predicate on the "original_price" field.
func OriginalPriceEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldOriginalPrice, v))
}

// OriginalPriceNEQ applies the NEQ predicate on the "original_price" field.
func OriginalPriceNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldOriginalPrice, v))
}

// OriginalPriceIn applies the In predicate on the "original_price" field.
func OriginalPriceIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldOriginalPrice, vs...))
}

// OriginalPriceNotIn applies the NotIn predicate on the "original_price" field.
func OriginalPriceNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldOriginalPrice, vs...))
}

// OriginalPriceGT applies the GT predicate on the "original_price" field.
func OriginalPriceGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldOriginalPrice, v))
}

// OriginalPriceGTE applies the GTE predicate on the "original_price" field.
func OriginalPriceGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldOriginalPrice, v))
}

// OriginalPriceLT applies the LT predicate on the "original_price" field.
func OriginalPriceLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldOriginalPrice, v))
}

// OriginalPriceLTE applies the LTE predicate on the "original_price" field.
func OriginalPriceLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldOriginalPrice, v))
}

// OriginalPriceContains applies the Contains predicate on the "original_price" field.
func OriginalPriceContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldOriginalPrice, v))
}

// OriginalPriceHasPrefix applies the HasPrefix predicate on the "original_price" field.
func OriginalPriceHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldOriginalPrice, v))
}

// OriginalPriceHasSuffix applies the HasSuffix predicate on the "original_price" field.
func OriginalPriceHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldOriginalPrice, v))
}

// OriginalPriceIsNil applies the IsNil predicate on the "original_price" field.
func OriginalPriceIsNil() predicate.Offer {
	return predicate.Offer(sql.FieldIsNull(FieldOriginalPrice))
}

// OriginalPriceNotNil applies the NotNil predicate on the "original_price" field.
func OriginalPriceNotNil() predicate.Offer {
	return predicate.Offer(sql.FieldNotNull(FieldOriginalPrice))
}

// OriginalPriceEqualFold applies the EqualFold predicate on the "original_price" field.
func OriginalPriceEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldOriginalPrice, v))
}

// OriginalPriceContainsFold applies the ContainsFold predicate on the "original_price" field.
func OriginalPriceContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldOriginalPrice, v))
}

// OfferDateStartEQ applies the EQ predicate on the "offer_date_start" field.
func OfferDateStartEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldOfferDateStart, v))
}

// OfferDateStartNEQ applies the NEQ predicate on the "offer_date_start" field.
func OfferDateStartNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldOfferDateStart, v))
}

// OfferDateStartIn applies the In predicate on the "offer_date_start" field.
func OfferDateStartIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldOfferDateStart, vs...))
}

// OfferDateStartNotIn applies the NotIn predicate on the "offer_date_start" field.
func OfferDateStartNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldOfferDateStart, vs...))
}

// OfferDateStartGT applies the GT predicate on the "offer_date_start" field.
func OfferDateStartGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldOfferDateStart, v))
}

// OfferDateStartGTE applies the GTE predicate on the "offer_date_start" field.
func OfferDateStartGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldOfferDateStart, v))
}

// OfferDateStartLT applies the LT predicate on the "offer_date_start" field.
func OfferDateStartLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldOfferDateStart, v))
}

// OfferDateStartLTE applies the LTE predicate on the "offer_date_start" field.
func OfferDateStartLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldOfferDateStart, v))
}

// OfferDateStartContains applies the Contains predicate on the "offer_date_start" field.
func OfferDateStartContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldOfferDateStart, v))
}

// OfferDateStartHasPrefix applies the HasPrefix predicate on the "offer_date_start" field.
func OfferDateStartHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldOfferDateStart, v))
}

// OfferDateStartHasSuffix applies the HasSuffix predicate on the "offer_date_start" field.
func OfferDateStartHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldOfferDateStart, v))
}

// OfferDateStartIsNil applies the IsNil predicate on the "offer_date_start" field.
func OfferDateStartIsNil() predicate.Offer {
	return predicate.Offer(sql.FieldIsNull(FieldOfferDateStart))
}

// OfferDateStartNotNil applies the NotNil predicate on the "offer_date_start" field.
func OfferDateStartNotNil() predicate.Offer {
	return predicate.Offer(sql.FieldNotNull(FieldOfferDateStart))
}

// OfferDateStartEqualFold applies the EqualFold predicate on the "offer_date_start" field.
func OfferDateStartEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldOfferDateStart, v))
}

// OfferDateStartContainsFold applies the ContainsFold predicate on the "offer_date_start" field.
func OfferDateStartContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldOfferDateStart, v))
}

// OfferDateEndEQ applies the EQ predicate on the "offer_date_end" field.
func OfferDateEndEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldOfferDateEnd, v))
}

// OfferDateEndNEQ applies the NEQ predicate on the "offer_date_end" field.
func OfferDateEndNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldOfferDateEnd, v))
}

// OfferDateEndIn applies the In predicate on the "offer_date_end" field.
func OfferDateEndIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldOfferDateEnd, vs...))
}

// OfferDateEndNotIn applies the NotIn predicate on the "offer_date_end" field.
func OfferDateEndNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldOfferDateEnd, vs...))
}

// OfferDateEndGT applies the GT predicate on the "offer_date_end" field.
func OfferDateEndGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldOfferDateEnd, v))
}

// OfferDateEndGTE applies the GTE predicate on the "offer_date_end" field.
func OfferDateEndGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldOfferDateEnd, v))
}

// OfferDateEndLT applies the LT predicate on the "offer_date_end" field.
func OfferDateEndLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldOfferDateEnd, v))
}

// OfferDateEndLTE applies the LTE predicate on the "offer_date_end" field.
func OfferDateEndLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldOfferDateEnd, v))
}

// OfferDateEndContains applies the Contains predicate on the "offer_date_end" field.
func OfferDateEndContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldOfferDateEnd, v))
}

// OfferDateEndHasPrefix applies the HasPrefix predicate on the "offer_date_end" field.
func OfferDateEndHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldOfferDateEnd, v))
}

// OfferDateEndHasSuffix applies the HasSuffix predicate on the "offer_date_end" field.
func OfferDateEndHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldOfferDateEnd, v))
}

// OfferDateEndIsNil applies the IsNil predicate on the "offer_date_end" field.
func OfferDateEndIsNil() predicate.Offer {
	return predicate.Offer(sql.FieldIsNull(FieldOfferDateEnd))
}

// OfferDateEndNotNil applies the NotNil predicate on the "offer_date_end" field.
func OfferDateEndNotNil() predicate.Offer {
	return predicate.Offer(sql.FieldNotNull(FieldOfferDateEnd))
}

// OfferDateEndEqualFold applies the EqualFold predicate on the "offer_date_end" field.
func OfferDateEndEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldOfferDateEnd, v))
}

// OfferDateEndContainsFold applies the ContainsFold predicate on the "offer_date_end" field.
func OfferDateEndContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldOfferDateEnd, v))
}

// SourceFileEQ applies the EQ predicate on the "source_file" field.
func SourceFileEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldSourceFile, v))
}

// SourceFileNEQ applies the NEQ predicate on the "source_file" field.
func SourceFileNEQ(v string) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldSourceFile, v))
}

// SourceFileIn applies the In predicate on the "source_file" field.
func SourceFileIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldSourceFile, vs...))
}

// SourceFileNotIn applies the NotIn predicate on the "source_file" field.
func SourceFileNotIn(vs ...string) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldSourceFile, vs...))
}

// SourceFileGT applies the GT predicate on the "source_file" field.
func SourceFileGT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldSourceFile, v))
}

// SourceFileGTE applies the GTE predicate on the "source_file" field.
func SourceFileGTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldSourceFile, v))
}

// SourceFileLT applies the LT predicate on the "source_file" field.
func SourceFileLT(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldSourceFile, v))
}

// SourceFileLTE applies the LTE predicate on the "source_file" field.
func SourceFileLTE(v string) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldSourceFile, v))
}

// SourceFileContains applies the Contains predicate on the "source_file" field.
func SourceFileContains(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContains(FieldSourceFile, v))
}

// SourceFileHasPrefix applies the HasPrefix predicate on the "source_file" field.
func SourceFileHasPrefix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasPrefix(FieldSourceFile, v))
}

// SourceFileHasSuffix applies the HasSuffix predicate on the "source_file" field.
func SourceFileHasSuffix(v string) predicate.Offer {
	return predicate.Offer(sql.FieldHasSuffix(FieldSourceFile, v))
}

// SourceFileIsNil applies the IsNil predicate on the "source_file" field.
func SourceFileIsNil() predicate.Offer {
	return predicate.Offer(sql.FieldIsNull(FieldSourceFile))
}

// SourceFileNotNil applies the NotNil predicate on the "source_file" field.
func SourceFileNotNil() predicate.Offer {
	return predicate.Offer(sql.FieldNotNull(FieldSourceFile))
}

// SourceFileEqualFold applies the EqualFold predicate on the "source_file" field.
func SourceFileEqualFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldEqualFold(FieldSourceFile, v))
}

// SourceFileContainsFold applies the ContainsFold predicate on the "source_file" field.
func SourceFileContainsFold(v string) predicate.Offer {
	return predicate.Offer(sql.FieldContainsFold(FieldSourceFile, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Offer {
	return predicate.Offer(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Offer) predicate.Offer {
	return predicate.Offer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Offer) predicate.Offer {
	return predicate.Offer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Offer) predicate.Offer {
	return predicate.Offer(sql.NotPredicates(p))
}
