// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/flyerscan/offers-tracker/db/ent/schema"
	"github.com/flyerscan/offers-tracker/gen/ent/offer"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	offerFields := schema.Offer{}.Fields()
	_ = offerFields
	// offerDescCreatedAt is the schema descriptor for created_at field.
	offerDescCreatedAt := offerFields[10].Descriptor()
	// offer.DefaultCreatedAt holds the default value on creation for the created_at field.
	offer.DefaultCreatedAt = offerDescCreatedAt.Default.(func() time.Time)
	// offerDescID is the schema descriptor for id field.
	offerDescID := offerFields[0].Descriptor()
	// offer.DefaultID holds the default value on creation for the id field.
	offer.DefaultID = offerDescID.Default.(func() uuid.UUID)
}
