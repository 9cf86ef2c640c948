package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Offer is one extracted flyer offer. Every field except the id is optional at
// the storage layer; the extraction schema is the only typing gate upstream.
type Offer struct{ ent.Schema }

func (Offer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "offers"},
	}
}

func (Offer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("store_name").Optional(),
		field.String("product_name").Optional(),
		field.String("brand").Optional().Nillable(),
		field.String("quantity").Optional(),
		field.String("price").Optional(),
		field.String("original_price").Optional().Nillable(),
		field.String("offer_date_start").Optional(),
		field.String("offer_date_end").Optional(),
		// upload filename the offer came from; informational, not a key
		field.String("source_file").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}
