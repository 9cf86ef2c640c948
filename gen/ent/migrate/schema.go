// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// OffersColumns holds the columns for the "offers" table.
	OffersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "store_name", Type: field.TypeString, Nullable: true},
		{Name: "product_name", Type: field.TypeString, Nullable: true},
		{Name: "brand", Type: field.TypeString, Nullable: true},
		{Name: "quantity", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeString, Nullable: true},
		{Name: "original_price", Type: field.TypeString, Nullable: true},
		{Name: "offer_date_start", Type: field.TypeString, Nullable: true},
		{Name: "offer_date_end", Type: field.TypeString, Nullable: true},
		{Name: "source_file", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OffersTable holds the schema information for the "offers" table.
	OffersTable = &schema.Table{
		Name:       "offers",
		Columns:    OffersColumns,
		PrimaryKey: []*schema.Column{OffersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		OffersTable,
	}
)

func init() {
	OffersTable.Annotation = &entsql.Annotation{
		Table: "offers",
	}
}
