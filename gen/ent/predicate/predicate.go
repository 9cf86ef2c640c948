// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Offer is the predicate function for offer builders.
type Offer func(*sql.Selector)
