package entity

import (
	"time"

	"github.com/google/uuid"
)

// Offer represents a persisted flyer offer for data transfer between layers.
type Offer struct {
	ID             uuid.UUID `json:"id"`
	StoreName      string    `json:"storeName"`
	ProductName    string    `json:"productName"`
	Brand          *string   `json:"brand"`
	Quantity       string    `json:"quantity"`
	Price          string    `json:"price"`
	OriginalPrice  *string   `json:"originalPrice"`
	OfferDateStart string    `json:"offerDateStart"`
	OfferDateEnd   string    `json:"offerDateEnd"`
	SourceFile     string    `json:"sourceFile,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
