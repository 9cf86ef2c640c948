package llm

import (
	"context"
	"encoding/json"
)

// OfferFields is one offer candidate as the extraction model reports it.
// The response schema marks every key as structurally required; brand and
// originalPrice are the only null-typed ones.
type OfferFields struct {
	StoreName      string      `json:"storeName"`
	ProductName    string      `json:"productName"`
	Brand          *string     `json:"brand"`
	Quantity       string      `json:"quantity"`
	Price          json.Number `json:"price"`
	OriginalPrice  *string     `json:"originalPrice"`
	OfferDateStart string      `json:"offerDateStart"`
	OfferDateEnd   string      `json:"offerDateEnd"`
}

// OfferExtractor is the capability the pipeline depends on: given one page
// image, return zero or more offer candidates, or fail. The raw JSON reply is
// returned alongside for logging and diagnosis.
type OfferExtractor interface {
	ExtractOffers(ctx context.Context, imagePath string) ([]OfferFields, []byte, error)
}
