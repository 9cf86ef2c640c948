package utils

import (
	"github.com/flyerscan/offers-tracker/gen/ent"
	"github.com/flyerscan/offers-tracker/internal/entity"
)

// ToOffer converts an ent row into the transfer shape.
func ToOffer(o *ent.Offer) *entity.Offer {
	return &entity.Offer{
		ID:             o.ID,
		StoreName:      o.StoreName,
		ProductName:    o.ProductName,
		Brand:          o.Brand,
		Quantity:       o.Quantity,
		Price:          o.Price,
		OriginalPrice:  o.OriginalPrice,
		OfferDateStart: o.OfferDateStart,
		OfferDateEnd:   o.OfferDateEnd,
		SourceFile:     o.SourceFile,
		CreatedAt:      o.CreatedAt,
	}
}
