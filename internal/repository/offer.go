package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flyerscan/offers-tracker/gen/ent"
	"github.com/flyerscan/offers-tracker/gen/ent/offer"
	"github.com/flyerscan/offers-tracker/internal/entity"
	"github.com/flyerscan/offers-tracker/internal/llm"
	"github.com/flyerscan/offers-tracker/internal/utils"
)

// OfferRepository is the store surface the pipeline and the API depend on.
type OfferRepository interface {
	// SaveAll writes one page's candidates in a single batch; the batch is
	// all-or-nothing from the caller's perspective.
	SaveAll(ctx context.Context, offers []llm.OfferFields, sourceFile string) (int, error)
	ListOffers(ctx context.Context) ([]*entity.Offer, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteBySourceFile(ctx context.Context, filename string) (int, error)
}

type offerRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOfferRepository(client *ent.Client, logger *slog.Logger) OfferRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &offerRepository{client: client, logger: logger}
}

func (r *offerRepository) SaveAll(ctx context.Context, offers []llm.OfferFields, sourceFile string) (int, error) {
	builders := make([]*ent.OfferCreate, 0, len(offers))
	for _, f := range offers {
		builders = append(builders, r.client.Offer.Create().
			SetStoreName(f.StoreName).
			SetProductName(f.ProductName).
			SetNillableBrand(f.Brand).
			SetQuantity(f.Quantity).
			SetPrice(f.Price.String()).
			SetNillableOriginalPrice(f.OriginalPrice).
			SetOfferDateStart(f.OfferDateStart).
			SetOfferDateEnd(f.OfferDateEnd).
			SetSourceFile(sourceFile))
	}
	rows, err := r.client.Offer.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert offers batch", "count", len(offers), "source_file", sourceFile, "error", err)
		return 0, err
	}
	return len(rows), nil
}

func (r *offerRepository) ListOffers(ctx context.Context) ([]*entity.Offer, error) {
	rows, err := r.client.Offer.Query().
		Order(offer.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list offers", "error", err)
		return nil, err
	}
	result := make([]*entity.Offer, len(rows))
	for i, row := range rows {
		result[i] = utils.ToOffer(row)
	}
	return result, nil
}

func (r *offerRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Offer.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete offer", "id", id, "error", err)
		return err
	}
	return nil
}

func (r *offerRepository) DeleteBySourceFile(ctx context.Context, filename string) (int, error) {
	n, err := r.client.Offer.Delete().
		Where(offer.SourceFile(filename)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete offers by file", "source_file", filename, "error", err)
		return 0, err
	}
	return n, nil
}
