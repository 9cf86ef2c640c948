package offers

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/flyerscan/offers-tracker/internal/entity"
	"github.com/flyerscan/offers-tracker/internal/repository"
)

// Service handles offer read/delete operations for the API layer.
type Service struct {
	repo   repository.OfferRepository
	logger *slog.Logger
}

func NewService(repo repository.OfferRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ListOffers returns every stored offer.
func (s *Service) ListOffers(ctx context.Context) ([]*entity.Offer, error) {
	recs, err := s.repo.ListOffers(ctx)
	if err != nil {
		s.logger.Error("failed to list offers", "error", err)
		return nil, err
	}
	s.logger.Info("offers listed", "count", len(recs))
	return recs, nil
}

// DeleteOffer removes a single offer by id.
func (s *Service) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("failed to delete offer", "id", id, "error", err)
		return err
	}
	s.logger.Info("offer deleted", "id", id)
	return nil
}

// DeleteOffersByFile removes every offer attributed to one upload filename.
// The filename is URL-decoded and NFC-normalized first; browsers and macOS
// disagree on the byte form of non-ASCII filenames.
func (s *Service) DeleteOffersByFile(ctx context.Context, filename string) (int, error) {
	decoded := filename
	if d, err := url.QueryUnescape(filename); err == nil {
		decoded = d
	}
	normalized := norm.NFC.String(strings.TrimSpace(decoded))

	n, err := s.repo.DeleteBySourceFile(ctx, normalized)
	if err != nil {
		s.logger.Error("failed to delete offers by file", "source_file", normalized, "error", err)
		return 0, err
	}
	s.logger.Info("offers deleted by file", "source_file", normalized, "count", n)
	return n, nil
}
