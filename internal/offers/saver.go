package offers

import (
	"context"
	"log/slog"

	"github.com/flyerscan/offers-tracker/internal/common"
	"github.com/flyerscan/offers-tracker/internal/llm"
	"github.com/flyerscan/offers-tracker/internal/repository"
)

// Saver is the persistence sink at the end of the per-page extraction step.
type Saver struct {
	repo   repository.OfferRepository
	logger *slog.Logger
}

func NewSaver(repo repository.OfferRepository, logger *slog.Logger) *Saver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Saver{repo: repo, logger: logger}
}

// SaveAll writes one page's candidates in a single batch. A nil or empty batch
// is a successful no-op with a warning, not an error. A rejected batch
// propagates as a store failure; no partial insert is assumed.
func (s *Saver) SaveAll(ctx context.Context, candidates []llm.OfferFields, sourceFile string) error {
	if len(candidates) == 0 {
		s.logger.Warn("offers.save.empty", "source_file", sourceFile)
		return nil
	}
	n, err := s.repo.SaveAll(ctx, candidates, sourceFile)
	if err != nil {
		return common.NewStoreError("batch insert offers", err)
	}
	s.logger.Info("offers.save.ok", "count", n, "source_file", sourceFile)
	return nil
}
