package offers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyerscan/offers-tracker/internal/common"
	"github.com/flyerscan/offers-tracker/internal/entity"
	"github.com/flyerscan/offers-tracker/internal/llm"
)

type stubOfferRepo struct {
	saveCalls  int
	gotOffers  []llm.OfferFields
	gotSource  string
	saveErr    error
	deleteErr  error
	deletedIDs []uuid.UUID
}

func (s *stubOfferRepo) SaveAll(_ context.Context, offers []llm.OfferFields, sourceFile string) (int, error) {
	s.saveCalls++
	s.gotOffers = offers
	s.gotSource = sourceFile
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	return len(offers), nil
}

func (s *stubOfferRepo) ListOffers(context.Context) ([]*entity.Offer, error) {
	return nil, nil
}

func (s *stubOfferRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.deletedIDs = append(s.deletedIDs, id)
	return s.deleteErr
}

func (s *stubOfferRepo) DeleteBySourceFile(context.Context, string) (int, error) {
	return 0, nil
}

func sampleCandidates(n int) []llm.OfferFields {
	out := make([]llm.OfferFields, n)
	for i := range out {
		out[i] = llm.OfferFields{
			StoreName:      "Edeka",
			ProductName:    "Yogurt",
			Quantity:       "500g",
			Price:          json.Number("0.89"),
			OfferDateStart: "2026-08-24",
			OfferDateEnd:   "2026-08-30",
		}
	}
	return out
}

func TestSaveAllEmptyBatchIsNoOp(t *testing.T) {
	repo := &stubOfferRepo{}
	s := NewSaver(repo, nil)

	require.NoError(t, s.SaveAll(context.Background(), nil, "flyer.pdf"))
	require.NoError(t, s.SaveAll(context.Background(), []llm.OfferFields{}, "flyer.pdf"))
	assert.Zero(t, repo.saveCalls, "empty batches must never reach the store")
}

func TestSaveAllPassesBatchThrough(t *testing.T) {
	repo := &stubOfferRepo{}
	s := NewSaver(repo, nil)

	candidates := sampleCandidates(3)
	require.NoError(t, s.SaveAll(context.Background(), candidates, "flyer.pdf"))

	assert.Equal(t, 1, repo.saveCalls, "one page means one batch insert")
	assert.Equal(t, candidates, repo.gotOffers)
	assert.Equal(t, "flyer.pdf", repo.gotSource)
}

func TestSaveAllWrapsStoreFailure(t *testing.T) {
	cause := errors.New("connection refused")
	repo := &stubOfferRepo{saveErr: cause}
	s := NewSaver(repo, nil)

	err := s.SaveAll(context.Background(), sampleCandidates(1), "flyer.pdf")
	require.Error(t, err)
	assert.Equal(t, common.KindStore, common.KindOf(err))
	assert.ErrorIs(t, err, cause)
}
