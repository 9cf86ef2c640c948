package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyerscan/offers-tracker/internal/llm"
)

func openTestRepo(t *testing.T) OfferRepository {
	t.Helper()
	ctx := context.Background()

	entc, pool, err := Open(ctx, Config{
		DSN: "sqlite://file:" + t.Name() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)",
	}, slog.Default())
	require.NoError(t, err)
	require.Nil(t, pool, "sqlite mode must not create a pgx pool")
	t.Cleanup(func() { Close(entc, pool, slog.Default()) })

	require.NoError(t, entc.Schema.Create(ctx))
	return NewOfferRepository(entc, nil)
}

func candidate(product string, brand *string) llm.OfferFields {
	return llm.OfferFields{
		StoreName:      "Lidl",
		ProductName:    product,
		Brand:          brand,
		Quantity:       "1 Stk.",
		Price:          json.Number("2.22"),
		OfferDateStart: "2026-08-24",
		OfferDateEnd:   "2026-08-30",
	}
}

func TestSaveAllAndList(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	brand := "Ja!"

	n, err := repo.SaveAll(ctx, []llm.OfferFields{
		candidate("Toast", &brand),
		candidate("Jam", nil),
	}, "weekly.pdf")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	recs, err := repo.ListOffers(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	byProduct := map[string]int{}
	for _, r := range recs {
		byProduct[r.ProductName]++
		assert.Equal(t, "Lidl", r.StoreName)
		assert.Equal(t, "2.22", r.Price)
		assert.Equal(t, "weekly.pdf", r.SourceFile)
		assert.NotEqual(t, uuid.Nil, r.ID)
		assert.False(t, r.CreatedAt.IsZero())
	}
	assert.Equal(t, map[string]int{"Toast": 1, "Jam": 1}, byProduct)

	for _, r := range recs {
		if r.ProductName == "Toast" {
			require.NotNil(t, r.Brand)
			assert.Equal(t, "Ja!", *r.Brand)
		} else {
			assert.Nil(t, r.Brand)
		}
	}
}

func TestDeleteByID(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	_, err := repo.SaveAll(ctx, []llm.OfferFields{candidate("Toast", nil)}, "weekly.pdf")
	require.NoError(t, err)

	recs, err := repo.ListOffers(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	require.NoError(t, repo.DeleteByID(ctx, recs[0].ID))

	recs, err = repo.ListOffers(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)

	assert.Error(t, repo.DeleteByID(ctx, uuid.New()), "deleting a missing id must surface the store error")
}

func TestDeleteBySourceFile(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	_, err := repo.SaveAll(ctx, []llm.OfferFields{candidate("Toast", nil), candidate("Jam", nil)}, "week34.pdf")
	require.NoError(t, err)
	_, err = repo.SaveAll(ctx, []llm.OfferFields{candidate("Butter", nil)}, "week35.pdf")
	require.NoError(t, err)

	n, err := repo.DeleteBySourceFile(ctx, "week34.pdf")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	recs, err := repo.ListOffers(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Butter", recs[0].ProductName)

	n, err = repo.DeleteBySourceFile(ctx, "missing.pdf")
	require.NoError(t, err)
	assert.Zero(t, n)
}
