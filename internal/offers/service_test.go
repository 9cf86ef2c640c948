package offers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

type recordingRepo struct {
	stubOfferRepo
	gotFilename string
	count       int
}

func (r *recordingRepo) DeleteBySourceFile(_ context.Context, filename string) (int, error) {
	r.gotFilename = filename
	return r.count, nil
}

func TestDeleteOffersByFileNormalizesFilename(t *testing.T) {
	repo := &recordingRepo{count: 2}
	s := NewService(repo, nil)

	// NFD form of "Prospekt Müller.pdf", as macOS browsers tend to send it
	nfd := norm.NFD.String("Prospekt Müller.pdf")
	require.NotEqual(t, "Prospekt Müller.pdf", nfd)

	n, err := s.DeleteOffersByFile(context.Background(), nfd)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "Prospekt Müller.pdf", repo.gotFilename)
}

func TestDeleteOffersByFileDecodesURLEscapes(t *testing.T) {
	repo := &recordingRepo{count: 1}
	s := NewService(repo, nil)

	n, err := s.DeleteOffersByFile(context.Background(), "weekly%20flyer.pdf")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "weekly flyer.pdf", repo.gotFilename)
}

func TestDeleteOffersByFileTrimsWhitespace(t *testing.T) {
	repo := &recordingRepo{}
	s := NewService(repo, nil)

	_, err := s.DeleteOffersByFile(context.Background(), "  weekly.pdf  ")
	require.NoError(t, err)
	assert.Equal(t, "weekly.pdf", repo.gotFilename)
}
