package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/flyerscan/offers-tracker/internal/common"
	"github.com/flyerscan/offers-tracker/internal/entity"
	"github.com/flyerscan/offers-tracker/internal/export"
	"github.com/flyerscan/offers-tracker/internal/llm"
	"github.com/flyerscan/offers-tracker/internal/offers"
)

type stubUploader struct {
	gotFilename string
	gotPages    int
	gotBytes    []byte
	err         error
}

func (s *stubUploader) ProcessUpload(_ context.Context, upload io.Reader, filename string, pagesPerChunk int) error {
	s.gotFilename = filename
	s.gotPages = pagesPerChunk
	b, err := io.ReadAll(upload)
	if err != nil {
		return err
	}
	s.gotBytes = b
	return s.err
}

type stubRepo struct {
	offers     []*entity.Offer
	listErr    error
	deletedIDs []uuid.UUID
	byFile     map[string]int
	gotFile    string
}

func (s *stubRepo) SaveAll(_ context.Context, batch []llm.OfferFields, _ string) (int, error) {
	return len(batch), nil
}

func (s *stubRepo) ListOffers(context.Context) ([]*entity.Offer, error) {
	return s.offers, s.listErr
}

func (s *stubRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func (s *stubRepo) DeleteBySourceFile(_ context.Context, filename string) (int, error) {
	s.gotFile = filename
	return s.byFile[filename], nil
}

func newTestServer(uploader *stubUploader, repo *stubRepo) *Server {
	return New(uploader, offers.NewService(repo, nil), export.NewService(repo, nil), 8, nil)
}

func multipartUpload(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestHandleUploadSuccess(t *testing.T) {
	uploader := &stubUploader{}
	srv := newTestServer(uploader, &stubRepo{})

	body, contentType := multipartUpload(t, "weekly.pdf", []byte("%PDF-1.4 fake"), map[string]string{"pagesPerChunk": "3"})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "file processed and offers saved", rec.Body.String())
	assert.Equal(t, "weekly.pdf", uploader.gotFilename)
	assert.Equal(t, 3, uploader.gotPages)
	assert.Equal(t, []byte("%PDF-1.4 fake"), uploader.gotBytes)
}

func TestHandleUploadDefaultsPagesPerChunk(t *testing.T) {
	uploader := &stubUploader{}
	srv := newTestServer(uploader, &stubRepo{})

	body, contentType := multipartUpload(t, "weekly.pdf", []byte("pdf"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, uploader.gotPages)
}

func TestHandleUploadPipelineFailure(t *testing.T) {
	uploader := &stubUploader{err: common.NewDecodeError("source is not a parseable PDF", errors.New("bad header"))}
	srv := newTestServer(uploader, &stubRepo{})

	body, contentType := multipartUpload(t, "broken.pdf", []byte("garbage"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "processing failed: ")
	assert.Contains(t, rec.Body.String(), "source is not a parseable PDF")
}

func TestHandleUploadRejectsBadRequests(t *testing.T) {
	srv := newTestServer(&stubUploader{}, &stubRepo{})

	t.Run("missing file part", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("pagesPerChunk", "2"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		srv.Routes().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric pagesPerChunk", func(t *testing.T) {
		body, contentType := multipartUpload(t, "a.pdf", []byte("pdf"), map[string]string{"pagesPerChunk": "many"})
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		srv.Routes().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero pagesPerChunk", func(t *testing.T) {
		body, contentType := multipartUpload(t, "a.pdf", []byte("pdf"), map[string]string{"pagesPerChunk": "0"})
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		srv.Routes().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleListOffers(t *testing.T) {
	brand := "Milka"
	repo := &stubRepo{offers: []*entity.Offer{
		{
			ID:             uuid.New(),
			StoreName:      "Kaufland",
			ProductName:    "Chocolate",
			Brand:          &brand,
			Quantity:       "100g",
			Price:          "0.99",
			OfferDateStart: "2026-08-24",
			OfferDateEnd:   "2026-08-30",
			SourceFile:     "weekly.pdf",
		},
	}}
	srv := newTestServer(&stubUploader{}, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/offers", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Kaufland", got[0]["storeName"])
	assert.Equal(t, "Chocolate", got[0]["productName"])
	assert.Equal(t, "Milka", got[0]["brand"])
	assert.Equal(t, "0.99", got[0]["price"])
}

func TestHandleDeleteOffer(t *testing.T) {
	repo := &stubRepo{}
	srv := newTestServer(&stubUploader{}, repo)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/offers/"+id.String(), nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.deletedIDs, 1)
	assert.Equal(t, id, repo.deletedIDs[0])
}

func TestHandleDeleteOfferRejectsNonUUID(t *testing.T) {
	repo := &stubRepo{}
	srv := newTestServer(&stubUploader{}, repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/offers/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.deletedIDs)
}

func TestHandleDeleteOffersByFile(t *testing.T) {
	repo := &stubRepo{byFile: map[string]int{"weekly.pdf": 4}}
	srv := newTestServer(&stubUploader{}, repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/offers/file", strings.NewReader(`{"filename": "weekly.pdf"}`))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "4 offers deleted for file weekly.pdf", rec.Body.String())
	assert.Equal(t, "weekly.pdf", repo.gotFile)
}

func TestHandleDeleteOffersByFileRejectsEmptyBody(t *testing.T) {
	srv := newTestServer(&stubUploader{}, &stubRepo{})

	req := httptest.NewRequest(http.MethodDelete, "/api/offers/file", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExportOffers(t *testing.T) {
	repo := &stubRepo{offers: []*entity.Offer{
		{StoreName: "Penny", ProductName: "Bread", Quantity: "500g", Price: "1.19",
			OfferDateStart: "2026-08-24", OfferDateEnd: "2026-08-30", SourceFile: "weekly.pdf"},
	}}
	srv := newTestServer(&stubUploader{}, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/offers/export", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "offers.xlsx")

	wb, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer wb.Close()

	store, err := wb.GetCellValue("Offers", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Penny", store)
	price, err := wb.GetCellValue("Offers", "E2")
	require.NoError(t, err)
	assert.Equal(t, "1.19", price)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&stubUploader{}, &stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
