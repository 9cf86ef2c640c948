package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/flyerscan/offers-tracker/internal/export"
	"github.com/flyerscan/offers-tracker/internal/offers"
	"github.com/flyerscan/offers-tracker/internal/pipeline"
)

// Uploader runs the extraction pipeline for one uploaded PDF.
type Uploader interface {
	ProcessUpload(ctx context.Context, upload io.Reader, filename string, pagesPerChunk int) error
}

// Server exposes the offers REST surface.
type Server struct {
	uploader       Uploader
	offers         *offers.Service
	export         *export.Service
	maxUploadBytes int64
	logger         *slog.Logger
}

func New(uploader Uploader, offersSvc *offers.Service, exportSvc *export.Service, maxUploadMB int64, logger *slog.Logger) *Server {
	if maxUploadMB <= 0 {
		maxUploadMB = 64
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		uploader:       uploader,
		offers:         offersSvc,
		export:         exportSvc,
		maxUploadBytes: maxUploadMB << 20,
		logger:         logger,
	}
}

// Routes builds the request mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/upload", s.handleUpload)
	mux.HandleFunc("GET /api/offers", s.handleListOffers)
	mux.HandleFunc("GET /api/offers/export", s.handleExportOffers)
	mux.HandleFunc("DELETE /api/offers/file", s.handleDeleteOffersByFile)
	mux.HandleFunc("DELETE /api/offers/{id}", s.handleDeleteOffer)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// handleUpload receives a PDF and processes it synchronously: the response is
// only written once every page has been extracted and saved, or the pipeline
// failed. The failure message is returned verbatim.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing 'file' part: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Warn("upload file close error", "error", err)
		}
	}()

	pagesPerChunk := pipeline.DefaultPagesPerChunk
	if v := strings.TrimSpace(r.FormValue("pagesPerChunk")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "pagesPerChunk must be a positive integer", http.StatusBadRequest)
			return
		}
		pagesPerChunk = n
	}

	s.logger.Info("upload received",
		"filename", header.Filename,
		"size", header.Size,
		"pages_per_chunk", pagesPerChunk,
	)

	// a client disconnect must not halt in-flight extraction work
	ctx := context.WithoutCancel(r.Context())
	if err := s.uploader.ProcessUpload(ctx, file, header.Filename, pagesPerChunk); err != nil {
		http.Error(w, "processing failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "file processed and offers saved")
}

func (s *Server) handleListOffers(w http.ResponseWriter, r *http.Request) {
	recs, err := s.offers.ListOffers(r.Context())
	if err != nil {
		http.Error(w, "list offers: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, recs)
}

func (s *Server) handleDeleteOffer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "id must be a UUID", http.StatusBadRequest)
		return
	}
	if err := s.offers.DeleteOffer(r.Context(), id); err != nil {
		http.Error(w, "delete offer: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "offer "+id.String()+" deleted")
}

func (s *Server) handleDeleteOffersByFile(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.Filename) == "" {
		http.Error(w, "body must be JSON with a 'filename' field", http.StatusBadRequest)
		return
	}
	n, err := s.offers.DeleteOffersByFile(r.Context(), payload.Filename)
	if err != nil {
		http.Error(w, "delete offers by file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, strconv.Itoa(n)+" offers deleted for file "+payload.Filename)
}

func (s *Server) handleExportOffers(w http.ResponseWriter, r *http.Request) {
	b, err := s.export.ExportOffersXLSX(r.Context())
	if err != nil {
		http.Error(w, "export offers: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="offers.xlsx"`)
	_, _ = w.Write(b)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write json response", "error", err)
	}
}
