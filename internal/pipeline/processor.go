package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flyerscan/offers-tracker/internal/common"
	"github.com/flyerscan/offers-tracker/internal/llm"
	"github.com/flyerscan/offers-tracker/internal/pdf"
)

// DefaultPagesPerChunk applies when the upload does not specify one.
const DefaultPagesPerChunk = 5

// Chunker splits a source PDF into page-range chunk artifacts.
type Chunker interface {
	Split(ctx context.Context, sourcePath string, pagesPerChunk int) ([]pdf.Chunk, error)
}

// Rasterizer renders every page of a chunk into image artifacts.
type Rasterizer interface {
	Render(ctx context.Context, chunkPath string) ([]pdf.PageImage, error)
}

// Saver persists one page's offer candidates as a batch.
type Saver interface {
	SaveAll(ctx context.Context, candidates []llm.OfferFields, sourceFile string) error
}

// Processor sequences chunking, rasterization, extraction and persistence for
// one upload. Chunks and pages run strictly sequentially in source order; the
// first error aborts the rest of the upload. Every transient artifact (source
// PDF, chunk PDFs, page images) is removed on every exit path.
type Processor struct {
	chunker    Chunker
	rasterizer Rasterizer
	extractor  llm.OfferExtractor
	saver      Saver
	tempDir    string
	logger     *slog.Logger
}

func NewProcessor(chunker Chunker, rasterizer Rasterizer, extractor llm.OfferExtractor, saver Saver, tempDir string, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		chunker:    chunker,
		rasterizer: rasterizer,
		extractor:  extractor,
		saver:      saver,
		tempDir:    tempDir,
		logger:     logger,
	}
}

// ProcessUpload runs the full pipeline for one uploaded PDF. filename is the
// client-supplied name, used only to attribute persisted offers to their
// upload. Offers persisted by earlier pages stay committed when a later page
// fails; there is no upload-level rollback.
func (p *Processor) ProcessUpload(ctx context.Context, upload io.Reader, filename string, pagesPerChunk int) (err error) {
	if pagesPerChunk < 1 {
		pagesPerChunk = DefaultPagesPerChunk
	}
	start := time.Now()
	p.logger.Info("pipeline.upload.start",
		"filename", filename,
		"pages_per_chunk", pagesPerChunk,
	)
	defer func() {
		if err != nil {
			p.logger.Error("pipeline.upload.failed",
				"filename", filename,
				"kind", string(common.KindOf(err)),
				"error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
		} else {
			p.logger.Info("pipeline.upload.ok",
				"filename", filename,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
		}
	}()

	sourcePath, err := p.stageUpload(upload, filename)
	if err != nil {
		return err
	}
	defer p.removeArtifact(sourcePath, "source")

	chunks, err := p.chunker.Split(ctx, sourcePath, pagesPerChunk)
	if err != nil {
		return err
	}
	// safety net: processChunk removes its own chunk file, but a failure in
	// chunk i leaves the files of chunks i+1..n behind
	defer func() {
		for _, chunk := range chunks {
			p.removeArtifact(chunk.Path, "chunk")
		}
	}()

	for _, chunk := range chunks {
		if err := p.processChunk(ctx, chunk, filename); err != nil {
			return err
		}
	}
	return nil
}

// stageUpload materializes the upload bytes to a temporary source artifact.
func (p *Processor) stageUpload(upload io.Reader, filename string) (string, error) {
	f, err := os.CreateTemp(p.tempDir, "upload-*-"+sanitizeFilename(filename))
	if err != nil {
		return "", common.NewIOError("create source file", err)
	}
	_, copyErr := io.Copy(f, upload)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(f.Name())
		if copyErr != nil {
			return "", common.NewIOError("write source file", copyErr)
		}
		return "", common.NewIOError("close source file", closeErr)
	}
	return f.Name(), nil
}

// processChunk renders, extracts and saves one chunk. The chunk file is
// removed before returning, so it never outlives its own processing.
func (p *Processor) processChunk(ctx context.Context, chunk pdf.Chunk, filename string) (err error) {
	defer p.removeArtifact(chunk.Path, "chunk")

	images, err := p.rasterizer.Render(ctx, chunk.Path)
	if err != nil {
		return err
	}
	// safety net: processPage removes each image as it finishes, but a
	// mid-chunk failure leaves the remaining siblings behind
	defer func() {
		for _, img := range images {
			p.removeArtifact(img.Path, "page image")
		}
	}()

	for _, img := range images {
		if err := p.processPage(ctx, chunk, img, filename); err != nil {
			return err
		}
	}
	return nil
}

// processPage runs extract-then-save for one page image. The image artifact is
// removed before returning, success or failure.
func (p *Processor) processPage(ctx context.Context, chunk pdf.Chunk, img pdf.PageImage, filename string) (err error) {
	defer p.removeArtifact(img.Path, "page image")

	candidates, _, err := p.extractor.ExtractOffers(ctx, img.Path)
	if err != nil {
		return fmt.Errorf("extract chunk %d page %d: %w", chunk.Index, img.PageNumber, err)
	}
	if err := p.saver.SaveAll(ctx, candidates, filename); err != nil {
		return fmt.Errorf("save chunk %d page %d: %w", chunk.Index, img.PageNumber, err)
	}
	return nil
}

func (p *Processor) removeArtifact(path, what string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.Warn("pipeline.cleanup.failed", "artifact", what, "path", path, "error", err)
	}
}

// sanitizeFilename keeps the upload's base name usable as a temp-file suffix.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "upload.pdf"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '*', '?', '/', '\\', ':':
			return '_'
		}
		return r
	}, base)
}
