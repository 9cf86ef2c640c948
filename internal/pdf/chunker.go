package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/flyerscan/offers-tracker/internal/common"
)

// Chunk is a contiguous page-range sub-document written to its own temp file.
// The index traces it back to source order.
type Chunk struct {
	Index int
	Path  string
	Pages int
}

// Chunker splits a source PDF into chunk artifacts of at most pagesPerChunk
// pages each. Chunks are fully independent of the source document; the caller
// may discard the source right after Split returns.
type Chunker struct {
	tempDir string
	log     *slog.Logger
}

// NewChunker creates a chunker writing artifacts under tempDir
// (the system temp dir when empty).
func NewChunker(tempDir string, logger *slog.Logger) *Chunker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chunker{tempDir: tempDir, log: logger}
}

// Split partitions the source pages into consecutive groups of pagesPerChunk
// pages, the last group possibly shorter. An unparseable source (empty bytes,
// truncated or non-PDF input) is a decode failure and propagates.
func (c *Chunker) Split(ctx context.Context, sourcePath string, pagesPerChunk int) ([]Chunk, error) {
	if pagesPerChunk < 1 {
		return nil, fmt.Errorf("pagesPerChunk must be >= 1, got %d", pagesPerChunk)
	}

	total, err := api.PageCountFile(sourcePath)
	if err != nil {
		return nil, common.NewDecodeError("source is not a parseable PDF", err)
	}
	if total == 0 {
		return nil, common.NewDecodeError("source PDF has no pages", nil)
	}

	var chunks []Chunk
	cleanup := func() {
		for _, ch := range chunks {
			_ = os.Remove(ch.Path)
		}
	}

	for index, start := 0, 1; start <= total; index, start = index+1, start+pagesPerChunk {
		select {
		case <-ctx.Done():
			cleanup()
			return nil, ctx.Err()
		default:
		}

		end := start + pagesPerChunk - 1
		if end > total {
			end = total
		}

		f, err := os.CreateTemp(c.tempDir, fmt.Sprintf("pdf_chunk_%d_*.pdf", index))
		if err != nil {
			cleanup()
			return nil, common.NewIOError("create chunk file", err)
		}
		outPath := f.Name()
		if err := f.Close(); err != nil {
			cleanup()
			return nil, common.NewIOError("close chunk file", err)
		}

		pageRange := []string{fmt.Sprintf("%d-%d", start, end)}
		if err := api.TrimFile(sourcePath, outPath, pageRange, nil); err != nil {
			_ = os.Remove(outPath)
			cleanup()
			return nil, common.NewIOError(fmt.Sprintf("write chunk %d (pages %d-%d)", index, start, end), err)
		}

		chunks = append(chunks, Chunk{Index: index, Path: outPath, Pages: end - start + 1})
	}

	c.log.Info("pdf.split.ok",
		"source", sourcePath,
		"pages", total,
		"pages_per_chunk", pagesPerChunk,
		"chunks", len(chunks),
	)
	return chunks, nil
}
