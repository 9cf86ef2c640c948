package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyerscan/offers-tracker/internal/common"
	"github.com/flyerscan/offers-tracker/internal/llm"
	"github.com/flyerscan/offers-tracker/internal/pdf"
)

// fakeChunker materializes real chunk files so cleanup can be observed.
type fakeChunker struct {
	tempDir    string
	totalPages int
	splitErr   error

	gotSource        string
	gotPagesPerChunk int
}

func (f *fakeChunker) Split(_ context.Context, sourcePath string, pagesPerChunk int) ([]pdf.Chunk, error) {
	f.gotSource = sourcePath
	f.gotPagesPerChunk = pagesPerChunk
	if f.splitErr != nil {
		return nil, f.splitErr
	}
	var chunks []pdf.Chunk
	for start := 0; start < f.totalPages; start += pagesPerChunk {
		pages := pagesPerChunk
		if rest := f.totalPages - start; rest < pages {
			pages = rest
		}
		path := filepath.Join(f.tempDir, fmt.Sprintf("chunk_%d.pdf", len(chunks)))
		if err := os.WriteFile(path, []byte("chunk"), 0o644); err != nil {
			return nil, err
		}
		chunks = append(chunks, pdf.Chunk{Index: len(chunks), Path: path, Pages: pages})
	}
	return chunks, nil
}

type fakeRasterizer struct {
	tempDir string
	pages   map[string]int // chunk path -> page count
}

func (f *fakeRasterizer) Render(_ context.Context, chunkPath string) ([]pdf.PageImage, error) {
	n, ok := f.pages[chunkPath]
	if !ok {
		return nil, common.NewIOError("render chunk", errors.New("unknown chunk"))
	}
	images := make([]pdf.PageImage, n)
	for i := range images {
		path := filepath.Join(f.tempDir, fmt.Sprintf("%s_page_%d.jpg", filepath.Base(chunkPath), i))
		if err := os.WriteFile(path, []byte("jpeg"), 0o644); err != nil {
			return nil, err
		}
		images[i] = pdf.PageImage{PageNumber: i, Path: path}
	}
	return images, nil
}

type fakeExtractor struct {
	calls     []string
	offersPer int
	failOn    int // 1-based call number to fail on, 0 = never
}

func (f *fakeExtractor) ExtractOffers(_ context.Context, imagePath string) ([]llm.OfferFields, []byte, error) {
	f.calls = append(f.calls, imagePath)
	if f.failOn > 0 && len(f.calls) == f.failOn {
		return nil, nil, common.NewParseError("no valid answer received", nil)
	}
	out := make([]llm.OfferFields, f.offersPer)
	for i := range out {
		out[i] = llm.OfferFields{
			StoreName:      "Netto",
			ProductName:    "Apples",
			Quantity:       "1kg",
			Price:          json.Number("2.49"),
			OfferDateStart: "2026-08-24",
			OfferDateEnd:   "2026-08-30",
		}
	}
	return out, nil, nil
}

type fakeSaver struct {
	batches [][]llm.OfferFields
	sources []string
	saveErr error
}

func (f *fakeSaver) SaveAll(_ context.Context, candidates []llm.OfferFields, sourceFile string) error {
	f.batches = append(f.batches, candidates)
	f.sources = append(f.sources, sourceFile)
	return f.saveErr
}

func buildProcessor(t *testing.T, totalPages, offersPerPage int) (*Processor, string, *fakeChunker, *fakeRasterizer, *fakeExtractor, *fakeSaver) {
	t.Helper()
	tempDir := t.TempDir()
	chunker := &fakeChunker{tempDir: tempDir, totalPages: totalPages}
	rasterizer := &fakeRasterizer{tempDir: tempDir, pages: map[string]int{}}
	extractor := &fakeExtractor{offersPer: offersPerPage}
	saver := &fakeSaver{}
	p := NewProcessor(chunker, rasterizer, extractor, saver, tempDir, nil)
	return p, tempDir, chunker, rasterizer, extractor, saver
}

// wirePages tells the fake rasterizer how many pages each produced chunk has.
func wirePages(r *fakeRasterizer, tempDir string, counts ...int) {
	for i, n := range counts {
		r.pages[filepath.Join(tempDir, fmt.Sprintf("chunk_%d.pdf", i))] = n
	}
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func TestProcessUploadSevenPagesInChunksOfFive(t *testing.T) {
	p, tempDir, chunker, rasterizer, extractor, saver := buildProcessor(t, 7, 2)
	wirePages(rasterizer, tempDir, 5, 2)

	err := p.ProcessUpload(context.Background(), strings.NewReader("%PDF-1.4 fake"), "weekly.pdf", 5)
	require.NoError(t, err)

	assert.Equal(t, 5, chunker.gotPagesPerChunk)
	assert.Len(t, extractor.calls, 7, "every page of every chunk must be extracted")
	assert.Len(t, saver.batches, 7, "one batch insert per page")
	for _, batch := range saver.batches {
		assert.Len(t, batch, 2)
	}
	for _, src := range saver.sources {
		assert.Equal(t, "weekly.pdf", src, "offers must be attributed to the upload name")
	}
	assert.Empty(t, dirEntries(t, tempDir), "source, chunks and images must all be removed on success")
}

// chunkSnapshotRasterizer records which chunk files still exist at every
// Render call.
type chunkSnapshotRasterizer struct {
	inner    *fakeRasterizer
	snapshot [][]string
}

func (r *chunkSnapshotRasterizer) Render(ctx context.Context, chunkPath string) ([]pdf.PageImage, error) {
	matches, _ := filepath.Glob(filepath.Join(r.inner.tempDir, "chunk_*.pdf"))
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = filepath.Base(m)
	}
	r.snapshot = append(r.snapshot, names)
	return r.inner.Render(ctx, chunkPath)
}

func TestProcessUploadRemovesEachChunkBeforeTheNext(t *testing.T) {
	tempDir := t.TempDir()
	chunker := &fakeChunker{tempDir: tempDir, totalPages: 6}
	rasterizer := &chunkSnapshotRasterizer{inner: &fakeRasterizer{tempDir: tempDir, pages: map[string]int{}}}
	wirePages(rasterizer.inner, tempDir, 2, 2, 2)
	p := NewProcessor(chunker, rasterizer, &fakeExtractor{offersPer: 1}, &fakeSaver{}, tempDir, nil)

	require.NoError(t, p.ProcessUpload(context.Background(), strings.NewReader("pdf"), "flyer.pdf", 2))

	require.Len(t, rasterizer.snapshot, 3)
	assert.Contains(t, rasterizer.snapshot[0], "chunk_0.pdf")
	assert.NotContains(t, rasterizer.snapshot[1], "chunk_0.pdf", "a finished chunk must be removed before the next one starts")
	assert.NotContains(t, rasterizer.snapshot[2], "chunk_0.pdf")
	assert.NotContains(t, rasterizer.snapshot[2], "chunk_1.pdf")
	assert.Empty(t, dirEntries(t, tempDir))
}

func TestProcessUploadFailFastMidChunk(t *testing.T) {
	p, tempDir, _, rasterizer, extractor, saver := buildProcessor(t, 3, 1)
	wirePages(rasterizer, tempDir, 3)
	extractor.failOn = 2

	err := p.ProcessUpload(context.Background(), strings.NewReader("pdf bytes"), "flyer.pdf", 5)
	require.Error(t, err)
	assert.Equal(t, common.KindParse, common.KindOf(err))

	assert.Len(t, extractor.calls, 2, "pages after the failing one must not be extracted")
	assert.Len(t, saver.batches, 1, "only the page before the failure is persisted")
	assert.Empty(t, dirEntries(t, tempDir), "failure must still remove every artifact")
}

func TestProcessUploadSaveFailureAborts(t *testing.T) {
	p, tempDir, _, rasterizer, extractor, saver := buildProcessor(t, 4, 1)
	wirePages(rasterizer, tempDir, 4)
	saver.saveErr = common.NewStoreError("batch insert offers", errors.New("deadlock"))

	err := p.ProcessUpload(context.Background(), strings.NewReader("pdf bytes"), "flyer.pdf", 5)
	require.Error(t, err)
	assert.Equal(t, common.KindStore, common.KindOf(err))

	assert.Len(t, extractor.calls, 1, "the first rejected batch must abort the upload")
	assert.Empty(t, dirEntries(t, tempDir))
}

func TestProcessUploadChunkerFailureCleansSource(t *testing.T) {
	p, tempDir, chunker, _, extractor, _ := buildProcessor(t, 0, 1)
	chunker.splitErr = common.NewDecodeError("source is not a parseable PDF", errors.New("bad header"))

	err := p.ProcessUpload(context.Background(), strings.NewReader("not a pdf"), "broken.pdf", 5)
	require.Error(t, err)
	assert.Equal(t, common.KindDecode, common.KindOf(err))
	assert.Empty(t, extractor.calls)
	assert.Empty(t, dirEntries(t, tempDir), "the staged source must be removed when splitting fails")
}

func TestProcessUploadDefaultsPagesPerChunk(t *testing.T) {
	p, tempDir, chunker, rasterizer, _, _ := buildProcessor(t, 2, 1)
	wirePages(rasterizer, tempDir, 2)

	require.NoError(t, p.ProcessUpload(context.Background(), strings.NewReader("pdf"), "flyer.pdf", 0))
	assert.Equal(t, DefaultPagesPerChunk, chunker.gotPagesPerChunk)

	require.NoError(t, p.ProcessUpload(context.Background(), strings.NewReader("pdf"), "flyer.pdf", -3))
	assert.Equal(t, DefaultPagesPerChunk, chunker.gotPagesPerChunk)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"flyer.pdf", "flyer.pdf"},
		{"  flyer.pdf  ", "flyer.pdf"},
		{"../../etc/passwd", "passwd"},
		{"week*1?.pdf", "week_1_.pdf"},
		{"", "upload.pdf"},
		{".", "upload.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), "input %q", tt.in)
	}
}
