package pdf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyerscan/offers-tracker/internal/common"
)

func TestSplitChunkCoverage(t *testing.T) {
	tests := []struct {
		name          string
		pages         int
		pagesPerChunk int
		wantCounts    []int
	}{
		{"seven pages in fives", 7, 5, []int{5, 2}},
		{"even split", 6, 3, []int{3, 3}},
		{"exact multiple", 5, 5, []int{5}},
		{"single page", 1, 5, []int{1}},
		{"chunk per page", 3, 1, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := writeTestPDF(t, tt.pages)
			c := NewChunker(t.TempDir(), nil)

			chunks, err := c.Split(context.Background(), source, tt.pagesPerChunk)
			require.NoError(t, err)
			require.Len(t, chunks, len(tt.wantCounts))

			total := 0
			for i, chunk := range chunks {
				assert.Equal(t, i, chunk.Index)
				assert.Equal(t, tt.wantCounts[i], chunk.Pages)

				got, err := api.PageCountFile(chunk.Path)
				require.NoError(t, err, "chunk %d must be a parseable PDF", i)
				assert.Equal(t, tt.wantCounts[i], got, "chunk %d page count", i)
				total += got
			}
			assert.Equal(t, tt.pages, total, "chunk page counts must cover the source")

			for _, chunk := range chunks {
				require.NoError(t, os.Remove(chunk.Path))
			}
		})
	}
}

func TestSplitChunksOutliveSource(t *testing.T) {
	source := writeTestPDF(t, 3)
	c := NewChunker(t.TempDir(), nil)

	chunks, err := c.Split(context.Background(), source, 2)
	require.NoError(t, err)
	require.NoError(t, os.Remove(source))

	for _, chunk := range chunks {
		_, err := api.PageCountFile(chunk.Path)
		assert.NoError(t, err, "chunk %d must stay readable after the source is gone", chunk.Index)
	}
}

func TestSplitRejectsUnparseableSource(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content []byte
	}{
		{"empty file", nil},
		{"not a pdf", []byte("definitely not a pdf")},
		{"truncated header", []byte("%PDF-1.4\n1 0 obj")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := filepath.Join(dir, tt.name+".pdf")
			require.NoError(t, os.WriteFile(source, tt.content, 0o644))

			c := NewChunker(dir, nil)
			_, err := c.Split(context.Background(), source, 5)
			require.Error(t, err)
			assert.Equal(t, common.KindDecode, common.KindOf(err))
		})
	}
}

func TestSplitRejectsInvalidPagesPerChunk(t *testing.T) {
	source := writeTestPDF(t, 2)
	c := NewChunker(t.TempDir(), nil)

	_, err := c.Split(context.Background(), source, 0)
	require.Error(t, err)
}
