package pdf

import (
	"context"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyerscan/offers-tracker/internal/common"
)

func TestRenderOneImagePerPageInOrder(t *testing.T) {
	chunk := writeTestPDF(t, 3)
	outDir := t.TempDir()
	r := NewRasterizer(72, 85, outDir, nil)

	images, err := r.Render(context.Background(), chunk)
	require.NoError(t, err)
	require.Len(t, images, 3)

	for i, img := range images {
		assert.Equal(t, i, img.PageNumber)

		f, err := os.Open(img.Path)
		require.NoError(t, err)
		decoded, err := jpeg.Decode(f)
		require.NoError(t, f.Close())
		require.NoError(t, err, "page %d must be a decodable JPEG", i)
		assert.Positive(t, decoded.Bounds().Dx())
		assert.Positive(t, decoded.Bounds().Dy())
	}
}

func TestRenderRejectsUnreadableChunk(t *testing.T) {
	outDir := t.TempDir()
	bad := filepath.Join(outDir, "broken.pdf")
	require.NoError(t, os.WriteFile(bad, []byte("not a pdf"), 0o644))

	r := NewRasterizer(72, 85, outDir, nil)
	_, err := r.Render(context.Background(), bad)
	require.Error(t, err)
	assert.Equal(t, common.KindIO, common.KindOf(err))

	// a failed render must leave no image artifacts behind
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, "broken.pdf", e.Name())
	}
}

func TestRenderDefaultsApplied(t *testing.T) {
	r := NewRasterizer(0, 0, "", nil)
	assert.Equal(t, 300, r.dpi)
	assert.Equal(t, 85, r.quality)
}
