package pdf

import (
	"context"
	"fmt"
	"image/jpeg"
	"log/slog"
	"os"

	"github.com/gen2brain/go-fitz"

	"github.com/flyerscan/offers-tracker/internal/common"
)

// PageImage is one rendered page of one chunk, written to its own temp file.
type PageImage struct {
	PageNumber int
	Path       string
}

// Rasterizer renders every page of a chunk into a JPEG artifact.
type Rasterizer struct {
	dpi     int
	quality int
	tempDir string
	log     *slog.Logger
}

// NewRasterizer creates a rasterizer. dpi defaults to 300 and quality to 85
// when out of range.
func NewRasterizer(dpi, quality int, tempDir string, logger *slog.Logger) *Rasterizer {
	if dpi <= 0 {
		dpi = 300
	}
	if quality < 1 || quality > 100 {
		quality = 85
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Rasterizer{dpi: dpi, quality: quality, tempDir: tempDir, log: logger}
}

// Render produces one JPEG per page, in page order. A failure on any page
// aborts the remaining pages of the chunk; images written so far are removed
// before the error is returned, so a failed Render leaves no artifacts behind.
func (r *Rasterizer) Render(ctx context.Context, chunkPath string) ([]PageImage, error) {
	doc, err := fitz.New(chunkPath)
	if err != nil {
		return nil, common.NewIOError("open chunk for rendering", err)
	}
	defer doc.Close()

	total := doc.NumPage()
	if total == 0 {
		return nil, common.NewIOError("chunk has no pages", nil)
	}

	images := make([]PageImage, 0, total)
	cleanup := func() {
		for _, img := range images {
			_ = os.Remove(img.Path)
		}
	}

	for page := 0; page < total; page++ {
		select {
		case <-ctx.Done():
			cleanup()
			return nil, ctx.Err()
		default:
		}

		img, err := doc.ImageDPI(page, float64(r.dpi))
		if err != nil {
			cleanup()
			return nil, common.NewIOError(fmt.Sprintf("rasterize page %d", page), err)
		}

		f, err := os.CreateTemp(r.tempDir, fmt.Sprintf("chunk_image_%d_*.jpg", page))
		if err != nil {
			cleanup()
			return nil, common.NewIOError(fmt.Sprintf("create image file for page %d", page), err)
		}
		encErr := jpeg.Encode(f, img, &jpeg.Options{Quality: r.quality})
		closeErr := f.Close()
		if encErr != nil || closeErr != nil {
			_ = os.Remove(f.Name())
			cleanup()
			if encErr != nil {
				return nil, common.NewIOError(fmt.Sprintf("encode page %d as JPEG", page), encErr)
			}
			return nil, common.NewIOError(fmt.Sprintf("close image file for page %d", page), closeErr)
		}

		images = append(images, PageImage{PageNumber: page, Path: f.Name()})
	}

	r.log.Info("pdf.render.ok",
		"chunk", chunkPath,
		"pages", total,
		"dpi", r.dpi,
	)
	return images, nil
}
