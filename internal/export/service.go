package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/flyerscan/offers-tracker/internal/repository"
)

// Service is a tiny façade over the offer repository that produces XLSX bytes.
type Service struct {
	repo   repository.OfferRepository
	logger *slog.Logger
}

func NewService(repo repository.OfferRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportOffersXLSX returns an XLSX workbook (as bytes) with all stored offers.
func (s *Service) ExportOffersXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	recs, err := s.repo.ListOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("query offers: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Offers"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Store",
		"Product",
		"Brand",
		"Quantity",
		"Price",
		"Original Price",
		"Valid From",
		"Valid To",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	strOrEmpty := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.StoreName)
		write(2, r.ProductName)
		write(3, strOrEmpty(r.Brand))
		write(4, r.Quantity)
		write(5, r.Price)
		write(6, strOrEmpty(r.OriginalPrice))
		write(7, r.OfferDateStart)
		write(8, r.OfferDateEnd)
		write(9, r.SourceFile)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "B", 26)
	_ = f.SetColWidth(sheet, "C", "D", 18)
	_ = f.SetColWidth(sheet, "E", "F", 14)
	_ = f.SetColWidth(sheet, "G", "H", 12)
	_ = f.SetColWidth(sheet, "I", "I", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
