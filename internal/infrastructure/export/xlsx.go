package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"GPAConverter/internal/domain"
	"GPAConverter/internal/ports"
)

const sheetName = "Transcript"

// XLSXWriter writes the enriched transcript to an Excel workbook with a
// single sheet.
type XLSXWriter struct {
	path string
}

var _ ports.TranscriptExporter = (*XLSXWriter)(nil)

// NewXLSXWriter sets the workbook destination.
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Export writes the header and one row per record, then saves the workbook.
// It returns the path the file was saved under.
func (w *XLSXWriter) Export(ctx context.Context, records []domain.EnrichedRecord) (string, error) {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName(book.GetSheetName(0), sheetName); err != nil {
		return "", fmt.Errorf("prepare sheet: %w", err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := book.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("row %d: %w", i+2, err)
		}
		row := []any{rec.Code, rec.Credits, rec.Grade, rec.GPA, rec.Name, rec.TranslatedName}
		if err := book.SetSheetRow(sheetName, cell, &row); err != nil {
			return "", fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := book.SaveAs(w.path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	return w.path, nil
}
