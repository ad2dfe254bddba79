package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"GPAConverter/internal/domain"
	"GPAConverter/internal/ports"
)

// CSVWriter writes the enriched transcript to a plain CSV file with the same
// columns as the workbook export.
type CSVWriter struct {
	path string
}

var _ ports.TranscriptExporter = (*CSVWriter)(nil)

// NewCSVWriter sets the file destination.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Export writes the header and one row per record. It returns the path the
// file was saved under.
func (w *CSVWriter) Export(ctx context.Context, records []domain.EnrichedRecord) (string, error) {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create export directory: %w", err)
		}
	}

	f, err := os.Create(w.path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		f.Close()
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Code,
			formatNumber(rec.Credits),
			formatNumber(rec.Grade),
			formatNumber(rec.GPA),
			rec.Name,
			rec.TranslatedName,
		}
		if err := writer.Write(row); err != nil {
			f.Close()
			return "", fmt.Errorf("write row for %s: %w", rec.Code, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("flush export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}

	return w.path, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
