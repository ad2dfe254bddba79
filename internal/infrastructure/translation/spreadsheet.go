// Package translation loads the course-code to translated-description
// catalog used by spreadsheet export.
package translation

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"GPAConverter/internal/domain"
	"GPAConverter/internal/ports"
)

// SpreadsheetSource reads the catalog from a two-column spreadsheet: course
// code, translated description. No header row is expected; rows with fewer
// than two cells are skipped.
type SpreadsheetSource struct {
	path string
}

var _ ports.TranslationSource = (*SpreadsheetSource)(nil)

// NewSpreadsheetSource points the loader at a .xlsx or .csv file.
func NewSpreadsheetSource(path string) *SpreadsheetSource {
	return &SpreadsheetSource{path: path}
}

// Load parses the catalog, picking the format by file extension.
func (s *SpreadsheetSource) Load(ctx context.Context) (domain.Translations, error) {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".xlsx":
		return s.loadXLSX()
	case ".csv":
		return s.loadCSV()
	default:
		return nil, fmt.Errorf("unsupported translation format %q (want .xlsx or .csv)", filepath.Ext(s.path))
	}
}

func (s *SpreadsheetSource) loadXLSX() (domain.Translations, error) {
	book, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open translations: %w", err)
	}
	defer book.Close()

	rows, err := book.GetRows(book.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}

	table := make(domain.Translations, len(rows))
	for _, row := range rows {
		addRow(table, row)
	}
	return table, nil
}

func (s *SpreadsheetSource) loadCSV() (domain.Translations, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open translations: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	table := domain.Translations{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read translations: %w", err)
		}
		addRow(table, row)
	}
	return table, nil
}

func addRow(table domain.Translations, row []string) {
	if len(row) < 2 {
		return
	}
	code := strings.TrimSpace(row[0])
	if code == "" {
		return
	}
	table[code] = strings.TrimSpace(row[1])
}

// StaticSource serves a fixed catalog. It backs runs without a translation
// spreadsheet and keeps tests away from the filesystem.
type StaticSource struct {
	table domain.Translations
}

var _ ports.TranslationSource = (*StaticSource)(nil)

// NewStaticSource wraps an in-memory catalog; nil means empty.
func NewStaticSource(table domain.Translations) *StaticSource {
	if table == nil {
		table = domain.Translations{}
	}
	return &StaticSource{table: table}
}

// Load returns the wrapped catalog.
func (s *StaticSource) Load(ctx context.Context) (domain.Translations, error) {
	return s.table, nil
}
