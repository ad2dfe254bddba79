// Package export serializes enriched transcripts to spreadsheet files.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"GPAConverter/internal/ports"
)

var header = []string{"Code", "Credits", "Grade", "GPA", "Subject", "Translated"}

// ForPath picks a writer by destination extension.
func ForPath(path string) (ports.TranscriptExporter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return NewXLSXWriter(path), nil
	case ".csv":
		return NewCSVWriter(path), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}
