package transcript

import (
	"fmt"

	"GPAConverter/internal/domain"
	"GPAConverter/pkg/gradescale"
)

// Enrich derives the export view of a transcript. Every record carries its
// GPA under scale plus the translated description, empty when the
// translation table has no entry for the course code.
func Enrich(t domain.Transcript, scale gradescale.Scale, translations domain.Translations) ([]domain.EnrichedRecord, error) {
	enriched := make([]domain.EnrichedRecord, 0, len(t))
	for _, rec := range t {
		gpa, err := scale.Convert(rec.Grade)
		if err != nil {
			return nil, fmt.Errorf("course %s: %w", rec.Code, err)
		}
		enriched = append(enriched, domain.EnrichedRecord{
			CourseRecord:   rec,
			GPA:            gpa,
			TranslatedName: translations[rec.Code],
		})
	}
	return enriched, nil
}

// Merge returns a new transcript with the hypothetical records appended.
// The scraped transcript is left untouched, so repeated simulations start
// from the same baseline.
func Merge(t domain.Transcript, hypothetical ...domain.CourseRecord) domain.Transcript {
	merged := make(domain.Transcript, 0, len(t)+len(hypothetical))
	merged = append(merged, t...)
	merged = append(merged, hypothetical...)
	return merged
}
