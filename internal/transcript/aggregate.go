// Package transcript holds the pure computations over scraped transcripts:
// credit-weighted averages, enrichment for export, and grade simulation.
package transcript

import (
	"errors"
	"fmt"

	"GPAConverter/internal/domain"
	"GPAConverter/pkg/gradescale"
)

// ErrEmptyTranscript reports an average over zero records or zero total
// credit weight.
var ErrEmptyTranscript = errors.New("transcript has no credit-weighted records")

// DecimalAverage computes the credit-weighted mean of the decimal grades,
// the institution's cumulative index. No rounding is applied; presentation
// is the caller's concern.
func DecimalAverage(t domain.Transcript) (float64, error) {
	var weighted, credits float64
	for _, rec := range t {
		weighted += rec.Credits * rec.Grade
		credits += rec.Credits
	}
	if credits == 0 {
		return 0, ErrEmptyTranscript
	}
	return weighted / credits, nil
}

// GPAAverage computes the credit-weighted mean of the per-course GPA values
// under the given scale.
func GPAAverage(t domain.Transcript, scale gradescale.Scale) (float64, error) {
	var weighted, credits float64
	for _, rec := range t {
		gpa, err := scale.Convert(rec.Grade)
		if err != nil {
			return 0, fmt.Errorf("course %s: %w", rec.Code, err)
		}
		weighted += rec.Credits * gpa
		credits += rec.Credits
	}
	if credits == 0 {
		return 0, ErrEmptyTranscript
	}
	return weighted / credits, nil
}

// TotalCredits sums the credit weights of a transcript.
func TotalCredits(t domain.Transcript) float64 {
	var credits float64
	for _, rec := range t {
		credits += rec.Credits
	}
	return credits
}
