package transcript

import (
	"errors"
	"testing"

	"GPAConverter/internal/domain"
	"GPAConverter/pkg/gradescale"
)

func TestEnrichAttachesGPAAndTranslation(t *testing.T) {
	t.Parallel()

	records := domain.Transcript{
		{Code: "INE5409", Name: "Calculo Numerico", Credits: 4, Grade: 9.1},
		{Code: "INE5410", Name: "Programacao Concorrente", Credits: 4, Grade: 6.5},
	}
	translations := domain.Translations{"INE5409": "Numerical Calculus"}

	enriched, err := Enrich(records, scaleOne(t), translations)
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if len(enriched) != 2 {
		t.Fatalf("Enrich returned %d records, want 2", len(enriched))
	}

	first := enriched[0]
	if first.GPA != 4.0 {
		t.Errorf("first GPA = %v, want 4.0", first.GPA)
	}
	if first.TranslatedName != "Numerical Calculus" {
		t.Errorf("first translation = %q, want %q", first.TranslatedName, "Numerical Calculus")
	}

	second := enriched[1]
	if second.GPA != 2.0 {
		t.Errorf("second GPA = %v, want 2.0", second.GPA)
	}
	if second.TranslatedName != "" {
		t.Errorf("second translation = %q, want empty", second.TranslatedName)
	}
}

func TestEnrichKeepsRecordOrder(t *testing.T) {
	t.Parallel()

	records := domain.Transcript{
		{Code: "B", Credits: 2, Grade: 7},
		{Code: "A", Credits: 2, Grade: 9},
	}

	enriched, err := Enrich(records, scaleOne(t), nil)
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if enriched[0].Code != "B" || enriched[1].Code != "A" {
		t.Errorf("Enrich reordered records: %q, %q", enriched[0].Code, enriched[1].Code)
	}
}

func TestEnrichPropagatesConversionErrors(t *testing.T) {
	t.Parallel()

	records := domain.Transcript{{Code: "INE5411", Credits: 4, Grade: -1}}
	if _, err := Enrich(records, scaleOne(t), nil); !errors.Is(err, gradescale.ErrOutOfDomain) {
		t.Errorf("Enrich error = %v, want ErrOutOfDomain", err)
	}
}

func TestMergeLeavesBaselineUntouched(t *testing.T) {
	t.Parallel()

	baseline := domain.Transcript{{Code: "INE5412", Credits: 4, Grade: 8}}
	hypothetical := domain.CourseRecord{Code: "INE5413", Credits: 4, Grade: 10}

	merged := Merge(baseline, hypothetical)

	if len(merged) != 2 {
		t.Fatalf("Merge returned %d records, want 2", len(merged))
	}
	if merged[1].Code != "INE5413" {
		t.Errorf("merged[1].Code = %q, want INE5413", merged[1].Code)
	}
	if len(baseline) != 1 {
		t.Errorf("baseline grew to %d records", len(baseline))
	}
}

func TestMergeWithoutHypotheticals(t *testing.T) {
	t.Parallel()

	baseline := domain.Transcript{{Code: "INE5414", Credits: 4, Grade: 8}}
	merged := Merge(baseline)
	if len(merged) != len(baseline) {
		t.Fatalf("Merge changed length: %d != %d", len(merged), len(baseline))
	}
}
