package transcript

import (
	"errors"
	"math"
	"testing"

	"GPAConverter/internal/domain"
	"GPAConverter/pkg/gradescale"
)

func scaleOne(t *testing.T) gradescale.Scale {
	t.Helper()
	for _, s := range gradescale.DefaultScales() {
		if s.ID == 1 {
			return s
		}
	}
	t.Fatal("default scale 1 missing")
	return gradescale.Scale{}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDecimalAverageIsCreditWeighted(t *testing.T) {
	t.Parallel()

	records := domain.Transcript{
		{Code: "INE5401", Credits: 4, Grade: 8.5},
		{Code: "INE5402", Credits: 2, Grade: 6.0},
	}

	got, err := DecimalAverage(records)
	if err != nil {
		t.Fatalf("DecimalAverage: %v", err)
	}
	if want := 46.0 / 6.0; !almostEqual(got, want) {
		t.Errorf("DecimalAverage = %v, want %v", got, want)
	}
}

func TestDecimalAverageSingleRecord(t *testing.T) {
	t.Parallel()

	got, err := DecimalAverage(domain.Transcript{{Code: "INE5403", Credits: 6, Grade: 8.0}})
	if err != nil {
		t.Fatalf("DecimalAverage: %v", err)
	}
	if got != 8.0 {
		t.Errorf("DecimalAverage = %v, want 8.0", got)
	}
}

func TestGPAAverageIsCreditWeighted(t *testing.T) {
	t.Parallel()

	records := domain.Transcript{
		{Code: "INE5404", Credits: 3, Grade: 9.5},
		{Code: "INE5405", Credits: 1, Grade: 5.0},
	}

	got, err := GPAAverage(records, scaleOne(t))
	if err != nil {
		t.Fatalf("GPAAverage: %v", err)
	}
	if !almostEqual(got, 3.5) {
		t.Errorf("GPAAverage = %v, want 3.5", got)
	}
}

func TestAveragesRejectEmptyTranscript(t *testing.T) {
	t.Parallel()

	if _, err := DecimalAverage(nil); !errors.Is(err, ErrEmptyTranscript) {
		t.Errorf("DecimalAverage(nil) error = %v, want ErrEmptyTranscript", err)
	}
	if _, err := GPAAverage(domain.Transcript{}, scaleOne(t)); !errors.Is(err, ErrEmptyTranscript) {
		t.Errorf("GPAAverage(empty) error = %v, want ErrEmptyTranscript", err)
	}

	weightless := domain.Transcript{{Code: "INE5409", Credits: 0, Grade: 9}}
	if _, err := DecimalAverage(weightless); !errors.Is(err, ErrEmptyTranscript) {
		t.Errorf("DecimalAverage(zero credits) error = %v, want ErrEmptyTranscript", err)
	}
	if _, err := GPAAverage(weightless, scaleOne(t)); !errors.Is(err, ErrEmptyTranscript) {
		t.Errorf("GPAAverage(zero credits) error = %v, want ErrEmptyTranscript", err)
	}
}

func TestGPAAveragePropagatesConversionErrors(t *testing.T) {
	t.Parallel()

	records := domain.Transcript{{Code: "INE5406", Credits: 4, Grade: 11.0}}
	if _, err := GPAAverage(records, scaleOne(t)); !errors.Is(err, gradescale.ErrOutOfDomain) {
		t.Errorf("GPAAverage error = %v, want ErrOutOfDomain", err)
	}
}

func TestTotalCredits(t *testing.T) {
	t.Parallel()

	records := domain.Transcript{
		{Code: "INE5407", Credits: 4, Grade: 9.0},
		{Code: "INE5408", Credits: 2.5, Grade: 7.0},
	}
	if got := TotalCredits(records); !almostEqual(got, 6.5) {
		t.Errorf("TotalCredits = %v, want 6.5", got)
	}
	if got := TotalCredits(nil); got != 0 {
		t.Errorf("TotalCredits(nil) = %v, want 0", got)
	}
}
