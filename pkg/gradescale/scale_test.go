package gradescale

import (
	"errors"
	"math"
	"testing"
)

func scaleByID(t *testing.T, id int) Scale {
	t.Helper()
	for _, s := range DefaultScales() {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("no default scale with id %d", id)
	return Scale{}
}

func TestConvertStepSemantics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scaleID int
		grade   float64
		want    float64
	}{
		{1, 10, 4.0},
		{1, 9.5, 4.0},
		{1, 9, 4.0},
		{1, 8.9, 3.0},
		{1, 7, 3.0},
		{1, 5, 2.0},
		{1, 4.99, 1.0},
		{1, 3, 1.0},
		{1, 2.9, 0.0},
		{2, 9.65, 3.9},
		{2, 6.3, 1.2},
		{2, 6.05, 1.0},
		{2, 5.9, 0.0},
		{3, 9.3, 4.0},
		{3, 9.2, 3.7},
		{3, 6.5, 1.0},
		{3, 6.4, 0.0},
	}

	for _, tc := range cases {
		got, err := scaleByID(t, tc.scaleID).Convert(tc.grade)
		if err != nil {
			t.Fatalf("Convert(%v) on scale %d: %v", tc.grade, tc.scaleID, err)
		}
		if got != tc.want {
			t.Errorf("Convert(%v) on scale %d = %v, want %v", tc.grade, tc.scaleID, got, tc.want)
		}
	}
}

func TestConvertBreakpointsAreInclusive(t *testing.T) {
	t.Parallel()

	for _, s := range DefaultScales() {
		for _, e := range s.Entries {
			got, err := s.Convert(e.Min)
			if err != nil {
				t.Fatalf("scale %d: Convert(%v): %v", s.ID, e.Min, err)
			}
			if got != e.GPA {
				t.Errorf("scale %d: Convert(%v) = %v, want %v", s.ID, e.Min, got, e.GPA)
			}
		}
	}
}

func TestConvertZeroGrade(t *testing.T) {
	t.Parallel()

	for _, s := range DefaultScales() {
		got, err := s.Convert(0)
		if err != nil {
			t.Fatalf("scale %d: Convert(0): %v", s.ID, err)
		}
		if got != 0 {
			t.Errorf("scale %d: Convert(0) = %v, want 0", s.ID, got)
		}
	}
}

func TestConvertIsMonotonic(t *testing.T) {
	t.Parallel()

	for _, s := range DefaultScales() {
		prev := -1.0
		for i := 0; i <= 1000; i++ {
			grade := float64(i) / 100
			got, err := s.Convert(grade)
			if err != nil {
				t.Fatalf("scale %d: Convert(%v): %v", s.ID, grade, err)
			}
			if got < prev {
				t.Fatalf("scale %d: Convert(%v) = %v dropped below %v", s.ID, grade, got, prev)
			}
			prev = got
		}
	}
}

func TestConvertRejectsOutOfDomainGrades(t *testing.T) {
	t.Parallel()

	s := scaleByID(t, 1)
	for _, grade := range []float64{-0.01, -3, 10.01, 42, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := s.Convert(grade); !errors.Is(err, ErrOutOfDomain) {
			t.Errorf("Convert(%v) error = %v, want ErrOutOfDomain", grade, err)
		}
	}
}

func TestConvertNeverClamps(t *testing.T) {
	t.Parallel()

	s := scaleByID(t, 1)
	if _, err := s.Convert(s.MaxGrade + 0.001); err == nil {
		t.Fatal("grade just above the maximum should not be clamped to the top entry")
	}
}
