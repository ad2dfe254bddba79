package gradescale

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownScale reports a scale id with no registered table.
var ErrUnknownScale = errors.New("unknown grade scale")

// ErrOutOfDomain reports a decimal grade outside a scale's valid range.
var ErrOutOfDomain = errors.New("grade outside scale domain")

// Entry is one breakpoint of a conversion table: any grade of at least Min
// earns GPA, unless a higher entry also applies.
type Entry struct {
	Min float64
	GPA float64
}

// Scale is an ordered breakpoint table mapping decimal grades onto a GPA
// scale. Entries run from the highest minimum down to the mandatory zero
// catch-all. Source names the external conversion reference the table was
// taken from.
type Scale struct {
	ID       int
	Name     string
	Source   string
	MaxGrade float64
	Entries  []Entry
}

// Convert maps a decimal grade to the GPA of the entry with the greatest
// minimum not exceeding it. Non-finite grades and grades outside
// [0, MaxGrade] fail with ErrOutOfDomain.
func (s Scale) Convert(grade float64) (float64, error) {
	if math.IsNaN(grade) || math.IsInf(grade, 0) || grade < 0 || grade > s.MaxGrade {
		return 0, fmt.Errorf("grade %v not in [0, %v] of scale %d: %w", grade, s.MaxGrade, s.ID, ErrOutOfDomain)
	}
	for _, e := range s.Entries {
		if grade >= e.Min {
			return e.GPA, nil
		}
	}
	// Unreachable for a registered scale: validate enforces the zero
	// catch-all entry.
	return 0, fmt.Errorf("grade %v not covered by scale %d: %w", grade, s.ID, ErrOutOfDomain)
}

func (s Scale) validate() error {
	if s.MaxGrade <= 0 || math.IsNaN(s.MaxGrade) || math.IsInf(s.MaxGrade, 0) {
		return fmt.Errorf("scale %d: max grade %v must be a positive number", s.ID, s.MaxGrade)
	}
	if len(s.Entries) == 0 {
		return fmt.Errorf("scale %d: empty breakpoint table", s.ID)
	}
	prev := Entry{Min: math.Inf(1), GPA: math.Inf(1)}
	for i, e := range s.Entries {
		if math.IsNaN(e.Min) || math.IsNaN(e.GPA) || math.IsInf(e.Min, 0) || math.IsInf(e.GPA, 0) {
			return fmt.Errorf("scale %d: entry %d is not finite", s.ID, i)
		}
		if e.Min < 0 || e.GPA < 0 {
			return fmt.Errorf("scale %d: entry %d has negative values", s.ID, i)
		}
		if e.Min > s.MaxGrade {
			return fmt.Errorf("scale %d: entry %d minimum %v exceeds max grade %v", s.ID, i, e.Min, s.MaxGrade)
		}
		if e.Min >= prev.Min {
			return fmt.Errorf("scale %d: entry %d breaks the strictly decreasing minimum order", s.ID, i)
		}
		if e.GPA > prev.GPA {
			return fmt.Errorf("scale %d: entry %d awards a higher GPA than the entry above it", s.ID, i)
		}
		prev = e
	}
	if last := s.Entries[len(s.Entries)-1]; last.Min != 0 {
		return fmt.Errorf("scale %d: lowest entry must have minimum 0, got %v", s.ID, last.Min)
	}
	return nil
}
