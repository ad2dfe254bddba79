package gradescale

import (
	"fmt"
	"sort"
)

// Registry resolves validated scales by id. It is built once at startup and
// read-only afterwards.
type Registry struct {
	scales map[int]Scale
}

// NewRegistry validates every table and indexes it by id. Invalid tables and
// duplicate ids abort construction. Entry slices are copied, so later
// mutation of the arguments cannot reach the registry.
func NewRegistry(scales ...Scale) (*Registry, error) {
	reg := &Registry{scales: make(map[int]Scale, len(scales))}
	for _, s := range scales {
		if err := s.validate(); err != nil {
			return nil, err
		}
		if _, dup := reg.scales[s.ID]; dup {
			return nil, fmt.Errorf("scale %d registered twice", s.ID)
		}
		s.Entries = append([]Entry(nil), s.Entries...)
		reg.scales[s.ID] = s
	}
	return reg, nil
}

// Lookup returns the scale registered under id.
func (r *Registry) Lookup(id int) (Scale, error) {
	s, ok := r.scales[id]
	if !ok {
		return Scale{}, fmt.Errorf("scale %d (available: %v): %w", id, r.IDs(), ErrUnknownScale)
	}
	return s, nil
}

// Convert is shorthand for Lookup followed by Scale.Convert.
func (r *Registry) Convert(grade float64, id int) (float64, error) {
	s, err := r.Lookup(id)
	if err != nil {
		return 0, err
	}
	return s.Convert(grade)
}

// IDs lists the registered scale ids in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.scales))
	for id := range r.scales {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
