package nn

import "github.com/pkg/errors"

// Store is the append-only arena that owns every unit of a network. A unit's
// index is its identity: inputs reference earlier units by index and indices
// never change.
type Store struct {
	samples int
	units   []Unit
	byLayer map[int][]int
}

// NewStore returns an empty store whose unit outputs hold n samples.
func NewStore(n int) *Store {
	return &Store{
		samples: n,
		byLayer: make(map[int][]int),
	}
}

// Append adds a unit and returns its index. The unit is copied, so later changes
// to the caller's slices do not reach the store.
func (s *Store) Append(u Unit) (int, error) {
	if len(u.Output) != s.samples {
		return -1, shapeError("unit output has %d samples, store holds %d", len(u.Output), s.samples)
	}
	if u.Complexity < 0 {
		return -1, errors.Wrapf(ErrInvalidUnit, "negative complexity %d", u.Complexity)
	}
	switch len(u.Inputs) {
	case 0:
	case 2:
		if u.Complexity == 0 {
			return -1, errors.Wrap(ErrInvalidUnit, "leaf unit with inputs")
		}
		for _, in := range u.Inputs {
			if in < 0 || in >= len(s.units) {
				return -1, errors.Wrapf(ErrInvalidUnit, "input %d does not exist yet", in)
			}
			if c := s.units[in].Complexity; c >= u.Complexity {
				return -1, errors.Wrapf(ErrInvalidUnit, "input %d has complexity %d, unit has %d", in, c, u.Complexity)
			}
		}
		if u.Inputs[0] == u.Inputs[1] {
			return -1, errors.Wrapf(ErrInvalidUnit, "unit connects %d to itself", u.Inputs[0])
		}
	default:
		return -1, errors.Wrapf(ErrInvalidUnit, "unit has %d inputs, want 0 or 2", len(u.Inputs))
	}

	idx := len(s.units)
	s.units = append(s.units, u.clone())
	s.byLayer[u.Complexity] = append(s.byLayer[u.Complexity], idx)
	return idx, nil
}

// Get returns a copy of the unit at index i.
func (s *Store) Get(i int) (Unit, error) {
	if i < 0 || i >= len(s.units) {
		return Unit{}, errors.Wrapf(ErrIndexOutOfRange, "index %d, store holds %d units", i, len(s.units))
	}
	return s.units[i].clone(), nil
}

// UnitsWithComplexity returns, in insertion order, the indices of all units of
// complexity c.
func (s *Store) UnitsWithComplexity(c int) []int {
	return append([]int(nil), s.byLayer[c]...)
}

// Len returns the number of units in the store.
func (s *Store) Len() int {
	return len(s.units)
}

// SampleCount returns N, the length of every output vector.
func (s *Store) SampleCount() int {
	return s.samples
}

// MaxComplexity returns the highest complexity present, or -1 for an empty store.
func (s *Store) MaxComplexity() int {
	highest := -1
	for c, idx := range s.byLayer {
		if len(idx) > 0 && c > highest {
			highest = c
		}
	}
	return highest
}

// Units returns copies of all units in store order.
func (s *Store) Units() []Unit {
	out := make([]Unit, len(s.units))
	for i, u := range s.units {
		out[i] = u.clone()
	}
	return out
}

// unit returns the stored unit without copying; callers must not modify it.
func (s *Store) unit(i int) (*Unit, bool) {
	if i < 0 || i >= len(s.units) {
		return nil, false
	}
	return &s.units[i], true
}
