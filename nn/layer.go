package nn

import "github.com/pkg/errors"

// pairingSchedule lists, per complexity, which earlier layers are paired.
// Rules are evaluated in order.
var pairingSchedule = map[int][]LayerPair{
	1: {{0, 0}},
	2: {{0, 1}},
	3: {{0, 2}, {1, 1}},
	4: {{0, 3}, {1, 2}},
	5: {{0, 4}, {1, 3}, {2, 2}},
}

// PairingRules returns the layer pairs that feed units of the given complexity.
func PairingRules(complexity int) ([]LayerPair, error) {
	rules, ok := pairingSchedule[complexity]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidComplexity, "complexity %d, supported 1..%d", complexity, MaxSupportedComplexity)
	}
	return append([]LayerPair(nil), rules...), nil
}

// LayerStats summarizes one BuildLayer call.
type LayerStats struct {
	Complexity int
	Pairs      int // unit pairs scored
	Units      int // units emitted
	MinError   int // smallest error in the batch, -1 when the batch is empty
	ZeroError  int // emitted units with error 0
}

// candidate is a scored function for one pair.
type candidate struct {
	fn     Function
	output []bool
}

// ScorePair scores every catalog function on the pair (left, right) and returns
// all functions that reach the minimum error, in catalog order, with that error.
func ScorePair(left, right, target []bool, catalog Catalog) ([]Function, int, error) {
	winners, minErr, err := scorePair(left, right, target, catalog)
	if err != nil {
		return nil, 0, err
	}
	fns := make([]Function, len(winners))
	for i, w := range winners {
		fns[i] = w.fn
	}
	return fns, minErr, nil
}

func scorePair(left, right, target []bool, catalog Catalog) ([]candidate, int, error) {
	if len(left) != len(right) || len(left) != len(target) {
		return nil, 0, shapeError("pair and target lengths differ: %d, %d, %d", len(left), len(right), len(target))
	}
	if len(catalog) == 0 {
		return nil, 0, ErrEmptyCatalog
	}

	minErr := -1
	var winners []candidate
	for _, fn := range catalog {
		out, err := fn.ApplyVector(left, right)
		if err != nil {
			return nil, 0, err
		}
		e, err := HammingDistance(out, target)
		if err != nil {
			return nil, 0, err
		}
		switch {
		case minErr < 0 || e < minErr:
			minErr = e
			winners = append(winners[:0], candidate{fn: fn, output: out})
		case e == minErr:
			// every tied function becomes its own unit
			winners = append(winners, candidate{fn: fn, output: out})
		}
	}
	return winners, minErr, nil
}

// BuildLayer computes the batch of units of the given complexity from the units
// already in the store. The store is only read; the caller appends the batch.
func BuildLayer(s *Store, target []bool, complexity int, catalog Catalog) ([]Unit, LayerStats, error) {
	stats := LayerStats{Complexity: complexity, MinError: -1}

	rules, err := PairingRules(complexity)
	if err != nil {
		return nil, stats, err
	}
	if len(target) != s.SampleCount() {
		return nil, stats, shapeError("target has %d samples, store holds %d", len(target), s.SampleCount())
	}
	if len(catalog) == 0 {
		return nil, stats, ErrEmptyCatalog
	}

	var batch []Unit
	for _, rule := range rules {
		left := s.UnitsWithComplexity(rule.Left)
		right := s.UnitsWithComplexity(rule.Right)

		for _, i1 := range left {
			for _, i2 := range right {
				if i1 == i2 {
					continue
				}
				u1, _ := s.unit(i1)
				u2, _ := s.unit(i2)

				winners, minErr, err := scorePair(u1.Output, u2.Output, target, catalog)
				if err != nil {
					return nil, stats, errors.Wrapf(err, "scoring units %d and %d", i1, i2)
				}
				stats.Pairs++

				for _, w := range winners {
					batch = append(batch, Unit{
						Inputs:     []int{i1, i2},
						Function:   w.fn,
						Output:     w.output,
						Error:      minErr,
						Complexity: complexity,
					})
				}
				if stats.MinError < 0 || minErr < stats.MinError {
					stats.MinError = minErr
				}
				if minErr == 0 {
					stats.ZeroError += len(winners)
				}
			}
		}
	}
	stats.Units = len(batch)
	return batch, stats, nil
}
