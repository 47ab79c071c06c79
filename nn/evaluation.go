package nn

import "sort"

// RuleResult pairs a zero-error unit with the expression it computes.
type RuleResult struct {
	Unit       int    `json:"unit"`
	Complexity int    `json:"complexity"`
	Rule       string `json:"rule"`
	Resolved   bool   `json:"resolved"`
}

// Summary captures what a finished network achieved.
type Summary struct {
	Units            int          `json:"units"`
	ZeroErrorUnits   []int        `json:"zero_error_units"`
	Complexities     []int        `json:"complexities"`      // complexity of each zero-error unit
	MinError         int          `json:"min_error"`         // over derived units, -1 if there are none
	UnitsPerLayer    map[int]int  `json:"units_per_layer"`   // complexity -> unit count
	MinErrorPerLayer map[int]int  `json:"min_error_per_layer"`
	Rules            []RuleResult `json:"rules"`
}

// Summarize reports zero-error units, their rules and error statistics of s.
func Summarize(s *Store) Summary {
	sum := Summary{
		Units:            s.Len(),
		MinError:         -1,
		UnitsPerLayer:    make(map[int]int),
		MinErrorPerLayer: make(map[int]int),
	}

	for _, u := range s.units {
		sum.UnitsPerLayer[u.Complexity]++
		if u.Complexity == 0 {
			continue
		}
		if sum.MinError < 0 || u.Error < sum.MinError {
			sum.MinError = u.Error
		}
		if e, ok := sum.MinErrorPerLayer[u.Complexity]; !ok || u.Error < e {
			sum.MinErrorPerLayer[u.Complexity] = u.Error
		}
	}

	for _, i := range ZeroErrorUnits(s) {
		rule, ok := ExtractRule(s, i)
		if !ok {
			rule = NoRule
		}
		c := s.units[i].Complexity
		sum.ZeroErrorUnits = append(sum.ZeroErrorUnits, i)
		sum.Complexities = append(sum.Complexities, c)
		sum.Rules = append(sum.Rules, RuleResult{
			Unit:       i,
			Complexity: c,
			Rule:       rule,
			Resolved:   ok,
		})
	}
	return sum
}

// Layers returns the complexities present in the summary in ascending order.
func (s Summary) Layers() []int {
	layers := make([]int, 0, len(s.UnitsPerLayer))
	for c := range s.UnitsPerLayer {
		layers = append(layers, c)
	}
	sort.Ints(layers)
	return layers
}

// Solved reports whether at least one derived unit fits the target exactly.
func (s Summary) Solved() bool {
	return len(s.ZeroErrorUnits) > 0
}
