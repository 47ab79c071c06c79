package nn

import "fmt"

// NoRule is printed for units whose lineage cannot be traced back to inputs.
const NoRule = "no rule"

// ExtractRule reconstructs the symbolic expression computed by unit i, e.g.
// "X1 AND (X2 OR (X3 XOR X4))". Sub-expressions of complexity greater than one
// are parenthesized; the top level and complexity-1 sub-expressions are not.
// ok is false when some unit in the lineage is missing or has no inputs.
func ExtractRule(s *Store, i int) (rule string, ok bool) {
	return buildRule(s, i, 0)
}

// RuleString is ExtractRule with NoRule substituted for unresolvable units.
func RuleString(s *Store, i int) string {
	if rule, ok := ExtractRule(s, i); ok {
		return rule
	}
	return NoRule
}

func buildRule(s *Store, i, depth int) (string, bool) {
	u, ok := s.unit(i)
	if !ok {
		return "", false
	}
	if u.Complexity == 0 {
		return fmt.Sprintf("X%d", i+1), true
	}
	if len(u.Inputs) != 2 {
		return "", false
	}

	left, ok := buildRule(s, u.Inputs[0], depth+1)
	if !ok {
		return "", false
	}
	right, ok := buildRule(s, u.Inputs[1], depth+1)
	if !ok {
		return "", false
	}

	if depth > 0 && u.Complexity > 1 {
		return fmt.Sprintf("(%s %s %s)", left, u.Function, right), true
	}
	return fmt.Sprintf("%s %s %s", left, u.Function, right), true
}

// ZeroErrorUnits returns the indices of derived units with error 0, in store order.
func ZeroErrorUnits(s *Store) []int {
	var out []int
	for i, u := range s.units {
		if u.Error == 0 && u.Complexity > 0 {
			out = append(out, i)
		}
	}
	return out
}
