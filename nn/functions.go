package nn

// Apply evaluates the function on one pair of operands.
// FunctionNone and unknown values evaluate to false.
func (f Function) Apply(l, r bool) bool {
	switch f {
	case FunctionAnd: // case 0
		return l && r
	case FunctionOr: // case 1
		return l || r
	case FunctionXor: // case 2
		return l != r
	case FunctionNand: // case 3
		return !(l && r)
	case FunctionNor: // case 4
		return !(l || r)
	case FunctionXnor: // case 5
		return l == r
	case FunctionAndNot: // case 6
		return l && !r
	case FunctionNotAnd: // case 7
		return !l && r
	case FunctionImplication: // case 8
		return !l || r
	case FunctionEquivalence: // case 9
		return (l && r) || (!l && !r)
	default:
		return false
	}
}

// ApplyVector evaluates the function sample-wise over two output vectors.
func (f Function) ApplyVector(left, right []bool) ([]bool, error) {
	if len(left) != len(right) {
		return nil, shapeError("operand lengths differ: %d != %d", len(left), len(right))
	}
	out := make([]bool, len(left))
	for i := range left {
		out[i] = f.Apply(left[i], right[i])
	}
	return out, nil
}

// Valid reports whether f is one of the catalog functions.
func (f Function) Valid() bool {
	return f >= 0 && f < numFunctions
}
