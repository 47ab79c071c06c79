package nn

// Function identifies a binary boolean operator usable as a unit transfer function.
// Values are stable: they are the positions in the full catalog.
type Function int

const (
	FunctionNone        Function = -1 // leaf units (input attributes)
	FunctionAnd         Function = 0  // l && r
	FunctionOr          Function = 1  // l || r
	FunctionXor         Function = 2  // l != r
	FunctionNand        Function = 3  // !(l && r)
	FunctionNor         Function = 4  // !(l || r)
	FunctionXnor        Function = 5  // l == r
	FunctionAndNot      Function = 6  // l && !r
	FunctionNotAnd      Function = 7  // !l && r
	FunctionImplication Function = 8  // !l || r
	FunctionEquivalence Function = 9  // (l && r) || (!l && !r)

	numFunctions = 10
)

// Unit is a single node of the network: either an input attribute (complexity 0)
// or a binary logical unit over two earlier units.
type Unit struct {
	Inputs     []int    // empty for leaves, otherwise exactly two store indices
	Function   Function // FunctionNone for leaves
	Output     []bool   // one value per sample
	Error      int      // disagreements with the target, 0 for leaves
	Complexity int      // layer number, 0 for input attributes
}

// IsLeaf reports whether the unit is an input attribute.
func (u Unit) IsLeaf() bool {
	return u.Complexity == 0
}

// clone returns a copy of u that shares no slices with it.
func (u Unit) clone() Unit {
	c := u
	if u.Inputs != nil {
		c.Inputs = append([]int(nil), u.Inputs...)
	}
	if u.Output != nil {
		c.Output = append([]bool(nil), u.Output...)
	}
	return c
}

// LayerPair is one pairing rule of the layer schedule: units of complexity Left
// are paired with units of complexity Right.
type LayerPair struct {
	Left  int
	Right int
}

// MaxSupportedComplexity is the highest layer the pairing schedule defines.
const MaxSupportedComplexity = 5
