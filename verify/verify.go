// Package verify checks extracted rules against a target formula with a SAT
// solver. Both sides are compiled into one and-inverter circuit over shared
// input literals; the rule is correct when their XOR is unsatisfiable, i.e. they
// agree on every one of the 2^m inputs, not only on the training rows.
package verify

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/formula"
	"github.com/vitsch/Boolean-GMDH-type-neural-network/nn"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Circuit translates units and formulas into literals of a single circuit.
type Circuit struct {
	c      *logic.C
	inputs []z.Lit
	units  map[int]z.Lit
}

// NewCircuit returns a circuit with m input literals, one per attribute.
func NewCircuit(m int) *Circuit {
	c := &Circuit{
		c:      logic.NewC(),
		inputs: make([]z.Lit, m),
		units:  make(map[int]z.Lit),
	}
	for i := range c.inputs {
		c.inputs[i] = c.c.Lit()
	}
	return c
}

// Gate returns the literal of f applied to a and b.
func (c *Circuit) Gate(f nn.Function, a, b z.Lit) (z.Lit, error) {
	switch f {
	case nn.FunctionAnd:
		return c.c.And(a, b), nil
	case nn.FunctionOr:
		return c.c.Or(a, b), nil
	case nn.FunctionXor:
		return c.c.Xor(a, b), nil
	case nn.FunctionNand:
		return c.c.And(a, b).Not(), nil
	case nn.FunctionNor:
		return c.c.Or(a, b).Not(), nil
	case nn.FunctionXnor, nn.FunctionEquivalence:
		return c.c.Xor(a, b).Not(), nil
	case nn.FunctionAndNot:
		return c.c.And(a, b.Not()), nil
	case nn.FunctionNotAnd:
		return c.c.And(a.Not(), b), nil
	case nn.FunctionImplication:
		return c.c.Implies(a, b), nil
	}
	return z.LitNull, errors.Errorf("no gate for logical function %d", int(f))
}

// Unit returns the literal computed by unit i of s. Leaf j maps to input j.
func (c *Circuit) Unit(s *nn.Store, i int) (z.Lit, error) {
	if m, ok := c.units[i]; ok {
		return m, nil
	}
	u, err := s.Get(i)
	if err != nil {
		return z.LitNull, err
	}

	var m z.Lit
	if u.IsLeaf() {
		if i >= len(c.inputs) {
			return z.LitNull, errors.Errorf("leaf unit %d has no input literal, circuit has %d inputs", i, len(c.inputs))
		}
		m = c.inputs[i]
	} else {
		if len(u.Inputs) != 2 {
			return z.LitNull, errors.Errorf("unit %d has no inputs to trace", i)
		}
		a, err := c.Unit(s, u.Inputs[0])
		if err != nil {
			return z.LitNull, err
		}
		b, err := c.Unit(s, u.Inputs[1])
		if err != nil {
			return z.LitNull, err
		}
		if m, err = c.Gate(u.Function, a, b); err != nil {
			return z.LitNull, errors.Wrapf(err, "unit %d", i)
		}
	}
	c.units[i] = m
	return m, nil
}

// Expr returns the literal computed by e.
func (c *Circuit) Expr(e formula.Expr) (z.Lit, error) {
	switch e := e.(type) {
	case formula.Var:
		if e.Index < 1 || e.Index > len(c.inputs) {
			return z.LitNull, errors.Errorf("attribute %s outside circuit with %d inputs", e, len(c.inputs))
		}
		return c.inputs[e.Index-1], nil
	case formula.Const:
		if e.Value {
			return c.c.T, nil
		}
		return c.c.F, nil
	case formula.Not:
		m, err := c.Expr(e.X)
		if err != nil {
			return z.LitNull, err
		}
		return m.Not(), nil
	case formula.Binary:
		a, err := c.Expr(e.Left)
		if err != nil {
			return z.LitNull, err
		}
		b, err := c.Expr(e.Right)
		if err != nil {
			return z.LitNull, err
		}
		return c.Gate(e.Op, a, b)
	}
	return z.LitNull, errors.Errorf("unsupported formula node %T", e)
}

// Result is the outcome of an equivalence check.
type Result struct {
	Equivalent bool
	// Counterexample holds attribute values on which both sides differ; nil
	// when they are equivalent.
	Counterexample []bool
}

// ErrUndecided is returned when the solver finishes without deciding the miter.
var ErrUndecided = errors.New("solver returned an undecided result")

// model is the part of the solver read after a solve.
type model interface {
	Solve() int
	Value(m z.Lit) bool
}

// Equivalent decides whether literals a and b agree on every input assignment.
func (c *Circuit) Equivalent(a, b z.Lit) (Result, error) {
	miter := c.c.Xor(a, b)
	g := gini.New()
	c.c.ToCnf(g)
	g.Assume(miter)
	return c.decide(g)
}

func (c *Circuit) decide(g model) (Result, error) {
	switch res := g.Solve(); res {
	case unsatisfiable:
		return Result{Equivalent: true}, nil
	case satisfiable:
		cex := make([]bool, len(c.inputs))
		for i, m := range c.inputs {
			cex[i] = g.Value(m)
		}
		return Result{Counterexample: cex}, nil
	default:
		return Result{}, errors.Wrapf(ErrUndecided, "solve returned %d", res)
	}
}

// Equivalent checks unit i of s against the target formula over m attributes.
func Equivalent(s *nn.Store, i int, target formula.Expr, m int) (Result, error) {
	c := NewCircuit(m)
	u, err := c.Unit(s, i)
	if err != nil {
		return Result{}, errors.Wrapf(err, "compiling unit %d", i)
	}
	t, err := c.Expr(target)
	if err != nil {
		return Result{}, errors.Wrap(err, "compiling target")
	}
	return c.Equivalent(u, t)
}
