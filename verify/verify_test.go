package verify

import (
	"io"
	"testing"

	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/dataset"
	"github.com/vitsch/Boolean-GMDH-type-neural-network/formula"
	"github.com/vitsch/Boolean-GMDH-type-neural-network/nn"
)

func build(t *testing.T, m int, target string, maxComplexity int, catalog nn.Catalog) (*nn.Store, formula.Expr) {
	e := formula.MustParse(target)
	tt, err := dataset.New(m, e)
	require.NoError(t, err)

	l := logrus.New()
	l.SetOutput(io.Discard)
	s, err := nn.Build(tt.X, tt.T, maxComplexity, catalog, nn.WithLogger(l))
	require.NoError(t, err)
	return s, e
}

func TestGateMatchesCatalog(t *testing.T) {
	for _, f := range nn.DefaultCatalog() {
		t.Run(f.String(), func(t *testing.T) {
			c := NewCircuit(2)
			g, err := c.Gate(f, c.inputs[0], c.inputs[1])
			require.NoError(t, err)
			ref, err := c.Expr(formula.Binary{Op: f, Left: formula.Var{Index: 1}, Right: formula.Var{Index: 2}})
			require.NoError(t, err)
			res, err := c.Equivalent(g, ref)
			require.NoError(t, err)
			assert.True(t, res.Equivalent)
		})
	}
}

func TestEquivalentFunctionsAreEquivalent(t *testing.T) {
	c := NewCircuit(2)
	xnor, err := c.Expr(formula.MustParse("X1 XNOR X2"))
	require.NoError(t, err)
	equiv, err := c.Expr(formula.MustParse("X1 EQUIVALENCE X2"))
	require.NoError(t, err)
	impl, err := c.Expr(formula.MustParse("X1 IMPLICATION X2"))
	require.NoError(t, err)
	notOr, err := c.Expr(formula.MustParse("NOT X1 OR X2"))
	require.NoError(t, err)

	for _, tt := range []struct {
		name string
		a, b z.Lit
		want bool
	}{
		{"xnor equivalence", xnor, equiv, true},
		{"implication", impl, notOr, true},
		{"xnor implication", xnor, impl, false},
	} {
		res, err := c.Equivalent(tt.a, tt.b)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, res.Equivalent, tt.name)
	}
}

func TestZeroErrorUnitsMatchTarget(t *testing.T) {
	s, target := build(t, 4, "(X1 AND X2) OR (X3 XOR X4)", 3, nn.DefaultCatalog())

	zero := nn.ZeroErrorUnits(s)
	require.NotEmpty(t, zero)
	for _, i := range zero {
		res, err := Equivalent(s, i, target, 4)
		require.NoError(t, err)
		assert.True(t, res.Equivalent, "unit %d: %s", i, nn.RuleString(s, i))
		assert.Nil(t, res.Counterexample)
	}
}

func TestCounterexample(t *testing.T) {
	s, target := build(t, 2, "X1 XOR X2", 1, nn.DefaultCatalog().Without(nn.FunctionXor))

	layer := s.UnitsWithComplexity(1)
	require.NotEmpty(t, layer)
	res, err := Equivalent(s, layer[0], target, 2)
	require.NoError(t, err)
	require.False(t, res.Equivalent)
	require.Len(t, res.Counterexample, 2)

	u, err := s.Get(layer[0])
	require.NoError(t, err)
	want, err := target.Eval(res.Counterexample)
	require.NoError(t, err)
	got := u.Function.Apply(res.Counterexample[0], res.Counterexample[1])
	assert.NotEqual(t, want, got, "counterexample %v must separate rule and target", res.Counterexample)
}

func TestEquivalentErrors(t *testing.T) {
	s, target := build(t, 2, "X1 AND X2", 1, nn.DefaultCatalog())

	_, err := Equivalent(s, 99, target, 2)
	assert.ErrorIs(t, err, nn.ErrIndexOutOfRange)

	_, err = Equivalent(s, 2, formula.MustParse("X1 AND X3"), 2)
	assert.Error(t, err)

	// leaves beyond the circuit width have no literal
	_, err = Equivalent(s, 2, target, 1)
	assert.Error(t, err)
}

type fixedModel struct {
	result int
	values map[z.Lit]bool
}

func (m fixedModel) Solve() int {
	return m.result
}

func (m fixedModel) Value(l z.Lit) bool {
	return m.values[l]
}

func TestDecide(t *testing.T) {
	c := NewCircuit(2)

	res, err := c.decide(fixedModel{result: unsatisfiable})
	require.NoError(t, err)
	assert.True(t, res.Equivalent)

	res, err = c.decide(fixedModel{result: satisfiable, values: map[z.Lit]bool{c.inputs[1]: true}})
	require.NoError(t, err)
	assert.False(t, res.Equivalent)
	assert.Equal(t, []bool{false, true}, res.Counterexample)

	_, err = c.decide(fixedModel{result: 0})
	assert.ErrorIs(t, err, ErrUndecided)
}
