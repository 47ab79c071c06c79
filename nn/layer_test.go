package nn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// truthTable returns all 2^m rows, attribute 1 most significant.
func truthTable(m int) [][]bool {
	rows := make([][]bool, 1<<m)
	for i := range rows {
		row := make([]bool, m)
		for j := 0; j < m; j++ {
			row[j] = i&(1<<(m-1-j)) != 0
		}
		rows[i] = row
	}
	return rows
}

func targetOf(rows [][]bool, f func(r []bool) bool) []bool {
	t := make([]bool, len(rows))
	for i, r := range rows {
		t[i] = f(r)
	}
	return t
}

func seededStore(t *testing.T, x [][]bool) *Store {
	s := NewStore(len(x))
	for j := range x[0] {
		_, err := s.Append(leaf(Column(x, j)...))
		require.NoError(t, err)
	}
	return s
}

func TestPairingRules(t *testing.T) {
	for _, tt := range []struct {
		complexity int
		want       []LayerPair
	}{
		{1, []LayerPair{{0, 0}}},
		{2, []LayerPair{{0, 1}}},
		{3, []LayerPair{{0, 2}, {1, 1}}},
		{4, []LayerPair{{0, 3}, {1, 2}}},
		{5, []LayerPair{{0, 4}, {1, 3}, {2, 2}}},
	} {
		rules, err := PairingRules(tt.complexity)
		require.NoError(t, err)
		assert.Equal(t, tt.want, rules, "complexity %d", tt.complexity)
	}

	for _, c := range []int{0, 6, -1} {
		_, err := PairingRules(c)
		assert.ErrorIs(t, err, ErrInvalidComplexity, "complexity %d", c)
	}
}

func TestScorePairKeepsAllTies(t *testing.T) {
	x := truthTable(2)
	xor := targetOf(x, func(r []bool) bool { return r[0] != r[1] })

	fns, minErr, err := ScorePair(Column(x, 0), Column(x, 1), xor, DefaultCatalog().Without(FunctionXor))
	require.NoError(t, err)
	assert.Equal(t, 1, minErr)
	assert.Equal(t, []Function{FunctionOr, FunctionNand, FunctionAndNot, FunctionNotAnd}, fns)

	fns, minErr, err = ScorePair(Column(x, 0), Column(x, 1), xor, DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 0, minErr)
	assert.Equal(t, []Function{FunctionXor}, fns)
}

func TestScorePairEquivalentFunctionsTie(t *testing.T) {
	x := truthTable(2)
	xnor := targetOf(x, func(r []bool) bool { return r[0] == r[1] })

	fns, minErr, err := ScorePair(Column(x, 0), Column(x, 1), xnor, DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 0, minErr)
	assert.Equal(t, []Function{FunctionXnor, FunctionEquivalence}, fns)
}

func TestScorePairPreconditions(t *testing.T) {
	_, _, err := ScorePair([]bool{true}, []bool{true, false}, []bool{true}, DefaultCatalog())
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, _, err = ScorePair([]bool{true}, []bool{true}, []bool{true, true}, DefaultCatalog())
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, _, err = ScorePair([]bool{true}, []bool{true}, []bool{true}, nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestBuildLayerPairOrder(t *testing.T) {
	x := truthTable(3)
	target := targetOf(x, func(r []bool) bool { return r[0] && r[1] && r[2] })
	s := seededStore(t, x)

	batch, stats, err := BuildLayer(s, target, 1, Catalog{FunctionAnd})
	require.NoError(t, err)
	// single-function catalog: one unit per ordered pair of distinct leaves
	var inputs [][]int
	for _, u := range batch {
		inputs = append(inputs, u.Inputs)
		assert.Equal(t, 1, u.Complexity)
		assert.Equal(t, FunctionAnd, u.Function)
	}
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}, inputs)
	assert.Equal(t, 6, stats.Pairs)
	assert.Equal(t, 6, stats.Units)
	assert.Equal(t, 1, stats.MinError)
	assert.Equal(t, 3, s.Len(), "BuildLayer must not modify the store")
}

func TestBuildLayerTieWidening(t *testing.T) {
	x := truthTable(2)
	xor := targetOf(x, func(r []bool) bool { return r[0] != r[1] })
	s := seededStore(t, x)

	batch, stats, err := BuildLayer(s, xor, 1, DefaultCatalog().Without(FunctionXor))
	require.NoError(t, err)
	// two ordered pairs, four tied functions each
	require.Len(t, batch, 8)
	assert.Equal(t, 1, stats.MinError)
	assert.Zero(t, stats.ZeroError)
	for i, u := range batch[:4] {
		assert.Equal(t, []int{0, 1}, u.Inputs)
		assert.Equal(t, 1, u.Error)
		assert.Equal(t, []Function{FunctionOr, FunctionNand, FunctionAndNot, FunctionNotAnd}[i], u.Function)
	}
	for _, u := range batch[4:] {
		assert.Equal(t, []int{1, 0}, u.Inputs)
	}
}

func TestBuildFollowsPairingSchedule(t *testing.T) {
	x := truthTable(3)
	xor3 := targetOf(x, func(r []bool) bool { return r[0] != r[1] != r[2] })

	s, err := Build(x, xor3, MaxSupportedComplexity, Catalog{FunctionAnd, FunctionOr}, WithoutEarlyStop(), WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Equal(t, MaxSupportedComplexity, s.MaxComplexity())

	for _, complexity := range []int{3, 4, 5} {
		t.Run(fmt.Sprintf("complexity %d", complexity), func(t *testing.T) {
			rules, err := PairingRules(complexity)
			require.NoError(t, err)

			layer := s.UnitsWithComplexity(complexity)
			require.NotEmpty(t, layer)

			seen := make([]bool, len(rules))
			last := 0
			for _, i := range layer {
				u, err := s.Get(i)
				require.NoError(t, err)
				left, err := s.Get(u.Inputs[0])
				require.NoError(t, err)
				right, err := s.Get(u.Inputs[1])
				require.NoError(t, err)

				k := -1
				for j, rule := range rules {
					if rule == (LayerPair{Left: left.Complexity, Right: right.Complexity}) {
						k = j
						break
					}
				}
				require.NotEqual(t, -1, k, "unit %d pairs layers %d and %d", i, left.Complexity, right.Complexity)
				// rules are emitted in schedule order, never interleaved
				require.GreaterOrEqual(t, k, last, "unit %d", i)
				last = k
				seen[k] = true
			}
			for k, ok := range seen {
				assert.True(t, ok, "rule %v produced no units", rules[k])
			}
		})
	}
}

func TestBuildLayerEmptySourceLayer(t *testing.T) {
	x := truthTable(2)
	s := seededStore(t, x)

	// complexity 2 needs layer 1, which is still empty
	batch, stats, err := BuildLayer(s, Column(x, 0), 2, DefaultCatalog())
	require.NoError(t, err)
	assert.Empty(t, batch)
	assert.Equal(t, -1, stats.MinError)
	assert.Zero(t, stats.Pairs)
}

func TestBuildLayerPreconditions(t *testing.T) {
	x := truthTable(2)
	s := seededStore(t, x)

	_, _, err := BuildLayer(s, []bool{true}, 1, DefaultCatalog())
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, _, err = BuildLayer(s, Column(x, 0), 6, DefaultCatalog())
	assert.ErrorIs(t, err, ErrInvalidComplexity)
	_, _, err = BuildLayer(s, Column(x, 0), 1, Catalog{})
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}
