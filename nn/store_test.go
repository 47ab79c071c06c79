package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(out ...bool) Unit {
	return Unit{Function: FunctionNone, Output: out}
}

func TestStoreAppendAndGet(t *testing.T) {
	s := NewStore(2)

	i, err := s.Append(leaf(true, false))
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	j, err := s.Append(leaf(false, false))
	require.NoError(t, err)
	assert.Equal(t, 1, j)

	k, err := s.Append(Unit{Inputs: []int{0, 1}, Function: FunctionOr, Output: []bool{true, false}, Error: 1, Complexity: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, k)

	u, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, u.Inputs)
	assert.Equal(t, FunctionOr, u.Function)
	assert.Equal(t, 1, u.Error)

	assert.Equal(t, []int{0, 1}, s.UnitsWithComplexity(0))
	assert.Equal(t, []int{2}, s.UnitsWithComplexity(1))
	assert.Empty(t, s.UnitsWithComplexity(4))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.MaxComplexity())
}

func TestStoreGetOutOfRange(t *testing.T) {
	s := NewStore(1)
	_, err := s.Get(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestStoreUnitsAreImmutable(t *testing.T) {
	s := NewStore(2)
	out := []bool{true, true}
	_, err := s.Append(leaf(out...))
	require.NoError(t, err)
	out[0] = false

	u, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, u.Output)

	u.Output[1] = false
	again, _ := s.Get(0)
	assert.Equal(t, []bool{true, true}, again.Output)

	ids := s.UnitsWithComplexity(0)
	ids[0] = 99
	assert.Equal(t, []int{0}, s.UnitsWithComplexity(0))
}

func TestStoreAppendRejectsInvalidUnits(t *testing.T) {
	s := NewStore(1)
	_, err := s.Append(leaf(true))
	require.NoError(t, err)
	_, err = s.Append(leaf(false))
	require.NoError(t, err)
	// unit 2 at complexity 1, unit 3 at complexity 3
	_, err = s.Append(Unit{Inputs: []int{0, 1}, Function: FunctionOr, Output: []bool{true}, Complexity: 1})
	require.NoError(t, err)
	_, err = s.Append(Unit{Inputs: []int{0, 2}, Function: FunctionOr, Output: []bool{true}, Complexity: 3})
	require.NoError(t, err)

	for _, tt := range []struct {
		Name string
		Unit Unit
		Err  error
	}{
		{
			Name: "output length",
			Unit: Unit{Function: FunctionNone, Output: []bool{true, false}},
			Err:  ErrShapeMismatch,
		},
		{
			Name: "self connection",
			Unit: Unit{Inputs: []int{1, 1}, Function: FunctionAnd, Output: []bool{true}, Complexity: 1},
			Err:  ErrInvalidUnit,
		},
		{
			Name: "forward reference",
			Unit: Unit{Inputs: []int{0, 4}, Function: FunctionAnd, Output: []bool{true}, Complexity: 4},
			Err:  ErrInvalidUnit,
		},
		{
			Name: "single input",
			Unit: Unit{Inputs: []int{0}, Function: FunctionAnd, Output: []bool{true}, Complexity: 1},
			Err:  ErrInvalidUnit,
		},
		{
			Name: "leaf with inputs",
			Unit: Unit{Inputs: []int{0, 1}, Function: FunctionAnd, Output: []bool{true}},
			Err:  ErrInvalidUnit,
		},
		{
			Name: "input from the same layer",
			Unit: Unit{Inputs: []int{0, 2}, Function: FunctionAnd, Output: []bool{true}, Complexity: 1},
			Err:  ErrInvalidUnit,
		},
		{
			Name: "input from a higher layer",
			Unit: Unit{Inputs: []int{0, 3}, Function: FunctionAnd, Output: []bool{true}, Complexity: 2},
			Err:  ErrInvalidUnit,
		},
		{
			Name: "negative complexity",
			Unit: Unit{Function: FunctionNone, Output: []bool{true}, Complexity: -1},
			Err:  ErrInvalidUnit,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := s.Append(tt.Unit)
			assert.ErrorIs(t, err, tt.Err)
		})
	}
	assert.Equal(t, 4, s.Len(), "rejected units must not be stored")
}

func TestEmptyStore(t *testing.T) {
	s := NewStore(0)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.MaxComplexity())
	assert.Empty(t, s.Units())
}
