// Package dataset produces truth-table training data: every combination of m
// boolean attributes and the value of a target formula on each of them.
package dataset

import (
	"github.com/pkg/errors"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/formula"
)

// MaxAttributes bounds Combinations; 2^20 rows is already a large truth table.
const MaxAttributes = 20

// Combinations returns all 2^m rows of m boolean attributes in lexicographic
// order, X1 being the most significant attribute: 00..0, 00..1, ..., 11..1.
func Combinations(m int) ([][]bool, error) {
	if m < 1 || m > MaxAttributes {
		return nil, errors.Errorf("attribute count %d outside 1..%d", m, MaxAttributes)
	}
	rows := make([][]bool, 1<<uint(m))
	for i := range rows {
		row := make([]bool, m)
		for j := 0; j < m; j++ {
			row[j] = i&(1<<uint(m-1-j)) != 0
		}
		rows[i] = row
	}
	return rows, nil
}

// Target evaluates e on every row.
func Target(rows [][]bool, e formula.Expr) ([]bool, error) {
	t := make([]bool, len(rows))
	for i, row := range rows {
		v, err := e.Eval(row)
		if err != nil {
			return nil, errors.Wrapf(err, "evaluating %s on row %d", e, i)
		}
		t[i] = v
	}
	return t, nil
}

// TruthTable is a generated training set.
type TruthTable struct {
	X       [][]bool
	T       []bool
	Formula formula.Expr
}

// New builds the full truth table of e over m attributes. e may not reference
// attributes beyond m.
func New(m int, e formula.Expr) (*TruthTable, error) {
	if e.MaxVar() > m {
		return nil, errors.Errorf("formula %s references X%d but only %d attributes are generated", e, e.MaxVar(), m)
	}
	x, err := Combinations(m)
	if err != nil {
		return nil, err
	}
	t, err := Target(x, e)
	if err != nil {
		return nil, err
	}
	return &TruthTable{X: x, T: t, Formula: e}, nil
}

// Positives returns how many rows the target maps to 1.
func (tt *TruthTable) Positives() int {
	n := 0
	for _, v := range tt.T {
		if v {
			n++
		}
	}
	return n
}
