// Package formula parses and evaluates boolean formulas written with the
// operator names of the nn function catalog, e.g. "(X1 AND X2) OR (X3 XOR X4)".
//
// All binary operators share one precedence level and associate to the left;
// use parentheses to group. NOT is also accepted as a prefix operator.
package formula

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/nn"
)

// Expr is a parsed boolean formula.
type Expr interface {
	// Eval evaluates the formula on one row of attribute values; X1 is row[0].
	Eval(row []bool) (bool, error)
	// MaxVar returns the highest attribute number referenced, 0 if none.
	MaxVar() int
	String() string
}

// Var references input attribute X<Index>, counting from 1.
type Var struct {
	Index int
}

func (v Var) Eval(row []bool) (bool, error) {
	if v.Index < 1 || v.Index > len(row) {
		return false, errors.Errorf("attribute X%d outside row of width %d", v.Index, len(row))
	}
	return row[v.Index-1], nil
}

func (v Var) MaxVar() int {
	return v.Index
}

func (v Var) String() string {
	return fmt.Sprintf("X%d", v.Index)
}

// Const is a literal 0 or 1.
type Const struct {
	Value bool
}

func (c Const) Eval([]bool) (bool, error) {
	return c.Value, nil
}

func (c Const) MaxVar() int {
	return 0
}

func (c Const) String() string {
	if c.Value {
		return "1"
	}
	return "0"
}

// Not negates its operand.
type Not struct {
	X Expr
}

func (n Not) Eval(row []bool) (bool, error) {
	v, err := n.X.Eval(row)
	return !v, err
}

func (n Not) MaxVar() int {
	return n.X.MaxVar()
}

func (n Not) String() string {
	return "NOT " + operandString(n.X)
}

// Binary applies a catalog function to two operands.
type Binary struct {
	Op    nn.Function
	Left  Expr
	Right Expr
}

func (b Binary) Eval(row []bool) (bool, error) {
	l, err := b.Left.Eval(row)
	if err != nil {
		return false, err
	}
	r, err := b.Right.Eval(row)
	if err != nil {
		return false, err
	}
	return b.Op.Apply(l, r), nil
}

func (b Binary) MaxVar() int {
	l, r := b.Left.MaxVar(), b.Right.MaxVar()
	if l > r {
		return l
	}
	return r
}

func (b Binary) String() string {
	return fmt.Sprintf("%s %s %s", operandString(b.Left), b.Op, operandString(b.Right))
}

// operandString parenthesizes nested binary operations so the output parses back
// to the same tree.
func operandString(e Expr) string {
	if _, ok := e.(Binary); ok {
		return "(" + e.String() + ")"
	}
	return e.String()
}
