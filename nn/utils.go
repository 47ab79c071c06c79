package nn

import "github.com/pkg/errors"

// HammingDistance counts the positions where a and b disagree.
func HammingDistance(a, b []bool) (int, error) {
	if len(a) != len(b) {
		return 0, shapeError("vector lengths differ: %d != %d", len(a), len(b))
	}
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d, nil
}

// Column returns attribute j of a row-major boolean matrix.
func Column(x [][]bool, j int) []bool {
	col := make([]bool, len(x))
	for i, row := range x {
		col[i] = row[j]
	}
	return col
}

func shapeError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrShapeMismatch, format, args...)
}
