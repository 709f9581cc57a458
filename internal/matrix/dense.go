package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a fixed-shape 2-D matrix of float64 values stored row-major.
//
// Dense has value semantics: every operation returns a new matrix and no
// exported method mutates the receiver or its operands. A *Dense can be
// shared freely between owners.
//
// Example:
//
//	a, _ := matrix.New(1, 2, []float64{1, 2})
//	b, _ := matrix.New(2, 1, []float64{3, 4})
//	c, _ := a.Dot(b) // 1x1 [11]
type Dense struct {
	rows int
	cols int
	data []float64 // len == rows*cols, row-major
}

// New creates a rows×cols matrix from values laid out row-major.
// The values are copied.
//
// Returns a *ShapeError if len(values) != rows*cols or a dimension is negative.
func New(rows, cols int, values []float64) (*Dense, error) {
	s := Shape{Rows: rows, Cols: cols}
	if s.Validate() != nil || len(values) != s.NumElements() {
		return nil, shapeError(rows, cols, len(values))
	}
	d := zeros(rows, cols)
	copy(d.data, values)
	return d, nil
}

// FromRows creates a matrix from a slice of equally sized rows.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return zeros(0, 0), nil
	}
	cols := len(rows[0])
	values := make([]float64, 0, len(rows)*cols)
	ragged := false
	for _, row := range rows {
		ragged = ragged || len(row) != cols
		values = append(values, row...)
	}
	if ragged {
		return nil, shapeError(len(rows), cols, len(values))
	}
	return New(len(rows), cols, values)
}

// Column creates an n×1 column vector, the shape network inputs and targets use.
func Column(values ...float64) *Dense {
	d := zeros(len(values), 1)
	copy(d.data, values)
	return d
}

// zeros allocates a zero-filled matrix. Callers guarantee non-negative dims.
func zeros(rows, cols int) *Dense {
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// Shape returns the matrix shape.
func (d *Dense) Shape() Shape {
	return Shape{Rows: d.rows, Cols: d.cols}
}

// At returns the element at row i, column j.
// Panics if the indices are out of bounds.
func (d *Dense) At(i, j int) float64 {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of bounds for shape %v", i, j, d.Shape()))
	}
	return d.data[i*d.cols+j]
}

// Data returns a copy of the values as rows of columns.
func (d *Dense) Data() [][]float64 {
	out := make([][]float64, d.rows)
	for i := range out {
		row := make([]float64, d.cols)
		copy(row, d.data[i*d.cols:(i+1)*d.cols])
		out[i] = row
	}
	return out
}

// RawData returns a copy of the row-major values.
func (d *Dense) RawData() []float64 {
	out := make([]float64, len(d.data))
	copy(out, d.data)
	return out
}

// Equal reports whether both matrices have the same shape and bit-identical values.
func (d *Dense) Equal(other *Dense) bool {
	if !d.Shape().Equal(other.Shape()) {
		return false
	}
	for i, v := range d.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether both matrices have the same shape and every
// pair of values differs by at most tol.
func (d *Dense) EqualApprox(other *Dense, tol float64) bool {
	if !d.Shape().Equal(other.Shape()) {
		return false
	}
	for i, v := range d.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String formats the matrix as nested rows, e.g. "[[1 2] [3 4]]".
func (d *Dense) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < d.rows; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, d.data[i*d.cols:(i+1)*d.cols])
	}
	sb.WriteByte(']')
	return sb.String()
}
