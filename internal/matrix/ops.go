package matrix

import (
	"gonum.org/v1/gonum/floats"
)

// Add returns d + other elementwise.
//
// Returns a *DimensionMismatchError if the shapes differ.
func (d *Dense) Add(other *Dense) (*Dense, error) {
	if !d.Shape().Equal(other.Shape()) {
		return nil, mismatch("add", d.Shape(), other.Shape())
	}
	out := zeros(d.rows, d.cols)
	floats.AddTo(out.data, d.data, other.data)
	return out, nil
}

// Sub returns d - other elementwise.
//
// Returns a *DimensionMismatchError if the shapes differ.
func (d *Dense) Sub(other *Dense) (*Dense, error) {
	if !d.Shape().Equal(other.Shape()) {
		return nil, mismatch("subtract", d.Shape(), other.Shape())
	}
	out := zeros(d.rows, d.cols)
	floats.SubTo(out.data, d.data, other.data)
	return out, nil
}

// MulElem returns the elementwise (Hadamard) product d ⊙ other.
func (d *Dense) MulElem(other *Dense) (*Dense, error) {
	if !d.Shape().Equal(other.Shape()) {
		return nil, mismatch("mul_elem", d.Shape(), other.Shape())
	}
	out := zeros(d.rows, d.cols)
	floats.MulTo(out.data, d.data, other.data)
	return out, nil
}

// Scale returns d with every element multiplied by scalar.
func (d *Dense) Scale(scalar float64) *Dense {
	out := zeros(d.rows, d.cols)
	floats.ScaleTo(out.data, scalar, d.data)
	return out
}

// Dot returns the matrix product d · other with shape (d.Rows, other.Cols).
//
// Accumulation runs i, j, k nested with k innermost, starting from 0, so the
// result is bit-reproducible across runs and platforms.
//
// Returns a *DimensionMismatchError if d.Cols != other.Rows.
func (d *Dense) Dot(other *Dense) (*Dense, error) {
	if d.cols != other.rows {
		return nil, mismatch("dot", Shape{Rows: d.cols, Cols: other.cols}, other.Shape())
	}

	m, k, n := d.rows, d.cols, other.cols
	out := zeros(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for p := 0; p < k; p++ {
				// Explicit conversion rounds the product before the add (no FMA).
				sum += float64(d.data[i*k+p] * other.data[p*n+j])
			}
			out.data[i*n+j] = sum
		}
	}
	return out, nil
}

// T returns the transpose of d: result[j][i] = d[i][j].
func (d *Dense) T() *Dense {
	out := zeros(d.cols, d.rows)
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			out.data[j*d.rows+i] = d.data[i*d.cols+j]
		}
	}
	return out
}

// Apply returns a new matrix with fn applied to every element.
func (d *Dense) Apply(fn func(float64) float64) *Dense {
	out := zeros(d.rows, d.cols)
	for i, v := range d.data {
		out.data[i] = fn(v)
	}
	return out
}
