package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a copy of d as a gonum *mat.Dense.
// gonum has no empty matrices, so ToGonum returns nil when d has a zero dimension.
func (d *Dense) ToGonum() *mat.Dense {
	if d.rows == 0 || d.cols == 0 {
		return nil
	}
	return mat.NewDense(d.rows, d.cols, d.RawData())
}

// FromGonum copies any gonum matrix into a Dense.
func FromGonum(m mat.Matrix) *Dense {
	r, c := m.Dims()
	out := zeros(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = m.At(i, j)
		}
	}
	return out
}
