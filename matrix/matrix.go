// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/densenn/internal/matrix"
)

// Dense is a fixed-shape, row-major float64 matrix with value semantics.
type Dense = matrix.Dense

// Shape is the (rows, cols) pair of a matrix.
type Shape = matrix.Shape

// Source is the random generator Random draws from. *rand.Rand satisfies it.
type Source = matrix.Source

// ShapeError reports a value count that does not fill the declared shape.
type ShapeError = matrix.ShapeError

// DimensionMismatchError reports incompatible operand shapes.
type DimensionMismatchError = matrix.DimensionMismatchError

// New creates a rows×cols matrix from row-major values.
//
// Example:
//
//	m, err := matrix.New(2, 1, []float64{0, 0}) // [[0] [0]]
func New(rows, cols int, values []float64) (*Dense, error) {
	return matrix.New(rows, cols, values)
}

// FromRows creates a matrix from equally sized rows.
func FromRows(rows [][]float64) (*Dense, error) {
	return matrix.FromRows(rows)
}

// Column creates an n×1 column vector.
func Column(values ...float64) *Dense {
	return matrix.Column(values...)
}

// Random creates a rows×cols matrix with cells drawn uniformly from [-1, 1).
func Random(rows, cols int, src Source) (*Dense, error) {
	return matrix.Random(rows, cols, src)
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed int64) Source {
	return matrix.NewSource(seed)
}

// GlobalSource returns the unseeded process-wide Source.
func GlobalSource() Source {
	return matrix.GlobalSource()
}

// FromGonum copies a gonum matrix into a Dense.
func FromGonum(m mat.Matrix) *Dense {
	return matrix.FromGonum(m)
}

// IsShapeError reports whether err carries a *ShapeError.
func IsShapeError(err error) bool {
	return matrix.IsShapeError(err)
}

// IsDimensionMismatch reports whether err carries a *DimensionMismatchError.
func IsDimensionMismatch(err error) bool {
	return matrix.IsDimensionMismatch(err)
}
