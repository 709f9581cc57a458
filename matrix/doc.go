// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense-matrix engine the networks in package
// nn are built on.
//
// # Overview
//
// A Dense is a fixed-shape 2-D matrix of float64 values stored row-major.
// It has value semantics: every operation allocates and returns a new
// matrix and never mutates its receiver or operands.
//
// # Basic Usage
//
//	import "github.com/born-ml/densenn/matrix"
//
//	func main() {
//	    a, _ := matrix.New(1, 2, []float64{1, 2})
//	    b, _ := matrix.New(2, 1, []float64{3, 4})
//
//	    c, err := a.Dot(b)     // 1x1 [11]
//	    s := c.Sigmoid()       // elementwise 1/(1+e^-x)
//	    loss := s.SquareSum()  // scalar
//	}
//
// # Errors
//
// Shape problems are returned, never panicked:
//   - *ShapeError: New got a value count that does not fill rows×cols
//   - *DimensionMismatchError: Add, Sub or Dot got incompatible operands
//
// Both carry a stack trace and are matched with errors.As, or with the
// IsShapeError and IsDimensionMismatch helpers.
//
// # Randomness
//
// Random draws from an explicit Source. Use NewSource(seed) for
// reproducible matrices or GlobalSource() when reproducibility does not matter.
//
// # Accumulation Order
//
// Dot sums over the shared dimension in index order with no fused
// multiply-add, so products are bit-reproducible.
package matrix
