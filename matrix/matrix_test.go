// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/born-ml/densenn/matrix"
)

// TestPublicScenarios exercises the public API end to end.
func TestPublicScenarios(t *testing.T) {
	zero, err := matrix.New(2, 1, []float64{0.0, 0.0})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if zero.Rows() != 2 || zero.Cols() != 1 {
		t.Errorf("shape = %v, want 2x1", zero.Shape())
	}

	a, _ := matrix.New(1, 2, []float64{1.0, 2.0})
	b, _ := matrix.New(2, 1, []float64{3.0, 4.0})
	c, err := a.Dot(b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if got := c.At(0, 0); got != 11.0 {
		t.Errorf("Dot = %v, want 11", got)
	}

	s := matrix.Column(0).Sigmoid()
	if got := s.At(0, 0); got != 0.5 {
		t.Errorf("Sigmoid(0) = %v, want 0.5", got)
	}
}

// TestPublicErrors verifies errors can be matched through the aliases.
func TestPublicErrors(t *testing.T) {
	_, err := matrix.New(2, 2, []float64{1})
	var shapeErr *matrix.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("New error = %v, want *ShapeError", err)
	}
	if !matrix.IsShapeError(err) {
		t.Error("IsShapeError = false")
	}

	_, err = matrix.Column(1, 2).Add(matrix.Column(1))
	var dimErr *matrix.DimensionMismatchError
	if !errors.As(err, &dimErr) {
		t.Fatalf("Add error = %v, want *DimensionMismatchError", err)
	}
	if dimErr.Expected != (matrix.Shape{Rows: 2, Cols: 1}) {
		t.Errorf("Expected = %v, want 2x1", dimErr.Expected)
	}
}

// TestPublicRandom verifies seeded sources are reproducible.
func TestPublicRandom(t *testing.T) {
	a, err := matrix.Random(2, 3, matrix.NewSource(5))
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	b, _ := matrix.Random(2, 3, matrix.NewSource(5))
	if !a.Equal(b) {
		t.Error("same seed produced different matrices")
	}
	if g := matrix.FromGonum(a.ToGonum()); !g.Equal(a) {
		t.Error("gonum round trip changed values")
	}
	if _, err := matrix.Random(1, 1, matrix.GlobalSource()); err != nil {
		t.Errorf("Random(GlobalSource) failed: %v", err)
	}
	rows, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	if rows.At(1, 0) != 3 {
		t.Errorf("FromRows At(1,0) = %v, want 3", rows.At(1, 0))
	}
}
