package matrix

import (
	"fmt"

	"github.com/pkg/errors"
)

// ShapeError reports a constructor call whose values do not fill the
// declared rows×cols, or whose dimensions are negative.
type ShapeError struct {
	Rows int // Declared rows.
	Cols int // Declared cols.
	Len  int // Number of values supplied.
}

// Error implements error.
func (e *ShapeError) Error() string {
	if e.Rows < 0 || e.Cols < 0 {
		return fmt.Sprintf("matrix: invalid shape %dx%d: dimensions must be >= 0", e.Rows, e.Cols)
	}
	return fmt.Sprintf("matrix: shape %dx%d requires %d values, got %d",
		e.Rows, e.Cols, e.Rows*e.Cols, e.Len)
}

// DimensionMismatchError reports operands whose shapes are incompatible for
// the requested operation.
//
// For Add, Sub and MulElem, Expected is the receiver's shape and Actual the
// operand's. For Dot, Expected is the shape the right-hand operand needed
// to have on its shared dimension (receiver cols × operand cols) and
// Actual is the operand's shape.
type DimensionMismatchError struct {
	Op       string
	Expected Shape
	Actual   Shape
}

// Error implements error.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("matrix: %s: dimension mismatch: expected %v, got %v", e.Op, e.Expected, e.Actual)
}

func shapeError(rows, cols, n int) error {
	return errors.WithStack(&ShapeError{Rows: rows, Cols: cols, Len: n})
}

func mismatch(op string, expected, actual Shape) error {
	return errors.WithStack(&DimensionMismatchError{Op: op, Expected: expected, Actual: actual})
}

// IsShapeError reports whether err carries a *ShapeError.
func IsShapeError(err error) bool {
	var target *ShapeError
	return errors.As(err, &target)
}

// IsDimensionMismatch reports whether err carries a *DimensionMismatchError.
func IsDimensionMismatch(err error) bool {
	var target *DimensionMismatchError
	return errors.As(err, &target)
}
