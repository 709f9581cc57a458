package matrix

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Shape is the (rows, cols) pair of a Dense matrix.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns rows*cols.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks that neither dimension is negative and that rows*cols
// fits in an int. Zero-sized dimensions are allowed.
func (s Shape) Validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return errors.Errorf("invalid shape %v: dimensions must be >= 0", s)
	}
	if s.Cols != 0 && s.Rows > math.MaxInt/s.Cols {
		return errors.Errorf("invalid shape %v: element count overflows int", s)
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// String formats the shape as "RxC".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}
