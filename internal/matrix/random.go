package matrix

import (
	"math/rand"
)

// Source is the random generator Random draws from.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a value uniformly distributed in [0, 1).
	Float64() float64
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // G404: deterministic seed for reproducible initialization
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64() //nolint:gosec // G404: ML initialization, not security-critical
}

// GlobalSource returns a Source backed by the unseeded process-wide
// math/rand generator. Matrices drawn from it are not reproducible.
func GlobalSource() Source {
	return globalSource{}
}

// Random creates a rows×cols matrix whose cells are drawn independently and
// uniformly from [-1.0, 1.0), in row-major order.
//
// Returns a *ShapeError if a dimension is negative.
func Random(rows, cols int, src Source) (*Dense, error) {
	if err := (Shape{Rows: rows, Cols: cols}).Validate(); err != nil {
		return nil, shapeError(rows, cols, 0)
	}
	d := zeros(rows, cols)
	for i := range d.data {
		d.data[i] = src.Float64()*2.0 - 1.0
	}
	return d, nil
}
