package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/densenn/internal/matrix"
)

// Uniform initializes a rows×cols matrix with values drawn from U(-1, 1).
//
// Parameters:
//   - rows, cols: Shape of the matrix
//   - src: Random source the values are drawn from
//
// Returns the initialized matrix, or a *matrix.ShapeError for negative sizes.
func Uniform(rows, cols int, src matrix.Source) (*matrix.Dense, error) {
	m, err := matrix.Random(rows, cols, src)
	if err != nil {
		return nil, errors.Wrapf(err, "uniform init %dx%d", rows, cols)
	}
	return m, nil
}
