// Package dataset provides the labeled examples the training driver feeds
// to a network, one column-vector pair at a time.
package dataset

import (
	"io"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"github.com/born-ml/densenn/internal/matrix"
)

// Dataset names understood by Load.
const (
	NameXOR = "xor"
	NameCSV = "csv"
)

// Example is one labeled example: an input column [n, 1] and a target column [m, 1].
type Example struct {
	Input  *matrix.Dense
	Target *matrix.Dense
}

// XOR returns the four examples of the exclusive-or truth table, with
// 2x1 inputs and 1x1 targets.
func XOR() []Example {
	return []Example{
		{Input: matrix.Column(0, 0), Target: matrix.Column(0)},
		{Input: matrix.Column(0, 1), Target: matrix.Column(1)},
		{Input: matrix.Column(1, 0), Target: matrix.Column(1)},
		{Input: matrix.Column(1, 1), Target: matrix.Column(0)},
	}
}

// LoadCSV reads numeric rows from r. The first numInputs columns of each
// row form the input column, the remaining columns the target column.
func LoadCSV(r io.Reader, numInputs int, hasHeader bool) ([]Example, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(hasHeader),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float))
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "read csv")
	}

	rows, cols := df.Dims()
	if numInputs <= 0 || numInputs >= cols {
		return nil, errors.Errorf("csv has %d columns, cannot split %d inputs from at least 1 target", cols, numInputs)
	}

	examples := make([]Example, 0, rows)
	values := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := df.Elem(i, j).Float()
			if math.IsNaN(v) {
				return nil, errors.Errorf("csv row %d column %d: %q is not a number", i, j, df.Elem(i, j).String())
			}
			values[j] = v
		}
		examples = append(examples, Example{
			Input:  matrix.Column(values[:numInputs]...),
			Target: matrix.Column(values[numInputs:]...),
		})
	}
	return examples, nil
}

// LoadCSVFile is LoadCSV over the file at path.
func LoadCSVFile(path string, numInputs int, hasHeader bool) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %q", path)
	}
	defer f.Close()

	examples, err := LoadCSV(f, numInputs, hasHeader)
	if err != nil {
		return nil, errors.WithMessagef(err, "dataset %q", path)
	}
	return examples, nil
}

// Load returns the named dataset. "xor" ignores path and numInputs; "csv"
// reads path with LoadCSVFile.
func Load(name, path string, numInputs int, hasHeader bool) ([]Example, error) {
	switch name {
	case NameXOR:
		return XOR(), nil
	case NameCSV:
		if path == "" {
			return nil, errors.New("dataset csv needs a file path")
		}
		return LoadCSVFile(path, numInputs, hasHeader)
	default:
		return nil, errors.Errorf("unknown dataset %q (want %q or %q)", name, NameXOR, NameCSV)
	}
}

// Shapes checks that every example matches a network with the given input
// and output widths.
func Shapes(examples []Example, inputs, outputs int) error {
	if len(examples) == 0 {
		return errors.New("dataset is empty")
	}
	want := matrix.Shape{Rows: inputs, Cols: 1}
	wantTarget := matrix.Shape{Rows: outputs, Cols: 1}
	for i, ex := range examples {
		if !ex.Input.Shape().Equal(want) {
			return errors.Errorf("example %d: input shape %v, network expects %v", i, ex.Input.Shape(), want)
		}
		if !ex.Target.Shape().Equal(wantTarget) {
			return errors.Errorf("example %d: target shape %v, network expects %v", i, ex.Target.Shape(), wantTarget)
		}
	}
	return nil
}
