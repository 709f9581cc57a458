package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/densenn/internal/matrix"
)

// Layer is a fully connected layer followed by a sigmoid activation.
//
// Performs the transformation: y = σ(W · x + b)
// where:
//   - x is the input column with shape [input_size, 1]
//   - W is the weight matrix with shape [output_size, input_size]
//   - b is the bias column with shape [output_size, 1]
//   - y is the output column with shape [output_size, 1]
//
// Weights and biases are immutable matrices. Training replaces them
// wholesale, it never edits them in place.
type Layer struct {
	weights *matrix.Dense // [output_size, input_size]
	biases  *matrix.Dense // [output_size, 1]
}

// NewLayer creates a Layer with weights and biases drawn from U(-1, 1).
//
// Weights are drawn first, then biases, both row-major from src.
func NewLayer(inputSize, outputSize int, src matrix.Source) (*Layer, error) {
	weights, err := Uniform(outputSize, inputSize, src)
	if err != nil {
		return nil, errors.WithMessage(err, "layer weights")
	}
	biases, err := Uniform(outputSize, 1, src)
	if err != nil {
		return nil, errors.WithMessage(err, "layer biases")
	}
	return &Layer{weights: weights, biases: biases}, nil
}

// NewLayerFrom creates a Layer from explicit weights and biases.
//
// biases must be a single column with as many rows as weights.
func NewLayerFrom(weights, biases *matrix.Dense) (*Layer, error) {
	if weights == nil || biases == nil {
		return nil, errors.WithStack(ErrBadLayer)
	}
	if biases.Cols() != 1 || biases.Rows() != weights.Rows() {
		return nil, errors.Wrapf(ErrBadLayer, "weights %v, biases %v", weights.Shape(), biases.Shape())
	}
	return &Layer{weights: weights, biases: biases}, nil
}

// Forward computes σ(W · input + b).
//
// input must have shape [input_size, 1]. Dimension errors from the
// product or the bias add are returned wrapped and still match
// *matrix.DimensionMismatchError with errors.As.
func (l *Layer) Forward(input *matrix.Dense) (*matrix.Dense, error) {
	weighted, err := l.weights.Dot(input)
	if err != nil {
		return nil, errors.WithMessage(err, "layer forward")
	}
	sum, err := weighted.Add(l.biases)
	if err != nil {
		return nil, errors.WithMessage(err, "layer forward")
	}
	return sum.Sigmoid(), nil
}

// Weights returns the weight matrix [output_size, input_size].
func (l *Layer) Weights() *matrix.Dense {
	return l.weights
}

// Biases returns the bias column [output_size, 1].
func (l *Layer) Biases() *matrix.Dense {
	return l.biases
}

// InputSize returns the number of input features.
func (l *Layer) InputSize() int {
	return l.weights.Cols()
}

// OutputSize returns the number of output features.
func (l *Layer) OutputSize() int {
	return l.weights.Rows()
}

// NumParameters returns the number of weights plus biases.
func (l *Layer) NumParameters() int {
	return l.weights.Shape().NumElements() + l.biases.Rows()
}
