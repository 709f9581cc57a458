package nn

import "github.com/pkg/errors"

var (
	// ErrTooFewLayers is returned when a network is built from fewer than two layer sizes.
	ErrTooFewLayers = errors.New("nn: at least two layer sizes (input and output) are required")

	// ErrLayerChain is returned when adjacent layers do not chain:
	// layers[i].OutputSize() must equal layers[i+1].InputSize().
	ErrLayerChain = errors.New("nn: layer output size does not match next layer input size")

	// ErrBadLayer is returned when a layer's weights and biases disagree.
	ErrBadLayer = errors.New("nn: biases must be an output_size x 1 column matching the weight rows")
)
