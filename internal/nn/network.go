package nn

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/densenn/internal/matrix"
)

// Network is an ordered stack of sigmoid Layers.
//
// The output of each layer becomes the input of the next. A Network owns its
// layers exclusively and is not safe for concurrent Train calls.
//
// Example:
//
//	net, err := nn.NewNetwork([]int{2, 2, 1}, matrix.NewSource(42))
//	if err != nil {
//	    return err
//	}
//	out, err := net.Predict(matrix.Column(1, 0))
//	err = net.Train(matrix.Column(1, 0), matrix.Column(1), 0.1)
type Network struct {
	layers []*Layer
	rule   UpdateRule
}

// Option configures a Network.
type Option func(*Network)

// WithUpdateRule selects the rule Train applies. Default: ReferenceRule.
func WithUpdateRule(rule UpdateRule) Option {
	return func(n *Network) {
		n.rule = rule
	}
}

// NewNetwork builds len(layerSizes)-1 layers, layer i mapping layerSizes[i]
// inputs to layerSizes[i+1] outputs. Layers draw their initial values from
// src in order, first layer first.
//
// Returns ErrTooFewLayers when fewer than two sizes are given and a
// *matrix.ShapeError for negative sizes.
func NewNetwork(layerSizes []int, src matrix.Source, opts ...Option) (*Network, error) {
	if len(layerSizes) < 2 {
		return nil, errors.Wrapf(ErrTooFewLayers, "got %d size(s) %v", len(layerSizes), layerSizes)
	}

	layers := make([]*Layer, 0, len(layerSizes)-1)
	for i := 0; i < len(layerSizes)-1; i++ {
		layer, err := NewLayer(layerSizes[i], layerSizes[i+1], src)
		if err != nil {
			return nil, errors.WithMessagef(err, "layer %d", i)
		}
		layers = append(layers, layer)
	}

	n := newNetwork(layers, opts)
	klog.V(2).Infof("nn: built network %v (%d parameters, rule=%s)", layerSizes, n.NumParameters(), n.rule)
	return n, nil
}

// NewNetworkFrom builds a Network from explicit layers, for example layers
// with fixed initial weights.
//
// Returns ErrTooFewLayers for zero layers and ErrLayerChain when
// layers[i].OutputSize() != layers[i+1].InputSize().
func NewNetworkFrom(layers []*Layer, opts ...Option) (*Network, error) {
	if len(layers) == 0 {
		return nil, errors.WithStack(ErrTooFewLayers)
	}
	for i, l := range layers {
		if l == nil {
			return nil, errors.Wrapf(ErrBadLayer, "layer %d is nil", i)
		}
	}
	for i := 0; i+1 < len(layers); i++ {
		if layers[i].OutputSize() != layers[i+1].InputSize() {
			return nil, errors.Wrapf(ErrLayerChain, "layer %d outputs %d, layer %d expects %d",
				i, layers[i].OutputSize(), i+1, layers[i+1].InputSize())
		}
	}
	owned := make([]*Layer, len(layers))
	for i, l := range layers {
		// Copy the struct so the caller's *Layer is not updated by Train.
		cp := *l
		owned[i] = &cp
	}
	return newNetwork(owned, opts), nil
}

func newNetwork(layers []*Layer, opts []Option) *Network {
	n := &Network{layers: layers, rule: ReferenceRule}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Predict runs a forward pass through every layer and returns the last
// layer's output. It does not modify the network.
func (n *Network) Predict(input *matrix.Dense) (*matrix.Dense, error) {
	output := input
	for i, layer := range n.layers {
		var err error
		if output, err = layer.Forward(output); err != nil {
			return nil, errors.WithMessagef(err, "predict: layer %d", i)
		}
	}
	return output, nil
}

// Train updates every layer from one (input, target) example using the
// network's UpdateRule.
//
// The new weights and biases of all layers are computed first and committed
// together, so a shape error leaves the network unchanged.
func (n *Network) Train(input, target *matrix.Dense, learningRate float64) error {
	if err := n.train(input, target, learningRate); err != nil {
		klog.V(1).Infof("nn: train rejected: %v", err)
		return err
	}
	return nil
}

func (n *Network) train(input, target *matrix.Dense, learningRate float64) error {
	// outputs[0] is the input, outputs[i+1] the output of layer i.
	outputs := make([]*matrix.Dense, 0, len(n.layers)+1)
	outputs = append(outputs, input)
	for i, layer := range n.layers {
		out, err := layer.Forward(outputs[i])
		if err != nil {
			return errors.WithMessagef(err, "train: forward layer %d", i)
		}
		outputs = append(outputs, out)
	}

	errSignal, err := target.Sub(outputs[len(outputs)-1])
	if err != nil {
		return errors.WithMessage(err, "train: target")
	}

	updated := make([]Layer, len(n.layers))
	for i := len(n.layers) - 1; i >= 0; i-- {
		weights, biases, below, err := n.rule.step(n.layers[i], outputs[i], outputs[i+1], errSignal, learningRate)
		if err != nil {
			return errors.WithMessagef(err, "train: update layer %d", i)
		}
		updated[i] = Layer{weights: weights, biases: biases}
		errSignal = below
	}

	for i, l := range updated {
		n.layers[i].weights = l.weights
		n.layers[i].biases = l.biases
	}
	return nil
}

// Layers returns the network's layers, first to last.
// The slice is a copy; the layers are the network's own.
func (n *Network) Layers() []*Layer {
	out := make([]*Layer, len(n.layers))
	copy(out, n.layers)
	return out
}

// Layer returns layer i. Panics if i is out of range.
func (n *Network) Layer(i int) *Layer {
	if i < 0 || i >= len(n.layers) {
		panic("Network.Layer: index out of bounds")
	}
	return n.layers[i]
}

// NumLayers returns the number of layers.
func (n *Network) NumLayers() int {
	return len(n.layers)
}

// Sizes returns the layer sizes the network maps between, input first.
func (n *Network) Sizes() []int {
	sizes := make([]int, 0, len(n.layers)+1)
	sizes = append(sizes, n.layers[0].InputSize())
	for _, l := range n.layers {
		sizes = append(sizes, l.OutputSize())
	}
	return sizes
}

// Rule returns the update rule Train applies.
func (n *Network) Rule() UpdateRule {
	return n.rule
}

// NumParameters returns the total number of weights and biases.
func (n *Network) NumParameters() int {
	total := 0
	for _, l := range n.layers {
		total += l.NumParameters()
	}
	return total
}
