// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/densenn/internal/nn"
	"github.com/born-ml/densenn/matrix"
)

// Layer is a fully connected layer followed by a sigmoid activation.
type Layer = nn.Layer

// Network is an ordered stack of sigmoid layers.
type Network = nn.Network

// Option configures a Network.
type Option = nn.Option

// UpdateRule selects how Network.Train updates the layers.
type UpdateRule = nn.UpdateRule

// Update rules.
const (
	ReferenceRule = nn.ReferenceRule
	BackpropRule  = nn.BackpropRule
)

// Errors returned by network and layer constructors.
var (
	ErrTooFewLayers = nn.ErrTooFewLayers
	ErrLayerChain   = nn.ErrLayerChain
	ErrBadLayer     = nn.ErrBadLayer
)

// NewNetwork builds a network mapping layerSizes[0] inputs to
// layerSizes[len-1] outputs, initialized from src.
//
// Example:
//
//	net, err := nn.NewNetwork([]int{2, 2, 1}, matrix.NewSource(1))
func NewNetwork(layerSizes []int, src matrix.Source, opts ...Option) (*Network, error) {
	return nn.NewNetwork(layerSizes, src, opts...)
}

// NewNetworkFrom builds a network from explicit, chained layers.
func NewNetworkFrom(layers []*Layer, opts ...Option) (*Network, error) {
	return nn.NewNetworkFrom(layers, opts...)
}

// NewLayer creates a layer with weights and biases drawn from U(-1, 1).
func NewLayer(inputSize, outputSize int, src matrix.Source) (*Layer, error) {
	return nn.NewLayer(inputSize, outputSize, src)
}

// NewLayerFrom creates a layer from explicit weights and biases.
func NewLayerFrom(weights, biases *matrix.Dense) (*Layer, error) {
	return nn.NewLayerFrom(weights, biases)
}

// WithUpdateRule selects the rule Train applies.
func WithUpdateRule(rule UpdateRule) Option {
	return nn.WithUpdateRule(rule)
}

// ParseUpdateRule parses "reference" or "backprop".
func ParseUpdateRule(s string) (UpdateRule, error) {
	return nn.ParseUpdateRule(s)
}
