// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides sigmoid feed-forward networks built on package matrix.
//
// # Overview
//
// This package contains:
//   - Layer: affine transform W·x + b followed by a sigmoid
//   - Network: ordered stack of layers with Predict and Train
//   - UpdateRule: how Train turns one example into new weights
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/densenn/matrix"
//	    "github.com/born-ml/densenn/nn"
//	)
//
//	func main() {
//	    net, err := nn.NewNetwork([]int{2, 2, 1}, matrix.NewSource(42))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // One training step on one example
//	    err = net.Train(matrix.Column(0, 1), matrix.Column(1), 0.1)
//
//	    // Inference
//	    out, err := net.Predict(matrix.Column(0, 1))
//	}
//
// # Update Rules
//
// ReferenceRule (default) scales the output error by the learning rate
// twice, applies no activation derivative, and propagates the error through
// the weights it has just updated. It reproduces the weights of earlier
// runs exactly.
//
// BackpropRule is conventional backpropagation for squared error:
//
//	net, err := nn.NewNetwork(sizes, src, nn.WithUpdateRule(nn.BackpropRule))
//
// # Inputs
//
// Inputs and targets are column vectors: an input for a network built from
// sizes [n, ..., m] has shape n×1 and its target m×1.
package nn
